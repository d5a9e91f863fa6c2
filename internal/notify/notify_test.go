package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/goform/internal/store"
)

type call struct {
	value   any
	err     string
	touched bool
}

func setup(t *testing.T, keys ...string) (*store.Store, map[string][]call, *int) {
	t.Helper()
	calls := map[string][]call{}
	watch := map[string]WatchFunc{}
	for _, k := range keys {
		watch[k] = func(v any, err string, touched bool) {
			calls[k] = append(calls[k], call{v, err, touched})
		}
	}
	debug := 0
	n := New(watch, func() { debug++ })
	s := store.New(map[string]any{
		"a":       map[string]any{"b": map[string]any{"c": ""}},
		"other":   "",
		"hobbies": []any{"x", "y"},
	}, n)
	n.Bind(s)
	return s, calls, &debug
}

func TestWatch_FiresExactlyOnceForWatchedPath(t *testing.T) {
	s, calls, debug := setup(t, "a.b.c")

	require.NoError(t, s.SetValue("a.b.c", "x"))
	assert.Equal(t, []call{{"x", "", false}}, calls["a.b.c"])
	assert.Equal(t, 1, *debug)

	require.NoError(t, s.SetValue("other", "y"))
	assert.Len(t, calls["a.b.c"], 1, "unrelated write must not fire")
	assert.Equal(t, 2, *debug)
}

func TestWatch_AncestorAndDescendantWrites(t *testing.T) {
	s, calls, _ := setup(t, "a", "a.b.c")

	require.NoError(t, s.SetValue("a.b.c", "deep"))
	require.Len(t, calls["a"], 1)
	assert.Equal(t, map[string]any{"b": map[string]any{"c": "deep"}}, calls["a"][0].value)

	require.NoError(t, s.SetValue("a", map[string]any{"b": map[string]any{"c": "replaced"}}))
	require.Len(t, calls["a.b.c"], 2)
	assert.Equal(t, "replaced", calls["a.b.c"][1].value)
}

func TestWatch_ReportsErrorAndTouched(t *testing.T) {
	s, calls, _ := setup(t, "other")
	require.NoError(t, s.SetTouched("other", true))
	s.SetError("other", "required")

	require.NoError(t, s.SetValue("other", "v"))
	assert.Equal(t, []call{{"v", "required", true}}, calls["other"])
}

func TestWatch_WildcardKeys(t *testing.T) {
	s, calls, _ := setup(t, "hobbies._item")

	require.NoError(t, s.SetValue("hobbies.1", "z"))
	assert.Equal(t, []call{{"z", "", false}}, calls["hobbies._item"])

	require.NoError(t, s.SetValue("hobbies.2", "new"))
	assert.Len(t, calls["hobbies._item"], 2)

	require.NoError(t, s.RemoveValue("hobbies.0"))
	// removal reports the array path, so every remaining element fires
	assert.Len(t, calls["hobbies._item"], 4)
}

func TestDebugHook_RunsForEveryTree(t *testing.T) {
	s, calls, debug := setup(t, "other")

	require.NoError(t, s.SetTouched("other", true))
	s.SetError("other", "bad")
	s.DeleteError("other")

	assert.Equal(t, 3, *debug)
	assert.Empty(t, calls["other"], "touched and error writes do not fire watchers")
}

func TestWatch_UnboundNotifierOnlyRunsDebug(t *testing.T) {
	fired := false
	debug := 0
	n := New(map[string]WatchFunc{"x": func(any, string, bool) { fired = true }}, func() { debug++ })
	n.Written(store.RootValues, "x")
	assert.False(t, fired)
	assert.Equal(t, 1, debug)
}

func TestHold_DefersUntilRelease(t *testing.T) {
	var calls []call
	debug := 0
	n := New(map[string]WatchFunc{"other": func(v any, err string, touched bool) {
		calls = append(calls, call{v, err, touched})
	}}, func() { debug++ })
	s := store.New(map[string]any{"other": ""}, n)
	n.Bind(s)

	n.Hold()
	require.NoError(t, s.SetTouched("other", true))
	require.NoError(t, s.SetValue("other", "v"))
	s.SetError("other", "bad")
	assert.Empty(t, calls)
	assert.Equal(t, 0, debug)

	n.Release()
	// dispatch sees the state as of release, error included
	assert.Equal(t, []call{{"v", "bad", true}}, calls)
	assert.Equal(t, 1, debug)

	n.Release()
	assert.Equal(t, 1, debug, "unbalanced release is ignored")
}
