package pathtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	tree := map[string]any{
		"hobbies": []any{"a", "b"},
		"jobs": []any{
			map[string]any{"title": "x"},
			map[string]any{"title": "y"},
		},
		"name": "Ada",
	}

	assert.Equal(t, []string{"hobbies.0", "hobbies.1"}, Expand(tree, "hobbies._item"))
	assert.Equal(t, []string{"jobs.0.title", "jobs.1.title"}, Expand(tree, "jobs._item.title"))
	assert.Equal(t, []string{"name"}, Expand(tree, "name"))
	assert.Empty(t, Expand(tree, "name._item"))
	assert.Empty(t, Expand(tree, "ghost"))
}

func TestTrimWildcard(t *testing.T) {
	p, ok := TrimWildcard("hobbies._item")
	assert.True(t, ok)
	assert.Equal(t, "hobbies", p)

	p, ok = TrimWildcard("hobbies")
	assert.False(t, ok)
	assert.Equal(t, "hobbies", p)
}

func TestSameBranch(t *testing.T) {
	assert.True(t, SameBranch("a.b.c", "a.b.c"))
	assert.True(t, SameBranch("a.b.c", "a"))
	assert.True(t, SameBranch("a", "a.b.c"))
	assert.True(t, SameBranch("", "a"))
	assert.False(t, SameBranch("a.bc", "a.b"))
	assert.False(t, SameBranch("x", "a"))
}

func TestRekeyAfterRemove_ShiftsArraySiblings(t *testing.T) {
	errs := map[string]string{
		"hobbies.0": "x",
		"hobbies.1": "y",
		"name":      "z",
	}
	RekeyAfterRemove(errs, "hobbies.0", true)
	assert.Equal(t, map[string]string{"hobbies.0": "y", "name": "z"}, errs)

	errs = map[string]string{
		"hobbies.0": "a",
		"hobbies.1": "b",
		"hobbies.2": "c",
	}
	RekeyAfterRemove(errs, "hobbies.1", true)
	assert.Equal(t, map[string]string{"hobbies.0": "a", "hobbies.1": "c"}, errs)
}

func TestRekeyAfterRemove_NestedAndRecord(t *testing.T) {
	errs := map[string]string{
		"jobs.0.title": "a",
		"jobs.1.title": "b",
		"jobs.10":      "c",
		"jobs":         "list",
	}
	RekeyAfterRemove(errs, "jobs.0", true)
	assert.Equal(t, map[string]string{
		"jobs.0.title": "b",
		"jobs.9":       "c",
		"jobs":         "list",
	}, errs)

	errs = map[string]string{"address.1": "a", "address.2": "b", "address": "c"}
	RekeyAfterRemove(errs, "address.1", false)
	assert.Equal(t, map[string]string{"address.2": "b", "address": "c"}, errs)
}

func TestReconcileAndOrReduce(t *testing.T) {
	values := map[string]any{
		"address": map[string]any{"city": "P", "country": "F"},
		"hobbies": []any{"a", "b", "c"},
		"name":    "n",
	}
	flags := map[string]any{
		"address": map[string]any{"city": true},
		"hobbies": []any{false, true},
		"name":    map[string]any{"old": true},
	}

	got := Reconcile(values, flags)
	assert.Equal(t, map[string]any{
		"address": map[string]any{"city": true, "country": false},
		"hobbies": []any{false, true, false},
		"name":    true,
	}, got)

	assert.True(t, OrReduce(got.(map[string]any)["address"]))
	assert.False(t, OrReduce(Mirror(values, false)))
	assert.True(t, OrReduce(Mirror(values, true)))
}
