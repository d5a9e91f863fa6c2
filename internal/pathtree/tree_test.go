package pathtree

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() map[string]any {
	return map[string]any{
		"name": "Ada",
		"address": map[string]any{
			"city":    "Paris",
			"country": "FR",
		},
		"hobbies": []any{"chess", "go"},
		"jobs": []any{
			map[string]any{"title": "engineer"},
		},
	}
}

func TestFlatten_AllAndLeafPaths(t *testing.T) {
	p := Flatten(sample())

	assert.Equal(t, []string{
		"address", "address.city", "address.country",
		"hobbies", "hobbies.0", "hobbies.1",
		"jobs", "jobs.0", "jobs.0.title",
		"name",
	}, p.All)
	assert.Equal(t, []string{
		"address.city", "address.country",
		"hobbies.0", "hobbies.1",
		"jobs.0.title",
		"name",
	}, p.Leaf)

	for _, leaf := range p.Leaf {
		assert.True(t, p.HasPath(leaf), "leaf %q missing from All", leaf)
		assert.True(t, p.HasLeaf(leaf))
	}
	assert.False(t, p.HasLeaf("address"))
	assert.Equal(t, "Paris", p.Values["address.city"])
}

func TestFlatten_EmptyContainersAreNotLeaves(t *testing.T) {
	p := Flatten(map[string]any{"tags": []any{}, "meta": map[string]any{}, "x": nil})
	assert.Equal(t, []string{"meta", "tags", "x"}, p.All)
	assert.Equal(t, []string{"x"}, p.Leaf)
}

func TestFlatten_MultiDigitIndexes(t *testing.T) {
	items := make([]any, 12)
	for i := range items {
		items[i] = i
	}
	p := Flatten(map[string]any{"items": items})

	require.Len(t, p.Leaf, 12)
	assert.Equal(t, "items.0", p.Leaf[0])
	assert.Equal(t, "items.10", p.Leaf[10])
	assert.Equal(t, "items.11", p.Leaf[11])
	assert.Equal(t, []string{"items.10", "items.11"}, Expand(map[string]any{"items": items}, "items._item")[10:])
}

func TestGet(t *testing.T) {
	tree := sample()

	v, err := Get(tree, "address.city")
	require.NoError(t, err)
	assert.Equal(t, "Paris", v)

	v, err = Get(tree, "jobs.0.title")
	require.NoError(t, err)
	assert.Equal(t, "engineer", v)

	root, err := Get(tree, "")
	require.NoError(t, err)
	assert.Equal(t, tree, root)

	for _, bad := range []string{"nope", "address.zip", "hobbies.2", "hobbies.x", "name.first", "hobbies.01"} {
		_, err := Get(tree, bad)
		require.ErrorIs(t, err, ErrInvalidPath, bad)
	}
}

func TestSet_CreatesFinalSegmentOnly(t *testing.T) {
	tree := sample()

	_, err := Set(tree, "address.zip", "75001")
	require.NoError(t, err)
	assert.Equal(t, "75001", tree["address"].(map[string]any)["zip"])

	_, err = Set(tree, "hobbies.2", "poker")
	require.NoError(t, err)
	assert.Equal(t, []any{"chess", "go", "poker"}, tree["hobbies"])

	_, err = Set(tree, "hobbies.5", "late")
	require.NoError(t, err)
	assert.Equal(t, []any{"chess", "go", "poker", nil, nil, "late"}, tree["hobbies"])

	_, err = Set(tree, "missing.child", 1)
	require.ErrorIs(t, err, ErrInvalidPath)

	_, err = Set(tree, "hobbies.key", 1)
	require.ErrorIs(t, err, ErrInvalidPath)

	_, err = Set(tree, "", 1)
	require.ErrorIs(t, err, ErrInvalidPath)
}

func TestSet_RoundTripLeavesTreeUnchanged(t *testing.T) {
	tree := sample()
	want := Clone(tree)

	for _, path := range Flatten(tree).All {
		v, err := Get(tree, path)
		require.NoError(t, err)
		_, err = Set(tree, path, v)
		require.NoError(t, err)
	}
	assert.Equal(t, want, tree)
}

func TestRemove(t *testing.T) {
	tree := map[string]any{
		"hobbies": []any{"a", "b", "c"},
		"address": map[string]any{"city": "Paris", "0": "zero"},
	}

	_, err := Remove(tree, "hobbies.0")
	require.NoError(t, err)
	assert.Equal(t, []any{"b", "c"}, tree["hobbies"])

	_, err = Remove(tree, "hobbies.9")
	require.NoError(t, err)
	assert.Equal(t, []any{"b", "c"}, tree["hobbies"])

	_, err = Remove(tree, "address.city")
	require.NoError(t, err)
	_, err = Remove(tree, "address.0")
	require.NoError(t, err)
	assert.Empty(t, tree["address"])

	_, err = Remove(tree, "ghost.key")
	require.ErrorIs(t, err, ErrInvalidPath)
}

func TestIndex(t *testing.T) {
	for seg, want := range map[string]int{"0": 0, "7": 7, "42": 42} {
		got, ok := Index(seg)
		require.True(t, ok, seg)
		assert.Equal(t, want, got)
	}
	for _, seg := range []string{"", "-1", "01", "+1", "a", "1.5", Item} {
		_, ok := Index(seg)
		assert.False(t, ok, seg)
	}
}

type profile struct {
	Name    string   `json:"name"`
	Tags    []string `json:"tags,omitempty"`
	Secret  string   `json:"-"`
	Nick    string   `form:"nickname"`
	Created time.Time
	hidden  int
}

func TestClone_NormalisesTypedValues(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	src := map[string]any{
		"p":      &profile{Name: "Ada", Tags: []string{"x"}, Secret: "s", Nick: "a", Created: created},
		"scores": map[string]int{"math": 1},
		"ids":    [2]int{4, 5},
	}
	got := Clone(src)

	assert.Equal(t, map[string]any{
		"p": map[string]any{
			"name":     "Ada",
			"tags":     []any{"x"},
			"nickname": "a",
			"Created":  created,
		},
		"scores": map[string]any{"math": 1},
		"ids":    []any{4, 5},
	}, got)
}

func TestClone_IsDeep(t *testing.T) {
	src := sample()
	cp := Clone(src).(map[string]any)
	cp["address"].(map[string]any)["city"] = "Rome"
	cp["hobbies"].([]any)[0] = "poker"

	assert.Equal(t, "Paris", src["address"].(map[string]any)["city"])
	assert.Equal(t, "chess", src["hobbies"].([]any)[0])
}

func TestCloneRecord(t *testing.T) {
	m, err := CloneRecord(nil)
	require.NoError(t, err)
	assert.Empty(t, m)

	_, err = CloneRecord([]any{1})
	require.Error(t, err)
}
