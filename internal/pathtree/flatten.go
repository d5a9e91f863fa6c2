package pathtree

import (
	"slices"
	"strconv"
)

// Paths is the path index derived from one value tree.
type Paths struct {
	// All lists every reachable node below the root, containers included.
	All []string
	// Leaf lists only terminal nodes; elements of scalar arrays are leaves.
	Leaf []string
	// Values maps every entry of All to its node.
	Values map[string]any

	leaf map[string]struct{}
}

// Flatten walks root depth-first. Records are visited in sorted key order and
// arrays in index order so the result is stable across calls.
func Flatten(root any) Paths {
	p := Paths{
		Values: make(map[string]any),
		leaf:   make(map[string]struct{}),
	}
	flattenRecurse(root, "", &p)
	return p
}

func flattenRecurse(v any, cur string, p *Paths) {
	switch t := v.(type) {
	case map[string]any:
		for _, k := range SortedKeys(t) {
			p.visit(Join(cur, k), t[k])
		}
	case []any:
		for i, val := range t {
			p.visit(Join(cur, strconv.Itoa(i)), val)
		}
	default:
		// scalars: nothing to descend
	}
}

func (p *Paths) visit(path string, v any) {
	p.All = append(p.All, path)
	p.Values[path] = v
	if IsContainer(v) {
		flattenRecurse(v, path, p)
		return
	}
	p.Leaf = append(p.Leaf, path)
	p.leaf[path] = struct{}{}
}

// HasPath reports whether path is in All.
func (p Paths) HasPath(path string) bool {
	_, ok := p.Values[path]
	return ok
}

// HasLeaf reports whether path is in Leaf.
func (p Paths) HasLeaf(path string) bool {
	_, ok := p.leaf[path]
	return ok
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
