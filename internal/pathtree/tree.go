package pathtree

import "slices"

// Get returns the node addressed by path. The empty path returns root.
func Get(root any, path string) (any, error) {
	cur := root
	for _, seg := range Split(path) {
		next, ok := child(cur, seg)
		if !ok {
			return nil, invalid(path)
		}
		cur = next
	}
	return cur, nil
}

// Has reports whether path resolves against root.
func Has(root any, path string) bool {
	_, err := Get(root, path)
	return err == nil
}

// Set assigns value at path and returns the (possibly reallocated) root.
// Intermediate segments must exist. The final segment may name a new record
// key or an array index at or beyond the current length; arrays grow and any
// gap is padded with nil.
func Set(root any, path string, value any) (any, error) {
	segs := Split(path)
	if len(segs) == 0 {
		return nil, invalid(path)
	}
	return setIn(root, segs, value, path)
}

func setIn(node any, segs []string, value any, path string) (any, error) {
	if len(segs) == 1 {
		return assign(node, segs[0], value, path)
	}
	next, ok := child(node, segs[0])
	if !ok {
		return nil, invalid(path)
	}
	updated, err := setIn(next, segs[1:], value, path)
	if err != nil {
		return nil, err
	}
	return assign(node, segs[0], updated, path)
}

// Remove deletes the node addressed by path and returns the root. A numeric
// final segment under an array splices it, shifting later elements down by
// one; any other final segment deletes the record key. Removing a missing key
// or an out-of-range index is a no-op.
func Remove(root any, path string) (any, error) {
	segs := Split(path)
	if len(segs) == 0 {
		return nil, invalid(path)
	}
	return removeIn(root, segs, path)
}

func removeIn(node any, segs []string, path string) (any, error) {
	if len(segs) == 1 {
		return drop(node, segs[0], path)
	}
	next, ok := child(node, segs[0])
	if !ok {
		return nil, invalid(path)
	}
	updated, err := removeIn(next, segs[1:], path)
	if err != nil {
		return nil, err
	}
	return assign(node, segs[0], updated, path)
}

func child(node any, seg string) (any, bool) {
	switch t := node.(type) {
	case map[string]any:
		v, ok := t[seg]
		return v, ok
	case []any:
		i, ok := Index(seg)
		if !ok || i >= len(t) {
			return nil, false
		}
		return t[i], true
	default:
		return nil, false
	}
}

func assign(node any, seg string, value any, path string) (any, error) {
	switch t := node.(type) {
	case map[string]any:
		t[seg] = value
		return t, nil
	case []any:
		i, ok := Index(seg)
		if !ok {
			return nil, invalid(path)
		}
		if i < len(t) {
			t[i] = value
			return t, nil
		}
		for len(t) < i {
			t = append(t, nil)
		}
		return append(t, value), nil
	default:
		return nil, invalid(path)
	}
}

func drop(node any, seg string, path string) (any, error) {
	switch t := node.(type) {
	case map[string]any:
		delete(t, seg)
		return t, nil
	case []any:
		i, ok := Index(seg)
		if !ok {
			return nil, invalid(path)
		}
		if i >= len(t) {
			return t, nil
		}
		return slices.Delete(t, i, i+1), nil
	default:
		return nil, invalid(path)
	}
}

// IsContainer reports whether v is a record or a sequence.
func IsContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}
