package pathtree

// Mirror builds a tree with the shape of values where every leaf is flag.
func Mirror(values any, flag bool) any {
	switch t := values.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, v := range t {
			out[k] = Mirror(v, flag)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, v := range t {
			out[i] = Mirror(v, flag)
		}
		return out
	default:
		return flag
	}
}

// Reconcile rebuilds flags so it has the shape of values, keeping every flag
// that still sits at a matching position. A container collapsed into a leaf
// keeps the OR of its old flags; a leaf expanded into a container spreads its
// flag over the new leaves.
func Reconcile(values, flags any) any {
	switch t := values.(type) {
	case map[string]any:
		old, ok := flags.(map[string]any)
		if !ok {
			return Mirror(values, OrReduce(flags))
		}
		out := make(map[string]any, len(t))
		for k, v := range t {
			prev, had := old[k]
			if !had {
				out[k] = Mirror(v, false)
				continue
			}
			out[k] = Reconcile(v, prev)
		}
		return out
	case []any:
		old, ok := flags.([]any)
		if !ok {
			return Mirror(values, OrReduce(flags))
		}
		out := make([]any, len(t))
		for i, v := range t {
			if i >= len(old) {
				out[i] = Mirror(v, false)
				continue
			}
			out[i] = Reconcile(v, old[i])
		}
		return out
	default:
		return OrReduce(flags)
	}
}

// OrReduce reports whether any leaf of the flag tree is true.
func OrReduce(flags any) bool {
	switch t := flags.(type) {
	case bool:
		return t
	case map[string]any:
		for _, v := range t {
			if OrReduce(v) {
				return true
			}
		}
	case []any:
		for _, v := range t {
			if OrReduce(v) {
				return true
			}
		}
	}
	return false
}
