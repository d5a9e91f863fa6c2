package pathtree

import (
	"strconv"
	"strings"
)

// Expand resolves pattern against root, replacing every Item segment by each
// index of the array found at that position. Patterns without wildcards
// expand to themselves when they resolve. Unresolvable branches are skipped.
func Expand(root any, pattern string) []string {
	var out []string
	expandRecurse(root, Split(pattern), "", &out)
	return out
}

func expandRecurse(node any, segs []string, cur string, out *[]string) {
	if len(segs) == 0 {
		*out = append(*out, cur)
		return
	}
	seg := segs[0]
	if seg == Item {
		arr, ok := node.([]any)
		if !ok {
			return
		}
		for i, v := range arr {
			expandRecurse(v, segs[1:], Join(cur, strconv.Itoa(i)), out)
		}
		return
	}
	next, ok := child(node, seg)
	if !ok {
		return
	}
	expandRecurse(next, segs[1:], Join(cur, seg), out)
}

// TrimWildcard drops a trailing Item segment, returning the array path.
func TrimWildcard(pattern string) (string, bool) {
	if pattern == Item {
		return "", true
	}
	if strings.HasSuffix(pattern, "."+Item) {
		return strings.TrimSuffix(pattern, "."+Item), true
	}
	return pattern, false
}

// RekeyAfterRemove drops every key of m at or below removed. When shift is
// true the removed path named an array element and every later sibling key
// is renumbered down by one so it stays aligned with the spliced array.
func RekeyAfterRemove[V any](m map[string]V, removed string, shift bool) {
	parent, last := SplitLast(removed)
	idx, isIndex := Index(last)
	shift = shift && isIndex

	next := make(map[string]V, len(m))
	for k, v := range m {
		if IsWithin(k, removed) {
			continue
		}
		if shift {
			if nk, ok := shiftKey(k, parent, idx); ok {
				next[nk] = v
				continue
			}
		}
		next[k] = v
	}
	clear(m)
	for k, v := range next {
		m[k] = v
	}
}

// shiftKey renumbers key when it addresses element j > idx of the array at parent.
func shiftKey(key, parent string, idx int) (string, bool) {
	rel := key
	if parent != "" {
		if !strings.HasPrefix(key, parent+".") {
			return "", false
		}
		rel = key[len(parent)+1:]
	}
	seg, rest, _ := strings.Cut(rel, ".")
	j, ok := Index(seg)
	if !ok || j <= idx {
		return "", false
	}
	nk := Join(parent, strconv.Itoa(j-1))
	if rest != "" {
		nk += "." + rest
	}
	return nk, true
}
