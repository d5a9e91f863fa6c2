// Package pathtree resolves dotted paths against JSON-like value trees built
// from map[string]any records, []any sequences and scalars.
//
// A path is a dot-separated list of segments. A segment is a record key, a
// canonical non-negative array index ("0", "12"), or the wildcard Item which
// stands for any element of the enclosing array. Wildcards are only matched
// against registry keys; Get/Set/Remove never accept them.
package pathtree

import (
	"errors"
	"fmt"
	"strings"
)

// Item is the wildcard segment matching every element of an array.
const Item = "_item"

// ErrInvalidPath reports that an intermediate segment does not exist.
var ErrInvalidPath = errors.New("invalid path")

func invalid(path string) error {
	return fmt.Errorf("%w: %q", ErrInvalidPath, path)
}

// Split breaks a path into segments. The empty path addresses the root and
// has no segments.
func Split(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// Join concatenates a parent path and a child segment.
func Join(parent, seg string) string {
	if parent == "" {
		return seg
	}
	return parent + "." + seg
}

// SplitLast returns the parent path and the final segment.
func SplitLast(path string) (parent, last string) {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return "", path
	}
	return path[:i], path[i+1:]
}

// Index parses a canonical non-negative array index segment.
// Leading zeros and signs are rejected so that "01" stays a record key.
func Index(seg string) (int, bool) {
	if seg == "" || len(seg) > 9 {
		return 0, false
	}
	if len(seg) > 1 && seg[0] == '0' {
		return 0, false
	}
	n := 0
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// HasWildcard reports whether any segment of path is Item.
func HasWildcard(path string) bool {
	for _, seg := range Split(path) {
		if seg == Item {
			return true
		}
	}
	return false
}

// IsWithin reports whether path equals ancestor or lies below it.
// Every path lies within the root ("").
func IsWithin(path, ancestor string) bool {
	if ancestor == "" || path == ancestor {
		return true
	}
	return strings.HasPrefix(path, ancestor+".")
}

// SameBranch reports whether one path is within the other.
func SameBranch(a, b string) bool {
	return IsWithin(a, b) || IsWithin(b, a)
}
