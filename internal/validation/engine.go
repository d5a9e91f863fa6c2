// Package validation evaluates a path-keyed validator registry against form
// state and writes the outcomes into the errors tree.
package validation

import (
	"strings"

	"github.com/reoring/goform/internal/pathtree"
)

// Func validates one value and returns an error message, or "" when valid.
type Func func(value any) string

// State is the slice of the form state the engine reads and writes.
type State interface {
	Value(path string) (any, error)
	IsTouched(path string) (bool, error)
	SetError(path, msg string)
	Paths() pathtree.Paths
}

// Engine holds an immutable validator registry.
type Engine struct {
	registry map[string]Func
	keys     []string
}

// New copies registry; nil validators are dropped.
func New(registry map[string]Func) *Engine {
	r := make(map[string]Func, len(registry))
	for k, fn := range registry {
		if fn != nil {
			r[k] = fn
		}
	}
	return &Engine{registry: r, keys: pathtree.SortedKeys(r)}
}

// Keys returns the registry keys in evaluation order.
func (e *Engine) Keys() []string { return append([]string(nil), e.keys...) }

// ValidateField re-evaluates the registry after a change at path.
//
// The whole registry is scanned on every call. Wildcard keys expand over the
// current arrays and re-validate every touched element, whatever path is.
// A concrete key k runs only when k is touched and path has k as a literal
// string prefix, so validating "address.city" also re-runs a validator
// registered on "address". The prefix test is textual: "address.city2"
// matches a key "address.city" as well.
func (e *Engine) ValidateField(s State, path string) {
	var tree any
	for _, key := range e.keys {
		fn := e.registry[key]
		if pathtree.HasWildcard(key) {
			if tree == nil {
				tree, _ = s.Value("")
			}
			for _, concrete := range pathtree.Expand(tree, key) {
				e.run(s, concrete, fn)
			}
			continue
		}
		if !strings.HasPrefix(path, key) {
			continue
		}
		e.run(s, key, fn)
	}
}

func (e *Engine) run(s State, path string, fn Func) {
	touched, err := s.IsTouched(path)
	if err != nil || !touched {
		return
	}
	v, err := s.Value(path)
	if err != nil {
		return
	}
	if pathtree.IsContainer(v) {
		v = pathtree.Clone(v)
	}
	s.SetError(path, fn(v))
}

// ValidateForm calls ValidateField for every path in the current index.
// The cost is |paths| x |registry|, fine for forms with tens of fields.
func (e *Engine) ValidateForm(s State) {
	for _, path := range s.Paths().All {
		e.ValidateField(s, path)
	}
}

// IsValid reports whether no entry in errs holds a non-empty message.
func IsValid(errs map[string]string) bool {
	for _, msg := range errs {
		if msg != "" {
			return false
		}
	}
	return true
}
