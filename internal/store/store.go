// Package store owns the three parallel trees of a form: values, touched
// flags and the sparse errors map. Every mutation goes through a Store method
// so the cached path index stays fresh and the Notifier sees each write.
package store

import (
	"maps"

	"github.com/reoring/goform/internal/pathtree"
)

// Root identifies which tree a write landed in.
type Root uint8

const (
	RootValues Root = iota
	RootTouched
	RootErrors
)

// String returns the tree name used as the top-level key of a state dump.
func (r Root) String() string {
	switch r {
	case RootValues:
		return "values"
	case RootTouched:
		return "touched"
	case RootErrors:
		return "errors"
	default:
		return "unknown"
	}
}

// Notifier observes every write routed through a Store. path is relative to
// the tree named by root; "" means the whole tree was replaced.
type Notifier interface {
	Written(root Root, path string)
}

type nopNotifier struct{}

func (nopNotifier) Written(Root, string) {}

// Store holds the form state. It is not safe for concurrent use; a form is
// driven from a single event loop.
type Store struct {
	values  map[string]any
	touched any
	errors  map[string]string
	paths   pathtree.Paths

	notifier Notifier
	onShape  []func()
}

// New takes ownership of values; callers pass a private clone.
func New(values map[string]any, n Notifier) *Store {
	if values == nil {
		values = map[string]any{}
	}
	if n == nil {
		n = nopNotifier{}
	}
	s := &Store{
		values:   values,
		touched:  pathtree.Mirror(values, false),
		errors:   map[string]string{},
		notifier: n,
	}
	s.paths = pathtree.Flatten(s.values)
	return s
}

// OnShapeChange registers fn to run after the path index is recomputed.
func (s *Store) OnShapeChange(fn func()) {
	if fn != nil {
		s.onShape = append(s.onShape, fn)
	}
}

// Paths returns the cached path index.
func (s *Store) Paths() pathtree.Paths { return s.paths }

// Value returns the live node at path. Callers must not mutate containers
// they receive; use Snapshot for a private copy.
func (s *Store) Value(path string) (any, error) {
	return pathtree.Get(s.values, path)
}

// Values returns a deep copy of the value tree.
func (s *Store) Values() map[string]any {
	return pathtree.Clone(s.values).(map[string]any)
}

// SetValue writes value at path. A write that creates a path or replaces a
// container changes the tree's shape and triggers a full recompute of the
// path index and the touched tree before the notifier runs.
func (s *Store) SetValue(path string, value any) error {
	value = pathtree.Clone(value)
	prev, existed := s.paths.Values[path]
	root, err := pathtree.Set(s.values, path, value)
	if err != nil {
		return err
	}
	s.values = root.(map[string]any)
	if !existed || pathtree.IsContainer(value) || pathtree.IsContainer(prev) {
		s.recompute()
	} else {
		s.paths.Values[path] = value
	}
	s.notifier.Written(RootValues, path)
	return nil
}

// ReplaceValues swaps the whole value tree. Touched flags are reconciled with
// the new shape and errors for vanished paths are dropped.
func (s *Store) ReplaceValues(values map[string]any) {
	if values == nil {
		values = map[string]any{}
	}
	s.values = values
	s.recompute()
	for k := range s.errors {
		if !s.paths.HasPath(k) {
			delete(s.errors, k)
		}
	}
	s.notifier.Written(RootValues, "")
}

// RemoveValue deletes the value at path. Array elements are spliced and the
// touched tree is spliced alongside so both trees keep the same shape.
func (s *Store) RemoveValue(path string) error {
	if !s.paths.HasPath(path) {
		// missing final segment is a no-op, a missing parent is not
		_, err := pathtree.Remove(s.values, path)
		return err
	}
	parent, _ := pathtree.SplitLast(path)
	root, err := pathtree.Remove(s.values, path)
	if err != nil {
		return err
	}
	s.values = root.(map[string]any)
	if t, err := pathtree.Remove(s.touched, path); err == nil {
		s.touched = t
	}
	s.recompute()
	s.notifier.Written(RootValues, parent)
	return nil
}

func (s *Store) recompute() {
	s.paths = pathtree.Flatten(s.values)
	s.touched = pathtree.Reconcile(s.values, s.touched)
	for _, fn := range s.onShape {
		fn()
	}
}

// isArrayElement reports whether path currently addresses an array element.
func (s *Store) isArrayElement(path string) bool {
	parent, last := pathtree.SplitLast(path)
	if _, ok := pathtree.Index(last); !ok {
		return false
	}
	node, err := pathtree.Get(s.values, parent)
	if err != nil {
		return false
	}
	_, ok := node.([]any)
	return ok
}

// Snapshot returns deep copies of all three trees.
func (s *Store) Snapshot() (values map[string]any, touched map[string]any, errors map[string]string) {
	return s.Values(), pathtree.Clone(s.touched).(map[string]any), maps.Clone(s.errors)
}
