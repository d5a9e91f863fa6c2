package store

import (
	"github.com/reoring/goform/internal/pathtree"
)

// Touched returns the raw touched node at path: a bool for a leaf, or a copy
// of the flag subtree for a container.
func (s *Store) Touched(path string) (any, error) {
	node, err := pathtree.Get(s.touched, path)
	if err != nil {
		return nil, err
	}
	return pathtree.Clone(node), nil
}

// IsTouched reports whether the leaf at path, or any leaf below a container
// at path, is touched.
func (s *Store) IsTouched(path string) (bool, error) {
	node, err := pathtree.Get(s.touched, path)
	if err != nil {
		return false, err
	}
	return pathtree.OrReduce(node), nil
}

// SetTouched marks path. Marking a container marks every leaf below it, so
// the touched tree keeps the shape of the value tree. The empty path marks
// the whole form.
func (s *Store) SetTouched(path string, touched bool) error {
	if path == "" {
		s.touched = pathtree.Mirror(s.values, touched)
		s.notifier.Written(RootTouched, path)
		return nil
	}
	node, err := pathtree.Get(s.values, path)
	if err != nil {
		return err
	}
	root, err := pathtree.Set(s.touched, path, pathtree.Mirror(node, touched))
	if err != nil {
		return err
	}
	s.touched = root
	s.notifier.Written(RootTouched, path)
	return nil
}

// TouchLeaves marks every leaf path touched.
func (s *Store) TouchLeaves() {
	_ = s.SetTouched("", true)
}

// RemoveTouched clears the touched flags at path. The flag tree mirrors the
// value tree, so removing a flag resets it rather than deleting the node;
// array splicing of flags happens in RemoveValue. A path that no longer
// resolves is a no-op.
func (s *Store) RemoveTouched(path string) error {
	if path != "" && !s.paths.HasPath(path) {
		return nil
	}
	return s.SetTouched(path, false)
}
