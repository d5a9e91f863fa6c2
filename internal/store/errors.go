package store

import (
	"maps"

	"github.com/reoring/goform/internal/pathtree"
)

// Error returns the message stored at path. ok is false when the path has
// never been validated or its entry was removed.
func (s *Store) Error(path string) (msg string, ok bool) {
	msg, ok = s.errors[path]
	return msg, ok
}

// Errors returns a copy of the sparse errors map.
func (s *Store) Errors() map[string]string {
	return maps.Clone(s.errors)
}

// SetError records msg at path. An empty msg is stored as "validated, no
// error"; use DeleteError to make the entry absent.
func (s *Store) SetError(path, msg string) {
	s.errors[path] = msg
	s.notifier.Written(RootErrors, path)
}

// DeleteError makes the entry at path absent.
func (s *Store) DeleteError(path string) {
	if _, ok := s.errors[path]; !ok {
		return
	}
	delete(s.errors, path)
	s.notifier.Written(RootErrors, path)
}

// ClearErrors drops every entry.
func (s *Store) ClearErrors() {
	clear(s.errors)
	s.notifier.Written(RootErrors, "")
}

// RemoveError drops the entries at and below path. When path addresses an
// array element, entries of later siblings are renumbered down by one so
// they stay aligned with the spliced array.
func (s *Store) RemoveError(path string) {
	pathtree.RekeyAfterRemove(s.errors, path, s.isArrayElement(path))
	s.notifier.Written(RootErrors, path)
}

// Valid reports whether no entry holds a non-empty message.
func (s *Store) Valid() bool {
	for _, msg := range s.errors {
		if msg != "" {
			return false
		}
	}
	return true
}
