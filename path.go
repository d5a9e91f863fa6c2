package goform

import (
	"strconv"

	"github.com/reoring/goform/internal/pathtree"
)

// Item is the wildcard segment accepted in validator and watch keys. It
// stands for every element of the array at that position.
const Item = pathtree.Item

// PathRef builds dotted paths in a chain-safe way. It never consults a form;
// use Form.Path to check a path against the current values.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Item() PathRef
	String() string
}

// Root returns the empty path, the parent of every top-level field.
func Root() PathRef { return &pathRef{} }

// At starts a PathRef from a dotted path.
func At(path string) PathRef { return &pathRef{parts: pathtree.Split(path)} }

type pathRef struct {
	parts []string
}

func (p *pathRef) with(seg string) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), seg)}
}

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	return p.with(name)
}

func (p *pathRef) Index(i int) PathRef { return p.with(strconv.Itoa(i)) }

func (p *pathRef) Item() PathRef { return p.with(Item) }

func (p *pathRef) String() string {
	s := ""
	for _, seg := range p.parts {
		s = pathtree.Join(s, seg)
	}
	return s
}

// Path is a dotted path that resolved against a form's values when it was
// created. The tree can change shape afterwards, so Form methods taking a
// Path check it again.
type Path struct {
	s    string
	leaf bool
}

func (p Path) String() string { return p.s }

// Leaf reports whether the path addressed a scalar or null when resolved.
func (p Path) Leaf() bool { return p.leaf }

// Segments splits the path into its segments.
func (p Path) Segments() []string { return pathtree.Split(p.s) }

// Path resolves s against the current values.
func (f *Form) Path(s string) (Path, error) {
	paths := f.store.Paths()
	if !paths.HasPath(s) {
		return Path{}, pathErr("resolve", s, ErrInvalidPath)
	}
	return Path{s: s, leaf: paths.HasLeaf(s)}, nil
}

// Get returns a copy of the value at p.
func (f *Form) Get(p Path) (any, error) { return f.FieldValue(p.s) }

// Set writes v at p. p must still resolve.
func (f *Form) Set(p Path, v any) error {
	if !f.store.Paths().HasPath(p.s) {
		return pathErr("set", p.s, ErrInvalidPath)
	}
	return f.SetFieldValue(p.s, v)
}
