// Package notify dispatches watch callbacks and the debug hook for writes
// routed through a store.Store.
package notify

import (
	"github.com/reoring/goform/internal/pathtree"
	"github.com/reoring/goform/internal/store"
)

// WatchFunc receives the current value at the watched path together with
// that path's error message and OR-reduced touched flag.
type WatchFunc func(value any, err string, touched bool)

// Source is the read side of the state a Notifier reports on.
type Source interface {
	Value(path string) (any, error)
	Error(path string) (string, bool)
	IsTouched(path string) (bool, error)
}

// Notifier implements store.Notifier. Watch keys are concrete paths or
// patterns with pathtree.Item segments; a key fires when the written path
// and one of the key's concrete paths lie on the same branch.
type Notifier struct {
	watch map[string]WatchFunc
	keys  []string
	debug func()
	src   Source

	held    int
	pending []string
	dirty   bool
}

var _ store.Notifier = (*Notifier)(nil)

// New copies watch so later changes to the caller's map have no effect.
// debug may be nil.
func New(watch map[string]WatchFunc, debug func()) *Notifier {
	w := make(map[string]WatchFunc, len(watch))
	for k, fn := range watch {
		if fn != nil {
			w[k] = fn
		}
	}
	return &Notifier{watch: w, keys: pathtree.SortedKeys(w), debug: debug}
}

// Bind attaches the state to read from. Writes seen before Bind only reach
// the debug hook.
func (n *Notifier) Bind(src Source) { n.src = src }

// Written dispatches watchers for value writes, then runs the debug hook for
// every write regardless of tree.
func (n *Notifier) Written(root store.Root, path string) {
	if n.held > 0 {
		if root == store.RootValues {
			n.pending = append(n.pending, path)
		}
		n.dirty = true
		return
	}
	if root == store.RootValues && n.src != nil {
		n.dispatch(path)
	}
	if n.debug != nil {
		n.debug()
	}
}

// Hold defers dispatch until the matching Release. Holds nest.
func (n *Notifier) Hold() { n.held++ }

// Release ends a Hold. When the outermost hold ends, queued value writes are
// dispatched in order and the debug hook runs once if anything was written.
func (n *Notifier) Release() {
	if n.held == 0 {
		return
	}
	n.held--
	if n.held > 0 {
		return
	}
	pending, dirty := n.pending, n.dirty
	n.pending, n.dirty = nil, false
	if n.src != nil {
		for _, path := range pending {
			n.dispatch(path)
		}
	}
	if dirty && n.debug != nil {
		n.debug()
	}
}

func (n *Notifier) dispatch(path string) {
	tree, err := n.src.Value("")
	if err != nil {
		return
	}
	type hit struct {
		fn       WatchFunc
		concrete string
	}
	// resolve first so callbacks that write do not disturb this round
	var hits []hit
	for _, key := range n.keys {
		for _, concrete := range pathtree.Expand(tree, key) {
			if pathtree.SameBranch(concrete, path) {
				hits = append(hits, hit{n.watch[key], concrete})
			}
		}
	}
	for _, h := range hits {
		v, err := n.src.Value(h.concrete)
		if err != nil {
			continue
		}
		msg, _ := n.src.Error(h.concrete)
		touched, _ := n.src.IsTouched(h.concrete)
		h.fn(pathtree.Clone(v), msg, touched)
	}
}
