package goform

import (
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// State is a detached snapshot of the three trees.
type State struct {
	Values  map[string]any    `json:"values"`
	Touched map[string]any    `json:"touched"`
	Errors  map[string]string `json:"errors"`
}

// JSON renders the snapshot with sorted keys and two-space indentation.
func (s State) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Valid reports whether no error entry holds a message.
func (s State) Valid() bool {
	for _, msg := range s.Errors {
		if msg != "" {
			return false
		}
	}
	return true
}

// State returns a snapshot of values, touched flags and errors.
func (f *Form) State() State {
	v, t, e := f.store.Snapshot()
	return State{Values: v, Touched: t, Errors: e}
}

// dump runs after every write while debugging is enabled.
func (f *Form) dump() {
	b, err := f.State().JSON()
	if err != nil {
		f.log.Warn("encode state dump", zap.Error(err))
		return
	}
	if f.opts.DebugSink != nil {
		f.opts.DebugSink(b)
		return
	}
	f.log.Debug("form state", zap.ByteString("state", b))
}
