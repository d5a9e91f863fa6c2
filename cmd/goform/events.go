package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/reoring/goform"
	"github.com/reoring/goform/memdom"
)

// event is one line of a replay stream.
type event struct {
	Type  string `json:"type"`
	Path  string `json:"path,omitempty"`
	Value any    `json:"value,omitempty"`
	Index int    `json:"index,omitempty"`
}

// outcome records what the form did with an event.
type outcome struct {
	Seq            int    `json:"seq"`
	Type           string `json:"type"`
	Path           string `json:"path,omitempty"`
	Handled        bool   `json:"handled"`
	PreventDefault *bool  `json:"prevent_default,omitempty"`
	Error          string `json:"error,omitempty"`
}

// decodeEvents reads a stream of JSON events, one object after another.
func decodeEvents(r io.Reader) ([]event, error) {
	dec := json.NewDecoder(r)
	var out []event
	for {
		var e event
		err := dec.Decode(&e)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", len(out)+1, err)
		}
		out = append(out, e)
	}
}

// apply feeds e to f through dom the way a browser would: input events
// first change the input, then notify the form.
func (e event) apply(f *goform.Form, dom *memdom.Form) outcome {
	o := outcome{Type: e.Type, Path: e.Path}
	var err error
	switch e.Type {
	case "input":
		dom.Type(e.Path, e.Value)
		o.Handled = f.HandleInput(e.Path)
	case "blur":
		o.Handled = dom.Blur(e.Path) > 0
	case "submit":
		prevent := f.HandleSubmit()
		o.Handled, o.PreventDefault = true, &prevent
	case "add":
		_, err = f.AddArrayItem(e.Path, e.Value)
		o.Handled = err == nil
	case "remove":
		err = f.RemoveArrayItem(e.Path, e.Index)
		o.Handled = err == nil
	case "set":
		err = f.SetFieldValue(e.Path, e.Value)
		o.Handled = err == nil
	case "reset":
		f.ResetForm()
		o.Handled = true
	default:
		err = fmt.Errorf("unknown event type %q", e.Type)
	}
	if err != nil {
		o.Error = err.Error()
	}
	return o
}
