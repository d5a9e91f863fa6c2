// Package memdom is an in-memory form element: named inputs, error slots and
// blur listeners. It implements goform.InputBinding for headless use.
package memdom

import (
	"maps"
	"slices"

	"github.com/reoring/goform"
)

// Form holds the inputs of one form element.
type Form struct {
	action string
	inputs map[string]any
	errors map[string]string
	blur   map[string]map[int]func()
	nextID int
}

var _ goform.InputBinding = (*Form)(nil)

// New returns an empty form element. An empty action means the element has
// no action attribute.
func New(action string) *Form {
	return &Form{
		action: action,
		inputs: map[string]any{},
		errors: map[string]string{},
		blur:   map[string]map[int]func(){},
	}
}

// Type sets the value of the input named name, creating it if needed, the
// way a user edits a field. It does not notify the form.
func (d *Form) Type(name string, value any) { d.inputs[name] = value }

// Blur fires the blur listeners of name and returns how many ran.
func (d *Form) Blur(name string) int {
	ls := d.blur[name]
	n := 0
	for _, id := range slices.Sorted(maps.Keys(ls)) {
		// a listener may detach others
		if fn, ok := ls[id]; ok {
			fn()
			n++
		}
	}
	return n
}

// Input returns the current value of the input named name.
func (d *Form) Input(name string) (any, bool) {
	v, ok := d.inputs[name]
	return v, ok
}

// ErrorText returns the text of the error slot for name.
func (d *Form) ErrorText(name string) string { return d.errors[name] }

// Listeners returns how many blur listeners are attached to name.
func (d *Form) Listeners(name string) int { return len(d.blur[name]) }

// Names returns the input names in sorted order.
func (d *Form) Names() []string { return slices.Sorted(maps.Keys(d.inputs)) }

// SetAction replaces the action attribute; "" removes it.
func (d *Form) SetAction(action string) { d.action = action }

func (d *Form) ReadInput(path string) (any, bool) { return d.Input(path) }

func (d *Form) WriteInput(path string, value any) { d.inputs[path] = value }

func (d *Form) BindBlur(path string, onBlur func()) (unbind func()) {
	if onBlur == nil {
		return nil
	}
	id := d.nextID
	d.nextID++
	if d.blur[path] == nil {
		d.blur[path] = map[int]func(){}
	}
	d.blur[path][id] = onBlur
	return func() {
		delete(d.blur[path], id)
		if len(d.blur[path]) == 0 {
			delete(d.blur, path)
		}
	}
}

func (d *Form) WriteError(path, msg string) { d.errors[path] = msg }

func (d *Form) HasAction() bool { return d.action != "" }
