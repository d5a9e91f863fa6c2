package goform

// InputBinding connects a Form to its inputs. Paths are the dotted names the
// inputs carry. A Form calls the binding from inside its own methods only.
type InputBinding interface {
	// ReadInput returns the current value of the input named path.
	ReadInput(path string) (any, bool)
	// WriteInput pushes a value into the input named path.
	WriteInput(path string, value any)
	// BindBlur attaches onBlur to the input named path. The returned func
	// detaches it and may be nil when nothing was attached.
	BindBlur(path string, onBlur func()) (unbind func())
	// WriteError renders msg next to the input named path; "" clears it.
	WriteError(path, msg string)
	// HasAction reports whether the form element declares a submit action.
	HasAction() bool
}

// Headless is an InputBinding with no inputs. Reads fail, writes are dropped
// and HasAction is false.
type Headless struct{}

func (Headless) ReadInput(string) (any, bool)            { return nil, false }
func (Headless) WriteInput(string, any)                  {}
func (Headless) BindBlur(string, func()) (unbind func()) { return nil }
func (Headless) WriteError(string, string)               {}
func (Headless) HasAction() bool                         { return false }
