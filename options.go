package goform

import (
	"go.uber.org/zap"

	"github.com/reoring/goform/internal/notify"
	"github.com/reoring/goform/internal/validation"
)

// Validator checks one value and returns an error message, or "" when the
// value is valid. Containers arrive as deep copies.
type Validator = validation.Func

// WatchFunc observes a watched path after each value write that touches it.
// It receives a copy of the value, the path's current error message and its
// touched flag (OR-reduced for containers).
type WatchFunc = notify.WatchFunc

// RenderFunc replaces the default error rendering. It runs after every input,
// blur and submit event and after calls that change errors. It receives a
// snapshot of the state, the binding and the leaf paths that have inputs.
type RenderFunc func(state State, binding InputBinding, inputs []string)

// Options configures a Form. The zero value is a headless form with no
// initial values and no validators.
type Options struct {
	// FormID names the form in logs and manifests.
	FormID string
	// InitialValues must be record shaped: a map with string keys, a struct,
	// or a pointer to either. It is deep-copied and normalised.
	InitialValues any
	// Validations maps paths or "_item" patterns to validators.
	Validations map[string]Validator

	// ValidateOnChange and ValidateOnBlur default to true when nil.
	ValidateOnChange *bool
	ValidateOnBlur   *bool

	// OnSubmit receives a copy of the values after a valid submit.
	OnSubmit func(values map[string]any)
	// OnChange runs after every handled input event.
	OnChange func(f *Form)
	// OnBlur runs after every handled blur event.
	OnBlur func(f *Form)
	// RenderError, when set, replaces InputBinding.WriteError rendering. It
	// runs after every event and after calls that change errors.
	RenderError RenderFunc

	// Watch maps paths or "_item" patterns to callbacks.
	Watch map[string]WatchFunc

	// Debug dumps the full state after every write.
	Debug bool
	// DebugSink receives each dump. Defaults to a debug-level log entry.
	DebugSink func(dump []byte)

	// Logger defaults to zap.NewNop().
	Logger *zap.Logger
}

// Bool returns a pointer to b for the tri-state option fields.
func Bool(b bool) *bool { return &b }

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
