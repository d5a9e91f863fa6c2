package goform

import (
	"go.uber.org/zap"
)

// HandleInput processes an input event on the input named path: the field is
// touched, the value read from the binding is written, the field is
// validated when ValidateOnChange is on, and watchers, the debug dump and
// error rendering follow. Only leaf paths carry inputs; any other name,
// containers included, is ignored and HandleInput reports false.
func (f *Form) HandleInput(path string) bool {
	if !f.store.Paths().HasLeaf(path) {
		f.log.Debug("input ignored", zap.String("path", path))
		return false
	}
	value, ok := f.binding.ReadInput(path)
	if !ok {
		f.log.Debug("input unreadable", zap.String("path", path))
		return false
	}

	f.notifier.Hold()
	_ = f.store.SetTouched(path, true)
	if err := f.store.SetValue(path, value); err != nil {
		f.notifier.Release()
		f.log.Warn("input write", zap.String("path", path), zap.Error(err))
		return false
	}
	if f.validateOnChange {
		f.engine.ValidateField(f.store, path)
	}
	f.notifier.Release()

	f.render()
	f.transition(eventChange)
	if f.opts.OnChange != nil {
		f.opts.OnChange(f)
	}
	return true
}

// HandleBlur processes a blur event on the input named path: the field is
// touched and validated when ValidateOnBlur is on. Names that are not leaf
// paths are ignored.
func (f *Form) HandleBlur(path string) bool {
	if !f.store.Paths().HasLeaf(path) {
		f.log.Debug("blur ignored", zap.String("path", path))
		return false
	}

	f.notifier.Hold()
	_ = f.store.SetTouched(path, true)
	if f.validateOnBlur {
		f.engine.ValidateField(f.store, path)
	}
	f.notifier.Release()

	f.render()
	if f.opts.OnBlur != nil {
		f.opts.OnBlur(f)
	}
	return true
}

// HandleSubmit touches every field, validates the whole form and reports
// whether the native submission must be prevented. It is prevented when the
// binding declares no action or the form is invalid. OnSubmit runs only for
// a valid form, with a copy of the values.
func (f *Form) HandleSubmit() (preventDefault bool) {
	f.notifier.Hold()
	f.store.TouchLeaves()
	f.engine.ValidateForm(f.store)
	f.notifier.Release()

	valid := f.store.Valid()
	preventDefault = !f.binding.HasAction() || !valid
	f.submits++

	f.render()
	if valid {
		f.transition(eventSubmitValid)
	} else {
		f.transition(eventSubmitInvalid)
	}
	f.log.Debug("form submitted",
		zap.Bool("valid", valid),
		zap.Bool("prevent_default", preventDefault),
		zap.Int("submit_count", f.submits))

	if valid && f.opts.OnSubmit != nil {
		f.opts.OnSubmit(f.store.Values())
	}
	return preventDefault
}

// render shows the current errors, through RenderError when configured and
// otherwise by writing each path's message (or "") through the binding.
func (f *Form) render() {
	if f.opts.RenderError != nil {
		f.opts.RenderError(f.State(), f.binding, f.LeafPaths())
		return
	}
	paths := f.store.Paths()
	for _, p := range paths.All {
		msg, _ := f.store.Error(p)
		f.binding.WriteError(p, msg)
	}
}
