package goform

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"github.com/reoring/goform/internal/notify"
	"github.com/reoring/goform/internal/pathtree"
	"github.com/reoring/goform/internal/store"
	"github.com/reoring/goform/internal/validation"
)

// Form owns the value, touched and errors trees of one form and drives them
// from input, blur and submit events.
type Form struct {
	id      string
	opts    Options
	binding InputBinding
	log     *zap.Logger

	store    *store.Store
	engine   *validation.Engine
	notifier *notify.Notifier
	initial  map[string]any

	validateOnChange bool
	validateOnBlur   bool

	unbind  []func()
	phase   *fsm.FSM
	submits int
}

// New builds a Form from opts. binding may be nil, or a nil pointer of a
// concrete binding type, for a headless form.
func New(opts Options, binding InputBinding) (*Form, error) {
	initial, err := toRecord(opts.InitialValues)
	if err != nil {
		return nil, fmt.Errorf("goform: initial values: %w", err)
	}
	if isNilBinding(binding) {
		binding = Headless{}
	}
	id := uuid.NewString()
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("form", opts.FormID), zap.String("instance", id))

	f := &Form{
		id:               id,
		opts:             opts,
		binding:          binding,
		log:              log,
		initial:          initial,
		validateOnChange: boolOr(opts.ValidateOnChange, true),
		validateOnBlur:   boolOr(opts.ValidateOnBlur, true),
		engine:           validation.New(opts.Validations),
		phase:            newLifecycle(log),
	}
	var debug func()
	if opts.Debug {
		debug = f.dump
	}
	f.notifier = notify.New(opts.Watch, debug)
	f.store = store.New(pathtree.Clone(initial).(map[string]any), f.notifier)
	f.notifier.Bind(f.store)
	f.store.OnShapeChange(f.bindBlur)
	f.bindBlur()
	f.syncInputs("")

	log.Debug("form created",
		zap.Int("paths", len(f.store.Paths().All)),
		zap.Strings("validators", f.engine.Keys()))
	return f, nil
}

func isNilBinding(b InputBinding) bool {
	if b == nil {
		return true
	}
	rv := reflect.ValueOf(b)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func toRecord(v any) (map[string]any, error) {
	m, err := pathtree.CloneRecord(v)
	if err != nil {
		return nil, fmt.Errorf("%w, got %T", ErrNotRecord, v)
	}
	return m, nil
}

// ID returns the instance id assigned at construction.
func (f *Form) ID() string { return f.id }

// FormID returns Options.FormID.
func (f *Form) FormID() string { return f.opts.FormID }

// AllPaths returns every addressable path, containers included.
func (f *Form) AllPaths() []string { return append([]string(nil), f.store.Paths().All...) }

// LeafPaths returns every path that addresses a scalar or null.
func (f *Form) LeafPaths() []string { return append([]string(nil), f.store.Paths().Leaf...) }

// Values returns a copy of the value tree.
func (f *Form) Values() map[string]any { return f.store.Values() }

// Errors returns a copy of the sparse errors map.
func (f *Form) Errors() map[string]string { return f.store.Errors() }

// Issues lists every non-empty error in path order.
func (f *Form) Issues() Issues { return issuesFrom(f.store.Errors()) }

// Err returns nil when the form is valid, otherwise its Issues.
func (f *Form) Err() error {
	if iss := f.Issues(); len(iss) > 0 {
		return iss
	}
	return nil
}

// SetFieldValue writes value at path and pushes leaves under path to their
// inputs. The final segment may be new; every parent must exist.
func (f *Form) SetFieldValue(path string, value any) error {
	if err := f.store.SetValue(path, value); err != nil {
		return pathErr("set value", path, err)
	}
	f.syncInputs(path)
	return nil
}

// FieldValue returns a copy of the value at path. "" addresses the root.
func (f *Form) FieldValue(path string) (any, error) {
	v, err := f.store.Value(path)
	if err != nil {
		return nil, pathErr("get value", path, err)
	}
	return pathtree.Clone(v), nil
}

// SetFieldTouched sets the flag of every leaf under path.
func (f *Form) SetFieldTouched(path string, touched bool) error {
	return pathErr("set touched", path, f.store.SetTouched(path, touched))
}

// FieldTouched returns the raw touched node at path: a bool for leaves, a
// tree of bools for containers.
func (f *Form) FieldTouched(path string) (any, error) {
	t, err := f.store.Touched(path)
	if err != nil {
		return nil, pathErr("get touched", path, err)
	}
	return t, nil
}

// IsFieldTouched reports whether any leaf under path is touched.
func (f *Form) IsFieldTouched(path string) (bool, error) {
	t, err := f.store.IsTouched(path)
	if err != nil {
		return false, pathErr("get touched", path, err)
	}
	return t, nil
}

// SetFieldError stores msg for path; "" records a passed validation.
func (f *Form) SetFieldError(path, msg string) error {
	if !f.store.Paths().HasPath(path) {
		return pathErr("set error", path, ErrInvalidPath)
	}
	f.store.SetError(path, msg)
	f.render()
	return nil
}

// ClearFieldError removes the entry for path so it reads as never validated.
func (f *Form) ClearFieldError(path string) {
	f.store.DeleteError(path)
	f.render()
}

// FieldError returns the message for path, "" when absent or valid.
func (f *Form) FieldError(path string) string {
	msg, _ := f.store.Error(path)
	return msg
}

// ValidateField re-runs the validators affected by a change at path.
func (f *Form) ValidateField(path string) error {
	if !f.store.Paths().HasPath(path) {
		return pathErr("validate", path, ErrInvalidPath)
	}
	f.engine.ValidateField(f.store, path)
	f.render()
	return nil
}

// ValidateForm validates every path. Only touched fields produce entries.
func (f *Form) ValidateForm() {
	f.engine.ValidateForm(f.store)
	f.render()
}

// IsValid reports whether no error entry holds a message.
func (f *Form) IsValid() bool { return f.store.Valid() }

// ResetForm restores the initial values and clears touched flags and errors.
func (f *Form) ResetForm() {
	f.store.ReplaceValues(pathtree.Clone(f.initial).(map[string]any))
	_ = f.store.SetTouched("", false)
	f.store.ClearErrors()
	f.submits = 0
	f.transition(eventReset)
	f.syncInputs("")
	f.render()
	f.log.Debug("form reset")
}

// SetFormValue replaces the whole value tree. Touched flags survive where the
// shape still matches and errors for vanished paths are dropped.
func (f *Form) SetFormValue(values any) error {
	m, err := toRecord(values)
	if err != nil {
		return fmt.Errorf("goform: set form value: %w", err)
	}
	f.store.ReplaceValues(m)
	f.syncInputs("")
	f.render()
	return nil
}

// AddArrayItem appends value to the array at path and returns its index.
func (f *Form) AddArrayItem(path string, value any) (int, error) {
	n, err := f.arrayLen("add item", path)
	if err != nil {
		return 0, err
	}
	item := At(path).Index(n).String()
	if err := f.store.SetValue(item, value); err != nil {
		return 0, pathErr("add item", item, err)
	}
	f.syncInputs(item)
	return n, nil
}

// RemoveArrayItem splices index out of the array at path. Touched flags and
// errors of later elements move down by one with their values.
func (f *Form) RemoveArrayItem(path string, index int) error {
	n, err := f.arrayLen("remove item", path)
	if err != nil {
		return err
	}
	item := At(path).Index(index).String()
	if index < 0 || index >= n {
		return pathErr("remove item", item, ErrInvalidPath)
	}
	f.store.RemoveError(item)
	if err := f.store.RemoveValue(item); err != nil {
		return pathErr("remove item", item, err)
	}
	if f.validateOnChange {
		f.engine.ValidateField(f.store, path)
	}
	f.syncInputs(path)
	f.render()
	return nil
}

func (f *Form) arrayLen(op, path string) (int, error) {
	v, err := f.store.Value(path)
	if err != nil {
		return 0, pathErr(op, path, err)
	}
	arr, ok := v.([]any)
	if !ok {
		return 0, pathErr(op, path, ErrNotArray)
	}
	return len(arr), nil
}

// RemoveFormValue deletes the value at path. Array elements are spliced and
// the touched tree follows. A missing final segment is a no-op.
func (f *Form) RemoveFormValue(path string) error {
	return pathErr("remove value", path, f.store.RemoveValue(path))
}

// RemoveFieldTouch resets the touched flags under path.
func (f *Form) RemoveFieldTouch(path string) error {
	return pathErr("remove touched", path, f.store.RemoveTouched(path))
}

// RemoveFieldError drops the error at path. For array elements the errors of
// later siblings move down by one index; call it before RemoveFormValue on
// the same element.
func (f *Form) RemoveFieldError(path string) {
	f.store.RemoveError(path)
}

// bindBlur replaces the blur listeners with one per leaf path.
func (f *Form) bindBlur() {
	for _, unbind := range f.unbind {
		unbind()
	}
	f.unbind = f.unbind[:0]
	for _, p := range f.store.Paths().Leaf {
		path := p
		if unbind := f.binding.BindBlur(path, func() { f.HandleBlur(path) }); unbind != nil {
			f.unbind = append(f.unbind, unbind)
		}
	}
}

// syncInputs writes every leaf at or under prefix to its input.
func (f *Form) syncInputs(prefix string) {
	paths := f.store.Paths()
	for _, p := range paths.Leaf {
		if pathtree.IsWithin(p, prefix) {
			f.binding.WriteInput(p, paths.Values[p])
		}
	}
}

// Close detaches every blur listener.
func (f *Form) Close() {
	for _, unbind := range f.unbind {
		unbind()
	}
	f.unbind = nil
}
