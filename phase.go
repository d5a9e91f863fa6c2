package goform

import (
	"context"
	"errors"

	"github.com/looplab/fsm"
	"go.uber.org/zap"
)

// Phase is where a form is in its edit and submit lifecycle.
type Phase string

const (
	PhasePristine  Phase = "pristine"  // no input since construction or reset
	PhaseDirty     Phase = "dirty"     // input received since the last submit
	PhaseSubmitted Phase = "submitted" // last submit was valid
	PhaseRejected  Phase = "rejected"  // last submit failed validation
)

const (
	eventChange        = "change"
	eventSubmitValid   = "submit_valid"
	eventSubmitInvalid = "submit_invalid"
	eventReset         = "reset"
)

func newLifecycle(log *zap.Logger) *fsm.FSM {
	all := []string{string(PhasePristine), string(PhaseDirty), string(PhaseSubmitted), string(PhaseRejected)}
	return fsm.NewFSM(
		string(PhasePristine),
		fsm.Events{
			{Name: eventChange, Src: all, Dst: string(PhaseDirty)},
			{Name: eventSubmitValid, Src: all, Dst: string(PhaseSubmitted)},
			{Name: eventSubmitInvalid, Src: all, Dst: string(PhaseRejected)},
			{Name: eventReset, Src: all, Dst: string(PhasePristine)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				log.Debug("phase changed", zap.String("from", e.Src), zap.String("to", e.Dst), zap.String("event", e.Event))
			},
		},
	)
}

// Phase returns the current lifecycle phase.
func (f *Form) Phase() Phase { return Phase(f.phase.Current()) }

// SubmitCount returns how many submit events the form has handled.
func (f *Form) SubmitCount() int { return f.submits }

func (f *Form) transition(event string) {
	err := f.phase.Event(context.Background(), event)
	if err == nil {
		return
	}
	// staying in the same phase is not a failure
	var same fsm.NoTransitionError
	if errors.As(err, &same) {
		return
	}
	f.log.Warn("phase transition", zap.String("event", event), zap.Error(err))
}
