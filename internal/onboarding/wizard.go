package onboarding

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/onboarding/internal/logging"
	"github.com/dmitrijs2005/onboarding/internal/models"
)

// Committer persists a finished profile and flips the session flag.
type Committer interface {
	SignIn(ctx context.Context, p models.Profile) error
}

// Wizard holds the live State and carries out effects.
type Wizard struct {
	state     State
	committer Committer
	log       logging.Logger
}

func NewWizard(c Committer, log logging.Logger) *Wizard {
	return &Wizard{state: NewState(), committer: c, log: log}
}

// State returns a copy of the current state.
func (w *Wizard) State() State {
	return w.state
}

func (w *Wizard) Step() Step {
	return w.state.Step
}

// Done reports whether the profile has been committed.
func (w *Wizard) Done() bool {
	return w.state.Step == StepDone
}

// Reset starts over at Welcome with empty inputs.
func (w *Wizard) Reset() {
	w.state = NewState()
}

// Dispatch applies a. When Advance is rejected the returned error is the
// *ValidationError and the alert is visible in State. When the commit fails
// the wizard stays on the Gender step and the storage error is returned.
func (w *Wizard) Dispatch(ctx context.Context, a Action) error {
	next, effects := Transition(w.state, a)

	for _, e := range effects {
		switch e := e.(type) {
		case ShowAlert:
			w.state = next
			w.log.Debug(ctx, "wizard input rejected", "step", w.state.Step, "reason", e.Err)
			return e.Err
		case Commit:
			if err := w.committer.SignIn(ctx, e.Profile); err != nil {
				return fmt.Errorf("commit profile: %w", err)
			}
			w.log.Info(ctx, "onboarding completed")
		}
	}

	if next.Step != w.state.Step {
		w.log.Debug(ctx, "wizard advanced", "from", w.state.Step, "to", next.Step)
	}
	w.state = next
	return nil
}
