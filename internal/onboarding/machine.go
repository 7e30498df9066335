package onboarding

import (
	"math"

	"github.com/dmitrijs2005/onboarding/internal/models"
)

// Age slider bounds and the wizard's starting value.
const (
	MinAge     = 18
	MaxAge     = 120
	DefaultAge = 50

	MinNameLength = 2
)

// Draft holds the editable inputs while the wizard runs. Age is continuous,
// like the slider that feeds it.
type Draft struct {
	Name   string
	Age    float64
	Gender string
}

// Alert is the single modal message. Dismissing hides it but keeps Title
// until the next failure overwrites it.
type Alert struct {
	Title   string
	Visible bool
}

// State is everything the wizard tracks between user actions.
type State struct {
	Step  Step
	Draft Draft
	Alert Alert
}

// NewState is the state the wizard starts in, and returns to after sign-out.
func NewState() State {
	return State{Step: StepWelcome, Draft: Draft{Age: DefaultAge}}
}

// Action is a user input.
type Action interface{ action() }

type (
	// Advance is a press of the forward button.
	Advance struct{}
	// SetName replaces the name being typed.
	SetName struct{ Name string }
	// SetAge moves the age slider. Values outside the range are clamped.
	SetAge struct{ Age float64 }
	// SetGender picks a gender; "" clears the choice.
	SetGender struct{ Gender string }
	// DismissAlert closes the visible alert.
	DismissAlert struct{}
)

func (Advance) action()      {}
func (SetName) action()      {}
func (SetAge) action()       {}
func (SetGender) action()    {}
func (DismissAlert) action() {}

// Effect is work a transition asks the caller to do.
type Effect interface{ effect() }

type (
	// ShowAlert asks for the alert to be presented.
	ShowAlert struct {
		Title string
		Err   error
	}
	// Commit asks for the profile to be persisted and the session flag set.
	Commit struct{ Profile models.Profile }
)

func (ShowAlert) effect() {}
func (Commit) effect()    {}

// ClampAge limits age to [MinAge, MaxAge].
func ClampAge(age float64) float64 {
	if math.IsNaN(age) {
		return DefaultAge
	}
	return math.Min(MaxAge, math.Max(MinAge, age))
}

// Transition computes the next state for a. It never mutates s.
// Once StepDone is reached every action is ignored.
func Transition(s State, a Action) (State, []Effect) {
	if s.Step == StepDone {
		return s, nil
	}

	switch a := a.(type) {
	case SetName:
		s.Draft.Name = a.Name
	case SetAge:
		s.Draft.Age = ClampAge(a.Age)
	case SetGender:
		s.Draft.Gender = a.Gender
	case DismissAlert:
		s.Alert.Visible = false
	case Advance:
		return advance(s)
	}
	return s, nil
}

func advance(s State) (State, []Effect) {
	if ve := check(s.Step, s.Draft); ve != nil {
		s.Alert = Alert{Title: ve.Title, Visible: true}
		return s, []Effect{ShowAlert{Title: ve.Title, Err: ve}}
	}

	if s.Step == StepGender {
		p := models.Profile{
			Name:   s.Draft.Name,
			Age:    int(math.Trunc(s.Draft.Age)),
			Gender: s.Draft.Gender,
		}
		s.Step = StepDone
		return s, []Effect{Commit{Profile: p}}
	}

	s.Step++
	return s, nil
}
