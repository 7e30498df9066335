package onboarding

import "fmt"

// Step is a wizard screen.
type Step int

const (
	StepWelcome Step = iota
	StepName
	StepAge
	StepGender
	// StepDone is reached only by a successful commit.
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepWelcome:
		return "Welcome"
	case StepName:
		return "Name"
	case StepAge:
		return "Age"
	case StepGender:
		return "Gender"
	case StepDone:
		return "Done"
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// ButtonLabel is the caption of the forward button on the step.
func (s Step) ButtonLabel() string {
	switch s {
	case StepWelcome:
		return "SIGN UP"
	case StepGender:
		return "FINISH"
	}
	return "NEXT"
}
