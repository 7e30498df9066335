package onboarding

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	ErrNameTooShort      = errors.New("name too short")
	ErrGenderNotSelected = errors.New("gender not selected")
)

// Alert titles, one per failure.
const (
	TitleNameTooShort      = "Please enter your name (at least 2 characters)"
	TitleGenderNotSelected = "Please select a gender"
)

// ValidationError blocks the forward transition from Step. Title is the
// message shown to the user.
type ValidationError struct {
	Step  Step
	Title string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s step: %v", e.Step, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks the draft fields the step collects. Welcome and Age never
// fail. A failure is a *ValidationError.
func Validate(step Step, d Draft) error {
	if ve := check(step, d); ve != nil {
		return ve
	}
	return nil
}

func check(step Step, d Draft) *ValidationError {
	switch step {
	case StepName:
		if utf8.RuneCountInString(d.Name) < MinNameLength {
			return &ValidationError{Step: step, Title: TitleNameTooShort, Err: ErrNameTooShort}
		}
	case StepGender:
		if d.Gender == "" {
			return &ValidationError{Step: step, Title: TitleGenderNotSelected, Err: ErrGenderNotSelected}
		}
	}
	return nil
}
