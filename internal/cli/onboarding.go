package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/onboarding/internal/models"
	"github.com/dmitrijs2005/onboarding/internal/onboarding"
)

func isExit(s string) bool {
	return s == "exit" || s == "quit"
}

// onboardingTurn shows the current wizard step, reads one answer and
// presses the step's button.
func (a *App) onboardingTurn(ctx context.Context) error {
	state := a.wizard.State()
	a.println()
	a.println(renderStep(state))

	var (
		answer string
		err    error
	)
	switch state.Step {
	case onboarding.StepWelcome:
		answer, err = a.ask("Press Enter to sign up")
	case onboarding.StepName:
		answer, err = a.ask("Your name here...")
	case onboarding.StepAge:
		answer, err = a.ask(fmt.Sprintf("Age between %d and %d (Enter keeps %.0f)",
			onboarding.MinAge, onboarding.MaxAge, state.Draft.Age))
	case onboarding.StepGender:
		answer, err = a.ask("Pick 1-3 or type a gender")
	default:
		return nil
	}
	if err != nil {
		return err
	}
	if isExit(answer) {
		return errExit
	}

	action, ok := a.parseAnswer(state.Step, answer)
	if !ok {
		return nil
	}
	if action != nil {
		if err := a.wizard.Dispatch(ctx, action); err != nil {
			return err
		}
	}

	return a.advance(ctx)
}

// parseAnswer turns a line of input into the edit action for step. ok is
// false when the input cannot be used; the step is then asked again.
func (a *App) parseAnswer(step onboarding.Step, answer string) (onboarding.Action, bool) {
	switch step {
	case onboarding.StepName:
		return onboarding.SetName{Name: answer}, true

	case onboarding.StepAge:
		if answer == "" {
			return nil, true
		}
		age, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			a.println("Age must be a number.")
			return nil, false
		}
		return onboarding.SetAge{Age: age}, true

	case onboarding.StepGender:
		if answer == "" {
			return onboarding.SetGender{Gender: ""}, true
		}
		if g, ok := pickGender(answer); ok {
			return onboarding.SetGender{Gender: g}, true
		}
		a.println("Unknown choice:", answer)
		return nil, false
	}
	return nil, true
}

// pickGender accepts a menu number or a gender name in any case.
func pickGender(answer string) (string, bool) {
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(models.Genders) {
			return models.Genders[n-1], true
		}
		return "", false
	}
	for _, g := range models.Genders {
		if strings.EqualFold(g, answer) {
			return g, true
		}
	}
	return "", false
}

// advance presses the forward button. A rejected step shows its alert,
// which is dismissed right away so the step can be retried.
func (a *App) advance(ctx context.Context) error {
	err := a.wizard.Dispatch(ctx, onboarding.Advance{})

	var ve *onboarding.ValidationError
	if errors.As(err, &ve) {
		a.println(renderAlert(a.wizard.State().Alert.Title))
		return a.wizard.Dispatch(ctx, onboarding.DismissAlert{})
	}
	return err
}
