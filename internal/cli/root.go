package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/onboarding/internal/session"
)

// Root runs the client: it asks the gate where to start, then alternates
// between wizard steps and profile commands as the session flag dictates.
// It returns nil when the user exits or input ends.
func (a *App) Root(ctx context.Context) error {
	a.println("Welcome! Type 'exit' at any prompt to leave.")

	r, err := a.gate.Route(ctx)
	if err != nil {
		a.log.Error(ctx, "cannot read session flag", "error", err)
		return err
	}
	a.route = r
	a.gate.Watch(a.switchTo)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		switch a.route {
		case session.RouteProfile:
			err = a.profileTurn(ctx)
		default:
			err = a.onboardingTurn(ctx)
		}

		switch {
		case err == nil:
		case errors.Is(err, errExit), errors.Is(err, io.EOF):
			a.println("Bye!")
			return nil
		default:
			a.log.Error(ctx, "command failed", "route", a.route, "error", err)
			a.println(fmt.Sprintf("Error: %v", err))
		}
	}
}
