package cli

import (
	"context"
	"fmt"
)

// profileTurn draws the card the first time round, then reads and runs one
// command.
func (a *App) profileTurn(ctx context.Context) error {
	if !a.rendered {
		if err := a.ShowProfile(ctx); err != nil {
			return err
		}
		a.rendered = true
	}

	line, err := a.ask("profile (type 'help' for commands)")
	if err != nil {
		return err
	}
	return runCommand(ctx, a, line, a.out)
}

// ShowProfile draws the stored profile.
func (a *App) ShowProfile(ctx context.Context) error {
	v, err := a.profiles.Load(ctx)
	if err != nil {
		return err
	}
	a.println()
	a.println(renderProfile(v))
	return nil
}

// ShowStore prints every persisted key with its value.
func (a *App) ShowStore(ctx context.Context) error {
	snap, err := a.store.Snapshot(ctx)
	if err != nil {
		return err
	}
	keys, err := a.store.Keys(ctx)
	if err != nil {
		return err
	}
	for _, k := range keys {
		a.println(fmt.Sprintf("%-10s %v", k, snap[k]))
	}
	return nil
}

// SignOut clears the profile. The gate moves the client back to the wizard.
func (a *App) SignOut(ctx context.Context) error {
	if err := a.profiles.SignOut(ctx); err != nil {
		return err
	}
	a.println("Signed out.")
	return nil
}
