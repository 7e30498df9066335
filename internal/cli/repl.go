package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface of the profile screen. The real App
// satisfies it; tests can provide a lightweight stub.
type execIface interface {
	ShowProfile(ctx context.Context) error
	ShowStore(ctx context.Context) error
	SignOut(ctx context.Context) error
}

// runCommand executes one line typed on the profile screen.
//
//	help           show available commands
//	show           draw the profile card again
//	store          print the persisted keys and values
//	signout        clear the profile and return to onboarding
//	exit | quit    leave the program
//
// Unknown commands are reported to w. errExit is returned for exit/quit.
func runCommand(ctx context.Context, x execIface, line string, w io.Writer) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	switch parts[0] {
	case "help":
		fmt.Fprintln(w, "Available commands: show, store, signout, exit")
	case "show":
		return x.ShowProfile(ctx)
	case "store":
		return x.ShowStore(ctx)
	case "signout", "logout":
		return x.SignOut(ctx)
	case "exit", "quit":
		return errExit
	default:
		fmt.Fprintln(w, "Unknown command:", parts[0])
	}
	return nil
}
