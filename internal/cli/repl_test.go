package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	calls []string
	err   error
}

func (f *fakeExec) ShowProfile(context.Context) error {
	f.calls = append(f.calls, "show")
	return f.err
}

func (f *fakeExec) ShowStore(context.Context) error {
	f.calls = append(f.calls, "store")
	return f.err
}

func (f *fakeExec) SignOut(context.Context) error {
	f.calls = append(f.calls, "signout")
	return f.err
}

func TestRunCommand_Dispatch(t *testing.T) {
	ctx := context.Background()
	f := &fakeExec{}
	var out bytes.Buffer

	for _, line := range []string{"", "   ", "help", "show", "store extra args", "signout", "logout", "nope"} {
		require.NoError(t, runCommand(ctx, f, line, &out))
	}

	assert.Equal(t, []string{"show", "store", "signout", "signout"}, f.calls)
	assert.Contains(t, out.String(), "Available commands: show, store, signout, exit")
	assert.Contains(t, out.String(), "Unknown command: nope")
}

func TestRunCommand_ExitAndQuit(t *testing.T) {
	f := &fakeExec{}
	for _, line := range []string{"exit", "quit"} {
		err := runCommand(context.Background(), f, line, &bytes.Buffer{})
		require.ErrorIs(t, err, errExit)
	}
	assert.Empty(t, f.calls)
}

func TestRunCommand_ErrorPropagates(t *testing.T) {
	boom := errors.New("store offline")
	f := &fakeExec{err: boom}

	err := runCommand(context.Background(), f, "signout", &bytes.Buffer{})
	require.ErrorIs(t, err, boom)
}
