package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/onboarding/internal/config"
	"github.com/dmitrijs2005/onboarding/internal/logging"
	"github.com/dmitrijs2005/onboarding/internal/onboarding"
	"github.com/dmitrijs2005/onboarding/internal/services"
	"github.com/dmitrijs2005/onboarding/internal/session"
	"github.com/dmitrijs2005/onboarding/internal/storage"
)

// errExit is returned by handlers when the user asks to leave.
var errExit = errors.New("exit requested")

type App struct {
	log      logging.Logger
	store    *storage.Store
	gate     *session.Gate
	profiles services.ProfileService
	wizard   *onboarding.Wizard

	reader *bufio.Reader
	out    io.Writer
	// echo repeats piped input so transcripts read like a session
	echo bool

	route    session.Route
	rendered bool
}

// NewApp opens the profile database named in c and wires the client
// to stdin/stdout.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	base, err := logging.New(os.Stderr, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, err
	}
	log := base.With("run_id", uuid.NewString())

	store, err := storage.Open(ctx, c.DatabasePath, log)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	log.Debug(ctx, "client starting", "db", c.DatabasePath)

	app := newApp(store, log, os.Stdin, os.Stdout)
	app.echo = !stdinIsTerminal()
	return app, nil
}

func newApp(store *storage.Store, log logging.Logger, in io.Reader, out io.Writer) *App {
	profiles := services.NewProfileService(store, log)
	return &App{
		log:      log,
		store:    store,
		gate:     session.NewGate(store, log),
		profiles: profiles,
		wizard:   onboarding.NewWizard(profiles, log),
		reader:   bufio.NewReader(in),
		out:      out,
	}
}

// Run shows the client until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()
	return a.Root(ctx)
}

func (a *App) Close() error {
	a.gate.Close()
	return a.store.Close()
}

// switchTo is called by the gate after every write of the session flag.
func (a *App) switchTo(ctx context.Context, r session.Route) {
	if r == a.route {
		return
	}
	a.route = r
	a.rendered = false
	if r == session.RouteOnboarding {
		a.wizard.Reset()
	}
	a.log.Info(ctx, "route changed", "route", r)
}

func (a *App) ask(prompt string) (string, error) {
	text, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if a.echo {
		fmt.Fprintln(a.out, text)
	}
	return text, nil
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
