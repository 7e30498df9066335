// Package session decides which screen the client shows: the onboarding
// wizard while the user is signed out, the profile once they are signed in.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/onboarding/internal/logging"
	"github.com/dmitrijs2005/onboarding/internal/models"
	"github.com/dmitrijs2005/onboarding/internal/storage"
)

// Route is the screen to compose.
type Route int

const (
	RouteOnboarding Route = iota
	RouteProfile
)

func (r Route) String() string {
	if r == RouteProfile {
		return "profile"
	}
	return "onboarding"
}

// Gate reads the signedIn flag and re-routes every time it is written.
type Gate struct {
	store  storage.KeyValueStore
	log    logging.Logger
	cancel func()

	mu       sync.Mutex
	watchers []func(ctx context.Context, r Route)
}

// NewGate subscribes to the session flag of store. Call Close to stop.
func NewGate(store storage.KeyValueStore, log logging.Logger) *Gate {
	g := &Gate{store: store, log: log}
	g.cancel = store.Subscribe(models.KeySignedIn, g.flagChanged)
	return g
}

// IsSignedIn returns the session flag; an absent flag is false.
func (g *Gate) IsSignedIn(ctx context.Context) (bool, error) {
	v, _, err := g.store.GetBool(ctx, models.KeySignedIn)
	if err != nil {
		return false, fmt.Errorf("read session flag: %w", err)
	}
	return v, nil
}

func (g *Gate) Route(ctx context.Context) (Route, error) {
	ok, err := g.IsSignedIn(ctx)
	if err != nil {
		return RouteOnboarding, err
	}
	if ok {
		return RouteProfile, nil
	}
	return RouteOnboarding, nil
}

// Watch registers fn to be called with the fresh route after each write of
// the session flag, including writes that leave it unchanged.
func (g *Gate) Watch(fn func(ctx context.Context, r Route)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.watchers = append(g.watchers, fn)
}

// Close stops listening to the store.
func (g *Gate) Close() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}

func (g *Gate) flagChanged(ctx context.Context, _ string) {
	r, err := g.Route(ctx)
	if err != nil {
		g.log.Error(ctx, "re-route failed", "error", err)
		return
	}
	g.log.Debug(ctx, "session flag written", "route", r)

	g.mu.Lock()
	ws := append([]func(context.Context, Route){}, g.watchers...)
	g.mu.Unlock()

	for _, fn := range ws {
		fn(ctx, r)
	}
}
