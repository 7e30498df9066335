package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/onboarding/internal/logging"
	"github.com/dmitrijs2005/onboarding/internal/models"
	"github.com/dmitrijs2005/onboarding/internal/repositories/metadata"
	"github.com/dmitrijs2005/onboarding/internal/storage"
)

// ---- helpers ----

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "profile.db"), logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func snapshot(t *testing.T, s *storage.Store) map[string]any {
	t.Helper()
	m, err := s.Snapshot(context.Background())
	require.NoError(t, err)
	return m
}

// brokenRepo fails every write of one key, inside transactions too.
type brokenRepo struct {
	*metadata.MemoryRepository
	key string
}

var errBroken = errors.New("write failed")

func (b *brokenRepo) Set(ctx context.Context, key string, value []byte) error {
	if key == b.key {
		return errBroken
	}
	return b.MemoryRepository.Set(ctx, key, value)
}

func (b *brokenRepo) Delete(ctx context.Context, key string) error {
	if key == b.key {
		return errBroken
	}
	return b.MemoryRepository.Delete(ctx, key)
}

func (b *brokenRepo) InTx(ctx context.Context, fn func(ctx context.Context, r metadata.Repository) error) error {
	return b.MemoryRepository.InTx(ctx, func(ctx context.Context, r metadata.Repository) error {
		return fn(ctx, &brokenTx{Repository: r, key: b.key})
	})
}

type brokenTx struct {
	metadata.Repository
	key string
}

func (b *brokenTx) Set(ctx context.Context, key string, value []byte) error {
	if key == b.key {
		return errBroken
	}
	return b.Repository.Set(ctx, key, value)
}

func (b *brokenTx) Delete(ctx context.Context, key string) error {
	if key == b.key {
		return errBroken
	}
	return b.Repository.Delete(ctx, key)
}

// ---- TESTS ----

func TestSignInSignOut_EndToEnd(t *testing.T) {
	s := openStore(t)
	svc := NewProfileService(s, logging.Discard())
	ctx := context.Background()

	require.NoError(t, svc.SignIn(ctx, models.Profile{Name: "Al", Age: 30, Gender: "Female"}))

	want := map[string]any{"signedIn": true, "name": "Al", "age": 30, "gender": "Female"}
	if diff := cmp.Diff(want, snapshot(t, s)); diff != "" {
		t.Fatalf("store after sign in (-want +got):\n%s", diff)
	}

	ok, err := svc.IsSignedIn(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	v, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ProfileView{Name: "Al", Age: 30, Gender: "Female", Complete: true}, v)
	assert.Equal(t, "30", v.AgeText())

	require.NoError(t, svc.SignOut(ctx))

	want = map[string]any{"signedIn": false}
	if diff := cmp.Diff(want, snapshot(t, s)); diff != "" {
		t.Fatalf("store after sign out (-want +got):\n%s", diff)
	}

	ok, err = svc.IsSignedIn(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSignIn_OverwritesPreviousProfile(t *testing.T) {
	s := storage.NewMemory(logging.Discard())
	svc := NewProfileService(s, logging.Discard())
	ctx := context.Background()

	require.NoError(t, svc.SignIn(ctx, models.Profile{Name: "Al", Age: 30, Gender: "Female"}))
	require.NoError(t, svc.SignIn(ctx, models.Profile{Name: "Bo", Age: 120, Gender: "Male"}))

	v, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ProfileView{Name: "Bo", Age: 120, Gender: "Male", Complete: true}, v)
}

func TestSignIn_IsAtomic(t *testing.T) {
	s := storage.New(&brokenRepo{MemoryRepository: metadata.NewMemoryRepository(), key: models.KeySignedIn}, logging.Discard())
	svc := NewProfileService(s, logging.Discard())
	ctx := context.Background()

	err := svc.SignIn(ctx, models.Profile{Name: "Al", Age: 30, Gender: "Female"})
	require.ErrorIs(t, err, errBroken)

	assert.Empty(t, snapshot(t, s), "no field may be left behind by a failed sign in")
}

func TestSignOut_IsAtomic(t *testing.T) {
	repo := &brokenRepo{MemoryRepository: metadata.NewMemoryRepository()}
	s := storage.New(repo, logging.Discard())
	svc := NewProfileService(s, logging.Discard())
	ctx := context.Background()

	require.NoError(t, svc.SignIn(ctx, models.Profile{Name: "Al", Age: 30, Gender: "Female"}))

	repo.key = models.KeyGender
	err := svc.SignOut(ctx)
	require.ErrorIs(t, err, errBroken)

	want := map[string]any{"signedIn": true, "name": "Al", "age": 30, "gender": "Female"}
	if diff := cmp.Diff(want, snapshot(t, s)); diff != "" {
		t.Fatalf("failed sign out must change nothing (-want +got):\n%s", diff)
	}
}

func TestLoad_FallbacksWhenAbsent(t *testing.T) {
	s := storage.NewMemory(logging.Discard())
	svc := NewProfileService(s, logging.Discard())
	ctx := context.Background()

	v, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ProfileView{
		Name:   models.FallbackName,
		Age:    models.FallbackAge,
		Gender: models.FallbackGender,
	}, v)

	require.NoError(t, s.SetString(ctx, models.KeyName, "Al"))
	v, err = svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Al", v.Name)
	assert.Equal(t, models.FallbackAge, v.Age)
	assert.False(t, v.Complete)
}

func TestLoad_TypeMismatchIsReported(t *testing.T) {
	s := storage.NewMemory(logging.Discard())
	svc := NewProfileService(s, logging.Discard())
	ctx := context.Background()

	require.NoError(t, s.SetString(ctx, models.KeyAge, "thirty"))

	_, err := svc.Load(ctx)
	require.ErrorIs(t, err, storage.ErrTypeMismatch)
}

func TestIsSignedIn_AbsentIsFalse(t *testing.T) {
	svc := NewProfileService(storage.NewMemory(logging.Discard()), logging.Discard())

	ok, err := svc.IsSignedIn(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}
