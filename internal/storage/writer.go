package storage

import (
	"context"
	"fmt"
	"slices"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/dmitrijs2005/onboarding/internal/repositories/metadata"
)

// repoWriter encodes values onto a metadata.Repository and remembers which
// keys it touched, in first-write order.
type repoWriter struct {
	repo    metadata.Repository
	touched []string
}

func (w *repoWriter) SetString(ctx context.Context, key, value string) error {
	return w.set(ctx, key, wrapperspb.String(value))
}

func (w *repoWriter) SetInt(ctx context.Context, key string, value int) error {
	return w.set(ctx, key, wrapperspb.Int64(int64(value)))
}

func (w *repoWriter) SetBool(ctx context.Context, key string, value bool) error {
	return w.set(ctx, key, wrapperspb.Bool(value))
}

func (w *repoWriter) Delete(ctx context.Context, key string) error {
	if err := w.repo.Delete(ctx, key); err != nil {
		return err
	}
	w.touch(key)
	return nil
}

func (w *repoWriter) set(ctx context.Context, key string, m proto.Message) error {
	b, err := encode(m)
	if err != nil {
		return wrapKey(key, err)
	}
	if err := w.repo.Set(ctx, key, b); err != nil {
		return err
	}
	w.touch(key)
	return nil
}

func (w *repoWriter) touch(key string) {
	if !slices.Contains(w.touched, key) {
		w.touched = append(w.touched, key)
	}
}

func get(ctx context.Context, repo metadata.Repository, key string, dst proto.Message) (bool, error) {
	raw, err := repo.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := decodeInto(raw, dst); err != nil {
		return false, wrapKey(key, err)
	}
	return true, nil
}

func wrapKey(key string, err error) error {
	return fmt.Errorf("key %q: %w", key, err)
}
