package metadata

import (
	"bytes"
	"context"
	"maps"
	"sync"
)

// MemoryRepository keeps pairs in a map; nothing survives the process.
type MemoryRepository struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	return bytes.Clone(v), nil
}

func (r *MemoryRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = bytes.Clone(value)
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, key)
	return nil
}

func (r *MemoryRepository) List(_ context.Context) (map[string][]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string][]byte, len(r.data))
	for k, v := range r.data {
		result[k] = bytes.Clone(v)
	}
	return result, nil
}

// InTx runs fn against a private copy of the data and swaps the copy in
// only when fn succeeds. Concurrent transactions are not merged: the last one
// to finish wins.
func (r *MemoryRepository) InTx(ctx context.Context, fn func(ctx context.Context, r Repository) error) error {
	r.mu.RLock()
	work := &MemoryRepository{data: maps.Clone(r.data)}
	r.mu.RUnlock()

	if err := fn(ctx, work); err != nil {
		return err
	}

	r.mu.Lock()
	r.data = work.data
	r.mu.Unlock()
	return nil
}
