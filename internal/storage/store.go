package storage

import (
	"context"
	"io"
	"sort"
	"sync"

	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/dmitrijs2005/onboarding/internal/logging"
	"github.com/dmitrijs2005/onboarding/internal/repositories/metadata"
)

// Listener is told that key was written. It runs on the goroutine that made
// the write, after the write is committed.
type Listener func(ctx context.Context, key string)

// Writer is the write half of the store, also handed to Update callbacks.
type Writer interface {
	SetString(ctx context.Context, key, value string) error
	SetInt(ctx context.Context, key string, value int) error
	SetBool(ctx context.Context, key string, value bool) error
	Delete(ctx context.Context, key string) error
}

// KeyValueStore is what the session gate and the profile service depend on.
type KeyValueStore interface {
	Writer

	GetString(ctx context.Context, key string) (string, bool, error)
	GetInt(ctx context.Context, key string) (int, bool, error)
	GetBool(ctx context.Context, key string) (bool, bool, error)

	// Update applies every write fn makes atomically. Listeners of the
	// touched keys are notified once, after the commit.
	Update(ctx context.Context, fn func(ctx context.Context, w Writer) error) error

	// Subscribe registers l for key and returns a func that removes it.
	Subscribe(key string, l Listener) (cancel func())
}

// Store is the KeyValueStore implementation.
type Store struct {
	repo   metadata.TxRepository
	log    logging.Logger
	closer io.Closer

	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]Listener
}

var _ KeyValueStore = (*Store)(nil)

// New wraps repo.
func New(repo metadata.TxRepository, log logging.Logger) *Store {
	return &Store{
		repo: repo,
		log:  log,
		subs: make(map[string]map[int]Listener),
	}
}

// NewMemory returns a Store that lives only as long as the process.
func NewMemory(log logging.Logger) *Store {
	return New(metadata.NewMemoryRepository(), log)
}

// Close releases the underlying database, if any.
func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func (s *Store) GetString(ctx context.Context, key string) (string, bool, error) {
	var v wrapperspb.StringValue
	ok, err := get(ctx, s.repo, key, &v)
	return v.GetValue(), ok, err
}

func (s *Store) GetInt(ctx context.Context, key string) (int, bool, error) {
	var v wrapperspb.Int64Value
	ok, err := get(ctx, s.repo, key, &v)
	return int(v.GetValue()), ok, err
}

func (s *Store) GetBool(ctx context.Context, key string) (bool, bool, error) {
	var v wrapperspb.BoolValue
	ok, err := get(ctx, s.repo, key, &v)
	return v.GetValue(), ok, err
}

func (s *Store) SetString(ctx context.Context, key, value string) error {
	return s.writeOne(ctx, key, func(w Writer) error { return w.SetString(ctx, key, value) })
}

func (s *Store) SetInt(ctx context.Context, key string, value int) error {
	return s.writeOne(ctx, key, func(w Writer) error { return w.SetInt(ctx, key, value) })
}

func (s *Store) SetBool(ctx context.Context, key string, value bool) error {
	return s.writeOne(ctx, key, func(w Writer) error { return w.SetBool(ctx, key, value) })
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.writeOne(ctx, key, func(w Writer) error { return w.Delete(ctx, key) })
}

func (s *Store) writeOne(ctx context.Context, key string, fn func(w Writer) error) error {
	if err := fn(&repoWriter{repo: s.repo}); err != nil {
		return err
	}
	s.notify(ctx, []string{key})
	return nil
}

func (s *Store) Update(ctx context.Context, fn func(ctx context.Context, w Writer) error) error {
	var touched []string

	err := s.repo.InTx(ctx, func(ctx context.Context, r metadata.Repository) error {
		w := &repoWriter{repo: r}
		if err := fn(ctx, w); err != nil {
			return err
		}
		touched = w.touched
		return nil
	})
	if err != nil {
		s.log.Warn(ctx, "store update rolled back", "error", err)
		return err
	}

	s.notify(ctx, touched)
	return nil
}

// Snapshot decodes every stored pair. Values are string, int or bool.
func (s *Store) Snapshot(ctx context.Context) (map[string]any, error) {
	raw, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, len(raw))
	for k, b := range raw {
		v, err := decodeValue(b)
		if err != nil {
			return nil, wrapKey(k, err)
		}
		out[k] = v
	}
	return out, nil
}

// Keys returns the stored keys in lexical order.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	raw, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Store) Subscribe(key string, l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	if s.subs[key] == nil {
		s.subs[key] = make(map[int]Listener)
	}
	s.subs[key][id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs[key], id)
	}
}

func (s *Store) notify(ctx context.Context, keys []string) {
	for _, key := range keys {
		s.mu.Lock()
		ids := make([]int, 0, len(s.subs[key]))
		for id := range s.subs[key] {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		ls := make([]Listener, 0, len(ids))
		for _, id := range ids {
			ls = append(ls, s.subs[key][id])
		}
		s.mu.Unlock()

		// listeners may write to the store themselves
		for _, l := range ls {
			l(ctx, key)
		}
	}
}
