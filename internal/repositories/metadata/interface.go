// Package metadata stores the raw key/value pairs behind the profile store.
// Values are opaque byte slices; typing is the caller's business.
package metadata

import (
	"context"
)

// Repository is a flat key/value table.
//
// Get returns (nil, nil) when the key is absent. Delete of an absent key is
// not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
}

// TxRepository is a Repository that can apply a group of writes atomically.
// fn receives a Repository bound to the transaction; if fn returns an error
// none of its writes are visible.
type TxRepository interface {
	Repository
	InTx(ctx context.Context, fn func(ctx context.Context, r Repository) error) error
}
