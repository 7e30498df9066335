// Package storage is the typed, observable key/value store the onboarding
// client persists its profile in.
//
// # Overview
//
// Store wraps a metadata.TxRepository and adds:
//  1. Typed accessors for the three scalar kinds the client uses (string,
//     integer, boolean). Each value is serialized as a google.protobuf.Any
//     holding a wrapperspb message, so a value written as an integer can
//     only be read back as an integer (ErrTypeMismatch otherwise).
//  2. Atomic multi-key writes through Update.
//  3. Change notification: Subscribe registers a Listener for a key; it is
//     called synchronously after every committed write of that key.
//
// Open creates a SQLite-backed Store at a file path and applies the embedded
// goose migrations; NewMemory gives a process-local Store for tests.
//
// # Missing keys
//
// A missing key is not an error: GetString, GetInt and GetBool report it via
// their second result.
package storage
