package storage

import "errors"

var (
	// ErrTypeMismatch is returned when a key holds a value of another kind
	// than the one requested.
	ErrTypeMismatch = errors.New("stored value has a different type")

	// ErrCorruptValue is returned when stored bytes cannot be decoded.
	ErrCorruptValue = errors.New("stored value is corrupt")
)
