package chat

import (
	"errors"
	"fmt"
)

// Errors returned by the presence registry and message log. Callers match
// them with errors.Is; the wrapped message carries the detail.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrConflict        = errors.New("conflict")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("sender is not an active participant")
	ErrStoreFailure    = errors.New("store failure")
)

// Errors a store implementation returns so the core can tell a missing or
// duplicate record from an infrastructure failure.
var (
	ErrNoRecord  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

func storeFailure(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreFailure, err)
}
