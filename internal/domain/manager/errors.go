// Package manager defines the contracts of the per-entity record
// managers and the error taxonomy shared by their implementations.
// Every operation reports its outcome through one of these error
// kinds so callers can show a specific message: a validation error,
// a referential error, a persistence error, or ErrNotFound.
package manager

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an update or delete targets a record
// that does not exist.
var ErrNotFound = errors.New("record not found")

// ReferentialError reports a flight reference that does not resolve to
// an existing client or airline. Nothing has been mutated when it is
// returned.
type ReferentialError struct {
	Field string
	ID    int
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("%s %d does not reference an existing record", e.Field, e.ID)
}

// PersistenceError reports a failed backing-file rewrite. Any
// in-memory mutation has already been rolled back when it is returned,
// so memory and file still agree.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persisting %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
