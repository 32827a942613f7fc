package store

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every store implementation. Conditional-write
// outcomes (key present / key absent) map onto these; everything else is a
// store fault and surfaces wrapped in a StoreError.
var (
	// ErrNotFound is returned when an existence precondition fails: the
	// target pk does not exist.
	ErrNotFound = errors.New("item not found")

	// ErrAlreadyExists is returned when a conditional insert finds the pk
	// already present.
	ErrAlreadyExists = errors.New("item already exists")
)

// StoreError wraps a non-conditional store fault with operation context.
type StoreError struct {
	Op  string // Operation that failed (e.g., "put", "scan")
	PK  string // Primary key involved, if any
	Err error  // Underlying error
}

func (e *StoreError) Error() string {
	if e.PK != "" {
		return fmt.Sprintf("store %s failed for pk '%s': %v", e.Op, e.PK, e.Err)
	}
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err indicates the target item does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists reports whether err indicates a pk collision on insert.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}
