package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates that a record violates a uniqueness constraint.
	ErrConflict = errors.New("already exists")
	// ErrInvalidInput indicates that a request failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStoreUnavailable indicates that the underlying data store could not
	// serve a request (connection, I/O or driver failure).
	ErrStoreUnavailable = errors.New("store unavailable")
)

// StoreError wraps a data-access failure. It matches ErrStoreUnavailable
// under errors.Is while keeping the driver error reachable via Unwrap.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStoreUnavailable, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Is reports whether target is ErrStoreUnavailable.
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// Unavailable wraps err as a StoreError for op. A nil err stays nil.
func Unavailable(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// Invalid returns an ErrInvalidInput carrying the given message.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
