package store

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned when an operation runs before the store is
// open or after it has been closed.
var ErrNotInitialized = errors.New("database not initialized")

// Error wraps a failure of the underlying database.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.Is(err, ErrNotInitialized) || errors.As(err, &se) {
		return err
	}
	return &Error{Op: op, Err: err}
}
