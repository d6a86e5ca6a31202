package core

import (
	"errors"
	"fmt"
)

// ErrNoGrades is returned when an average has no credits to divide by.
var ErrNoGrades = errors.New("cannot calculate the average if there are no grades provided")

// PersistError wraps a failure to write the derived average file. The average
// itself was computed successfully.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("failed to save degree average to %s: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
