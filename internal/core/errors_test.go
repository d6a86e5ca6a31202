package core

import (
	"errors"
	"testing"
)

func TestPersistError(t *testing.T) {
	innerErr := errors.New("permission denied")
	err := &PersistError{Path: "data/degree_average.txt", Err: innerErr}

	expected := "failed to save degree average to data/degree_average.txt: permission denied"
	if err.Error() != expected {
		t.Errorf("PersistError.Error() = %q, want %q", err.Error(), expected)
	}

	if !errors.Is(err, innerErr) {
		t.Error("errors.Is should find the inner error")
	}
}

func TestErrNoGrades(t *testing.T) {
	expected := "cannot calculate the average if there are no grades provided"
	if ErrNoGrades.Error() != expected {
		t.Errorf("ErrNoGrades.Error() = %q, want %q", ErrNoGrades.Error(), expected)
	}
}
