package store

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrMissingColumn is wrapped by a ParseError when the header lacks a field.
var ErrMissingColumn = errors.New("missing column")

// NotFoundError indicates the backing file does not exist
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file %s not found", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return fs.ErrNotExist
}

// ParseError reports a row that could not be decoded. Row is the 1-based
// data row number; 0 means the header.
type ParseError struct {
	Path  string
	Row   int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: row %d: %v", e.Path, e.Row, e.Err)
	}

	return fmt.Sprintf("%s: row %d: field %q: %v", e.Path, e.Row, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
