// Package fault defines the error taxonomy shared by the loader and the
// dashboard: IO, Validation, Storage, and NotFound errors. Callers classify
// with errors.As (or the Is* helpers) rather than string matching.
package fault

import (
	"errors"
	"fmt"
)

// IOError indicates an unreadable or missing input/output path.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("io error: %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ValidationError indicates input data that does not match the expected
// statistical schema. Row is 1-based within the offending section.
type ValidationError struct {
	Section string
	Row     int
	Column  string
	Reason  string
}

func (e *ValidationError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("validation error: %s row %d, column %q: %s", e.Section, e.Row, e.Column, e.Reason)
	}
	return fmt.Sprintf("validation error: %s: %s", e.Section, e.Reason)
}

// StorageError indicates the database file is locked, corrupt, or unwritable.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NotFoundError indicates an expected table or database file is absent at
// read time. The dashboard renders this as an empty state.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Resource)
}

// IsIO reports whether err is or wraps an IOError.
func IsIO(err error) bool {
	var e *IOError
	return errors.As(err, &e)
}

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// IsStorage reports whether err is or wraps a StorageError.
func IsStorage(err error) bool {
	var e *StorageError
	return errors.As(err, &e)
}

// IsNotFound reports whether err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}
