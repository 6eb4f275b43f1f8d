package library

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidField is matched by every *ValidationError.
	ErrInvalidField = errors.New("invalid field")

	// ErrBookNotAvailable is matched by every *NotAvailableError.
	ErrBookNotAvailable = errors.New("book not available")

	// ErrBookNotFound is returned by title-based manager operations when no book matches.
	ErrBookNotFound = errors.New("book not found")
)

// ValidationError reports a field rejected while constructing an entity.
type ValidationError struct {
	Field  string
	Index  int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s[%d]: %s", e.Field, e.Index, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidField }

// NotAvailableError is returned when borrowing a book that is already out.
type NotAvailableError struct {
	Title string
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("book '%s' is currently not available for borrowing", e.Title)
}

func (e *NotAvailableError) Is(target error) bool { return target == ErrBookNotAvailable }
