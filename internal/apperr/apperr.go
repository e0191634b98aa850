// Package apperr defines the error taxonomy shared by the service layer
// and the HTTP handlers.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks a referenced entity that is absent or not owned by the caller.
	ErrNotFound = errors.New("not found")
	// ErrForbidden marks an access the caller is not permitted to make.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput marks input that violates a domain rule.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConflict is reserved for uniqueness violations.
	ErrConflict = errors.New("conflict")
)

// Error pairs a taxonomy sentinel with a caller-facing message.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NotFound builds an ErrNotFound error with a formatted message.
func NotFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// Forbidden builds an ErrForbidden error with a formatted message.
func Forbidden(format string, args ...any) error {
	return &Error{Kind: ErrForbidden, Message: fmt.Sprintf(format, args...)}
}

// InvalidInput builds an ErrInvalidInput error with a formatted message.
func InvalidInput(format string, args ...any) error {
	return &Error{Kind: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}
