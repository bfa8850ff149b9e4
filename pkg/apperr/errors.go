// Package apperr holds the sentinel errors shared by services and mapped to
// HTTP status codes by the controllers.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid stage transition")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("conflict")
	ErrRateLimited       = errors.New("rate limited")
	ErrUnavailable       = errors.New("service unavailable")
)

// Invalid wraps ErrValidation with a human readable reason.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound wraps ErrNotFound with the kind of record that was missing.
func NotFound(what string) error {
	return fmt.Errorf("%s %w", what, ErrNotFound)
}
