package services

import (
	"errors"
	"fmt"
)

// Domain failures handlers translate to HTTP statuses with errors.Is.
// Database failures are wrapped separately and surface as 500s.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("version conflict")
)

// ErrUserNotFound marks a missing row for the authenticated caller
// itself, as opposed to the entity named by the route.
var ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)

// ValidationError marks caller mistakes (missing fields, bad enum values,
// bad dates) so handlers can map them to 400 without leaking database
// errors under the same status.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func invalidInput(msg string) error {
	return &ValidationError{msg: msg}
}
