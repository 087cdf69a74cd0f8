// Package common defines shared constants and sentinel errors used across
// client and server layers of railticket. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Authentication outcomes. They are results, not failures of the system.
	ErrIdentityNotFound  = errors.New("identity not found")
	ErrWrongPassword     = errors.New("wrong password")
	ErrDuplicateIdentity = errors.New("identity already registered")
	ErrTooManyAttempts   = errors.New("too many sign-in attempts")

	// Startup errors.
	ErrMissingSecret = errors.New("session secret is not configured")
)

// DuplicateIdentityError reports which identity field collided on sign-up.
// It matches ErrDuplicateIdentity with errors.Is.
type DuplicateIdentityError struct {
	Field string
}

func (e *DuplicateIdentityError) Error() string {
	return fmt.Sprintf("%s is already registered", e.Field)
}

func (e *DuplicateIdentityError) Is(target error) bool {
	return target == ErrDuplicateIdentity
}
