package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateEmail is matched by every error reporting an email that is
	// already registered, whether caught by the service pre-check or by the
	// storage unique constraint.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrInvalidUser is returned when a user fails entity validation.
	ErrInvalidUser = errors.New("invalid user")
)

// DuplicateEmailError carries the offending email for the caller-facing message.
type DuplicateEmailError struct {
	Email string
}

func (e *DuplicateEmailError) Error() string {
	return fmt.Sprintf("User with email %s already exists", e.Email)
}

// Is reports whether target is ErrDuplicateEmail.
func (e *DuplicateEmailError) Is(target error) bool {
	return target == ErrDuplicateEmail
}
