package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("authentication required")
	// ErrConflict is a unique constraint collision. Callers must not reveal which field collided.
	ErrConflict = errors.New("conflict")
)

// ValidationError is a missing or malformed form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// AuthenticationError is a failed credential check.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

var (
	ErrIncorrectUsername error = &AuthenticationError{Message: "Incorrect username."}
	ErrIncorrectPassword error = &AuthenticationError{Message: "Incorrect password."}
)
