package models

import "errors"

// Error taxonomy shared by services and handlers. Services return these (or
// wrap them); handlers map them onto the response envelope.
var (
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// ValidationError carries a field-level message for input the caller can fix
// and resubmit.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
