package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by repo functions when the requested row does not
// exist. Services translate it into one of the specific kinds below, all of
// which still match errors.Is(err, ErrNotFound).
var ErrNotFound = errors.New("not found")

// Specific not-found kinds. Handlers map these to HTTP 404.
var (
	ErrClientNotFound       = fmt.Errorf("client %w", ErrNotFound)
	ErrTripNotFound         = fmt.Errorf("trip %w", ErrNotFound)
	ErrRegistrationNotFound = fmt.Errorf("registration %w", ErrNotFound)
)

// ErrTripFull is returned when a trip already holds MaxPeople registrations.
// Handlers map this to HTTP 409 Conflict.
var ErrTripFull = errors.New("trip is full")

// ErrAlreadyRegistered is returned when the client already holds a
// registration for the trip. Handlers map this to HTTP 409 Conflict.
var ErrAlreadyRegistered = errors.New("client is already registered for this trip")

// ErrValidation is matched by every ValidationError.
// Handlers map it to HTTP 400 Bad Request.
var ErrValidation = errors.New("validation error")

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries the field-level reasons an input was rejected.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + " " + f.Message
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
