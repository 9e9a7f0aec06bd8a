package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or missing client input. Always maps to
// a 400 response and is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError creates a validation error for a specific field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports that a referenced record does not exist. Maps to 404.
type NotFoundError struct {
	Resource string
	ID       any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Resource, e.ID)
}

// NewNotFoundError creates a not-found error for a resource and id.
func NewNotFoundError(resource string, id any) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// PersistenceError reports a failed store read or write. Maps to 500 and is
// the only failure kind that aborts a multi-step operation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// NewPersistenceError wraps a store error with the operation that failed.
func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

// NotificationError reports a failed in-app notification write. Logged by the
// caller and swallowed; never surfaced to clients.
type NotificationError struct {
	Event string
	Err   error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification failure for %s: %v", e.Event, e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }

// EmailError reports a failed template render or transport send. Logged by
// the caller and swallowed; never rolls back prior persistence.
type EmailError struct {
	Recipient string
	Template  string
	Err       error
}

func (e *EmailError) Error() string {
	return fmt.Sprintf("email failure (template=%s, to=%s): %v", e.Template, e.Recipient, e.Err)
}

func (e *EmailError) Unwrap() error { return e.Err }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// IsPersistence reports whether err is a PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
