package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationErrorClassification(t *testing.T) {
	err := NewValidationError("email", "must be a valid email address")

	if !IsValidation(err) {
		t.Error("expected IsValidation to match")
	}
	if IsNotFound(err) || IsPersistence(err) {
		t.Error("validation error must not match other categories")
	}

	wrapped := fmt.Errorf("submit: %w", err)
	if !IsValidation(wrapped) {
		t.Error("expected IsValidation to match through wrapping")
	}
}

func TestNotFoundErrorClassification(t *testing.T) {
	err := NewNotFoundError("admission", 42)

	if !IsNotFound(err) {
		t.Error("expected IsNotFound to match")
	}
	if IsValidation(err) || IsPersistence(err) {
		t.Error("not found error must not match other categories")
	}
}

func TestPersistenceErrorUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewPersistenceError("create admission", cause)

	if !IsPersistence(err) {
		t.Error("expected IsPersistence to match")
	}
	if !errors.Is(err, cause) {
		t.Error("expected the database cause to be reachable via errors.Is")
	}
}

func TestEmailErrorUnwraps(t *testing.T) {
	cause := errors.New("dial timeout")
	err := &EmailError{Recipient: "a@example.com", Template: "approval", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("expected the transport cause to be reachable via errors.Is")
	}
}
