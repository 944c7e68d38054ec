package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStoreUnavailable marks failures of the persistence layer. It is always
// wrapped, so test with errors.Is.
var ErrStoreUnavailable = errors.New("store unavailable")

// AuthorizationError is returned when the actor lacks the required role
type AuthorizationError struct {
	Action string
}

func (e *AuthorizationError) Error() string {
	if e.Action == "" {
		return "access denied"
	}
	return fmt.Sprintf("access denied: %s requires moderator privileges", e.Action)
}

// NotFoundError is returned when a record reference does not resolve
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

// ValidationError carries every problem found with submitted input
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, ", ")
}

// NewValidationError builds a ValidationError from one or more messages
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// IsAuthorization reports whether err is an AuthorizationError
func IsAuthorization(err error) bool {
	var target *AuthorizationError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// StoreError wraps a persistence failure with ErrStoreUnavailable
func StoreError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}
