// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// ErrNotFound indicates the targeted entity no longer exists. On delete
	// paths callers treat this as a successful no-op, since the desired end
	// state already holds.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates caller-correctable input (empty name,
	// non-positive amount, inverted date range). Never retried.
	ErrValidation = errors.New("validation failed")

	// ErrStorage indicates an underlying store failure. Propagated as-is;
	// retrying is the caller's decision.
	ErrStorage = errors.New("storage failure")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsNotFound reports whether err is an ErrNotFound anywhere in its chain.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether err is an ErrValidation anywhere in its chain.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
