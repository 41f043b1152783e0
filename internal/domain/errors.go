// Package domain holds the error taxonomy shared by every module. The
// categories mirror how failures propagate: validation and not-found errors
// reach the caller unchanged, cascade errors carry the failed stage, and
// authentication failures stay deliberately generic.
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals that a referenced entity is absent.
	ErrNotFound = errors.New("record not found")

	// ErrConstraint signals a store-level constraint violation, such as a
	// unique-field collision.
	ErrConstraint = errors.New("constraint violation")

	// ErrAuthFailed is returned for bad credentials. It never reveals
	// whether the email or the password was wrong.
	ErrAuthFailed = errors.New("invalid credentials")

	// ErrSessionOp signals that a session create or delete failed. Session
	// lookups never produce it; they fail open to "no principal".
	ErrSessionOp = errors.New("session operation failed")
)

// ValidationError rejects malformed input before any business logic runs.
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

// Invalid builds a ValidationError for a single field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// CascadeError reports a failed cascade step, naming the stage so the
// caller knows how far the delete progressed before the rollback.
type CascadeError struct {
	Stage string
	Err   error
}

func (e *CascadeError) Error() string {
	return fmt.Sprintf("cascade failed at stage %q: %v", e.Stage, e.Err)
}

func (e *CascadeError) Unwrap() error {
	return e.Err
}

// CascadeFailed wraps err with the stage it occurred in.
func CascadeFailed(stage string, err error) error {
	return &CascadeError{Stage: stage, Err: err}
}
