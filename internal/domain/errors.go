package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ConflictError signals a violation of the single-active-workout invariant.
// Recoverable: the caller may offer an explicit discard-and-continue.
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// PreconditionError signals an operation called in a state that forbids it,
// e.g. completing a workout with no logged sets.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string { return e.Msg }

// ValidationError rejects a field value before any write happens.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Msg) }

// NotFoundError is returned by services that require a referenced row to
// proceed. Repositories return nil instead for simple lookups.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s %s not found", e.Entity, e.ID) }

// UniquenessError is a storage-level unique constraint violation translated
// into a user-facing message.
type UniquenessError struct {
	Msg string
}

func (e *UniquenessError) Error() string { return e.Msg }

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

func IsPrecondition(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

func IsUniqueness(err error) bool {
	var ue *UniquenessError
	return errors.As(err, &ue)
}

// IsUniqueViolation reports whether err is a raw SQLite unique constraint
// failure, optionally scoped to one column ("exercises.name").
func IsUniqueViolation(err error, column string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return false
	}
	return column == "" || strings.Contains(msg, column)
}
