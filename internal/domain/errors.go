package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

// InvalidSelectionError rejects a source/destination pair that is missing,
// equal, or out of route order. Fare calculation is never attempted for it.
type InvalidSelectionError struct {
	Source      string
	Destination string
	Msg         string
}

func (e InvalidSelectionError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Source != "" || e.Destination != "" {
		return fmt.Sprintf("invalid selection: %q -> %q", e.Source, e.Destination)
	}
	return "invalid selection"
}

// SelectionLimitError rejects adding more seats than allowed per booking.
// The existing selection stays untouched.
type SelectionLimitError struct {
	Limit int
}

func (e SelectionLimitError) Error() string {
	return fmt.Sprintf("at most %d seats can be selected", e.Limit)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

func IsInvalidSelection(err error) bool {
	var target InvalidSelectionError
	return errors.As(err, &target)
}

func IsSelectionLimit(err error) bool {
	var target SelectionLimitError
	return errors.As(err, &target)
}
