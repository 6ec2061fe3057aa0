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

// UnavailableError wraps any upstream failure the remote client could not
// recover from: timeout, connection error, non-401 HTTP status.
type UnavailableError struct {
	Op     string
	Status int
	Err    error
}

func (e UnavailableError) Error() string {
	switch {
	case e.Status > 0 && e.Op != "":
		return fmt.Sprintf("upstream %s returned status %d", e.Op, e.Status)
	case e.Op != "":
		return fmt.Sprintf("upstream %s unavailable", e.Op)
	default:
		return "upstream unavailable"
	}
}

func (e UnavailableError) Unwrap() error { return e.Err }

// AuthExpiredError is returned after a 401 whose token refresh also failed.
// Both tokens have been cleared from the session by the time it is seen.
type AuthExpiredError struct {
	Err error
}

func (e AuthExpiredError) Error() string { return "session expired" }

func (e AuthExpiredError) Unwrap() error { return e.Err }

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

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsUnavailable(err error) bool {
	var target UnavailableError
	return errors.As(err, &target)
}

func IsAuthExpired(err error) bool {
	var target AuthExpiredError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
