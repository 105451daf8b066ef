// Package httperr defines the error type every request chain fails with.
//
// An *Error carries the HTTP status and the message the client sees. The
// central responder (ctx.Context.Fail) renders it as {"error": message}.
// Anything that is not an *Error is reported as a 500.
package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an Error independently of its status code.
type Kind string

const (
	KindValidation       Kind = "validation"
	KindNotFound         Kind = "not_found"
	KindConstraint       Kind = "constraint"
	KindMethodNotAllowed Kind = "method_not_allowed"
	KindTooLarge         Kind = "too_large"
	KindInternal         Kind = "internal"
)

type Error struct {
	Kind    Kind
	Status  int
	Message string

	// Err is the underlying cause, never shown to the client.
	Err error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error with the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newf(kind Kind, status int, format string, args ...any) *Error {
	return &Error{Kind: kind, Status: status, Message: fmt.Sprintf(format, args...)}
}

// Validation reports a missing or malformed field (400).
func Validation(format string, args ...any) *Error {
	return newf(KindValidation, http.StatusBadRequest, format, args...)
}

// NotFound reports an unknown id or path (404).
func NotFound(format string, args ...any) *Error {
	return newf(KindNotFound, http.StatusNotFound, format, args...)
}

// Constraint reports a well-formed request that breaks a record invariant,
// such as deleting an order that is no longer pending (400).
func Constraint(format string, args ...any) *Error {
	return newf(KindConstraint, http.StatusBadRequest, format, args...)
}

// MethodNotAllowed reports an unsupported verb on a bound path (405).
func MethodNotAllowed(method, path string) *Error {
	return newf(KindMethodNotAllowed, http.StatusMethodNotAllowed, "Method %s not allowed for %s", method, path)
}

// TooLarge reports a request body over the configured limit (413).
func TooLarge(limit int64) *Error {
	return newf(KindTooLarge, http.StatusRequestEntityTooLarge, "request body too large (max %d bytes)", limit)
}

// Internal wraps an unexpected failure (500). The cause is kept for logs.
func Internal(err error) *Error {
	return &Error{
		Kind:    KindInternal,
		Status:  http.StatusInternalServerError,
		Message: http.StatusText(http.StatusInternalServerError),
		Err:     err,
	}
}

// From returns err as an *Error, wrapping anything else with Internal.
func From(err error) *Error {
	var he *Error
	if errors.As(err, &he) {
		return he
	}
	return Internal(err)
}
