// Package errs defines the closed set of domain error kinds used across the
// journal editorial service. Every domain failure carries one of these kinds
// so the transport layer can map it to an HTTP status without string
// matching, the way other EVE services classify storage and auth failures
// (compare auth.ErrUserNotFound / auth.ErrForbidden, which this package
// generalizes into a typed wrapper instead of a flat sentinel list).
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error. The transport layer owns the mapping from
// Kind to HTTP status; nothing below this package knows about HTTP.
type Kind string

const (
	InvalidArgument Kind = "invalid_argument"
	NotFound        Kind = "not_found"
	Conflict        Kind = "conflict"
	Unauthenticated Kind = "unauthenticated"
	Forbidden       Kind = "forbidden"
	Internal        Kind = "internal"
)

// Error is a domain error tagged with a Kind and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a domain error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a domain error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// As extracts the Kind from err, defaulting to Internal if err isn't a
// tagged domain error (or is nil, in which case ok is false).
func As(err error) (kind Kind, ok bool) {
	if err == nil {
		return "", false
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return Internal, true
}

// Is reports whether err is a domain error of the given kind.
func Is(err error, kind Kind) bool {
	k, ok := As(err)
	return ok && k == kind
}
