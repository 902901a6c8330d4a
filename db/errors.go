package db

import (
	"errors"
	"fmt"

	kivik "github.com/go-kivik/kivik/v4"

	"journal.dev/editorial/errs"
)

// StoreError wraps a failure from the underlying document store with the
// collection and document id it occurred against, following the teacher's
// CouchDBError shape but mapped directly to errs.Kind instead of a bare
// status-code field so every caller classifies failures the same way.
type StoreError struct {
	Collection string
	ID         string
	Kind       errs.Kind
	Cause      error
}

func (e *StoreError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %q: %v", e.Collection, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Collection, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

func (e *StoreError) AsDomainError() *errs.Error {
	return errs.Wrap(e.Kind, e.Error(), e.Cause)
}

// As lets errors.As (and so errs.As/errs.Is and the HTTP error handler)
// treat a StoreError as an *errs.Error carrying the same Kind.
func (e *StoreError) As(target interface{}) bool {
	if t, ok := target.(**errs.Error); ok {
		*t = e.AsDomainError()
		return true
	}
	return false
}

func wrapErr(collection, id string, err error) error {
	if err == nil {
		return nil
	}
	kind := errs.Internal
	switch {
	case err == errNotFound:
		kind = errs.NotFound
	case err == errConflict:
		kind = errs.Conflict
	default:
		switch kivik.HTTPStatus(err) {
		case 404:
			kind = errs.NotFound
		case 409:
			kind = errs.Conflict
		}
	}
	return &StoreError{Collection: collection, ID: id, Kind: kind, Cause: err}
}

// IsNotFound reports whether err (or a StoreError wrapped within it)
// signals a missing document.
func IsNotFound(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Kind == errs.NotFound
}

// IsConflict reports whether err signals a revision conflict.
func IsConflict(err error) bool {
	se, ok := err.(*StoreError)
	return ok && se.Kind == errs.Conflict
}
