// Package apperr defines the error type shared by shoreday packages
package apperr

import "fmt"

// Error is an error with a user-facing message. Messages may contain fmt verbs
// that are filled in with Fmt. Copies produced by Fmt and Wrap still match the
// original value under errors.Is.
type Error struct {
	Err     error
	base    *Error
	Message string
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is e or the sentinel e was derived from.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t == e || t == e.origin()
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Err:     e.Err,
		base:    e.origin(),
	}
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Err:     err,
		base:    e.origin(),
	}
}

func (e *Error) origin() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}
