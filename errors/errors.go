// Package errors provides a string based error type allowing packages to define const sentinel errors.
package errors

import (
	"fmt"
	"strings"
)

// Separator is used to separate the sentinel message from its cause in the rendered error message.
const Separator = " -- "

// Error is a string based error type. Declaring errors as consts of this type
// lets callers match them with errors.Is even after they have been wrapped
// with additional context.
type Error string

func (e Error) Error() string {
	return string(e)
}

// Is reports whether target carries this sentinel, either exactly or as the
// prefix of a wrapped error message.
func (e Error) Is(target error) bool {
	if target == nil {
		return false
	}
	return e.Error() == target.Error() || strings.HasPrefix(target.Error(), e.Error()+Separator)
}

// Wrap attaches err as the cause of this sentinel and returns the combined error.
func (e Error) Wrap(err error) error {
	return wrappedError{sentinel: e, cause: err}
}

// Wrapf attaches a formatted cause to this sentinel and returns the combined error.
func (e Error) Wrapf(format string, args ...any) error {
	return wrappedError{sentinel: e, cause: fmt.Errorf(format, args...)}
}

type wrappedError struct {
	sentinel Error
	cause    error
}

func (w wrappedError) Error() string {
	if w.cause == nil {
		return string(w.sentinel)
	}
	return string(w.sentinel) + Separator + w.cause.Error()
}

func (w wrappedError) Is(target error) bool {
	return w.sentinel.Is(target)
}

func (w wrappedError) Unwrap() error {
	return w.cause
}
