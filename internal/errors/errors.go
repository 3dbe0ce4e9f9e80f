// Package errors joins the stdlib error inspection helpers with pkg/errors wrapping, so callers import one package
// for both and every wrap records a stack trace.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a plain error. Sentinels are declared with it.
func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// AsType finds the first error in err's chain of type T.
func AsType[T error](err error) (T, bool) {
	var target T
	ok := stderrors.As(err, &target)

	return target, ok
}

// Wrap annotates err with message and a stack trace. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records a stack trace without changing the message. Handlers use it before returning to echo.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf builds a new error with a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}
