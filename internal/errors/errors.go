// Package errors is the error toolkit for infrastructure code: the sentinel helpers of the
// standard library plus stack-annotated wrapping from pkg/errors, behind one import.
//
// Domain-facing failures are AppErrors from internal/domain/errors; this package only
// carries low-level causes up to the point where they are translated.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a plain sentinel error without a stack.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether target appears anywhere in err's chain.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// Wrap records the caller's stack and prefixes err with message. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack without changing the message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf builds a new stack-annotated error.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}
