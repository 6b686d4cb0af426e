// Package errors wraps pkg/errors and adds error codes, so callers can check
// the kind of a failure with Is() without depending on message text.
package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code is an error code which can be used to check against a given error. For
// example, see the Is() function.
type Code string

const (
	ErrUncoded          Code = "Uncoded"
	ErrIndexOutOfRange  Code = "IndexOutOfRange"
	ErrCapacityMismatch Code = "CapacityMismatch"
	ErrStaleSelection   Code = "StaleSelection"
	ErrUnknownSelection Code = "UnknownSelection"
	ErrInvalidConfig    Code = "InvalidConfig"
	ErrDisposed         Code = "Disposed"
	ErrNotRegistered    Code = "NotRegistered"
)

// New returns a coded error with a stack attached.
func New(code Code, message string) error {
	return errors.WithStack(codedError{
		Code:    code,
		Message: message,
	})
}

// Newf is New with a format string.
func Newf(code Code, format string, args ...interface{}) error {
	return New(code, fmt.Sprintf(format, args...))
}

// IndexOutOfRange builds the error used by every bounds-checked accessor.
func IndexOutOfRange(what string, i, count int) error {
	return Newf(ErrIndexOutOfRange, "%s index %d out of range [0,%d)", what, i, count)
}

func Cause(err error) error {
	return errors.Cause(err)
}

func Errorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}

// Is is a fork of the Is() method from `pkg/errors` which takes as its target
// an error Code instead of an error.
func Is(err error, target Code) bool {
	match := codedError{
		Code: target,
	}
	return errors.Is(err, match)
}

func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// codedError is the fundamental type used by this package to provide coded
// errors.
type codedError struct {
	Code    Code
	Message string
}

func (ce codedError) Error() string {
	return ce.Message
}

func (ce codedError) Is(err error) bool {
	if e, ok := err.(codedError); ok && ce.Code == e.Code {
		return true
	}
	return false
}

// CodeOf returns the code carried by err, or ErrUncoded.
func CodeOf(err error) Code {
	var ce codedError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ErrUncoded
}
