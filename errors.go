package nconvert

import (
	"github.com/muir/commonerrors"
	"github.com/pkg/errors"
)

// ErrUnknownCulture is returned by LookupCulture when no culture
// matches the requested name.
var ErrUnknownCulture = errors.New("unknown culture")

type contractViolation struct {
	cause error
}

// contractError marks err as a misuse of the conversion engine by
// the calling library: a sequence target without an element type,
// a scalar request with the wrong number of values, and the like.
// These are bugs in the caller, never bad user input.
func contractError(err error) error {
	if err == nil {
		return nil
	}
	return contractViolation{
		cause: commonerrors.ProgrammerError(errors.WithStack(err)),
	}
}

func contractErrorf(format string, args ...interface{}) error {
	return contractError(errors.Errorf(format, args...))
}

func (c contractViolation) Error() string { return c.cause.Error() }
func (c contractViolation) Unwrap() error { return c.cause }
func (c contractViolation) Cause() error  { return c.cause }
func (c contractViolation) Is(err error) bool {
	_, ok := err.(contractViolation)
	return ok
}

// IsContractViolation reports whether err came from a caller misusing
// the engine as opposed to a value that could not be converted.
// Conversion failures are never errors: they are Failure outcomes.
func IsContractViolation(err error) bool {
	var c contractViolation
	return errors.Is(err, c)
}

type invalidValue struct {
	cause error
}

// InvalidValueError annotates an error as the user having typed
// something that does not convert.  Assign and Converter.Set produce
// these from Failure outcomes.
func InvalidValueError(err error) error {
	if err == nil {
		return nil
	}
	return invalidValue{
		cause: commonerrors.UsageError(errors.WithStack(err)),
	}
}

func (u invalidValue) Error() string { return u.cause.Error() }
func (u invalidValue) Unwrap() error { return u.cause }
func (u invalidValue) Cause() error  { return u.cause }
func (u invalidValue) Is(err error) bool {
	_, ok := err.(invalidValue)
	return ok
}

func IsInvalidValue(err error) bool {
	var u invalidValue
	return errors.Is(err, u)
}
