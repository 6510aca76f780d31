package training

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWorkoutType matches errors for unknown workout codes.
	ErrInvalidWorkoutType = errors.New("invalid workout type")
	// ErrArityMismatch matches errors for readings of the wrong length.
	ErrArityMismatch = errors.New("arity mismatch")
)

// InvalidWorkoutTypeError is returned when a sensor package carries an unknown code.
type InvalidWorkoutTypeError struct {
	Code string
}

func (e *InvalidWorkoutTypeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidWorkoutType, e.Code)
}

func (e *InvalidWorkoutTypeError) Unwrap() error { return ErrInvalidWorkoutType }

// ArityMismatchError is returned when the number of readings does not match the
// field count of the resolved workout type.
type ArityMismatchError struct {
	Kind     Kind
	Expected int
	Actual   int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("%s: %s expects %d values, got %d", ErrArityMismatch, e.Kind.Name(), e.Expected, e.Actual)
}

func (e *ArityMismatchError) Unwrap() error { return ErrArityMismatch }

// ErrorKind classifies err as "invalid_workout_type", "arity_mismatch" or "".
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidWorkoutType):
		return "invalid_workout_type"
	case errors.Is(err, ErrArityMismatch):
		return "arity_mismatch"
	}
	return ""
}
