package transform

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-stream/stream/dtype"
)

var (
	// ErrOutOfRange reports a constant outside the element type's range.
	ErrOutOfRange = errors.New("transform: constant out of range")

	// ErrNotIntegral reports a fractional constant for an integer type.
	ErrNotIntegral = errors.New("transform: constant is not integral")

	// ErrWrongShape reports a constant that is not a number, or a complex
	// constant for a real element type.
	ErrWrongShape = errors.New("transform: constant has the wrong shape")
)

// UnsupportedTypeError is returned when no unit exists for the requested
// element type and operation.
type UnsupportedTypeError struct {
	Descriptor dtype.Descriptor
	Operation  string
}

func (e *UnsupportedTypeError) Error() string {
	if e.Operation == "" {
		return fmt.Sprintf("transform: unsupported type %s", e.Descriptor)
	}
	return fmt.Sprintf("transform: unsupported type %s for operation %q", e.Descriptor, e.Operation)
}

// InvalidConstantError is returned when a constant cannot be represented
// in the unit's element type.
type InvalidConstantError struct {
	Descriptor dtype.Descriptor
	Value      any
	Err        error
}

func (e *InvalidConstantError) Error() string {
	return fmt.Sprintf("%v: %v (%T) for %s", e.Err, e.Value, e.Value, e.Descriptor)
}

func (e *InvalidConstantError) Unwrap() error {
	return e.Err
}
