package kernel

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOp is returned for operation names or tags no kernel
// family implements.
var ErrUnsupportedOp = errors.New("kernel: unsupported operation")

// Op identifies an element-wise operation.
type Op uint8

const (
	// OpInvalid is the zero Op.
	OpInvalid Op = iota

	// OpAngle computes the phase of complex elements.
	OpAngle

	// OpXPlusK computes x + k.
	OpXPlusK

	// OpXMinusK computes x - k.
	OpXMinusK

	// OpKMinusX computes k - x.
	OpKMinusX

	// OpXMulK computes x * k.
	OpXMulK

	// OpXDivK computes x / k.
	OpXDivK

	// OpKDivX computes k / x.
	OpKDivX
)

var opNames = [...]string{
	OpInvalid: "invalid",
	OpAngle:   "angle",
	OpXPlusK:  "X+K",
	OpXMinusK: "X-K",
	OpKMinusX: "K-X",
	OpXMulK:   "X*K",
	OpXDivK:   "X/K",
	OpKDivX:   "K/X",
}

// String returns the operation name as hosts spell it ("X+K", "angle").
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Parametrized reports whether the operation takes a constant operand.
func (o Op) Parametrized() bool {
	return o >= OpXPlusK && o <= OpKDivX
}

// ConstOps returns the constant-operand operations in table order.
func ConstOps() []Op {
	return []Op{OpXPlusK, OpXMinusK, OpKMinusX, OpXMulK, OpXDivK, OpKDivX}
}

// ParseOp returns the Op for a host operation name.
func ParseOp(name string) (Op, error) {
	for i := OpAngle; int(i) < len(opNames); i++ {
		if opNames[i] == name {
			return i, nil
		}
	}
	return OpInvalid, fmt.Errorf("%w: %q", ErrUnsupportedOp, name)
}
