package dtype

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Real is the set of real-valued element types.
type Real interface {
	constraints.Integer | constraints.Float
}

// Arith is the set of element types with built-in +, -, * and /.
type Arith interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Of returns the dimension-1 descriptor of the Go element type T. Types
// outside the numeric set yield a descriptor with KindInvalid.
func Of[T any]() Descriptor {
	var zero T
	switch any(zero).(type) {
	case int8:
		return scalar(KindInt, 1, false)
	case int16:
		return scalar(KindInt, 2, false)
	case int32:
		return scalar(KindInt, 4, false)
	case int64:
		return scalar(KindInt, 8, false)
	case int:
		return scalar(KindInt, strconv.IntSize/8, false)
	case uint8:
		return scalar(KindUint, 1, false)
	case uint16:
		return scalar(KindUint, 2, false)
	case uint32:
		return scalar(KindUint, 4, false)
	case uint64:
		return scalar(KindUint, 8, false)
	case uint:
		return scalar(KindUint, strconv.IntSize/8, false)
	case float32:
		return scalar(KindFloat, 4, false)
	case float64:
		return scalar(KindFloat, 8, false)
	case complex64:
		return scalar(KindFloat, 4, true)
	case complex128:
		return scalar(KindFloat, 8, true)
	case Complex[int8]:
		return scalar(KindInt, 1, true)
	case Complex[int16]:
		return scalar(KindInt, 2, true)
	case Complex[int32]:
		return scalar(KindInt, 4, true)
	case Complex[int64]:
		return scalar(KindInt, 8, true)
	case Complex[uint8]:
		return scalar(KindUint, 1, true)
	case Complex[uint16]:
		return scalar(KindUint, 2, true)
	case Complex[uint32]:
		return scalar(KindUint, 4, true)
	case Complex[uint64]:
		return scalar(KindUint, 8, true)
	case bool:
		return scalar(KindBool, 1, false)
	default:
		return Descriptor{}
	}
}

func scalar(kind Kind, width int, cplx bool) Descriptor {
	return Descriptor{Kind: kind, Width: width, Complex: cplx, Dimension: 1}
}
