package generic

import (
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-stream/stream/dtype"
)

// Integer complex variants of the constant-operand kernels. Arithmetic
// wraps like the component type; division truncates.

// ComplexXPlusK computes dst[i] = src[i] + k.
func ComplexXPlusK[T constraints.Integer](dst, src []dtype.Complex[T], k dtype.Complex[T]) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = src[i].Add(k)
	}
}

// ComplexXMinusK computes dst[i] = src[i] - k.
func ComplexXMinusK[T constraints.Integer](dst, src []dtype.Complex[T], k dtype.Complex[T]) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = src[i].Sub(k)
	}
}

// ComplexKMinusX computes dst[i] = k - src[i].
func ComplexKMinusX[T constraints.Integer](dst, src []dtype.Complex[T], k dtype.Complex[T]) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = k.Sub(src[i])
	}
}

// ComplexXMulK computes dst[i] = src[i] * k.
func ComplexXMulK[T constraints.Integer](dst, src []dtype.Complex[T], k dtype.Complex[T]) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = src[i].Mul(k)
	}
}

// ComplexXDivK computes dst[i] = src[i] / k and requires k != 0.
func ComplexXDivK[T constraints.Integer](dst, src []dtype.Complex[T], k dtype.Complex[T]) {
	src = src[:len(dst)]
	var d dtype.Divider[T]
	for i := range dst {
		dst[i] = d.Div(src[i], k)
	}
}

// ComplexKDivX computes dst[i] = k / src[i] and requires every element
// of src to be non-zero.
func ComplexKDivX[T constraints.Integer](dst, src []dtype.Complex[T], k dtype.Complex[T]) {
	src = src[:len(dst)]
	var d dtype.Divider[T]
	for i := range dst {
		dst[i] = d.Div(k, src[i])
	}
}
