package generic

import "github.com/cwbudde/algo-stream/stream/dtype"

// XPlusK computes dst[i] = src[i] + k for every element of dst.
// src must hold at least len(dst) elements.
func XPlusK[T dtype.Arith](dst, src []T, k T) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = src[i] + k
	}
}

// XMinusK computes dst[i] = src[i] - k.
func XMinusK[T dtype.Arith](dst, src []T, k T) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = src[i] - k
	}
}

// KMinusX computes dst[i] = k - src[i].
func KMinusX[T dtype.Arith](dst, src []T, k T) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = k - src[i]
	}
}

// XMulK computes dst[i] = src[i] * k.
func XMulK[T dtype.Arith](dst, src []T, k T) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = src[i] * k
	}
}

// XDivK computes dst[i] = src[i] / k. For integer T, k must not be zero.
func XDivK[T dtype.Arith](dst, src []T, k T) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = src[i] / k
	}
}

// KDivX computes dst[i] = k / src[i]. For integer T, no element of src may
// be zero.
func KDivX[T dtype.Arith](dst, src []T, k T) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = k / src[i]
	}
}
