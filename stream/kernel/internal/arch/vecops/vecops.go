// Package vecops builds constant-operand kernels from float64 block
// primitives, so every SIMD arch package can register the same operation
// set on top of its own algo-vecmath kernels.
//
// Additive operations broadcast the (possibly negated) constant into dst and
// accumulate src in place; x - k == x + (-k) is exact in IEEE arithmetic.
// k - x equals -(x - k) except for the sign of zero results, so K-X
// recomputes those lanes with a scalar subtraction. complex128 buffers are
// processed as interleaved float64 lanes. Multiplication is only lane-wise for real
// values, and division has no block primitive; both stay on the scalar path.
package vecops

import (
	"unsafe"

	"github.com/cwbudde/algo-stream/stream/kernel/internal/arch/registry"
)

// Block is the set of float64 primitives an arch package provides.
type Block struct {
	// AddBlockInPlace computes dst[i] += src[i].
	AddBlockInPlace func(dst, src []float64)

	// ScaleBlock computes dst[i] = src[i] * scale.
	ScaleBlock func(dst, src []float64, scale float64)

	// ScaleBlockInPlace computes dst[i] *= scale.
	ScaleBlockInPlace func(dst []float64, scale float64)
}

// Float64 returns kernels for X+K, X-K, K-X and X*K over float64.
func (b Block) Float64() registry.ConstOps[float64] {
	xPlusK := func(dst, src []float64, k float64) {
		src = src[:len(dst)]
		if overlaps(dst, src) {
			for i := range dst {
				dst[i] = src[i] + k
			}
			return
		}
		fill(dst, k)
		b.AddBlockInPlace(dst, src)
	}

	xMinusK := func(dst, src []float64, k float64) {
		src = src[:len(dst)]
		if overlaps(dst, src) {
			for i := range dst {
				dst[i] = src[i] - k
			}
			return
		}
		fill(dst, -k)
		b.AddBlockInPlace(dst, src)
	}

	kMinusX := func(dst, src []float64, k float64) {
		src = src[:len(dst)]
		if overlaps(dst, src) {
			for i := range dst {
				dst[i] = k - src[i]
			}
			return
		}
		fill(dst, -k)
		b.AddBlockInPlace(dst, src)
		b.ScaleBlockInPlace(dst, -1)
		for i, v := range dst {
			if v == 0 {
				dst[i] = k - src[i]
			}
		}
	}

	xMulK := func(dst, src []float64, k float64) {
		b.ScaleBlock(dst, src[:len(dst)], k)
	}

	return registry.ConstOps[float64]{
		XPlusK:  xPlusK,
		XMinusK: xMinusK,
		KMinusX: kMinusX,
		XMulK:   xMulK,
	}
}

// Complex128 returns kernels for X+K, X-K and K-X over complex128.
func (b Block) Complex128() registry.ConstOps[complex128] {
	xPlusK := func(dst, src []complex128, k complex128) {
		src = src[:len(dst)]
		if overlaps(dst, src) {
			for i := range dst {
				dst[i] = src[i] + k
			}
			return
		}
		fillPair(lanes(dst), real(k), imag(k))
		b.AddBlockInPlace(lanes(dst), lanes(src))
	}

	xMinusK := func(dst, src []complex128, k complex128) {
		src = src[:len(dst)]
		if overlaps(dst, src) {
			for i := range dst {
				dst[i] = src[i] - k
			}
			return
		}
		fillPair(lanes(dst), -real(k), -imag(k))
		b.AddBlockInPlace(lanes(dst), lanes(src))
	}

	kMinusX := func(dst, src []complex128, k complex128) {
		src = src[:len(dst)]
		if overlaps(dst, src) {
			for i := range dst {
				dst[i] = k - src[i]
			}
			return
		}
		fillPair(lanes(dst), -real(k), -imag(k))
		b.AddBlockInPlace(lanes(dst), lanes(src))
		b.ScaleBlockInPlace(lanes(dst), -1)
		for i, v := range dst {
			if real(v) == 0 || imag(v) == 0 {
				dst[i] = k - src[i]
			}
		}
	}

	return registry.ConstOps[complex128]{
		XPlusK:  xPlusK,
		XMinusK: xMinusK,
		KMinusX: kMinusX,
	}
}

func fill(dst []float64, v float64) {
	for i := range dst {
		dst[i] = v
	}
}

func fillPair(dst []float64, re, im float64) {
	for i := 0; i+1 < len(dst); i += 2 {
		dst[i] = re
		dst[i+1] = im
	}
}

// lanes reinterprets complex128 elements as interleaved float64 lanes.
func lanes(c []complex128) []float64 {
	if len(c) == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(unsafe.SliceData(c))), 2*len(c))
}

// overlaps reports whether the backing arrays of a and b share memory.
func overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	var zero T
	size := unsafe.Sizeof(zero)
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return a0 < b0+uintptr(len(b))*size && b0 < a0+uintptr(len(a))*size
}
