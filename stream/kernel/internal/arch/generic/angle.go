package generic

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-stream/stream/dtype"
)

// Angle64 computes dst[i] = atan2(imag(src[i]), real(src[i])) in radians.
func Angle64(dst []float32, src []complex64) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = float32(math.Atan2(float64(imag(src[i])), float64(real(src[i]))))
	}
}

// Angle128 computes dst[i] = atan2(imag(src[i]), real(src[i])) in radians.
func Angle128(dst []float64, src []complex128) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = math.Atan2(imag(src[i]), real(src[i]))
	}
}

// AngleFixed computes the angle of integer complex elements as a
// fixed-point phase: the full signed range of T spans [-pi, pi), so
// -pi maps to the minimum value and +pi wraps onto it.
func AngleFixed[T constraints.Signed](dst []T, src []dtype.Complex[T]) {
	var zero T
	full := math.Ldexp(1, 8*int(unsafe.Sizeof(zero))-1)
	scale := full / math.Pi

	src = src[:len(dst)]
	for i := range dst {
		v := math.Round(math.Atan2(float64(src[i].Im), float64(src[i].Re)) * scale)
		if v >= full {
			v = -full
		}
		dst[i] = T(int64(v))
	}
}
