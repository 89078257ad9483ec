package testutil

import (
	"math"
	"math/rand"
)

// Ramp returns 1, 2, ..., n converted to T.
func Ramp[T ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64](n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(i + 1)
	}
	return out
}

// DeterministicNoise generates uniform values in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Phasor returns length samples of radius*exp(j*phase) with the phase
// advancing by step radians per sample, together with the wrapped phase
// of each sample in (-pi, pi].
func Phasor(radius, step float64, length int) ([]complex128, []float64) {
	out := make([]complex128, length)
	phase := make([]float64, length)
	for i := range out {
		p := math.Remainder(step*float64(i), 2*math.Pi)
		if p <= -math.Pi {
			p += 2 * math.Pi
		}
		s, c := math.Sincos(p)
		out[i] = complex(radius*c, radius*s)
		phase[i] = p
	}
	return out, phase
}
