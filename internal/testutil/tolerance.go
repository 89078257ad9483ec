package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"
)

// Number is the set of element types the tolerance helpers compare.
type Number interface {
	float32 | float64 | complex64 | complex128
}

// absDiff returns |a-b| in float64.
func absDiff[T Number](a, b T) float64 {
	switch d := any(a - b).(type) {
	case float32:
		return math.Abs(float64(d))
	case float64:
		return math.Abs(d)
	case complex64:
		return cmplx.Abs(complex128(d))
	case complex128:
		return cmplx.Abs(d)
	default:
		return math.NaN()
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance, modulus for complex).
func RequireSliceNearlyEqual[T Number](t *testing.T, got, want []T, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := absDiff(got[i], want[i])
		if !(diff <= eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireSliceEqual fails t unless got and want are element-wise equal.
func RequireSliceEqual[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[T Number](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		if d := absDiff(a[i], b[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
