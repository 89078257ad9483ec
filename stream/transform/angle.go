package transform

import (
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-stream/stream/dtype"
	"github.com/cwbudde/algo-stream/stream/kernel"
)

// Angle writes the phase of complex samples of element type C into the
// real type R with the same component width. Floating outputs are in
// radians; integer outputs map [-pi, pi) onto the full range of R.
type Angle[C, R any] struct {
	base
	dim int
	fn  kernel.AngleFunc[C, R]
}

// NewAngle64 returns an angle unit for complex64 samples of dim elements.
// Angle kernels have no accelerated variants, so no options apply.
func NewAngle64(dim int) (*Angle[complex64, float32], error) {
	fn, impl := kernel.Angle64()
	return newAngle(dtype.Of[complex64](), dim, fn, impl)
}

// NewAngle128 returns an angle unit for complex128 samples.
func NewAngle128(dim int) (*Angle[complex128, float64], error) {
	fn, impl := kernel.Angle128()
	return newAngle(dtype.Of[complex128](), dim, fn, impl)
}

// NewAngleFixed returns an angle unit for signed integer complex samples.
func NewAngleFixed[T constraints.Signed](dim int) (*Angle[dtype.Complex[T], T], error) {
	fn, impl := kernel.AngleFixed[T]()
	return newAngle(dtype.Of[dtype.Complex[T]](), dim, fn, impl)
}

func newAngle[C, R any](scalar dtype.Descriptor, dim int, fn kernel.AngleFunc[C, R], impl kernel.Impl) (*Angle[C, R], error) {
	desc := scalar.WithDimension(dim)
	if !desc.Valid() {
		return nil, &UnsupportedTypeError{Descriptor: desc, Operation: kernel.OpAngle.String()}
	}
	return &Angle[C, R]{
		base: newBase(desc, desc.Real(), kernel.OpAngle, impl),
		dim:  dim,
		fn:   fn,
	}, nil
}

// Work runs one step over the available samples.
func (u *Angle[C, R]) Work() {
	n := u.ready()
	if n == 0 {
		return
	}

	count := n * u.dim
	u.fn(dtype.View[R](u.dst.Buffer(), count), dtype.View[C](u.src.Buffer(), count))
	u.commit(n)
}
