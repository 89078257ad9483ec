package transform

import (
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-stream/stream/dtype"
	"github.com/cwbudde/algo-stream/stream/kernel"
)

// ConstArithmetic applies one of the constant-operand operations to every
// lane of its input. E is the element type of input, output and constant.
type ConstArithmetic[E any] struct {
	base
	dim       int
	fn        kernel.ConstFunc[E]
	k         E
	listeners listeners
}

// NewArithmetic returns a unit applying op with constant k to samples of
// dim elements of type E.
func NewArithmetic[E dtype.Arith](op kernel.Op, k E, dim int, opts ...Option) (*ConstArithmetic[E], error) {
	cfg := ApplyOptions(opts...)
	desc := dtype.Of[E]().WithDimension(dim)
	if !desc.Valid() {
		return nil, &UnsupportedTypeError{Descriptor: desc, Operation: op.String()}
	}

	fn, impl, err := kernel.SelectConst[E](op, cfg.Features)
	if err != nil {
		return nil, &UnsupportedTypeError{Descriptor: desc, Operation: op.String()}
	}
	return newConstArithmetic(desc, op, fn, impl, k, cfg), nil
}

// NewComplexArithmetic is NewArithmetic for integer complex elements.
func NewComplexArithmetic[T constraints.Integer](op kernel.Op, k dtype.Complex[T], dim int, opts ...Option) (*ConstArithmetic[dtype.Complex[T]], error) {
	cfg := ApplyOptions(opts...)
	desc := dtype.Of[dtype.Complex[T]]().WithDimension(dim)
	if !desc.Valid() {
		return nil, &UnsupportedTypeError{Descriptor: desc, Operation: op.String()}
	}

	fn, impl, err := kernel.SelectComplexConst[T](op)
	if err != nil {
		return nil, &UnsupportedTypeError{Descriptor: desc, Operation: op.String()}
	}
	return newConstArithmetic(desc, op, fn, impl, k, cfg), nil
}

func newConstArithmetic[E any](desc dtype.Descriptor, op kernel.Op, fn kernel.ConstFunc[E], impl kernel.Impl, k E, cfg Config) *ConstArithmetic[E] {
	u := &ConstArithmetic[E]{
		base: newBase(desc, desc, op, impl),
		dim:  desc.Dimension,
		fn:   fn,
	}
	for _, l := range cfg.Listeners {
		u.listeners.add(l)
	}
	u.SetConstant(k)
	return u
}

// Constant returns the current constant.
func (u *ConstArithmetic[E]) Constant() E {
	return u.k
}

// SetConstant replaces the constant used by subsequent steps and notifies
// every listener once, even when k equals the previous value.
func (u *ConstArithmetic[E]) SetConstant(k E) {
	u.k = k
	u.listeners.emit(ConstantChanged{
		Source: u.id,
		Name:   EventConstantChanged,
		Value:  k,
	})
}

// ConstantValue returns Constant as an any.
func (u *ConstArithmetic[E]) ConstantValue() any {
	return u.k
}

// SetConstantValue converts v to E and sets it. On failure the constant
// is unchanged and no notification is sent.
func (u *ConstArithmetic[E]) SetConstantValue(v any) error {
	k, err := convertConstant[E](u.in, v)
	if err != nil {
		return err
	}
	u.SetConstant(k)
	return nil
}

// OnConstantChanged attaches l to the unit.
func (u *ConstArithmetic[E]) OnConstantChanged(l Listener) (cancel func()) {
	return u.listeners.add(l)
}

// Work runs one step over the available samples.
func (u *ConstArithmetic[E]) Work() {
	n := u.ready()
	if n == 0 {
		return
	}

	count := n * u.dim
	u.fn(dtype.View[E](u.dst.Buffer(), count), dtype.View[E](u.src.Buffer(), count), u.k)
	u.commit(n)
}
