package transform

import (
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-stream/stream/dtype"
	"github.com/cwbudde/algo-stream/stream/kernel"
)

var (
	_ Parametrized = (*ConstArithmetic[float32])(nil)
	_ Parametrized = (*ConstArithmetic[dtype.Complex[int16]])(nil)
	_ Unit         = (*Angle[complex64, float32])(nil)
)

type constEntry struct {
	desc  dtype.Descriptor
	build func(op kernel.Op, k any, dim int, cfg Config) (Parametrized, error)
}

type angleEntry struct {
	desc  dtype.Descriptor
	build func(dim int) (Unit, error)
}

// constTable lists the element types of ConstArithmetic in match order.
var constTable = []constEntry{
	constOf[int8](),
	constOf[int16](),
	constOf[int32](),
	constOf[int64](),
	constOf[uint8](),
	constOf[uint16](),
	constOf[uint32](),
	constOf[uint64](),
	constOf[float32](),
	constOf[float64](),
	complexConstOf[int8](),
	complexConstOf[int16](),
	complexConstOf[int32](),
	complexConstOf[int64](),
	complexConstOf[uint8](),
	complexConstOf[uint16](),
	complexConstOf[uint32](),
	complexConstOf[uint64](),
	constOf[complex64](),
	constOf[complex128](),
}

// angleTable lists the input element types of Angle in match order.
var angleTable = []angleEntry{
	angleOf(dtype.Of[complex128](), NewAngle128),
	angleOf(dtype.Of[complex64](), NewAngle64),
	angleOf(dtype.Of[dtype.Complex[int64]](), NewAngleFixed[int64]),
	angleOf(dtype.Of[dtype.Complex[int32]](), NewAngleFixed[int32]),
	angleOf(dtype.Of[dtype.Complex[int16]](), NewAngleFixed[int16]),
	angleOf(dtype.Of[dtype.Complex[int8]](), NewAngleFixed[int8]),
}

func constOf[E dtype.Arith]() constEntry {
	return constEntry{
		desc: dtype.Of[E](),
		build: func(op kernel.Op, k any, dim int, cfg Config) (Parametrized, error) {
			desc := dtype.Of[E]().WithDimension(dim)
			fn, impl, err := kernel.SelectConst[E](op, cfg.Features)
			if err != nil {
				return nil, &UnsupportedTypeError{Descriptor: desc, Operation: op.String()}
			}
			c, err := convertConstant[E](desc, k)
			if err != nil {
				return nil, err
			}
			return newConstArithmetic(desc, op, fn, impl, c, cfg), nil
		},
	}
}

func complexConstOf[T constraints.Integer]() constEntry {
	return constEntry{
		desc: dtype.Of[dtype.Complex[T]](),
		build: func(op kernel.Op, k any, dim int, cfg Config) (Parametrized, error) {
			desc := dtype.Of[dtype.Complex[T]]().WithDimension(dim)
			fn, impl, err := kernel.SelectComplexConst[T](op)
			if err != nil {
				return nil, &UnsupportedTypeError{Descriptor: desc, Operation: op.String()}
			}
			c, err := convertConstant[dtype.Complex[T]](desc, k)
			if err != nil {
				return nil, err
			}
			return newConstArithmetic(desc, op, fn, impl, c, cfg), nil
		},
	}
}

func angleOf[C, R any](desc dtype.Descriptor, ctor func(int) (*Angle[C, R], error)) angleEntry {
	return angleEntry{
		desc: desc,
		build: func(dim int) (Unit, error) {
			u, err := ctor(dim)
			if err != nil {
				return nil, err
			}
			return u, nil
		},
	}
}

// New constructs the unit for a host request: op is an operation name as
// printed by kernel.Op ("angle", "X+K", ...) and constant is the initial
// constant of parametrized operations. constant is ignored for "angle".
func New(desc dtype.Descriptor, op string, constant any, opts ...Option) (Unit, error) {
	parsed, err := kernel.ParseOp(op)
	if err != nil {
		return nil, &UnsupportedTypeError{Descriptor: desc, Operation: op}
	}
	if parsed == kernel.OpAngle {
		return NewAngle(desc)
	}
	return NewConstArithmetic(desc, op, constant, opts...)
}

// NewConstArithmetic constructs a ConstArithmetic unit for desc. The
// constant is converted to the element type of desc; it fails with an
// *InvalidConstantError if that type cannot represent it.
func NewConstArithmetic(desc dtype.Descriptor, op string, constant any, opts ...Option) (Parametrized, error) {
	parsed, err := kernel.ParseOp(op)
	if err != nil || !parsed.Parametrized() || desc.Dimension < 1 {
		return nil, &UnsupportedTypeError{Descriptor: desc, Operation: op}
	}

	scalar := desc.Scalar()
	for _, e := range constTable {
		if e.desc == scalar {
			return e.build(parsed, constant, desc.Dimension, ApplyOptions(opts...))
		}
	}
	return nil, &UnsupportedTypeError{Descriptor: desc, Operation: op}
}

// NewAngle constructs an Angle unit for complex samples described by desc.
// The output descriptor is desc.Real().
func NewAngle(desc dtype.Descriptor) (Unit, error) {
	if desc.Dimension >= 1 {
		scalar := desc.Scalar()
		for _, e := range angleTable {
			if e.desc == scalar {
				return e.build(desc.Dimension)
			}
		}
	}
	return nil, &UnsupportedTypeError{Descriptor: desc, Operation: kernel.OpAngle.String()}
}

// Combination is one supported pair of operation and scalar input type.
// Every dimension of at least 1 is supported for it.
type Combination struct {
	Operation  kernel.Op
	Descriptor dtype.Descriptor
}

// Supported lists every combination New accepts, in match order.
func Supported() []Combination {
	ops := kernel.ConstOps()
	out := make([]Combination, 0, len(constTable)*len(ops)+len(angleTable))
	for _, op := range ops {
		for _, e := range constTable {
			out = append(out, Combination{Operation: op, Descriptor: e.desc})
		}
	}
	for _, e := range angleTable {
		out = append(out, Combination{Operation: kernel.OpAngle, Descriptor: e.desc})
	}
	return out
}
