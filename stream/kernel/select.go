package kernel

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath/cpu"
	"golang.org/x/exp/constraints"

	"github.com/cwbudde/algo-stream/stream/dtype"
	"github.com/cwbudde/algo-stream/stream/kernel/internal/arch/generic"
	"github.com/cwbudde/algo-stream/stream/kernel/internal/arch/registry"
)

// ConstFunc applies a constant-operand operation: dst[i] = src[i] op k (or
// k op src[i] for the reversed operations) for every element of dst. src
// must hold at least len(dst) elements. Kernels do not allocate or retain
// the slices.
type ConstFunc[T any] func(dst, src []T, k T)

// AngleFunc writes the phase of each complex element of src into dst.
type AngleFunc[C, R any] func(dst []R, src []C)

// Impl names the implementation variant a selector picked.
type Impl struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
}

// String returns the variant name.
func (i Impl) String() string {
	return i.Name
}

var genericImpl = Impl{Name: "generic", SIMDLevel: cpu.SIMDNone}

// SelectConst returns the fastest kernel for op over element type T that
// the given CPU features allow. float64 and complex128 consult the
// accelerated variants registered for this architecture; every other
// element type, and any operation a variant does not cover, resolves to
// the portable scalar loop.
//
// Selection is a one-shot decision: callers cache the returned function.
func SelectConst[T dtype.Arith](op Op, features cpu.Features) (ConstFunc[T], Impl, error) {
	if !op.Parametrized() {
		return nil, Impl{}, fmt.Errorf("%w: %s takes no constant", ErrUnsupportedOp, op)
	}

	var zero T
	switch any(zero).(type) {
	case float64:
		if fn, impl := lookup(op, features, float64Ops); fn != nil {
			return any(fn).(ConstFunc[T]), impl, nil
		}
	case complex128:
		if fn, impl := lookup(op, features, complex128Ops); fn != nil {
			return any(fn).(ConstFunc[T]), impl, nil
		}
	}

	return scalarConst[T](op), genericImpl, nil
}

// SelectComplexConst returns the kernel for op over integer complex
// elements. Only the portable variant exists.
func SelectComplexConst[T constraints.Integer](op Op) (ConstFunc[dtype.Complex[T]], Impl, error) {
	var fn ConstFunc[dtype.Complex[T]]
	switch op {
	case OpXPlusK:
		fn = generic.ComplexXPlusK[T]
	case OpXMinusK:
		fn = generic.ComplexXMinusK[T]
	case OpKMinusX:
		fn = generic.ComplexKMinusX[T]
	case OpXMulK:
		fn = generic.ComplexXMulK[T]
	case OpXDivK:
		fn = generic.ComplexXDivK[T]
	case OpKDivX:
		fn = generic.ComplexKDivX[T]
	default:
		return nil, Impl{}, fmt.Errorf("%w: %s takes no constant", ErrUnsupportedOp, op)
	}
	return fn, genericImpl, nil
}

// Angle64 returns the angle kernel for complex64 input.
func Angle64() (AngleFunc[complex64, float32], Impl) {
	return generic.Angle64, genericImpl
}

// Angle128 returns the angle kernel for complex128 input.
func Angle128() (AngleFunc[complex128, float64], Impl) {
	return generic.Angle128, genericImpl
}

// AngleFixed returns the fixed-point angle kernel for integer complex
// input. The output spans [-pi, pi) over the full signed range of T.
func AngleFixed[T constraints.Signed]() (AngleFunc[dtype.Complex[T], T], Impl) {
	return generic.AngleFixed[T], genericImpl
}

// Registered lists the accelerated and generic variants registered on this
// build, highest priority first.
func Registered() []Impl {
	entries := registry.Global.ListEntries()
	impls := make([]Impl, len(entries))
	for i, e := range entries {
		impls[i] = Impl{Name: e.Name, SIMDLevel: e.SIMDLevel}
	}
	return impls
}

func float64Ops(e *registry.OpEntry) registry.ConstOps[float64] { return e.Float64 }

func complex128Ops(e *registry.OpEntry) registry.ConstOps[complex128] { return e.Complex128 }

func lookup[T any](op Op, features cpu.Features, ops func(*registry.OpEntry) registry.ConstOps[T]) (ConstFunc[T], Impl) {
	entry := registry.Global.Lookup(features, func(e *registry.OpEntry) bool {
		return pick(ops(e), op) != nil
	})
	if entry == nil {
		return nil, Impl{}
	}
	return pick(ops(entry), op), Impl{Name: entry.Name, SIMDLevel: entry.SIMDLevel}
}

func pick[T any](ops registry.ConstOps[T], op Op) ConstFunc[T] {
	switch op {
	case OpXPlusK:
		return ops.XPlusK
	case OpXMinusK:
		return ops.XMinusK
	case OpKMinusX:
		return ops.KMinusX
	case OpXMulK:
		return ops.XMulK
	case OpXDivK:
		return ops.XDivK
	case OpKDivX:
		return ops.KDivX
	default:
		return nil
	}
}

func scalarConst[T dtype.Arith](op Op) ConstFunc[T] {
	switch op {
	case OpXPlusK:
		return generic.XPlusK[T]
	case OpXMinusK:
		return generic.XMinusK[T]
	case OpKMinusX:
		return generic.KMinusX[T]
	case OpXMulK:
		return generic.XMulK[T]
	case OpXDivK:
		return generic.XDivK[T]
	case OpKDivX:
		return generic.KDivX[T]
	default:
		return nil
	}
}
