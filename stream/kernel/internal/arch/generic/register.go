// Package generic is the portable kernel library: scalar loops for every
// operation and element type the transforms support.
package generic

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-stream/stream/kernel/internal/arch/registry"
)

// init registers the float64 and complex128 instantiations so the registry
// always has a complete fallback for the types that also have SIMD
// variants.
//
// Priority: 0 (lowest - used only when no SIMD alternatives are available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:       "generic",
		SIMDLevel:  cpu.SIMDNone,
		Priority:   0,
		Float64:    ConstOps[float64](),
		Complex128: ConstOps[complex128](),
	})
}

// ConstOps returns the complete scalar kernel set for T.
func ConstOps[T float64 | complex128]() registry.ConstOps[T] {
	return registry.ConstOps[T]{
		XPlusK:  XPlusK[T],
		XMinusK: XMinusK[T],
		KMinusX: KMinusX[T],
		XMulK:   XMulK[T],
		XDivK:   XDivK[T],
		KDivX:   KDivX[T],
	}
}
