//go:build arm64 && !purego

// Package neon registers ARM NEON kernels built on the algo-vecmath
// assembly block primitives.
package neon

import (
	vecneon "github.com/cwbudde/algo-vecmath/arch/arm64/neon"
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-stream/stream/kernel/internal/arch/registry"
	"github.com/cwbudde/algo-stream/stream/kernel/internal/arch/vecops"
)

// init registers the NEON-accelerated float64 and complex128 kernels.
//
// NEON (Advanced SIMD) is mandatory on ARMv8 and processes 2 float64 lanes
// per instruction.
//
// Priority: 15
func init() {
	block := vecops.Block{
		AddBlockInPlace:   vecneon.AddBlockInPlace,
		ScaleBlock:        vecneon.ScaleBlock,
		ScaleBlockInPlace: vecneon.ScaleBlockInPlace,
	}

	registry.Global.Register(registry.OpEntry{
		Name:       "neon",
		SIMDLevel:  cpu.SIMDNEON,
		Priority:   15,
		Float64:    block.Float64(),
		Complex128: block.Complex128(),
	})
}
