//go:build amd64 && !purego

// Package avx2 registers AVX2 kernels built on the algo-vecmath assembly
// block primitives.
package avx2

import (
	vecavx2 "github.com/cwbudde/algo-vecmath/arch/amd64/avx2"
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-stream/stream/kernel/internal/arch/registry"
	"github.com/cwbudde/algo-stream/stream/kernel/internal/arch/vecops"
)

// init registers the AVX2-accelerated float64 and complex128 kernels.
//
// AVX2 processes 4 float64 lanes per instruction. Available on Intel
// Haswell (2013+) and AMD Excavator (2015+).
//
// Priority: 20 (high - preferred over SSE2 and generic when available)
func init() {
	block := vecops.Block{
		AddBlockInPlace:   vecavx2.AddBlockInPlace,
		ScaleBlock:        vecavx2.ScaleBlock,
		ScaleBlockInPlace: vecavx2.ScaleBlockInPlace,
	}

	registry.Global.Register(registry.OpEntry{
		Name:       "avx2",
		SIMDLevel:  cpu.SIMDAVX2,
		Priority:   20,
		Float64:    block.Float64(),
		Complex128: block.Complex128(),
	})
}
