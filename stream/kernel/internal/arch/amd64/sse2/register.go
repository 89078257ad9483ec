//go:build amd64 && !purego

// Package sse2 registers SSE2 kernels built on the algo-vecmath assembly
// block primitives.
package sse2

import (
	vecsse2 "github.com/cwbudde/algo-vecmath/arch/amd64/sse2"
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-stream/stream/kernel/internal/arch/registry"
	"github.com/cwbudde/algo-stream/stream/kernel/internal/arch/vecops"
)

// init registers the SSE2-accelerated float64 and complex128 kernels.
//
// SSE2 is part of the x86-64 baseline and processes 2 float64 lanes per
// instruction.
//
// Priority: 10 (preferred over generic, below AVX2)
func init() {
	block := vecops.Block{
		AddBlockInPlace:   vecsse2.AddBlockInPlace,
		ScaleBlock:        vecsse2.ScaleBlock,
		ScaleBlockInPlace: vecsse2.ScaleBlockInPlace,
	}

	registry.Global.Register(registry.OpEntry{
		Name:       "sse2",
		SIMDLevel:  cpu.SIMDSSE2,
		Priority:   10,
		Float64:    block.Float64(),
		Complex128: block.Complex128(),
	})
}
