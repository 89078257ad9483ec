//go:build amd64 && !purego

package kernel

// This file imports amd64-specific implementation packages to trigger
// their init() functions, which register kernels with the registry.

import (
	_ "github.com/cwbudde/algo-stream/stream/kernel/internal/arch/amd64/avx2"
	_ "github.com/cwbudde/algo-stream/stream/kernel/internal/arch/amd64/sse2"
	_ "github.com/cwbudde/algo-stream/stream/kernel/internal/arch/generic"
)
