//go:build arm64 && !purego

package kernel

// This file imports arm64-specific implementation packages to trigger
// their init() functions, which register kernels with the registry.

import (
	_ "github.com/cwbudde/algo-stream/stream/kernel/internal/arch/arm64/neon"
	_ "github.com/cwbudde/algo-stream/stream/kernel/internal/arch/generic"
)
