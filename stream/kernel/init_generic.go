//go:build purego || !(amd64 || arm64)

package kernel

// Only the portable kernels are registered on this build.

import (
	_ "github.com/cwbudde/algo-stream/stream/kernel/internal/arch/generic"
)
