// Package kernel provides the element-wise kernels behind the stream
// transforms and the selector that picks one implementation per
// (operation, element type) pair.
//
// # Operations
//
// Constant-operand operations take a scalar k of the element type:
//
//   - X+K: dst[i] = src[i] + k
//   - X-K: dst[i] = src[i] - k
//   - K-X: dst[i] = k - src[i]
//   - X*K: dst[i] = src[i] * k
//   - X/K: dst[i] = src[i] / k
//   - K/X: dst[i] = k / src[i]
//
// The angle operation maps complex elements to their phase. Floating-point
// outputs are radians in (-pi, pi]; integer outputs use the full signed
// range of the component type for [-pi, pi).
//
// Integer division by zero is a caller precondition. The kernels do not
// check for it and Go raises its run-time divide-by-zero panic.
//
// # Implementation selection
//
// Accelerated variants register themselves per architecture (AVX2 and SSE2
// on amd64, NEON on arm64) and are chosen by priority among those the CPU
// supports, as reported by github.com/cwbudde/algo-vecmath/cpu. They cover
// the additive operations and X*K for float64, and the additive operations
// for complex128. The purego build tag disables them. Everything else runs
// on portable scalar loops.
//
// Selectors take the feature set explicitly, so a caller can pin the
// decision (for example cpu.Features{ForceGeneric: true}) and cache the
// returned function for the lifetime of a transform.
package kernel
