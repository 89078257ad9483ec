// Package registry provides the implementation registry for accelerated
// element-wise kernels.
//
// Multiple implementation variants (generic, SSE2, AVX2, NEON) register
// themselves from init() functions in their arch packages. The kernel
// selector asks the registry for the highest-priority variant that is
// compatible with a given CPU feature set and actually implements the
// requested operation, so a variant may cover only part of the operation
// set.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// ConstOps holds the constant-operand kernels of one element type. Nil
// fields mean the variant does not accelerate that operation.
type ConstOps[T any] struct {
	// XPlusK computes dst[i] = src[i] + k.
	XPlusK func(dst, src []T, k T)

	// XMinusK computes dst[i] = src[i] - k.
	XMinusK func(dst, src []T, k T)

	// KMinusX computes dst[i] = k - src[i].
	KMinusX func(dst, src []T, k T)

	// XMulK computes dst[i] = src[i] * k.
	XMulK func(dst, src []T, k T)

	// XDivK computes dst[i] = src[i] / k.
	XDivK func(dst, src []T, k T)

	// KDivX computes dst[i] = k / src[i].
	KDivX func(dst, src []T, k T)
}

// OpEntry represents one registered implementation variant.
type OpEntry struct {
	// Name is a human-readable identifier (e.g., "avx2", "neon").
	Name string

	// SIMDLevel indicates the instruction set required by this variant.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible variants; higher wins. Suggested values:
	//   - Generic (SIMDNone): 0
	//   - SSE2: 10
	//   - NEON: 15
	//   - AVX2: 20
	Priority int

	// Float64 holds kernels over float64 lanes.
	Float64 ConstOps[float64]

	// Complex128 holds kernels over complex128 elements.
	Complex128 ConstOps[complex128]
}

// OpRegistry manages registration and lookup of implementation variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the registry populated by the arch packages.
var Global = &OpRegistry{}

// Register adds an implementation variant. All registrations should
// complete (from init) before the first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry that the CPU supports and for
// which has reports true. A nil has accepts any entry. It returns nil when
// nothing matches.
func (r *OpRegistry) Lookup(features cpu.Features, has func(*OpEntry) bool) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if !cpu.Supports(features, entry.SIMDLevel) {
			continue
		}
		if has == nil || has(entry) {
			return entry
		}
	}

	return nil
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Insertion sort keeps registration order among equal priorities.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries, sorted by priority.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
