package port

import (
	"github.com/cwbudde/algo-stream/stream/dtype"
)

func checkSize[E any](b *Buffer) {
	if dtype.SizeOf[E]()*b.desc.Dimension != b.size {
		panic("port: element type mismatch")
	}
}

// Write appends as many lanes of src as fit and returns the number of
// lanes written. Only whole samples are written, so for a descriptor with
// Dimension d the count is a multiple of d. E must be the element type of
// the buffer's descriptor.
func Write[E any](b *Buffer, src []E) int {
	checkSize[E](b)
	dim := b.desc.Dimension
	out := b.Output()
	n := min(len(src)/dim, out.Elements())
	if n == 0 {
		return 0
	}
	copy(dtype.View[E](out.Buffer(), n*dim), src)
	out.Produce(n)
	return n * dim
}

// Read moves up to len(dst) lanes out of the buffer, whole samples only,
// and returns the number of lanes read.
func Read[E any](b *Buffer, dst []E) int {
	n := Peek(b, dst)
	b.consume(n / b.desc.Dimension)
	return n
}

// Peek is like Read but leaves the samples in the buffer.
func Peek[E any](b *Buffer, dst []E) int {
	checkSize[E](b)
	dim := b.desc.Dimension
	n := min(len(dst)/dim, b.Len())
	if n == 0 {
		return 0
	}
	copy(dst, dtype.View[E](b.Input().Buffer(), n*dim))
	return n * dim
}
