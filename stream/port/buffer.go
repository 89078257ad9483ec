package port

import (
	"fmt"

	"github.com/cwbudde/algo-stream/stream/dtype"
)

// Buffer is a sample FIFO backed by one byte slice.
type Buffer struct {
	desc dtype.Descriptor
	size int // bytes per sample
	data []byte
	head int // byte offset of the first unread sample
	tail int // byte offset one past the last written sample
}

// New returns an empty Buffer holding up to capacity samples of desc.
// It panics if desc is not valid.
func New(desc dtype.Descriptor, capacity int) *Buffer {
	if !desc.Valid() {
		panic(fmt.Sprintf("port: invalid descriptor %+v", desc))
	}
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{
		desc: desc,
		size: desc.Size(),
		data: make([]byte, capacity*desc.Size()),
	}
}

// Descriptor returns the sample type of the buffer.
func (b *Buffer) Descriptor() dtype.Descriptor {
	return b.desc
}

// Len returns the number of unread samples.
func (b *Buffer) Len() int {
	return (b.tail - b.head) / b.size
}

// Cap returns the capacity in samples.
func (b *Buffer) Cap() int {
	return len(b.data) / b.size
}

// Free returns the number of samples that can be written after the
// current tail.
func (b *Buffer) Free() int {
	return (len(b.data) - b.tail) / b.size
}

// Reset discards all samples.
func (b *Buffer) Reset() {
	b.head = 0
	b.tail = 0
}

// Grow ensures the capacity is at least n samples, preserving unread data.
func (b *Buffer) Grow(n int) {
	if n*b.size <= len(b.data) {
		return
	}
	grown := make([]byte, n*b.size)
	b.tail = copy(grown, b.data[b.head:b.tail])
	b.head = 0
	b.data = grown
}

// Compact moves unread samples to the front so Free covers the whole
// unused capacity.
func (b *Buffer) Compact() {
	if b.head == 0 {
		return
	}
	b.tail = copy(b.data, b.data[b.head:b.tail])
	b.head = 0
}

func (b *Buffer) consume(n int) {
	if n < 0 || n > b.Len() {
		panic(fmt.Sprintf("port: consume %d of %d available samples", n, b.Len()))
	}
	b.head += n * b.size
	if b.head == b.tail {
		b.Reset()
	}
}

func (b *Buffer) produce(n int) {
	if n < 0 || n > b.Free() {
		panic(fmt.Sprintf("port: produce %d of %d free samples", n, b.Free()))
	}
	b.tail += n * b.size
}

// Input returns the read side of b.
func (b *Buffer) Input() Input {
	return Input{b: b}
}

// Output returns the write side of b.
func (b *Buffer) Output() Output {
	return Output{b: b}
}

// Input is the consumer view of a Buffer.
type Input struct {
	b *Buffer
}

// Elements returns the number of readable samples.
func (in Input) Elements() int {
	return in.b.Len()
}

// Buffer returns the bytes of the readable samples.
func (in Input) Buffer() []byte {
	return in.b.data[in.b.head:in.b.tail]
}

// Consume marks n samples as read. It panics if n exceeds Elements.
func (in Input) Consume(n int) {
	in.b.consume(n)
}

// Output is the producer view of a Buffer.
type Output struct {
	b *Buffer
}

// Elements returns the number of writable samples. When the tail has
// reached the end of the storage the unread samples are moved to the
// front first.
func (out Output) Elements() int {
	if out.b.Free() == 0 {
		out.b.Compact()
	}
	return out.b.Free()
}

// Buffer returns the bytes of the free region after the tail.
func (out Output) Buffer() []byte {
	return out.b.data[out.b.tail:]
}

// Produce marks n samples as written. It panics if n exceeds Elements.
func (out Output) Produce(n int) {
	out.b.produce(n)
}
