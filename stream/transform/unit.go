package transform

import (
	"github.com/google/uuid"

	"github.com/cwbudde/algo-stream/stream/dtype"
	"github.com/cwbudde/algo-stream/stream/kernel"
)

// InputPort is the read side of a stream buffer supplied by the host.
type InputPort interface {
	// Elements returns the number of readable samples.
	Elements() int
	// Buffer returns storage holding at least Elements samples.
	Buffer() []byte
	// Consume marks the first n samples as read.
	Consume(n int)
}

// OutputPort is the write side of a stream buffer supplied by the host.
type OutputPort interface {
	// Elements returns the number of writable samples.
	Elements() int
	// Buffer returns storage with room for at least Elements samples.
	Buffer() []byte
	// Produce marks the first n samples as written.
	Produce(n int)
}

// Stats counts the data a unit has moved.
type Stats struct {
	Steps    uint64 // Work calls that processed at least one sample
	Elements uint64 // samples consumed and produced
	Lanes    uint64 // scalar input values handed to the kernel
}

// Unit is a constructed transform.
type Unit interface {
	ID() uuid.UUID
	Input() dtype.Descriptor
	Output() dtype.Descriptor
	Operation() kernel.Op
	Kernel() kernel.Impl

	// Connect binds the ports Work reads from and writes to. Both must
	// carry the unit's Input and Output descriptors respectively.
	Connect(in InputPort, out OutputPort)

	// Work processes min(in.Elements(), out.Elements()) samples. With no
	// connected ports or nothing to do it touches neither port's buffer.
	Work()

	Stats() Stats
}

// Parametrized is a Unit with a live constant operand.
type Parametrized interface {
	Unit

	// ConstantValue returns the current constant in the unit's element
	// type.
	ConstantValue() any

	// SetConstantValue converts v like the constructor does and sets it.
	SetConstantValue(v any) error

	// OnConstantChanged attaches l and returns a function detaching it.
	OnConstantChanged(l Listener) (cancel func())
}

// base carries the state common to all units.
type base struct {
	id    uuid.UUID
	in    dtype.Descriptor
	out   dtype.Descriptor
	op    kernel.Op
	impl  kernel.Impl
	src   InputPort
	dst   OutputPort
	stats Stats
}

func newBase(in, out dtype.Descriptor, op kernel.Op, impl kernel.Impl) base {
	return base{
		id:   uuid.New(),
		in:   in,
		out:  out,
		op:   op,
		impl: impl,
	}
}

// ID returns the unit's identity, carried by its notifications.
func (b *base) ID() uuid.UUID { return b.id }

// Input returns the input sample type.
func (b *base) Input() dtype.Descriptor { return b.in }

// Output returns the output sample type.
func (b *base) Output() dtype.Descriptor { return b.out }

// Operation returns the operation the unit applies.
func (b *base) Operation() kernel.Op { return b.op }

// Kernel returns the kernel variant chosen at construction.
func (b *base) Kernel() kernel.Impl { return b.impl }

// Stats returns the counters accumulated by Work.
func (b *base) Stats() Stats { return b.stats }

// Connect binds the input and output ports.
func (b *base) Connect(in InputPort, out OutputPort) {
	b.src = in
	b.dst = out
}

// ready returns the number of samples the next step can process.
func (b *base) ready() int {
	if b.src == nil || b.dst == nil {
		return 0
	}
	return max(min(b.src.Elements(), b.dst.Elements()), 0)
}

// commit reports n processed samples to the ports, input first.
func (b *base) commit(n int) {
	b.src.Consume(n)
	b.dst.Produce(n)

	b.stats.Steps++
	b.stats.Elements += uint64(n)
	b.stats.Lanes += uint64(n * b.in.Lanes())
}
