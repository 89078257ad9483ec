// Package port provides an in-memory stream buffer that satisfies the
// input and output port contracts of the transform package.
//
// A Buffer is a FIFO of logical samples of one dtype.Descriptor. Its
// Output view exposes free space to a producing transform and its Input
// view exposes unread samples to a consuming one, so the same Buffer can
// connect two transforms:
//
//	mid := port.New(desc, 1024)
//	a.Connect(src.Input(), mid.Output())
//	b.Connect(mid.Input(), dst.Output())
//
// Buffers are not safe for concurrent use; the host that schedules the
// transforms also serializes access to their buffers.
package port
