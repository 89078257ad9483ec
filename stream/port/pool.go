package port

import (
	"sync"

	"github.com/cwbudde/algo-stream/stream/dtype"
)

// Pool provides sync.Pool-based Buffer reuse for hosts that rebuild
// transform graphs often.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns an empty, zeroed Buffer for desc with room for at least
// capacity samples. Callers must return it via Put when done.
func (p *Pool) Get(desc dtype.Descriptor, capacity int) *Buffer {
	if !desc.Valid() {
		panic("port: invalid descriptor")
	}
	if capacity < 0 {
		capacity = 0
	}

	b := p.pool.Get().(*Buffer)
	b.desc = desc
	b.size = desc.Size()
	b.Reset()

	need := capacity * b.size
	if cap(b.data) < need {
		b.data = make([]byte, need)
		return b
	}
	b.data = b.data[:need]
	clear(b.data)
	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
