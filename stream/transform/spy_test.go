package transform

// spyPort is a fixed-size port that records every call made on it. Ports
// sharing a log record the order of consume and produce calls.
type spyPort struct {
	elements int
	buf      []byte
	log      *[]string

	bufferCalls int
	consumed    []int
	produced    []int
}

func (p *spyPort) Elements() int { return p.elements }

func (p *spyPort) Buffer() []byte {
	p.bufferCalls++
	return p.buf
}

func (p *spyPort) Consume(n int) {
	p.consumed = append(p.consumed, n)
	p.record("consume")
}

func (p *spyPort) Produce(n int) {
	p.produced = append(p.produced, n)
	p.record("produce")
}

func (p *spyPort) record(call string) {
	if p.log != nil {
		*p.log = append(*p.log, call)
	}
}
