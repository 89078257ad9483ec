package main

import (
	"time"

	"github.com/cwbudde/algo-stream/stream/port"
	"github.com/cwbudde/algo-stream/stream/transform"
)

// fill is the input byte pattern. It gives normal floats and non-zero
// integer lanes and complex moduli, so K/X never divides by zero.
const fill = 0x3f

type benchConfig struct {
	bytes  int
	rounds int
	pool   *port.Pool
}

type benchResult struct {
	samples          int
	elapsed          time.Duration
	bytesPerSecond   float64
	samplesPerSecond float64
}

// run connects u to pooled buffers and times cfg.rounds full steps.
func (cfg *benchConfig) run(u transform.Unit) benchResult {
	n := max(cfg.bytes/u.Input().Size(), 1)

	src := cfg.pool.Get(u.Input(), n)
	dst := cfg.pool.Get(u.Output(), n)
	defer cfg.pool.Put(src)
	defer cfg.pool.Put(dst)

	raw := src.Output().Buffer()
	for i := range raw {
		raw[i] = fill
	}
	u.Connect(src.Input(), dst.Output())

	start := time.Now()
	for range cfg.rounds {
		src.Output().Produce(n)
		u.Work()
		dst.Reset()
	}
	elapsed := time.Since(start)

	res := benchResult{samples: n * cfg.rounds, elapsed: elapsed}
	if s := elapsed.Seconds(); s > 0 {
		res.samplesPerSecond = float64(res.samples) / s
		res.bytesPerSecond = res.samplesPerSecond * float64(u.Input().Size())
	}
	return res
}
