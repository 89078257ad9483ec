package transform

import (
	"math"
	"runtime"
	"testing"

	"github.com/cwbudde/algo-stream/internal/testutil"
	"github.com/cwbudde/algo-stream/stream/dtype"
	"github.com/cwbudde/algo-stream/stream/kernel"
	"github.com/cwbudde/algo-stream/stream/port"
)

func TestWorkFloat32XPlusK(t *testing.T) {
	desc := dtype.MustParse("float32")
	u, err := New(desc, "X+K", 3.0)
	if err != nil {
		t.Fatal(err)
	}

	src := port.New(desc, 8)
	dst := port.New(desc, 8)
	port.Write(src, []float32{1, 2, -3})
	u.Connect(src.Input(), dst.Output())
	u.Work()

	got := make([]float32, 3)
	if n := port.Read(dst, got); n != 3 {
		t.Fatalf("Read() = %d, want 3", n)
	}
	testutil.RequireSliceEqual(t, got, []float32{4, 5, 0})
	if src.Len() != 0 {
		t.Fatalf("input left %d samples", src.Len())
	}
}

func TestWorkInt32KMinusX(t *testing.T) {
	u, err := NewArithmetic[int32](kernel.OpKMinusX, 10, 1)
	if err != nil {
		t.Fatal(err)
	}

	in := &spyPort{elements: 3, buf: dtype.Bytes([]int32{1, 2, 3})}
	out := &spyPort{elements: 3, buf: make([]byte, 12)}
	u.Connect(in, out)
	u.Work()

	testutil.RequireSliceEqual(t, dtype.View[int32](out.buf, 3), []int32{9, 8, 7})
}

func TestWorkComplex64Angle(t *testing.T) {
	u, err := New(dtype.MustParse("complex64"), "angle", nil)
	if err != nil {
		t.Fatal(err)
	}

	in := &spyPort{elements: 2, buf: dtype.Bytes([]complex64{1, 1i})}
	out := &spyPort{elements: 2, buf: make([]byte, 8)}
	u.Connect(in, out)
	u.Work()

	testutil.RequireSliceNearlyEqual(t, dtype.View[float32](out.buf, 2), []float32{0, math.Pi / 2}, 1e-6)
}

func TestWorkAngleFixedPhasor(t *testing.T) {
	x, phase := testutil.Phasor(1000, 0.37, 64)
	src := make([]dtype.Complex[int16], len(x))
	for i, v := range x {
		src[i] = dtype.Complex[int16]{Re: int16(math.Round(real(v))), Im: int16(math.Round(imag(v)))}
	}

	u, err := NewAngleFixed[int16](1)
	if err != nil {
		t.Fatal(err)
	}
	in := &spyPort{elements: len(src), buf: dtype.Bytes(src)}
	out := &spyPort{elements: len(src), buf: make([]byte, 2*len(src))}
	u.Connect(in, out)
	u.Work()

	// Rounding the input to integers moves the phase by at most ~1e-3 rad.
	const lsb = math.Pi / 32768
	for i, v := range dtype.View[int16](out.buf, len(src)) {
		got := float64(v) * lsb
		d := math.Abs(got - phase[i])
		if d > math.Pi {
			d = 2*math.Pi - d
		}
		if d > 2e-3 {
			t.Fatalf("sample %d: angle %v rad, want %v", i, got, phase[i])
		}
	}
}

func TestWorkLaneCount(t *testing.T) {
	const (
		n   = 2
		dim = 3
	)
	u, err := NewArithmetic[complex64](kernel.OpXPlusK, 1+1i, dim)
	if err != nil {
		t.Fatal(err)
	}

	src := []complex64{0, 1, 2, 3, 4, 5, 99}
	var log []string
	in := &spyPort{elements: n, buf: dtype.Bytes(src), log: &log}
	out := &spyPort{elements: 5, buf: make([]byte, 5*dim*8), log: &log}
	u.Connect(in, out)
	u.Work()

	if len(in.consumed) != 1 || in.consumed[0] != n {
		t.Fatalf("consumed = %v, want [%d]", in.consumed, n)
	}
	if len(out.produced) != 1 || out.produced[0] != n {
		t.Fatalf("produced = %v, want [%d]", out.produced, n)
	}
	if len(log) != 2 || log[0] != "consume" || log[1] != "produce" {
		t.Fatalf("call order = %v, want [consume produce]", log)
	}

	got := dtype.View[complex64](out.buf, 5*dim)
	want := []complex64{1 + 1i, 2 + 1i, 3 + 1i, 4 + 1i, 5 + 1i, 6 + 1i}
	testutil.RequireSliceEqual(t, got[:n*dim], want)
	if got[n*dim] != 0 {
		t.Fatalf("kernel wrote past %d elements", n*dim)
	}

	if s := u.Stats(); s != (Stats{Steps: 1, Elements: n, Lanes: n * dim * 2}) {
		t.Fatalf("Stats() = %+v", s)
	}
}

func TestWorkZeroAvailable(t *testing.T) {
	tests := []struct {
		name    string
		in, out int
	}{
		{name: "empty input", in: 0, out: 4},
		{name: "full output", in: 4, out: 0},
		{name: "both", in: 0, out: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, err := NewArithmetic[float64](kernel.OpXMulK, 2, 1)
			if err != nil {
				t.Fatal(err)
			}
			in := &spyPort{elements: tc.in}
			out := &spyPort{elements: tc.out}
			u.Connect(in, out)
			u.Work()

			if in.bufferCalls != 0 || out.bufferCalls != 0 {
				t.Fatalf("buffer accessed: in %d out %d", in.bufferCalls, out.bufferCalls)
			}
			if len(in.consumed) != 0 || len(out.produced) != 0 {
				t.Fatalf("consumed %v produced %v", in.consumed, out.produced)
			}
			if u.Stats() != (Stats{}) {
				t.Fatalf("Stats() = %+v", u.Stats())
			}
		})
	}
}

func TestWorkUnconnected(t *testing.T) {
	u, err := NewAngle128(1)
	if err != nil {
		t.Fatal(err)
	}
	u.Work()
	if u.Stats().Steps != 0 {
		t.Fatal("unconnected unit stepped")
	}
}

func TestWorkIntegerDivideByZeroPanics(t *testing.T) {
	u, err := NewArithmetic[int32](kernel.OpXDivK, 0, 1)
	if err != nil {
		t.Fatalf("construction must not check the divisor: %v", err)
	}
	in := &spyPort{elements: 1, buf: dtype.Bytes([]int32{7})}
	out := &spyPort{elements: 1, buf: make([]byte, 4)}
	u.Connect(in, out)

	defer func() {
		r := recover()
		if _, ok := r.(runtime.Error); !ok {
			t.Fatalf("recover() = %v, want runtime.Error", r)
		}
		if len(out.produced) != 0 {
			t.Fatal("output produced after a failed kernel pass")
		}
	}()
	u.Work()
}

func TestWorkFloatDivideByZero(t *testing.T) {
	u, err := NewArithmetic[float32](kernel.OpKDivX, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	in := &spyPort{elements: 2, buf: dtype.Bytes([]float32{0, float32(math.Copysign(0, -1))})}
	out := &spyPort{elements: 2, buf: make([]byte, 8)}
	u.Connect(in, out)
	u.Work()

	got := dtype.View[float32](out.buf, 2)
	if !math.IsInf(float64(got[0]), 1) || !math.IsInf(float64(got[1]), -1) {
		t.Fatalf("K/X = %v, want [+Inf -Inf]", got)
	}
}

func TestPipelineThroughBuffer(t *testing.T) {
	desc := dtype.MustParse("float64[2]")
	scale, err := NewArithmetic[float64](kernel.OpXMulK, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	offset, err := NewConstArithmetic(desc, "X-K", 1)
	if err != nil {
		t.Fatal(err)
	}

	src := port.New(desc, 4)
	mid := port.New(desc, 4)
	dst := port.New(desc, 4)
	scale.Connect(src.Input(), mid.Output())
	offset.Connect(mid.Input(), dst.Output())

	port.Write(src, []float64{1, 2, 3, 4, 5, 6, 7, 8})
	scale.Work()
	offset.Work()

	got := make([]float64, 8)
	if n := port.Read(dst, got); n != 8 {
		t.Fatalf("Read() = %d, want 8", n)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 3, 5, 7, 9, 11, 13, 15}, 0)

	if s := offset.Stats(); s.Elements != 4 || s.Lanes != 8 {
		t.Fatalf("Stats() = %+v", s)
	}
}

func TestUnitIdentity(t *testing.T) {
	a, _ := NewArithmetic[int8](kernel.OpXPlusK, 1, 1)
	b, _ := NewArithmetic[int8](kernel.OpXPlusK, 1, 1)
	if a.ID() == b.ID() {
		t.Fatal("units share an ID")
	}
}
