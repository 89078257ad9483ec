package transform

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-stream/stream/dtype"
	"github.com/cwbudde/algo-stream/stream/kernel"
)

type recorder struct {
	events []ConstantChanged
}

func (r *recorder) listen(ev ConstantChanged) {
	r.events = append(r.events, ev)
}

func TestInitialConstantIsAnnounced(t *testing.T) {
	var rec recorder
	u, err := New(dtype.MustParse("int16"), "X*K", 4, WithConstantListener(rec.listen))
	if err != nil {
		t.Fatal(err)
	}

	if len(rec.events) != 1 {
		t.Fatalf("events = %d, want 1", len(rec.events))
	}
	ev := rec.events[0]
	if ev.Source != u.ID() || ev.Name != EventConstantChanged || ev.Value != int16(4) {
		t.Fatalf("event = %+v", ev)
	}
}

func TestSetConstantUsedByNextStep(t *testing.T) {
	u, err := NewArithmetic[float64](kernel.OpXMulK, 2, 1)
	if err != nil {
		t.Fatal(err)
	}

	var rec recorder
	u.OnConstantChanged(rec.listen)

	in := &spyPort{elements: 1, buf: dtype.Bytes([]float64{3})}
	out := &spyPort{elements: 1, buf: make([]byte, 8)}
	u.Connect(in, out)

	u.SetConstant(5.0)
	u.Work()

	if got := dtype.View[float64](out.buf, 1)[0]; got != 15 {
		t.Fatalf("output = %v, want 15", got)
	}
	if u.Constant() != 5 || u.ConstantValue() != 5.0 {
		t.Fatalf("Constant() = %v", u.Constant())
	}
	if len(rec.events) != 1 || rec.events[0].Value != 5.0 {
		t.Fatalf("events = %+v", rec.events)
	}
}

func TestSetConstantNotifiesEveryCall(t *testing.T) {
	u, err := NewArithmetic[uint8](kernel.OpXPlusK, 1, 1)
	if err != nil {
		t.Fatal(err)
	}

	var a, b recorder
	u.OnConstantChanged(a.listen)
	cancel := u.OnConstantChanged(b.listen)

	u.SetConstant(7)
	u.SetConstant(7)
	cancel()
	u.SetConstant(8)

	if len(a.events) != 3 {
		t.Fatalf("first listener got %d events, want 3", len(a.events))
	}
	if len(b.events) != 2 {
		t.Fatalf("cancelled listener got %d events, want 2", len(b.events))
	}
	for i, want := range []uint8{7, 7, 8} {
		if a.events[i].Value != want {
			t.Fatalf("event %d value = %v, want %d", i, a.events[i].Value, want)
		}
	}
}

func TestListenerCancelsDuringNotification(t *testing.T) {
	u, err := NewArithmetic[int32](kernel.OpXPlusK, 0, 1)
	if err != nil {
		t.Fatal(err)
	}

	var first, second, third recorder
	var cancel func()
	cancel = u.OnConstantChanged(func(ev ConstantChanged) {
		first.listen(ev)
		cancel()
	})
	u.OnConstantChanged(second.listen)
	u.OnConstantChanged(third.listen)

	u.SetConstant(2)
	u.SetConstant(3)

	if len(first.events) != 1 {
		t.Fatalf("detached listener got %d events, want 1", len(first.events))
	}
	for name, r := range map[string]*recorder{"second": &second, "third": &third} {
		if len(r.events) != 2 || r.events[0].Value != int32(2) || r.events[1].Value != int32(3) {
			t.Fatalf("%s listener events = %+v", name, r.events)
		}
	}
}

func TestSetConstantValue(t *testing.T) {
	p, err := NewConstArithmetic(dtype.MustParse("complex_int8[4]"), "K-X", 0)
	if err != nil {
		t.Fatal(err)
	}

	var rec recorder
	p.OnConstantChanged(rec.listen)

	if err := p.SetConstantValue(3 - 2i); err != nil {
		t.Fatal(err)
	}
	want := dtype.Complex[int8]{Re: 3, Im: -2}
	if p.ConstantValue() != want {
		t.Fatalf("ConstantValue() = %v, want %v", p.ConstantValue(), want)
	}

	err = p.SetConstantValue(1000)
	var ice *InvalidConstantError
	if !errors.As(err, &ice) || !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("error = %v, want out of range", err)
	}
	if p.ConstantValue() != want {
		t.Fatal("failed SetConstantValue changed the constant")
	}
	if len(rec.events) != 1 {
		t.Fatalf("events = %d, want 1", len(rec.events))
	}
}

func TestAngleIgnoresListenerOption(t *testing.T) {
	var rec recorder
	u, err := New(dtype.MustParse("complex128"), "angle", nil, WithConstantListener(rec.listen))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := u.(Parametrized); ok {
		t.Fatal("angle unit has a constant")
	}
	if len(rec.events) != 0 {
		t.Fatalf("events = %d, want 0", len(rec.events))
	}
}

func TestInvalidConstantErrorMessage(t *testing.T) {
	err := &InvalidConstantError{Descriptor: dtype.MustParse("int8"), Value: 300, Err: ErrOutOfRange}
	want := "transform: constant out of range: 300 (int) for int8"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}
