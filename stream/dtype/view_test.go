package dtype

import "testing"

func TestViewAliasesBytes(t *testing.T) {
	vals := []float32{1, 2, 3}
	raw := Bytes(vals)
	if len(raw) != 12 {
		t.Fatalf("len(Bytes) = %d, want 12", len(raw))
	}

	v := View[float32](raw, 2)
	if len(v) != 2 || v[0] != 1 || v[1] != 2 {
		t.Fatalf("View = %v", v)
	}

	v[1] = 7
	if vals[1] != 7 {
		t.Fatal("View does not alias the original memory")
	}
}

func TestViewComplexLayout(t *testing.T) {
	vals := []Complex[int16]{{Re: 1, Im: -1}, {Re: 2, Im: -2}}
	lanes := View[int16](Bytes(vals), 4)

	want := []int16{1, -1, 2, -2}
	for i := range want {
		if lanes[i] != want[i] {
			t.Fatalf("lane %d = %d, want %d", i, lanes[i], want[i])
		}
	}
}

func TestViewEmptyAndShort(t *testing.T) {
	if View[int32](nil, 0) != nil {
		t.Fatal("View of zero elements should be nil")
	}
	if Bytes[int32](nil) != nil {
		t.Fatal("Bytes of nil should be nil")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for short buffer")
		}
	}()
	View[int64](make([]byte, 12), 2)
}

func TestSizeOf(t *testing.T) {
	if SizeOf[complex64]() != Of[complex64]().ElementSize() {
		t.Fatal("complex64 size mismatch")
	}
	if SizeOf[Complex[uint32]]() != Of[Complex[uint32]]().ElementSize() {
		t.Fatal("Complex[uint32] size mismatch")
	}
}
