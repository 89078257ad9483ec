package dtype

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Descriptor
	}{
		{"int8", Descriptor{Kind: KindInt, Width: 1, Dimension: 1}},
		{"uint64", Descriptor{Kind: KindUint, Width: 8, Dimension: 1}},
		{"float32", Descriptor{Kind: KindFloat, Width: 4, Dimension: 1}},
		{"complex_float64", Descriptor{Kind: KindFloat, Width: 8, Complex: true, Dimension: 1}},
		{"complex_int16[4]", Descriptor{Kind: KindInt, Width: 2, Complex: true, Dimension: 4}},
		{"complex64", Descriptor{Kind: KindFloat, Width: 4, Complex: true, Dimension: 1}},
		{"complex128[2]", Descriptor{Kind: KindFloat, Width: 8, Complex: true, Dimension: 2}},
		{"float16", Descriptor{Kind: KindFloat, Width: 2, Dimension: 1}},
		{"bool", Descriptor{Kind: KindBool, Width: 1, Dimension: 1}},
		{" uint8 ", Descriptor{Kind: KindUint, Width: 1, Dimension: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "int", "int7", "float", "string", "complex_", "int8[0]", "int8[x]", "int8[2"} {
		_, err := Parse(in)
		if !errors.Is(err, ErrUnknownType) {
			t.Errorf("Parse(%q) error = %v, want ErrUnknownType", in, err)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, name := range []string{"int32", "complex_uint8", "float64[3]", "complex_float32[8]", "bool"} {
		d := MustParse(name)
		if got := d.String(); got != name {
			t.Errorf("String() = %q, want %q", got, name)
		}
	}
}

func TestSizes(t *testing.T) {
	d := MustParse("complex_int16[3]")

	if got := d.ElementSize(); got != 4 {
		t.Fatalf("ElementSize() = %d, want 4", got)
	}
	if got := d.Size(); got != 12 {
		t.Fatalf("Size() = %d, want 12", got)
	}
	if got := d.Lanes(); got != 6 {
		t.Fatalf("Lanes() = %d, want 6", got)
	}

	s := d.Scalar()
	if s.Dimension != 1 || s.Kind != d.Kind || s.Width != d.Width || !s.Complex {
		t.Fatalf("Scalar() = %+v", s)
	}
	if r := d.Real(); r.Complex || r.Lanes() != 3 {
		t.Fatalf("Real() = %+v", r)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		d    Descriptor
		want bool
	}{
		{MustParse("int16"), true},
		{MustParse("complex_uint64"), true},
		{MustParse("float16"), true},
		{MustParse("bool"), true},
		{Descriptor{Kind: KindBool, Width: 1, Complex: true, Dimension: 1}, false},
		{Descriptor{Kind: KindInt, Width: 3, Dimension: 1}, false},
		{Descriptor{Kind: KindFloat, Width: 1, Dimension: 1}, false},
		{Descriptor{Kind: KindFloat, Width: 4, Dimension: 0}, false},
		{Descriptor{}, false},
	}

	for _, tt := range tests {
		if got := tt.d.Valid(); got != tt.want {
			t.Errorf("%+v.Valid() = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestOf(t *testing.T) {
	tests := []struct {
		got  Descriptor
		want string
	}{
		{Of[int8](), "int8"},
		{Of[uint32](), "uint32"},
		{Of[float32](), "float32"},
		{Of[complex64](), "complex_float32"},
		{Of[complex128](), "complex_float64"},
		{Of[Complex[int16]](), "complex_int16"},
		{Of[Complex[uint64]](), "complex_uint64"},
		{Of[bool](), "bool"},
	}

	for _, tt := range tests {
		if tt.got.String() != tt.want {
			t.Errorf("Of = %s, want %s", tt.got, tt.want)
		}
	}

	if d := Of[string](); d.Kind != KindInvalid {
		t.Fatalf("Of[string]() kind = %v, want invalid", d.Kind)
	}
}
