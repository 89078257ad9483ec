package dtype

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownType is returned by Parse for names that do not describe a
// numeric element type.
var ErrUnknownType = errors.New("dtype: unknown type")

// Kind is the numeric family of one element component.
type Kind uint8

const (
	// KindInvalid is the zero Kind.
	KindInvalid Kind = iota

	// KindInt is a two's complement signed integer.
	KindInt

	// KindUint is an unsigned integer.
	KindUint

	// KindFloat is an IEEE 754 binary floating-point number.
	KindFloat

	// KindBool is a one-byte boolean. It is describable so hosts can
	// pass it through, but no transform accepts it.
	KindBool
)

// String returns the name prefix used for the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Descriptor identifies an element type and its per-sample dimension.
type Descriptor struct {
	Kind      Kind
	Width     int  // bytes per component
	Complex   bool // two components (re, im) per element
	Dimension int  // elements per logical sample
}

// Scalar returns d with a dimension of 1. Dispatch matches on this form.
func (d Descriptor) Scalar() Descriptor {
	d.Dimension = 1
	return d
}

// WithDimension returns d with the given dimension.
func (d Descriptor) WithDimension(dimension int) Descriptor {
	d.Dimension = dimension
	return d
}

// Real returns the real-valued descriptor with the same component type.
func (d Descriptor) Real() Descriptor {
	d.Complex = false
	return d
}

// ElementSize returns the byte size of one element (both components for
// complex types).
func (d Descriptor) ElementSize() int {
	if d.Complex {
		return 2 * d.Width
	}
	return d.Width
}

// Size returns the byte size of one logical sample.
func (d Descriptor) Size() int {
	return d.ElementSize() * d.Dimension
}

// Lanes returns the number of scalar components in one logical sample.
func (d Descriptor) Lanes() int {
	if d.Complex {
		return 2 * d.Dimension
	}
	return d.Dimension
}

// Valid reports whether d names a representable element type with a
// positive dimension.
func (d Descriptor) Valid() bool {
	if d.Dimension < 1 {
		return false
	}
	switch d.Kind {
	case KindInt, KindUint:
		return d.Width == 1 || d.Width == 2 || d.Width == 4 || d.Width == 8
	case KindFloat:
		return d.Width == 2 || d.Width == 4 || d.Width == 8
	case KindBool:
		return d.Width == 1 && !d.Complex
	default:
		return false
	}
}

// Name returns the element type name without the dimension, e.g.
// "complex_uint16".
func (d Descriptor) Name() string {
	if d.Kind == KindBool {
		return "bool"
	}
	name := d.Kind.String() + strconv.Itoa(8*d.Width)
	if d.Complex {
		return "complex_" + name
	}
	return name
}

// String returns Name, followed by the dimension in brackets when it is
// not 1. The result round-trips through Parse.
func (d Descriptor) String() string {
	if d.Dimension == 1 {
		return d.Name()
	}
	return fmt.Sprintf("%s[%d]", d.Name(), d.Dimension)
}

// Parse decodes a type name of the form produced by Descriptor.String.
// The Go spellings "complex64" and "complex128" are accepted as aliases of
// complex_float32 and complex_float64.
func Parse(s string) (Descriptor, error) {
	name := strings.TrimSpace(s)
	dimension := 1

	if open := strings.IndexByte(name, '['); open >= 0 {
		if !strings.HasSuffix(name, "]") {
			return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownType, s)
		}
		n, err := strconv.Atoi(name[open+1 : len(name)-1])
		if err != nil || n < 1 {
			return Descriptor{}, fmt.Errorf("%w: bad dimension in %q", ErrUnknownType, s)
		}
		dimension = n
		name = name[:open]
	}

	switch name {
	case "complex64":
		name = "complex_float32"
	case "complex128":
		name = "complex_float64"
	case "bool":
		return Descriptor{Kind: KindBool, Width: 1, Dimension: dimension}, nil
	}

	d := Descriptor{Dimension: dimension}
	if rest, ok := strings.CutPrefix(name, "complex_"); ok {
		d.Complex = true
		name = rest
	}

	var bits string
	switch {
	case strings.HasPrefix(name, "uint"):
		d.Kind, bits = KindUint, name[len("uint"):]
	case strings.HasPrefix(name, "int"):
		d.Kind, bits = KindInt, name[len("int"):]
	case strings.HasPrefix(name, "float"):
		d.Kind, bits = KindFloat, name[len("float"):]
	default:
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownType, s)
	}

	n, err := strconv.Atoi(bits)
	if err != nil || n <= 0 || n%8 != 0 {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
	d.Width = n / 8
	return d, nil
}

// MustParse is like Parse but panics on error. It is meant for tables and
// tests with literal names.
func MustParse(s string) Descriptor {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}
