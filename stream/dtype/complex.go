package dtype

import (
	"fmt"
	"math"
	"math/big"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Complex is a complex element with integer components. Go's built-in
// complex64 and complex128 cover the floating-point cases.
//
// The memory layout is two consecutive components, real first, matching
// the interleaved layout of complex stream buffers.
type Complex[T constraints.Integer] struct {
	Re, Im T
}

// Add returns a + b.
func (a Complex[T]) Add(b Complex[T]) Complex[T] {
	return Complex[T]{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

// Sub returns a - b.
func (a Complex[T]) Sub(b Complex[T]) Complex[T] {
	return Complex[T]{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

// Mul returns a * b with wrapping integer arithmetic.
func (a Complex[T]) Mul(b Complex[T]) Complex[T] {
	return Complex[T]{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

// Div returns a / b. The quotient is computed exactly, truncated toward
// zero and then wrapped to T like an integer conversion. b must not be
// zero; a zero divisor panics with an integer divide by zero.
func (a Complex[T]) Div(b Complex[T]) Complex[T] {
	var d Divider[T]
	return d.Div(a, b)
}

// Divider divides integer complex values, keeping its scratch space
// between calls. The zero value is ready to use; a Divider must not be
// shared between goroutines.
type Divider[T constraints.Integer] struct {
	ar, ai, br, bi big.Int
	den, re, im    big.Int
	t, m           big.Int
}

// Div returns a / b with the semantics of Complex.Div.
func (d *Divider[T]) Div(a, b Complex[T]) Complex[T] {
	if b.Re == 0 && b.Im == 0 {
		return Complex[T]{Re: a.Re / b.Re, Im: a.Im / b.Im}
	}

	var zero T
	if unsafe.Sizeof(zero) <= 2 {
		// Products of 16-bit components fit comfortably in int64.
		ar, ai, br, bi := int64(a.Re), int64(a.Im), int64(b.Re), int64(b.Im)
		den := br*br + bi*bi
		return Complex[T]{
			Re: T((ar*br + ai*bi) / den),
			Im: T((ai*br - ar*bi) / den),
		}
	}

	d.set(&d.ar, a.Re)
	d.set(&d.ai, a.Im)
	d.set(&d.br, b.Re)
	d.set(&d.bi, b.Im)

	d.den.Mul(&d.br, &d.br)
	d.den.Add(&d.den, d.t.Mul(&d.bi, &d.bi))

	d.re.Mul(&d.ar, &d.br)
	d.re.Add(&d.re, d.t.Mul(&d.ai, &d.bi))
	d.re.Quo(&d.re, &d.den)

	d.im.Mul(&d.ai, &d.br)
	d.im.Sub(&d.im, d.t.Mul(&d.ar, &d.bi))
	d.im.Quo(&d.im, &d.den)

	return Complex[T]{Re: T(d.low64(&d.re)), Im: T(d.low64(&d.im))}
}

func (d *Divider[T]) set(dst *big.Int, v T) {
	var zero T
	if ^zero < 0 {
		dst.SetInt64(int64(v))
	} else {
		dst.SetUint64(uint64(v))
	}
}

// low64 returns x modulo 2^64 in two's complement.
func (d *Divider[T]) low64(x *big.Int) uint64 {
	u := d.m.And(d.m.Abs(x), mask64).Uint64()
	if x.Sign() < 0 {
		u = -u
	}
	return u
}

var mask64 = new(big.Int).SetUint64(math.MaxUint64)

// String formats the value like Go complex numbers, e.g. "(3+-2i)".
func (a Complex[T]) String() string {
	return fmt.Sprintf("(%d+%di)", a.Re, a.Im)
}
