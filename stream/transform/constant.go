package transform

import (
	"math"
	"reflect"

	"github.com/cwbudde/algo-stream/stream/dtype"
)

// convertConstant converts a dynamic host value to the element type E.
// Values already of type E pass through. Otherwise v may be any Go
// integer, float or complex value, or a dtype.Complex; the conversion
// fails for values that E cannot represent exactly in range.
func convertConstant[E any](desc dtype.Descriptor, v any) (E, error) {
	if k, ok := v.(E); ok {
		return k, nil
	}

	var zero E
	fail := func(err error) (E, error) {
		return zero, &InvalidConstantError{Descriptor: desc, Value: v, Err: err}
	}

	re, im, cplx, ok := components(v)
	if !ok {
		return fail(ErrWrongShape)
	}

	t := reflect.TypeFor[E]()
	out := reflect.New(t).Elem()

	switch t.Kind() {
	case reflect.Complex64, reflect.Complex128:
		part := reflect.TypeFor[float64]()
		if t.Kind() == reflect.Complex64 {
			part = reflect.TypeFor[float32]()
		}
		r, err := convertComponent(re, part)
		if err != nil {
			return fail(err)
		}
		i, err := convertComponent(im, part)
		if err != nil {
			return fail(err)
		}
		out.SetComplex(complex(r.Float(), i.Float()))
	case reflect.Struct:
		for f, src := range []reflect.Value{re, im} {
			c, err := convertComponent(src, t.Field(f).Type)
			if err != nil {
				return fail(err)
			}
			out.Field(f).Set(c)
		}
	default:
		if cplx {
			return fail(ErrWrongShape)
		}
		c, err := convertComponent(re, t)
		if err != nil {
			return fail(err)
		}
		out.Set(c)
	}

	return out.Interface().(E), nil
}

// components splits v into real and imaginary parts. Real values get a
// zero imaginary part and cplx == false.
func components(v any) (re, im reflect.Value, cplx, ok bool) {
	rv := reflect.ValueOf(v)
	zero := reflect.ValueOf(0)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return rv, zero, false, true
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return reflect.ValueOf(real(c)), reflect.ValueOf(imag(c)), true, true
	case reflect.Struct:
		t := rv.Type()
		if t.NumField() == 2 && t.Field(0).Name == "Re" && t.Field(1).Name == "Im" {
			return rv.Field(0), rv.Field(1), true, true
		}
	}
	return reflect.Value{}, reflect.Value{}, false, false
}

// convertComponent converts one numeric value to the numeric type t.
func convertComponent(src reflect.Value, t reflect.Type) (reflect.Value, error) {
	probe := reflect.New(t).Elem()

	switch src.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		x := src.Int()
		switch {
		case probe.CanInt():
			if probe.OverflowInt(x) {
				return reflect.Value{}, ErrOutOfRange
			}
		case probe.CanUint():
			if x < 0 || probe.OverflowUint(uint64(x)) {
				return reflect.Value{}, ErrOutOfRange
			}
		case !probe.CanFloat():
			return reflect.Value{}, ErrWrongShape
		}
		return reflect.ValueOf(x).Convert(t), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		x := src.Uint()
		switch {
		case probe.CanInt():
			if x > math.MaxInt64 || probe.OverflowInt(int64(x)) {
				return reflect.Value{}, ErrOutOfRange
			}
		case probe.CanUint():
			if probe.OverflowUint(x) {
				return reflect.Value{}, ErrOutOfRange
			}
		case !probe.CanFloat():
			return reflect.Value{}, ErrWrongShape
		}
		return reflect.ValueOf(x).Convert(t), nil

	case reflect.Float32, reflect.Float64:
		x := src.Float()
		switch {
		case probe.CanFloat():
			if probe.OverflowFloat(x) {
				return reflect.Value{}, ErrOutOfRange
			}
			return reflect.ValueOf(x).Convert(t), nil
		case probe.CanInt(), probe.CanUint():
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return reflect.Value{}, ErrOutOfRange
			}
			if x != math.Trunc(x) {
				return reflect.Value{}, ErrNotIntegral
			}
			if probe.CanInt() {
				if x < math.MinInt64 || x >= 1<<63 || probe.OverflowInt(int64(x)) {
					return reflect.Value{}, ErrOutOfRange
				}
				return reflect.ValueOf(int64(x)).Convert(t), nil
			}
			if x < 0 || x >= 1<<64 || probe.OverflowUint(uint64(x)) {
				return reflect.Value{}, ErrOutOfRange
			}
			return reflect.ValueOf(uint64(x)).Convert(t), nil
		}
	}
	return reflect.Value{}, ErrWrongShape
}
