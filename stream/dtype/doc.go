// Package dtype describes the element types carried by a stream.
//
// A Descriptor names the numeric kind of one component (signed integer,
// unsigned integer, float), its byte width, whether an element is complex
// (two components) and how many elements form one logical sample (the
// dimension). Descriptors are plain comparable values; the transform package
// matches them against its dispatch tables.
//
// Host-side names follow the "complex_float32" / "int16" convention:
//
//	d, err := dtype.Parse("complex_int16[4]")
//	// d.Kind == dtype.KindInt, d.Width == 2, d.Complex, d.Dimension == 4
//
// Go element types map onto descriptors through Of:
//
//	dtype.Of[complex64]()           // complex_float32
//	dtype.Of[dtype.Complex[int8]]() // complex_int8
package dtype
