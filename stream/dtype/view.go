package dtype

import "unsafe"

// View reinterprets the first n elements of raw stream memory as []E.
// It panics if b holds fewer than n elements. b must be aligned for E,
// which holds for buffers allocated by Go and offset by whole elements.
// The result aliases b.
func View[E any](b []byte, n int) []E {
	if n <= 0 {
		return nil
	}
	var zero E
	b = b[:n*int(unsafe.Sizeof(zero))]
	return unsafe.Slice((*E)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// Bytes returns the raw memory of s. The result aliases s.
func Bytes[E any](s []E) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero E
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}

// SizeOf returns the in-memory size of one E.
func SizeOf[E any]() int {
	var zero E
	return int(unsafe.Sizeof(zero))
}
