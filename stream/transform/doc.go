// Package transform implements typed element-wise stream transforms.
//
// A transform unit is bound at construction to one element type, one
// operation and one sample dimension. The kernel for that combination is
// selected once, from the CPU features in effect at construction, and is
// applied to whatever the connected ports make available each time the
// host calls Work:
//
//	u, err := transform.New(dtype.MustParse("float32"), "X+K", 3.0)
//	if err != nil {
//		return err
//	}
//	u.Connect(src.Input(), dst.Output())
//	u.Work()
//
// Two unit families exist. ConstArithmetic applies x+k, x-k, k-x, x*k,
// x/k or k/x against a live constant that can be changed between steps
// and announces every change to its listeners. Angle writes the phase of
// complex samples into the matching real type.
//
// Units do no locking. The host guarantees that Work, SetConstant and the
// port buffers of one unit are never used concurrently.
//
// Integer division by zero is a caller precondition: a zero constant for
// X/K or a zero input lane for K/X panics with the Go run-time error.
package transform
