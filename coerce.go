package algoscalar

// IntoReal converts a double-precision value into the real representation R:
// the identity for 64-bit targets, a narrowing conversion for 32-bit ones.
// It lets generic code spell representation-independent constants.
//
// Example:
//
//	func Halve[X algoscalar.Scalar[X, R, C], R algoscalar.Float, C any](x X) X {
//	    return x.DivReal(algoscalar.IntoReal[R](2.0))
//	}
func IntoReal[R Float](f float64) R {
	return R(f)
}

// FromReal lifts a real value into the representation X; if X is complex,
// the imaginary component is exactly zero. It is the free-function form of
// the FromReal method, for generic call sites that hold no value of X yet.
func FromReal[X Scalar[X, R, C], R, C any](r R) X {
	var zero X

	return zero.FromReal(r)
}
