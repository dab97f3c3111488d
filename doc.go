// Package algoscalar provides a generic scalar abstraction over the four
// floating-point representations: float32, float64, complex64 and complex128.
//
// Numerical routines written once against the Scalar constraint instantiate
// over any of the four carrier types Float32, Float64, Complex64 and
// Complex128 without per-representation code. Each carrier declares its
// real and complex partner of the same component width through its method
// signatures, so a mismatched pairing is a compile error, never a runtime
// condition. The carriers are defined types over the predeclared numerics
// and keep the native arithmetic operators.
//
// The elementary operations (Squared, Abs, Sqrt, Exp, Conj, Randn) are pure
// functions with representation-correct semantics: complex magnitudes are
// hypot-based norms that cannot overflow in the intermediate squaring,
// complex square roots take the principal branch, and random sampling draws
// one standard-normal value per real component. Numeric edge cases follow
// IEEE-754 (NaN, ±Inf); nothing in this package returns an error.
//
// Example:
//
//	func RMS[X algoscalar.Scalar[X, R, C], R algoscalar.RealScalar[R, C], C any](xs []X) R {
//	    var acc R
//	    for _, x := range xs {
//	        acc = acc + x.Squared()
//	    }
//	    return acc.DivReal(algoscalar.IntoReal[R](float64(len(xs)))).Sqrt()
//	}
package algoscalar
