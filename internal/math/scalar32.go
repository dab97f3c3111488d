package math

import (
	"math"
	"math/cmplx"
)

// 32-bit elementary kernels. The standard library ships float64 (math) and
// complex128 (math/cmplx) transcendentals only; the 32-bit variants here
// compute in the wider type and narrow the result. Widening a float32 is
// exact, so Abs32 and Sqrt32 return the correctly rounded float32 value.

// Abs32 returns |x|.
func Abs32(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

// Sqrt32 returns the nonnegative square root of x, or NaN if x is negative.
func Sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Exp32 returns e**x. Overflows to +Inf above ~88.7 and underflows to 0
// below ~-103.3, per float32 range.
func Exp32(x float32) float32 {
	return float32(math.Exp(float64(x)))
}

// AbsC64 returns the magnitude of z. The computation is hypot-based in
// float64, so it cannot overflow for any finite complex64 input.
func AbsC64(z complex64) float32 {
	return float32(cmplx.Abs(complex128(z)))
}

// SqrtC64 returns the principal square root of z: the branch with
// non-negative real part, cut along the negative real axis.
func SqrtC64(z complex64) complex64 {
	return complex64(cmplx.Sqrt(complex128(z)))
}

// ExpC64 returns e**z.
func ExpC64(z complex64) complex64 {
	return complex64(cmplx.Exp(complex128(z)))
}
