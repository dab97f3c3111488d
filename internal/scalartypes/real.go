package scalartypes

import (
	"math"

	m "github.com/cwbudde/algo-scalar/internal/math"
)

// Float32 is the 32-bit real representation.
//
// Its real partner is itself and its complex partner is Complex64. Both
// pairings are fixed by the method signatures below; the root package pins
// them with compile-time conformance checks. Elementary functions compute
// through float64 and narrow the result, since the standard library provides
// 64-bit kernels only.
type Float32 float32

// Kind reports KindReal.
func (Float32) Kind() Kind { return KindReal }

// Bits reports the component bit width, 32.
func (Float32) Bits() int { return 32 }

// FromReal returns r. The receiver only selects the representation.
func (Float32) FromReal(r Float32) Float32 { return r }

// AsComplex promotes x to its complex partner with an exactly zero
// imaginary component.
func (x Float32) AsComplex() Complex64 {
	return Complex64(complex(float32(x), 0))
}

// AddReal returns x + r.
func (x Float32) AddReal(r Float32) Float32 { return x + r }

// SubReal returns x - r.
func (x Float32) SubReal(r Float32) Float32 { return x - r }

// MulReal returns x * r.
func (x Float32) MulReal(r Float32) Float32 { return x * r }

// DivReal returns x / r. Division by zero follows IEEE-754 semantics and
// yields an infinity or NaN rather than an error.
func (x Float32) DivReal(r Float32) Float32 { return x / r }

// AddComplex promotes x and returns x + c, leaving the imaginary component
// of c untouched.
func (x Float32) AddComplex(c Complex64) Complex64 {
	cc := complex64(c)
	return Complex64(complex(float32(x)+real(cc), imag(cc)))
}

// SubComplex promotes x and returns x - c, negating the imaginary component
// of c.
func (x Float32) SubComplex(c Complex64) Complex64 {
	cc := complex64(c)
	return Complex64(complex(float32(x)-real(cc), -imag(cc)))
}

// MulComplex scales both components of c by x individually. A non-finite
// component of c stays confined to its own component; there are no cross
// terms to turn it into a NaN.
func (x Float32) MulComplex(c Complex64) Complex64 {
	cc := complex64(c)
	return Complex64(complex(float32(x)*real(cc), float32(x)*imag(cc)))
}

// Squared returns x*x, the squared magnitude.
func (x Float32) Squared() Float32 { return x * x }

// Abs returns |x|.
func (x Float32) Abs() Float32 { return Float32(m.Abs32(float32(x))) }

// Sqrt returns the nonnegative square root of x, or NaN if x is negative.
func (x Float32) Sqrt() Float32 { return Float32(m.Sqrt32(float32(x))) }

// Exp returns e**x.
func (x Float32) Exp() Float32 { return Float32(m.Exp32(float32(x))) }

// Conj returns x unchanged; a real value is its own conjugate.
func (x Float32) Conj() Float32 { return x }

// Float64 is the 64-bit real representation.
//
// Its real partner is itself and its complex partner is Complex128.
type Float64 float64

// Kind reports KindReal.
func (Float64) Kind() Kind { return KindReal }

// Bits reports the component bit width, 64.
func (Float64) Bits() int { return 64 }

// FromReal returns r. The receiver only selects the representation.
func (Float64) FromReal(r Float64) Float64 { return r }

// AsComplex promotes x to its complex partner with an exactly zero
// imaginary component.
func (x Float64) AsComplex() Complex128 {
	return Complex128(complex(float64(x), 0))
}

// AddReal returns x + r.
func (x Float64) AddReal(r Float64) Float64 { return x + r }

// SubReal returns x - r.
func (x Float64) SubReal(r Float64) Float64 { return x - r }

// MulReal returns x * r.
func (x Float64) MulReal(r Float64) Float64 { return x * r }

// DivReal returns x / r. Division by zero follows IEEE-754 semantics and
// yields an infinity or NaN rather than an error.
func (x Float64) DivReal(r Float64) Float64 { return x / r }

// AddComplex promotes x and returns x + c, leaving the imaginary component
// of c untouched.
func (x Float64) AddComplex(c Complex128) Complex128 {
	cc := complex128(c)
	return Complex128(complex(float64(x)+real(cc), imag(cc)))
}

// SubComplex promotes x and returns x - c, negating the imaginary component
// of c.
func (x Float64) SubComplex(c Complex128) Complex128 {
	cc := complex128(c)
	return Complex128(complex(float64(x)-real(cc), -imag(cc)))
}

// MulComplex scales both components of c by x individually. A non-finite
// component of c stays confined to its own component; there are no cross
// terms to turn it into a NaN.
func (x Float64) MulComplex(c Complex128) Complex128 {
	cc := complex128(c)
	return Complex128(complex(float64(x)*real(cc), float64(x)*imag(cc)))
}

// Squared returns x*x, the squared magnitude.
func (x Float64) Squared() Float64 { return x * x }

// Abs returns |x|.
func (x Float64) Abs() Float64 { return Float64(math.Abs(float64(x))) }

// Sqrt returns the nonnegative square root of x, or NaN if x is negative.
func (x Float64) Sqrt() Float64 { return Float64(math.Sqrt(float64(x))) }

// Exp returns e**x.
func (x Float64) Exp() Float64 { return Float64(math.Exp(float64(x))) }

// Conj returns x unchanged; a real value is its own conjugate.
func (x Float64) Conj() Float64 { return x }
