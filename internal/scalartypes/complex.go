package scalartypes

import (
	"math/cmplx"

	m "github.com/cwbudde/algo-scalar/internal/math"
)

// Complex64 is the complex representation with 32-bit components.
//
// Its real partner is Float32 and its complex partner is itself. Elementary
// functions compute through complex128 and narrow the result; in particular
// the magnitude is hypot-based in float64, so it cannot overflow for any
// finite input even when the component squares exceed the float32 range.
type Complex64 complex64

// Kind reports KindComplex.
func (Complex64) Kind() Kind { return KindComplex }

// Bits reports the component bit width, 32.
func (Complex64) Bits() int { return 32 }

// Real returns the real component.
func (z Complex64) Real() Float32 { return Float32(real(complex64(z))) }

// Imag returns the imaginary component.
func (z Complex64) Imag() Float32 { return Float32(imag(complex64(z))) }

// FromReal lifts r into a complex value with an exactly zero imaginary
// component. The receiver only selects the representation.
func (Complex64) FromReal(r Float32) Complex64 {
	return Complex64(complex(float32(r), 0))
}

// AsComplex returns z; a complex representation is its own complex partner.
func (z Complex64) AsComplex() Complex64 { return z }

// AddReal adds r to the real component, leaving the imaginary component
// untouched.
func (z Complex64) AddReal(r Float32) Complex64 {
	zz := complex64(z)
	return Complex64(complex(real(zz)+float32(r), imag(zz)))
}

// SubReal subtracts r from the real component, leaving the imaginary
// component untouched.
func (z Complex64) SubReal(r Float32) Complex64 {
	zz := complex64(z)
	return Complex64(complex(real(zz)-float32(r), imag(zz)))
}

// MulReal scales both components by r individually.
func (z Complex64) MulReal(r Float32) Complex64 {
	zz := complex64(z)
	return Complex64(complex(real(zz)*float32(r), imag(zz)*float32(r)))
}

// DivReal divides both components by r individually. Division by zero
// follows IEEE-754 semantics per component.
func (z Complex64) DivReal(r Float32) Complex64 {
	zz := complex64(z)
	return Complex64(complex(real(zz)/float32(r), imag(zz)/float32(r)))
}

// AddComplex returns z + c.
func (z Complex64) AddComplex(c Complex64) Complex64 { return z + c }

// SubComplex returns z - c.
func (z Complex64) SubComplex(c Complex64) Complex64 { return z - c }

// MulComplex returns z * c, the full complex product.
func (z Complex64) MulComplex(c Complex64) Complex64 { return z * c }

// Squared returns re²+im², the squared norm, computed in component width.
// It is never negative.
func (z Complex64) Squared() Float32 {
	zz := complex64(z)
	return Float32(real(zz)*real(zz) + imag(zz)*imag(zz))
}

// Abs returns the Euclidean norm of z.
func (z Complex64) Abs() Float32 { return Float32(m.AbsC64(complex64(z))) }

// Sqrt returns the principal square root of z: the branch with non-negative
// real part, cut along the negative real axis.
func (z Complex64) Sqrt() Complex64 { return Complex64(m.SqrtC64(complex64(z))) }

// Exp returns e**z = e**re · (cos im + i·sin im).
func (z Complex64) Exp() Complex64 { return Complex64(m.ExpC64(complex64(z))) }

// Conj negates the imaginary component.
func (z Complex64) Conj() Complex64 {
	zz := complex64(z)
	return Complex64(complex(real(zz), -imag(zz)))
}

// Complex128 is the complex representation with 64-bit components.
//
// Its real partner is Float64 and its complex partner is itself.
type Complex128 complex128

// Kind reports KindComplex.
func (Complex128) Kind() Kind { return KindComplex }

// Bits reports the component bit width, 64.
func (Complex128) Bits() int { return 64 }

// Real returns the real component.
func (z Complex128) Real() Float64 { return Float64(real(complex128(z))) }

// Imag returns the imaginary component.
func (z Complex128) Imag() Float64 { return Float64(imag(complex128(z))) }

// FromReal lifts r into a complex value with an exactly zero imaginary
// component. The receiver only selects the representation.
func (Complex128) FromReal(r Float64) Complex128 {
	return Complex128(complex(float64(r), 0))
}

// AsComplex returns z; a complex representation is its own complex partner.
func (z Complex128) AsComplex() Complex128 { return z }

// AddReal adds r to the real component, leaving the imaginary component
// untouched.
func (z Complex128) AddReal(r Float64) Complex128 {
	zz := complex128(z)
	return Complex128(complex(real(zz)+float64(r), imag(zz)))
}

// SubReal subtracts r from the real component, leaving the imaginary
// component untouched.
func (z Complex128) SubReal(r Float64) Complex128 {
	zz := complex128(z)
	return Complex128(complex(real(zz)-float64(r), imag(zz)))
}

// MulReal scales both components by r individually.
func (z Complex128) MulReal(r Float64) Complex128 {
	zz := complex128(z)
	return Complex128(complex(real(zz)*float64(r), imag(zz)*float64(r)))
}

// DivReal divides both components by r individually. Division by zero
// follows IEEE-754 semantics per component.
func (z Complex128) DivReal(r Float64) Complex128 {
	zz := complex128(z)
	return Complex128(complex(real(zz)/float64(r), imag(zz)/float64(r)))
}

// AddComplex returns z + c.
func (z Complex128) AddComplex(c Complex128) Complex128 { return z + c }

// SubComplex returns z - c.
func (z Complex128) SubComplex(c Complex128) Complex128 { return z - c }

// MulComplex returns z * c, the full complex product.
func (z Complex128) MulComplex(c Complex128) Complex128 { return z * c }

// Squared returns re²+im², the squared norm. It is never negative.
func (z Complex128) Squared() Float64 {
	zz := complex128(z)
	return Float64(real(zz)*real(zz) + imag(zz)*imag(zz))
}

// Abs returns the Euclidean norm of z. cmplx.Abs is hypot-based, so the
// intermediate squares cannot overflow.
func (z Complex128) Abs() Float64 { return Float64(cmplx.Abs(complex128(z))) }

// Sqrt returns the principal square root of z: the branch with non-negative
// real part, cut along the negative real axis.
func (z Complex128) Sqrt() Complex128 { return Complex128(cmplx.Sqrt(complex128(z))) }

// Exp returns e**z = e**re · (cos im + i·sin im).
func (z Complex128) Exp() Complex128 { return Complex128(cmplx.Exp(complex128(z))) }

// Conj negates the imaginary component.
func (z Complex128) Conj() Complex128 {
	zz := complex128(z)
	return Complex128(complex(real(zz), -imag(zz)))
}
