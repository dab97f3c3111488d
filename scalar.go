package algoscalar

import "math/rand/v2"

// Scalar is the capability every representation implements. Algorithms
// depend on this one constraint and work unchanged for real and complex
// values in either precision.
//
// The three type parameters name the representation and its partners:
//
//   - X is the representation itself
//   - R is its real partner, always a real representation of the same
//     component width
//   - C is its complex partner, always a complex representation of the same
//     component width
//
// The association is carried entirely by the method signatures
// (Complex128.Squared returns Float64, and so on), so it is resolved at
// compile time and a cross-width pairing cannot be expressed. Only the four
// triples pinned at the bottom of this file exist. There is deliberately no
// complex-to-real injection anywhere in the contract: a real representation
// cannot carry a nonzero imaginary part, so the operation is absent rather
// than checked.
//
// Go does not infer R or C from X, so generic call sites spell out the
// triple:
//
//	func Norm2[X algoscalar.Scalar[X, R, C], R algoscalar.RealScalar[R, C], C any](xs []X) R {
//	    var acc R
//	    for _, x := range xs {
//	        acc = acc + x.Squared()
//	    }
//	    return acc.Sqrt()
//	}
//
//	n := Norm2[algoscalar.Complex128, algoscalar.Float64, algoscalar.Complex128](xs)
//
// All operations are pure functions of their operands. Values are immutable;
// concurrent reads are safe without locking. The only stateful collaborator
// is the rand.Source passed to Randn, which is owned by the caller.
type Scalar[X, R, C any] interface {
	Float | Complex

	// Kind reports whether the representation is real or complex, and Bits
	// its component width. Both are metadata for tests and tooling; no
	// operation here dispatches on them.
	Kind() Kind
	Bits() int

	// FromReal lifts a real value into X. If X is complex, the imaginary
	// component is exactly zero. The receiver only selects the
	// representation.
	FromReal(r R) X

	// AsComplex promotes the value to its complex partner; the identity if
	// X is already complex.
	AsComplex() C

	// AddReal, SubReal, MulReal and DivReal combine the value with its real
	// partner, broadcasting the real operand: addition and subtraction
	// touch only the real component, while scaling and division apply to
	// both components individually. Division by a real zero follows
	// IEEE-754 semantics per component.
	AddReal(r R) X
	SubReal(r R) X
	MulReal(r R) X
	DivReal(r R) X

	// AddComplex, SubComplex and MulComplex promote the value to its
	// complex partner and combine it with c.
	AddComplex(c C) C
	SubComplex(c C) C
	MulComplex(c C) C

	// Squared returns the squared magnitude (x*x for a real value,
	// re²+im² for a complex one) and is never negative. Abs returns the
	// magnitude itself; for complex values it is a hypot-style norm that
	// cannot overflow in the intermediate squaring.
	Squared() R
	Abs() R

	// Sqrt returns the square root: nonnegative for reals (NaN for
	// negative input), the principal branch for complex values. Exp is the
	// exponential. Conj is the complex conjugate, the identity on reals.
	Sqrt() X
	Exp() X
	Conj() X

	// Randn draws a standard-normal value: one sample for a real
	// representation, two independent samples for a complex one (real
	// component first). See Randn for the generator contract.
	Randn(src rand.Source) X
}

// RealScalar is the refinement of Scalar for the real representations,
// which are their own real partner. It is the natural bound for the R
// parameter of generic algorithms that accumulate magnitudes.
type RealScalar[R, C any] interface {
	Scalar[R, R, C]
	Float
}

// ComplexScalar is the refinement of Scalar for the complex
// representations, which are their own complex partner. It additionally
// exposes the component accessors.
type ComplexScalar[C, R any] interface {
	Scalar[C, R, C]
	Complex

	// Real and Imag return the components, both of the real partner
	// representation.
	Real() R
	Imag() R
}

// pinScalar forces a compile-time check that X, R and C form a valid
// representation triple: X implements the full capability and R and C are
// its partners of matching component width.
func pinScalar[X Scalar[X, R, C], R RealScalar[R, C], C ComplexScalar[C, R]]() {}

// The four representations. Changing any partner type in the carrier method
// signatures, including a 32↔64 cross-width pairing, fails to compile here.
var (
	_ = pinScalar[Float32, Float32, Complex64]
	_ = pinScalar[Float64, Float64, Complex128]
	_ = pinScalar[Complex64, Float32, Complex64]
	_ = pinScalar[Complex128, Float64, Complex128]
)
