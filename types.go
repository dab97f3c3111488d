package algoscalar

import "github.com/cwbudde/algo-scalar/internal/scalartypes"

// Float32 is the 32-bit real representation.
// The canonical definition is in internal/scalartypes.
type Float32 = scalartypes.Float32

// Float64 is the 64-bit real representation.
// The canonical definition is in internal/scalartypes.
type Float64 = scalartypes.Float64

// Complex64 is the complex representation with 32-bit components.
// The canonical definition is in internal/scalartypes.
type Complex64 = scalartypes.Complex64

// Complex128 is the complex representation with 64-bit components.
// The canonical definition is in internal/scalartypes.
type Complex128 = scalartypes.Complex128

// Kind classifies a representation as real or complex.
// The canonical definition is in internal/scalartypes.
type Kind = scalartypes.Kind

const (
	// KindReal marks the real representations Float32 and Float64.
	KindReal = scalartypes.KindReal

	// KindComplex marks the complex representations Complex64 and Complex128.
	KindComplex = scalartypes.KindComplex
)

// Float is a type constraint for the real floating-point representations.
// The canonical definition is in internal/scalartypes.
type Float = scalartypes.Float

// Complex is a type constraint for the complex representations.
// The canonical definition is in internal/scalartypes.
type Complex = scalartypes.Complex
