package scalartypes

import "golang.org/x/exp/constraints"

// Float is a type constraint for the real floating-point representations.
// It admits the carrier types Float32 and Float64 as well as the predeclared
// float32 and float64.
type Float interface {
	constraints.Float
}

// Complex is a type constraint for the complex representations.
// It admits the carrier types Complex64 and Complex128 as well as the
// predeclared complex64 and complex128.
type Complex interface {
	constraints.Complex
}
