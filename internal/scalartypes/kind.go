package scalartypes

// Kind classifies a representation as real or complex.
//
// Kind is metadata for tests and tooling. No operation in this module
// branches on it; dispatch between representations is resolved entirely by
// the type system.
type Kind uint8

const (
	KindReal Kind = iota
	KindComplex
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindReal:
		return "real"
	case KindComplex:
		return "complex"
	default:
		return "unknown"
	}
}
