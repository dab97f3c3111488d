package algoscalar

import "math/rand/v2"

// Randn draws a standard-normal value (mean 0, variance 1) of the
// representation X from src. A real representation consumes exactly one
// sample; a complex representation consumes two independent samples, the
// real component first.
//
// The caller owns src, including its construction and seeding. Randn
// requires exclusive access to src for the duration of the call and does no
// locking itself: concurrent callers need either one generator per
// goroutine or external serialization.
//
// Example:
//
//	src := rand.NewPCG(1, 2)
//	z := algoscalar.Randn[algoscalar.Complex128, algoscalar.Float64, algoscalar.Complex128](src)
func Randn[X Scalar[X, R, C], R, C any](src rand.Source) X {
	var zero X

	return zero.Randn(src)
}
