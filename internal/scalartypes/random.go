package scalartypes

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// stdNormal returns the standard-normal distribution (mean 0, variance 1)
// over src. The caller owns src and its seeding.
func stdNormal(src rand.Source) distuv.Normal {
	return distuv.Normal{Mu: 0, Sigma: 1, Src: src}
}

// Randn draws one standard-normal sample from src. The receiver only
// selects the representation; the call requires exclusive access to src for
// its duration.
func (Float64) Randn(src rand.Source) Float64 {
	return Float64(stdNormal(src).Rand())
}

// Randn draws one standard-normal sample from src, narrowed to float32.
func (Float32) Randn(src rand.Source) Float32 {
	return Float32(stdNormal(src).Rand())
}

// Randn draws two independent standard-normal samples from src: the real
// component first, then the imaginary component.
func (Complex128) Randn(src rand.Source) Complex128 {
	dist := stdNormal(src)
	re := dist.Rand()
	im := dist.Rand()

	return Complex128(complex(re, im))
}

// Randn draws two independent standard-normal samples from src, each
// narrowed to float32: the real component first, then the imaginary
// component.
func (Complex64) Randn(src rand.Source) Complex64 {
	dist := stdNormal(src)
	re := float32(dist.Rand())
	im := float32(dist.Rand())

	return Complex64(complex(re, im))
}
