package kernel

import (
	"math"

	"github.com/deepteams/imgcore/pixel"
)

// gaussianRange fixes how many standard deviations the Gaussian
// generators extend to either side of the center, the truncation
// constant implicit in spec.md §4.9's "2*max(1, ceil(sigma*range))+1"
// length formula.
const gaussianRange = 3.0

// Gaussian produces a dynamic-length kernel sampled from N(0, sigma^2)
// at integer offsets from the center, of length
// 2*max(1, ceil(sigma*gaussianRange))+1.
func Gaussian(sigma float64) Kernel[float64] {
	halfWidth := int(math.Ceil(sigma * gaussianRange))
	if halfWidth < 1 {
		halfWidth = 1
	}
	return gaussianOfHalfWidth(sigma, halfWidth)
}

// GaussianFixed produces a Gaussian kernel of the given odd length (an
// even length is rounded up to the next odd one), standing in for spec.md's compile-time-length gaussian_kernel<K>(sigma)
// overload.
func GaussianFixed(sigma float64, length int) Kernel[float64] {
	if length%2 == 0 {
		length++
	}
	return gaussianOfHalfWidth(sigma, (length-1)/2)
}

func gaussianOfHalfWidth(sigma float64, halfWidth int) Kernel[float64] {
	n := 2*halfWidth + 1
	vals := make([]float64, n)
	norm := 1.0 / (sigma * math.Sqrt(2*math.Pi))
	for i := range vals {
		x := float64(i - halfWidth)
		vals[i] = norm * math.Exp(-(x*x)/(2*sigma*sigma))
	}
	return Kernel[float64]{values: vals}
}

// Uniform produces a kernel of length n with every coefficient 1/n.
func Uniform(n int) Kernel[float64] {
	v := 1.0 / float64(n)
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = v
	}
	return Kernel[float64]{values: vals}
}

// Integer produces a kernel of Out values where element i is
// round(k[i] * scale). Callers pick scale = 2^shift to pair with a
// right-shifted-accumulator convolution.
func Integer[Out pixel.Numeric](k Kernel[float64], scale float64) Kernel[Out] {
	vals := make([]Out, k.Len())
	for i, v := range k.values {
		vals[i] = pixel.RoundFromFloat[Out](v * scale)
	}
	return Kernel[Out]{values: vals}
}
