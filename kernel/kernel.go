// Package kernel implements 1-D convolution kernels: construction,
// normalization, and the generators (Gaussian, uniform, integer-scaled)
// used by the separable convolution algorithms in algo.
package kernel

import (
	"math"

	"github.com/deepteams/imgcore/pixel"
)

// Kernel is a 1-D sequence of trivially-copyable coefficients. Go's
// slice already behaves like the dynamic-length case from spec.md §4.9;
// rather than carrying a second array-backed type for the
// compile-time-length case (Go has no stable const-generic array
// length), every Kernel here is dynamic, and the "fixed-length"
// generator GaussianFixed rounds an even length argument up to odd.
type Kernel[T pixel.Numeric] struct {
	values []T
}

// New builds a Kernel from its coefficients.
func New[T pixel.Numeric](values ...T) Kernel[T] {
	return Kernel[T]{values: append([]T(nil), values...)}
}

// Len returns the kernel length.
func (k Kernel[T]) Len() int { return len(k.values) }

// At returns the i'th coefficient.
func (k Kernel[T]) At(i int) T { return k.values[i] }

// Values returns the kernel's coefficients. Callers must not mutate
// the returned slice.
func (k Kernel[T]) Values() []T { return k.values }

// HalfWidth returns (Len()-1)/2, the centered kernel's radius.
func (k Kernel[T]) HalfWidth() int { return (k.Len() - 1) / 2 }

// Normalized divides every coefficient by the sum of absolute values.
func (k Kernel[T]) Normalized() Kernel[T] {
	sum := 0.0
	for _, v := range k.values {
		sum += math.Abs(pixel.ToFloat(v))
	}
	return k.NormalizedBy(sum)
}

// NormalizedBy divides every coefficient by divisor.
func (k Kernel[T]) NormalizedBy(divisor float64) Kernel[T] {
	out := make([]T, len(k.values))
	for i, v := range k.values {
		out[i] = pixel.RoundFromFloat[T](pixel.ToFloat(v) / divisor)
	}
	return Kernel[T]{values: out}
}
