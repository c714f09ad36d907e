// Package border implements out-of-bounds read policies and fractional
// coordinate interpolation over any view-shaped accessor.
package border

import "github.com/deepteams/imgcore/pixel"

// Accessor is the minimal read surface border policies need: a width,
// a height, and indexed pixel access. imgcore.View and imgcore.ConstView
// both satisfy this structurally, with no dependency from imgcore back
// onto this package.
type Accessor[T pixel.Numeric, P pixel.Pixel[T]] interface {
	Width() pixel.Length
	Height() pixel.Length
	Pixel(x, y pixel.Index) P
}

// Policy selects how out-of-range coordinates are handled.
type Policy int

const (
	// Unchecked performs no bounds check; out-of-range access is
	// undefined (here: whatever the accessor's Pixel does with an
	// out-of-range index).
	Unchecked Policy = iota
	// ZeroPadding returns the zero pixel for any out-of-range
	// coordinate.
	ZeroPadding
	// Replicated clamps each coordinate to the nearest in-range value.
	Replicated
)

// Get reads a[x, y] under policy.
func Get[T pixel.Numeric, P pixel.Pixel[T]](a Accessor[T, P], policy Policy, x, y pixel.Index) P {
	switch policy {
	case ZeroPadding:
		if !x.InBounds(a.Width()) || !y.InBounds(a.Height()) {
			var zero P
			return zero
		}
		return a.Pixel(x, y)
	case Replicated:
		return a.Pixel(x.Clamp(a.Width()), y.Clamp(a.Height()))
	default:
		return a.Pixel(x, y)
	}
}

// RelativeAccessor wraps a base accessor with a coordinate offset and a
// border policy, so that Get(r, Unchecked, x, y) == Get(base, policy,
// x+ox, y+oy). It composes with both Policy and Interp since it is
// itself an Accessor.
type RelativeAccessor[T pixel.Numeric, P pixel.Pixel[T]] struct {
	Base   Accessor[T, P]
	Policy Policy
	OX, OY pixel.Index
}

func (r RelativeAccessor[T, P]) Width() pixel.Length  { return r.Base.Width() }
func (r RelativeAccessor[T, P]) Height() pixel.Length { return r.Base.Height() }

func (r RelativeAccessor[T, P]) Pixel(x, y pixel.Index) P {
	return Get(r.Base, r.Policy, x.Add(r.OX), y.Add(r.OY))
}
