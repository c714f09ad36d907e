package border

import (
	"math"

	"github.com/deepteams/imgcore/pixel"
)

// Interp selects fractional-coordinate sampling.
type Interp int

const (
	// NearestNeighbor floors both coordinates, then defers to the
	// border policy.
	NearestNeighbor Interp = iota
	// Bilinear blends the four surrounding integer-coordinate pixels,
	// each read through the border policy.
	Bilinear
)

// GetInterp samples a at the fractional coordinate (fx, fy) using
// interp, falling back to policy for any out-of-range integer
// coordinate the interpolation needs to read.
func GetInterp[T pixel.Numeric, P pixel.Pixel[T]](a Accessor[T, P], interp Interp, policy Policy, fx, fy float64) P {
	if interp == Bilinear {
		return bilinear(a, policy, fx, fy)
	}
	x := pixel.Index(int32(math.Floor(fx)))
	y := pixel.Index(int32(math.Floor(fy)))
	return Get(a, policy, x, y)
}

func bilinear[T pixel.Numeric, P pixel.Pixel[T]](a Accessor[T, P], policy Policy, fx, fy float64) P {
	x0f := math.Floor(fx)
	y0f := math.Floor(fy)
	x0 := pixel.Index(int32(x0f))
	y0 := pixel.Index(int32(y0f))
	dx := fx - x0f
	dy := fy - y0f

	p00 := Get(a, policy, x0, y0)
	p10 := Get(a, policy, x0.Add(1), y0)
	p01 := Get(a, policy, x0, y0.Add(1))
	p11 := Get(a, policy, x0.Add(1), y0.Add(1))

	n := p00.Channels()
	vals := make([]T, n)
	for i := 0; i < n; i++ {
		v00 := pixel.ToFloat(p00.At(i))
		v10 := pixel.ToFloat(p10.At(i))
		v01 := pixel.ToFloat(p01.At(i))
		v11 := pixel.ToFloat(p11.At(i))
		top := (1-dx)*v00 + dx*v10
		bottom := (1-dx)*v01 + dx*v11
		vals[i] = pixel.RoundFromFloat[T]((1-dy)*top + dy*bottom)
	}
	return pixel.FromChannels[T, P](vals)
}
