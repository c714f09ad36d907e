package algo

import (
	"github.com/deepteams/imgcore"
	"github.com/deepteams/imgcore/border"
	"github.com/deepteams/imgcore/kernel"
	"github.com/deepteams/imgcore/pixel"
)

// ConvolutionX applies a floating-point 1-D kernel along the x axis,
// centered (half-width = (K-1)/2; k must be odd-length). Accumulation
// happens in float64 and is rounded back to T per pixel channel
// (half away from zero for integer T, see pixel.RoundFromFloat).
func ConvolutionX[T pixel.Numeric, P pixel.Pixel[T]](src imgcore.ConstView[T, P], k kernel.Kernel[float64], policy border.Policy) imgcore.Image[T, P] {
	return convolve1D[T, P](src, k, policy, true)
}

// ConvolutionY is ConvolutionX along the y axis.
func ConvolutionY[T pixel.Numeric, P pixel.Pixel[T]](src imgcore.ConstView[T, P], k kernel.Kernel[float64], policy border.Policy) imgcore.Image[T, P] {
	return convolve1D[T, P](src, k, policy, false)
}

func convolve1D[T pixel.Numeric, P pixel.Pixel[T]](src imgcore.ConstView[T, P], k kernel.Kernel[float64], policy border.Policy, horizontal bool) imgcore.Image[T, P] {
	half := k.HalfWidth()
	dst := imgcore.NewImage[T, P](imgcore.TypedLayout{Width: src.Width(), Height: src.Height()})
	view := dst.View()
	var zero P
	n := zero.Channels()
	vals := make([]T, n)
	for y := pixel.Index(0); y < pixel.Index(src.Height()); y++ {
		for x := pixel.Index(0); x < pixel.Index(src.Width()); x++ {
			acc := make([]float64, n)
			for i := 0; i < k.Len(); i++ {
				offset := pixel.Index(i - half)
				var px, py pixel.Index
				if horizontal {
					px, py = x.Add(offset), y
				} else {
					px, py = x, y.Add(offset)
				}
				p := border.Get[T, P](src, policy, px, py)
				w := k.At(i)
				for c := 0; c < n; c++ {
					acc[c] += w * pixel.ToFloat(p.At(c))
				}
			}
			for c := 0; c < n; c++ {
				vals[c] = pixel.RoundFromFloat[T](acc[c])
			}
			view.SetPixel(x, y, pixel.FromChannels[T, P](vals))
		}
	}
	return dst
}

// ConvolutionXInt applies an integer-scaled kernel along the x axis.
// Accumulation happens in int64, and the accumulator is arithmetically
// shifted right by shift bits (which rounds toward negative infinity)
// before the per-channel cast back to T. The int64 sum cannot overflow
// while |sample| * |coefficient| * kernel length stays below 2^63, for
// example 16-bit samples with int32 coefficients and up to 2^15 taps;
// neither the kernel length nor the value ranges are checked.
func ConvolutionXInt[T pixel.Numeric, P pixel.Pixel[T], K pixel.Integer](src imgcore.ConstView[T, P], k kernel.Kernel[K], shift uint, policy border.Policy) imgcore.Image[T, P] {
	return convolve1DInt[T, P, K](src, k, shift, policy, true)
}

// ConvolutionYInt is ConvolutionXInt along the y axis.
func ConvolutionYInt[T pixel.Numeric, P pixel.Pixel[T], K pixel.Integer](src imgcore.ConstView[T, P], k kernel.Kernel[K], shift uint, policy border.Policy) imgcore.Image[T, P] {
	return convolve1DInt[T, P, K](src, k, shift, policy, false)
}

func convolve1DInt[T pixel.Numeric, P pixel.Pixel[T], K pixel.Integer](src imgcore.ConstView[T, P], k kernel.Kernel[K], shift uint, policy border.Policy, horizontal bool) imgcore.Image[T, P] {
	half := k.HalfWidth()
	dst := imgcore.NewImage[T, P](imgcore.TypedLayout{Width: src.Width(), Height: src.Height()})
	view := dst.View()
	var zero P
	n := zero.Channels()
	vals := make([]T, n)
	for y := pixel.Index(0); y < pixel.Index(src.Height()); y++ {
		for x := pixel.Index(0); x < pixel.Index(src.Width()); x++ {
			acc := make([]int64, n)
			for i := 0; i < k.Len(); i++ {
				offset := pixel.Index(i - half)
				var px, py pixel.Index
				if horizontal {
					px, py = x.Add(offset), y
				} else {
					px, py = x, y.Add(offset)
				}
				p := border.Get[T, P](src, policy, px, py)
				w := int64(k.At(i))
				for c := 0; c < n; c++ {
					acc[c] += w * int64(intChannel(p.At(c)))
				}
			}
			for c := 0; c < n; c++ {
				vals[c] = T(acc[c] >> shift)
			}
			view.SetPixel(x, y, pixel.FromChannels[T, P](vals))
		}
	}
	return dst
}

// intChannel widens a T channel sample to int64 via the float round
// trip already exposed by pixel.ToFloat, since pixel.Numeric has no
// direct integer-widening export. Values in the supported integer
// element types (uint8..int32) are always exactly representable as
// float64, so this is lossless.
func intChannel[T pixel.Numeric](v T) int64 {
	return int64(pixel.ToFloat(v))
}
