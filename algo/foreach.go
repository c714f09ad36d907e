// Package algo implements the spatial image algorithms (C12): in-place
// per-pixel transforms, pixel-type-changing transforms, deep copy,
// sub-region views, cropping, separable convolution, and resampling.
// Every algorithm operates on imgcore's View/ConstView types and does
// not care whether the bytes underneath are owned or borrowed.
package algo

import (
	"github.com/deepteams/imgcore"
	"github.com/deepteams/imgcore/pixel"
)

// ForEachPixel invokes f on every pixel of v, in row-major then
// row-ascending order, and writes the result back in place.
func ForEachPixel[T pixel.Numeric, P pixel.Pixel[T]](v imgcore.View[T, P], f func(p P) P) {
	for y := pixel.Index(0); y < pixel.Index(v.Height()); y++ {
		for x := pixel.Index(0); x < pixel.Index(v.Width()); x++ {
			v.SetPixel(x, y, f(v.Pixel(x, y)))
		}
	}
}

// ForEachPixelIndexed is ForEachPixel with the pixel's coordinates
// passed to f, for algorithms that need position (e.g. a vignette or a
// coordinate-dependent fill).
func ForEachPixelIndexed[T pixel.Numeric, P pixel.Pixel[T]](v imgcore.View[T, P], f func(x, y pixel.Index, p P) P) {
	for y := pixel.Index(0); y < pixel.Index(v.Height()); y++ {
		for x := pixel.Index(0); x < pixel.Index(v.Width()); x++ {
			v.SetPixel(x, y, f(x, y, v.Pixel(x, y)))
		}
	}
}

// VisitPixels invokes f on every pixel of a read-only view, without
// writing anything back.
func VisitPixels[T pixel.Numeric, P pixel.Pixel[T]](v imgcore.ConstView[T, P], f func(x, y pixel.Index, p P)) {
	for y := pixel.Index(0); y < pixel.Index(v.Height()); y++ {
		for x := pixel.Index(0); x < pixel.Index(v.Width()); x++ {
			f(x, y, v.Pixel(x, y))
		}
	}
}
