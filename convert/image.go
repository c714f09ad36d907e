// Package convert implements image-level pixel-format conversion (C10):
// applying one of pixel's conversion-matrix functions (C9) across every
// pixel of a source image, either producing a freshly allocated
// destination image or writing into a caller-supplied destination view.
package convert

import (
	"github.com/deepteams/imgcore"
	"github.com/deepteams/imgcore/algo"
	"github.com/deepteams/imgcore/pixel"
)

// Image applies f across every pixel of src, returning a freshly
// allocated destination image of src's shape. This is the general form
// behind every named conversion below: RGBToY(src) is Image(src,
// pixel.RGBToY[uint8]) for an RGB[uint8] source, for example.
func Image[T pixel.Numeric, P pixel.Pixel[T], T2 pixel.Numeric, P2 pixel.Pixel[T2]](
	src imgcore.ConstView[T, P], f func(P) P2,
) imgcore.Image[T2, P2] {
	return algo.TransformPixels[T, P, T2, P2](src, f)
}

// ImageInto is Image, writing into dst instead of allocating. dst must
// already match src's shape or ErrShapeMismatch is returned.
func ImageInto[T pixel.Numeric, P pixel.Pixel[T], T2 pixel.Numeric, P2 pixel.Pixel[T2]](
	dst imgcore.View[T2, P2], src imgcore.ConstView[T, P], f func(P) P2,
) error {
	return algo.TransformPixelsInto[T, P, T2, P2](dst, src, f)
}

// ---------------------------------------------------------------------
// Named conversions that need an explicit alpha value (the "needs α"
// cells of spec.md §4.10's matrix), expressed as image-level wrappers
// over the per-pixel conversions in the pixel package.

// ToYAFromRGB converts every RGB pixel of src to Y+alpha, injecting a
// constant alpha.
func ToYAFromRGB[T pixel.Numeric](src imgcore.ConstView[T, pixel.RGB[T]], alpha T) imgcore.Image[T, pixel.YA[T]] {
	return Image[T, pixel.RGB[T], T, pixel.YA[T]](src, func(p pixel.RGB[T]) pixel.YA[T] { return pixel.RGBToYA(p, alpha) })
}

// ToRGBAFromRGB converts RGB to RGBA, injecting a constant alpha.
func ToRGBAFromRGB[T pixel.Numeric](src imgcore.ConstView[T, pixel.RGB[T]], alpha T) imgcore.Image[T, pixel.RGBA[T]] {
	return Image[T, pixel.RGB[T], T, pixel.RGBA[T]](src, func(p pixel.RGB[T]) pixel.RGBA[T] { return pixel.RGBToRGBA(p, alpha) })
}

// ToRGBAFromY converts Y to RGBA, injecting a constant alpha.
func ToRGBAFromY[T pixel.Numeric](src imgcore.ConstView[T, pixel.Y[T]], alpha T) imgcore.Image[T, pixel.RGBA[T]] {
	return Image[T, pixel.Y[T], T, pixel.RGBA[T]](src, func(p pixel.Y[T]) pixel.RGBA[T] { return pixel.YToRGBA(p, alpha) })
}

// ---------------------------------------------------------------------
// Named conversions drawn directly from the pixel conversion matrix,
// one per source/target pair. All take only src except RGBToRGBA, which
// also takes the alpha value to inject.

func RGBToY[T pixel.Numeric](src imgcore.ConstView[T, pixel.RGB[T]]) imgcore.Image[T, pixel.Y[T]] {
	return Image[T, pixel.RGB[T], T, pixel.Y[T]](src, pixel.RGBToY[T])
}

func BGRToY[T pixel.Numeric](src imgcore.ConstView[T, pixel.BGR[T]]) imgcore.Image[T, pixel.Y[T]] {
	return Image[T, pixel.BGR[T], T, pixel.Y[T]](src, pixel.BGRToY[T])
}

func RGBAToY[T pixel.Numeric](src imgcore.ConstView[T, pixel.RGBA[T]]) imgcore.Image[T, pixel.Y[T]] {
	return Image[T, pixel.RGBA[T], T, pixel.Y[T]](src, pixel.RGBAToY[T])
}

func RGBToRGBA[T pixel.Numeric](src imgcore.ConstView[T, pixel.RGB[T]], alpha T) imgcore.Image[T, pixel.RGBA[T]] {
	return ToRGBAFromRGB(src, alpha)
}

func RGBToBGR[T pixel.Numeric](src imgcore.ConstView[T, pixel.RGB[T]]) imgcore.Image[T, pixel.BGR[T]] {
	return Image[T, pixel.RGB[T], T, pixel.BGR[T]](src, pixel.RGBToBGR[T])
}

func BGRToRGB[T pixel.Numeric](src imgcore.ConstView[T, pixel.BGR[T]]) imgcore.Image[T, pixel.RGB[T]] {
	return Image[T, pixel.BGR[T], T, pixel.RGB[T]](src, pixel.BGRToRGB[T])
}

func RGBAToRGB[T pixel.Numeric](src imgcore.ConstView[T, pixel.RGBA[T]]) imgcore.Image[T, pixel.RGB[T]] {
	return Image[T, pixel.RGBA[T], T, pixel.RGB[T]](src, pixel.RGBAToRGB[T])
}

func RGBAToBGRA[T pixel.Numeric](src imgcore.ConstView[T, pixel.RGBA[T]]) imgcore.Image[T, pixel.BGRA[T]] {
	return Image[T, pixel.RGBA[T], T, pixel.BGRA[T]](src, pixel.RGBAToBGRA[T])
}

func BGRAToRGBA[T pixel.Numeric](src imgcore.ConstView[T, pixel.BGRA[T]]) imgcore.Image[T, pixel.RGBA[T]] {
	return Image[T, pixel.BGRA[T], T, pixel.RGBA[T]](src, pixel.BGRAToRGBA[T])
}

func YToRGB[T pixel.Numeric](src imgcore.ConstView[T, pixel.Y[T]]) imgcore.Image[T, pixel.RGB[T]] {
	return Image[T, pixel.Y[T], T, pixel.RGB[T]](src, pixel.YToRGB[T])
}

func YAToY[T pixel.Numeric](src imgcore.ConstView[T, pixel.YA[T]]) imgcore.Image[T, pixel.Y[T]] {
	return Image[T, pixel.YA[T], T, pixel.Y[T]](src, pixel.YAToY[T])
}
