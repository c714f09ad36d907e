package algo

import (
	"github.com/deepteams/imgcore"
	"github.com/deepteams/imgcore/border"
	"github.com/deepteams/imgcore/pixel"
)

// Resample produces a destination image of size (newW, newH) where
// each destination pixel (x, y) samples src at
// (x*srcWidth/newWidth, y*srcHeight/newHeight) using interp, with
// out-of-range neighbor reads resolved by border.Replicated — matching
// spec.md §9's resolution of the "bilinear at the last row/column"
// open question (the source defers to replicate).
func Resample[T pixel.Numeric, P pixel.Pixel[T]](src imgcore.ConstView[T, P], newW, newH pixel.Length, interp border.Interp) imgcore.Image[T, P] {
	dst := imgcore.NewImage[T, P](imgcore.TypedLayout{Width: newW, Height: newH})
	view := dst.View()
	srcW, srcH := float64(src.Width()), float64(src.Height())
	for y := pixel.Index(0); y < pixel.Index(newH); y++ {
		fy := float64(y) * srcH / float64(newH)
		for x := pixel.Index(0); x < pixel.Index(newW); x++ {
			fx := float64(x) * srcW / float64(newW)
			view.SetPixel(x, y, border.GetInterp[T, P](src, interp, border.Replicated, fx, fy))
		}
	}
	return dst
}

// ResampleBilinear is Resample with the spec's default interpolation.
func ResampleBilinear[T pixel.Numeric, P pixel.Pixel[T]](src imgcore.ConstView[T, P], newW, newH pixel.Length) imgcore.Image[T, P] {
	return Resample[T, P](src, newW, newH, border.Bilinear)
}
