package algo

import (
	"github.com/deepteams/imgcore"
	"github.com/deepteams/imgcore/pixel"
)

// Crop replaces img in place with a deep copy of its (x0, y0, w, h)
// sub-region, per spec.md §4.8.
func Crop[T pixel.Numeric, P pixel.Pixel[T]](img *imgcore.Image[T, P], x0, y0 pixel.Index, w, h pixel.Length) {
	sub := ConstViewRegion(img.ConstView(), x0, y0, w, h)
	cropped := Clone(sub)
	img.MoveFrom(&cropped)
}
