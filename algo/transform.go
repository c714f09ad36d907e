package algo

import (
	"github.com/deepteams/imgcore"
	"github.com/deepteams/imgcore/pixel"
)

// TransformPixels allocates a destination image of src's shape and
// fills each destination pixel with f(src pixel). Dst's element type
// and pixel shape may differ entirely from src's.
func TransformPixels[T pixel.Numeric, P pixel.Pixel[T], T2 pixel.Numeric, P2 pixel.Pixel[T2]](
	src imgcore.ConstView[T, P], f func(P) P2,
) imgcore.Image[T2, P2] {
	dst := imgcore.NewImage[T2, P2](imgcore.TypedLayout{Width: src.Width(), Height: src.Height()})
	view := dst.View()
	for y := pixel.Index(0); y < pixel.Index(src.Height()); y++ {
		for x := pixel.Index(0); x < pixel.Index(src.Width()); x++ {
			view.SetPixel(x, y, f(src.Pixel(x, y)))
		}
	}
	return dst
}

// TransformPixelsInto is TransformPixels writing into a caller-supplied
// destination view instead of allocating. dst must already match src's
// shape, or ErrShapeMismatch is returned.
func TransformPixelsInto[T pixel.Numeric, P pixel.Pixel[T], T2 pixel.Numeric, P2 pixel.Pixel[T2]](
	dst imgcore.View[T2, P2], src imgcore.ConstView[T, P], f func(P) P2,
) error {
	if dst.Width() != src.Width() || dst.Height() != src.Height() {
		return imgcore.ErrShapeMismatch
	}
	for y := pixel.Index(0); y < pixel.Index(src.Height()); y++ {
		for x := pixel.Index(0); x < pixel.Index(src.Width()); x++ {
			dst.SetPixel(x, y, f(src.Pixel(x, y)))
		}
	}
	return nil
}
