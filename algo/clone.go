package algo

import (
	"github.com/deepteams/imgcore"
	"github.com/deepteams/imgcore/pixel"
)

// Clone deep-copies the whole of src into a freshly allocated image.
func Clone[T pixel.Numeric, P pixel.Pixel[T]](src imgcore.ConstView[T, P]) imgcore.Image[T, P] {
	return imgcore.NewImageFromView[T, P](src, imgcore.DefaultAllocator{})
}

// CloneRegion deep-copies the sub-region (x0, y0, w, h) of src into a
// freshly allocated image.
func CloneRegion[T pixel.Numeric, P pixel.Pixel[T]](src imgcore.ConstView[T, P], x0, y0 pixel.Index, w, h pixel.Length) imgcore.Image[T, P] {
	return Clone(ConstViewRegion(src, x0, y0, w, h))
}

// View returns a mutable view onto the whole of an owning image, the
// view-of-an-image entry point spec.md §4.8 names (image -> view with
// no sub-region).
func View[T pixel.Numeric, P pixel.Pixel[T]](src imgcore.Image[T, P]) imgcore.View[T, P] {
	return src.View()
}

// ViewRegion returns a mutable, non-owning sub-view of v covering the
// rectangle (x0, y0, w, h). The returned view shares v's buffer and
// stride; writes through it mutate v.
func ViewRegion[T pixel.Numeric, P pixel.Pixel[T]](v imgcore.View[T, P], x0, y0 pixel.Index, w, h pixel.Length) imgcore.View[T, P] {
	sub := v.BytePtrPixel(x0, y0)
	return imgcore.NewView[T, P](sub, imgcore.TypedLayout{Width: w, Height: h, StrideBytes: v.StrideBytes()})
}

// ConstViewRegion is ViewRegion for a read-only source.
func ConstViewRegion[T pixel.Numeric, P pixel.Pixel[T]](v imgcore.ConstView[T, P], x0, y0 pixel.Index, w, h pixel.Length) imgcore.ConstView[T, P] {
	sub := v.BytePtrPixel(x0, y0)
	return imgcore.NewConstView[T, P](sub, imgcore.TypedLayout{Width: w, Height: h, StrideBytes: v.StrideBytes()})
}
