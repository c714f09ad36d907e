package imgcore

import "github.com/deepteams/imgcore/pixel"

// Image is an owning, typed image: it holds its row buffer through an
// Allocator and exposes views onto it. Two distinct types — Image
// (owning) and View/ConstView (non-owning) — replace the ownership
// boolean the original design used; algorithms operate on views and
// never need to ask whether the bytes underneath are owned.
type Image[T pixel.Numeric, P pixel.Pixel[T]] struct {
	alloc Allocator
	buf   []byte
	layout TypedLayout
	// external is set only by NewImageFromRawParts: it marks a buffer
	// this Image did not allocate itself, so Reallocate must refuse to
	// replace it unless explicitly permitted.
	external bool
}

// NewImage allocates a zero-valued image of the given layout using
// DefaultAllocator.
func NewImage[T pixel.Numeric, P pixel.Pixel[T]](layout TypedLayout) Image[T, P] {
	return NewImageWithAllocator[T, P](layout, DefaultAllocator{})
}

// NewImageWithAllocator is NewImage with an explicit Allocator.
func NewImageWithAllocator[T pixel.Numeric, P pixel.Pixel[T]](layout TypedLayout, alloc Allocator) Image[T, P] {
	pixelSize := pixelByteSize[T, P]()
	resolved := layout.Resolve(pixelSize)
	buf := alloc.Allocate(resolved.TotalBytes(pixelSize))
	return Image[T, P]{alloc: alloc, buf: buf, layout: resolved}
}

// NewImageAligned allocates with stride rounded up to a multiple of
// rowAlignment and every row's first byte aligned to rowAlignment.
func NewImageAligned[T pixel.Numeric, P pixel.Pixel[T]](layout TypedLayout, rowAlignment pixel.Bytes, alloc Allocator) Image[T, P] {
	pixelSize := pixelByteSize[T, P]()
	rowBytes := pixel.Stride(layout.RowBytes(pixelSize))
	stride := layout.StrideBytes
	if rowBytes > stride {
		stride = rowBytes
	}
	if rowAlignment > 1 {
		if rem := int64(stride) % int64(rowAlignment); rem != 0 {
			stride += pixel.Stride(int64(rowAlignment) - rem)
		}
	}
	resolved := TypedLayout{Width: layout.Width, Height: layout.Height, StrideBytes: stride}
	buf := alloc.AllocateAligned(resolved.TotalBytes(pixelSize), rowAlignment)
	return Image[T, P]{alloc: alloc, buf: buf, layout: resolved}
}

// NewImageFromRawParts takes ownership of buf, a block known to have
// been produced by alloc. Reallocate on the result refuses to replace
// buf unless called with WithAllowViewReallocation(true).
func NewImageFromRawParts[T pixel.Numeric, P pixel.Pixel[T]](buf []byte, layout TypedLayout, alloc Allocator) Image[T, P] {
	pixelSize := pixelByteSize[T, P]()
	return Image[T, P]{alloc: alloc, buf: buf, layout: layout.Resolve(pixelSize), external: true}
}

// NewImageFromView deep-copies the region covered by v into a freshly
// allocated image.
func NewImageFromView[T pixel.Numeric, P pixel.Pixel[T]](v ConstView[T, P], alloc Allocator) Image[T, P] {
	out := NewImageWithAllocator[T, P](TypedLayout{Width: v.Width(), Height: v.Height()}, alloc)
	copyRows(out.View(), v)
	return out
}

func (im Image[T, P]) Width() pixel.Length        { return im.layout.Width }
func (im Image[T, P]) Height() pixel.Length       { return im.layout.Height }
func (im Image[T, P]) StrideBytes() pixel.Stride  { return im.layout.StrideBytes }
func (im Image[T, P]) RowBytes() pixel.Bytes      { return im.layout.RowBytes(pixelByteSize[T, P]()) }
func (im Image[T, P]) TotalBytes() pixel.Bytes    { return im.layout.TotalBytes(pixelByteSize[T, P]()) }
func (im Image[T, P]) IsPacked() bool             { return im.layout.IsPacked(pixelByteSize[T, P]()) }
func (im Image[T, P]) Layout() TypedLayout        { return im.layout }
func (im Image[T, P]) IsEmpty() bool              { return im.buf == nil || im.layout.Width == 0 || im.layout.Height == 0 }
func (im Image[T, P]) IsValid() bool              { return true }

// View returns a mutable View onto im's buffer.
func (im Image[T, P]) View() View[T, P] {
	return View[T, P]{data: NewDataPtr(im.buf), layout: im.layout}
}

// ConstView returns a read-only View onto im's buffer.
func (im Image[T, P]) ConstView() ConstView[T, P] { return im.View().AsConst() }

// Pixel and SetPixel delegate to the image's own view.
func (im Image[T, P]) Pixel(x, y pixel.Index) P          { return im.View().Pixel(x, y) }
func (im Image[T, P]) SetPixel(x, y pixel.Index, p P)    { im.View().SetPixel(x, y, p) }

// Copy deep-copies im into a freshly allocated image using the same
// allocator.
func (im Image[T, P]) Copy() Image[T, P] {
	out := NewImageWithAllocator[T, P](TypedLayout{Width: im.layout.Width, Height: im.layout.Height}, im.alloc)
	copyRows(out.View(), im.ConstView())
	return out
}

// MoveFrom transfers src's buffer, allocator, and layout into im,
// leaving src empty and valid. It is the Go stand-in for C++ move
// construction/assignment.
func (im *Image[T, P]) MoveFrom(src *Image[T, P]) {
	im.alloc = src.alloc
	im.buf = src.buf
	im.layout = src.layout
	im.external = src.external
	*src = Image[T, P]{}
}

type reallocConfig struct {
	shrinkToFit      bool
	force            bool
	allowViewRealloc bool
}

// ReallocOption configures a Reallocate call.
type ReallocOption func(*reallocConfig)

// WithShrinkToFit controls whether a reallocation to a smaller buffer
// actually shrinks (true, default) or keeps the larger existing buffer
// reinterpreted under the new layout (false).
func WithShrinkToFit(v bool) ReallocOption { return func(c *reallocConfig) { c.shrinkToFit = v } }

// WithForceAllocation always allocates anew, even if the layout is
// unchanged or the existing buffer is already large enough.
func WithForceAllocation(v bool) ReallocOption { return func(c *reallocConfig) { c.force = v } }

// WithAllowViewReallocation permits Reallocate to replace a buffer
// that was attached via NewImageFromRawParts.
func WithAllowViewReallocation(v bool) ReallocOption {
	return func(c *reallocConfig) { c.allowViewRealloc = v }
}

// Reallocate resizes im to layout. If layout (including stride) is
// unchanged and force is not set, this is a no-op — the open question
// in spec.md §9 is resolved here by comparing the full resolved layout,
// stride included, rather than only width/height.
func (im *Image[T, P]) Reallocate(layout TypedLayout, opts ...ReallocOption) error {
	cfg := reallocConfig{shrinkToFit: true}
	for _, o := range opts {
		o(&cfg)
	}
	pixelSize := pixelByteSize[T, P]()
	resolved := layout.Resolve(pixelSize)
	if !cfg.force && resolved == im.layout {
		return nil
	}
	if im.external && !cfg.allowViewRealloc {
		return ErrCannotReallocateView
	}
	newTotal := resolved.TotalBytes(pixelSize)
	if !cfg.force && !cfg.shrinkToFit && pixel.Bytes(len(im.buf)) >= newTotal {
		im.layout = resolved
		im.external = false
		return nil
	}
	im.buf = im.alloc.Allocate(newTotal)
	im.layout = resolved
	im.external = false
	return nil
}

// RelinquishDataOwnership returns im's buffer and layout, leaving im
// empty and valid.
func (im *Image[T, P]) RelinquishDataOwnership() ([]byte, TypedLayout) {
	buf, layout := im.buf, im.layout
	*im = Image[T, P]{}
	return buf, layout
}

// EqualImages compares two images by shape and byte content.
func EqualImages[T pixel.Numeric, P pixel.Pixel[T]](a, b Image[T, P]) bool {
	return EqualViews(a.View(), b.View())
}

func copyRows[T pixel.Numeric, P pixel.Pixel[T]](dst View[T, P], src ConstView[T, P]) {
	rowBytes := int64(dst.RowBytes())
	for y := pixel.Index(0); y < pixel.Index(dst.layout.Height); y++ {
		copy(dst.BytePtrRow(y)[:rowBytes], src.BytePtrRow(y)[:rowBytes])
	}
}
