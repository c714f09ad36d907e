package imgcore

import "github.com/deepteams/imgcore/pixel"

// DynamicImage is the owning, run-time-typed analogue of Image: its
// pixel shape and element width live in the layout as data, the way
// spec.md §9's design notes describe representing the dynamic image in
// a language with algebraic data types rather than templates.
type DynamicImage struct {
	alloc    Allocator
	buf      []byte
	layout   UntypedLayout
	sem      Semantics
	external bool
}

// NewDynamicImage allocates a zero-valued image using DefaultAllocator.
func NewDynamicImage(layout UntypedLayout, sem Semantics) DynamicImage {
	return NewDynamicImageWithAllocator(layout, sem, DefaultAllocator{})
}

// NewDynamicImageWithAllocator is NewDynamicImage with an explicit
// Allocator.
func NewDynamicImageWithAllocator(layout UntypedLayout, sem Semantics, alloc Allocator) DynamicImage {
	resolved := layout.Resolve()
	buf := alloc.Allocate(resolved.TotalBytes())
	return DynamicImage{alloc: alloc, buf: buf, layout: resolved, sem: sem}
}

// NewDynamicImageAligned allocates with stride rounded up to a multiple
// of rowAlignment and every row's first byte aligned to rowAlignment.
func NewDynamicImageAligned(layout UntypedLayout, sem Semantics, rowAlignment pixel.Bytes, alloc Allocator) DynamicImage {
	rowBytes := pixel.Stride(layout.RowBytes())
	stride := layout.StrideBytes
	if rowBytes > stride {
		stride = rowBytes
	}
	if rowAlignment > 1 {
		if rem := int64(stride) % int64(rowAlignment); rem != 0 {
			stride += pixel.Stride(int64(rowAlignment) - rem)
		}
	}
	resolved := UntypedLayout{
		Width: layout.Width, Height: layout.Height,
		Channels: layout.Channels, BytesPerChannel: layout.BytesPerChannel,
		StrideBytes: stride,
	}
	buf := alloc.AllocateAligned(resolved.TotalBytes(), rowAlignment)
	return DynamicImage{alloc: alloc, buf: buf, layout: resolved, sem: sem}
}

// NewDynamicImageFromRawParts takes ownership of buf, a block known to
// have been produced by alloc.
func NewDynamicImageFromRawParts(buf []byte, layout UntypedLayout, sem Semantics, alloc Allocator) DynamicImage {
	return DynamicImage{alloc: alloc, buf: buf, layout: layout.Resolve(), sem: sem, external: true}
}

// NewDynamicImageFromView deep-copies the region covered by v.
func NewDynamicImageFromView(v ConstDynamicView, alloc Allocator) DynamicImage {
	layout := UntypedLayout{
		Width: v.Width(), Height: v.Height(),
		Channels: v.Channels(), BytesPerChannel: v.BytesPerChannel(),
	}
	out := NewDynamicImageWithAllocator(layout, v.Semantics(), alloc)
	copyDynamicRows(out.View(), v)
	return out
}

func (im DynamicImage) Width() pixel.Length       { return im.layout.Width }
func (im DynamicImage) Height() pixel.Length      { return im.layout.Height }
func (im DynamicImage) Channels() int             { return im.layout.Channels }
func (im DynamicImage) BytesPerChannel() int      { return im.layout.BytesPerChannel }
func (im DynamicImage) StrideBytes() pixel.Stride { return im.layout.StrideBytes }
func (im DynamicImage) RowBytes() pixel.Bytes     { return im.layout.RowBytes() }
func (im DynamicImage) TotalBytes() pixel.Bytes   { return im.layout.TotalBytes() }
func (im DynamicImage) IsPacked() bool            { return im.layout.IsPacked() }
func (im DynamicImage) Layout() UntypedLayout     { return im.layout }
func (im DynamicImage) Semantics() Semantics      { return im.sem }
func (im DynamicImage) IsEmpty() bool {
	return im.buf == nil || im.layout.Width == 0 || im.layout.Height == 0
}
func (im DynamicImage) IsValid() bool { return true }

// View returns a mutable DynamicView onto im's buffer.
func (im DynamicImage) View() DynamicView {
	return DynamicView{data: NewDataPtr(im.buf), layout: im.layout, sem: im.sem}
}

// ConstView returns a read-only DynamicView onto im's buffer.
func (im DynamicImage) ConstView() ConstDynamicView { return im.View().AsConst() }

// Copy deep-copies im into a freshly allocated image using the same
// allocator.
func (im DynamicImage) Copy() DynamicImage {
	layout := UntypedLayout{
		Width: im.layout.Width, Height: im.layout.Height,
		Channels: im.layout.Channels, BytesPerChannel: im.layout.BytesPerChannel,
	}
	out := NewDynamicImageWithAllocator(layout, im.sem, im.alloc)
	copyDynamicRows(out.View(), im.ConstView())
	return out
}

// MoveFrom transfers src's buffer, allocator, layout, and semantics
// into im, leaving src empty and valid.
func (im *DynamicImage) MoveFrom(src *DynamicImage) {
	im.alloc = src.alloc
	im.buf = src.buf
	im.layout = src.layout
	im.sem = src.sem
	im.external = src.external
	*src = DynamicImage{}
}

// Reallocate resizes im to layout (and, optionally, new semantics). As
// with Image.Reallocate, the full resolved layout — including stride —
// is compared for the unchanged-layout no-op check.
func (im *DynamicImage) Reallocate(layout UntypedLayout, sem Semantics, opts ...ReallocOption) error {
	cfg := reallocConfig{shrinkToFit: true}
	for _, o := range opts {
		o(&cfg)
	}
	resolved := layout.Resolve()
	if !cfg.force && resolved == im.layout {
		im.sem = sem
		return nil
	}
	if im.external && !cfg.allowViewRealloc {
		return ErrCannotReallocateView
	}
	newTotal := resolved.TotalBytes()
	if !cfg.force && !cfg.shrinkToFit && pixel.Bytes(len(im.buf)) >= newTotal {
		im.layout = resolved
		im.sem = sem
		im.external = false
		return nil
	}
	im.buf = im.alloc.Allocate(newTotal)
	im.layout = resolved
	im.sem = sem
	im.external = false
	return nil
}

// RelinquishDataOwnership returns im's buffer and layout, leaving im
// empty and valid.
func (im *DynamicImage) RelinquishDataOwnership() ([]byte, UntypedLayout) {
	buf, layout := im.buf, im.layout
	*im = DynamicImage{}
	return buf, layout
}

func copyDynamicRows(dst DynamicView, src ConstDynamicView) {
	rowBytes := int64(dst.RowBytes())
	for y := pixel.Index(0); y < pixel.Index(dst.layout.Height); y++ {
		copy(dst.BytePtrRow(y)[:rowBytes], src.BytePtrRow(y)[:rowBytes])
	}
}
