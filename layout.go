// Package imgcore implements the storage-and-view model: typed and
// dynamic image layouts, the modifiability-tagged data pointer, and the
// owning/viewing image types built on top of them.
package imgcore

import "github.com/deepteams/imgcore/pixel"

// TypedLayout describes the geometry of an image whose pixel type is
// known at compile time: width and height in pixels, plus an optional
// explicit row stride in bytes. StrideBytes of 0 means "derive from
// width times the pixel size" — the packed minimum.
type TypedLayout struct {
	Width, Height pixel.Length
	StrideBytes   pixel.Stride
}

// RowBytes returns the packed row size for a pixel of the given byte
// size: width * pixelSize.
func (l TypedLayout) RowBytes(pixelSize pixel.Bytes) pixel.Bytes {
	return pixel.Bytes(l.Width) * pixelSize
}

// ResolvedStride returns the effective stride: the larger of the
// explicit StrideBytes and the packed row size.
func (l TypedLayout) ResolvedStride(pixelSize pixel.Bytes) pixel.Stride {
	row := pixel.Stride(l.RowBytes(pixelSize))
	if l.StrideBytes > row {
		return l.StrideBytes
	}
	return row
}

// TotalBytes returns ResolvedStride(pixelSize) * Height.
func (l TypedLayout) TotalBytes(pixelSize pixel.Bytes) pixel.Bytes {
	return pixel.Bytes(l.ResolvedStride(pixelSize)) * pixel.Bytes(l.Height)
}

// IsPacked reports whether the resolved stride equals the packed row
// size.
func (l TypedLayout) IsPacked(pixelSize pixel.Bytes) bool {
	return pixel.Bytes(l.ResolvedStride(pixelSize)) == l.RowBytes(pixelSize)
}

// Resolve returns l with StrideBytes fixed up to ResolvedStride, the
// form every producer of a layout must present downstream.
func (l TypedLayout) Resolve(pixelSize pixel.Bytes) TypedLayout {
	l.StrideBytes = l.ResolvedStride(pixelSize)
	return l
}

// UntypedLayout is the run-time analogue of TypedLayout: channel count
// and per-channel byte width are carried as data rather than fixed by a
// generic parameter.
type UntypedLayout struct {
	Width, Height   pixel.Length
	Channels        int
	BytesPerChannel int
	StrideBytes     pixel.Stride
}

// BytesPerPixel returns Channels * BytesPerChannel.
func (l UntypedLayout) BytesPerPixel() pixel.Bytes {
	return pixel.Bytes(l.Channels * l.BytesPerChannel)
}

// RowBytes returns Width * BytesPerPixel.
func (l UntypedLayout) RowBytes() pixel.Bytes {
	return pixel.Bytes(l.Width) * l.BytesPerPixel()
}

// ResolvedStride returns the larger of the explicit StrideBytes and the
// packed row size.
func (l UntypedLayout) ResolvedStride() pixel.Stride {
	row := pixel.Stride(l.RowBytes())
	if l.StrideBytes > row {
		return l.StrideBytes
	}
	return row
}

// TotalBytes returns ResolvedStride * Height.
func (l UntypedLayout) TotalBytes() pixel.Bytes {
	return pixel.Bytes(l.ResolvedStride()) * pixel.Bytes(l.Height)
}

// IsPacked reports whether the resolved stride equals the packed row
// size.
func (l UntypedLayout) IsPacked() bool {
	return pixel.Bytes(l.ResolvedStride()) == l.RowBytes()
}

// Resolve returns l with StrideBytes fixed up to ResolvedStride.
func (l UntypedLayout) Resolve() UntypedLayout {
	l.StrideBytes = l.ResolvedStride()
	return l
}

// Semantics pairs the pixel-format and sample-format tags a dynamic
// image or view carries alongside its UntypedLayout.
type Semantics struct {
	PixelFormat  pixel.Format
	SampleFormat pixel.SampleFormat
}

// EqualSemantics reports whether a and b are compatible under each
// field's Unknown-wildcard rule.
func EqualSemantics(a, b Semantics) bool {
	return pixel.EqualFormat(a.PixelFormat, b.PixelFormat) &&
		pixel.EqualSampleFormat(a.SampleFormat, b.SampleFormat)
}
