package imgcore

import (
	"bytes"
	"fmt"

	"github.com/deepteams/imgcore/pixel"
)

// DynamicView is the run-time analogue of View: channel count,
// per-channel byte width, and the (pixel_format, sample_format)
// semantic tags are carried as data in the layout rather than fixed by
// a generic parameter.
type DynamicView struct {
	data   DataPtr
	layout UntypedLayout
	sem    Semantics
}

// NewDynamicView builds a DynamicView over buf.
func NewDynamicView(buf []byte, layout UntypedLayout, sem Semantics) DynamicView {
	return DynamicView{data: NewDataPtr(buf), layout: layout.Resolve(), sem: sem}
}

func (v DynamicView) Width() pixel.Length       { return v.layout.Width }
func (v DynamicView) Height() pixel.Length      { return v.layout.Height }
func (v DynamicView) Channels() int             { return v.layout.Channels }
func (v DynamicView) BytesPerChannel() int      { return v.layout.BytesPerChannel }
func (v DynamicView) StrideBytes() pixel.Stride { return v.layout.StrideBytes }
func (v DynamicView) RowBytes() pixel.Bytes     { return v.layout.RowBytes() }
func (v DynamicView) TotalBytes() pixel.Bytes   { return v.layout.TotalBytes() }
func (v DynamicView) IsPacked() bool            { return v.layout.IsPacked() }
func (v DynamicView) Layout() UntypedLayout     { return v.layout }
func (v DynamicView) Semantics() Semantics      { return v.sem }
func (v DynamicView) IsEmpty() bool {
	return v.data.IsNil() || v.layout.Width == 0 || v.layout.Height == 0
}
func (v DynamicView) IsValid() bool { return true }

func (v DynamicView) BytePtr() []byte { return v.data.Bytes() }

func (v DynamicView) BytePtrRow(y pixel.Index) []byte {
	off := pixel.Bytes(y) * pixel.Bytes(v.layout.StrideBytes)
	return v.data.Bytes()[off:]
}

func (v DynamicView) BytePtrPixel(x, y pixel.Index) []byte {
	off := pixel.Bytes(x) * v.layout.BytesPerPixel()
	return v.BytePtrRow(y)[off:]
}

// AsConst produces the read-only counterpart of v.
func (v DynamicView) AsConst() ConstDynamicView {
	return ConstDynamicView{data: v.data.AsConst(), layout: v.layout, sem: v.sem}
}

// checkPixelType validates that a typed access with element T and pixel
// shape P is compatible with v's layout and (if non-Unknown) semantics.
func checkPixelType[T pixel.Numeric, P pixel.Pixel[T]](layout UntypedLayout, sem Semantics) error {
	var zero P
	if zero.Channels() != layout.Channels {
		return fmt.Errorf("%w: pixel type has %d channels, view has %d", ErrShapeMismatch, zero.Channels(), layout.Channels)
	}
	if pixel.BytesPerChannel[T]() != layout.BytesPerChannel {
		return fmt.Errorf("%w: element is %d bytes, view expects %d", ErrShapeMismatch, pixel.BytesPerChannel[T](), layout.BytesPerChannel)
	}
	if sem.SampleFormat != pixel.SampleFormatUnknown && !pixel.EqualSampleFormat(sem.SampleFormat, pixel.SampleFormatOf[T]()) {
		return fmt.Errorf("%w: element sample format does not match view semantics", ErrShapeMismatch)
	}
	return nil
}

// PixelAt reads the pixel at (x, y) from v, interpreted as a P over T.
func PixelAt[T pixel.Numeric, P pixel.Pixel[T]](v DynamicView, x, y pixel.Index) (P, error) {
	var zero P
	if err := checkPixelType[T, P](v.layout, v.sem); err != nil {
		return zero, err
	}
	sz := pixel.Bytes(pixel.PixelSize[T, P]())
	return pixel.Decode[T, P](v.BytePtrPixel(x, y)[:sz]), nil
}

// SetPixelAt writes p at (x, y) in v, interpreted as a P over T.
func SetPixelAt[T pixel.Numeric, P pixel.Pixel[T]](v DynamicView, x, y pixel.Index, p P) error {
	if err := checkPixelType[T, P](v.layout, v.sem); err != nil {
		return err
	}
	sz := pixel.Bytes(pixel.PixelSize[T, P]())
	pixel.Encode[T, P](p, v.BytePtrPixel(x, y)[:sz])
	return nil
}

// EqualDynamicViews compares two dynamic views by shape and raw bytes;
// channel count, element width, and format tags are not considered.
func EqualDynamicViews(a, b DynamicView) bool {
	if a.IsEmpty() && b.IsEmpty() {
		return true
	}
	if a.layout.Width != b.layout.Width || a.layout.Height != b.layout.Height {
		return false
	}
	rowBytes := int64(a.RowBytes())
	if rowBytes != int64(b.RowBytes()) {
		return false
	}
	for y := pixel.Index(0); y < pixel.Index(a.layout.Height); y++ {
		ar := a.BytePtrRow(y)[:rowBytes]
		br := b.BytePtrRow(y)[:rowBytes]
		if !bytes.Equal(ar, br) {
			return false
		}
	}
	return true
}

// ConstDynamicView is the read-only counterpart of DynamicView.
type ConstDynamicView struct {
	data   ConstDataPtr
	layout UntypedLayout
	sem    Semantics
}

// NewConstDynamicView builds a ConstDynamicView over buf.
func NewConstDynamicView(buf []byte, layout UntypedLayout, sem Semantics) ConstDynamicView {
	return ConstDynamicView{data: NewConstDataPtr(buf), layout: layout.Resolve(), sem: sem}
}

func (v ConstDynamicView) Width() pixel.Length       { return v.layout.Width }
func (v ConstDynamicView) Height() pixel.Length      { return v.layout.Height }
func (v ConstDynamicView) Channels() int             { return v.layout.Channels }
func (v ConstDynamicView) BytesPerChannel() int      { return v.layout.BytesPerChannel }
func (v ConstDynamicView) StrideBytes() pixel.Stride { return v.layout.StrideBytes }
func (v ConstDynamicView) RowBytes() pixel.Bytes     { return v.layout.RowBytes() }
func (v ConstDynamicView) TotalBytes() pixel.Bytes   { return v.layout.TotalBytes() }
func (v ConstDynamicView) IsPacked() bool            { return v.layout.IsPacked() }
func (v ConstDynamicView) Layout() UntypedLayout     { return v.layout }
func (v ConstDynamicView) Semantics() Semantics      { return v.sem }
func (v ConstDynamicView) IsEmpty() bool {
	return v.data.IsNil() || v.layout.Width == 0 || v.layout.Height == 0
}
func (v ConstDynamicView) IsValid() bool { return true }

func (v ConstDynamicView) BytePtr() []byte { return v.data.Bytes() }

func (v ConstDynamicView) BytePtrRow(y pixel.Index) []byte {
	off := pixel.Bytes(y) * pixel.Bytes(v.layout.StrideBytes)
	return v.data.Bytes()[off:]
}

func (v ConstDynamicView) BytePtrPixel(x, y pixel.Index) []byte {
	off := pixel.Bytes(x) * v.layout.BytesPerPixel()
	return v.BytePtrRow(y)[off:]
}

// ConstPixelAt reads the pixel at (x, y) from v, interpreted as a P
// over T.
func ConstPixelAt[T pixel.Numeric, P pixel.Pixel[T]](v ConstDynamicView, x, y pixel.Index) (P, error) {
	var zero P
	if err := checkPixelType[T, P](v.layout, v.sem); err != nil {
		return zero, err
	}
	sz := pixel.Bytes(pixel.PixelSize[T, P]())
	return pixel.Decode[T, P](v.BytePtrPixel(x, y)[:sz]), nil
}

// EqualConstDynamicViews is EqualDynamicViews for ConstDynamicView
// operands.
func EqualConstDynamicViews(a, b ConstDynamicView) bool {
	if a.IsEmpty() && b.IsEmpty() {
		return true
	}
	if a.layout.Width != b.layout.Width || a.layout.Height != b.layout.Height {
		return false
	}
	rowBytes := int64(a.RowBytes())
	if rowBytes != int64(b.RowBytes()) {
		return false
	}
	for y := pixel.Index(0); y < pixel.Index(a.layout.Height); y++ {
		ar := a.BytePtrRow(y)[:rowBytes]
		br := b.BytePtrRow(y)[:rowBytes]
		if !bytes.Equal(ar, br) {
			return false
		}
	}
	return true
}
