package imgcore

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/deepteams/imgcore/pixel"
)

// View is a non-owning, mutable reference to a rectangle of P-shaped
// pixels over element type T. It never allocates and never outlives the
// buffer it was built from.
type View[T pixel.Numeric, P pixel.Pixel[T]] struct {
	data   DataPtr
	layout TypedLayout
}

// NewView builds a View over buf using layout, clamping the stride up
// to the packed minimum for the pixel size of P.
func NewView[T pixel.Numeric, P pixel.Pixel[T]](buf []byte, layout TypedLayout) View[T, P] {
	return View[T, P]{data: NewDataPtr(buf), layout: layout.Resolve(pixelByteSize[T, P]())}
}

func pixelByteSize[T pixel.Numeric, P pixel.Pixel[T]]() pixel.Bytes {
	return pixel.Bytes(pixel.PixelSize[T, P]())
}

func (v View[T, P]) Width() pixel.Length        { return v.layout.Width }
func (v View[T, P]) Height() pixel.Length       { return v.layout.Height }
func (v View[T, P]) StrideBytes() pixel.Stride  { return v.layout.StrideBytes }
func (v View[T, P]) RowBytes() pixel.Bytes      { return v.layout.RowBytes(pixelByteSize[T, P]()) }
func (v View[T, P]) TotalBytes() pixel.Bytes    { return v.layout.TotalBytes(pixelByteSize[T, P]()) }
func (v View[T, P]) IsPacked() bool             { return v.layout.IsPacked(pixelByteSize[T, P]()) }
func (v View[T, P]) Layout() TypedLayout        { return v.layout }
func (v View[T, P]) IsEmpty() bool {
	return v.data.IsNil() || v.layout.Width == 0 || v.layout.Height == 0
}
func (v View[T, P]) IsValid() bool { return true }

// BytePtr returns the row 0 base address.
func (v View[T, P]) BytePtr() []byte { return v.data.Bytes() }

// BytePtrRow returns the byte slice beginning at row y.
func (v View[T, P]) BytePtrRow(y pixel.Index) []byte {
	off := pixel.Bytes(y) * pixel.Bytes(v.layout.StrideBytes)
	return v.data.Bytes()[off:]
}

// BytePtrPixel returns the byte slice beginning at pixel (x, y).
func (v View[T, P]) BytePtrPixel(x, y pixel.Index) []byte {
	off := pixel.Bytes(x) * pixelByteSize[T, P]()
	return v.BytePtrRow(y)[off:]
}

// Pixel reads the pixel at (x, y).
func (v View[T, P]) Pixel(x, y pixel.Index) P {
	sz := pixelByteSize[T, P]()
	return pixel.Decode[T, P](v.BytePtrPixel(x, y)[:sz])
}

// SetPixel writes p at (x, y).
func (v View[T, P]) SetPixel(x, y pixel.Index, p P) {
	sz := pixelByteSize[T, P]()
	pixel.Encode[T, P](p, v.BytePtrPixel(x, y)[:sz])
}

// AsConst produces the read-only counterpart of v.
func (v View[T, P]) AsConst() ConstView[T, P] {
	return ConstView[T, P]{data: v.data.AsConst(), layout: v.layout}
}

// AssignExpr fills v from an "image expression": a callable evaluated
// at every (x, y). width/height must match v's shape exactly, or
// ErrShapeMismatch is returned and v is left untouched.
func (v View[T, P]) AssignExpr(width, height pixel.Length, f func(x, y pixel.Index) P) error {
	if width != v.layout.Width || height != v.layout.Height {
		return fmt.Errorf("%w: expression is %dx%d, view is %dx%d", ErrShapeMismatch, width, height, v.layout.Width, v.layout.Height)
	}
	for y := pixel.Index(0); y < pixel.Index(height); y++ {
		for x := pixel.Index(0); x < pixel.Index(width); x++ {
			v.SetPixel(x, y, f(x, y))
		}
	}
	return nil
}

// Row is a lending handle onto one row of a View: it borrows the view
// for the duration of iteration rather than copying row data out.
type Row[T pixel.Numeric, P pixel.Pixel[T]] struct {
	v View[T, P]
	y pixel.Index
}

func (r Row[T, P]) Index() pixel.Index { return r.y }
func (r Row[T, P]) Len() pixel.Length  { return r.v.layout.Width }
func (r Row[T, P]) At(x pixel.Index) P { return r.v.Pixel(x, r.y) }

// Pixels iterates the row's pixels in ascending x order.
func (r Row[T, P]) Pixels() iter.Seq2[pixel.Index, P] {
	return func(yield func(pixel.Index, P) bool) {
		for x := pixel.Index(0); x < pixel.Index(r.v.layout.Width); x++ {
			if !yield(x, r.v.Pixel(x, r.y)) {
				return
			}
		}
	}
}

// Rows iterates v's rows top to bottom. Composed with Row.Pixels this
// gives the row-major, then row-ascending order spec.md §3 requires.
func (v View[T, P]) Rows() iter.Seq[Row[T, P]] {
	return func(yield func(Row[T, P]) bool) {
		for y := pixel.Index(0); y < pixel.Index(v.layout.Height); y++ {
			if !yield(Row[T, P]{v: v, y: y}) {
				return
			}
		}
	}
}

// EqualViews reports whether a and b have the same shape and identical
// bytes row by row. Two empty views of any shape compare equal.
func EqualViews[T pixel.Numeric, P pixel.Pixel[T]](a, b View[T, P]) bool {
	if a.IsEmpty() && b.IsEmpty() {
		return true
	}
	if a.layout.Width != b.layout.Width || a.layout.Height != b.layout.Height {
		return false
	}
	rowBytes := int64(a.RowBytes())
	for y := pixel.Index(0); y < pixel.Index(a.layout.Height); y++ {
		ar := a.BytePtrRow(y)[:rowBytes]
		br := b.BytePtrRow(y)[:rowBytes]
		if !bytes.Equal(ar, br) {
			return false
		}
	}
	return true
}

// ConstView is the read-only counterpart of View. It exposes the same
// read accessors but no mutator; there is no conversion back to View.
type ConstView[T pixel.Numeric, P pixel.Pixel[T]] struct {
	data   ConstDataPtr
	layout TypedLayout
}

// NewConstView builds a ConstView over buf using layout.
func NewConstView[T pixel.Numeric, P pixel.Pixel[T]](buf []byte, layout TypedLayout) ConstView[T, P] {
	return ConstView[T, P]{data: NewConstDataPtr(buf), layout: layout.Resolve(pixelByteSize[T, P]())}
}

func (v ConstView[T, P]) Width() pixel.Length       { return v.layout.Width }
func (v ConstView[T, P]) Height() pixel.Length      { return v.layout.Height }
func (v ConstView[T, P]) StrideBytes() pixel.Stride { return v.layout.StrideBytes }
func (v ConstView[T, P]) RowBytes() pixel.Bytes     { return v.layout.RowBytes(pixelByteSize[T, P]()) }
func (v ConstView[T, P]) TotalBytes() pixel.Bytes   { return v.layout.TotalBytes(pixelByteSize[T, P]()) }
func (v ConstView[T, P]) IsPacked() bool            { return v.layout.IsPacked(pixelByteSize[T, P]()) }
func (v ConstView[T, P]) Layout() TypedLayout       { return v.layout }
func (v ConstView[T, P]) IsEmpty() bool {
	return v.data.IsNil() || v.layout.Width == 0 || v.layout.Height == 0
}
func (v ConstView[T, P]) IsValid() bool { return true }

// View returns v unchanged: calling View() on a view that is already
// Constant is the identity, per spec.md §4.3.
func (v ConstView[T, P]) View() ConstView[T, P] { return v }

func (v ConstView[T, P]) BytePtr() []byte { return v.data.Bytes() }

func (v ConstView[T, P]) BytePtrRow(y pixel.Index) []byte {
	off := pixel.Bytes(y) * pixel.Bytes(v.layout.StrideBytes)
	return v.data.Bytes()[off:]
}

func (v ConstView[T, P]) BytePtrPixel(x, y pixel.Index) []byte {
	off := pixel.Bytes(x) * pixelByteSize[T, P]()
	return v.BytePtrRow(y)[off:]
}

func (v ConstView[T, P]) Pixel(x, y pixel.Index) P {
	sz := pixelByteSize[T, P]()
	return pixel.Decode[T, P](v.BytePtrPixel(x, y)[:sz])
}

type ConstRow[T pixel.Numeric, P pixel.Pixel[T]] struct {
	v ConstView[T, P]
	y pixel.Index
}

func (r ConstRow[T, P]) Index() pixel.Index { return r.y }
func (r ConstRow[T, P]) Len() pixel.Length  { return r.v.layout.Width }
func (r ConstRow[T, P]) At(x pixel.Index) P { return r.v.Pixel(x, r.y) }

func (r ConstRow[T, P]) Pixels() iter.Seq2[pixel.Index, P] {
	return func(yield func(pixel.Index, P) bool) {
		for x := pixel.Index(0); x < pixel.Index(r.v.layout.Width); x++ {
			if !yield(x, r.v.Pixel(x, r.y)) {
				return
			}
		}
	}
}

func (v ConstView[T, P]) Rows() iter.Seq[ConstRow[T, P]] {
	return func(yield func(ConstRow[T, P]) bool) {
		for y := pixel.Index(0); y < pixel.Index(v.layout.Height); y++ {
			if !yield(ConstRow[T, P]{v: v, y: y}) {
				return
			}
		}
	}
}

// EqualConstViews is EqualViews for ConstView operands.
func EqualConstViews[T pixel.Numeric, P pixel.Pixel[T]](a, b ConstView[T, P]) bool {
	if a.IsEmpty() && b.IsEmpty() {
		return true
	}
	if a.layout.Width != b.layout.Width || a.layout.Height != b.layout.Height {
		return false
	}
	rowBytes := int64(a.RowBytes())
	for y := pixel.Index(0); y < pixel.Index(a.layout.Height); y++ {
		ar := a.BytePtrRow(y)[:rowBytes]
		br := b.BytePtrRow(y)[:rowBytes]
		if !bytes.Equal(ar, br) {
			return false
		}
	}
	return true
}
