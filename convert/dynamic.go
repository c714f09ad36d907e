package convert

import (
	"fmt"

	"github.com/deepteams/imgcore"
	"github.com/deepteams/imgcore/pixel"
)

// components is the runtime-decomposed form of one pixel, independent
// of its storage order: named channels plus an alpha-presence flag.
// DynamicConvert decomposes a source pixel's raw samples into this
// shape using its Semantics().PixelFormat, converts, then recomposes
// into the destination format's storage order — the runtime analogue
// of the compile-time conversion matrix in pixel/convert.go, needed
// here because a dynamic image's format is data, not a type parameter.
type components[T pixel.Numeric] struct {
	gray        T
	r, g, b     T
	a           T
	hasAlpha    bool
	isGrayscale bool
}

func decompose[T pixel.Numeric](format pixel.Format, vals []T) components[T] {
	switch format {
	case pixel.FormatY:
		return components[T]{gray: vals[0], isGrayscale: true}
	case pixel.FormatYA:
		return components[T]{gray: vals[0], a: vals[1], hasAlpha: true, isGrayscale: true}
	case pixel.FormatRGB:
		return components[T]{r: vals[0], g: vals[1], b: vals[2]}
	case pixel.FormatBGR:
		return components[T]{b: vals[0], g: vals[1], r: vals[2]}
	case pixel.FormatRGBA:
		return components[T]{r: vals[0], g: vals[1], b: vals[2], a: vals[3], hasAlpha: true}
	case pixel.FormatBGRA:
		return components[T]{b: vals[0], g: vals[1], r: vals[2], a: vals[3], hasAlpha: true}
	case pixel.FormatARGB:
		return components[T]{a: vals[0], r: vals[1], g: vals[2], b: vals[3], hasAlpha: true}
	case pixel.FormatABGR:
		return components[T]{a: vals[0], b: vals[1], g: vals[2], r: vals[3], hasAlpha: true}
	default:
		return components[T]{}
	}
}

func (c components[T]) rgb() (r, g, b T) {
	if c.isGrayscale {
		return c.gray, c.gray, c.gray
	}
	return c.r, c.g, c.b
}

func (c components[T]) luma() T {
	if c.isGrayscale {
		return c.gray
	}
	r, g, b := c.rgb()
	return pixel.RGBToY(pixel.RGB[T]{R: r, G: g, B: b}).V
}

// compose writes c into vals in the storage order format requires,
// using alpha when the target format carries one c didn't already
// supply.
func compose[T pixel.Numeric](format pixel.Format, c components[T], alpha T, vals []T) error {
	a := alpha
	if c.hasAlpha {
		a = c.a
	}
	r, g, b := c.rgb()
	switch format {
	case pixel.FormatY:
		vals[0] = c.luma()
	case pixel.FormatYA:
		vals[0], vals[1] = c.luma(), a
	case pixel.FormatRGB:
		vals[0], vals[1], vals[2] = r, g, b
	case pixel.FormatBGR:
		vals[0], vals[1], vals[2] = b, g, r
	case pixel.FormatRGBA:
		vals[0], vals[1], vals[2], vals[3] = r, g, b, a
	case pixel.FormatBGRA:
		vals[0], vals[1], vals[2], vals[3] = b, g, r, a
	case pixel.FormatARGB:
		vals[0], vals[1], vals[2], vals[3] = a, r, g, b
	case pixel.FormatABGR:
		vals[0], vals[1], vals[2], vals[3] = a, b, g, r
	default:
		return fmt.Errorf("%w: unsupported dynamic target format %v", imgcore.ErrUnsupportedConversion, format)
	}
	return nil
}

// DynamicConvertInto converts every pixel of src into dst, which must
// already be allocated to src's (width, height) and whatever channel
// count dst.Semantics().PixelFormat requires; alpha supplies the value
// used whenever the target format carries an alpha channel the source
// format did not.
func DynamicConvertInto[T pixel.Numeric](dst imgcore.DynamicView, src imgcore.ConstDynamicView, alpha T) error {
	if dst.Width() != src.Width() || dst.Height() != src.Height() {
		return imgcore.ErrShapeMismatch
	}
	srcFmt := src.Semantics().PixelFormat
	switch srcFmt {
	case pixel.FormatY, pixel.FormatYA, pixel.FormatRGB, pixel.FormatBGR,
		pixel.FormatRGBA, pixel.FormatBGRA, pixel.FormatARGB, pixel.FormatABGR:
	default:
		return fmt.Errorf("%w: unsupported dynamic source format %v", imgcore.ErrUnsupportedConversion, srcFmt)
	}
	dstFmt := dst.Semantics().PixelFormat
	srcN := src.Channels()
	dstN := dst.Channels()
	srcVals := make([]T, srcN)
	dstVals := make([]T, dstN)
	for y := pixel.Index(0); y < pixel.Index(src.Height()); y++ {
		for x := pixel.Index(0); x < pixel.Index(src.Width()); x++ {
			readChannels(src.BytePtrPixel(x, y), srcVals)
			c := decompose(srcFmt, srcVals)
			if err := compose(dstFmt, c, alpha, dstVals); err != nil {
				return err
			}
			writeChannels(dst.BytePtrPixel(x, y), dstVals)
		}
	}
	return nil
}

// DynamicConvert is DynamicConvertInto, allocating a destination image
// of targetFormat and src's element width/shape.
func DynamicConvert[T pixel.Numeric](src imgcore.ConstDynamicView, targetFormat pixel.Format, targetSample pixel.SampleFormat, alpha T) (imgcore.DynamicImage, error) {
	layout := imgcore.UntypedLayout{
		Width: src.Width(), Height: src.Height(),
		Channels: targetFormat.Channels(), BytesPerChannel: src.BytesPerChannel(),
	}
	dst := imgcore.NewDynamicImage(layout, imgcore.Semantics{PixelFormat: targetFormat, SampleFormat: targetSample})
	if err := DynamicConvertInto[T](dst.View(), src, alpha); err != nil {
		return imgcore.DynamicImage{}, err
	}
	return dst, nil
}

func readChannels[T pixel.Numeric](b []byte, out []T) {
	sz := pixel.BytesPerChannel[T]()
	for i := range out {
		out[i] = pixel.Decode[T, pixel.Y[T]](b[i*sz : i*sz+sz]).V
	}
}

func writeChannels[T pixel.Numeric](b []byte, vals []T) {
	sz := pixel.BytesPerChannel[T]()
	for i, v := range vals {
		pixel.Encode[T, pixel.Y[T]](pixel.Y[T]{V: v}, b[i*sz:i*sz+sz])
	}
}
