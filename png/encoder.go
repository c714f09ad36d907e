package png

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zlib"

	"github.com/deepteams/imgcore"
	"github.com/deepteams/imgcore/imgio"
	"github.com/deepteams/imgcore/pixel"
)

// ErrInterlaceUnsupported is returned by Encode when opts.Interlace is
// set; Adam7 interlacing is not implemented by the encoder.
var ErrInterlaceUnsupported = errors.New("png: interlaced encoding is not supported")

// colorTypeFor maps a pixel.Format/channel-count pair onto the PNG
// color type it wire-encodes as. SetBGR-style formats serialize as
// their RGB/RGBA equivalent with channels physically swapped first,
// since PNG itself has no BGR color type.
func colorTypeFor(format pixel.Format) (colorType, error) {
	switch format {
	case pixel.FormatY:
		return colorGray, nil
	case pixel.FormatYA:
		return colorGrayAlpha, nil
	case pixel.FormatRGB, pixel.FormatBGR:
		return colorRGB, nil
	case pixel.FormatRGBA, pixel.FormatBGRA, pixel.FormatARGB, pixel.FormatABGR:
		return colorRGBA, nil
	default:
		return 0, fmt.Errorf("%w: pixel format %s has no PNG color type", ErrEncodeFailure, format)
	}
}

// canonicalize rewrites one pixel's worth of samples from format's
// physical channel order into the canonical order PNG expects on the
// wire for its color type (R,G,B[,A] or gray[,A]).
func canonicalize(format pixel.Format, px []uint16, out []uint16) {
	switch format {
	case pixel.FormatBGR:
		out[0], out[1], out[2] = px[2], px[1], px[0]
	case pixel.FormatBGRA:
		out[0], out[1], out[2], out[3] = px[2], px[1], px[0], px[3]
	case pixel.FormatARGB:
		out[0], out[1], out[2], out[3] = px[1], px[2], px[3], px[0]
	case pixel.FormatABGR:
		out[0], out[1], out[2], out[3] = px[3], px[2], px[1], px[0]
	default:
		copy(out, px)
	}
}

// Encode writes src as a complete PNG stream to sink: signature, IHDR,
// IDAT (zlib-compressed, per-row filter chosen by chooseFilter), IEND.
// src's element width (8 or 16 bits) becomes the stream's bit depth;
// src's Semantics().PixelFormat picks the color type via colorTypeFor.
func Encode(sink imgio.Sink, src imgcore.ConstDynamicView, opts EncoderOptions) error {
	if opts.Interlace {
		return ErrInterlaceUnsupported
	}
	format := src.Semantics().PixelFormat
	ct, err := colorTypeFor(format)
	if err != nil {
		return err
	}
	bitDepth := src.BytesPerChannel() * 8
	if bitDepth != 8 && bitDepth != 16 {
		return fmt.Errorf("%w: unsupported element width %d bytes", ErrEncodeFailure, src.BytesPerChannel())
	}
	width, height := int(src.Width()), int(src.Height())
	channels := src.Channels()

	if err := writeSignature(sink); err != nil {
		return err
	}
	if err := writeIHDR(sink, width, height, bitDepth, ct); err != nil {
		return err
	}
	idat, err := compressRows(src, width, height, bitDepth, channels, format, opts)
	if err != nil {
		return err
	}
	if err := writeChunk(sink, "IDAT", idat); err != nil {
		return err
	}
	return writeChunk(sink, "IEND", nil)
}

func writeIHDR(sink imgio.Sink, width, height, bitDepth int, ct colorType) error {
	data := make([]byte, 13)
	putUint32(data[0:4], uint32(width))
	putUint32(data[4:8], uint32(height))
	data[8] = byte(bitDepth)
	data[9] = byte(ct)
	data[10] = 0 // compression method
	data[11] = 0 // filter method
	data[12] = 0 // interlace method
	return writeChunk(sink, "IHDR", data)
}

func putUint32(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

// compressRows filters every scanline of src and zlib-deflates the
// concatenated stream, returning the IDAT payload.
func compressRows(src imgcore.ConstDynamicView, width, height, bitDepth, channels int, format pixel.Format, opts EncoderOptions) ([]byte, error) {
	var buf bytes.Buffer
	level := opts.CompressionLevel
	if level == 0 {
		level = zlib.DefaultCompression
	}
	zw, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, fmt.Errorf("%w: zlib writer: %v", ErrEncodeFailure, err)
	}

	bpp := bytesPerPixel(bitDepth, channels)
	rb := rowBytes(width, bitDepth, channels)
	prev := make([]byte, rb)
	cur := make([]byte, rb)
	canon := make([]uint16, channels)
	samples := make([]uint16, width*channels)
	var scratch [5][]byte
	for i := range scratch {
		scratch[i] = make([]byte, rb)
	}
	filtered := make([]byte, rb+1)

	bytesPerChan := bitDepth / 8
	for y := 0; y < height; y++ {
		row := src.BytePtrRow(pixel.Index(y))
		for x := 0; x < width; x++ {
			px := make([]uint16, channels)
			for c := 0; c < channels; c++ {
				off := (x*channels + c) * bytesPerChan
				if bytesPerChan == 2 {
					px[c] = uint16(row[off]) | uint16(row[off+1])<<8
				} else {
					px[c] = uint16(row[off])
				}
			}
			canonicalize(format, px, canon)
			copy(samples[x*channels:x*channels+channels], canon)
		}
		rowBytesOut := packRow(samples, width, bitDepth, channels)
		copy(cur, rowBytesOut)

		var prevArg []byte
		if y > 0 {
			prevArg = prev
		}
		ft := chooseFilter(cur, prevArg, bpp, scratch)
		filtered[0] = ft
		filterRow(ft, filtered[1:], cur, prevArg, bpp)
		if _, err := zw.Write(filtered); err != nil {
			return nil, fmt.Errorf("%w: deflating row %d: %v", ErrEncodeFailure, y, err)
		}
		prev, cur = cur, prev
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: closing zlib stream: %v", ErrEncodeFailure, err)
	}
	return buf.Bytes(), nil
}
