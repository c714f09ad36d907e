package png

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/deepteams/imgcore"
	"github.com/deepteams/imgcore/imgio"
	"github.com/deepteams/imgcore/pixel"
)

// decoderPhase is the explicit state machine spec.md §4.11 describes:
// every Decoder method validates its current phase before doing
// anything and returns ErrInvalidPhase on an out-of-order call, the
// same discipline the teacher's webp.go applies to its encode/decode
// entry points.
type decoderPhase int

const (
	phaseFresh decoderPhase = iota
	phaseSourceSet
	phaseHeaderRead
	phaseConfigured
	phasePrepared
	phaseConsumed
)

// Decoder reads one PNG stream from a Source, following the
// Fresh -> SourceSet -> HeaderRead -> Configured -> Prepared -> Consumed
// sequence.
type Decoder struct {
	phase   decoderPhase
	src     imgio.Source
	header  HeaderInfo
	options DecompressionOptions
	log     MessageLog

	outFormat pixel.Format
	outBits   int
	outChans  int
}

// NewDecoder returns a Decoder in the Fresh phase.
func NewDecoder() *Decoder { return &Decoder{} }

// SetSource attaches src, advancing Fresh -> SourceSet.
func (d *Decoder) SetSource(src imgio.Source) error {
	if d.phase != phaseFresh {
		return fmt.Errorf("%w: SetSource called in phase %d", ErrInvalidPhase, d.phase)
	}
	d.src = src
	d.phase = phaseSourceSet
	return nil
}

// ReadHeader parses the signature and IHDR chunk, advancing
// SourceSet -> HeaderRead. Pass rewind=true to probe the header (used by
// callers that only want dimensions): in SourceSet the header is parsed,
// the source is sought back to where the probe started and the phase
// stays SourceSet; in HeaderRead the header already read is returned.
func (d *Decoder) ReadHeader(rewind bool) (HeaderInfo, error) {
	if d.phase != phaseSourceSet && !(rewind && d.phase == phaseHeaderRead) {
		return HeaderInfo{}, fmt.Errorf("%w: ReadHeader called in phase %d", ErrInvalidPhase, d.phase)
	}
	if d.phase == phaseHeaderRead {
		return d.header, nil
	}
	start := d.src.Position()
	if err := readSignature(d.src); err != nil {
		return HeaderInfo{}, err
	}
	chdr, err := readChunkHeader(d.src)
	if err != nil {
		return HeaderInfo{}, err
	}
	if chdr.String() != "IHDR" {
		return HeaderInfo{}, fmt.Errorf("%w: first chunk is %q, want IHDR", ErrDecodeFailure, chdr.String())
	}
	body, err := readChunkBody(d.src, chdr)
	if err != nil {
		return HeaderInfo{}, err
	}
	header, err := parseIHDR(body)
	if err != nil {
		return HeaderInfo{}, err
	}
	if header.interlace != 0 {
		return HeaderInfo{}, fmt.Errorf("%w: Adam7 interlacing is not supported", ErrDecodeFailure)
	}
	if header.isPalette {
		return HeaderInfo{}, fmt.Errorf("%w: palette (color type 3) images are not supported", ErrDecodeFailure)
	}
	d.header = header
	if rewind {
		if !d.src.SeekAbs(start) {
			return HeaderInfo{}, fmt.Errorf("%w: cannot rewind source after header probe", ErrDecodeFailure)
		}
		return d.header, nil
	}
	d.phase = phaseHeaderRead
	return d.header, nil
}

// Configure applies opts, advancing HeaderRead -> Configured and
// resolving the output pixel format the decoded image will carry.
func (d *Decoder) Configure(opts DecompressionOptions) error {
	if d.phase != phaseHeaderRead {
		return fmt.Errorf("%w: Configure called in phase %d", ErrInvalidPhase, d.phase)
	}
	d.options = opts
	d.outFormat, d.outChans = resolveOutputFormat(d.header, opts)
	d.outBits = 8
	if d.header.BitDepth == 16 && !opts.ForceBitDepth8 {
		d.outBits = 16
	}
	d.phase = phaseConfigured
	return nil
}

// Prepare allocates the destination image, advancing Configured ->
// Prepared. The returned DynamicImage owns its own buffer; Decode
// writes into it.
func (d *Decoder) Prepare() (imgcore.DynamicImage, error) {
	if d.phase != phaseConfigured {
		return imgcore.DynamicImage{}, fmt.Errorf("%w: Prepare called in phase %d", ErrInvalidPhase, d.phase)
	}
	bytesPerChan := d.outBits / 8
	layout := imgcore.UntypedLayout{
		Width: pixel.Length(d.header.Width), Height: pixel.Length(d.header.Height),
		Channels: d.outChans, BytesPerChannel: bytesPerChan,
	}
	sample := pixel.SampleFormatUnsignedInteger
	img := imgcore.NewDynamicImage(layout, imgcore.Semantics{PixelFormat: d.outFormat, SampleFormat: sample})
	d.phase = phasePrepared
	return img, nil
}

// Decode reads every IDAT chunk, inflates and unfilters the scanlines,
// and writes the result into dst (as produced by Prepare), advancing
// Prepared -> Consumed.
func (d *Decoder) Decode(dst imgcore.DynamicView) error {
	if d.phase != phasePrepared {
		return fmt.Errorf("%w: Decode called in phase %d", ErrInvalidPhase, d.phase)
	}
	idat, err := d.collectIDAT()
	if err != nil {
		return err
	}
	zr, err := zlib.NewReader(bytes.NewReader(idat))
	if err != nil {
		return fmt.Errorf("%w: zlib stream: %v", ErrDecodeFailure, err)
	}
	defer zr.Close()

	channels := d.header.Channels
	bitDepth := d.header.BitDepth
	width, height := d.header.Width, d.header.Height
	bpp := bytesPerPixel(bitDepth, channels)
	rb := rowBytes(width, bitDepth, channels)

	prev := make([]byte, rb)
	cur := make([]byte, rb)
	samples := make([]uint16, width*channels)

	for y := 0; y < height; y++ {
		var ftByte [1]byte
		if _, err := io.ReadFull(zr, ftByte[:]); err != nil {
			return fmt.Errorf("%w: reading filter byte for row %d: %v", ErrDecodeFailure, y, err)
		}
		if _, err := io.ReadFull(zr, cur); err != nil {
			return fmt.Errorf("%w: reading row %d: %v", ErrDecodeFailure, y, err)
		}
		var prevArg []byte
		if y > 0 {
			prevArg = prev
		}
		if err := unfilterRow(ftByte[0], cur, prevArg, bpp); err != nil {
			return err
		}
		unpackRow16(cur, samples, bitDepth, channels, width)
		if err := d.writeOutputRow(dst, pixel.Index(y), samples); err != nil {
			return err
		}
		prev, cur = cur, prev
	}
	d.phase = phaseConsumed
	return nil
}

// unpackRow16 expands a defiltered, bit-packed scanline into one uint16
// per sample (width*channels samples), each holding its raw bitDepth-
// wide value (range [0, 2^bitDepth)), writing into a caller-owned
// buffer to avoid a per-row allocation in the hot decode loop. PNG's
// non-goal on sub-byte pixel layout (spec.md §1) is resolved here:
// 1/2/4-bit streams are expanded to one full sample per channel before
// anything above this package sees them.
func unpackRow16(row []byte, out []uint16, bitDepth, channels, width int) {
	n := width * channels
	switch bitDepth {
	case 8:
		for i := 0; i < n; i++ {
			out[i] = uint16(row[i])
		}
	case 16:
		for i := 0; i < n; i++ {
			out[i] = uint16(row[2*i])<<8 | uint16(row[2*i+1])
		}
	default:
		mask := uint8(1<<bitDepth) - 1
		bitPos := 0
		for i := 0; i < n; i++ {
			byteIdx := bitPos / 8
			shift := 8 - bitDepth - (bitPos % 8)
			out[i] = uint16((row[byteIdx] >> uint(shift)) & mask)
			bitPos += bitDepth
		}
	}
}

// writeOutputRow applies the configured options to one decoded scanline
// (already expanded to one uint16 per sample at the source bit depth)
// and writes it into row y of dst, scaled to d.outBits.
func (d *Decoder) writeOutputRow(dst imgcore.DynamicView, y pixel.Index, samples []uint16) error {
	width := d.header.Width
	srcChans := d.header.Channels
	row := dst.BytePtrRow(y)
	bytesPerOutChan := d.outBits / 8

	comp := make([]uint16, d.outChans)
	for x := 0; x < width; x++ {
		src := samples[x*srcChans : x*srcChans+srcChans]
		d.resolvePixel(src, comp)
		off := x * d.outChans * bytesPerOutChan
		for c := 0; c < d.outChans; c++ {
			v := scaleSample(comp[c], d.header.BitDepth, d.outBits)
			switch {
			case d.outBits == 16 && d.options.KeepBigEndian:
				row[off+2*c] = byte(v >> 8)
				row[off+2*c+1] = byte(v)
			case d.outBits == 16:
				row[off+2*c] = byte(v)
				row[off+2*c+1] = byte(v >> 8)
			default:
				row[off+c] = byte(v)
			}
		}
	}
	return nil
}

// resolvePixel maps one source pixel's raw channel samples (at the
// stream's native bit depth) onto out, in the configured output format,
// applying the DecompressionOptions channel-reordering flags.
func (d *Decoder) resolvePixel(src []uint16, out []uint16) {
	max := uint16(1)<<uint(d.header.BitDepth) - 1
	invert := func(v uint16) uint16 { return max - v }

	switch {
	case d.header.isGray && !d.header.hasAlpha:
		gray := src[0]
		if d.options.InvertMonochrome {
			gray = invert(gray)
		}
		if d.options.ConvertGrayToRGB {
			out[0], out[1], out[2] = gray, gray, gray
			if d.outChans == 4 {
				out[3] = max
			}
		} else {
			out[0] = gray
		}
	case d.header.isGray && d.header.hasAlpha:
		gray, alpha := src[0], src[1]
		if d.options.InvertMonochrome {
			gray = invert(gray)
		}
		if d.options.InvertAlphaChannel {
			alpha = invert(alpha)
		}
		if d.options.SetBackground {
			gray = compositeZeroBackground(gray, alpha, max)
		}
		if d.options.StripAlphaChannel || d.options.SetBackground {
			if d.options.ConvertGrayToRGB {
				out[0], out[1], out[2] = gray, gray, gray
			} else {
				out[0] = gray
			}
		} else if d.options.ConvertGrayToRGB {
			out[0], out[1], out[2], out[3] = gray, gray, gray, alpha
		} else {
			out[0], out[1] = gray, alpha
		}
	default:
		r, g, b := src[0], src[1], src[2]
		var a uint16 = max
		if d.header.hasAlpha {
			a = src[3]
			if d.options.InvertAlphaChannel {
				a = invert(a)
			}
		}
		if d.header.hasAlpha && d.options.SetBackground {
			r = compositeZeroBackground(r, a, max)
			g = compositeZeroBackground(g, a, max)
			b = compositeZeroBackground(b, a, max)
		}
		if d.options.ConvertRGBToGray {
			gray := pixel.RGBToY(pixel.NewRGB(r, g, b)).V
			out[0] = gray
			if d.outChans == 2 {
				out[1] = a
			}
			return
		}
		if d.options.SetBGR {
			r, b = b, r
		}
		if d.options.SwapAlphaChannel && d.outChans == 4 {
			out[0], out[1], out[2], out[3] = a, r, g, b
			return
		}
		switch d.outChans {
		case 3:
			out[0], out[1], out[2] = r, g, b
		case 4:
			if d.options.StripAlphaChannel || d.options.SetBackground {
				out[0], out[1], out[2] = r, g, b
			} else {
				out[0], out[1], out[2], out[3] = r, g, b, a
			}
		}
	}
}

// resolveOutputFormat mirrors get_output_image_info(): it derives the
// pixel.Format and channel count the decoded image will carry from the
// IHDR color type and the requested options, without touching the
// stream.
func resolveOutputFormat(h HeaderInfo, opts DecompressionOptions) (pixel.Format, int) {
	dropAlpha := opts.StripAlphaChannel || opts.SetBackground
	switch {
	case h.isGray && !h.hasAlpha:
		if opts.ConvertGrayToRGB {
			return pixel.FormatRGB, 3
		}
		return pixel.FormatY, 1
	case h.isGray && h.hasAlpha:
		if dropAlpha {
			if opts.ConvertGrayToRGB {
				return pixel.FormatRGB, 3
			}
			return pixel.FormatY, 1
		}
		if opts.ConvertGrayToRGB {
			return pixel.FormatRGBA, 4
		}
		return pixel.FormatYA, 2
	default:
		if opts.ConvertRGBToGray {
			if h.hasAlpha && !dropAlpha {
				return pixel.FormatYA, 2
			}
			return pixel.FormatY, 1
		}
		format := pixel.FormatRGB
		if opts.SetBGR {
			format = pixel.FormatBGR
		}
		if h.hasAlpha && !dropAlpha {
			switch {
			case opts.SwapAlphaChannel && opts.SetBGR:
				format = pixel.FormatABGR
			case opts.SwapAlphaChannel:
				format = pixel.FormatARGB
			case opts.SetBGR:
				format = pixel.FormatBGRA
			default:
				format = pixel.FormatRGBA
			}
			return format, 4
		}
		return format, 3
	}
}

// collectIDAT walks the chunk sequence after IHDR, concatenating every
// IDAT chunk's payload (IDAT chunks need not be contiguous within the
// stream) and stopping at IEND, the same "read chunk header, dispatch
// on FourCC" loop the teacher's container.ReadChunkHeader drives for
// RIFF.
func (d *Decoder) collectIDAT() ([]byte, error) {
	var buf bytes.Buffer
	for {
		h, err := readChunkHeader(d.src)
		if err != nil {
			return nil, err
		}
		switch h.String() {
		case "IDAT":
			body, err := readChunkBody(d.src, h)
			if err != nil {
				return nil, err
			}
			buf.Write(body)
		case "IEND":
			if _, err := readChunkBody(d.src, h); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		default:
			if _, err := readChunkBody(d.src, h); err != nil {
				return nil, err
			}
			d.log.message("skipped ancillary chunk %q", h.String())
		}
	}
}

// DecodeAll is a convenience path running every phase over src with
// opts, returning a freshly allocated DynamicImage.
func DecodeAll(src imgio.Source, opts DecompressionOptions) (imgcore.DynamicImage, HeaderInfo, error) {
	d := NewDecoder()
	if err := d.SetSource(src); err != nil {
		return imgcore.DynamicImage{}, HeaderInfo{}, err
	}
	header, err := d.ReadHeader(false)
	if err != nil {
		return imgcore.DynamicImage{}, HeaderInfo{}, err
	}
	if err := d.Configure(opts); err != nil {
		return imgcore.DynamicImage{}, HeaderInfo{}, err
	}
	img, err := d.Prepare()
	if err != nil {
		return imgcore.DynamicImage{}, HeaderInfo{}, err
	}
	if err := d.Decode(img.View()); err != nil {
		return imgcore.DynamicImage{}, HeaderInfo{}, err
	}
	return img, header, nil
}
