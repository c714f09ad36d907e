// Package png implements the PNG codec bridge (C14): a streaming
// decoder state machine over an imgio.Source that negotiates an output
// pixel format through a declarative option set, plus the symmetric
// encoder. IDAT/IDAT-equivalent compression uses
// github.com/klauspost/compress/zlib rather than the standard library's
// compress/zlib — see DESIGN.md/SPEC_FULL.md's DOMAIN STACK section.
package png

// DecompressionOptions configures how the decoder maps a decoded PNG
// stream onto an output pixel format. Every field defaults to its zero
// value (false), matching the teacher's EncoderOptions convention of
// documented fields with sane zero-value defaults rather than a
// functional-options API.
type DecompressionOptions struct {
	// ForceBitDepth8 maps 16-bit samples down to 8-bit on decode.
	ForceBitDepth8 bool
	// SetBackground composites the color channels against a zero
	// (black) background — out = round(in * alpha / max) — and drops
	// the alpha channel. This package does not parse the bKGD chunk,
	// so every source is treated as if it carried a zero background;
	// there is no file-background variant.
	SetBackground bool
	// StripAlphaChannel drops the alpha channel after decode.
	StripAlphaChannel bool
	// SwapAlphaChannel reads ARGB sample order instead of RGBA when
	// decoding an RGB stream that carries alpha (ABGR together with
	// SetBGR). Gray+alpha streams keep their gray, alpha order.
	SwapAlphaChannel bool
	// SetBGR swaps the R and B channels on decode.
	SetBGR bool
	// InvertAlphaChannel maps a -> max-a.
	InvertAlphaChannel bool
	// InvertMonochrome maps v -> max-v for Y/YA streams.
	InvertMonochrome bool
	// ConvertGrayToRGB and ConvertRGBToGray are mutually exclusive;
	// set only one.
	ConvertGrayToRGB bool
	ConvertRGBToGray bool
	// KeepBigEndian keeps 16-bit samples big-endian (the wire order)
	// instead of converting to host-native little-endian.
	KeepBigEndian bool
}

// EncoderOptions configures the symmetric encode path.
type EncoderOptions struct {
	// CompressionLevel is passed straight to the zlib writer (1-9).
	// The zero value requests the zlib library's default level.
	CompressionLevel int
	// Interlace requests Adam7 interlacing. This encoder does not
	// implement Adam7; requesting it returns ErrInterlaceUnsupported
	// from Encode.
	Interlace bool
}
