package png

import (
	"encoding/binary"
	"hash/crc32"
	"math/rand"
	"testing"

	"github.com/deepteams/imgcore"
	"github.com/deepteams/imgcore/imgio"
	"github.com/deepteams/imgcore/pixel"
)

// rawIHDRStream builds a signature + IHDR-only PNG stream (no IDAT/
// IEND) for tests that only exercise ReadHeader.
func rawIHDRStream(width, height uint32, bitDepth, colorType byte) []byte {
	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:4], width)
	binary.BigEndian.PutUint32(ihdr[4:8], height)
	ihdr[8] = bitDepth
	ihdr[9] = colorType

	var buf []byte
	buf = append(buf, signature[:]...)
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(ihdr)))
	buf = append(buf, lenBuf[:]...)
	buf = append(buf, "IHDR"...)
	buf = append(buf, ihdr[:]...)
	crc := crc32.ChecksumIEEE(append([]byte("IHDR"), ihdr[:]...))
	var crcBuf [4]byte
	binary.BigEndian.PutUint32(crcBuf[:], crc)
	buf = append(buf, crcBuf[:]...)
	return buf
}

func encodeRGB(t *testing.T, width, height int, seed int64) imgcore.DynamicImage {
	t.Helper()
	layout := imgcore.UntypedLayout{Width: pixel.Length(width), Height: pixel.Length(height), Channels: 3, BytesPerChannel: 1}
	img := imgcore.NewDynamicImage(layout, imgcore.Semantics{PixelFormat: pixel.FormatRGB, SampleFormat: pixel.SampleFormatUnsignedInteger})
	r := rand.New(rand.NewSource(seed))
	v := img.View()
	for y := 0; y < height; y++ {
		row := v.BytePtrRow(pixel.Index(y))
		for i := 0; i < width*3; i++ {
			row[i] = byte(r.Intn(256))
		}
	}
	return img
}

// TestPNGRoundTrip is scenario S6: encoding then decoding a random RGB
// image must reproduce it exactly.
func TestPNGRoundTrip(t *testing.T) {
	img := encodeRGB(t, 37, 23, 1)

	sink := imgio.NewMemorySink()
	if err := Encode(sink, img.ConstView(), EncoderOptions{}); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	src := imgio.NewMemorySource(sink.Bytes())
	got, header, err := DecodeAll(src, DecompressionOptions{})
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if header.Width != 37 || header.Height != 23 {
		t.Fatalf("header = %+v, want 37x23", header)
	}
	if !imgcore.EqualDynamicViews(got.View(), img.View()) {
		t.Fatal("round-tripped image does not match original")
	}
}

// TestPNGRoundTripSetBGR mirrors scenario S6's note that decoding with
// SetBGR=true must equal a channel-swapped copy of the original.
func TestPNGRoundTripSetBGR(t *testing.T) {
	img := encodeRGB(t, 9, 5, 2)

	sink := imgio.NewMemorySink()
	if err := Encode(sink, img.ConstView(), EncoderOptions{}); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	src := imgio.NewMemorySource(sink.Bytes())
	got, _, err := DecodeAll(src, DecompressionOptions{SetBGR: true})
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}

	width, height := int(img.Width()), int(img.Height())
	orig := img.ConstView()
	bgr := got.ConstView()
	for y := 0; y < height; y++ {
		origRow := orig.BytePtrRow(pixel.Index(y))
		bgrRow := bgr.BytePtrRow(pixel.Index(y))
		for x := 0; x < width; x++ {
			r, g, b := origRow[x*3], origRow[x*3+1], origRow[x*3+2]
			gotB, gotG, gotR := bgrRow[x*3], bgrRow[x*3+1], bgrRow[x*3+2]
			if r != gotR || g != gotG || b != gotB {
				t.Fatalf("pixel (%d,%d): got BGR (%d,%d,%d), want from RGB (%d,%d,%d)", x, y, gotB, gotG, gotR, r, g, b)
			}
		}
	}
}

// TestPNGRoundTripGray checks the single-channel path and its
// ConvertGrayToRGB expansion option.
func TestPNGRoundTripGray(t *testing.T) {
	width, height := 6, 4
	layout := imgcore.UntypedLayout{Width: pixel.Length(width), Height: pixel.Length(height), Channels: 1, BytesPerChannel: 1}
	img := imgcore.NewDynamicImage(layout, imgcore.Semantics{PixelFormat: pixel.FormatY, SampleFormat: pixel.SampleFormatUnsignedInteger})
	v := img.View()
	for y := 0; y < height; y++ {
		row := v.BytePtrRow(pixel.Index(y))
		for x := 0; x < width; x++ {
			row[x] = byte((x + y*width) * 7 % 256)
		}
	}

	sink := imgio.NewMemorySink()
	if err := Encode(sink, img.ConstView(), EncoderOptions{}); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	src := imgio.NewMemorySource(sink.Bytes())
	got, _, err := DecodeAll(src, DecompressionOptions{})
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if !imgcore.EqualDynamicViews(got.View(), img.View()) {
		t.Fatal("gray round trip mismatch")
	}

	src2 := imgio.NewMemorySource(sink.Bytes())
	rgb, _, err := DecodeAll(src2, DecompressionOptions{ConvertGrayToRGB: true})
	if err != nil {
		t.Fatalf("DecodeAll ConvertGrayToRGB: %v", err)
	}
	if rgb.Channels() != 3 {
		t.Fatalf("ConvertGrayToRGB: channels = %d, want 3", rgb.Channels())
	}
	rv := rgb.ConstView()
	for y := 0; y < height; y++ {
		row := rv.BytePtrRow(pixel.Index(y))
		for x := 0; x < width; x++ {
			want := byte((x + y*width) * 7 % 256)
			if row[x*3] != want || row[x*3+1] != want || row[x*3+2] != want {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d), want gray %d replicated", x, y, row[x*3], row[x*3+1], row[x*3+2], want)
			}
		}
	}
}

// TestDecoderPhaseOrder checks the explicit state machine rejects
// out-of-order calls.
func TestDecoderPhaseOrder(t *testing.T) {
	d := NewDecoder()
	if _, err := d.ReadHeader(false); err == nil {
		t.Fatal("ReadHeader before SetSource should fail")
	}
	if err := d.Configure(DecompressionOptions{}); err == nil {
		t.Fatal("Configure before ReadHeader should fail")
	}

	img := encodeRGB(t, 4, 4, 3)
	sink := imgio.NewMemorySink()
	if err := Encode(sink, img.ConstView(), EncoderOptions{}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := d.SetSource(imgio.NewMemorySource(sink.Bytes())); err != nil {
		t.Fatalf("SetSource: %v", err)
	}
	if err := d.SetSource(imgio.NewMemorySource(sink.Bytes())); err == nil {
		t.Fatal("second SetSource should fail")
	}
	if _, err := d.Prepare(); err == nil {
		t.Fatal("Prepare before ReadHeader/Configure should fail")
	}
	if _, err := d.ReadHeader(false); err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if err := d.Configure(DecompressionOptions{}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	dst, err := d.Prepare()
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if err := d.Decode(dst.View()); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if err := d.Decode(dst.View()); err == nil {
		t.Fatal("second Decode should fail")
	}
}

// TestReadHeaderRewind checks a rewind probe does not itself advance
// the phase past HeaderRead.
func TestReadHeaderRewind(t *testing.T) {
	img := encodeRGB(t, 3, 3, 4)
	sink := imgio.NewMemorySink()
	if err := Encode(sink, img.ConstView(), EncoderOptions{}); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	d := NewDecoder()
	if err := d.SetSource(imgio.NewMemorySource(sink.Bytes())); err != nil {
		t.Fatalf("SetSource: %v", err)
	}
	h1, err := d.ReadHeader(false)
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	h2, err := d.ReadHeader(true)
	if err != nil {
		t.Fatalf("ReadHeader rewind: %v", err)
	}
	if h1 != h2 {
		t.Fatalf("rewind probe returned different header: %+v vs %+v", h1, h2)
	}
	if err := d.Configure(DecompressionOptions{}); err != nil {
		t.Fatalf("Configure after rewind: %v", err)
	}
}

func TestEncodeInterlaceUnsupported(t *testing.T) {
	img := encodeRGB(t, 2, 2, 5)
	sink := imgio.NewMemorySink()
	if err := Encode(sink, img.ConstView(), EncoderOptions{Interlace: true}); err == nil {
		t.Fatal("expected ErrInterlaceUnsupported")
	}
}

func TestDecodeRejectsBadSignature(t *testing.T) {
	src := imgio.NewMemorySource([]byte("not a png"))
	d := NewDecoder()
	if err := d.SetSource(src); err != nil {
		t.Fatalf("SetSource: %v", err)
	}
	if _, err := d.ReadHeader(false); err == nil {
		t.Fatal("expected signature error")
	}
}

// TestDecodeRejectsPalette checks that a color-type-3 (palette) IHDR is
// surfaced as ErrDecodeFailure rather than accepted and later panicking
// in resolvePixel, which assumed at least 3 samples per pixel.
func TestDecodeRejectsPalette(t *testing.T) {
	stream := rawIHDRStream(4, 4, 8, 3)
	d := NewDecoder()
	if err := d.SetSource(imgio.NewMemorySource(stream)); err != nil {
		t.Fatalf("SetSource: %v", err)
	}
	if _, err := d.ReadHeader(false); err == nil {
		t.Fatal("expected ReadHeader to reject a palette image")
	}
}

// TestPNGSetBackground checks the zero-background compositing variant:
// each RGBA pixel's color channels are scaled by alpha/max against a
// black background, and the decoded image drops the alpha channel.
func TestPNGSetBackground(t *testing.T) {
	width, height := 3, 2
	layout := imgcore.UntypedLayout{Width: pixel.Length(width), Height: pixel.Length(height), Channels: 4, BytesPerChannel: 1}
	img := imgcore.NewDynamicImage(layout, imgcore.Semantics{PixelFormat: pixel.FormatRGBA, SampleFormat: pixel.SampleFormatUnsignedInteger})
	v := img.View()
	pixels := [][4]byte{
		{200, 100, 50, 255}, {200, 100, 50, 0}, {200, 100, 50, 128},
		{10, 20, 30, 64}, {255, 255, 255, 255}, {0, 0, 0, 0},
	}
	for y := 0; y < height; y++ {
		row := v.BytePtrRow(pixel.Index(y))
		for x := 0; x < width; x++ {
			p := pixels[y*width+x]
			copy(row[x*4:x*4+4], p[:])
		}
	}

	sink := imgio.NewMemorySink()
	if err := Encode(sink, img.ConstView(), EncoderOptions{}); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	src := imgio.NewMemorySource(sink.Bytes())
	got, _, err := DecodeAll(src, DecompressionOptions{SetBackground: true})
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if got.Channels() != 3 {
		t.Fatalf("SetBackground: channels = %d, want 3 (alpha dropped)", got.Channels())
	}
	rv := got.ConstView()
	for y := 0; y < height; y++ {
		row := rv.BytePtrRow(pixel.Index(y))
		for x := 0; x < width; x++ {
			orig := pixels[y*width+x]
			wantR := compositeZeroBackground(uint16(orig[0]), uint16(orig[3]), 255)
			wantG := compositeZeroBackground(uint16(orig[1]), uint16(orig[3]), 255)
			wantB := compositeZeroBackground(uint16(orig[2]), uint16(orig[3]), 255)
			gotR, gotG, gotB := row[x*3], row[x*3+1], row[x*3+2]
			if uint16(gotR) != wantR || uint16(gotG) != wantG || uint16(gotB) != wantB {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d), want (%d,%d,%d)", x, y, gotR, gotG, gotB, wantR, wantG, wantB)
			}
		}
	}
}
