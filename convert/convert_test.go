package convert

import (
	"testing"

	"github.com/deepteams/imgcore"
	"github.com/deepteams/imgcore/pixel"
)

func newRGB3x3(t *testing.T) imgcore.Image[uint8, pixel.RGB[uint8]] {
	t.Helper()
	img := imgcore.NewImage[uint8, pixel.RGB[uint8]](imgcore.TypedLayout{Width: 3, Height: 3})
	v := img.View()
	idx := 1
	for y := pixel.Index(0); y < 3; y++ {
		for x := pixel.Index(0); x < 3; x++ {
			r := uint8(idx * 10)
			v.SetPixel(x, y, pixel.RGB[uint8]{R: r, G: r + 1, B: r + 2})
			idx++
		}
	}
	return img
}

// S2 — RGB->Y on a 3x3 image at the image level.
func TestRGBToYImageScenarioS2(t *testing.T) {
	img := newRGB3x3(t)
	out := RGBToY[uint8](img.ConstView())
	want := []uint8{11, 21, 31, 41, 51, 61, 71, 81, 91}
	v := out.View()
	idx := 0
	for y := pixel.Index(0); y < 3; y++ {
		for x := pixel.Index(0); x < 3; x++ {
			if got := v.Pixel(x, y).V; got != want[idx] {
				t.Errorf("(%d,%d) = %d, want %d", x, y, got, want[idx])
			}
			idx++
		}
	}
}

// S3 — RGB->RGBA with constant alpha 255 at the image level.
func TestRGBToRGBAImageScenarioS3(t *testing.T) {
	img := newRGB3x3(t)
	out := RGBToRGBA[uint8](img.ConstView(), 255)
	v := out.View()
	for y := pixel.Index(0); y < 3; y++ {
		for x := pixel.Index(0); x < 3; x++ {
			src := img.ConstView().Pixel(x, y)
			dst := v.Pixel(x, y)
			if dst.R != src.R || dst.G != src.G || dst.B != src.B || dst.A != 255 {
				t.Errorf("(%d,%d): %+v -> %+v, alpha should be 255", x, y, src, dst)
			}
		}
	}
}

func TestDynamicConvertRGBToGray(t *testing.T) {
	src := imgcore.NewDynamicImage(
		imgcore.UntypedLayout{Width: 2, Height: 1, Channels: 3, BytesPerChannel: 1},
		imgcore.Semantics{PixelFormat: pixel.FormatRGB, SampleFormat: pixel.SampleFormatUnsignedInteger},
	)
	sv := src.View()
	imgcore.SetPixelAt[uint8, pixel.RGB[uint8]](sv, 0, 0, pixel.RGB[uint8]{R: 10, G: 20, B: 30})
	imgcore.SetPixelAt[uint8, pixel.RGB[uint8]](sv, 1, 0, pixel.RGB[uint8]{R: 100, G: 150, B: 200})

	dst, err := DynamicConvert[uint8](src.ConstView(), pixel.FormatY, pixel.SampleFormatUnsignedInteger, 0)
	if err != nil {
		t.Fatalf("DynamicConvert: %v", err)
	}
	got0, _ := imgcore.ConstPixelAt[uint8, pixel.Y[uint8]](dst.ConstView(), 0, 0)
	want0 := pixel.RGBToY(pixel.RGB[uint8]{R: 10, G: 20, B: 30})
	if got0.V != want0.V {
		t.Errorf("pixel 0: %d, want %d", got0.V, want0.V)
	}
}

func TestDynamicConvertAddsAlpha(t *testing.T) {
	src := imgcore.NewDynamicImage(
		imgcore.UntypedLayout{Width: 1, Height: 1, Channels: 3, BytesPerChannel: 1},
		imgcore.Semantics{PixelFormat: pixel.FormatRGB, SampleFormat: pixel.SampleFormatUnsignedInteger},
	)
	imgcore.SetPixelAt[uint8, pixel.RGB[uint8]](src.View(), 0, 0, pixel.RGB[uint8]{R: 1, G: 2, B: 3})

	dst, err := DynamicConvert[uint8](src.ConstView(), pixel.FormatRGBA, pixel.SampleFormatUnsignedInteger, 255)
	if err != nil {
		t.Fatalf("DynamicConvert: %v", err)
	}
	got, _ := imgcore.ConstPixelAt[uint8, pixel.RGBA[uint8]](dst.ConstView(), 0, 0)
	want := pixel.RGBA[uint8]{R: 1, G: 2, B: 3, A: 255}
	if !got.Equal(want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestDynamicConvertShapeMismatch(t *testing.T) {
	src := imgcore.NewDynamicImage(
		imgcore.UntypedLayout{Width: 2, Height: 2, Channels: 3, BytesPerChannel: 1},
		imgcore.Semantics{PixelFormat: pixel.FormatRGB, SampleFormat: pixel.SampleFormatUnsignedInteger},
	)
	dst := imgcore.NewDynamicImage(
		imgcore.UntypedLayout{Width: 3, Height: 3, Channels: 1, BytesPerChannel: 1},
		imgcore.Semantics{PixelFormat: pixel.FormatY, SampleFormat: pixel.SampleFormatUnsignedInteger},
	)
	if err := DynamicConvertInto[uint8](dst.View(), src.ConstView(), 0); err == nil {
		t.Fatal("expected ErrShapeMismatch")
	}
}
