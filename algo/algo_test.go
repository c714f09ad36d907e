package algo

import (
	"math"
	"testing"

	"github.com/deepteams/imgcore"
	"github.com/deepteams/imgcore/border"
	"github.com/deepteams/imgcore/kernel"
	"github.com/deepteams/imgcore/pixel"
)

func newY3x3(t *testing.T) imgcore.Image[uint8, pixel.Y[uint8]] {
	t.Helper()
	img := imgcore.NewImage[uint8, pixel.Y[uint8]](imgcore.TypedLayout{Width: 3, Height: 3})
	vals := [3][3]uint8{{10, 20, 30}, {40, 50, 60}, {70, 80, 90}}
	v := img.View()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			v.SetPixel(pixel.Index(x), pixel.Index(y), pixel.Y[uint8]{V: vals[y][x]})
		}
	}
	return img
}

// S4 — resample bilinear 3x3 -> 6x6.
func TestResampleBilinearScenarioS4(t *testing.T) {
	img := newY3x3(t)
	want := [6][6]uint8{
		{10, 15, 20, 25, 30, 30},
		{25, 30, 35, 40, 45, 45},
		{40, 45, 50, 55, 60, 60},
		{55, 60, 65, 70, 75, 75},
		{70, 75, 80, 85, 90, 90},
		{70, 75, 80, 85, 90, 90},
	}
	out := ResampleBilinear[uint8, pixel.Y[uint8]](img.ConstView(), 6, 6)
	v := out.View()
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			got := v.Pixel(pixel.Index(x), pixel.Index(y)).V
			if got != want[y][x] {
				t.Errorf("(%d,%d) = %d, want %d", x, y, got, want[y][x])
			}
		}
	}
}

// S5 — resample nearest 3x3 -> 6x6 duplicates each source pixel into a
// 2x2 block.
func TestResampleNearestScenarioS5(t *testing.T) {
	img := newY3x3(t)
	out := Resample[uint8, pixel.Y[uint8]](img.ConstView(), 6, 6, border.NearestNeighbor)
	v := out.View()
	src := img.ConstView()
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := src.Pixel(pixel.Index(x/2), pixel.Index(y/2)).V
			got := v.Pixel(pixel.Index(x), pixel.Index(y)).V
			if got != want {
				t.Errorf("(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

// Property 11: resampling (w,h) -> (w,h) with bilinear and the
// identity grid reproduces the source exactly.
func TestResampleIdentity(t *testing.T) {
	img := newY3x3(t)
	out := ResampleBilinear[uint8, pixel.Y[uint8]](img.ConstView(), 3, 3)
	if !imgcore.EqualImages(img, out) {
		t.Fatal("identity resample did not reproduce the source")
	}
}

// Property 10: convolving a uniform-valued image with a normalized
// odd-length kernel reproduces the same uniform value.
func TestConvolutionUniformImageInvariant(t *testing.T) {
	img := imgcore.NewImage[uint8, pixel.Y[uint8]](imgcore.TypedLayout{Width: 5, Height: 5})
	ForEachPixel(img.View(), func(pixel.Y[uint8]) pixel.Y[uint8] { return pixel.Y[uint8]{V: 42} })
	k := kernel.New(1.0, 2.0, 1.0).Normalized()
	outX := ConvolutionX[uint8, pixel.Y[uint8]](img.ConstView(), k, border.Replicated)
	outY := ConvolutionY[uint8, pixel.Y[uint8]](img.ConstView(), k, border.Replicated)
	for _, out := range []imgcore.Image[uint8, pixel.Y[uint8]]{outX, outY} {
		v := out.View()
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				if got := v.Pixel(pixel.Index(x), pixel.Index(y)).V; got != 42 {
					t.Errorf("(%d,%d) = %d, want 42", x, y, got)
				}
			}
		}
	}
}

// The integer path's right shift truncates, so its result equals the
// exact float convolution (computed on a float64 copy) rounded down.
func TestConvolutionXIntMatchesFloat(t *testing.T) {
	img := newY3x3(t)
	kf := kernel.New(0.25, 0.5, 0.25)
	ki := kernel.Integer[int32](kf, 256)
	imgF := TransformPixels[uint8, pixel.Y[uint8], float64, pixel.Y[float64]](img.ConstView(), func(p pixel.Y[uint8]) pixel.Y[float64] { return pixel.Y[float64]{V: float64(p.V)} })
	wantImg := ConvolutionX[float64, pixel.Y[float64]](imgF.ConstView(), kf, border.Replicated)
	gotImg := ConvolutionXInt[uint8, pixel.Y[uint8], int32](img.ConstView(), ki, 8, border.Replicated)
	wv, gv := wantImg.View(), gotImg.View()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := uint8(math.Floor(wv.Pixel(pixel.Index(x), pixel.Index(y)).V))
			if got := gv.Pixel(pixel.Index(x), pixel.Index(y)).V; got != want {
				t.Fatalf("(%d,%d): integer convolution = %d, want floor of float convolution %d", x, y, got, want)
			}
		}
	}
}

// Property 7/8: clone and view agree, and clone of a sub-region equals
// the clone of a view of that sub-region.
func TestCloneViewAgree(t *testing.T) {
	img := newY3x3(t)
	if !imgcore.EqualImages(img, Clone(img.ConstView())) {
		t.Fatal("clone(I) != I")
	}
	sub := ConstViewRegion(img.ConstView(), 1, 1, 2, 2)
	cloned := Clone(sub)
	regionClone := CloneRegion[uint8, pixel.Y[uint8]](img.ConstView(), 1, 1, 2, 2)
	if !imgcore.EqualImages(cloned, regionClone) {
		t.Fatal("clone(view(I, region)) != clone(I, region)")
	}
	if cloned.Pixel(0, 0).V != 50 || cloned.Pixel(1, 1).V != 90 {
		t.Errorf("region clone has wrong contents: %+v", cloned)
	}
}

func TestCrop(t *testing.T) {
	img := newY3x3(t)
	Crop(&img, 1, 1, 2, 2)
	if img.Width() != 2 || img.Height() != 2 {
		t.Fatalf("cropped shape = %dx%d, want 2x2", img.Width(), img.Height())
	}
	if img.Pixel(0, 0).V != 50 || img.Pixel(1, 1).V != 90 {
		t.Errorf("crop has wrong contents: %+v", img)
	}
}

func TestForEachPixel(t *testing.T) {
	img := newY3x3(t)
	ForEachPixel(img.View(), func(p pixel.Y[uint8]) pixel.Y[uint8] { return pixel.Y[uint8]{V: p.V + 1} })
	if img.Pixel(0, 0).V != 11 || img.Pixel(2, 2).V != 91 {
		t.Errorf("for-each did not increment every pixel: %+v", img)
	}
}

func TestTransformPixels(t *testing.T) {
	img := newY3x3(t)
	out := TransformPixels[uint8, pixel.Y[uint8], uint8, pixel.RGB[uint8]](img.ConstView(), pixel.YToRGB[uint8])
	p := out.Pixel(0, 0)
	if p.R != 10 || p.G != 10 || p.B != 10 {
		t.Errorf("transform = %+v, want gray(10)", p)
	}
}
