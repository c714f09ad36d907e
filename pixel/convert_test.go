package pixel

import "testing"

// S2 — RGB->Y on a 3x3 image: pixel (i*10+0, i*10+1, i*10+2) for i=1..9
// yields round(0.299*r + 0.587*g + 0.114*b).
func TestRGBToYScenarioS2(t *testing.T) {
	want := []uint8{11, 21, 31, 41, 51, 61, 71, 81, 91}
	for i := 1; i <= 9; i++ {
		r := uint8(i * 10)
		g := uint8(i*10 + 1)
		b := uint8(i*10 + 2)
		y := RGBToY(RGB[uint8]{R: r, G: g, B: b})
		if y.V != want[i-1] {
			t.Errorf("i=%d: RGBToY(%d,%d,%d) = %d, want %d", i, r, g, b, y.V, want[i-1])
		}
	}
}

// S3 — RGB->RGBA with constant alpha 255 is the identity plus a fourth
// channel equal to 255 throughout.
func TestRGBToRGBAScenarioS3(t *testing.T) {
	p := RGB[uint8]{R: 10, G: 20, B: 30}
	got := RGBToRGBA(p, 255)
	want := RGBA[uint8]{R: 10, G: 20, B: 30, A: 255}
	if !got.Equal(want) {
		t.Errorf("RGBToRGBA = %+v, want %+v", got, want)
	}
}

func TestRoundTripRGBBGR(t *testing.T) {
	p := RGB[uint8]{R: 1, G: 2, B: 3}
	back := BGRToRGB(RGBToBGR(p))
	if !back.Equal(p) {
		t.Errorf("RGB->BGR->RGB = %+v, want %+v", back, p)
	}
}

func TestRoundTripRGBAARGB(t *testing.T) {
	p := RGBA[uint8]{R: 1, G: 2, B: 3, A: 4}
	back := ARGBToRGBA(RGBAToARGB(p))
	if !back.Equal(p) {
		t.Errorf("RGBA->ARGB->RGBA = %+v, want %+v", back, p)
	}
}

func TestRoundTripRGBAABGR(t *testing.T) {
	p := RGBA[uint8]{R: 1, G: 2, B: 3, A: 4}
	back := ABGRToRGBA(RGBAToABGR(p))
	if !back.Equal(p) {
		t.Errorf("RGBA->ABGR->RGBA = %+v, want %+v", back, p)
	}
}

// RGB -> Y -> RGB is lossy, but the luma of the round-tripped result
// must equal the luma of the input (spec.md §8 property 6).
func TestLossyRoundTripPreservesLuma(t *testing.T) {
	p := RGB[uint8]{R: 200, G: 50, B: 10}
	y := RGBToY(p)
	back := YToRGB(y)
	if RGBToY(back).V != y.V {
		t.Errorf("luma not preserved: got %d, want %d", RGBToY(back).V, y.V)
	}
}

func TestYAToYDropsAlpha(t *testing.T) {
	p := YA[uint8]{Y: 7, A: 200}
	got := YAToY(p)
	if got.V != 7 {
		t.Errorf("YAToY = %d, want 7", got.V)
	}
}

func TestAlphaCarriedThroughColorToYA(t *testing.T) {
	p := RGBA[uint8]{R: 10, G: 20, B: 30, A: 128}
	got := RGBAToYA(p)
	if got.A != 128 {
		t.Errorf("alpha not carried: got %d, want 128", got.A)
	}
}
