package pixel

import "testing"

func TestFormatChannels(t *testing.T) {
	cases := []struct {
		f    Format
		want int
	}{
		{FormatY, 1}, {FormatYA, 2}, {FormatRGB, 3}, {FormatBGR, 3},
		{FormatRGBA, 4}, {FormatBGRA, 4}, {FormatARGB, 4}, {FormatABGR, 4},
		{FormatUnknown, 0},
	}
	for _, c := range cases {
		if got := c.f.Channels(); got != c.want {
			t.Errorf("%v.Channels() = %d, want %d", c.f, got, c.want)
		}
	}
}

func TestEqualFormat(t *testing.T) {
	if !EqualFormat(FormatRGB, FormatRGB) {
		t.Error("equal formats should compare equal")
	}
	if !EqualFormat(FormatRGB, FormatUnknown) {
		t.Error("Unknown should be a wildcard")
	}
	if !EqualFormat(FormatUnknown, FormatBGR) {
		t.Error("Unknown should be a wildcard on either side")
	}
	if EqualFormat(FormatRGB, FormatBGR) {
		t.Error("distinct non-Unknown formats should not compare equal")
	}
}

func TestPixelArithmetic(t *testing.T) {
	a := RGB[uint8]{R: 10, G: 20, B: 30}
	b := RGB[uint8]{R: 1, G: 2, B: 3}
	if got := a.Add(b); !got.Equal(RGB[uint8]{11, 22, 33}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); !got.Equal(RGB[uint8]{9, 18, 27}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.MulScalar(2); !got.Equal(RGB[uint8]{20, 40, 60}) {
		t.Errorf("MulScalar = %+v", got)
	}
	if got := a.DivScalar(2); !got.Equal(RGB[uint8]{5, 10, 15}) {
		t.Errorf("DivScalar = %+v", got)
	}
}

func TestPixelNeg(t *testing.T) {
	a := RGB[int16]{R: 10, G: -5, B: 0}
	want := RGB[int16]{R: -10, G: 5, B: 0}
	if got := a.Neg(); !got.Equal(want) {
		t.Errorf("Neg = %+v, want %+v", got, want)
	}
}

func TestYDecay(t *testing.T) {
	p := NewY[uint8](42)
	if p.Scalar() != 42 {
		t.Errorf("Scalar() = %d, want 42", p.Scalar())
	}
}

func TestShifts(t *testing.T) {
	p := RGB[uint8]{R: 1, G: 2, B: 4}
	got := ShiftLeft(p, 2)
	want := RGB[uint8]{R: 4, G: 8, B: 16}
	if !got.Equal(want) {
		t.Errorf("ShiftLeft = %+v, want %+v", got, want)
	}
	back := ShiftRight(got, 2)
	if !back.Equal(p) {
		t.Errorf("ShiftRight(ShiftLeft(p)) = %+v, want %+v", back, p)
	}
}

func TestRoundRGB(t *testing.T) {
	p := RGB[float32]{R: 1.5, G: -1.5, B: 2.4}
	got := RoundRGB[int16](p)
	want := RGB[int16]{R: 2, G: -2, B: 2}
	if !got.Equal(want) {
		t.Errorf("RoundRGB = %+v, want %+v", got, want)
	}
}
