package border_test

import (
	"testing"

	"github.com/deepteams/imgcore"
	"github.com/deepteams/imgcore/border"
	"github.com/deepteams/imgcore/pixel"
)

func newYImage(rows [][]uint8) imgcore.View[uint8, pixel.Y[uint8]] {
	h := len(rows)
	w := len(rows[0])
	buf := make([]byte, w*h)
	v := imgcore.NewView[uint8, pixel.Y[uint8]](buf, imgcore.TypedLayout{Width: pixel.Length(w), Height: pixel.Length(h)})
	for y, row := range rows {
		for x, val := range row {
			v.SetPixel(pixel.Index(x), pixel.Index(y), pixel.Y[uint8]{V: val})
		}
	}
	return v
}

// S1 — access on a 3x3 Y image.
func TestScenarioS1Access(t *testing.T) {
	img := newYImage([][]uint8{
		{10, 20, 30},
		{40, 50, 60},
		{70, 80, 90},
	})

	bilinearCases := []struct {
		fx, fy float64
		want   uint8
	}{
		{0.5, 0.5, 30},
		{1.5, 0.5, 40},
		{0.5, 1.5, 60},
		{1.5, 1.5, 70},
	}
	for _, c := range bilinearCases {
		got := border.GetInterp[uint8, pixel.Y[uint8]](img, border.Bilinear, border.Replicated, c.fx, c.fy)
		if got.V != c.want {
			t.Errorf("bilinear(%v,%v) = %d, want %d", c.fx, c.fy, got.V, c.want)
		}
	}

	if got := border.GetInterp[uint8, pixel.Y[uint8]](img, border.NearestNeighbor, border.Replicated, 0.5, 0.5); got.V != 10 {
		t.Errorf("nearest(0.5,0.5) = %d, want 10", got.V)
	}

	if got := border.Get[uint8, pixel.Y[uint8]](img, border.Replicated, -1, 1); got.V != 40 {
		t.Errorf("replicated(-1,1) = %d, want 40", got.V)
	}
	if got := border.Get[uint8, pixel.Y[uint8]](img, border.ZeroPadding, -1, 1); got.V != 0 {
		t.Errorf("zero-padding(-1,1) = %d, want 0", got.V)
	}
}

// Property 12: ZeroPadding returns the zero pixel for any out-of-range
// coordinate.
func TestZeroPaddingOutOfRange(t *testing.T) {
	img := newYImage([][]uint8{{1, 2}, {3, 4}})
	cases := [][2]pixel.Index{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {-5, 5}}
	for _, c := range cases {
		got := border.Get[uint8, pixel.Y[uint8]](img, border.ZeroPadding, c[0], c[1])
		if got.V != 0 {
			t.Errorf("ZeroPadding(%d,%d) = %d, want 0", c[0], c[1], got.V)
		}
	}
}

// Property 13: Replicated returns the corner pixel for all four corner
// clamp cases.
func TestReplicatedCorners(t *testing.T) {
	img := newYImage([][]uint8{{1, 2}, {3, 4}})
	cases := []struct {
		x, y pixel.Index
		want uint8
	}{
		{-1, -1, 1}, // top-left
		{5, -1, 2},  // top-right
		{-1, 5, 3},  // bottom-left
		{5, 5, 4},   // bottom-right
	}
	for _, c := range cases {
		got := border.Get[uint8, pixel.Y[uint8]](img, border.Replicated, c.x, c.y)
		if got.V != c.want {
			t.Errorf("Replicated(%d,%d) = %d, want %d", c.x, c.y, got.V, c.want)
		}
	}
}

// Property 9: bilinear at integer coordinates is exact.
func TestBilinearExactAtIntegerCoordinates(t *testing.T) {
	img := newYImage([][]uint8{{10, 20, 30}, {40, 50, 60}, {70, 80, 90}})
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := img.Pixel(pixel.Index(x), pixel.Index(y))
			got := border.GetInterp[uint8, pixel.Y[uint8]](img, border.Bilinear, border.Replicated, float64(x), float64(y))
			if got.V != want.V {
				t.Errorf("bilinear(%d,%d) = %d, want %d", x, y, got.V, want.V)
			}
		}
	}
}

func TestRelativeAccessor(t *testing.T) {
	img := newYImage([][]uint8{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	rel := border.RelativeAccessor[uint8, pixel.Y[uint8]]{Base: img, Policy: border.Replicated, OX: 1, OY: 1}
	got := border.Get[uint8, pixel.Y[uint8]](rel, border.Unchecked, 0, 0)
	want := border.Get[uint8, pixel.Y[uint8]](img, border.Replicated, 1, 1)
	if got.V != want.V {
		t.Errorf("relative(0,0) = %d, want %d", got.V, want.V)
	}
}
