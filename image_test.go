package imgcore

import (
	"testing"

	"github.com/deepteams/imgcore/pixel"
)

func fillRGB(im Image[uint8, pixel.RGB[uint8]]) {
	v := im.View()
	for y := pixel.Index(0); y < pixel.Index(im.Height()); y++ {
		for x := pixel.Index(0); x < pixel.Index(im.Width()); x++ {
			v.SetPixel(x, y, pixel.NewRGB(uint8(x), uint8(y), uint8(x+y)))
		}
	}
}

func TestImageAllocateAndAccess(t *testing.T) {
	im := NewImage[uint8, pixel.RGB[uint8]](TypedLayout{Width: 3, Height: 2})
	fillRGB(im)
	if got, want := im.Pixel(2, 1), pixel.NewRGB[uint8](2, 1, 3); got != want {
		t.Fatalf("Pixel(2,1) = %+v, want %+v", got, want)
	}
	if im.IsEmpty() {
		t.Fatal("freshly allocated image should not be empty")
	}
}

func TestImageCopyIsIndependent(t *testing.T) {
	im := NewImage[uint8, pixel.RGB[uint8]](TypedLayout{Width: 2, Height: 2})
	fillRGB(im)
	dup := im.Copy()
	dup.SetPixel(0, 0, pixel.NewRGB[uint8](255, 255, 255))
	if im.Pixel(0, 0) == dup.Pixel(0, 0) {
		t.Fatal("Copy should not alias the source buffer")
	}
	if !EqualViews(im.View(), im.View()) {
		t.Fatal("a view should equal itself")
	}
}

func TestImageMoveFrom(t *testing.T) {
	src := NewImage[uint8, pixel.RGB[uint8]](TypedLayout{Width: 2, Height: 2})
	fillRGB(src)
	want := src.Pixel(1, 1)

	var dst Image[uint8, pixel.RGB[uint8]]
	dst.MoveFrom(&src)

	if !src.IsEmpty() {
		t.Fatal("source should be empty after MoveFrom")
	}
	if got := dst.Pixel(1, 1); got != want {
		t.Fatalf("dst.Pixel(1,1) = %+v, want %+v", got, want)
	}
}

func TestImageReallocateNoOpOnUnchangedLayout(t *testing.T) {
	im := NewImage[uint8, pixel.RGB[uint8]](TypedLayout{Width: 4, Height: 4})
	fillRGB(im)
	before := im.Pixel(2, 2)
	if err := im.Reallocate(TypedLayout{Width: 4, Height: 4}); err != nil {
		t.Fatalf("Reallocate: %v", err)
	}
	if got := im.Pixel(2, 2); got != before {
		t.Fatal("unchanged-layout Reallocate should be a no-op, but contents changed")
	}
}

func TestImageReallocateStrideChangeForcesRealloc(t *testing.T) {
	im := NewImage[uint8, pixel.RGB[uint8]](TypedLayout{Width: 4, Height: 4})
	fillRGB(im)
	if err := im.Reallocate(TypedLayout{Width: 4, Height: 4, StrideBytes: 32}); err != nil {
		t.Fatalf("Reallocate: %v", err)
	}
	if im.StrideBytes() != 32 {
		t.Fatalf("StrideBytes = %d, want 32 after a stride-only layout change", im.StrideBytes())
	}
}

func TestImageFromRawPartsRejectsReallocateByDefault(t *testing.T) {
	buf := make([]byte, 3*3*3)
	im := NewImageFromRawParts[uint8, pixel.RGB[uint8]](buf, TypedLayout{Width: 3, Height: 3}, DefaultAllocator{})
	if err := im.Reallocate(TypedLayout{Width: 6, Height: 6}); err == nil {
		t.Fatal("Reallocate on a raw-parts image should fail without WithAllowViewReallocation")
	}
	if err := im.Reallocate(TypedLayout{Width: 6, Height: 6}, WithAllowViewReallocation(true)); err != nil {
		t.Fatalf("Reallocate with WithAllowViewReallocation: %v", err)
	}
}

func TestImageRelinquishDataOwnership(t *testing.T) {
	im := NewImage[uint8, pixel.RGB[uint8]](TypedLayout{Width: 2, Height: 2})
	fillRGB(im)
	buf, layout := im.RelinquishDataOwnership()
	if len(buf) == 0 {
		t.Fatal("relinquished buffer should be non-empty")
	}
	if layout.Width != 2 || layout.Height != 2 {
		t.Fatalf("relinquished layout = %+v, want 2x2", layout)
	}
	if !im.IsEmpty() {
		t.Fatal("image should be empty after RelinquishDataOwnership")
	}
}

func TestNewImageFromViewDeepCopies(t *testing.T) {
	src := NewImage[uint8, pixel.RGB[uint8]](TypedLayout{Width: 3, Height: 3})
	fillRGB(src)
	cloned := NewImageFromView[uint8, pixel.RGB[uint8]](src.ConstView(), DefaultAllocator{})
	if !EqualImages(src, cloned) {
		t.Fatal("NewImageFromView should reproduce the source pixel-for-pixel")
	}
	cloned.SetPixel(0, 0, pixel.NewRGB[uint8](9, 9, 9))
	if EqualImages(src, cloned) {
		t.Fatal("NewImageFromView should not alias the source buffer")
	}
}
