package imgcore

import (
	"testing"

	"github.com/deepteams/imgcore/pixel"
)

func TestTypedLayoutResolve(t *testing.T) {
	l := TypedLayout{Width: 4, Height: 3}
	resolved := l.Resolve(3) // 3 bytes per pixel, e.g. RGB[uint8]
	if got, want := resolved.RowBytes(3), pixel.Bytes(12); got != want {
		t.Fatalf("RowBytes = %d, want %d", got, want)
	}
	if got, want := resolved.TotalBytes(3), pixel.Bytes(36); got != want {
		t.Fatalf("TotalBytes = %d, want %d", got, want)
	}
	if !resolved.IsPacked(3) {
		t.Fatal("packed layout should report IsPacked")
	}
}

func TestTypedLayoutExplicitStride(t *testing.T) {
	l := TypedLayout{Width: 4, Height: 2, StrideBytes: 20}
	resolved := l.Resolve(3)
	if resolved.StrideBytes != 20 {
		t.Fatalf("StrideBytes = %d, want 20 (explicit stride wider than packed row)", resolved.StrideBytes)
	}
	if resolved.IsPacked(3) {
		t.Fatal("padded layout should not report IsPacked")
	}
	if got, want := resolved.TotalBytes(3), pixel.Bytes(40); got != want {
		t.Fatalf("TotalBytes = %d, want %d", got, want)
	}
}

func TestUntypedLayoutResolve(t *testing.T) {
	l := UntypedLayout{Width: 5, Height: 2, Channels: 4, BytesPerChannel: 1}
	resolved := l.Resolve()
	if got, want := resolved.BytesPerPixel(), pixel.Bytes(4); got != want {
		t.Fatalf("BytesPerPixel = %d, want %d", got, want)
	}
	if got, want := resolved.RowBytes(), pixel.Bytes(20); got != want {
		t.Fatalf("RowBytes = %d, want %d", got, want)
	}
	if got, want := resolved.TotalBytes(), pixel.Bytes(40); got != want {
		t.Fatalf("TotalBytes = %d, want %d", got, want)
	}
	if !resolved.IsPacked() {
		t.Fatal("packed layout should report IsPacked")
	}
}

func TestEqualSemanticsUnknownWildcard(t *testing.T) {
	known := Semantics{PixelFormat: pixel.FormatRGB, SampleFormat: pixel.SampleFormatUnsignedInteger}
	unknown := Semantics{}
	if !EqualSemantics(known, unknown) {
		t.Fatal("Unknown semantics should be compatible with any concrete semantics")
	}
	other := Semantics{PixelFormat: pixel.FormatY, SampleFormat: pixel.SampleFormatUnsignedInteger}
	if EqualSemantics(known, other) {
		t.Fatal("RGB and Y semantics should not be equal")
	}
}
