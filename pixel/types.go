// Package pixel implements the fixed-layout pixel algebra: the eight
// named color-semantics pixel types, their arithmetic, and the
// conversion matrix between them.
//
// Distances and indices that carry dimensional meaning are represented
// as distinct named types rather than raw ints, so that a byte offset
// can never be silently added to a pixel count.
package pixel

import "fmt"

// Index is a signed pixel coordinate. It may be negative, e.g. when used
// through a relative accessor.
type Index int32

// Length is a non-negative pixel count (width or height).
type Length int32

// Stride is a non-negative byte distance between the start of one row
// and the start of the next.
type Stride int64

// Bytes is a byte count or byte offset.
type Bytes int64

// Add returns i+n.
func (i Index) Add(n Index) Index { return i + n }

// Sub returns i-n.
func (i Index) Sub(n Index) Index { return i - n }

// InBounds reports whether i lies in [0, n).
func (i Index) InBounds(n Length) bool {
	return i >= 0 && Length(i) < n
}

// Clamp clamps i to [0, n-1]. n must be > 0.
func (i Index) Clamp(n Length) Index {
	if i < 0 {
		return 0
	}
	if Length(i) >= n {
		return Index(n - 1)
	}
	return i
}

// Mul returns the Bytes product of a Length and a per-element byte size.
func (l Length) Mul(perElement Bytes) Bytes {
	return Bytes(l) * perElement
}

// Format is the closed set of pixel-format tags. Unknown is a genuine
// member: it participates in equality and conversion as a wildcard that
// takes on the role of the other operand.
type Format int

const (
	FormatUnknown Format = iota
	FormatY
	FormatYA
	FormatRGB
	FormatBGR
	FormatRGBA
	FormatBGRA
	FormatARGB
	FormatABGR
	FormatYCbCr
	FormatCIELab
	FormatICCLab
	FormatCMYK
	FormatYCCK
)

var formatNames = [...]string{
	FormatUnknown: "Unknown",
	FormatY:       "Y",
	FormatYA:      "YA",
	FormatRGB:     "RGB",
	FormatBGR:     "BGR",
	FormatRGBA:    "RGBA",
	FormatBGRA:    "BGRA",
	FormatARGB:    "ARGB",
	FormatABGR:    "ABGR",
	FormatYCbCr:   "YCbCr",
	FormatCIELab:  "CIELab",
	FormatICCLab:  "ICCLab",
	FormatCMYK:    "CMYK",
	FormatYCCK:    "YCCK",
}

func (f Format) String() string {
	if int(f) < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Channels returns the channel count fixed by f, or 0 if f is Unknown or
// has no fixed channel count (CIELab/ICCLab act as 3-channel, CMYK/YCCK
// as 4-channel).
func (f Format) Channels() int {
	switch f {
	case FormatY:
		return 1
	case FormatYA:
		return 2
	case FormatRGB, FormatBGR, FormatYCbCr, FormatCIELab, FormatICCLab:
		return 3
	case FormatRGBA, FormatBGRA, FormatARGB, FormatABGR, FormatCMYK, FormatYCCK:
		return 4
	default:
		return 0
	}
}

// EqualFormat reports whether a and b are compatible under the Unknown
// wildcard rule: equal, or at least one of them Unknown.
func EqualFormat(a, b Format) bool {
	return a == b || a == FormatUnknown || b == FormatUnknown
}

// ResolveFormat returns whichever of a, b is non-Unknown, preferring a
// when both are non-Unknown (callers are expected to have already
// checked EqualFormat). Returns Unknown if both are Unknown.
func ResolveFormat(a, b Format) Format {
	if a != FormatUnknown {
		return a
	}
	return b
}

// SampleFormat is the closed set of element-type families.
type SampleFormat int

const (
	SampleFormatUnknown SampleFormat = iota
	SampleFormatUnsignedInteger
	SampleFormatSignedInteger
	SampleFormatFloatingPoint
)

func (s SampleFormat) String() string {
	switch s {
	case SampleFormatUnsignedInteger:
		return "UnsignedInteger"
	case SampleFormatSignedInteger:
		return "SignedInteger"
	case SampleFormatFloatingPoint:
		return "FloatingPoint"
	default:
		return "Unknown"
	}
}

// EqualSampleFormat reports whether a and b are compatible under the
// Unknown wildcard rule.
func EqualSampleFormat(a, b SampleFormat) bool {
	return a == b || a == SampleFormatUnknown || b == SampleFormatUnknown
}
