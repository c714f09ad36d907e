package pixel

import (
	"encoding/binary"
	"math"
)

// readSample decodes one sample of type T from the front of b. Integer
// samples wider than one byte, and both floating-point widths, are
// stored little-endian — matching spec.md §6's "byte-swapped to host
// endianness" contract (the host here is assumed little-endian, as the
// teacher's own bitio/container packages assume throughout).
func readSample[T Numeric](b []byte) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return any(b[0]).(T)
	case int8:
		return any(int8(b[0])).(T)
	case uint16:
		return any(binary.LittleEndian.Uint16(b)).(T)
	case int16:
		return any(int16(binary.LittleEndian.Uint16(b))).(T)
	case int32:
		return any(int32(binary.LittleEndian.Uint32(b))).(T)
	case float32:
		return any(math.Float32frombits(binary.LittleEndian.Uint32(b))).(T)
	case float64:
		return any(math.Float64frombits(binary.LittleEndian.Uint64(b))).(T)
	default:
		return zero
	}
}

func writeSample[T Numeric](b []byte, v T) {
	switch x := any(v).(type) {
	case uint8:
		b[0] = x
	case int8:
		b[0] = byte(x)
	case uint16:
		binary.LittleEndian.PutUint16(b, x)
	case int16:
		binary.LittleEndian.PutUint16(b, uint16(x))
	case int32:
		binary.LittleEndian.PutUint32(b, uint32(x))
	case float32:
		binary.LittleEndian.PutUint32(b, math.Float32bits(x))
	case float64:
		binary.LittleEndian.PutUint64(b, math.Float64bits(x))
	}
}

// ---------------------------------------------------------------------
// Per-type raw encode/decode. Each reads/writes Channels() consecutive
// samples of BytesPerChannel[T]() bytes each, in field-declaration
// order.

func DecodeY[T Numeric](b []byte) Y[T] {
	sz := BytesPerChannel[T]()
	return Y[T]{V: readSample[T](b[0:sz])}
}
func EncodeY[T Numeric](p Y[T], b []byte) {
	sz := BytesPerChannel[T]()
	writeSample(b[0:sz], p.V)
}

func DecodeYA[T Numeric](b []byte) YA[T] {
	sz := BytesPerChannel[T]()
	return YA[T]{Y: readSample[T](b[0:sz]), A: readSample[T](b[sz : 2*sz])}
}
func EncodeYA[T Numeric](p YA[T], b []byte) {
	sz := BytesPerChannel[T]()
	writeSample(b[0:sz], p.Y)
	writeSample(b[sz:2*sz], p.A)
}

func DecodeRGB[T Numeric](b []byte) RGB[T] {
	sz := BytesPerChannel[T]()
	return RGB[T]{
		R: readSample[T](b[0:sz]),
		G: readSample[T](b[sz : 2*sz]),
		B: readSample[T](b[2*sz : 3*sz]),
	}
}
func EncodeRGB[T Numeric](p RGB[T], b []byte) {
	sz := BytesPerChannel[T]()
	writeSample(b[0:sz], p.R)
	writeSample(b[sz:2*sz], p.G)
	writeSample(b[2*sz:3*sz], p.B)
}

func DecodeBGR[T Numeric](b []byte) BGR[T] {
	sz := BytesPerChannel[T]()
	return BGR[T]{
		B: readSample[T](b[0:sz]),
		G: readSample[T](b[sz : 2*sz]),
		R: readSample[T](b[2*sz : 3*sz]),
	}
}
func EncodeBGR[T Numeric](p BGR[T], b []byte) {
	sz := BytesPerChannel[T]()
	writeSample(b[0:sz], p.B)
	writeSample(b[sz:2*sz], p.G)
	writeSample(b[2*sz:3*sz], p.R)
}

func DecodeRGBA[T Numeric](b []byte) RGBA[T] {
	sz := BytesPerChannel[T]()
	return RGBA[T]{
		R: readSample[T](b[0:sz]),
		G: readSample[T](b[sz : 2*sz]),
		B: readSample[T](b[2*sz : 3*sz]),
		A: readSample[T](b[3*sz : 4*sz]),
	}
}
func EncodeRGBA[T Numeric](p RGBA[T], b []byte) {
	sz := BytesPerChannel[T]()
	writeSample(b[0:sz], p.R)
	writeSample(b[sz:2*sz], p.G)
	writeSample(b[2*sz:3*sz], p.B)
	writeSample(b[3*sz:4*sz], p.A)
}

func DecodeBGRA[T Numeric](b []byte) BGRA[T] {
	sz := BytesPerChannel[T]()
	return BGRA[T]{
		B: readSample[T](b[0:sz]),
		G: readSample[T](b[sz : 2*sz]),
		R: readSample[T](b[2*sz : 3*sz]),
		A: readSample[T](b[3*sz : 4*sz]),
	}
}
func EncodeBGRA[T Numeric](p BGRA[T], b []byte) {
	sz := BytesPerChannel[T]()
	writeSample(b[0:sz], p.B)
	writeSample(b[sz:2*sz], p.G)
	writeSample(b[2*sz:3*sz], p.R)
	writeSample(b[3*sz:4*sz], p.A)
}

func DecodeARGB[T Numeric](b []byte) ARGB[T] {
	sz := BytesPerChannel[T]()
	return ARGB[T]{
		A: readSample[T](b[0:sz]),
		R: readSample[T](b[sz : 2*sz]),
		G: readSample[T](b[2*sz : 3*sz]),
		B: readSample[T](b[3*sz : 4*sz]),
	}
}
func EncodeARGB[T Numeric](p ARGB[T], b []byte) {
	sz := BytesPerChannel[T]()
	writeSample(b[0:sz], p.A)
	writeSample(b[sz:2*sz], p.R)
	writeSample(b[2*sz:3*sz], p.G)
	writeSample(b[3*sz:4*sz], p.B)
}

func DecodeABGR[T Numeric](b []byte) ABGR[T] {
	sz := BytesPerChannel[T]()
	return ABGR[T]{
		A: readSample[T](b[0:sz]),
		B: readSample[T](b[sz : 2*sz]),
		G: readSample[T](b[2*sz : 3*sz]),
		R: readSample[T](b[3*sz : 4*sz]),
	}
}
func EncodeABGR[T Numeric](p ABGR[T], b []byte) {
	sz := BytesPerChannel[T]()
	writeSample(b[0:sz], p.A)
	writeSample(b[sz:2*sz], p.B)
	writeSample(b[2*sz:3*sz], p.G)
	writeSample(b[3*sz:4*sz], p.R)
}

// ---------------------------------------------------------------------
// Generic dispatch used by imgcore's typed View/Image: P is always one
// of the eight concrete types above, so the type switch below is
// exhaustive and the final assertion always succeeds.

// Decode reads one P-shaped pixel from the front of src.
func Decode[T Numeric, P Pixel[T]](src []byte) P {
	var zero P
	switch zero.Format() {
	case FormatY:
		return any(DecodeY[T](src)).(P)
	case FormatYA:
		return any(DecodeYA[T](src)).(P)
	case FormatRGB:
		return any(DecodeRGB[T](src)).(P)
	case FormatBGR:
		return any(DecodeBGR[T](src)).(P)
	case FormatRGBA:
		return any(DecodeRGBA[T](src)).(P)
	case FormatBGRA:
		return any(DecodeBGRA[T](src)).(P)
	case FormatARGB:
		return any(DecodeARGB[T](src)).(P)
	case FormatABGR:
		return any(DecodeABGR[T](src)).(P)
	default:
		return zero
	}
}

// Encode writes p into the front of dst.
func Encode[T Numeric, P Pixel[T]](p P, dst []byte) {
	switch v := any(p).(type) {
	case Y[T]:
		EncodeY(v, dst)
	case YA[T]:
		EncodeYA(v, dst)
	case RGB[T]:
		EncodeRGB(v, dst)
	case BGR[T]:
		EncodeBGR(v, dst)
	case RGBA[T]:
		EncodeRGBA(v, dst)
	case BGRA[T]:
		EncodeBGRA(v, dst)
	case ARGB[T]:
		EncodeARGB(v, dst)
	case ABGR[T]:
		EncodeABGR(v, dst)
	}
}

// PixelSize returns Channels(P) * BytesPerChannel[T](), the byte size of
// one P-shaped pixel.
func PixelSize[T Numeric, P Pixel[T]]() int {
	var zero P
	return zero.Channels() * BytesPerChannel[T]()
}

// FromChannels reconstructs a P from its channel values in At(i) order
// — the inverse of calling At(0..Channels-1) on a P. Used by algorithms
// (border interpolation, convolution) that compute new channel values
// generically and need to rebuild a concrete pixel without knowing its
// shape ahead of time.
func FromChannels[T Numeric, P Pixel[T]](vals []T) P {
	var zero P
	switch zero.Format() {
	case FormatY:
		return any(Y[T]{V: vals[0]}).(P)
	case FormatYA:
		return any(YA[T]{Y: vals[0], A: vals[1]}).(P)
	case FormatRGB:
		return any(RGB[T]{R: vals[0], G: vals[1], B: vals[2]}).(P)
	case FormatBGR:
		return any(BGR[T]{B: vals[0], G: vals[1], R: vals[2]}).(P)
	case FormatRGBA:
		return any(RGBA[T]{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}).(P)
	case FormatBGRA:
		return any(BGRA[T]{B: vals[0], G: vals[1], R: vals[2], A: vals[3]}).(P)
	case FormatARGB:
		return any(ARGB[T]{A: vals[0], R: vals[1], G: vals[2], B: vals[3]}).(P)
	case FormatABGR:
		return any(ABGR[T]{A: vals[0], B: vals[1], G: vals[2], R: vals[3]}).(P)
	default:
		return zero
	}
}
