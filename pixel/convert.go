package pixel

// Conversions between the eight named color semantics (C9). Luma uses
// the fixed Rec.601-like coefficients spec.md §4.10 mandates:
//
//	Y = 0.299*R + 0.587*G + 0.114*B
//
// For integer element types the combination is computed as a weighted
// sum on a promoted integer and shifted down (avoiding floating point),
// grounded on internal/dsp/yuv.go's fixed-point YUV<->RGB coefficients
// in the teacher. For floating-point elements the combination is done
// directly in the element type.
const (
	lumaFix  = 16
	lumaRCoeff = 19595 // round(0.299 * 65536)
	lumaGCoeff = 38470 // round(0.587 * 65536)
	lumaBCoeff = 7471  // round(0.114 * 65536)
)

// luma computes the Rec.601-like luma of three samples of type T.
func luma[T Numeric](r, g, b T) T {
	if isFloat[T]() {
		rf, gf, bf := promoteFloat[T](r), promoteFloat[T](g), promoteFloat[T](b)
		return castTo[T](0.299*rf + 0.587*gf + 0.114*bf)
	}
	ri, gi, bi := int64(promoteInt[T](r)), int64(promoteInt[T](g)), int64(promoteInt[T](b))
	sum := ri*lumaRCoeff + gi*lumaGCoeff + bi*lumaBCoeff
	rounded := (sum + (1 << (lumaFix - 1))) >> lumaFix
	return castTo[T](float64(rounded))
}

// ---------------------------------------------------------------------
// Conversions that need an explicit alpha (the "needs α" cells).

func YToYA[T Numeric](p Y[T], alpha T) YA[T]       { return YA[T]{Y: p.V, A: alpha} }
func YToRGBA[T Numeric](p Y[T], alpha T) RGBA[T]   { return RGBA[T]{R: p.V, G: p.V, B: p.V, A: alpha} }
func YToBGRA[T Numeric](p Y[T], alpha T) BGRA[T]   { return BGRA[T]{B: p.V, G: p.V, R: p.V, A: alpha} }
func YToARGB[T Numeric](p Y[T], alpha T) ARGB[T]   { return ARGB[T]{A: alpha, R: p.V, G: p.V, B: p.V} }
func YToABGR[T Numeric](p Y[T], alpha T) ABGR[T]   { return ABGR[T]{A: alpha, B: p.V, G: p.V, R: p.V} }

func RGBToYA[T Numeric](p RGB[T], alpha T) YA[T] { return YA[T]{Y: luma(p.R, p.G, p.B), A: alpha} }
func RGBToRGBA[T Numeric](p RGB[T], alpha T) RGBA[T] {
	return RGBA[T]{R: p.R, G: p.G, B: p.B, A: alpha}
}
func RGBToBGRA[T Numeric](p RGB[T], alpha T) BGRA[T] {
	return BGRA[T]{B: p.B, G: p.G, R: p.R, A: alpha}
}
func RGBToARGB[T Numeric](p RGB[T], alpha T) ARGB[T] {
	return ARGB[T]{A: alpha, R: p.R, G: p.G, B: p.B}
}
func RGBToABGR[T Numeric](p RGB[T], alpha T) ABGR[T] {
	return ABGR[T]{A: alpha, B: p.B, G: p.G, R: p.R}
}

func BGRToYA[T Numeric](p BGR[T], alpha T) YA[T] { return YA[T]{Y: luma(p.R, p.G, p.B), A: alpha} }
func BGRToRGBA[T Numeric](p BGR[T], alpha T) RGBA[T] {
	return RGBA[T]{R: p.R, G: p.G, B: p.B, A: alpha}
}
func BGRToBGRA[T Numeric](p BGR[T], alpha T) BGRA[T] {
	return BGRA[T]{B: p.B, G: p.G, R: p.R, A: alpha}
}
func BGRToARGB[T Numeric](p BGR[T], alpha T) ARGB[T] {
	return ARGB[T]{A: alpha, R: p.R, G: p.G, B: p.B}
}
func BGRToABGR[T Numeric](p BGR[T], alpha T) ABGR[T] {
	return ABGR[T]{A: alpha, B: p.B, G: p.G, R: p.R}
}

// ---------------------------------------------------------------------
// Y <-> YA (no alpha argument needed for the drop direction).

func YAToY[T Numeric](p YA[T]) Y[T] { return Y[T]{V: p.Y} }

// ---------------------------------------------------------------------
// Y/YA expand to 3- and 4-channel gray.

func YToRGB[T Numeric](p Y[T]) RGB[T] { return RGB[T]{R: p.V, G: p.V, B: p.V} }
func YToBGR[T Numeric](p Y[T]) BGR[T] { return BGR[T]{B: p.V, G: p.V, R: p.V} }

func YAToRGB[T Numeric](p YA[T]) RGB[T] { return RGB[T]{R: p.Y, G: p.Y, B: p.Y} }
func YAToBGR[T Numeric](p YA[T]) BGR[T] { return BGR[T]{B: p.Y, G: p.Y, R: p.Y} }
func YAToRGBA[T Numeric](p YA[T]) RGBA[T] {
	return RGBA[T]{R: p.Y, G: p.Y, B: p.Y, A: p.A}
}
func YAToBGRA[T Numeric](p YA[T]) BGRA[T] {
	return BGRA[T]{B: p.Y, G: p.Y, R: p.Y, A: p.A}
}
func YAToARGB[T Numeric](p YA[T]) ARGB[T] {
	return ARGB[T]{A: p.A, R: p.Y, G: p.Y, B: p.Y}
}
func YAToABGR[T Numeric](p YA[T]) ABGR[T] {
	return ABGR[T]{A: p.A, B: p.Y, G: p.Y, R: p.Y}
}

// ---------------------------------------------------------------------
// 3/4-channel color -> Y/YA (luma, possibly carrying existing alpha).

func RGBToY[T Numeric](p RGB[T]) Y[T] { return Y[T]{V: luma(p.R, p.G, p.B)} }
func BGRToY[T Numeric](p BGR[T]) Y[T] { return Y[T]{V: luma(p.R, p.G, p.B)} }

func RGBAToY[T Numeric](p RGBA[T]) Y[T] { return Y[T]{V: luma(p.R, p.G, p.B)} }
func BGRAToY[T Numeric](p BGRA[T]) Y[T] { return Y[T]{V: luma(p.R, p.G, p.B)} }
func ARGBToY[T Numeric](p ARGB[T]) Y[T] { return Y[T]{V: luma(p.R, p.G, p.B)} }
func ABGRToY[T Numeric](p ABGR[T]) Y[T] { return Y[T]{V: luma(p.R, p.G, p.B)} }

func RGBAToYA[T Numeric](p RGBA[T]) YA[T] { return YA[T]{Y: luma(p.R, p.G, p.B), A: p.A} }
func BGRAToYA[T Numeric](p BGRA[T]) YA[T] { return YA[T]{Y: luma(p.R, p.G, p.B), A: p.A} }
func ARGBToYA[T Numeric](p ARGB[T]) YA[T] { return YA[T]{Y: luma(p.R, p.G, p.B), A: p.A} }
func ABGRToYA[T Numeric](p ABGR[T]) YA[T] { return YA[T]{Y: luma(p.R, p.G, p.B), A: p.A} }

// ---------------------------------------------------------------------
// RGB <-> BGR (channel swap is implicit: each side's fields are named
// by channel, not storage order).

func RGBToBGR[T Numeric](p RGB[T]) BGR[T] { return BGR[T]{B: p.B, G: p.G, R: p.R} }
func BGRToRGB[T Numeric](p BGR[T]) RGB[T] { return RGB[T]{R: p.R, G: p.G, B: p.B} }

// ---------------------------------------------------------------------
// 4-channel -> 3-channel (drop alpha).

func RGBAToRGB[T Numeric](p RGBA[T]) RGB[T] { return RGB[T]{R: p.R, G: p.G, B: p.B} }
func RGBAToBGR[T Numeric](p RGBA[T]) BGR[T] { return BGR[T]{B: p.B, G: p.G, R: p.R} }
func BGRAToRGB[T Numeric](p BGRA[T]) RGB[T] { return RGB[T]{R: p.R, G: p.G, B: p.B} }
func BGRAToBGR[T Numeric](p BGRA[T]) BGR[T] { return BGR[T]{B: p.B, G: p.G, R: p.R} }
func ARGBToRGB[T Numeric](p ARGB[T]) RGB[T] { return RGB[T]{R: p.R, G: p.G, B: p.B} }
func ARGBToBGR[T Numeric](p ARGB[T]) BGR[T] { return BGR[T]{B: p.B, G: p.G, R: p.R} }
func ABGRToRGB[T Numeric](p ABGR[T]) RGB[T] { return RGB[T]{R: p.R, G: p.G, B: p.B} }
func ABGRToBGR[T Numeric](p ABGR[T]) BGR[T] { return BGR[T]{B: p.B, G: p.G, R: p.R} }

// ---------------------------------------------------------------------
// 4-channel <-> 4-channel (swap and/or rotate, both implicit in the
// named-field construction).

func RGBAToBGRA[T Numeric](p RGBA[T]) BGRA[T] { return BGRA[T]{B: p.B, G: p.G, R: p.R, A: p.A} }
func BGRAToRGBA[T Numeric](p BGRA[T]) RGBA[T] { return RGBA[T]{R: p.R, G: p.G, B: p.B, A: p.A} }

func RGBAToARGB[T Numeric](p RGBA[T]) ARGB[T] {
	return ARGB[T]{A: p.A, R: p.R, G: p.G, B: p.B}
}
func ARGBToRGBA[T Numeric](p ARGB[T]) RGBA[T] {
	return RGBA[T]{R: p.R, G: p.G, B: p.B, A: p.A}
}

func RGBAToABGR[T Numeric](p RGBA[T]) ABGR[T] {
	return ABGR[T]{A: p.A, B: p.B, G: p.G, R: p.R}
}
func ABGRToRGBA[T Numeric](p ABGR[T]) RGBA[T] {
	return RGBA[T]{R: p.R, G: p.G, B: p.B, A: p.A}
}

func BGRAToARGB[T Numeric](p BGRA[T]) ARGB[T] {
	return ARGB[T]{A: p.A, R: p.R, G: p.G, B: p.B}
}
func ARGBToBGRA[T Numeric](p ARGB[T]) BGRA[T] {
	return BGRA[T]{B: p.B, G: p.G, R: p.R, A: p.A}
}

func BGRAToABGR[T Numeric](p BGRA[T]) ABGR[T] {
	return ABGR[T]{A: p.A, B: p.B, G: p.G, R: p.R}
}
func ABGRToBGRA[T Numeric](p ABGR[T]) BGRA[T] {
	return BGRA[T]{B: p.B, G: p.G, R: p.R, A: p.A}
}

func ARGBToABGR[T Numeric](p ARGB[T]) ABGR[T] {
	return ABGR[T]{A: p.A, B: p.B, G: p.G, R: p.R}
}
func ABGRToARGB[T Numeric](p ABGR[T]) ARGB[T] {
	return ARGB[T]{A: p.A, R: p.R, G: p.G, B: p.B}
}
