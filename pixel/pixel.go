package pixel

// Pixel is implemented by every concrete pixel type below. It lets
// generic algorithms (imgcore/algo, imgcore/border) operate uniformly
// over whichever of the eight named formats a View[P] was instantiated
// with.
type Pixel[T Numeric] interface {
	Format() Format
	Channels() int
	At(i int) T
}

func arith2[T Numeric](a, b T, op func(x, y float64) float64) T {
	if isFloat[T]() {
		return castTo[T](op(promoteFloat[T](a), promoteFloat[T](b)))
	}
	return castTo[T](op(float64(promoteInt[T](a)), float64(promoteInt[T](b))))
}

// ---------------------------------------------------------------------
// Y — single-channel luminance/gray pixel.

// Y is a one-channel pixel. It decays to a bare T via Scalar().
type Y[T Numeric] struct {
	V T
}

func NewY[T Numeric](v T) Y[T]  { return Y[T]{V: v} }
func (p Y[T]) Format() Format   { return FormatY }
func (p Y[T]) Channels() int    { return 1 }
func (p Y[T]) At(i int) T       { return p.V }
func (p *Y[T]) Ptr() *T         { return &p.V }
func (p Y[T]) Scalar() T        { return p.V }
func (p Y[T]) Equal(q Y[T]) bool { return p.V == q.V }

func (p Y[T]) Add(q Y[T]) Y[T] { return Y[T]{arith2(p.V, q.V, func(x, y float64) float64 { return x + y })} }
func (p Y[T]) Sub(q Y[T]) Y[T] { return Y[T]{arith2(p.V, q.V, func(x, y float64) float64 { return x - y })} }
func (p Y[T]) Mul(q Y[T]) Y[T] { return Y[T]{arith2(p.V, q.V, func(x, y float64) float64 { return x * y })} }
func (p Y[T]) Div(q Y[T]) Y[T] { return Y[T]{arith2(p.V, q.V, func(x, y float64) float64 { return x / y })} }
func (p Y[T]) AddScalar(s T) Y[T] { return p.Add(Y[T]{s}) }
func (p Y[T]) SubScalar(s T) Y[T] { return p.Sub(Y[T]{s}) }
func (p Y[T]) MulScalar(s T) Y[T] { return p.Mul(Y[T]{s}) }
func (p Y[T]) DivScalar(s T) Y[T] { return p.Div(Y[T]{s}) }
func (p Y[T]) Neg() Y[T]          { var z T; return Y[T]{z}.Sub(p) }

// ---------------------------------------------------------------------
// YA — luminance + alpha.

type YA[T Numeric] struct {
	Y, A T
}

func NewYA[T Numeric](y, a T) YA[T]   { return YA[T]{Y: y, A: a} }
func (p YA[T]) Format() Format        { return FormatYA }
func (p YA[T]) Channels() int         { return 2 }
func (p YA[T]) At(i int) T {
	if i == 0 {
		return p.Y
	}
	return p.A
}
func (p *YA[T]) Ptr() *T             { return &p.Y }
func (p YA[T]) Equal(q YA[T]) bool   { return p.Y == q.Y && p.A == q.A }
func (p YA[T]) Add(q YA[T]) YA[T] {
	add := func(x, y float64) float64 { return x + y }
	return YA[T]{arith2(p.Y, q.Y, add), arith2(p.A, q.A, add)}
}
func (p YA[T]) Sub(q YA[T]) YA[T] {
	sub := func(x, y float64) float64 { return x - y }
	return YA[T]{arith2(p.Y, q.Y, sub), arith2(p.A, q.A, sub)}
}
func (p YA[T]) Mul(q YA[T]) YA[T] {
	mul := func(x, y float64) float64 { return x * y }
	return YA[T]{arith2(p.Y, q.Y, mul), arith2(p.A, q.A, mul)}
}
func (p YA[T]) Div(q YA[T]) YA[T] {
	div := func(x, y float64) float64 { return x / y }
	return YA[T]{arith2(p.Y, q.Y, div), arith2(p.A, q.A, div)}
}
func (p YA[T]) AddScalar(s T) YA[T] { return p.Add(YA[T]{s, s}) }
func (p YA[T]) SubScalar(s T) YA[T] { return p.Sub(YA[T]{s, s}) }
func (p YA[T]) MulScalar(s T) YA[T] { return p.Mul(YA[T]{s, s}) }
func (p YA[T]) DivScalar(s T) YA[T] { return p.Div(YA[T]{s, s}) }
func (p YA[T]) Neg() YA[T]          { var z YA[T]; return z.Sub(p) }

// ---------------------------------------------------------------------
// RGB.

type RGB[T Numeric] struct {
	R, G, B T
}

func NewRGB[T Numeric](r, g, b T) RGB[T] { return RGB[T]{R: r, G: g, B: b} }
func (p RGB[T]) Format() Format          { return FormatRGB }
func (p RGB[T]) Channels() int           { return 3 }
func (p RGB[T]) At(i int) T {
	switch i {
	case 0:
		return p.R
	case 1:
		return p.G
	default:
		return p.B
	}
}
func (p *RGB[T]) Ptr() *T            { return &p.R }
func (p RGB[T]) Equal(q RGB[T]) bool { return p.R == q.R && p.G == q.G && p.B == q.B }
func (p RGB[T]) Add(q RGB[T]) RGB[T] {
	add := func(x, y float64) float64 { return x + y }
	return RGB[T]{arith2(p.R, q.R, add), arith2(p.G, q.G, add), arith2(p.B, q.B, add)}
}
func (p RGB[T]) Sub(q RGB[T]) RGB[T] {
	sub := func(x, y float64) float64 { return x - y }
	return RGB[T]{arith2(p.R, q.R, sub), arith2(p.G, q.G, sub), arith2(p.B, q.B, sub)}
}
func (p RGB[T]) Mul(q RGB[T]) RGB[T] {
	mul := func(x, y float64) float64 { return x * y }
	return RGB[T]{arith2(p.R, q.R, mul), arith2(p.G, q.G, mul), arith2(p.B, q.B, mul)}
}
func (p RGB[T]) Div(q RGB[T]) RGB[T] {
	div := func(x, y float64) float64 { return x / y }
	return RGB[T]{arith2(p.R, q.R, div), arith2(p.G, q.G, div), arith2(p.B, q.B, div)}
}
func (p RGB[T]) AddScalar(s T) RGB[T] { return p.Add(RGB[T]{s, s, s}) }
func (p RGB[T]) SubScalar(s T) RGB[T] { return p.Sub(RGB[T]{s, s, s}) }
func (p RGB[T]) MulScalar(s T) RGB[T] { return p.Mul(RGB[T]{s, s, s}) }
func (p RGB[T]) DivScalar(s T) RGB[T] { return p.Div(RGB[T]{s, s, s}) }
func (p RGB[T]) Neg() RGB[T]          { var z RGB[T]; return z.Sub(p) }

// ---------------------------------------------------------------------
// BGR.

type BGR[T Numeric] struct {
	B, G, R T
}

func NewBGR[T Numeric](b, g, r T) BGR[T] { return BGR[T]{B: b, G: g, R: r} }
func (p BGR[T]) Format() Format          { return FormatBGR }
func (p BGR[T]) Channels() int           { return 3 }
func (p BGR[T]) At(i int) T {
	switch i {
	case 0:
		return p.B
	case 1:
		return p.G
	default:
		return p.R
	}
}
func (p *BGR[T]) Ptr() *T            { return &p.B }
func (p BGR[T]) Equal(q BGR[T]) bool { return p.B == q.B && p.G == q.G && p.R == q.R }
func (p BGR[T]) Add(q BGR[T]) BGR[T] {
	add := func(x, y float64) float64 { return x + y }
	return BGR[T]{arith2(p.B, q.B, add), arith2(p.G, q.G, add), arith2(p.R, q.R, add)}
}
func (p BGR[T]) Sub(q BGR[T]) BGR[T] {
	sub := func(x, y float64) float64 { return x - y }
	return BGR[T]{arith2(p.B, q.B, sub), arith2(p.G, q.G, sub), arith2(p.R, q.R, sub)}
}
func (p BGR[T]) Mul(q BGR[T]) BGR[T] {
	mul := func(x, y float64) float64 { return x * y }
	return BGR[T]{arith2(p.B, q.B, mul), arith2(p.G, q.G, mul), arith2(p.R, q.R, mul)}
}
func (p BGR[T]) Div(q BGR[T]) BGR[T] {
	div := func(x, y float64) float64 { return x / y }
	return BGR[T]{arith2(p.B, q.B, div), arith2(p.G, q.G, div), arith2(p.R, q.R, div)}
}
func (p BGR[T]) AddScalar(s T) BGR[T] { return p.Add(BGR[T]{s, s, s}) }
func (p BGR[T]) SubScalar(s T) BGR[T] { return p.Sub(BGR[T]{s, s, s}) }
func (p BGR[T]) MulScalar(s T) BGR[T] { return p.Mul(BGR[T]{s, s, s}) }
func (p BGR[T]) DivScalar(s T) BGR[T] { return p.Div(BGR[T]{s, s, s}) }
func (p BGR[T]) Neg() BGR[T]          { var z BGR[T]; return z.Sub(p) }

// ---------------------------------------------------------------------
// RGBA.

type RGBA[T Numeric] struct {
	R, G, B, A T
}

func NewRGBA[T Numeric](r, g, b, a T) RGBA[T] { return RGBA[T]{R: r, G: g, B: b, A: a} }
func (p RGBA[T]) Format() Format              { return FormatRGBA }
func (p RGBA[T]) Channels() int               { return 4 }
func (p RGBA[T]) At(i int) T {
	switch i {
	case 0:
		return p.R
	case 1:
		return p.G
	case 2:
		return p.B
	default:
		return p.A
	}
}
func (p *RGBA[T]) Ptr() *T { return &p.R }
func (p RGBA[T]) Equal(q RGBA[T]) bool {
	return p.R == q.R && p.G == q.G && p.B == q.B && p.A == q.A
}
func (p RGBA[T]) Add(q RGBA[T]) RGBA[T] {
	add := func(x, y float64) float64 { return x + y }
	return RGBA[T]{arith2(p.R, q.R, add), arith2(p.G, q.G, add), arith2(p.B, q.B, add), arith2(p.A, q.A, add)}
}
func (p RGBA[T]) Sub(q RGBA[T]) RGBA[T] {
	sub := func(x, y float64) float64 { return x - y }
	return RGBA[T]{arith2(p.R, q.R, sub), arith2(p.G, q.G, sub), arith2(p.B, q.B, sub), arith2(p.A, q.A, sub)}
}
func (p RGBA[T]) Mul(q RGBA[T]) RGBA[T] {
	mul := func(x, y float64) float64 { return x * y }
	return RGBA[T]{arith2(p.R, q.R, mul), arith2(p.G, q.G, mul), arith2(p.B, q.B, mul), arith2(p.A, q.A, mul)}
}
func (p RGBA[T]) Div(q RGBA[T]) RGBA[T] {
	div := func(x, y float64) float64 { return x / y }
	return RGBA[T]{arith2(p.R, q.R, div), arith2(p.G, q.G, div), arith2(p.B, q.B, div), arith2(p.A, q.A, div)}
}
func (p RGBA[T]) AddScalar(s T) RGBA[T] { return p.Add(RGBA[T]{s, s, s, s}) }
func (p RGBA[T]) SubScalar(s T) RGBA[T] { return p.Sub(RGBA[T]{s, s, s, s}) }
func (p RGBA[T]) MulScalar(s T) RGBA[T] { return p.Mul(RGBA[T]{s, s, s, s}) }
func (p RGBA[T]) DivScalar(s T) RGBA[T] { return p.Div(RGBA[T]{s, s, s, s}) }
func (p RGBA[T]) Neg() RGBA[T]          { var z RGBA[T]; return z.Sub(p) }

// ---------------------------------------------------------------------
// BGRA.

type BGRA[T Numeric] struct {
	B, G, R, A T
}

func NewBGRA[T Numeric](b, g, r, a T) BGRA[T] { return BGRA[T]{B: b, G: g, R: r, A: a} }
func (p BGRA[T]) Format() Format              { return FormatBGRA }
func (p BGRA[T]) Channels() int               { return 4 }
func (p BGRA[T]) At(i int) T {
	switch i {
	case 0:
		return p.B
	case 1:
		return p.G
	case 2:
		return p.R
	default:
		return p.A
	}
}
func (p *BGRA[T]) Ptr() *T { return &p.B }
func (p BGRA[T]) Equal(q BGRA[T]) bool {
	return p.B == q.B && p.G == q.G && p.R == q.R && p.A == q.A
}
func (p BGRA[T]) Add(q BGRA[T]) BGRA[T] {
	add := func(x, y float64) float64 { return x + y }
	return BGRA[T]{arith2(p.B, q.B, add), arith2(p.G, q.G, add), arith2(p.R, q.R, add), arith2(p.A, q.A, add)}
}
func (p BGRA[T]) Sub(q BGRA[T]) BGRA[T] {
	sub := func(x, y float64) float64 { return x - y }
	return BGRA[T]{arith2(p.B, q.B, sub), arith2(p.G, q.G, sub), arith2(p.R, q.R, sub), arith2(p.A, q.A, sub)}
}
func (p BGRA[T]) Mul(q BGRA[T]) BGRA[T] {
	mul := func(x, y float64) float64 { return x * y }
	return BGRA[T]{arith2(p.B, q.B, mul), arith2(p.G, q.G, mul), arith2(p.R, q.R, mul), arith2(p.A, q.A, mul)}
}
func (p BGRA[T]) Div(q BGRA[T]) BGRA[T] {
	div := func(x, y float64) float64 { return x / y }
	return BGRA[T]{arith2(p.B, q.B, div), arith2(p.G, q.G, div), arith2(p.R, q.R, div), arith2(p.A, q.A, div)}
}
func (p BGRA[T]) AddScalar(s T) BGRA[T] { return p.Add(BGRA[T]{s, s, s, s}) }
func (p BGRA[T]) SubScalar(s T) BGRA[T] { return p.Sub(BGRA[T]{s, s, s, s}) }
func (p BGRA[T]) MulScalar(s T) BGRA[T] { return p.Mul(BGRA[T]{s, s, s, s}) }
func (p BGRA[T]) DivScalar(s T) BGRA[T] { return p.Div(BGRA[T]{s, s, s, s}) }
func (p BGRA[T]) Neg() BGRA[T]          { var z BGRA[T]; return z.Sub(p) }

// ---------------------------------------------------------------------
// ARGB.

type ARGB[T Numeric] struct {
	A, R, G, B T
}

func NewARGB[T Numeric](a, r, g, b T) ARGB[T] { return ARGB[T]{A: a, R: r, G: g, B: b} }
func (p ARGB[T]) Format() Format              { return FormatARGB }
func (p ARGB[T]) Channels() int               { return 4 }
func (p ARGB[T]) At(i int) T {
	switch i {
	case 0:
		return p.A
	case 1:
		return p.R
	case 2:
		return p.G
	default:
		return p.B
	}
}
func (p *ARGB[T]) Ptr() *T { return &p.A }
func (p ARGB[T]) Equal(q ARGB[T]) bool {
	return p.A == q.A && p.R == q.R && p.G == q.G && p.B == q.B
}
func (p ARGB[T]) Add(q ARGB[T]) ARGB[T] {
	add := func(x, y float64) float64 { return x + y }
	return ARGB[T]{arith2(p.A, q.A, add), arith2(p.R, q.R, add), arith2(p.G, q.G, add), arith2(p.B, q.B, add)}
}
func (p ARGB[T]) Sub(q ARGB[T]) ARGB[T] {
	sub := func(x, y float64) float64 { return x - y }
	return ARGB[T]{arith2(p.A, q.A, sub), arith2(p.R, q.R, sub), arith2(p.G, q.G, sub), arith2(p.B, q.B, sub)}
}
func (p ARGB[T]) Mul(q ARGB[T]) ARGB[T] {
	mul := func(x, y float64) float64 { return x * y }
	return ARGB[T]{arith2(p.A, q.A, mul), arith2(p.R, q.R, mul), arith2(p.G, q.G, mul), arith2(p.B, q.B, mul)}
}
func (p ARGB[T]) Div(q ARGB[T]) ARGB[T] {
	div := func(x, y float64) float64 { return x / y }
	return ARGB[T]{arith2(p.A, q.A, div), arith2(p.R, q.R, div), arith2(p.G, q.G, div), arith2(p.B, q.B, div)}
}
func (p ARGB[T]) AddScalar(s T) ARGB[T] { return p.Add(ARGB[T]{s, s, s, s}) }
func (p ARGB[T]) SubScalar(s T) ARGB[T] { return p.Sub(ARGB[T]{s, s, s, s}) }
func (p ARGB[T]) MulScalar(s T) ARGB[T] { return p.Mul(ARGB[T]{s, s, s, s}) }
func (p ARGB[T]) DivScalar(s T) ARGB[T] { return p.Div(ARGB[T]{s, s, s, s}) }
func (p ARGB[T]) Neg() ARGB[T]          { var z ARGB[T]; return z.Sub(p) }

// ---------------------------------------------------------------------
// ABGR.

type ABGR[T Numeric] struct {
	A, B, G, R T
}

func NewABGR[T Numeric](a, b, g, r T) ABGR[T] { return ABGR[T]{A: a, B: b, G: g, R: r} }
func (p ABGR[T]) Format() Format              { return FormatABGR }
func (p ABGR[T]) Channels() int               { return 4 }
func (p ABGR[T]) At(i int) T {
	switch i {
	case 0:
		return p.A
	case 1:
		return p.B
	case 2:
		return p.G
	default:
		return p.R
	}
}
func (p *ABGR[T]) Ptr() *T { return &p.A }
func (p ABGR[T]) Equal(q ABGR[T]) bool {
	return p.A == q.A && p.B == q.B && p.G == q.G && p.R == q.R
}
func (p ABGR[T]) Add(q ABGR[T]) ABGR[T] {
	add := func(x, y float64) float64 { return x + y }
	return ABGR[T]{arith2(p.A, q.A, add), arith2(p.B, q.B, add), arith2(p.G, q.G, add), arith2(p.R, q.R, add)}
}
func (p ABGR[T]) Sub(q ABGR[T]) ABGR[T] {
	sub := func(x, y float64) float64 { return x - y }
	return ABGR[T]{arith2(p.A, q.A, sub), arith2(p.B, q.B, sub), arith2(p.G, q.G, sub), arith2(p.R, q.R, sub)}
}
func (p ABGR[T]) Mul(q ABGR[T]) ABGR[T] {
	mul := func(x, y float64) float64 { return x * y }
	return ABGR[T]{arith2(p.A, q.A, mul), arith2(p.B, q.B, mul), arith2(p.G, q.G, mul), arith2(p.R, q.R, mul)}
}
func (p ABGR[T]) Div(q ABGR[T]) ABGR[T] {
	div := func(x, y float64) float64 { return x / y }
	return ABGR[T]{arith2(p.A, q.A, div), arith2(p.B, q.B, div), arith2(p.G, q.G, div), arith2(p.R, q.R, div)}
}
func (p ABGR[T]) AddScalar(s T) ABGR[T] { return p.Add(ABGR[T]{s, s, s, s}) }
func (p ABGR[T]) SubScalar(s T) ABGR[T] { return p.Sub(ABGR[T]{s, s, s, s}) }
func (p ABGR[T]) MulScalar(s T) ABGR[T] { return p.Mul(ABGR[T]{s, s, s, s}) }
func (p ABGR[T]) DivScalar(s T) ABGR[T] { return p.Div(ABGR[T]{s, s, s, s}) }
func (p ABGR[T]) Neg() ABGR[T]          { var z ABGR[T]; return z.Sub(p) }

// ---------------------------------------------------------------------
// Shifts (integer element types only) and rounding conversion.

// ShiftLeft returns p with every channel shifted left by n bits.
func ShiftLeft[T Integer](p RGB[T], n uint) RGB[T] {
	return RGB[T]{p.R << n, p.G << n, p.B << n}
}

// ShiftRight returns p with every channel shifted right by n bits.
func ShiftRight[T Integer](p RGB[T], n uint) RGB[T] {
	return RGB[T]{p.R >> n, p.G >> n, p.B >> n}
}

// RoundRGB produces a pixel whose element type is Out, rounding
// half-away-from-zero, per spec.md §4.1's round(px) contract.
func RoundRGB[Out Numeric, T Numeric](p RGB[T]) RGB[Out] {
	return RGB[Out]{
		castTo[Out](elemAsFloat(p.R)),
		castTo[Out](elemAsFloat(p.G)),
		castTo[Out](elemAsFloat(p.B)),
	}
}

// RoundY is the single-channel analogue of RoundRGB.
func RoundY[Out Numeric, T Numeric](p Y[T]) Y[Out] {
	return Y[Out]{castTo[Out](elemAsFloat(p.V))}
}

func elemAsFloat[T Numeric](v T) float64 {
	if isFloat[T]() {
		return promoteFloat[T](v)
	}
	return float64(promoteInt[T](v))
}
