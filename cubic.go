package squircle

import (
	"iter"
	"math"
	"sort"
)

// CubicBez is a cubic Bézier curve from P0 to P3 with control points P1 and
// P2.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Mul scales all four points of the curve by f, relative to the origin.
func (c CubicBez) Mul(f float64) CubicBez {
	return CubicBez{
		c.P0.Mul(f),
		c.P1.Mul(f),
		c.P2.Mul(f),
		c.P3.Mul(f),
	}
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		c.P0.Transform(aff),
		c.P1.Transform(aff),
		c.P2.Transform(aff),
		c.P3.Transform(aff),
	}
}

// Reverse returns the same curve traversed from P3 to P0.
func (c CubicBez) Reverse() CubicBez {
	return CubicBez{c.P3, c.P2, c.P1, c.P0}
}

// BoundingBox returns the smallest rectangle that encloses the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRectFromPoints(c.P0, c.P3)
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// PathElements implements [Shape].
func (c CubicBez) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(c.P0)) &&
			yield(CubicTo(c.P1, c.P2, c.P3))
	}
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Deriv returns the first derivative of the curve at t.
func (c CubicBez) Deriv(t float64) Vec2 {
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	return d0.Mul(3 * mt * mt).Add(d1.Mul(6 * mt * t)).Add(d2.Mul(3 * t * t))
}

// Deriv2 returns the second derivative of the curve at t.
func (c CubicBez) Deriv2(t float64) Vec2 {
	dd0 := c.P2.Sub(c.P1).Sub(c.P1.Sub(c.P0))
	dd1 := c.P3.Sub(c.P2).Sub(c.P2.Sub(c.P1))
	return dd0.Mul(6 * (1 - t)).Add(dd1.Mul(6 * t))
}

// Curvature returns the signed curvature of the curve at t. It is positive
// where the curve turns clockwise in a y-down coordinate system.
//
// The curvature is undefined, and NaN or infinite, where the first derivative
// vanishes.
func (c CubicBez) Curvature(t float64) float64 {
	d := c.Deriv(t)
	dd := c.Deriv2(t)
	return d.Cross(dd) / math.Pow(d.Hypot(), 3)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// Extrema returns the parameters, in increasing order, at which the curve has
// a horizontal or vertical tangent. Only values strictly inside (0, 1) are
// reported.
func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

// SignedArea returns the signed area under the curve, as used by the
// shoelace-style area computation of closed paths.
func (c CubicBez) SignedArea() float64 {
	v := c.P0.X*(6.0*c.P1.Y+3.0*c.P2.Y+c.P3.Y) +
		3.0*(c.P1.X*(-2.0*c.P0.Y+c.P2.Y+c.P3.Y)-c.P2.X*(c.P0.Y+c.P1.Y-2.0*c.P3.Y)) -
		c.P3.X*(c.P0.Y+3.0*c.P1.Y+6.0*c.P2.Y)
	return v * (1.0 / 20.0)
}

func (c CubicBez) Seg() PathSegment {
	return PathSegment{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}

// flattenCount returns the number of equal parameter steps needed to
// approximate the curve by lines within tolerance.
//
// The distance between a curve and its chord over a parameter interval of
// length h is bounded by h²/8 times the maximum magnitude of the second
// derivative, which for a cubic is attained at one of the endpoints.
func (c CubicBez) flattenCount(tolerance float64) int {
	dd := max(c.Deriv2(0).Hypot(), c.Deriv2(1).Hypot())
	n := math.Ceil(math.Sqrt(dd / (8 * tolerance)))
	if !(n >= 1) {
		return 1
	}
	return int(min(n, maxFlattenSteps))
}

const maxFlattenSteps = 1 << 12
