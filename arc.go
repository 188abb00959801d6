package squircle

import (
	"iter"
	"math"
)

// Arc is a circular arc. Angles are in radians, measured from the positive x
// axis towards the positive y axis; with y pointing down, a positive sweep
// runs clockwise.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

var _ Shape = Arc{}

// maxArcSteps bounds the number of cubic Béziers used to approximate an arc,
// which matters only for absurdly small tolerances.
const maxArcSteps = 1 << 10

func (a Arc) pointAt(angle float64) Point {
	return a.Center.Translate(VecFromAngle(angle).Mul(a.Radius))
}

// StartPoint returns the point at which the arc begins.
func (a Arc) StartPoint() Point {
	return a.pointAt(a.StartAngle)
}

// EndPoint returns the point at which the arc ends.
func (a Arc) EndPoint() Point {
	return a.pointAt(a.StartAngle + a.SweepAngle)
}

// Split splits the arc into two arcs of half the sweep each.
func (a Arc) Split() (Arc, Arc) {
	half := a.SweepAngle * 0.5
	a0 := a
	a0.SweepAngle = half
	a1 := a
	a1.StartAngle = a.StartAngle + half
	a1.SweepAngle = a.SweepAngle - half
	return a0, a1
}

// ScaledRadius returns the arc with its radius multiplied by scale and its
// center moved along the bisector of the sweep by radius × (1 − scale).
// The point in the middle of the sweep stays where it is, so the scaled arc
// bulges into or out of the same corner as the original one.
func (a Arc) ScaledRadius(scale float64) Arc {
	bisector := a.StartAngle + a.SweepAngle*0.5
	return Arc{
		Center:     a.Center.Translate(VecFromAngle(bisector).Mul(a.Radius * (1 - scale))),
		Radius:     a.Radius * scale,
		StartAngle: a.StartAngle,
		SweepAngle: a.SweepAngle,
	}
}

func (a Arc) Translate(v Vec2) Arc {
	a.Center = a.Center.Translate(v)
	return a
}

// Transform applies a similarity transform to the arc. Other transforms
// would turn the arc into an elliptical one; for those, approximate the arc
// with [Arc.Cubics] and transform the curves instead.
func (a Arc) Transform(aff Affine) Arc {
	start := a.StartPoint().Transform(aff)
	center := a.Center.Transform(aff)
	sweep := a.SweepAngle
	if aff.Determinant() < 0 {
		sweep = -sweep
	}
	startAngle := a.StartAngle
	if a.Radius != 0 {
		startAngle = start.Sub(center).Angle()
	}
	return Arc{
		Center:     center,
		Radius:     a.Radius * aff.uniformScale(),
		StartAngle: startAngle,
		SweepAngle: sweep,
	}
}

// Cubics approximates the arc with cubic Béziers whose distance from the true
// arc doesn't exceed tolerance. An arc with zero sweep produces no curves.
func (a Arc) Cubics(tolerance float64) iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		scaledError := math.Abs(a.Radius) / tolerance
		// Number of subdivisions per circle based on error tolerance.
		// Note: this may slightly underestimate the error for quadrants.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := min(math.Ceil(nError*math.Abs(a.SweepAngle)*(1.0/(2.0*math.Pi))), maxArcSteps)
		if !(n >= 1) {
			return
		}
		angleStep := a.SweepAngle / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle) * a.Radius
		angle0 := a.StartAngle
		p0 := a.pointAt(angle0)

		for i := range int(n) {
			angle1 := a.StartAngle + angleStep*float64(i+1)
			if i == int(n)-1 {
				angle1 = a.StartAngle + a.SweepAngle
			}
			p1 := p0.Translate(VecFromAngle(angle0 + math.Pi/2).Mul(armLen))
			p3 := a.pointAt(angle1)
			p2 := p3.Translate(VecFromAngle(angle1 + math.Pi/2).Mul(-armLen))

			if !yield(CubicBez{p0, p1, p2, p3}) {
				return
			}
			angle0 = angle1
			p0 = p3
		}
	}
}

// PathElements implements [Shape].
func (a Arc) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(a.StartPoint())) {
			return
		}
		for c := range a.Cubics(tolerance) {
			if !yield(CubicTo(c.P1, c.P2, c.P3)) {
				return
			}
		}
	}
}

// BoundingBox returns the exact bounding box of the arc.
func (a Arc) BoundingBox() Rect {
	bbox := NewRectFromPoints(a.StartPoint(), a.EndPoint())
	lo := a.StartAngle
	hi := a.StartAngle + a.SweepAngle
	if hi < lo {
		lo, hi = hi, lo
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsNaN(lo) || math.IsNaN(hi) {
		return bbox
	}
	// Include every axis crossing inside the sweep. A full turn has four, so
	// a handful of iterations suffices even for multiple turns.
	const quarter = math.Pi / 2
	first := math.Ceil(lo / quarter)
	last := math.Floor(hi / quarter)
	for k := first; k <= last && k < first+4; k++ {
		bbox = bbox.UnionPoint(a.pointAt(k * quarter))
	}
	return bbox
}

// SignedArea returns the arc's contribution to the signed area of a closed
// path, with the same convention as [CubicBez.SignedArea].
func (a Arc) SignedArea() float64 {
	// ½ ∫ x dy − y dx over the arc, in closed form.
	th0 := a.StartAngle
	th1 := a.StartAngle + a.SweepAngle
	s0, c0 := math.Sincos(th0)
	s1, c1 := math.Sincos(th1)
	r := a.Radius
	return 0.5 * (r*(a.Center.X*(s1-s0)-a.Center.Y*(c1-c0)) + r*r*a.SweepAngle)
}
