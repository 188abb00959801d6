package squircle

import (
	"iter"
	"math"
)

// Rect is an axis-aligned rectangle. It is used for bounding boxes and as the
// outline of boxes without rounded corners.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromSize returns the rectangle spanning from the origin to (w, h).
func NewRectFromSize(size Size) Rect {
	return Rect{0, 0, size.Width, size.Height}
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Size() Size {
	return Size{
		Width:  r.Width(),
		Height: r.Height(),
	}
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X < r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y < r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
//
// Results are valid only if width and height are non-negative.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{
		X0: r.X0 + v.X,
		Y0: r.Y0 + v.Y,
		X1: r.X1 + v.X,
		Y1: r.Y1 + v.Y,
	}
}

func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// IsInf reports whether at least one coordinate is infinite.
func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) || math.IsInf(r.Y0, 0) || math.IsInf(r.X1, 0) || math.IsInf(r.Y1, 0)
}

// IsNaN reports whether at least one coordinate is NaN.
func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) || math.IsNaN(r.Y0) || math.IsNaN(r.X1) || math.IsNaN(r.Y1)
}

// PathElements returns the rectangle's outline, clockwise (in a y-down space)
// from the top left corner. The tolerance is ignored; rectangles are
// represented exactly.
func (r Rect) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(Pt(r.X0, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y1))) &&
			yield(LineTo(Pt(r.X0, r.Y1))) &&
			yield(ClosePath())
	}
}

// BoundingBox implements [Shape].
func (r Rect) BoundingBox() Rect {
	return r.Abs()
}
