package squircle

import (
	"fmt"
	"io"
	"iter"
	"math"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Draw a circular arc. If the current location isn't the arc's start
	// point, a line connects the two first.
	ArcToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is the element of a path.
//
// A valid path has a MoveTo at the beginning of each subpath. For ArcTo
// elements, P0 holds the arc's center and the Radius, StartAngle and
// SweepAngle fields describe the rest of it; those fields are zero for all
// other kinds.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point

	Radius     float64
	StartAngle float64
	SweepAngle float64
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	case ArcToKind:
		return fmt.Sprintf("ArcTo(%s, %g, %g, %g)", el.P0, el.Radius, el.StartAngle, el.SweepAngle)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return fmt.Sprintf("InvalidPathElement(%d)", el.Kind)
	}
}

// Arc returns the arc described by an ArcTo element. The result is
// meaningless for other kinds.
func (el PathElement) Arc() Arc {
	return Arc{
		Center:     el.P0,
		Radius:     el.Radius,
		StartAngle: el.StartAngle,
		SweepAngle: el.SweepAngle,
	}
}

// Transform applies aff to the element. Arcs are transformed with
// [Arc.Transform] and stay exact only if aff is a similarity transform.
func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ArcToKind:
		return ArcToArc(el.Arc().Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

func (el PathElement) IsInf() bool {
	return el.P0.IsInf() ||
		el.P1.IsInf() ||
		el.P2.IsInf() ||
		math.IsInf(el.Radius, 0) ||
		math.IsInf(el.StartAngle, 0) ||
		math.IsInf(el.SweepAngle, 0)
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() ||
		el.P1.IsNaN() ||
		el.P2.IsNaN() ||
		math.IsNaN(el.Radius) ||
		math.IsNaN(el.StartAngle) ||
		math.IsNaN(el.SweepAngle)
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case CubicToKind:
		return el.P2, true
	case ArcToKind:
		return el.Arc().EndPoint(), true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ArcTo(center Point, radius, startAngle, sweepAngle float64) PathElement {
	return PathElement{
		Kind:       ArcToKind,
		P0:         center,
		Radius:     radius,
		StartAngle: startAngle,
		SweepAngle: sweepAngle,
	}
}

func ArcToArc(a Arc) PathElement {
	return ArcTo(a.Center, a.Radius, a.StartAngle, a.SweepAngle)
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

type PathSegmentKind int

const (
	// A line segment.
	LineKind PathSegmentKind = iota + 1
	// A cubic Bézier segment.
	CubicKind
)

// PathSegment is a self-contained segment of a path, either a line from P0 to
// P1 or a cubic Bézier from P0 to P3. Arcs never appear as segments; they are
// approximated by cubic Béziers first.
type PathSegment struct {
	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

var _ Shape = PathSegment{}

func lineSeg(p0, p1 Point) PathSegment {
	return PathSegment{Kind: LineKind, P0: p0, P1: p1}
}

// Cubic converts seg to a cubic Bézier. This is valid for any Kind.
func (seg PathSegment) Cubic() CubicBez {
	switch seg.Kind {
	case LineKind:
		return CubicBez{seg.P0, seg.P0.Lerp(seg.P1, 1.0/3.0), seg.P0.Lerp(seg.P1, 2.0/3.0), seg.P1}
	case CubicKind:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		return CubicBez{}
	}
}

// BoundingBox implements [Shape].
func (seg PathSegment) BoundingBox() Rect {
	switch seg.Kind {
	case LineKind:
		return NewRectFromPoints(seg.P0, seg.P1)
	case CubicKind:
		return seg.Cubic().BoundingBox()
	default:
		return Rect{}
	}
}

// PathElements implements [Shape].
func (seg PathSegment) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(seg.P0)) {
			return
		}
		yield(seg.PathElement())
	}
}

// PathElement returns the PathElement corresponding to the segment, discarding the
// segment's starting point.
func (seg PathSegment) PathElement() PathElement {
	switch seg.Kind {
	case LineKind:
		return LineTo(seg.P1)
	case CubicKind:
		return CubicTo(seg.P1, seg.P2, seg.P3)
	default:
		return PathElement{}
	}
}

func (seg PathSegment) Start() Point {
	return seg.P0
}

func (seg PathSegment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case CubicKind:
		return seg.P3
	default:
		return Point{}
	}
}

func (seg PathSegment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.P0.Lerp(seg.P1, t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		return Point{}
	}
}

func (seg PathSegment) SignedArea() float64 {
	switch seg.Kind {
	case LineKind:
		return lineSignedArea(seg.P0, seg.P1)
	case CubicKind:
		return seg.Cubic().SignedArea()
	default:
		return 0
	}
}

// Reverse returns a new PathSegment describing the same path as this one, but with the
// points reversed.
func (seg PathSegment) Reverse() PathSegment {
	switch seg.Kind {
	case LineKind:
		seg.P0, seg.P1 = seg.P1, seg.P0
		return seg
	case CubicKind:
		seg.P0, seg.P1, seg.P2, seg.P3 = seg.P3, seg.P2, seg.P1, seg.P0
		return seg
	default:
		return PathSegment{}
	}
}

func lineSignedArea(p0, p1 Point) float64 {
	return Vec2(p0).Cross(Vec2(p1)) * 0.5
}

// samePoint reports whether two points coincide up to floating point noise
// relative to their magnitude. Arc start points are computed with sine and
// cosine and rarely match the end of the preceding element bit for bit.
func samePoint(a, b Point) bool {
	scale := max(1, math.Abs(a.X), math.Abs(a.Y), math.Abs(b.X), math.Abs(b.Y))
	return a.Sub(b).Hypot() <= 1e-9*scale
}

// Path is a sequence of path elements describing one or more subpaths made of
// lines, cubic Béziers and circular arcs.
//
// Elements map closely to how paths are used in PostScript-style drawing APIs
// and are how outlines are produced. Segments, returned by [Path.Segments],
// describe the path as independent lines and cubics, which is what hit
// testing and flattening need.
//
// The zero value is an empty path, ready to be built with the [Path.MoveTo]
// family of methods.
type Path []PathElement

var _ Shape = Path{}

// PathElements implements [Shape]. Arcs are lowered to cubic Béziers with the
// given tolerance; use [Path.Elements] to see them as they are.
func (p Path) PathElements(tolerance float64) iter.Seq[PathElement] {
	return Lower(p.Elements(), tolerance)
}

// Elements returns an iterator over the path's elements.
func (p Path) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Push adds an element to the path.
func (p *Path) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *Path) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *Path) LineTo(pt Point) { p.Push(LineTo(pt)) }

// CubicTo pushes a "cubic to" element onto the path.
func (p *Path) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ArcTo pushes an "arc to" element onto the path. If the current point isn't
// the arc's start point, consumers draw a straight line to it first.
func (p *Path) ArcTo(center Point, radius, startAngle, sweepAngle float64) {
	p.Push(ArcTo(center, radius, startAngle, sweepAngle))
}

// ClosePath pushes a "close path" element onto the path.
func (p *Path) ClosePath() { p.Push(ClosePath()) }

// Transform returns a new path with an affine transformation applied to the
// path. Arcs are only transformed exactly by similarity transforms; lower the
// path first to apply other transforms.
func (p Path) Transform(aff Affine) Path {
	els := make(Path, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// Equal reports whether two paths consist of identical elements.
func (p Path) Equal(o Path) bool {
	return slices.Equal(p, o)
}

// Lower returns the path's elements with every arc replaced by cubic Béziers.
// See the [Lower] function.
func (p Path) Lower(tolerance float64) Path {
	return slices.Collect(Lower(p.Elements(), tolerance))
}

// Segments returns an iterator over the path's segments, with arcs
// approximated by cubic Béziers within tolerance.
func (p Path) Segments(tolerance float64) iter.Seq[PathSegment] {
	return Segments(p.Elements(), tolerance)
}

// Flatten flattens the path to a sequence of lines. See [Flatten] for details on the
// process.
func (p Path) Flatten(tolerance float64) iter.Seq[PathElement] {
	return Flatten(p.Elements(), tolerance)
}

// SignedArea returns the signed area of the path, computed exactly for lines,
// cubics and arcs. Open subpaths are treated as if they were closed.
//
// See [ClosedShape.Area] for the sign convention.
func (p Path) SignedArea() float64 {
	var sum float64
	var start, pen Point
	open := false
	closeSubpath := func() {
		if open {
			sum += lineSignedArea(pen, start)
			open = false
		}
	}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			closeSubpath()
			start, pen = el.P0, el.P0
		case LineToKind:
			sum += lineSignedArea(pen, el.P0)
			pen = el.P0
			open = true
		case CubicToKind:
			sum += CubicBez{pen, el.P0, el.P1, el.P2}.SignedArea()
			pen = el.P2
			open = true
		case ArcToKind:
			a := el.Arc()
			sum += lineSignedArea(pen, a.StartPoint())
			sum += a.SignedArea()
			pen = a.EndPoint()
			open = true
		case ClosePathKind:
			closeSubpath()
			pen = start
		}
	}
	closeSubpath()
	return sum
}

// BoundingBox returns the exact bounding box of the path, including the
// extrema of curves and arcs.
func (p Path) BoundingBox() Rect {
	first := true
	var bbox Rect
	add := func(r Rect) {
		if first {
			first = false
			bbox = r
		} else {
			bbox = bbox.Union(r)
		}
	}
	var pen Point
	for _, el := range p {
		switch el.Kind {
		case MoveToKind, LineToKind:
			add(NewRectFromPoints(el.P0, el.P0))
			pen = el.P0
		case CubicToKind:
			add(CubicBez{pen, el.P0, el.P1, el.P2}.BoundingBox())
			pen = el.P2
		case ArcToKind:
			a := el.Arc()
			add(a.BoundingBox())
			pen = a.EndPoint()
		}
	}
	return bbox
}

// Winding returns the winding number of pt with respect to the path, after
// flattening it with the given tolerance. Shapes with positive area have a
// winding number of 1 for points inside them.
func (p Path) Winding(pt Point, tolerance float64) int {
	return PolylineWinding(p.Flatten(tolerance), pt)
}

// Contains reports whether pt is inside the path according to the nonzero
// winding rule. It flattens the path with [DefaultTolerance] / 10.
func (p Path) Contains(pt Point) bool {
	return p.Winding(pt, DefaultTolerance/10) != 0
}

func (p Path) IsInf() bool {
	for i := range p {
		if p[i].IsInf() {
			return true
		}
	}
	return false
}

func (p Path) IsNaN() bool {
	for i := range p {
		if p[i].IsNaN() {
			return true
		}
	}
	return false
}

// SVG converts the path to an SVG path string representation. Arcs are
// written as SVG arc commands.
func (p Path) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p Path) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// Lower replaces every ArcTo element in seq with cubic Béziers that
// approximate the arc within tolerance. An arc that doesn't start at the
// current point is preceded by a line to its start point, or by a move to it
// if there is no current point.
func Lower(seq iter.Seq[PathElement], tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		var pen, start Point
		hasPen := false
		for el := range seq {
			switch el.Kind {
			case MoveToKind:
				pen, start = el.P0, el.P0
				hasPen = true
			case LineToKind:
				pen = el.P0
			case CubicToKind:
				pen = el.P2
			case ClosePathKind:
				pen = start
			case ArcToKind:
				a := el.Arc()
				sp := a.StartPoint()
				if !hasPen {
					if !yield(MoveTo(sp)) {
						return
					}
					start = sp
					hasPen = true
				} else if !samePoint(pen, sp) {
					if !yield(LineTo(sp)) {
						return
					}
				}
				for c := range a.Cubics(tolerance) {
					if !yield(CubicTo(c.P1, c.P2, c.P3)) {
						return
					}
				}
				pen = a.EndPoint()
				continue
			}
			if !yield(el) {
				return
			}
		}
	}
}

// Segments returns an iterator over the segments described by seq. Arcs are
// approximated by cubic Béziers within tolerance. Closing a subpath whose
// current point differs from its start yields the closing line.
func Segments(seq iter.Seq[PathElement], tolerance float64) iter.Seq[PathSegment] {
	return func(yield func(PathSegment) bool) {
		var start, last Point
		for el := range Lower(seq, tolerance) {
			switch el.Kind {
			case MoveToKind:
				start = el.P0
				last = el.P0
			case LineToKind:
				p := last
				last = el.P0
				if !yield(lineSeg(p, el.P0)) {
					return
				}
			case CubicToKind:
				p := last
				last = el.P2
				if !yield(CubicBez{p, el.P0, el.P1, el.P2}.Seg()) {
					return
				}
			case ClosePathKind:
				if last != start {
					p := last
					last = start
					if !yield(lineSeg(p, start)) {
						return
					}
				}
			default:
				panic(fmt.Sprintf("unhandled case %v", el.Kind))
			}
		}
	}
}

// Flatten flattens a sequence of path elements to a sequence of MoveTo,
// LineTo and ClosePath elements that approximate the original curves within
// tolerance. Arcs are lowered to cubics first, using half of the tolerance
// budget.
func Flatten(seq iter.Seq[PathElement], tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		var last Point
		for el := range Lower(seq, tolerance*0.5) {
			switch el.Kind {
			case MoveToKind, LineToKind:
				last = el.P0
				if !yield(el) {
					return
				}
			case CubicToKind:
				c := CubicBez{last, el.P0, el.P1, el.P2}
				n := c.flattenCount(tolerance * 0.5)
				step := 1.0 / float64(n)
				for i := 1; i < n; i++ {
					if !yield(LineTo(c.Eval(float64(i) * step))) {
						return
					}
				}
				if !yield(LineTo(c.P3)) {
					return
				}
				last = c.P3
			case ClosePathKind:
				if !yield(el) {
					return
				}
			}
		}
	}
}

// PolylineWinding computes the winding number of pt with respect to a
// sequence of MoveTo, LineTo and ClosePath elements, such as those produced
// by [Flatten]. Subpaths that aren't explicitly closed are closed implicitly,
// as for filling.
func PolylineWinding(seq iter.Seq[PathElement], pt Point) int {
	var w int
	var start, last Point
	edge := func(a, b Point) {
		isLeft := (b.X-a.X)*(pt.Y-a.Y) - (pt.X-a.X)*(b.Y-a.Y)
		if a.Y <= pt.Y {
			if b.Y > pt.Y && isLeft > 0 {
				w++
			}
		} else {
			if b.Y <= pt.Y && isLeft < 0 {
				w--
			}
		}
	}
	for el := range seq {
		switch el.Kind {
		case MoveToKind:
			edge(last, start)
			start, last = el.P0, el.P0
		case LineToKind:
			edge(last, el.P0)
			last = el.P0
		case ClosePathKind:
			edge(last, start)
			last = start
		default:
			panic(fmt.Sprintf("unexpected %v in polyline", el.Kind))
		}
	}
	edge(last, start)
	return w
}
