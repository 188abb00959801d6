package squircle

import (
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"
)

// MaxExtrema is the maximum number of extrema that can be reported by
// [CubicBez.Extrema].
const MaxExtrema = 4

// DefaultTolerance is a default value for methods that take a tolerance
// argument. It is suitable for drawing user interface elements, where errors
// of a tenth of a pixel are not visible.
const DefaultTolerance = 0.1

// Shape describes geometric shapes that have a bounding box and that can be
// converted to a series of path elements.
type Shape interface {
	// BoundingBox returns the smallest rectangle that encloses the shape.
	BoundingBox() Rect

	// PathElements returns an iterator over path elements that express the
	// shape as a series of "move to", "line to", "cubic Bézier to", and "close
	// path" commands. Arcs are approximated by cubic Béziers.
	//
	// The tolerance parameter controls the accuracy of that approximation.
	// For drawing as in UI elements, a value of 0.1 is appropriate, as it is
	// unlikely to be visible to the eye.
	PathElements(tolerance float64) iter.Seq[PathElement]
}

// ClosedShape describes shapes with a closed outline.
type ClosedShape interface {
	Shape

	// Area returns the signed area of the closed shape.
	//
	// The convention for positive area is that y increases when x is positive.
	// Thus, it is clockwise when down is increasing y (the usual convention for
	// graphics), and anticlockwise when up is increasing y (the usual
	// convention for math).
	Area() float64

	// Contains reports whether pt lies inside the shape, using the nonzero
	// winding rule.
	Contains(pt Point) bool
}

var _ Shape = CubicBez{}
var _ Shape = Rect{}
var _ ClosedShape = Outline{}

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// This function tries to be quite numerically robust. If the equation is nearly
// linear, it will return the root ignoring the quadratic term; the other root
// might be out of representable range. In the degenerate case where all
// coefficients are zero, so that all values of x satisfy the equation, a single
// 0.0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) || math.IsNaN(sc1) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) && !math.IsNaN(root) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			// Degenerate case
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !math.IsInf(root2, 0) && !math.IsNaN(root2) {
		// Sort just to be friendly and make results deterministic.
		if root2 > root1 {
			return [2]float64{root1, root2}, 2
		} else {
			return [2]float64{root2, root1}, 2
		}
	} else {
		return [2]float64{root1}, 1
	}
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// Arcs are written as elliptical arc commands. Because an SVG arc cannot
// describe a full turn, such arcs are split in two. As with [Path.Lower], a
// line is drawn to the start of an arc if the pen is elsewhere.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			if strings.ContainsRune(s, '.') {
				s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
			}
			if s == "-0" {
				s = "0"
			}
			return s
		}
	}
	writeArc := func(a Arc) {
		end := a.EndPoint()
		large := 0
		if math.Abs(a.SweepAngle) > math.Pi {
			large = 1
		}
		sweep := 0
		if a.SweepAngle > 0 {
			sweep = 1
		}
		r := format(a.Radius)
		writef("A%s,%s 0 %d,%d %s,%s", r, r, large, sweep, format(end.X), format(end.Y))
	}

	first := true
	var pen, start Point
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
			pen, start = el.P0, el.P0
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
			pen = el.P0
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
			pen = el.P2
		case ArcToKind:
			a := el.Arc()
			if p := a.StartPoint(); !samePoint(p, pen) {
				writef("L%s,%s ", format(p.X), format(p.Y))
			}
			if math.Abs(a.SweepAngle) >= 2*math.Pi {
				a0, a1 := a.Split()
				writeArc(a0)
				write(space)
				writeArc(a1)
			} else {
				writeArc(a)
			}
			pen = a.EndPoint()
		case ClosePathKind:
			write(z)
			pen = start
		default:
			panic(fmt.Sprintf("unhandled case %v", el.Kind))
		}
	}
	return err
}
