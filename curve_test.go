package squircle

import (
	"math"
	"sort"
	"strings"
	"testing"
)

func checkRoots(t *testing.T, roots, expected []float64) {
	t.Helper()
	if len(roots) != len(expected) {
		t.Fatalf("got %d roots, expected %d", len(roots), len(expected))
	}
	const epsilon = 1e-12
	sort.Float64s(roots)
	sort.Float64s(expected)
	for i := range roots {
		if math.Abs(roots[i]-expected[i]) > epsilon {
			t.Errorf("root %d is %v but we expected %v", i, roots[i], expected[i])
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	slice := func(roots [2]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveQuadratic(-5.0, 0.0, 1.0)), []float64{-math.Sqrt(5), math.Sqrt(5)})
	checkRoots(t, slice(SolveQuadratic(5.0, 0.0, 1.0)), []float64{})
	checkRoots(t, slice(SolveQuadratic(5.0, 1.0, 0.0)), []float64{-5.0})
	checkRoots(t, slice(SolveQuadratic(1.0, 2.0, 1.0)), []float64{-1.0})
	checkRoots(t, slice(SolveQuadratic(0.0, 0.0, 0.0)), []float64{0.0})
	checkRoots(t, slice(SolveQuadratic(1.0, 0.0, 0.0)), []float64{})
}

func TestSVGSingle(t *testing.T) {
	var path Path
	path.MoveTo(Pt(10, 10))
	path.CubicTo(Pt(20, 20), Pt(30, 30), Pt(40, 40))
	want := "M10,10 C20,20 30,30 40,40"
	got := path.SVG(SVGOptions{})
	diff(t, want, got)
}

func TestSVGTwoMove(t *testing.T) {
	var path Path
	path.MoveTo(Pt(10, 10))
	path.CubicTo(Pt(20, 20), Pt(30, 30), Pt(40, 40))
	path.MoveTo(Pt(50, 50))
	path.CubicTo(Pt(30, 30), Pt(20, 20), Pt(10, 10))
	path.ClosePath()
	want := "M10,10 C20,20 30,30 40,40 M50,50 C30,30 20,20 10,10 Z"
	got := path.SVG(SVGOptions{})
	diff(t, want, got)
}

func TestSVGPrecision(t *testing.T) {
	var path Path
	path.MoveTo(Pt(1.0/3.0, -0.0001))
	path.LineTo(Pt(2.5, 10))
	diff(t, "M0.333,0 L2.5,10", path.SVG(SVGOptions{MaxPrecision: 3}))
	diff(t, "M0.3333333333333333,-0.0001 L2.5,10", path.SVG(SVGOptions{}))
}

func TestSVGArc(t *testing.T) {
	var path Path
	path.MoveTo(Pt(0, 10))
	// Quarter circle from the left edge up to the top edge, clockwise in y-down
	// coordinates.
	path.ArcTo(Pt(10, 10), 10, math.Pi, math.Pi/2)
	path.LineTo(Pt(20, 0))
	path.ClosePath()
	want := "M0,10 A10,10 0 0,1 10,0 L20,0 Z"
	diff(t, want, path.SVG(SVGOptions{MaxPrecision: 6}))
}

func TestSVGArcImplicitLine(t *testing.T) {
	var path Path
	path.MoveTo(Pt(0, 0))
	path.ArcTo(Pt(10, 10), 10, math.Pi, -math.Pi/2)
	want := "M0,0 L0,10 A10,10 0 0,0 10,20"
	diff(t, want, path.SVG(SVGOptions{MaxPrecision: 6}))
}

func TestSVGFullCircle(t *testing.T) {
	var path Path
	path.MoveTo(Pt(0, 5))
	path.ArcTo(Pt(5, 5), 5, math.Pi, 2*math.Pi)
	path.ClosePath()
	got := path.SVG(SVGOptions{MaxPrecision: 6})
	// A single SVG arc command can't describe a full turn.
	if n := strings.Count(got, "A"); n != 2 {
		t.Errorf("got %d arc commands in %q, want 2", n, got)
	}
	diff(t, "M0,5 A5,5 0 0,1 10,5 A5,5 0 0,1 0,5 Z", got)
}
