package squircle

import (
	"math"
	"testing"
)

func TestArcEndpoints(t *testing.T) {
	a := Arc{Center: Pt(1, 1), Radius: 2, StartAngle: 0, SweepAngle: math.Pi / 2}
	assertNear(t, a.StartPoint(), Pt(3, 1), 1e-12)
	assertNear(t, a.EndPoint(), Pt(1, 3), 1e-12)

	a0, a1 := a.Split()
	diff(t, a.StartPoint(), a0.StartPoint())
	assertNear(t, a0.EndPoint(), a1.StartPoint(), 1e-12)
	diff(t, a.EndPoint(), a1.EndPoint())
}

func TestArcCubics(t *testing.T) {
	arcs := []Arc{
		{Center: Pt(0, 0), Radius: 10, StartAngle: 0, SweepAngle: math.Pi / 2},
		{Center: Pt(5, -3), Radius: 100, StartAngle: 1, SweepAngle: -2.5},
		{Center: Pt(0, 0), Radius: 1, StartAngle: math.Pi, SweepAngle: 2 * math.Pi},
	}
	for _, tol := range []float64{1, 0.1, 1e-3} {
		for _, a := range arcs {
			n := 0
			var prev Point
			for c := range a.Cubics(tol) {
				if n == 0 {
					diff(t, a.StartPoint(), c.P0)
				} else {
					diff(t, prev, c.P0)
				}
				for i := range 9 {
					pt := c.Eval(float64(i) / 8)
					if d := math.Abs(pt.Distance(a.Center) - a.Radius); d > tol {
						t.Errorf("%v: point at distance %g from arc, tolerance %g", a, d, tol)
					}
				}
				prev = c.P3
				n++
			}
			if n == 0 {
				t.Fatalf("%v: no curves", a)
			}
			diff(t, a.EndPoint(), prev)
		}
	}

	for range (Arc{Radius: 10}).Cubics(0.1) {
		t.Error("got curve for arc without sweep")
	}
}

func TestArcBoundingBox(t *testing.T) {
	tests := []struct {
		arc  Arc
		want Rect
	}{
		{Arc{Center: Pt(0, 0), Radius: 1, StartAngle: 0, SweepAngle: math.Pi / 2}, Rect{0, 0, 1, 1}},
		{Arc{Center: Pt(0, 0), Radius: 1, StartAngle: math.Pi / 2, SweepAngle: -math.Pi}, Rect{0, -1, 1, 1}},
		{Arc{Center: Pt(2, 3), Radius: 1, StartAngle: 0.3, SweepAngle: 2 * math.Pi}, Rect{1, 2, 3, 4}},
		{Arc{Center: Pt(0, 0), Radius: 2, StartAngle: 0.1, SweepAngle: 0.2}, NewRectFromPoints(
			Pt(2*math.Cos(0.1), 2*math.Sin(0.1)),
			Pt(2*math.Cos(0.3), 2*math.Sin(0.3)),
		)},
	}
	for _, tt := range tests {
		diff(t, tt.want, tt.arc.BoundingBox(), approx)
	}
}

func TestArcSignedArea(t *testing.T) {
	circle := Arc{Center: Pt(3, 4), Radius: 2, StartAngle: 0, SweepAngle: 2 * math.Pi}
	diff(t, 4*math.Pi, circle.SignedArea(), approx)

	// Arcs contribute to areas the same way the curves approximating them do.
	for _, a := range []Arc{
		{Center: Pt(10, 10), Radius: 10, StartAngle: math.Pi, SweepAngle: math.Pi / 2},
		{Center: Pt(-4, 7), Radius: 3, StartAngle: 2, SweepAngle: -1.2},
	} {
		var sum float64
		for c := range a.Cubics(1e-7) {
			sum += c.SignedArea()
		}
		if d := math.Abs(sum - a.SignedArea()); d > 1e-4 {
			t.Errorf("%v: area of arc and of curves differ by %g", a, d)
		}
	}
}

func TestArcScaledRadius(t *testing.T) {
	a := Arc{Center: Pt(10, 10), Radius: 10, StartAngle: math.Pi, SweepAngle: math.Pi / 2}
	for _, scale := range []float64{0.5, 1, 1.5} {
		s := a.ScaledRadius(scale)
		diff(t, a.Radius*scale, s.Radius)
		diff(t, a.StartAngle, s.StartAngle)
		diff(t, a.SweepAngle, s.SweepAngle)
		mid := a.StartAngle + a.SweepAngle/2
		assertNear(t, s.pointAt(mid), a.pointAt(mid), 1e-12)
	}
}

func TestArcTransform(t *testing.T) {
	a := Arc{Center: Pt(0, 0), Radius: 1, StartAngle: 0, SweepAngle: math.Pi / 2}

	flipped := a.Transform(FlipY)
	diff(t, -a.SweepAngle, flipped.SweepAngle)
	assertNear(t, flipped.StartPoint(), a.StartPoint().Transform(FlipY), 1e-12)
	assertNear(t, flipped.EndPoint(), a.EndPoint().Transform(FlipY), 1e-12)

	aff := Translate(Vec(5, 6)).Mul(Scale(2, 2)).Mul(Rotate(0.4))
	moved := a.Transform(aff)
	diff(t, 2.0, moved.Radius, approx)
	assertNear(t, moved.StartPoint(), a.StartPoint().Transform(aff), 1e-12)
	assertNear(t, moved.EndPoint(), a.EndPoint().Transform(aff), 1e-12)

	diff(t, Pt(1, 2), a.Translate(Vec(1, 2)).Center)
}
