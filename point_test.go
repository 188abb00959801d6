package squircle

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	diff(t, Pt(3, 4).Mul(2), Pt(6, 8))
	diff(t, Pt(0, 0).Lerp(Pt(10, 20), 0.25), Pt(2.5, 5))
	diff(t, Pt(0, 0).Midpoint(Pt(10, 20)), Pt(5, 10))
}

func TestVec2Arithmetic(t *testing.T) {
	diff(t, Vec(1, 2).Add(Vec(3, -4)), Vec(4, -2))
	diff(t, Vec(1, 2).Sub(Vec(3, -4)), Vec(-2, 6))
	diff(t, Vec(1, -2).Mul(3), Vec(3, -6))
	diff(t, Vec(3, -6).Div(3), Vec(1, -2))
	diff(t, Vec(1, -2).Negate(), Vec(-1, 2))
	diff(t, Vec(math.Inf(1), 0).Negate(), Vec(math.Inf(-1), 0))
	diff(t, Vec(3, 4).Normalize(), Vec(0.6, 0.8), approx)
	if v := Vec(0, 0).Normalize(); !v.IsNaN() {
		t.Errorf("normalizing the zero vector gave %v, want NaN", v)
	}
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestVec2Cross(t *testing.T) {
	// With y pointing down, (0, 1) is a clockwise quarter turn from (1, 0).
	if c := Vec(1, 0).Cross(Vec(0, 1)); c != 1 {
		t.Errorf("got cross product %v, want 1", c)
	}
	if c := Vec(0, 1).Cross(Vec(1, 0)); c != -1 {
		t.Errorf("got cross product %v, want -1", c)
	}
	if c := Vec(2, 2).Cross(Vec(-1, -1)); c != 0 {
		t.Errorf("got cross product %v for parallel vectors, want 0", c)
	}
}

func TestVecFromAngle(t *testing.T) {
	for _, th := range []float64{0, 0.3, math.Pi / 2, 2, -1.5} {
		v := VecFromAngle(th)
		diff(t, 1.0, v.Hypot(), approx)
		diff(t, th, v.Angle(), approx)
	}
}

func TestLerp(t *testing.T) {
	// The end points must be reproduced exactly.
	for _, tt := range []struct{ a, b float64 }{
		{0.5286651 * 0.75, 0.5286651},
		{1, 1.0732051},
		{0, 5.0 / 9.0},
	} {
		if got := lerp(tt.a, tt.b, 0); got != tt.a {
			t.Errorf("lerp(%v, %v, 0) = %v", tt.a, tt.b, got)
		}
		if got := lerp(tt.a, tt.b, 1); got != tt.b {
			t.Errorf("lerp(%v, %v, 1) = %v", tt.a, tt.b, got)
		}
	}
}
