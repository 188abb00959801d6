package squircle

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCircularOutline(t *testing.T) {
	tests := []struct {
		size  Size
		radii Radii
		kind  Kind
		n     int
	}{
		{Sz(200, 100), UniformRadii(20), RoundedRectangleKind, 9},
		{Sz(200, 100), Radii{20, 0, 20, 0}, RoundedRectangleKind, 7},
		{Sz(200, 100), UniformRadii(0), RectangleKind, 5},
		{Sz(100, 50), UniformRadii(25), HorizontalCapsuleKind, 9},
		{Sz(100, 100), UniformRadii(50), CircleKind, 3},
	}
	for _, tt := range tests {
		o := Circular{}.Outline(tt.size, tt.radii)
		if o.Kind != tt.kind {
			t.Errorf("%v %v: got kind %v, want %v", tt.size, tt.radii, o.Kind, tt.kind)
		}
		if len(o.Path) != tt.n {
			t.Errorf("%v %v: got %d elements, want %d: %v", tt.size, tt.radii, len(o.Path), tt.n, o.Path)
		}
	}

	o := Circular{}.Outline(Sz(200, 100), UniformRadii(20))
	want := 200*100 - 4*(20*20-math.Pi*20*20/4)
	diff(t, want, o.Area(), cmpopts.EquateApprox(1e-12, 1e-9))

	// Continuous corners cut away more of the box than circular ones, because
	// their transitions begin further along the edges.
	if c := DefaultContinuous.Outline(Sz(200, 100), UniformRadii(20)); !(c.Area() < o.Area()) {
		t.Errorf("continuous area %g isn't smaller than circular area %g", c.Area(), o.Area())
	}
}

func TestCornerRadius(t *testing.T) {
	diff(t, 12.0, Px(12).Pixels(3))
	diff(t, 36.0, Dp(12).Pixels(3))
	diff(t, "12px", Px(12).String())
	diff(t, "1.5dp", Dp(1.5).String())
	diff(t, CornerRadius{}, Px(0))
}

func TestCornerRadiiResolve(t *testing.T) {
	c := CornerRadii{
		TopStart:    Px(1),
		TopEnd:      Px(2),
		BottomEnd:   Dp(3),
		BottomStart: Px(4),
	}
	ltr := Radii{TopLeft: 1, TopRight: 2, BottomRight: 6, BottomLeft: 4}
	diff(t, ltr, c.Resolve(LTR, 2))
	// The zero value mirrors the corners in right-to-left layouts.
	diff(t, Radii{TopLeft: 2, TopRight: 1, BottomRight: 4, BottomLeft: 6}, c.Resolve(RTL, 2))

	c.IgnoreRTL = true
	diff(t, ltr, c.Resolve(LTR, 2))
	diff(t, ltr, c.Resolve(RTL, 2))
}

func TestRoundedShapes(t *testing.T) {
	size := Sz(200, 100)

	rect := Rectangle{}.Outline(size, LTR, 1)
	diff(t, RectangleKind, rect.Kind)
	diff(t, Radii{}, Rectangle{}.CornerRadii(size, RTL, 2))

	rr := RoundedRectangle{CornerRadius: Dp(10)}
	diff(t, UniformRadii(20), rr.CornerRadii(size, LTR, 2))
	diff(t, DefaultContinuous.Outline(size, UniformRadii(20)), rr.Outline(size, LTR, 2))
	diff(t, rr.Outline(size, LTR, 2), rr.Uneven().Outline(size, RTL, 2))

	circular := RoundedRectangle{CornerRadius: Px(20), Style: Circular{}}
	diff(t, Circular{}.Outline(size, UniformRadii(20)), circular.Outline(size, LTR, 1))

	for _, r := range []CornerRadius{Px(0), Px(-4), Dp(math.NaN())} {
		o := RoundedRectangle{CornerRadius: r}.Outline(size, LTR, 1)
		diff(t, rect, o)
	}

	uneven := UnevenRoundedRectangle{Corners: CornerRadii{TopStart: Px(30)}}
	diff(t, Radii{TopRight: 30}, uneven.CornerRadii(size, RTL, 1))
	ltr := uneven.Outline(size, LTR, 1)
	rtl := uneven.Outline(size, RTL, 1)
	// Mirroring the right-to-left outline horizontally gives the same shape
	// as the left-to-right one.
	mirrored := rtl.Path.Transform(FlipX.ThenTranslate(Vec(200, 0)))
	diff(t, ltr.BoundingBox(), mirrored.BoundingBox(), approx)
	diff(t, ltr.Area(), -mirrored.SignedArea(), cmpopts.EquateApprox(1e-12, 1e-9))

	capsule := Capsule{}
	diff(t, UniformRadii(50), capsule.CornerRadii(size, LTR, 3))
	diff(t, HorizontalCapsuleKind, capsule.Outline(size, LTR, 3).Kind)
	diff(t, VerticalCapsuleKind, capsule.Outline(Sz(100, 200), LTR, 3).Kind)
	diff(t, CircleKind, capsule.Outline(Sz(100, 100), LTR, 3).Kind)
	diff(t, 9, len(Capsule{Style: Circular{}}.Outline(size, LTR, 1).Path))
}
