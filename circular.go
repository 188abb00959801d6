package squircle

import "math"

// Circular is the style of ordinary rounded corners made of quarter circles,
// as drawn by most toolkits. Curvature jumps where the arcs meet the edges.
//
// Circular outlines use the same clamping, classification and starting point
// as [Continuous] ones. Rounded rectangles have five elements plus one ArcTo
// per corner with a positive radius; capsules are rounded rectangles whose
// straight edges happen to be short.
type Circular struct{}

// Outline implements [Style].
func (Circular) Outline(size Size, radii Radii) Outline {
	w, h := size.Width, size.Height
	r := radii.Clamp(maxRadius(size))
	kind := classify(size, r)

	var p Path
	switch kind {
	case RectangleKind:
		b := outlineBuilder{}
		b.rectangle(w, h)
		p = b.path
	case CircleKind:
		b := outlineBuilder{}
		b.circle(w)
		p = b.path
	default:
		p = make(Path, 0, 9)
		p.MoveTo(Pt(0, r.TopLeft))
		if r.TopLeft > 0 {
			p.ArcTo(Pt(r.TopLeft, r.TopLeft), r.TopLeft, math.Pi, math.Pi/2)
		}
		p.LineTo(Pt(w-r.TopRight, 0))
		if r.TopRight > 0 {
			p.ArcTo(Pt(w-r.TopRight, r.TopRight), r.TopRight, -math.Pi/2, math.Pi/2)
		}
		p.LineTo(Pt(w, h-r.BottomRight))
		if r.BottomRight > 0 {
			p.ArcTo(Pt(w-r.BottomRight, h-r.BottomRight), r.BottomRight, 0, math.Pi/2)
		}
		p.LineTo(Pt(r.BottomLeft, h))
		if r.BottomLeft > 0 {
			p.ArcTo(Pt(r.BottomLeft, h-r.BottomLeft), r.BottomLeft, math.Pi/2, math.Pi/2)
		}
		p.ClosePath()
	}
	return Outline{Kind: kind, Size: size, Path: p}
}
