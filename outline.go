package squircle

import (
	"fmt"
	"io"
	"iter"
	"math"
)

// Radii are the radii of the four corners of a box, clockwise from the top
// left corner, in the same unit as the box's size. A radius of zero is a
// sharp corner.
type Radii struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// UniformRadii returns radii that are r for all four corners.
func UniformRadii(r float64) Radii {
	return Radii{r, r, r, r}
}

func (r Radii) String() string {
	return fmt.Sprintf("Radii(%g, %g, %g, %g)", r.TopLeft, r.TopRight, r.BottomRight, r.BottomLeft)
}

// Clamp clamps each radius to [0, limit]. NaN radii become 0.
func (r Radii) Clamp(limit float64) Radii {
	clamp := func(v float64) float64 {
		if !(v > 0) {
			return 0
		}
		return min(v, limit)
	}
	return Radii{
		clamp(r.TopLeft),
		clamp(r.TopRight),
		clamp(r.BottomRight),
		clamp(r.BottomLeft),
	}
}

// IsUniform reports whether all four radii are equal.
func (r Radii) IsUniform() bool {
	return r.TopLeft == r.TopRight && r.TopRight == r.BottomRight && r.BottomRight == r.BottomLeft
}

// IsZero reports whether all four corners are sharp.
func (r Radii) IsZero() bool {
	return r == Radii{}
}

// maxRadius returns the largest radius a corner of a box of the given size
// can have.
func maxRadius(size Size) float64 {
	return max(0, size.MinSide()*0.5)
}

// Kind classifies outlines by the construction used for them.
type Kind int

const (
	// A box without rounded corners.
	RectangleKind Kind = iota + 1
	// A box that is wider than tall, with semicircular left and right ends.
	HorizontalCapsuleKind
	// A box that is taller than wide, with semicircular top and bottom ends.
	VerticalCapsuleKind
	// A square box with corners rounded all the way to a circle.
	CircleKind
	// Any other combination of corners.
	RoundedRectangleKind
)

func (k Kind) String() string {
	switch k {
	case RectangleKind:
		return "rectangle"
	case HorizontalCapsuleKind:
		return "horizontal capsule"
	case VerticalCapsuleKind:
		return "vertical capsule"
	case CircleKind:
		return "circle"
	case RoundedRectangleKind:
		return "rounded rectangle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Classify determines which kind of outline a box of the given size with the
// given corner radii has. Radii are clamped to [0, min(width, height)/2]
// first.
//
// A box is a capsule or a circle when all four radii are equal and either the
// two top corners span the full width or the two left corners span the full
// height.
func Classify(size Size, radii Radii) Kind {
	return classify(size, radii.Clamp(maxRadius(size)))
}

func classify(size Size, r Radii) Kind {
	w, h := size.Width, size.Height
	if r.IsUniform() && r.TopLeft > 0 && (r.TopLeft+r.TopRight == w || r.TopLeft+r.BottomLeft == h) {
		switch {
		case w > h:
			return HorizontalCapsuleKind
		case w < h:
			return VerticalCapsuleKind
		default:
			return CircleKind
		}
	}
	if r.IsZero() {
		return RectangleKind
	}
	return RoundedRectangleKind
}

// Style computes the outlines of boxes with rounded corners.
type Style interface {
	Outline(size Size, radii Radii) Outline
}

var (
	_ Style = Continuous{}
	_ Style = Circular{}
)

// Continuous is the style of corners whose curvature changes continuously,
// without the jump between straight edge and arc of circular corners.
//
// Corners whose radius leaves enough straight edge next to them are built
// from Profile. As a radius approaches half of the box's smaller side, its
// corner blends towards CapsuleProfile, which has no arc and doesn't extend
// as far along the edges, so that neighboring corners never overlap.
//
// The zero value is equivalent to [DefaultContinuous].
type Continuous struct {
	Profile        Profile
	CapsuleProfile Profile
}

// DefaultContinuous is the continuous style with the predefined profiles.
var DefaultContinuous = Continuous{
	Profile:        RoundedRectangleProfile,
	CapsuleProfile: CapsuleProfile,
}

// ComputeOutline returns the outline of a width × height box with the given
// corner radii, using profile for corners with room to spare and
// [CapsuleProfile] for corners that approach capsules.
func ComputeOutline(width, height, topLeft, topRight, bottomRight, bottomLeft float64, profile Profile) Outline {
	c := Continuous{Profile: profile, CapsuleProfile: CapsuleProfile}
	return c.Outline(Sz(width, height), Radii{topLeft, topRight, bottomRight, bottomLeft})
}

func (c Continuous) profiles() (prof, capsule Profile) {
	if c == (Continuous{}) {
		return DefaultContinuous.Profile, DefaultContinuous.CapsuleProfile
	}
	return c.Profile, c.CapsuleProfile
}

// Outline implements [Style].
//
// The outline starts on the left edge and runs clockwise. Its paths always end
// in a ClosePath element and, for a given Kind, the number of elements is
// fixed:
//
//   - rectangles have a MoveTo, three LineTos and a ClosePath;
//   - circles have a MoveTo, one full-turn ArcTo and a ClosePath;
//   - horizontal capsules have ten elements and vertical capsules nine;
//   - rounded rectangles have five plus a CubicTo, ArcTo and CubicTo for
//     each corner with a positive radius.
//
// Radii are clamped as by [Radii.Clamp]. Boxes of negative size produce
// unspecified outlines.
func (c Continuous) Outline(size Size, radii Radii) Outline {
	w, h := size.Width, size.Height
	r := radii.Clamp(maxRadius(size))
	kind := classify(size, r)
	b := outlineBuilder{}
	prof, capsule := c.profiles()
	switch kind {
	case RectangleKind:
		b.rectangle(w, h)
	case CircleKind:
		b.circle(w)
	case HorizontalCapsuleKind:
		b.horizontalCapsule(w, h, prof, capsule)
	case VerticalCapsuleKind:
		b.verticalCapsule(w, h, prof, capsule)
	default:
		b.roundedRectangle(w, h, r, prof, capsule)
	}
	return Outline{Kind: kind, Size: size, Path: b.path}
}

// Placements of the canonical half corner. The canonical curve is the half of
// the top right corner that leaves the top edge; each placement maps it onto
// one of the eight halves, with the local origin moved to the point where
// a circular corner would meet the straight edge. The mapped point is
// (N0·x + N2·y + ox, N1·x + N3·y + oy).
//
// Forward halves are traversed as the canonical curve is, from the edge to the
// arc. Reversed halves run from the arc back to the edge.
func placeTopLeftV(x, y float64) Affine     { return Affine{0, -1, 1, 0, x, y} }
func placeTopLeftH(x, y float64) Affine     { return Affine{-1, 0, 0, 1, x, y} }
func placeTopRightH(x, y float64) Affine    { return Affine{1, 0, 0, 1, x, y} }
func placeTopRightV(x, y float64) Affine    { return Affine{0, -1, -1, 0, x, y} }
func placeBottomRightV(x, y float64) Affine { return Affine{0, 1, -1, 0, x, y} }
func placeBottomRightH(x, y float64) Affine { return Affine{1, 0, 0, -1, x, y} }
func placeBottomLeftH(x, y float64) Affine  { return Affine{-1, 0, 0, -1, x, y} }
func placeBottomLeftV(x, y float64) Affine  { return Affine{0, 1, 1, 0, x, y} }

// halfCorner is one of the eight transitions between an edge and a corner
// arc.
type halfCorner struct {
	bez    CubicBez // canonical, for a radius of 1
	radius float64
	// offset is where the transition starts on the edge, relative to the
	// point where a circular corner would meet it. It is never positive.
	offset float64
}

func (hc halfCorner) start(at Affine) Point {
	return Pt(hc.bez.P0.X*hc.radius, hc.bez.P0.Y*hc.radius).Transform(at)
}

type outlineBuilder struct {
	path Path
}

func (b *outlineBuilder) forward(hc halfCorner, at Affine) {
	c := hc.bez.Mul(hc.radius).Transform(at)
	b.path.CubicTo(c.P1, c.P2, c.P3)
}

func (b *outlineBuilder) reversed(hc halfCorner, at Affine) {
	c := hc.bez.Mul(hc.radius)
	// Interpolated profiles must not pull the end of the curve past the
	// corner's own offset.
	c.P0.X = max(c.P0.X, hc.offset)
	c = c.Transform(at)
	b.path.CubicTo(c.P2, c.P1, c.P0)
}

// arc emits a corner's arc, with its radius scaled by 1/arcCurvatureScale.
func (b *outlineBuilder) arc(center Point, radius, baseAngle, arcFraction, arcCurvatureScale float64) {
	sweep := math.Pi * 0.5 * arcFraction
	a := Arc{
		Center:     center,
		Radius:     radius,
		StartAngle: baseAngle + math.Pi*0.5*(1-arcFraction)*0.5,
		SweepAngle: sweep,
	}.ScaledRadius(1 / arcCurvatureScale)
	b.path.Push(ArcToArc(a))
}

func (b *outlineBuilder) rectangle(w, h float64) {
	b.path = make(Path, 0, 5)
	b.path.MoveTo(Pt(0, 0))
	b.path.LineTo(Pt(w, 0))
	b.path.LineTo(Pt(w, h))
	b.path.LineTo(Pt(0, h))
	b.path.ClosePath()
}

func (b *outlineBuilder) circle(size float64) {
	r := size * 0.5
	b.path = make(Path, 0, 3)
	b.path.MoveTo(Pt(0, r))
	b.path.ArcTo(Pt(r, r), r, math.Pi, 2*math.Pi)
	b.path.ClosePath()
}

// sideRatio is the blend ratio of one side of a corner: 0 for a corner that
// must be a capsule's, 1 for one with enough room for the full profile.
// center is half of the side's box dimension.
func sideRatio(center, radius, extendedFraction float64) float64 {
	if radius <= 0 || extendedFraction <= 0 {
		return 1
	}
	return min(max((center/radius-1)/extendedFraction, 0), 1)
}

// cornerProfiles returns the profiles of the two halves of a corner with the
// given side ratios, blended between capsule and prof by the smaller of the
// two.
func cornerProfiles(prof, capsule Profile, ratioV, ratioH float64) (v, h Profile) {
	ratio := min(ratioV, ratioH)
	extFrac := lerp(capsule.ExtendedFraction, prof.ExtendedFraction, ratio)
	shared := Profile{
		ArcFraction:          lerp(capsule.ArcFraction, prof.ArcFraction, ratio),
		BezierCurvatureScale: lerp(capsule.BezierCurvatureScale, prof.BezierCurvatureScale, ratio),
		ArcCurvatureScale:    1 + (prof.ArcCurvatureScale-1)*ratio,
	}
	v, h = shared, shared
	v.ExtendedFraction = extFrac * ratioV
	h.ExtendedFraction = extFrac * ratioH
	return v, h
}

func newHalfCorner(p Profile, radius float64) halfCorner {
	hc := halfCorner{
		radius: radius,
		offset: -radius * p.ExtendedFraction,
	}
	if radius > 0 {
		hc.bez = p.Bezier()
	} else {
		hc.bez = CubicBez{P0: Pt(-p.ExtendedFraction, 0)}
	}
	return hc
}

func (b *outlineBuilder) roundedRectangle(w, h float64, r Radii, prof, capsule Profile) {
	centerX := w * 0.5
	centerY := h * 0.5
	e := prof.ExtendedFraction

	tlV, tlH := cornerProfiles(prof, capsule, sideRatio(centerY, r.TopLeft, e), sideRatio(centerX, r.TopLeft, e))
	trV, trH := cornerProfiles(prof, capsule, sideRatio(centerY, r.TopRight, e), sideRatio(centerX, r.TopRight, e))
	brV, brH := cornerProfiles(prof, capsule, sideRatio(centerY, r.BottomRight, e), sideRatio(centerX, r.BottomRight, e))
	blV, blH := cornerProfiles(prof, capsule, sideRatio(centerY, r.BottomLeft, e), sideRatio(centerX, r.BottomLeft, e))

	n := 5
	for _, radius := range [...]float64{r.TopLeft, r.TopRight, r.BottomRight, r.BottomLeft} {
		if radius > 0 {
			n += 3
		}
	}
	b.path = make(Path, 0, n)

	// Top left
	hcV := newHalfCorner(tlV, r.TopLeft)
	hcH := newHalfCorner(tlH, r.TopLeft)
	atV := placeTopLeftV(0, r.TopLeft)
	b.path.MoveTo(hcV.start(atV))
	if r.TopLeft > 0 {
		b.forward(hcV, atV)
		b.arc(Pt(r.TopLeft, r.TopLeft), r.TopLeft, math.Pi, tlV.ArcFraction, tlV.ArcCurvatureScale)
		b.reversed(hcH, placeTopLeftH(r.TopLeft, 0))
	}

	// Top right
	hcH = newHalfCorner(trH, r.TopRight)
	hcV = newHalfCorner(trV, r.TopRight)
	atH := placeTopRightH(w-r.TopRight, 0)
	b.path.LineTo(hcH.start(atH))
	if r.TopRight > 0 {
		b.forward(hcH, atH)
		b.arc(Pt(w-r.TopRight, r.TopRight), r.TopRight, -math.Pi*0.5, trH.ArcFraction, trH.ArcCurvatureScale)
		b.reversed(hcV, placeTopRightV(w, r.TopRight))
	}

	// Bottom right
	hcV = newHalfCorner(brV, r.BottomRight)
	hcH = newHalfCorner(brH, r.BottomRight)
	atV = placeBottomRightV(w, h-r.BottomRight)
	b.path.LineTo(hcV.start(atV))
	if r.BottomRight > 0 {
		b.forward(hcV, atV)
		b.arc(Pt(w-r.BottomRight, h-r.BottomRight), r.BottomRight, 0, brV.ArcFraction, brV.ArcCurvatureScale)
		b.reversed(hcH, placeBottomRightH(w-r.BottomRight, h))
	}

	// Bottom left
	hcH = newHalfCorner(blH, r.BottomLeft)
	hcV = newHalfCorner(blV, r.BottomLeft)
	atH = placeBottomLeftH(r.BottomLeft, h)
	b.path.LineTo(hcH.start(atH))
	if r.BottomLeft > 0 {
		b.forward(hcH, atH)
		b.arc(Pt(r.BottomLeft, h-r.BottomLeft), r.BottomLeft, math.Pi*0.5, blH.ArcFraction, blH.ArcCurvatureScale)
		b.reversed(hcV, placeBottomLeftV(0, h-r.BottomLeft))
	}

	b.path.ClosePath()
}

// capsuleHalf returns the transition shared by all four halves of a capsule
// whose straight edges are 2 × center long measured through the middle, and
// whose ends have the given radius.
func capsuleHalf(center, radius float64, prof, capsule Profile) (halfCorner, Profile) {
	ratio := sideRatio(center, radius, capsule.ExtendedFraction)
	p := Profile{
		ExtendedFraction:     capsule.ExtendedFraction * ratio,
		ArcFraction:          capsule.ArcFraction,
		BezierCurvatureScale: lerp(capsule.BezierCurvatureScale, prof.BezierCurvatureScale, ratio),
		ArcCurvatureScale:    1,
	}
	return newHalfCorner(p, radius), p
}

func (b *outlineBuilder) horizontalCapsule(w, h float64, prof, capsule Profile) {
	radius := h * 0.5
	hc, p := capsuleHalf(w*0.5, radius, prof, capsule)
	bezAngle := p.BezierAngle()
	sweep := (bezAngle + p.ArcAngle()) * 2

	left := Arc{Center: Pt(radius, radius), Radius: radius, StartAngle: math.Pi*0.5 + bezAngle, SweepAngle: sweep}
	right := Arc{Center: Pt(w-radius, radius), Radius: radius, StartAngle: -(math.Pi*0.5 - bezAngle), SweepAngle: sweep}

	b.path = make(Path, 0, 10)
	b.path.MoveTo(left.StartPoint())
	b.path.Push(ArcToArc(left))
	b.reversed(hc, placeTopLeftH(radius, 0))
	atH := placeTopRightH(w-radius, 0)
	b.path.LineTo(hc.start(atH))
	b.forward(hc, atH)
	b.path.Push(ArcToArc(right))
	b.reversed(hc, placeBottomRightH(w-radius, h))
	atH = placeBottomLeftH(radius, h)
	b.path.LineTo(hc.start(atH))
	b.forward(hc, atH)
	b.path.ClosePath()
}

func (b *outlineBuilder) verticalCapsule(w, h float64, prof, capsule Profile) {
	radius := w * 0.5
	hc, p := capsuleHalf(h*0.5, radius, prof, capsule)
	bezAngle := p.BezierAngle()
	sweep := (bezAngle + p.ArcAngle()) * 2

	top := Arc{Center: Pt(radius, radius), Radius: radius, StartAngle: -(math.Pi - bezAngle), SweepAngle: sweep}
	bottom := Arc{Center: Pt(w-radius, h-radius), Radius: radius, StartAngle: bezAngle, SweepAngle: sweep}

	b.path = make(Path, 0, 9)
	atV := placeTopLeftV(0, radius)
	b.path.MoveTo(hc.start(atV))
	b.forward(hc, atV)
	b.path.Push(ArcToArc(top))
	b.reversed(hc, placeTopRightV(w, radius))
	atV = placeBottomRightV(w, h-radius)
	b.path.LineTo(hc.start(atV))
	b.forward(hc, atV)
	b.path.Push(ArcToArc(bottom))
	b.reversed(hc, placeBottomLeftV(0, h-radius))
	b.path.ClosePath()
}

// Outline is the closed boundary of a box with rounded corners, as computed
// by a [Style].
type Outline struct {
	Kind Kind
	Size Size
	Path Path
}

// Elements returns the outline's path elements, including arcs.
func (o Outline) Elements() iter.Seq[PathElement] {
	return o.Path.Elements()
}

// PathElements implements [Shape]. Arcs are approximated by cubic Béziers.
func (o Outline) PathElements(tolerance float64) iter.Seq[PathElement] {
	return o.Path.PathElements(tolerance)
}

// BoundingBox implements [Shape].
func (o Outline) BoundingBox() Rect {
	return o.Path.BoundingBox()
}

// Area implements [ClosedShape].
func (o Outline) Area() float64 {
	return o.Path.SignedArea()
}

// Contains implements [ClosedShape].
func (o Outline) Contains(pt Point) bool {
	return o.Path.Contains(pt)
}

// Translate returns the outline moved by v.
func (o Outline) Translate(v Vec2) Outline {
	o.Path = o.Path.Transform(Translate(v))
	return o
}

// SVG returns the outline as SVG path data.
func (o Outline) SVG(opts SVGOptions) string {
	return o.Path.SVG(opts)
}

func (o Outline) WriteSVG(w io.Writer, opts SVGOptions) error {
	return o.Path.WriteSVG(w, opts)
}
