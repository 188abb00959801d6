package squircle

import "fmt"

// Unit is the unit of a [CornerRadius].
type Unit int

const (
	// Pixels are the unit of the box's size.
	Pixels Unit = iota
	// Density-independent pixels are converted to pixels by multiplying with
	// the display's density.
	DensityIndependentPixels
)

// CornerRadius is a corner radius in pixels or density-independent pixels.
// The zero value is a radius of zero pixels.
type CornerRadius struct {
	Value float64
	Unit  Unit
}

// Px returns a radius of v pixels.
func Px(v float64) CornerRadius { return CornerRadius{Value: v, Unit: Pixels} }

// Dp returns a radius of v density-independent pixels.
func Dp(v float64) CornerRadius { return CornerRadius{Value: v, Unit: DensityIndependentPixels} }

func (c CornerRadius) String() string {
	if c.Unit == DensityIndependentPixels {
		return fmt.Sprintf("%gdp", c.Value)
	}
	return fmt.Sprintf("%gpx", c.Value)
}

// Pixels returns the radius in pixels.
func (c CornerRadius) Pixels(density float64) float64 {
	if c.Unit == DensityIndependentPixels {
		return c.Value * density
	}
	return c.Value
}

// LayoutDirection is the direction in which text, and thus the start and end
// of a box, runs.
type LayoutDirection int

const (
	LTR LayoutDirection = iota
	RTL
)

// CornerRadii are corner radii specified relative to the layout direction.
// In a left-to-right layout the start is on the left, in a right-to-left one
// it is on the right.
type CornerRadii struct {
	TopStart    CornerRadius
	TopEnd      CornerRadius
	BottomEnd   CornerRadius
	BottomStart CornerRadius
	// IgnoreRTL keeps start on the left in right-to-left layouts.
	IgnoreRTL bool
}

// Resolve returns the radii in pixels, in physical positions.
func (c CornerRadii) Resolve(dir LayoutDirection, density float64) Radii {
	if !c.IgnoreRTL && dir == RTL {
		return Radii{
			TopLeft:     c.TopEnd.Pixels(density),
			TopRight:    c.TopStart.Pixels(density),
			BottomRight: c.BottomStart.Pixels(density),
			BottomLeft:  c.BottomEnd.Pixels(density),
		}
	}
	return Radii{
		TopLeft:     c.TopStart.Pixels(density),
		TopRight:    c.TopEnd.Pixels(density),
		BottomRight: c.BottomEnd.Pixels(density),
		BottomLeft:  c.BottomStart.Pixels(density),
	}
}

// RoundedShape is a box shape whose corner radii may depend on the box's size,
// the layout direction and the display density.
type RoundedShape interface {
	// CornerRadii returns the radii that Outline uses, before clamping.
	CornerRadii(size Size, dir LayoutDirection, density float64) Radii
	Outline(size Size, dir LayoutDirection, density float64) Outline
}

var (
	_ RoundedShape = Rectangle{}
	_ RoundedShape = RoundedRectangle{}
	_ RoundedShape = UnevenRoundedRectangle{}
	_ RoundedShape = Capsule{}
)

func styleOrDefault(s Style) Style {
	if s == nil {
		return DefaultContinuous
	}
	return s
}

// Rectangle is a box with sharp corners.
type Rectangle struct{}

func (Rectangle) CornerRadii(Size, LayoutDirection, float64) Radii { return Radii{} }

func (Rectangle) Outline(size Size, _ LayoutDirection, _ float64) Outline {
	b := outlineBuilder{}
	b.rectangle(size.Width, size.Height)
	return Outline{Kind: RectangleKind, Size: size, Path: b.path}
}

// RoundedRectangle is a box with four corners of the same radius. A nil
// Style means [DefaultContinuous].
type RoundedRectangle struct {
	CornerRadius CornerRadius
	Style        Style
}

func (s RoundedRectangle) CornerRadii(_ Size, _ LayoutDirection, density float64) Radii {
	return UniformRadii(s.CornerRadius.Pixels(density))
}

// Outline returns a plain rectangle if the radius isn't positive.
func (s RoundedRectangle) Outline(size Size, dir LayoutDirection, density float64) Outline {
	r := s.CornerRadius.Pixels(density)
	if !(r > 0) {
		return Rectangle{}.Outline(size, dir, density)
	}
	return styleOrDefault(s.Style).Outline(size, UniformRadii(r))
}

// Uneven returns the same shape as an [UnevenRoundedRectangle].
func (s RoundedRectangle) Uneven() UnevenRoundedRectangle {
	return UnevenRoundedRectangle{
		Corners: CornerRadii{
			TopStart:    s.CornerRadius,
			TopEnd:      s.CornerRadius,
			BottomEnd:   s.CornerRadius,
			BottomStart: s.CornerRadius,
		},
		Style: s.Style,
	}
}

// UnevenRoundedRectangle is a box whose corners have independent radii. A nil
// Style means [DefaultContinuous].
type UnevenRoundedRectangle struct {
	Corners CornerRadii
	Style   Style
}

func (s UnevenRoundedRectangle) CornerRadii(_ Size, dir LayoutDirection, density float64) Radii {
	return s.Corners.Resolve(dir, density)
}

func (s UnevenRoundedRectangle) Outline(size Size, dir LayoutDirection, density float64) Outline {
	return styleOrDefault(s.Style).Outline(size, s.Corners.Resolve(dir, density))
}

// Capsule is a box whose shorter sides are fully rounded. A nil Style means
// [DefaultContinuous].
type Capsule struct {
	Style Style
}

func (s Capsule) CornerRadii(size Size, _ LayoutDirection, _ float64) Radii {
	return UniformRadii(size.MinSide() * 0.5)
}

func (s Capsule) Outline(size Size, dir LayoutDirection, density float64) Outline {
	return styleOrDefault(s.Style).Outline(size, s.CornerRadii(size, dir, density))
}
