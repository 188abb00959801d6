package squircle

import (
	"fmt"
	"math"
)

// Size is the size of the box an outline is built for. Negative sizes are not
// supported; outlines built for them are unspecified.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) MaxSide() float64 {
	return max(sz.Width, sz.Height)
}

func (sz Size) MinSide() float64 {
	return min(sz.Width, sz.Height)
}

// Center returns the center of a box of this size whose origin is at (0, 0).
func (sz Size) Center() Point {
	return Point{
		X: sz.Width * 0.5,
		Y: sz.Height * 0.5,
	}
}

func (sz Size) Area() float64 {
	return sz.Width * sz.Height
}

func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}

// Scale multiplies sz by f.
func (sz Size) Scale(f float64) Size {
	return Size{
		Width:  sz.Width * f,
		Height: sz.Height * f,
	}
}

// IsInf reports whether at least one of width and height is infinite.
func (sz Size) IsInf() bool {
	return math.IsInf(sz.Width, 0) || math.IsInf(sz.Height, 0)
}

// IsNaN reports whether at least one of width and height is NaN.
func (sz Size) IsNaN() bool {
	return math.IsNaN(sz.Width) || math.IsNaN(sz.Height)
}
