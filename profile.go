package squircle

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Profile is a set of coefficients describing one style of corner
// transition. A corner made from a profile consists of a cubic Bézier leaving
// the straight edge with zero curvature, a circular arc, and a mirrored Bézier
// returning to the other edge, with curvature continuous where the Béziers
// meet the arc.
//
// Profiles are plain values. Two profiles with equal coefficients describe
// the same corner and produce identical curves.
type Profile struct {
	// ExtendedFraction is how far, in multiples of the corner radius, the
	// Bézier transition reaches past the point where a circular corner would
	// meet the straight edge. Larger values give flatter transitions.
	ExtendedFraction float64 `toml:"extended_fraction"`

	// ArcFraction is the fraction of the corner's quarter turn covered by the
	// circular arc. The two Béziers cover the remainder equally. 0 means
	// there is no arc, 1 means the corner is a plain quarter circle.
	ArcFraction float64 `toml:"arc_fraction"`

	// BezierCurvatureScale is the curvature, relative to that of the corner
	// radius, that the Béziers reach where they meet the arc.
	BezierCurvatureScale float64 `toml:"bezier_curvature_scale"`

	// ArcCurvatureScale is the curvature of the arc relative to that of the
	// corner radius. Values other than 1 shrink or grow the arc's radius and
	// move its center so that its middle stays in place.
	ArcCurvatureScale float64 `toml:"arc_curvature_scale"`
}

var (
	// RoundedRectangleProfile is the default continuous corner.
	RoundedRectangleProfile = Profile{
		ExtendedFraction:     0.5286651,
		ArcFraction:          5.0 / 9.0,
		BezierCurvatureScale: 1.0732051,
		ArcCurvatureScale:    1.0732051,
	}

	// CapsuleProfile is the arc-free corner used when a radius approaches
	// half of the box's smaller side.
	CapsuleProfile = Profile{
		ExtendedFraction:     0.5286651 * 0.75,
		ArcFraction:          0,
		BezierCurvatureScale: 1,
		ArcCurvatureScale:    1,
	}

	// ArcProfile degenerates to an ordinary quarter-circle corner.
	ArcProfile = Profile{
		ExtendedFraction:     0,
		ArcFraction:          1,
		BezierCurvatureScale: 1,
		ArcCurvatureScale:    1,
	}
)

// presetBeziers holds the canonical curves of the predefined profiles. It is
// filled during package initialization and never written to afterwards.
var presetBeziers = map[Profile]CubicBez{
	RoundedRectangleProfile: RoundedRectangleProfile.solve(),
	CapsuleProfile:          CapsuleProfile.solve(),
	ArcProfile:              ArcProfile.solve(),
}

// ProfileByName returns one of the predefined profiles. Known names are
// "rounded-rectangle", "capsule" and "arc".
func ProfileByName(name string) (Profile, bool) {
	switch name {
	case "rounded-rectangle":
		return RoundedRectangleProfile, true
	case "capsule":
		return CapsuleProfile, true
	case "arc":
		return ArcProfile, true
	default:
		return Profile{}, false
	}
}

func (p Profile) String() string {
	return fmt.Sprintf("Profile(%g, %g, %g, %g)",
		p.ExtendedFraction, p.ArcFraction, p.BezierCurvatureScale, p.ArcCurvatureScale)
}

// ArcAngle returns the angle, in radians, swept by the profile's arc.
func (p Profile) ArcAngle() float64 {
	return math.Pi * 0.5 * p.ArcFraction
}

// BezierAngle returns the angle, in radians, by which each of the profile's
// two Béziers turns.
func (p Profile) BezierAngle() float64 {
	return (math.Pi*0.5 - p.ArcAngle()) * 0.5
}

// Lerp interpolates each coefficient between p and o.
func (p Profile) Lerp(o Profile, t float64) Profile {
	return Profile{
		ExtendedFraction:     lerp(p.ExtendedFraction, o.ExtendedFraction, t),
		ArcFraction:          lerp(p.ArcFraction, o.ArcFraction, t),
		BezierCurvatureScale: lerp(p.BezierCurvatureScale, o.BezierCurvatureScale, t),
		ArcCurvatureScale:    lerp(p.ArcCurvatureScale, o.ArcCurvatureScale, t),
	}
}

// Validate reports whether the coefficients are usable: both fractions must
// lie in [0, 1] and both curvature scales must be positive and finite.
func (p Profile) Validate() error {
	if !(p.ExtendedFraction >= 0 && p.ExtendedFraction <= 1) {
		return fmt.Errorf("extended fraction %g outside of [0, 1]", p.ExtendedFraction)
	}
	if !(p.ArcFraction >= 0 && p.ArcFraction <= 1) {
		return fmt.Errorf("arc fraction %g outside of [0, 1]", p.ArcFraction)
	}
	if !(p.BezierCurvatureScale > 0) || math.IsInf(p.BezierCurvatureScale, 0) {
		return fmt.Errorf("Bézier curvature scale %g isn't positive and finite", p.BezierCurvatureScale)
	}
	if !(p.ArcCurvatureScale > 0) || math.IsInf(p.ArcCurvatureScale, 0) {
		return fmt.Errorf("arc curvature scale %g isn't positive and finite", p.ArcCurvatureScale)
	}
	return nil
}

// Bezier returns the profile's canonical Bézier for a corner of radius 1.
//
// The corner is the top right one of a box whose top edge lies on the x axis,
// with y pointing down, and the circle it approximates is centered at (0, 1).
// The curve starts on the edge at (-ExtendedFraction, 0), heading right with
// zero curvature, and ends on the arc with curvature BezierCurvatureScale.
// The other seven half corners of an outline are reflections and rotations of
// this curve.
func (p Profile) Bezier() CubicBez {
	if c, ok := presetBeziers[p]; ok {
		return c
	}
	return p.solve()
}

func (p Profile) solve() CubicBez {
	sin, cos := math.Sincos(p.BezierAngle())
	radiusScale := 1 / p.ArcCurvatureScale
	arcCenter := Pt(0, 1).Translate(Vec(1/math.Sqrt2, -1/math.Sqrt2).Mul(1 - radiusScale))
	arcStart := arcCenter.Translate(Vec(sin, -cos).Mul(radiusScale))
	return G2Bezier(
		Pt(-p.ExtendedFraction, 0),
		arcStart,
		Vec(1, 0),
		Vec(cos, sin),
		p.BezierCurvatureScale,
	)
}

// G2Bezier returns the cubic Bézier from start to end that leaves start in
// the direction of startTangent with zero curvature and arrives at end in the
// direction of endTangent with the given curvature.
//
// The two inner control points lie on the tangents at distances λ0 and λ3
// from the end points. Negative distances, which would reverse a tangent,
// are clamped to zero, as are distances that can't be solved for because the
// tangents are parallel. In those cases the curvature constraints don't hold.
func G2Bezier(start, end Point, startTangent, endTangent Vec2, endCurvature float64) CubicBez {
	a2 := 1.5 * endCurvature
	b := startTangent.Cross(endTangent)
	d := end.Sub(start)
	c1 := d.Cross(startTangent)
	c2 := endTangent.Cross(d)
	lambda0 := -c2/b - a2*c1*c1/(b*b*b)
	lambda3 := -c1 / b
	if !(lambda0 > 0) || math.IsInf(lambda0, 0) {
		lambda0 = 0
	}
	if !(lambda3 > 0) || math.IsInf(lambda3, 0) {
		lambda3 = 0
	}
	return CubicBez{
		P0: start,
		P1: start.Translate(startTangent.Mul(lambda0)),
		P2: end.Translate(endTangent.Mul(lambda3).Negate()),
		P3: end,
	}
}

// LoadProfile reads a profile from TOML. Keys that are absent keep the values
// of [RoundedRectangleProfile]; unknown keys are an error.
//
//	extended_fraction = 0.5
//	arc_fraction = 0.5
//	bezier_curvature_scale = 1.1
//	arc_curvature_scale = 1.1
func LoadProfile(r io.Reader) (Profile, error) {
	p := RoundedRectangleProfile
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Profile{}, fmt.Errorf("couldn't decode profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("invalid profile: %w", err)
	}
	return p, nil
}

// LoadProfileFile is like [LoadProfile] but reads from the named file.
func LoadProfileFile(name string) (Profile, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return Profile{}, err
	}
	p, err := LoadProfile(bytes.NewReader(b))
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", name, err)
	}
	return p, nil
}

// WriteTOML encodes the profile in the format read by [LoadProfile].
func (p Profile) WriteTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(p); err != nil {
		return fmt.Errorf("couldn't encode profile: %w", err)
	}
	return nil
}
