// Package squircle computes the outlines of rectangles with continuous
// corners: rounded corners whose curvature changes smoothly, instead of
// jumping from zero on the straight edges to that of a circle on the arcs.
//
// # Corners
//
// A continuous corner consists of three parts: a cubic Bézier that leaves the
// straight edge with zero curvature, a circular arc, and a second Bézier that
// mirrors the first and returns to the other edge. The Béziers are solved for
// so that their curvature matches the arc's where they meet (see [G2Bezier]).
// How far the Béziers reach along the edges, how much of the corner the arc
// covers and the curvatures involved are described by a [Profile].
//
// Corners whose radius approaches half of the box's smaller side don't leave
// enough straight edge for the full profile. Such corners blend towards
// [CapsuleProfile], which has no arc, so that neighboring corners never
// overlap and shrinking a box into a capsule changes its outline continuously.
//
// # Outlines
//
// [ComputeOutline] and the [Style] implementations [Continuous] and [Circular]
// produce an [Outline]: a [Path] that starts on the left edge, runs clockwise
// in a y-down coordinate system and ends in [ClosePath]. Boxes whose corners
// meet in the middle of two opposite sides become capsules or circles, which
// have dedicated constructions (see [Kind]).
//
// Paths contain [MoveTo], [LineTo], [CubicTo], [ArcTo] and [ClosePath]
// elements. Arcs are kept as arcs, so that renderers with native arc support
// can draw them exactly; [Path.Lower] replaces them with cubic Béziers for
// everything else. With y pointing down, positive angles and sweeps turn
// clockwise.
//
// # Shapes
//
// [RoundedRectangle], [UnevenRoundedRectangle], [Capsule] and [Rectangle]
// describe boxes independently of their size. They resolve radii given in
// density-independent pixels ([Dp]) and mirror corners in right-to-left
// layouts (see [CornerRadii]).
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [Approximate a circle with cubic Bézier curves] by Spencer Mortensen
//   - [Calculating Area of Closed Curves in ℝ²]
//   - [Green's theorem]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Approximate a circle with cubic Bézier curves]: https://spencermortensen.com/articles/bezier-circle/
// [Green's theorem]: https://en.wikipedia.org/wiki/Green%27s_theorem
// [Calculating Area of Closed Curves in ℝ²]: http://ich.deanmcnamee.com/graphics/2016/03/30/CurveArea.html
package squircle
