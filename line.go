package pagecurl

import (
	"math"
)

// Line represents a line segment. Where noted, methods treat it as the
// infinite line through its two points.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// steep reports whether the slope of l cannot be represented accurately.
// Zero-length lines are steep.
func (l Line) steep() bool {
	d := l.P1.Sub(l.P0)
	return math.Abs(d.X) <= slopeEpsilon*math.Abs(d.Y) || (d.X == 0 && d.Y == 0)
}

// SlopeIntercept returns k and b such that the infinite line through l is y =
// kx + b. The result is meaningless for vertical lines.
func (l Line) SlopeIntercept() (k, b float64) {
	k = (l.P0.Y - l.P1.Y) / (l.P0.X - l.P1.X)
	b = (l.P0.Y*l.P1.X - l.P1.Y*l.P0.X) / (l.P1.X - l.P0.X)
	return k, b
}

// Intersect returns the point where the infinite lines through l and o meet,
// solving y = k₁x + b₁ = k₂x + b₂. Vertical and near-vertical lines, which
// have no usable slope, are intersected with [Line.CrossingPoint] instead.
//
// It reports false if the lines are parallel, coincident, or if either line
// has zero length.
func (l Line) Intersect(o Line) (Point, bool) {
	if l.steep() || o.steep() {
		pt, ok := l.CrossingPoint(o)
		if !ok || !pt.IsFinite() {
			return Point{}, false
		}
		return pt, true
	}
	k1, b1 := l.SlopeIntercept()
	k2, b2 := o.SlopeIntercept()
	if math.Abs(k1-k2) <= slopeEpsilon*max(1, math.Abs(k1), math.Abs(k2)) {
		return Point{}, false
	}
	x := (b2 - b1) / (k1 - k2)
	pt := Pt(x, k1*x+b1)
	if !pt.IsFinite() {
		return Point{}, false
	}
	return pt, true
}
