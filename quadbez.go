package pagecurl

import (
	"iter"
	"math"
)

// maxFlattenSegments bounds the number of lines a single curve is split into.
const maxFlattenSegments = 1024

// QuadBez is a quadratic Bézier segment. The fold curves are quadratic
// Béziers whose control point is pinned to one of the anchor's axes.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

func (q QuadBez) SignedArea() float64 {
	v := q.P0.X*(2.0*q.P1.Y+q.P2.Y) +
		2.0*(q.P1.X*(q.P2.Y-q.P0.Y)) -
		q.P2.X*(q.P0.Y+2.0*q.P1.Y)
	return v * (1.0 / 6.0)
}

// Extrema returns the parameter values in (0, 1) at which the curve has an
// axis-aligned extremum.
func (q QuadBez) Extrema() ([2]float64, int) {
	// The derivative of a quadratic is a line; its roots are the extrema.
	var out [2]float64
	var outN int
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	if dd.X != 0.0 {
		t := -d0.X / dd.X
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	if dd.Y != 0 {
		t := -d0.Y / dd.Y
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
			if outN == 2 && out[0] > t {
				out[0], out[1] = out[1], out[0]
			}
		}
	}
	return out, outN
}

func (q QuadBez) BoundingBox() Rect {
	bbox := NewRectFromPoints(q.P0, q.P2)
	ts, n := q.Extrema()
	for _, t := range ts[:n] {
		bbox = bbox.UnionPoint(q.Eval(t))
	}
	return bbox
}

// Flatten approximates q with line segments that deviate from the curve by
// at most tolerance. It yields the end point of each segment; the start point
// of the first segment is q.P0 and is not yielded.
func (q QuadBez) Flatten(tolerance float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		// The chord error of uniform subdivision into n pieces is bounded by
		// |P0 − 2P1 + P2| / (4n²).
		dd := Vec2(q.P0).Sub(Vec2(q.P1).Mul(2)).Add(Vec2(q.P2)).Hypot()
		n := 1
		if tolerance > 0 && dd > 0 {
			n = max(1, int(math.Ceil(math.Sqrt(dd/(4*tolerance)))))
			n = min(n, maxFlattenSegments)
		}
		for i := 1; i < n; i++ {
			if !yield(q.Eval(float64(i) / float64(n))) {
				return
			}
		}
		yield(q.P2)
	}
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

func (q QuadBez) Seg() PathSegment {
	return PathSegment{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2}
}
