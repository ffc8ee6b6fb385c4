package pagecurl

import (
	"math"
	"slices"
	"testing"
)

func TestQuadBezEval(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)}
	assertNear(t, q.Eval(0), q.P0, 1e-12)
	assertNear(t, q.Eval(1), q.P2, 1e-12)
	// B(½) = (P0 + 2P1 + P2) / 4
	assertNear(t, q.Eval(0.5), Pt(1, 1), 1e-12)
}

func TestQuadBezSubdivide(t *testing.T) {
	q := QuadBez{
		Pt(3.1, 4.1),
		Pt(5.9, 2.6),
		Pt(5.3, 5.8),
	}
	q0, q1 := q.Subdivide()
	const epsilon = 1e-12
	n := 10
	for i := range n + 1 {
		tt := float64(i) / float64(n)
		assertNear(t, q.Eval(tt/2), q0.Eval(tt), epsilon)
		assertNear(t, q.Eval(0.5+tt/2), q1.Eval(tt), epsilon)
	}
}

func TestQuadBezBoundingBox(t *testing.T) {
	q := QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)}
	diff(t, Rect{0, 0, 2, 1}, q.BoundingBox(), approx)

	ts, n := q.Extrema()
	diff(t, []float64{0.5}, ts[:n], approx)
}

func TestQuadBezFlatten(t *testing.T) {
	q := QuadBez{Pt(385, 1600), Pt(590, 1600), Pt(520, 1200)}
	for _, tol := range []float64{10, 1, 0.25, 0.01} {
		pts := slices.Collect(q.Flatten(tol))
		if got := pts[len(pts)-1]; got != q.P2 {
			t.Fatalf("tolerance %g: last point %v, want %v", tol, got, q.P2)
		}
		// Every segment midpoint must be close to the curve between the
		// segment's end points.
		prev := q.P0
		for i, pt := range pts {
			t0 := float64(i) / float64(len(pts))
			t1 := float64(i+1) / float64(len(pts))
			mid := prev.Midpoint(pt)
			onCurve := q.Eval((t0 + t1) / 2)
			if d := mid.Distance(onCurve); d > tol*1.0001 {
				t.Errorf("tolerance %g: segment %d deviates by %g", tol, i, d)
			}
			prev = pt
		}
	}
}

func TestQuadBezSignedArea(t *testing.T) {
	// The curve is the parabola y = 2x − x² over [0, 2], which encloses an
	// area of 4/3 with the x axis.
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.QuadTo(Pt(1, 2), Pt(2, 0))
	p.ClosePath()
	if got, want := math.Abs(p.SignedArea()), 4.0/3.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("got area %g, want %g", got, want)
	}
}
