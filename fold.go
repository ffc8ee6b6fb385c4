package pagecurl

import (
	"math"
)

const (
	// epsilon is the smallest denominator the fold construction divides by.
	epsilon = 1e-9
	// slopeEpsilon is the relative tolerance below which two slopes are
	// considered equal, or a line considered vertical.
	slopeEpsilon = 1e-12
)

// FoldGeometry is the complete set of points describing one fold of the page.
// It is a value computed by [Solve] and never updated in place.
//
// The fold crease is the perpendicular bisector of A and F. E and H are the
// control points of the two fold curves and lie on the horizontal and
// vertical lines through F respectively.
type FoldGeometry struct {
	// Size is the surface the fold was computed for.
	Size Size

	// A is the drag point.
	A Point
	// F is the anchor corner the page peels away from.
	F Point
	// G is the midpoint of A and F.
	G Point
	// E is the control point of the curve from C to B; E.Y == F.Y.
	E Point
	// H is the control point of the curve from K to J; H.X == F.X.
	H Point
	// C is the start of the first fold curve; C.Y == F.Y.
	C Point
	// J is the start of the second fold curve; J.X == F.X.
	J Point
	// B is the end of the first fold curve.
	B Point
	// K is the end of the second fold curve.
	K Point
	// D is the midpoint of the first fold curve.
	D Point
	// I is the midpoint of the second fold curve.
	I Point

	// Degenerate is set when at least one construction step had no
	// well-defined result and the anchor was substituted for it.
	Degenerate bool
}

// Solve computes the fold geometry for drag point a and anchor corner f on a
// surface of the given size. It is a pure function of its arguments.
//
// Configurations where a lies on one of the anchor's axes make the closed
// form divide by zero. In that case the affected control point collapses
// onto f, and the result has Degenerate set; no coordinate of the result is
// ever NaN or infinite for finite input.
func Solve(a, f Point, size Size) FoldGeometry {
	fg := FoldGeometry{Size: size, A: a, F: f}

	g := a.Midpoint(f)
	fg.G = g
	dx := f.X - g.X
	dy := f.Y - g.Y

	fg.E = f
	if math.Abs(dx) >= epsilon {
		fg.E = Pt(g.X-dy*dy/dx, f.Y)
	}
	if !fg.E.IsFinite() || fg.E == f {
		fg.E = f
		fg.Degenerate = true
	}

	fg.H = f
	if math.Abs(dy) >= epsilon {
		fg.H = Pt(f.X, g.Y-dx*dx/dy)
	}
	if !fg.H.IsFinite() || fg.H == f {
		fg.H = f
		fg.Degenerate = true
	}

	fg.C = Pt(fg.E.X-(f.X-fg.E.X)/2, f.Y)
	fg.J = Pt(f.X, fg.H.Y-(f.Y-fg.H.Y)/2)

	crease := Line{fg.C, fg.J}
	var ok bool
	if fg.B, ok = (Line{a, fg.E}).Intersect(crease); !ok {
		fg.B = f
		fg.Degenerate = true
	}
	if fg.K, ok = (Line{a, fg.H}).Intersect(crease); !ok {
		fg.K = f
		fg.Degenerate = true
	}

	fg.D = fg.B.Midpoint(fg.C).Midpoint(fg.E)
	fg.I = fg.K.Midpoint(fg.J).Midpoint(fg.H)
	return fg
}

// Corner returns the surface corner F corresponds to.
func (fg FoldGeometry) Corner() Corner {
	if fg.F.Y < fg.Size.Height/2 {
		return TopRight
	}
	return BottomRight
}

// Curves returns the two fold curves in the order the front region draws
// them: C→B around E, and K→J around H.
func (fg FoldGeometry) Curves() (QuadBez, QuadBez) {
	return QuadBez{fg.C, fg.E, fg.B}, QuadBez{fg.K, fg.H, fg.J}
}

// Valid reports whether the fold lies within the surface, that is, whether
// the first fold curve starts at a non-negative x.
func (fg FoldGeometry) Valid() bool {
	return fg.C.X >= 0
}

// DragDistance returns the distance between the drag point and the anchor.
func (fg FoldGeometry) DragDistance() float64 {
	return fg.A.Distance(fg.F)
}

// Points returns every point of the geometry, in the order A, F, G, E, H, C,
// J, B, K, D, I.
func (fg FoldGeometry) Points() [11]Point {
	return [11]Point{fg.A, fg.F, fg.G, fg.E, fg.H, fg.C, fg.J, fg.B, fg.K, fg.D, fg.I}
}
