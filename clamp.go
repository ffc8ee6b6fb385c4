package pagecurl

// ClampResult describes how [Clamp] treated a drag point.
type ClampResult int

const (
	// Unclamped means the drag point already produced a valid fold.
	Unclamped ClampResult = iota
	// Projected means the drag point was pulled towards the anchor onto the
	// boundary where the fold starts exactly at x = 0.
	Projected
	// AxisFallback means the projection did not produce a valid fold and the
	// drag point was moved onto the anchor's vertical axis instead.
	AxisFallback
)

func (r ClampResult) String() string {
	switch r {
	case Unclamped:
		return "unclamped"
	case Projected:
		return "projected"
	case AxisFallback:
		return "axis fallback"
	default:
		return "invalid clamp result"
	}
}

// clampTolerance is how far below zero C.X may end up after a projection,
// relative to the larger of the surface width and the trial overshoot, and
// still count as converged.
const clampTolerance = 1e-9

// clampSlack returns the residual allowed after projecting a drag point whose
// trial fold started at trialX. Rounding in the projection grows with the
// overshoot.
func clampSlack(size Size, trialX float64) float64 {
	return clampTolerance * max(size.Width, -trialX)
}

// Clamp keeps the drag point a inside the range that produces a valid fold
// towards anchor f.
//
// If the fold for a would start left of the surface (C.X < 0), a is pulled
// towards f along the line through both points until C.X == 0. Every point
// of the fold construction scales linearly with the displacement of a from
// f, so a single correction by width / (width − C.X) lands on the boundary.
// Should that correction not converge, a is moved onto the vertical line
// through f, which collapses the fold.
//
// Clamp is idempotent: clamping an already clamped point returns it
// unchanged, within floating point tolerance.
func Clamp(a, f Point, size Size) (Point, ClampResult) {
	trial := Solve(a, f, size)
	if trial.C.X >= 0 {
		return a, Unclamped
	}

	w0 := size.Width - trial.C.X
	ratio := size.Width / w0
	p := f.Translate(a.Sub(f).Mul(ratio))
	if p.IsFinite() {
		if fg := Solve(p, f, size); fg.C.X >= -clampSlack(size, trial.C.X) {
			return p, Projected
		}
	}
	return Pt(f.X, a.Y), AxisFallback
}
