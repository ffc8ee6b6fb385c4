package pagecurl

import (
	"image/color"
	"math"
)

// GradientDirection is the direction along which a shadow's gradient runs,
// in the shadow's own unrotated frame.
type GradientDirection int

const (
	LeftToRight GradientDirection = iota + 1
	RightToLeft
)

func (d GradientDirection) String() string {
	switch d {
	case LeftToRight:
		return "left-to-right"
	case RightToLeft:
		return "right-to-left"
	default:
		return "invalid gradient direction"
	}
}

var (
	shadowDeep      = color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	shadowLight     = color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0x00}
	backShadowLight = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0x00}
)

// The back shadow's edges are offset from the fold start: its dark edge by
// one pixel past the curl, its light edge 30 pixels back over the fold.
const (
	backShadowDeepOffset  = 1.0
	backShadowLightOffset = -30.0
)

// Shadow is a rectangular linear-gradient strip along the fold. Bounds is
// the rectangle before rotation; the strip is drawn rotated by Angle degrees
// about Pivot.
type Shadow struct {
	Bounds    Rect
	Pivot     Point
	Angle     float64
	Direction GradientDirection
	// Colors are the gradient's first and last stop, in Direction order.
	Colors [2]color.NRGBA
}

// Transform returns the rotation that places Bounds on the surface.
func (s Shadow) Transform() Affine {
	return RotateAbout(s.Angle*math.Pi/180, s.Pivot)
}

// Path returns the rotated outline of the shadow in surface space.
func (s Shadow) Path() BezPath {
	return s.Bounds.Path().Transform(s.Transform())
}

// GradientLine returns the line from the first to the last gradient stop in
// surface space.
func (s Shadow) GradientLine() Line {
	mid := s.Bounds.Center().Y
	l := Line{Pt(s.Bounds.X0, mid), Pt(s.Bounds.X1, mid)}
	if s.Direction == RightToLeft {
		l = Line{l.P1, l.P0}
	}
	return l.Transform(s.Transform())
}

// Angle returns the direction of the fold in degrees, as the angle of the
// vector (E.X − F.X, H.Y − F.Y). Shadows and the rendering frame are
// rotated by it about C.
func (fg FoldGeometry) Angle() float64 {
	return math.Atan2(fg.E.X-fg.F.X, fg.H.Y-fg.F.Y) * 180 / math.Pi
}

// FrontShadow returns the shadow the peeled page casts onto the page
// underneath. Its width is a quarter of the drag distance and its length the
// surface diagonal, so it covers the whole fold line at any angle.
func (fg FoldGeometry) FrontShadow() Shadow {
	width := fg.DragDistance() / 4
	s := Shadow{
		Pivot:  fg.C,
		Angle:  fg.Angle(),
		Colors: [2]color.NRGBA{shadowDeep, shadowLight},
	}
	top, bottom := fg.C.Y, fg.C.Y+fg.Size.Diagonal()
	if fg.Corner() == TopRight {
		s.Direction = LeftToRight
		s.Bounds = Rect{fg.C.X, top, fg.C.X + width, bottom}
	} else {
		s.Direction = RightToLeft
		s.Bounds = Rect{fg.C.X - width, top, fg.C.X, bottom}
	}
	return s
}

// Curl returns how tightly the page is curled: the smaller of the distances
// from the C–E midpoint to E and from the J–H midpoint to H.
func (fg FoldGeometry) Curl() float64 {
	ce := (fg.C.X + fg.E.X) / 2
	jh := (fg.J.Y + fg.H.Y) / 2
	return min(math.Abs(ce-fg.E.X), math.Abs(jh-fg.H.Y))
}

// BackShadow returns the shadow on the reverse side of the peeled page, just
// inside the fold. Its width follows [FoldGeometry.Curl].
func (fg FoldGeometry) BackShadow() Shadow {
	curl := fg.Curl()
	s := Shadow{
		Pivot:  fg.C,
		Angle:  fg.Angle(),
		Colors: [2]color.NRGBA{backShadowLight, shadowDeep},
	}
	top, bottom := fg.C.Y, fg.C.Y+fg.Size.Diagonal()
	if fg.Corner() == TopRight {
		s.Direction = LeftToRight
		s.Bounds = Rect{fg.C.X - backShadowLightOffset, top, fg.C.X + curl + backShadowDeepOffset, bottom}
	} else {
		s.Direction = RightToLeft
		s.Bounds = Rect{fg.C.X - curl - backShadowDeepOffset, top, fg.C.X + backShadowLightOffset, bottom}
	}
	return s
}

// Reflection returns the transform that mirrors page content across the fold
// crease, for drawing the reverse side of the peeled page. It maps A onto F
// and is its own inverse. A collapsed fold has no crease and yields
// [Identity].
func (fg FoldGeometry) Reflection() Affine {
	dx := fg.F.X - fg.E.X
	dy := fg.H.Y - fg.F.Y
	l := math.Hypot(dx, dy)
	if l < epsilon {
		return Identity
	}
	return FoldReflection(fg.E, dx/l, dy/l)
}
