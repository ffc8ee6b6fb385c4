package pagecurl

import (
	"image/color"
	"math"
	"testing"
)

func TestFoldAngle(t *testing.T) {
	fg := Solve(Pt(500, 1200), Pt(1000, 1600), testSize)
	want := math.Atan2(-410, -512.5) * 180 / math.Pi
	diff(t, want, fg.Angle(), approx)

	top := Solve(Pt(500, 400), Pt(1000, 0), testSize)
	diff(t, math.Atan2(-410, 512.5)*180/math.Pi, top.Angle(), approx)
}

func TestCurl(t *testing.T) {
	fg := Solve(Pt(500, 1200), Pt(1000, 1600), testSize)
	// C–E spans 205 and J–H spans 256.25; half of the smaller wins.
	diff(t, 102.5, fg.Curl(), approx)
}

func TestFrontShadow(t *testing.T) {
	diag := testSize.Diagonal()
	width := math.Hypot(500, 400) / 4

	fg := Solve(Pt(500, 1200), Pt(1000, 1600), testSize)
	s := fg.FrontShadow()
	diff(t, Shadow{
		Bounds:    Rect{385 - width, 1600, 385, 1600 + diag},
		Pivot:     Pt(385, 1600),
		Angle:     fg.Angle(),
		Direction: RightToLeft,
		Colors:    [2]color.NRGBA{{R: 0x11, G: 0x11, B: 0x11, A: 0xff}, {R: 0x11, G: 0x11, B: 0x11, A: 0x00}},
	}, s, approx)

	top := Solve(Pt(500, 400), Pt(1000, 0), testSize).FrontShadow()
	if top.Direction != LeftToRight {
		t.Errorf("got direction %s, want %s", top.Direction, LeftToRight)
	}
	diff(t, Rect{385, 0, 385 + width, diag}, top.Bounds, approx)
}

func TestBackShadow(t *testing.T) {
	diag := testSize.Diagonal()

	s := Solve(Pt(500, 1200), Pt(1000, 1600), testSize).BackShadow()
	diff(t, Rect{385 - 102.5 - 1, 1600, 385 - 30, 1600 + diag}, s.Bounds, approx)
	if s.Direction != RightToLeft {
		t.Errorf("got direction %s, want %s", s.Direction, RightToLeft)
	}
	diff(t, [2]color.NRGBA{{R: 0x33, G: 0x33, B: 0x33, A: 0x00}, {R: 0x11, G: 0x11, B: 0x11, A: 0xff}}, s.Colors)

	top := Solve(Pt(500, 400), Pt(1000, 0), testSize).BackShadow()
	diff(t, Rect{385 + 30, 0, 385 + 102.5 + 1, diag}, top.Bounds, approx)
}

func TestShadowGeometry(t *testing.T) {
	fg := Solve(Pt(500, 1200), Pt(1000, 1600), testSize)
	s := fg.FrontShadow()

	// Rotation about the pivot keeps the pivot in place and preserves size.
	assertNear(t, s.Pivot.Transform(s.Transform()), s.Pivot, 1e-9)
	diff(t, math.Abs(s.Bounds.Area()), math.Abs(s.Path().SignedArea()), approx)

	gl := s.GradientLine()
	diff(t, s.Bounds.Width(), gl.Length(), approx)
	// Right-to-left gradients start at the right edge, which touches the
	// pivot column.
	mid := s.Bounds.Center().Y
	assertNear(t, gl.P0, Pt(s.Bounds.X1, mid).Transform(s.Transform()), 1e-9)
}

func TestGradientDirectionString(t *testing.T) {
	diff(t, "left-to-right", LeftToRight.String())
	diff(t, "right-to-left", RightToLeft.String())
	diff(t, "invalid gradient direction", GradientDirection(0).String())
}
