package pagecurl

import (
	"math"
	"testing"
)

func TestClampUnclamped(t *testing.T) {
	a := Pt(500, 1200)
	p, res := Clamp(a, Pt(1000, 1600), testSize)
	if res != Unclamped {
		t.Errorf("got %s, want %s", res, Unclamped)
	}
	diff(t, a, p)
}

func TestClampProjects(t *testing.T) {
	f := Pt(1000, 1600)
	a := Pt(990, 1200)
	if fg := Solve(a, f, testSize); fg.C.X != -11007.5 {
		t.Fatalf("got trial C.X %v, want -11007.5", fg.C.X)
	}

	p, res := Clamp(a, f, testSize)
	if res != Projected {
		t.Fatalf("got %s, want %s", res, Projected)
	}
	fg := Solve(p, f, testSize)
	if math.Abs(fg.C.X) > 1e-6 {
		t.Errorf("got C.X %v after clamp, want ≈ 0", fg.C.X)
	}

	// The clamped point lies between f and a on the line through both.
	if p.Distance(f) >= a.Distance(f) {
		t.Errorf("clamped point %s is not closer to %s than %s", p, f, a)
	}
	if c := a.Sub(f).Cross(p.Sub(f)); math.Abs(c) > 1e-6 {
		t.Errorf("clamped point %s is not on the line through %s and %s", p, f, a)
	}
	assertNear(t, p, Pt(1000-10/12.0075, 1600-400/12.0075), 1e-9)
}

func TestClampProjectsLargeOvershoot(t *testing.T) {
	// Close to the anchor's vertical edge the trial fold starts millions of
	// pixels left of the surface.
	f := Pt(1000, 1600)
	a := Pt(999.5, 7)
	trial := Solve(a, f, testSize)
	if trial.C.X > -1e6 {
		t.Fatalf("got trial C.X %v, want a large overshoot", trial.C.X)
	}

	p, res := Clamp(a, f, testSize)
	if res != Projected {
		t.Fatalf("got %s, want %s", res, Projected)
	}
	if fg := Solve(p, f, testSize); math.Abs(fg.C.X) > clampSlack(testSize, trial.C.X) {
		t.Errorf("got C.X %v after clamp, want ≈ 0", fg.C.X)
	}
	if p.X == f.X {
		t.Errorf("clamped point %s collapsed onto the anchor's axis", p)
	}
}

func TestClampIdempotent(t *testing.T) {
	for _, corner := range []Corner{TopRight, BottomRight} {
		f := corner.Point(testSize)
		for _, a := range []Point{Pt(990, 1200), Pt(300, 800), Pt(10, 10), Pt(700, 100), Pt(0, 1590)} {
			p, _ := Clamp(a, f, testSize)
			q, _ := Clamp(p, f, testSize)
			assertNear(t, q, p, 1e-6)
			slack := clampSlack(testSize, Solve(a, f, testSize).C.X)
			if fg := Solve(q, f, testSize); fg.C.X < -slack {
				t.Errorf("%s, a=%s: clamped fold starts at %s", corner, a, fg.C)
			}
		}
	}
}

func TestClampKeepsFoldInside(t *testing.T) {
	for _, corner := range []Corner{TopRight, BottomRight} {
		f := corner.Point(testSize)
		for x := 5.0; x < testSize.Width; x += 99 {
			for y := 5.0; y < testSize.Height; y += 101 {
				a := Pt(x, y)
				p, res := Clamp(a, f, testSize)
				if res == AxisFallback {
					continue
				}
				slack := clampSlack(testSize, Solve(a, f, testSize).C.X)
				if fg := Solve(p, f, testSize); fg.C.X < -slack {
					t.Errorf("%s, a=(%v, %v): clamped to %s, fold starts at %s", corner, x, y, p, fg.C)
				}
			}
		}
	}
}

func TestClampResultString(t *testing.T) {
	for res, want := range map[ClampResult]string{
		Unclamped:      "unclamped",
		Projected:      "projected",
		AxisFallback:   "axis fallback",
		ClampResult(9): "invalid clamp result",
	} {
		if got := res.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
