package pagecurl

import (
	"time"
)

// An Interpolator maps the elapsed fraction t ∈ [0, 1] of an animation to
// the fraction of the distance covered. It must map 0 to 0 and 1 to 1.
type Interpolator func(t float64) float64

// Linear covers the distance at constant speed.
func Linear(t float64) float64 { return t }

// EaseOut starts fast and decelerates towards the end, following
// 1 − (1 − t)³.
func EaseOut(t float64) float64 {
	mt := 1 - t
	return 1 - mt*mt*mt
}

// Settle moves the drag point from From to To over Duration, starting at
// Start. It holds no state beyond its fields, so sampling it any number of
// times for the same instant yields the same point.
type Settle struct {
	From     Point
	To       Point
	Start    time.Time
	Duration time.Duration
	// Interpolate defaults to Linear when nil.
	Interpolate Interpolator
}

// Progress returns the fraction of Duration that has elapsed at now, clamped
// to [0, 1].
func (s Settle) Progress(now time.Time) float64 {
	if s.Duration <= 0 {
		return 1
	}
	elapsed := now.Sub(s.Start)
	switch {
	case elapsed <= 0:
		return 0
	case elapsed >= s.Duration:
		return 1
	default:
		return float64(elapsed) / float64(s.Duration)
	}
}

// At returns the position at now and whether the animation has finished.
// The final position is exactly To.
func (s Settle) At(now time.Time) (Point, bool) {
	t := s.Progress(now)
	if t >= 1 {
		return s.To, true
	}
	interp := s.Interpolate
	if interp == nil {
		interp = Linear
	}
	return s.From.Lerp(s.To, interp(t)), false
}
