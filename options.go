package pagecurl

import (
	"time"
)

// Default settings of a [Controller].
const (
	// DefaultReleaseDuration is how long the page takes to settle back flat
	// after the finger is lifted.
	DefaultReleaseDuration = 400 * time.Millisecond
	// DefaultHorizontalInset is the distance from the bottom edge at which a
	// horizontal fold pins the drag point.
	DefaultHorizontalInset = 3.0
	// DefaultReleaseInset is the distance from the anchor corner, on both
	// axes, at which the release animation stops. Ending exactly on the
	// corner would collapse the fold for one frame.
	DefaultReleaseInset = 1.0
)

// ControllerOption configures a Controller during creation.
//
// Example:
//
//	c, err := pagecurl.NewController(pagecurl.Sz(1080, 1920),
//	    pagecurl.WithClassifier(pagecurl.BandClassifier{Top: 200, Bottom: 200}),
//	    pagecurl.WithInterpolator(pagecurl.EaseOut))
type ControllerOption func(*controllerOptions)

type controllerOptions struct {
	classifier      Classifier
	releaseDuration time.Duration
	interpolate     Interpolator
	horizontalInset float64
	releaseInset    float64
}

func defaultControllerOptions() controllerOptions {
	return controllerOptions{
		classifier:      ThirdsClassifier{},
		releaseDuration: DefaultReleaseDuration,
		interpolate:     Linear,
		horizontalInset: DefaultHorizontalInset,
		releaseInset:    DefaultReleaseInset,
	}
}

// WithClassifier sets how the first touch of a sequence picks the anchor
// mode. The default is [ThirdsClassifier]. A nil classifier is ignored.
func WithClassifier(cl Classifier) ControllerOption {
	return func(o *controllerOptions) {
		if cl != nil {
			o.classifier = cl
		}
	}
}

// WithReleaseDuration sets the duration of the release animation. Durations
// of zero or less finish the animation on the first tick.
func WithReleaseDuration(d time.Duration) ControllerOption {
	return func(o *controllerOptions) {
		o.releaseDuration = d
	}
}

// WithInterpolator sets the easing of the release animation. The default is
// [Linear]. A nil interpolator is ignored.
func WithInterpolator(fn Interpolator) ControllerOption {
	return func(o *controllerOptions) {
		if fn != nil {
			o.interpolate = fn
		}
	}
}

// WithHorizontalInset sets how far above the bottom edge horizontal folds
// pin the drag point.
func WithHorizontalInset(d float64) ControllerOption {
	return func(o *controllerOptions) {
		o.horizontalInset = d
	}
}

// WithReleaseInset sets how far from the anchor corner the release
// animation stops.
func WithReleaseInset(d float64) ControllerOption {
	return func(o *controllerOptions) {
		o.releaseInset = d
	}
}
