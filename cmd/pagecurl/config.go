package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"slices"
	"time"

	"github.com/pelletier/go-toml/v2"

	"honnef.co/go/pagecurl"
)

// Config describes one scripted page turn.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel   string           `toml:"log-level"`
	Surface    SurfaceConfig    `toml:"surface"`
	Classifier ClassifierConfig `toml:"classifier"`
	Release    ReleaseConfig    `toml:"release"`
	Touches    []TouchConfig    `toml:"touch"`
	Output     OutputConfig     `toml:"output"`
}

type SurfaceConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type ClassifierConfig struct {
	// Kind is "thirds" or "band".
	Kind   string  `toml:"kind"`
	Top    float64 `toml:"top"`
	Bottom float64 `toml:"bottom"`
}

type ReleaseConfig struct {
	Duration Duration `toml:"duration"`
	// Interpolator is "linear" or "ease-out".
	Interpolator string `toml:"interpolator"`
	// FrameRate is the number of frames rendered per second of script time.
	FrameRate int `toml:"frame-rate"`
}

type TouchConfig struct {
	// Kind is "down", "move" or "up".
	Kind     string  `toml:"kind"`
	X        float64 `toml:"x"`
	Y        float64 `toml:"y"`
	AtMillis int64   `toml:"at-millis"`
}

// At returns the offset of the touch from the start of the script.
func (t TouchConfig) At() time.Duration {
	return time.Duration(t.AtMillis) * time.Millisecond
}

type OutputConfig struct {
	Directory string `toml:"directory"`
	// Format is "png" or "svg".
	Format string `toml:"format"`
}

// Duration is a time.Duration written as a string such as "400ms".
type Duration time.Duration

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// DefaultConfig returns the configuration used for keys a script leaves out.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Surface:  SurfaceConfig{Width: 1000, Height: 1600},
		Classifier: ClassifierConfig{
			Kind: "thirds",
		},
		Release: ReleaseConfig{
			Duration:     Duration(pagecurl.DefaultReleaseDuration),
			Interpolator: "linear",
			FrameRate:    60,
		},
		Output: OutputConfig{
			Directory: "frames",
			Format:    "png",
		},
	}
}

// LoadConfig reads a configuration file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	defer f.Close()
	cfg, err := DecodeConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig decodes a TOML configuration on top of the defaults. Unknown
// keys are rejected.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("unknown keys:\n%s", strict.String())
		}
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem with the configuration at once.
func (cfg Config) Validate() error {
	var errs []error
	if _, err := cfg.Level(); err != nil {
		errs = append(errs, err)
	}
	if err := validSide("surface.width", cfg.Surface.Width); err != nil {
		errs = append(errs, err)
	}
	if err := validSide("surface.height", cfg.Surface.Height); err != nil {
		errs = append(errs, err)
	}

	switch cfg.Classifier.Kind {
	case "thirds":
	case "band":
		if cfg.Classifier.Top < 0 || cfg.Classifier.Bottom < 0 {
			errs = append(errs, fmt.Errorf("classifier bands must not be negative, got top %g and bottom %g",
				cfg.Classifier.Top, cfg.Classifier.Bottom))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown classifier kind %q", cfg.Classifier.Kind))
	}

	if cfg.Release.Duration < 0 {
		errs = append(errs, fmt.Errorf("release.duration must not be negative, got %s", time.Duration(cfg.Release.Duration)))
	}
	if _, ok := interpolators[cfg.Release.Interpolator]; !ok {
		errs = append(errs, fmt.Errorf("unknown interpolator %q", cfg.Release.Interpolator))
	}
	if cfg.Release.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("release.frame-rate must be positive, got %d", cfg.Release.FrameRate))
	}

	if len(cfg.Touches) == 0 {
		errs = append(errs, errors.New("script has no touch events"))
	}
	if n := len(cfg.Touches); n > 0 && cfg.Touches[n-1].Kind != "up" {
		errs = append(errs, errors.New("script must end with an up touch"))
	}
	for i, t := range cfg.Touches {
		if !slices.Contains([]string{"down", "move", "up"}, t.Kind) {
			errs = append(errs, fmt.Errorf("touch %d: unknown kind %q", i, t.Kind))
		}
		if t.AtMillis < 0 {
			errs = append(errs, fmt.Errorf("touch %d: negative time %d", i, t.AtMillis))
		}
		if i > 0 && t.AtMillis < cfg.Touches[i-1].AtMillis {
			errs = append(errs, fmt.Errorf("touch %d: time %d is before the previous touch", i, t.AtMillis))
		}
	}

	switch cfg.Output.Format {
	case "png", "svg":
	default:
		errs = append(errs, fmt.Errorf("unknown output format %q", cfg.Output.Format))
	}
	if cfg.Output.Directory == "" {
		errs = append(errs, errors.New("output.directory must not be empty"))
	}
	return errors.Join(errs...)
}

func validSide(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s must be finite and positive, got %g", name, v)
	}
	return nil
}

var interpolators = map[string]pagecurl.Interpolator{
	"linear":   pagecurl.Linear,
	"ease-out": pagecurl.EaseOut,
}

// Level returns the configured log level.
func (cfg Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return 0, fmt.Errorf("log-level: %w", err)
	}
	return l, nil
}

// Size returns the configured surface size.
func (cfg Config) Size() pagecurl.Size {
	return pagecurl.Sz(cfg.Surface.Width, cfg.Surface.Height)
}

// Options returns the controller options the configuration selects.
func (cfg Config) Options() []pagecurl.ControllerOption {
	opts := []pagecurl.ControllerOption{
		pagecurl.WithReleaseDuration(time.Duration(cfg.Release.Duration)),
		pagecurl.WithInterpolator(interpolators[cfg.Release.Interpolator]),
	}
	if cfg.Classifier.Kind == "band" {
		opts = append(opts, pagecurl.WithClassifier(pagecurl.BandClassifier{
			Top:    cfg.Classifier.Top,
			Bottom: cfg.Classifier.Bottom,
		}))
	}
	return opts
}
