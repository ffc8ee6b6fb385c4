package main

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/pagecurl"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("testdata/script.toml")
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	want := Config{
		LogLevel:   "debug",
		Surface:    SurfaceConfig{Width: 400, Height: 640},
		Classifier: ClassifierConfig{Kind: "thirds"},
		Release: ReleaseConfig{
			Duration:     Duration(200 * time.Millisecond),
			Interpolator: "ease-out",
			FrameRate:    30,
		},
		Touches: []TouchConfig{
			{Kind: "down", X: 396, Y: 630, AtMillis: 0},
			{Kind: "move", X: 300, Y: 560, AtMillis: 50},
			{Kind: "move", X: 200, Y: 480, AtMillis: 100},
			{Kind: "up", X: 200, Y: 480, AtMillis: 150},
		},
		Output: OutputConfig{Directory: "frames", Format: "png"},
	}
	if d := cmp.Diff(want, cfg); d != "" {
		t.Error(d)
	}
}

func TestDecodeConfigDefaults(t *testing.T) {
	cfg, err := DecodeConfig(strings.NewReader(`
[[touch]]
kind = "down"
x = 900
y = 1500

[[touch]]
kind = "up"
x = 500
y = 1200
at-millis = 100
`))
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.Touches = cfg.Touches
	if d := cmp.Diff(want, cfg); d != "" {
		t.Error(d)
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown key", "[surface]\nwidht = 10\n"},
		{"bad duration", "[release]\nduration = \"soon\"\n"},
		{"wrong type", "[surface]\nwidth = \"wide\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeConfig(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "chatty"
	cfg.Surface.Width = 0
	cfg.Classifier.Kind = "diagonal"
	cfg.Release.Interpolator = "bounce"
	cfg.Release.FrameRate = 0
	cfg.Touches = []TouchConfig{
		{Kind: "up", AtMillis: 10},
		{Kind: "tap", AtMillis: 5},
	}
	cfg.Output.Format = "gif"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{
		"log-level",
		"surface.width",
		`unknown classifier kind "diagonal"`,
		`unknown interpolator "bounce"`,
		"release.frame-rate",
		"script must end with an up touch",
		`touch 1: unknown kind "tap"`,
		"touch 1: time 5 is before the previous touch",
		`unknown output format "gif"`,
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error does not mention %q:\n%v", want, err)
		}
	}
}

func TestConfigOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Classifier = ClassifierConfig{Kind: "band", Top: 100, Bottom: 100}
	cfg.Release.Duration = 0

	c, err := pagecurl.NewController(cfg.Size(), cfg.Options()...)
	if err != nil {
		t.Fatal(err)
	}
	// With thirds this would peel from the top-right corner.
	c.TouchDown(pagecurl.Pt(900, 200))
	if got := c.Anchor(); got != pagecurl.PeelHorizontal {
		t.Errorf("got anchor %s, want %s", got, pagecurl.PeelHorizontal)
	}

	c.TouchUp(pagecurl.Pt(900, 200), epoch)
	if c.Tick(epoch) {
		t.Error("expected zero release duration to finish on the first tick")
	}
}
