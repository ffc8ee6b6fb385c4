// Command pagecurl replays a scripted touch sequence through a page-turn
// controller and writes every frame as a PNG or SVG image.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"honnef.co/go/pagecurl"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML script to replay")
		output     = flag.String("output", "", "output directory, overrides the script")
		format     = flag.String("format", "", "output format (png or svg), overrides the script")
		logLevel   = flag.String("log-level", "", "log level, overrides the script")
	)
	flag.Parse()

	if *configPath == "" {
		log.Fatalf("Missing -config")
	}
	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}
	if *output != "" {
		cfg.Output.Directory = *output
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration:\n%v", err)
	}

	level, _ := cfg.Level()
	pagecurl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	n, err := run(cfg)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	log.Printf("Rendered %d frames to %s\n", n, cfg.Output.Directory)
}

func run(cfg Config) (int, error) {
	c, err := pagecurl.NewController(cfg.Size(), cfg.Options()...)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(cfg.Output.Directory, 0o755); err != nil {
		return 0, err
	}
	return Replay(c, cfg.Touches, cfg.Release.FrameRate, func(n int, fr pagecurl.Frame) error {
		return writeFrame(cfg.Output, n, fr)
	})
}

func writeFrame(out OutputConfig, n int, fr pagecurl.Frame) error {
	path := filepath.Join(out.Directory, fmt.Sprintf("frame-%04d.%s", n, out.Format))
	if out.Format == "svg" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := WriteSVG(f, fr); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	dc, err := Render(fr)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.SavePNG(path)
}
