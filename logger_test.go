package pagecurl

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLoggerDefaultSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	c := newTestController(t)
	c.TouchDown(Pt(990, 1590))
	c.TouchMove(Pt(990, 1200))

	out := buf.String()
	for _, want := range []string{
		"pagecurl: state change",
		"from=idle to=dragging",
		"pagecurl: drag point clamped",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output does not contain %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := c.Resize(Sz(-1, 10)); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("expected warning for rejected resize, got:\n%s", buf.String())
	}

	buf.Reset()
	c.TouchUp(Pt(990, 1200), epoch)
	if err := c.Resize(Sz(600, 1600)); err != nil {
		t.Fatal(err)
	}
	if c.Tick(epoch.Add(time.Second)) {
		t.Fatal("release still running after a second")
	}
	out = buf.String()
	for _, want := range []string{
		"pagecurl: release started",
		"pagecurl: release restarted",
		"pagecurl: release finished",
		"from=releasing to=idle",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output does not contain %q:\n%s", want, out)
		}
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}
