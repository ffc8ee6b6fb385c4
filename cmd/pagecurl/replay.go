package main

import (
	"fmt"
	"time"

	"honnef.co/go/pagecurl"
)

// maxFrames bounds the length of a replay.
const maxFrames = 100_000

// epoch is the instant scripts start at. Replays use script time only, so
// the same script always renders the same frames.
var epoch = time.Unix(0, 0).UTC()

// Replay feeds the scripted touches to c and calls emit for every frame,
// sampling at the configured frame rate until the last touch has been
// delivered and the page has settled.
func Replay(c *pagecurl.Controller, touches []TouchConfig, frameRate int, emit func(n int, fr pagecurl.Frame) error) (int, error) {
	step := time.Second / time.Duration(frameRate)
	next := 0
	for n := 0; n < maxFrames; n++ {
		elapsed := time.Duration(n) * step
		now := epoch.Add(elapsed)
		for next < len(touches) && touches[next].At() <= elapsed {
			deliver(c, touches[next], now)
			next++
		}
		animating := c.Tick(now)
		if err := emit(n, c.Frame()); err != nil {
			return n, fmt.Errorf("frame %d: %w", n, err)
		}
		if next == len(touches) && !animating && c.State() == pagecurl.Idle {
			return n + 1, nil
		}
	}
	return maxFrames, fmt.Errorf("page did not settle within %d frames", maxFrames)
}

func deliver(c *pagecurl.Controller, t TouchConfig, now time.Time) {
	p := pagecurl.Pt(t.X, t.Y)
	switch t.Kind {
	case "down":
		c.TouchDown(p)
	case "move":
		c.TouchMove(p)
	case "up":
		c.TouchUp(p, now)
	}
}
