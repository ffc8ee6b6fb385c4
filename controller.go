package pagecurl

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrInvalidSize is returned for surface sizes that are not finite and
// strictly positive.
var ErrInvalidSize = errors.New("invalid surface size")

// State is the interaction state of a [Controller].
type State int

const (
	// Idle means no touch sequence is in progress and the page is flat.
	Idle State = iota
	// Dragging means the drag point follows the finger.
	Dragging
	// Releasing means the finger was lifted and the drag point is animating
	// back towards the anchor corner.
	Releasing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Releasing:
		return "releasing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// RenderMode tells the renderer how to draw a [Frame].
type RenderMode int

const (
	// Flat frames show the unfolded page covering the whole surface.
	Flat RenderMode = iota
	// Folded frames show the front, back and next regions.
	Folded
)

func (m RenderMode) String() string {
	switch m {
	case Flat:
		return "flat"
	case Folded:
		return "folded"
	default:
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
}

// Frame is everything a renderer needs to draw the current state. Frames are
// computed on demand and share nothing with the controller.
type Frame struct {
	Mode  RenderMode
	State State
	Size  Size
	// Corner is the anchor corner of a folded frame.
	Corner Corner

	// Geometry is the fold the regions were built from. It is the zero
	// value for flat frames.
	Geometry FoldGeometry

	// Front is the unpeeled part of the current page. Unset for flat frames.
	Front BezPath
	// Back is the visible reverse side of the peeled page. Unset for flat
	// frames.
	Back BezPath
	// Next covers the whole surface. In flat frames it is the current page,
	// in folded frames the page being revealed.
	Next BezPath

	// Angle is the fold direction in degrees.
	Angle       float64
	FrontShadow Shadow
	BackShadow  Shadow
	// Reflection mirrors page content onto the back region.
	Reflection Affine
}

// Controller drives the page fold from touch input. It owns the anchor mode,
// the drag point and the interaction state, and derives a fresh [Frame] from
// them on request.
//
// A Controller is not safe for concurrent use; touch events and animation
// ticks are expected to arrive from a single event loop.
type Controller struct {
	opts  controllerOptions
	size  Size
	state State
	mode  AnchorMode
	drag  Point
	// folding is set once a drag has started in the current sequence.
	folding bool
	settle  Settle
	// released is the last instant the release animation was advanced to.
	released time.Time
}

// NewController returns an idle controller for a surface of the given size.
func NewController(size Size, opts ...ControllerOption) (*Controller, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("new controller with size %s: %w", size, ErrInvalidSize)
	}
	o := defaultControllerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller{
		opts: o,
		size: size,
		drag: Pt(size.Width, size.Height),
	}, nil
}

func (c *Controller) State() State       { return c.state }
func (c *Controller) Anchor() AnchorMode { return c.mode }
func (c *Controller) DragPoint() Point   { return c.drag }
func (c *Controller) Size() Size         { return c.size }

// TouchDown starts a touch sequence at p. When idle, the anchor mode is
// classified from p's height. A touch during the release animation
// interrupts it and resumes dragging towards the same anchor.
func (c *Controller) TouchDown(p Point) {
	if !p.IsFinite() {
		Logger().Warn("pagecurl: ignoring touch-down at non-finite point", "point", p)
		return
	}
	switch c.state {
	case Idle:
		c.mode = c.opts.classifier.Classify(p.Y, c.size)
		Logger().Debug("pagecurl: touch sequence started", "point", p, "anchor", c.mode)
	case Releasing:
		Logger().Debug("pagecurl: release interrupted", "point", p, "anchor", c.mode)
	}
	c.setState(Dragging)
	c.folding = true
	c.follow(p)
}

// TouchMove moves the drag point to p. It has no effect unless dragging.
func (c *Controller) TouchMove(p Point) {
	if c.state != Dragging {
		return
	}
	if !p.IsFinite() {
		Logger().Warn("pagecurl: ignoring touch-move to non-finite point", "point", p)
		return
	}
	c.follow(p)
}

// TouchUp ends the touch sequence at p and starts animating the drag point
// back to the anchor corner, beginning at now. It has no effect unless
// dragging.
func (c *Controller) TouchUp(p Point, now time.Time) {
	if c.state != Dragging {
		return
	}
	if p.IsFinite() {
		c.follow(p)
	}
	c.settle = Settle{
		From:        c.drag,
		To:          c.releaseTarget(),
		Start:       now,
		Duration:    c.opts.releaseDuration,
		Interpolate: c.opts.interpolate,
	}
	c.released = now
	c.setState(Releasing)
	Logger().Debug("pagecurl: release started",
		"from", c.settle.From, "to", c.settle.To, "duration", c.settle.Duration)
}

// Tick advances the release animation to now. It reports whether the
// animation is still running, so hosts can keep requesting frames while it
// returns true. Ticking any number of times for the same instant has the
// same effect as ticking once.
func (c *Controller) Tick(now time.Time) bool {
	if c.state != Releasing {
		return false
	}
	// The drag points producing a valid fold form a disk through the anchor,
	// so the straight path from a valid point to the anchor needs no clamp.
	p, done := c.settle.At(now)
	c.drag = p
	c.released = now
	if !done {
		return true
	}
	c.setState(Idle)
	c.mode = Undetermined
	c.folding = false
	Logger().Debug("pagecurl: release finished", "point", p)
	return false
}

// Resize changes the surface size. An idle controller moves its drag point
// to the new bottom-right corner. An active one re-applies the clamp against
// the new anchor. A running release animation starts over from the clamped
// point, at the instant it was last advanced to.
func (c *Controller) Resize(size Size) error {
	if !size.Valid() {
		Logger().Warn("pagecurl: ignoring resize", "size", size)
		return fmt.Errorf("resize to %s: %w", size, ErrInvalidSize)
	}
	c.size = size
	switch c.state {
	case Idle:
		c.drag = Pt(size.Width, size.Height)
	case Dragging:
		c.follow(c.drag)
	case Releasing:
		c.drag, _ = Clamp(c.drag, c.mode.Corner().Point(size), size)
		c.settle.From = c.drag
		c.settle.To = c.releaseTarget()
		c.settle.Start = c.released
		Logger().Debug("pagecurl: release restarted", "from", c.settle.From, "to", c.settle.To)
	}
	return nil
}

// Frame returns the geometry to render for the current state.
func (c *Controller) Frame() Frame {
	if !c.folding {
		return Frame{
			Mode:  Flat,
			State: c.state,
			Size:  c.size,
			Next:  FlatPage(c.size),
		}
	}
	corner := c.mode.Corner()
	fg := Solve(c.drag, corner.Point(c.size), c.size)
	if fg.Degenerate {
		Logger().Debug("pagecurl: degenerate fold", "drag", c.drag, "anchor", fg.F)
	}
	return Frame{
		Mode:        Folded,
		State:       c.state,
		Size:        c.size,
		Corner:      corner,
		Geometry:    fg,
		Front:       fg.Front(),
		Back:        fg.Back(),
		Next:        fg.Next(),
		Angle:       fg.Angle(),
		FrontShadow: fg.FrontShadow(),
		BackShadow:  fg.BackShadow(),
		Reflection:  fg.Reflection(),
	}
}

// follow moves the drag point to p, applying the anchor mode's constraints
// and the clamp.
func (c *Controller) follow(p Point) {
	if c.mode == PeelHorizontal {
		p.Y = c.size.Height - c.opts.horizontalInset
	}
	f := c.mode.Corner().Point(c.size)
	q, res := Clamp(p, f, c.size)
	switch res {
	case Projected:
		Logger().Debug("pagecurl: drag point clamped", "from", p, "to", q)
	case AxisFallback:
		Logger().Warn("pagecurl: clamp did not converge, collapsing fold", "from", p, "to", q)
	}
	c.drag = q
}

func (c *Controller) releaseTarget() Point {
	return c.mode.Corner().Inset(c.size, c.opts.releaseInset)
}

func (c *Controller) setState(s State) {
	if c.state == s {
		return
	}
	Logger().Debug("pagecurl: state change", slog.String("from", c.state.String()), slog.String("to", s.String()))
	c.state = s
}
