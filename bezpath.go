package pagecurl

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier using the current location and the two points.
	QuadToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is a single drawing command of a [BezPath].
//
// For [QuadToKind], P0 is the control point and P1 the end point. For
// [MoveToKind] and [LineToKind] only P0 is used.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case QuadToKind:
		return fmt.Sprintf("QuadTo(%s, %s)", el.P0, el.P1)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return "InvalidPathElement"
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case QuadToKind:
		return QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

// EndPoint returns the point the pen is at after drawing el. ClosePath has no
// end point of its own.
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	default:
		return Point{}, false
	}
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() || el.P1.IsNaN()
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

type PathSegmentKind int

const (
	// A line segment.
	LineKind PathSegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
)

// PathSegment is a self-contained portion of a path with an explicit start
// point. It is either a [Line] or a [QuadBez].
type PathSegment struct {
	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
}

// Line returns the line represented by this segment. This is only valid when Kind ==
// LineKind.
func (seg PathSegment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only valid when Kind ==
// QuadKind.
func (seg PathSegment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

func (seg PathSegment) SignedArea() float64 {
	switch seg.Kind {
	case LineKind:
		return Vec2(seg.P0).Cross(Vec2(seg.P1)) * 0.5
	case QuadKind:
		return seg.Quad().SignedArea()
	default:
		return 0
	}
}

func (seg PathSegment) BoundingBox() Rect {
	switch seg.Kind {
	case LineKind:
		return NewRectFromPoints(seg.P0, seg.P1)
	case QuadKind:
		return seg.Quad().BoundingBox()
	default:
		return Rect{}
	}
}

// lines yields the segment as a polyline, flattening curves to tolerance.
func (seg PathSegment) lines(tolerance float64) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		switch seg.Kind {
		case LineKind:
			yield(seg.Line())
		case QuadKind:
			prev := seg.P0
			for pt := range seg.Quad().Flatten(tolerance) {
				if !yield(Line{prev, pt}) {
					return
				}
				prev = pt
			}
		}
	}
}

// BezPath is a sequence of path elements describing one or more closed or
// open outlines.
type BezPath []PathElement

// Transform returns a new path with an affine transformation applied to every
// element.
func (p BezPath) Transform(aff Affine) BezPath {
	els := make([]PathElement, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" element onto the path.
func (p *BezPath) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Segments returns an iterator over the path's segments. Closing a subpath
// yields the implicit line back to its start.
func (p BezPath) Segments() iter.Seq[PathSegment] {
	return func(yield func(PathSegment) bool) {
		var start, last Point
		for _, el := range p {
			switch el.Kind {
			case MoveToKind:
				start = el.P0
				last = el.P0
			case LineToKind:
				seg := PathSegment{Kind: LineKind, P0: last, P1: el.P0}
				last = el.P0
				if !yield(seg) {
					return
				}
			case QuadToKind:
				seg := PathSegment{Kind: QuadKind, P0: last, P1: el.P0, P2: el.P1}
				last = el.P1
				if !yield(seg) {
					return
				}
			case ClosePathKind:
				if last != start {
					seg := PathSegment{Kind: LineKind, P0: last, P1: start}
					last = start
					if !yield(seg) {
						return
					}
				}
			default:
				panic(fmt.Sprintf("unhandled case %v", el.Kind))
			}
		}
	}
}

// Vertices returns the on-curve points of the path in drawing order. Control
// points of curves are omitted.
func (p BezPath) Vertices() []Point {
	out := make([]Point, 0, len(p))
	for _, el := range p {
		if pt, ok := el.EndPoint(); ok {
			out = append(out, pt)
		}
	}
	return out
}

// SignedArea returns the signed area enclosed by the path. Subpaths are
// assumed to be closed.
func (p BezPath) SignedArea() float64 {
	var sum float64
	for seg := range p.Segments() {
		sum += seg.SignedArea()
	}
	return sum
}

func (p BezPath) BoundingBox() Rect {
	var bbox Rect
	first := true
	for seg := range p.Segments() {
		sbbox := seg.BoundingBox()
		if first {
			first = false
			bbox = sbbox
		} else {
			bbox = bbox.Union(sbbox)
		}
	}
	return bbox
}

// Flatten returns the path with every curve replaced by lines that deviate
// from it by at most tolerance.
func (p BezPath) Flatten(tolerance float64) BezPath {
	var out BezPath
	var last Point
	for _, el := range p {
		switch el.Kind {
		case QuadToKind:
			for pt := range (QuadBez{last, el.P0, el.P1}).Flatten(tolerance) {
				out.LineTo(pt)
			}
		default:
			out.Push(el)
		}
		if pt, ok := el.EndPoint(); ok {
			last = pt
		}
	}
	return out
}

// Winding returns the winding number of pt with respect to the path. Curves
// are flattened to within tolerance first.
func (p BezPath) Winding(pt Point, tolerance float64) int {
	// Cast a ray to the left and count signed crossings.
	var w int
	for seg := range p.Segments() {
		for l := range seg.lines(tolerance) {
			w += lineWinding(l, pt)
		}
	}
	return w
}

func lineWinding(l Line, pt Point) int {
	start, end := l.P0, l.P1
	var sign int
	if end.Y > start.Y {
		if pt.Y < start.Y || pt.Y >= end.Y {
			return 0
		}
		sign = -1
	} else if end.Y < start.Y {
		if pt.Y < end.Y || pt.Y >= start.Y {
			return 0
		}
		sign = 1
	} else {
		return 0
	}
	if pt.X < min(start.X, end.X) {
		return 0
	}
	if pt.X >= max(start.X, end.X) {
		return sign
	}
	// line equation ax + by = c
	a := end.Y - start.Y
	b := start.X - end.X
	c := a*start.X + b*start.Y
	if (a*pt.X+b*pt.Y-c)*float64(sign) <= 0.0 {
		return sign
	}
	return 0
}

func (p BezPath) IsNaN() bool {
	for _, el := range p {
		if el.IsNaN() {
			return true
		}
	}
	return false
}

// SVGOptions specifies optional settings for [BezPath.SVG] and
// [BezPath.WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts the path to a string of SVG path commands.
func (p BezPath) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	_ = p.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG writes the path as SVG path commands to w.
func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		return s
	}
	for i, el := range p {
		if i > 0 {
			writef(" ")
		}
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case QuadToKind:
			writef("Q%s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y))
		case ClosePathKind:
			writef("Z")
		default:
			panic("unreachable")
		}
	}
	return err
}
