package main

import (
	"image/color"
	"math"

	"github.com/gogpu/gg"

	"honnef.co/go/pagecurl"
)

var (
	pageColor = gg.RGB(0.98, 0.97, 0.94)
	nextColor = gg.RGB(0.90, 0.88, 0.82)
	backColor = gg.RGB(0.84, 0.83, 0.79)
)

// shadowStrips is the number of solid bands a shadow gradient is drawn with.
const shadowStrips = 24

// Render rasterises a frame onto a new context the size of the surface.
//
// Regions are painted back to front, so each one hides the parts of the
// earlier ones it overlaps: the next page, the front shadow falling on it,
// the reverse side of the peeled page with its own shadow, and finally the
// unpeeled front.
func Render(fr pagecurl.Frame) (*gg.Context, error) {
	w := int(math.Ceil(fr.Size.Width))
	h := int(math.Ceil(fr.Size.Height))
	dc := gg.NewContext(w, h)
	if err := draw(dc, fr); err != nil {
		dc.Close()
		return nil, err
	}
	return dc, nil
}

func draw(dc *gg.Context, fr pagecurl.Frame) error {
	if fr.Mode == pagecurl.Flat {
		return fillPath(dc, fr.Next, pageColor)
	}

	if err := fillPath(dc, fr.Next, nextColor); err != nil {
		return err
	}
	if err := fillShadow(dc, fr.FrontShadow, nil); err != nil {
		return err
	}
	if err := fillPath(dc, fr.Back, backColor); err != nil {
		return err
	}
	// The back region is the triangle D, I, A and thus convex.
	if err := fillShadow(dc, fr.BackShadow, fr.Back.Vertices()); err != nil {
		return err
	}
	return fillPath(dc, fr.Front, pageColor)
}

func tracePath(dc *gg.Context, p pagecurl.BezPath) {
	for _, el := range p {
		switch el.Kind {
		case pagecurl.MoveToKind:
			dc.MoveTo(el.P0.X, el.P0.Y)
		case pagecurl.LineToKind:
			dc.LineTo(el.P0.X, el.P0.Y)
		case pagecurl.QuadToKind:
			dc.QuadraticTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y)
		case pagecurl.ClosePathKind:
			dc.ClosePath()
		}
	}
}

func fillPath(dc *gg.Context, p pagecurl.BezPath, col gg.RGBA) error {
	dc.SetRGBA(col.R, col.G, col.B, col.A)
	tracePath(dc, p)
	return dc.Fill()
}

func fillPolygon(dc *gg.Context, poly []pagecurl.Point, col gg.RGBA) error {
	if len(poly) < 3 {
		return nil
	}
	dc.SetRGBA(col.R, col.G, col.B, col.A)
	dc.MoveTo(poly[0].X, poly[0].Y)
	for _, p := range poly[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	return dc.Fill()
}

// fillShadow draws the shadow's gradient as a run of solid strips. If window
// is not nil, the strips are clipped to that convex polygon.
func fillShadow(dc *gg.Context, s pagecurl.Shadow, window []pagecurl.Point) error {
	b := s.Bounds.Abs()
	aff := s.Transform()
	from, to := toRGBA(s.Colors[0]), toRGBA(s.Colors[1])
	width := b.Width() / shadowStrips
	for i := range shadowStrips {
		x0 := b.X0 + float64(i)*width
		t := (float64(i) + 0.5) / shadowStrips
		if s.Direction == pagecurl.RightToLeft {
			t = 1 - t
		}
		strip := pagecurl.Rect{X0: x0, Y0: b.Y0, X1: x0 + width, Y1: b.Y1}.Corners()
		poly := make([]pagecurl.Point, 0, len(strip))
		for _, p := range strip {
			poly = append(poly, p.Transform(aff))
		}
		if window != nil {
			poly = clipConvex(poly, window)
		}
		if err := fillPolygon(dc, poly, from.Lerp(to, t)); err != nil {
			return err
		}
	}
	return nil
}

func toRGBA(c color.NRGBA) gg.RGBA {
	return gg.RGBA2(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}
