package main

import (
	"bufio"
	"fmt"
	"image/color"
	"io"

	"honnef.co/go/pagecurl"
)

var svgPath = pagecurl.SVGOptions{MaxPrecision: 3}

// Page content is drawn as ruled lines so the mirrored back side is visible.
const (
	contentMargin  = 40.0
	contentSpacing = 24.0
	contentWeight  = 2.0
)

func contentRules(size pagecurl.Size) pagecurl.BezPath {
	var p pagecurl.BezPath
	for y := contentMargin; y+contentWeight <= size.Height-contentMargin; y += contentSpacing {
		r := pagecurl.Rect{X0: contentMargin, Y0: y, X1: size.Width - contentMargin, Y1: y + contentWeight}
		p = append(p, r.Path()...)
	}
	return p
}

func hexColor(c color.Color) string {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", nc.R, nc.G, nc.B)
}

// WriteSVG writes the frame as an SVG document. Unlike the raster output it
// draws page content, mirrored onto the back of the peeled page by the
// frame's reflection.
func WriteSVG(w io.Writer, fr pagecurl.Frame) error {
	bw := bufio.NewWriter(w)
	width, height := fr.Size.Splat()
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%g" height="%g" viewBox="0 0 %g %g">
<defs>
<path id="content" d="%s" fill="#555555"/>
`, width, height, width, height, contentRules(fr.Size).SVG(svgPath))

	if fr.Mode == pagecurl.Flat {
		fmt.Fprintf(bw, "</defs>\n<path d=\"%s\" fill=\"%s\"/>\n<use xlink:href=\"#content\"/>\n</svg>\n",
			fr.Next.SVG(svgPath), hexColor(pageColor.Color()))
		return bw.Flush()
	}

	fmt.Fprintf(bw, "<clipPath id=\"front\"><path d=\"%s\"/></clipPath>\n", fr.Front.SVG(svgPath))
	fmt.Fprintf(bw, "<clipPath id=\"back\"><path d=\"%s\"/></clipPath>\n", fr.Back.SVG(svgPath))
	writeGradient(bw, "front-shadow", fr.FrontShadow)
	writeGradient(bw, "back-shadow", fr.BackShadow)
	fmt.Fprintln(bw, "</defs>")

	fmt.Fprintf(bw, "<path d=\"%s\" fill=\"%s\"/>\n", fr.Next.SVG(svgPath), hexColor(nextColor.Color()))
	fmt.Fprintf(bw, "<path d=\"%s\" fill=\"url(#front-shadow)\"/>\n", fr.FrontShadow.Path().SVG(svgPath))

	m := fr.Reflection.Coefficients()
	fmt.Fprintln(bw, `<g clip-path="url(#back)">`)
	fmt.Fprintf(bw, "<path d=\"%s\" fill=\"%s\"/>\n", fr.Back.SVG(svgPath), hexColor(backColor.Color()))
	fmt.Fprintf(bw, "<use xlink:href=\"#content\" opacity=\"0.3\" transform=\"matrix(%g %g %g %g %g %g)\"/>\n",
		m[0], m[1], m[2], m[3], m[4], m[5])
	fmt.Fprintf(bw, "<path d=\"%s\" fill=\"url(#back-shadow)\"/>\n", fr.BackShadow.Path().SVG(svgPath))
	fmt.Fprintln(bw, "</g>")

	fmt.Fprintf(bw, "<path d=\"%s\" fill=\"%s\"/>\n", fr.Front.SVG(svgPath), hexColor(pageColor.Color()))
	fmt.Fprintln(bw, `<use xlink:href="#content" clip-path="url(#front)"/>`)
	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}

func writeGradient(w io.Writer, id string, s pagecurl.Shadow) {
	l := s.GradientLine()
	fmt.Fprintf(w, "<linearGradient id=\"%s\" gradientUnits=\"userSpaceOnUse\" x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\">\n",
		id, l.P0.X, l.P0.Y, l.P1.X, l.P1.Y)
	for i, c := range s.Colors {
		fmt.Fprintf(w, "<stop offset=\"%d\" stop-color=\"%s\" stop-opacity=\"%g\"/>\n",
			i, hexColor(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}), float64(c.A)/255)
	}
	fmt.Fprintln(w, "</linearGradient>")
}
