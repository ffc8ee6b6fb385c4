package main

import (
	"honnef.co/go/pagecurl"
)

// clipConvex intersects the polygon subject with the convex polygon window,
// using the Sutherland–Hodgman algorithm. Both polygons are given as vertex
// lists without a repeated closing vertex; window may wind either way.
func clipConvex(subject, window []pagecurl.Point) []pagecurl.Point {
	if len(window) < 3 {
		return nil
	}
	orient := 1.0
	if polygonArea(window) < 0 {
		orient = -1
	}
	out := subject
	for i := range window {
		if len(out) == 0 {
			break
		}
		edge := pagecurl.Line{P0: window[i], P1: window[(i+1)%len(window)]}
		inside := func(p pagecurl.Point) bool {
			return orient*edge.P1.Sub(edge.P0).Cross(p.Sub(edge.P0)) >= 0
		}
		in := out
		out = nil
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case inside(cur):
				if !inside(prev) {
					out = appendCrossing(out, pagecurl.Line{P0: prev, P1: cur}, edge)
				}
				out = append(out, cur)
			case inside(prev):
				out = appendCrossing(out, pagecurl.Line{P0: prev, P1: cur}, edge)
			}
			prev = cur
		}
	}
	return out
}

func appendCrossing(out []pagecurl.Point, l, edge pagecurl.Line) []pagecurl.Point {
	if p, ok := l.CrossingPoint(edge); ok {
		out = append(out, p)
	}
	return out
}

// polygonArea returns the signed area of the polygon.
func polygonArea(poly []pagecurl.Point) float64 {
	var sum float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}
