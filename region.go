package pagecurl

// FlatPage returns the outline of the unfolded page covering the whole
// surface.
func FlatPage(size Size) BezPath {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(0, size.Height))
	p.LineTo(Pt(size.Width, size.Height))
	p.LineTo(Pt(size.Width, 0))
	p.ClosePath()
	return p
}

// Front returns the outline of the part of the current page that has not
// been peeled back.
//
// Both variants run from the fold start C along the first curve to B, over
// the drag point A, and along the second curve from K to J. They differ in
// which surface corners close the outline: a top-right fold continues to the
// bottom edge, a bottom-right fold to the top-right corner.
func (fg FoldGeometry) Front() BezPath {
	w, h := fg.Size.Splat()
	var p BezPath
	p.MoveTo(Pt(0, 0))
	if fg.Corner() == BottomRight {
		p.LineTo(Pt(0, h))
	}
	p.LineTo(fg.C)
	p.QuadTo(fg.E, fg.B)
	p.LineTo(fg.A)
	p.LineTo(fg.K)
	p.QuadTo(fg.H, fg.J)
	if fg.Corner() == BottomRight {
		p.LineTo(Pt(w, 0))
	} else {
		p.LineTo(Pt(w, h))
		p.LineTo(Pt(0, h))
	}
	p.ClosePath()
	return p
}

// Back returns the triangle D, I, A bounding the visible reverse side of the
// peeled page. Renderers show it minus the front region.
func (fg FoldGeometry) Back() BezPath {
	var p BezPath
	p.MoveTo(fg.D)
	p.LineTo(fg.I)
	p.LineTo(fg.A)
	p.ClosePath()
	return p
}

// Next returns the outline of the page underneath, which spans the whole
// surface. Renderers show it minus the front and back regions.
func (fg FoldGeometry) Next() BezPath {
	return FlatPage(fg.Size)
}
