// Package pagecurl computes the geometry of an interactive page curl: as a
// finger drags across a rectangular surface, the page bends away from a
// fixed corner, revealing the page underneath.
//
// The package does not draw anything. It produces outlines made of lines and
// quadratic Béziers, shadow rectangles and an affine transform, and leaves
// rasterisation, clipping and compositing to the caller.
//
// # Fold geometry
//
// [Solve] is a closed-form function of the drag point a, the anchor corner f
// and the surface size. The fold crease is the perpendicular bisector of a
// and f. Where it meets the horizontal and vertical lines through f lie the
// control points E and H of two quadratic Béziers, the fold curves, which
// start at C and J on the anchor's axes and end at B and K. D and I, the
// midpoints of the curves, bound the visible reverse side of the page
// together with a.
//
// From a [FoldGeometry] three regions are derived:
//
//   - [FoldGeometry.Front], the part of the current page that is still flat
//   - [FoldGeometry.Back], the triangle D, I, A showing the reverse side
//   - [FoldGeometry.Next], the whole surface, on which the next page shows
//
// Renderers draw Next, then Back minus Front, then Front. The reverse side is
// drawn with page content mirrored by [FoldGeometry.Reflection], and the
// shadows returned by [FoldGeometry.FrontShadow] and
// [FoldGeometry.BackShadow] soften the fold.
//
// # Clamping
//
// Dragging too far towards the anchor's edge would make the fold start left
// of the surface and the outline intersect itself. [Clamp] pulls such drag
// points back towards the anchor until the fold starts exactly at x = 0.
//
// # Interaction
//
// [Controller] turns touch events into frames. The first touch of a sequence
// picks the anchor: by default, touches in the top third peel from the
// top-right corner, touches in the bottom third from the bottom-right
// corner, and touches in the middle third produce a horizontal fold. Lifting
// the finger animates the page back flat over 400ms, driven by
// [Controller.Tick].
//
//	c, _ := pagecurl.NewController(pagecurl.Sz(1000, 1600))
//	c.TouchDown(pagecurl.Pt(900, 1500))
//	c.TouchMove(pagecurl.Pt(500, 1200))
//	frame := c.Frame()
//	// draw frame.Next, frame.Back, frame.Front ...
//
// All coordinates are in a y-down space with the origin in the top left
// corner of the surface.
package pagecurl
