package pagecurl

import (
	"fmt"
	"math"
)

// Size is the extent of the drawing surface.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}

// Diagonal returns the length of the surface's diagonal.
func (sz Size) Diagonal() float64 {
	return math.Hypot(sz.Width, sz.Height)
}

// Valid reports whether both sides are finite and strictly positive.
func (sz Size) Valid() bool {
	return sz.Width > 0 && sz.Height > 0 &&
		!math.IsInf(sz.Width, 0) && !math.IsInf(sz.Height, 0)
}

// Rect returns the rectangle spanning the whole surface.
func (sz Size) Rect() Rect {
	return Rect{X0: 0, Y0: 0, X1: sz.Width, Y1: sz.Height}
}
