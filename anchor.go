package pagecurl

import (
	"fmt"
)

// Corner is a surface corner the page can peel away from.
type Corner int

const (
	TopRight Corner = iota + 1
	BottomRight
)

func (c Corner) String() string {
	switch c {
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	default:
		return fmt.Sprintf("Corner(%d)", int(c))
	}
}

// Point returns the position of the corner on a surface of the given size.
func (c Corner) Point(size Size) Point {
	if c == TopRight {
		return Pt(size.Width, 0)
	}
	return Pt(size.Width, size.Height)
}

// Inset returns the corner moved by d towards the inside of the surface on
// both axes.
func (c Corner) Inset(size Size, d float64) Point {
	if c == TopRight {
		return Pt(size.Width-d, d)
	}
	return Pt(size.Width-d, size.Height-d)
}

// AnchorMode is the way a touch sequence folds the page. It is decided once,
// on touch-down, and stays fixed until the sequence ends.
type AnchorMode int

const (
	// Undetermined means no touch sequence is in progress.
	Undetermined AnchorMode = iota
	// PeelTopRight folds the page from the top-right corner.
	PeelTopRight
	// PeelBottomRight folds the page from the bottom-right corner.
	PeelBottomRight
	// PeelHorizontal folds the page from the bottom-right corner with the
	// drag point pinned just above the bottom edge, so the fold stays
	// nearly vertical regardless of the finger's height.
	PeelHorizontal
)

func (m AnchorMode) String() string {
	switch m {
	case Undetermined:
		return "undetermined"
	case PeelTopRight:
		return "top-right"
	case PeelBottomRight:
		return "bottom-right"
	case PeelHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("AnchorMode(%d)", int(m))
	}
}

// Corner returns the corner the mode folds from. Undetermined has no corner
// and returns 0.
func (m AnchorMode) Corner() Corner {
	switch m {
	case PeelTopRight:
		return TopRight
	case PeelBottomRight, PeelHorizontal:
		return BottomRight
	default:
		return 0
	}
}

// A Classifier decides the anchor mode of a touch sequence from the vertical
// position of its first touch.
type Classifier interface {
	Classify(y float64, size Size) AnchorMode
}

// ThirdsClassifier splits the surface into three equal horizontal bands:
// the top third peels from the top-right corner, the middle third peels
// horizontally and the bottom third peels from the bottom-right corner.
type ThirdsClassifier struct{}

func (ThirdsClassifier) Classify(y float64, size Size) AnchorMode {
	switch {
	case y <= size.Height/3:
		return PeelTopRight
	case y <= size.Height*2/3:
		return PeelHorizontal
	default:
		return PeelBottomRight
	}
}

// BandClassifier uses fixed pixel bands along the top and bottom edges.
// Touches within Top pixels of the top edge peel from the top-right corner,
// touches within Bottom pixels of the bottom edge peel from the bottom-right
// corner, and everything in between peels horizontally. If the bands
// overlap, the top band wins.
type BandClassifier struct {
	Top    float64
	Bottom float64
}

func (b BandClassifier) Classify(y float64, size Size) AnchorMode {
	switch {
	case y <= b.Top:
		return PeelTopRight
	case y >= size.Height-b.Bottom:
		return PeelBottomRight
	default:
		return PeelHorizontal
	}
}
