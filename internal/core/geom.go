// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

// Rect is an integer cell rectangle used by the terminal screen buffer.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in field space, normalised to its edges.
// Both anchor conventions used by entities (centred and top-left) are
// converted into a Box before any collision test.
type Box struct {
	Left, Right float64
	Top, Bottom float64
}

// CenteredBox builds a box of size w x h centred on (cx, cy).
func CenteredBox(cx, cy, w, h float64) Box {
	return Box{
		Left:   cx - w/2,
		Right:  cx + w/2,
		Top:    cy - h/2,
		Bottom: cy + h/2,
	}
}

// CornerBox builds a box of size w x h whose top-left corner is (x, y).
func CornerBox(x, y, w, h float64) Box {
	return Box{
		Left:   x,
		Right:  x + w,
		Top:    y,
		Bottom: y + h,
	}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// Overlaps reports whether two boxes intersect.
// Intervals are closed: boxes that only share an edge or a corner collide.
func Overlaps(a, b Box) bool {
	if a.Right < b.Left || a.Left > b.Right {
		return false
	}
	if a.Bottom < b.Top || a.Top > b.Bottom {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
