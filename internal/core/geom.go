// Package core provides fundamental types and utilities shared by the
// simulation and its drivers. It contains no external dependencies (no Bubble
// Tea, no Ebitengine) to keep game logic pure and testable.
package core

// Vec2 is a position in world pixels. Y grows downward.
type Vec2 struct {
	X, Y float64
}

// RectF is an axis-aligned rectangle in world pixels.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height; zero is a line or point, negative means inverted by an inset
}

// NewRectF creates a rectangle with the given position and dimensions.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Inverted reports whether an inset has turned the rectangle inside out.
// A zero-size rectangle is a line or a point and is not inverted.
func (r RectF) Inverted() bool {
	return r.W < 0 || r.H < 0
}

// Inset shrinks the rectangle by pad on every side. A pad larger than half
// the size yields a negative extent, which Inverted reports.
func (r RectF) Inset(pad float64) RectF {
	return RectF{X: r.X + pad, Y: r.Y + pad, W: r.W - 2*pad, H: r.H - 2*pad}
}

// Intersects returns true if this rectangle overlaps with another.
// Comparisons are strict: touching edges do not count, and a zero-size
// rectangle hits only when it lies strictly inside the other one. An
// inverted rectangle never overlaps.
func (r RectF) Intersects(other RectF) bool {
	if r.Inverted() || other.Inverted() {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Rect represents an axis-aligned box in screen cells.
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
