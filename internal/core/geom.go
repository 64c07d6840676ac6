// Package core provides fundamental types and utilities shared by the game
// and its frontends. It contains no external dependencies (especially no
// Bubble Tea or Ebitengine) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned rectangle in logical canvas units.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Empty reports whether the rectangle has a negative width or height.
// Zero-sized rectangles still have an edge and are not empty.
func (r Rect) Empty() bool {
	return r.W < 0 || r.H < 0
}

// IntersectsCircle returns true if the circle at (cx, cy) with radius r
// touches or overlaps this rectangle.
func (r Rect) IntersectsCircle(cx, cy, radius float64) bool {
	if r.Empty() {
		return false
	}

	closestX := ClampF(cx, r.X, r.Right())
	closestY := ClampF(cy, r.Y, r.Bottom())

	dx := cx - closestX
	dy := cy - closestY
	return dx*dx+dy*dy <= radius*radius
}

// CircleIntersectsRect tests a circle against an axis-aligned rectangle.
// The closest point of the rectangle to the circle center is found by
// clamping the center into the rectangle span; the circle hits when that
// point lies within radius of the center. Rectangles with a negative width
// or height are empty and never collide.
func CircleIntersectsRect(rx, ry, rw, rh, cx, cy, radius float64) bool {
	return NewRect(rx, ry, rw, rh).IntersectsCircle(cx, cy, radius)
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
