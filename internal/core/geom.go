// Package core provides fundamental types and utilities for the dasher runtime.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec2 is a point or displacement in world space (pixels).
type Vec2 struct {
	X, Y float64
}

// Rect represents an axis-aligned bounding box used for collision detection.
// Coordinates are world pixels; X, Y is the top-left corner.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAt creates a rectangle of size w x h with its top-left corner at pos.
func RectAt(pos Vec2, w, h float64) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap. A zero-size rectangle behaves as a
// point probe and overlaps any rectangle that strictly contains it.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Inset shrinks the rectangle by p on every side.
// When 2p exceeds a dimension that dimension collapses to zero around the
// original centre, so the result never has a negative size.
func (r Rect) Inset(p float64) Rect {
	out := Rect{X: r.X + p, Y: r.Y + p, W: r.W - 2*p, H: r.H - 2*p}
	if out.W < 0 {
		out.X = r.X + r.W/2
		out.W = 0
	}
	if out.H < 0 {
		out.Y = r.Y + r.H/2
		out.H = 0
	}
	return out
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
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
