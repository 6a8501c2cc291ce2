// Package core provides fundamental types and utilities for the runner.
// It contains no Bubble Tea dependency to keep game logic pure and testable.
package core

import "github.com/go-gl/mathgl/mgl64"

// Rect is an integer rectangle in screen cells, used for drawing.
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

// Box is an axis-aligned bounding box in world units.
// Y grows upward; the ground plane is Y = 0.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewBox creates a box from two corners, ordering each axis.
func NewBox(a, b mgl64.Vec3) Box {
	var box Box
	for i := 0; i < 3; i++ {
		box.Min[i] = min(a[i], b[i])
		box.Max[i] = max(a[i], b[i])
	}
	return box
}

// Intersects reports whether two boxes overlap on all three axes.
// Bounds are inclusive: touching faces count, and a box that is flat on an
// axis still overlaps anything spanning that coordinate.
func (b Box) Intersects(other Box) bool {
	for i := 0; i < 3; i++ {
		if b.Max[i] < other.Min[i] || other.Max[i] < b.Min[i] {
			return false
		}
	}
	return true
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
