// Package physics provides axis-aligned boxes and the overlap test used for collisions.
package physics

import "math"

// Rect is an axis-aligned box. X, Y is the top-left corner; Y grows downwards.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Translate returns the rectangle moved by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Center returns the centre point of the rectangle.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// RectsOverlap reports whether two boxes share interior area.
// Boxes that only touch along an edge do not overlap.
func RectsOverlap(a, b Rect) bool {
	return a.X < b.Right() && b.X < a.Right() &&
		a.Y < b.Bottom() && b.Y < a.Bottom()
}

// PointOnCircle returns the point at angle (radians) on a circle around cx, cy.
func PointOnCircle(cx, cy, radius, angle float64) (x, y float64) {
	return cx + math.Cos(angle)*radius, cy + math.Sin(angle)*radius
}
