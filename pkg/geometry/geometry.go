// Package geometry provides the minimal plane geometry used by the graph
// model: points, sizes, and axis-aligned rectangles.
//
// The model only needs bounding-box arithmetic for its spatial queries
// (point hit-testing, area selection, containment checks), so this package
// deliberately stops at rectangles. Rotation, paths, and curve math belong
// to rendering layers outside this repository.
package geometry

import "math"

// Point is a position in the plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Translate returns the point moved by (dx, dy).
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Size is a width/height pair. Negative dimensions are never produced by
// this package but are not rejected either - the model treats size as
// caller-supplied data.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rectangle is an axis-aligned rectangle identified by its top-left corner
// and its size.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRectangle builds a rectangle from a top-left corner and a size.
func NewRectangle(p Point, s Size) Rectangle {
	return Rectangle{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Right returns the x coordinate of the right edge.
func (r Rectangle) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rectangle) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rectangle) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// ContainsPoint reports whether p lies inside the rectangle. Points on
// the boundary count as inside.
func (r Rectangle) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// ContainsRect reports whether other lies entirely inside the rectangle.
// A rectangle contains itself.
func (r Rectangle) ContainsRect(other Rectangle) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Intersects reports whether the two rectangles share any area or touch.
func (r Rectangle) Intersects(other Rectangle) bool {
	return r.X <= other.Right() && other.X <= r.Right() &&
		r.Y <= other.Bottom() && other.Y <= r.Bottom()
}

// Union returns the smallest rectangle covering both r and other.
func (r Rectangle) Union(other Rectangle) Rectangle {
	x := math.Min(r.X, other.X)
	y := math.Min(r.Y, other.Y)
	right := math.Max(r.Right(), other.Right())
	bottom := math.Max(r.Bottom(), other.Bottom())
	return Rectangle{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rectangle) Translate(dx, dy float64) Rectangle {
	return Rectangle{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}
