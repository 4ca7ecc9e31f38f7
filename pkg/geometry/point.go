package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Point is a real-world coordinate in millimetres.
type Point struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// CanvasPoint is a drawing-surface coordinate in pixels.
type CanvasPoint struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
}

// Add returns the sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns the point scaled by a factor.
func (p Point) Scale(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// Bounds is an axis-aligned rectangle given by its minimum and maximum corners.
type Bounds struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

// Center returns the center point.
func (b Bounds) Center() Point {
	return Point{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// Intersects reports whether two bounds overlap or touch.
func (b Bounds) Intersects(other Bounds) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y
}

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 Point) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

// CanvasDistance returns the Euclidean distance between two canvas points in pixels.
func CanvasDistance(p1, p2 CanvasPoint) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

// IsPointNear reports whether p2 lies within tolerance of p1.
func IsPointNear(p1, p2 Point, tolerance float64) bool {
	return Distance(p1, p2) <= tolerance
}

// IsPointInBounds reports whether p lies inside b, edges included.
func IsPointInBounds(p Point, b Bounds) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// ConstrainPointToBounds clamps each axis of p into b independently.
func ConstrainPointToBounds(p Point, b Bounds) Point {
	return Point{
		X: math.Min(math.Max(p.X, b.Min.X), b.Max.X),
		Y: math.Min(math.Max(p.Y, b.Min.Y), b.Max.Y),
	}
}

// BoundingBox computes the axis-aligned bounding box of a set of points.
// An empty set yields the zero Bounds.
func BoundingBox(points []Point) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.X = math.Min(b.Min.X, p.X)
		b.Min.Y = math.Min(b.Min.Y, p.Y)
		b.Max.X = math.Max(b.Max.X, p.X)
		b.Max.Y = math.Max(b.Max.Y, p.Y)
	}
	return b
}

// PolygonCentroid returns the arithmetic mean of the vertices.
// An empty list yields the origin.
func PolygonCentroid(vertices []Point) Point {
	if len(vertices) == 0 {
		return Point{}
	}
	xs := make([]float64, len(vertices))
	ys := make([]float64, len(vertices))
	for i, v := range vertices {
		xs[i], ys[i] = v.X, v.Y
	}
	n := float64(len(vertices))
	return Point{X: floats.Sum(xs) / n, Y: floats.Sum(ys) / n}
}
