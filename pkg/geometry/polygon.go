package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// PolygonArea returns the area enclosed by vertices using the shoelace
// formula. Fewer than three vertices yield zero.
func PolygonArea(vertices []Point) float64 {
	return math.Abs(signedArea(vertices))
}

// signedArea is positive for counter-clockwise winding (y up).
func signedArea(vertices []Point) float64 {
	n := len(vertices)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += vertices[i].X*vertices[j].Y - vertices[j].X*vertices[i].Y
	}
	return sum / 2
}

// PolygonPerimeter sums the lengths of consecutive edges. When isComplete is
// set and there are at least three vertices the closing edge is included.
// Fewer than two vertices yield zero.
func PolygonPerimeter(vertices []Point, isComplete bool) float64 {
	n := len(vertices)
	if n < 2 {
		return 0
	}
	lengths := make([]float64, 0, n)
	for i := 0; i < n-1; i++ {
		lengths = append(lengths, Distance(vertices[i], vertices[i+1]))
	}
	if isComplete && n >= 3 {
		lengths = append(lengths, Distance(vertices[n-1], vertices[0]))
	}
	return floats.Sum(lengths)
}

// IsConvex reports whether the polygon turns the same way at every vertex.
// Collinear vertices are ignored.
func IsConvex(vertices []Point) bool {
	n := len(vertices)
	if n < 3 {
		return false
	}
	var sign float64
	for i := 0; i < n; i++ {
		a, b, c := vertices[i], vertices[(i+1)%n], vertices[(i+2)%n]
		cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if (cross > 0) != (sign > 0) {
			return false
		}
	}
	return sign != 0
}

// Polygon is an ordered vertex list with cached area and perimeter.
// The zero value is an empty, in-progress polygon.
type Polygon struct {
	vertices  []Point
	area      float64
	perimeter float64
}

// NewPolygon creates a polygon from vertices. The slice is copied.
func NewPolygon(vertices ...Point) Polygon {
	vs := make([]Point, len(vertices))
	copy(vs, vertices)
	return build(vs)
}

// build takes ownership of vs and recomputes the cached measurements.
func build(vs []Point) Polygon {
	p := Polygon{vertices: vs}
	p.perimeter = PolygonPerimeter(vs, len(vs) >= 3)
	if len(vs) >= 3 {
		p.area = PolygonArea(vs)
	}
	return p
}

// Vertices returns a copy of the vertex list.
func (p Polygon) Vertices() []Point {
	vs := make([]Point, len(p.vertices))
	copy(vs, p.vertices)
	return vs
}

// Len returns the number of vertices.
func (p Polygon) Len() int { return len(p.vertices) }

// IsComplete reports whether the polygon has enough vertices to enclose an area.
func (p Polygon) IsComplete() bool { return len(p.vertices) >= 3 }

// Area returns the enclosed area. ok is false while the polygon is incomplete.
func (p Polygon) Area() (area float64, ok bool) {
	return p.area, p.IsComplete()
}

// Perimeter returns the outline length. ok is false with fewer than two vertices.
func (p Polygon) Perimeter() (perimeter float64, ok bool) {
	return p.perimeter, len(p.vertices) >= 2
}

// Centroid returns the vertex mean.
func (p Polygon) Centroid() Point { return PolygonCentroid(p.vertices) }

// Bounds returns the bounding box of the vertices.
func (p Polygon) Bounds() Bounds { return BoundingBox(p.vertices) }

// WithVertex returns a copy of p with v appended.
func (p Polygon) WithVertex(v Point) Polygon {
	vs := make([]Point, len(p.vertices), len(p.vertices)+1)
	copy(vs, p.vertices)
	return build(append(vs, v))
}

// WithVertexMoved returns a copy of p with vertex i replaced by v.
// An out-of-range index returns p unchanged.
func (p Polygon) WithVertexMoved(i int, v Point) Polygon {
	if i < 0 || i >= len(p.vertices) {
		return p
	}
	vs := p.Vertices()
	vs[i] = v
	return build(vs)
}

// WithoutVertex returns a copy of p with vertex i removed.
// An out-of-range index returns p unchanged.
func (p Polygon) WithoutVertex(i int) Polygon {
	if i < 0 || i >= len(p.vertices) {
		return p
	}
	vs := make([]Point, 0, len(p.vertices)-1)
	vs = append(vs, p.vertices[:i]...)
	vs = append(vs, p.vertices[i+1:]...)
	return build(vs)
}

// Translate returns a copy of p shifted by d.
func (p Polygon) Translate(d Point) Polygon {
	vs := make([]Point, len(p.vertices))
	for i, v := range p.vertices {
		vs[i] = v.Add(d)
	}
	return build(vs)
}
