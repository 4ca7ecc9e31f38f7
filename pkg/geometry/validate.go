package geometry

import (
	"math"
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

const (
	// DuplicateTolerance is the distance below which two vertices are
	// considered the same point, which would produce a zero-length edge.
	DuplicateTolerance = 0.1

	// parallelEpsilon is the denominator magnitude under which two segments
	// are treated as parallel.
	parallelEpsilon = 1e-10
)

// Segment connects two vertices by index.
type Segment struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// IsValidPolygon reports whether vertices can form a polygon: at least three
// vertices and no two of them within DuplicateTolerance. Self-intersection is
// checked separately by HasSelfIntersection.
func IsValidPolygon(vertices []Point) bool {
	if len(vertices) < 3 {
		return false
	}
	return len(DuplicateVertices(vertices)) == 0
}

// DuplicateVertices returns index pairs of vertices closer than DuplicateTolerance.
func DuplicateVertices(vertices []Point) [][2]int {
	var dups [][2]int
	for i := 0; i < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			if IsPointNear(vertices[i], vertices[j], DuplicateTolerance) {
				dups = append(dups, [2]int{i, j})
			}
		}
	}
	return dups
}

// IsClosed reports whether an edge joins the last vertex back to the first.
func IsClosed(vertices []Point, edges []Segment) bool {
	n := len(vertices)
	if n < 2 {
		return false
	}
	last := n - 1
	for _, e := range edges {
		if (e.From == last && e.To == 0) || (e.From == 0 && e.To == last) {
			return true
		}
	}
	return false
}

// HasSelfIntersection reports whether any two non-adjacent edges of the
// closed outline cross. Fewer than four vertices cannot self-intersect.
func HasSelfIntersection(vertices []Point) bool {
	n := len(vertices)
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		a1, a2 := vertices[i], vertices[(i+1)%n]
		for j := i + 2; j < n; j++ {
			// Edge n-1 shares vertex 0 with edge 0.
			if i == 0 && j == n-1 {
				continue
			}
			if SegmentsIntersect(a1, a2, vertices[j], vertices[(j+1)%n]) {
				return true
			}
		}
	}
	return false
}

// SegmentsIntersect solves the parametric line equations of segments a and b
// and reports whether both parameters fall in [0, 1]. Parallel segments never
// intersect.
func SegmentsIntersect(a1, a2, b1, b2 Point) bool {
	denom := (b2.Y-b1.Y)*(a2.X-a1.X) - (b2.X-b1.X)*(a2.Y-a1.Y)
	if math.Abs(denom) < parallelEpsilon {
		return false
	}
	ua := ((b2.X-b1.X)*(a1.Y-b1.Y) - (b2.Y-b1.Y)*(a1.X-b1.X)) / denom
	ub := ((a2.X-a1.X)*(a1.Y-b1.Y) - (a2.Y-a1.Y)*(a1.X-b1.X)) / denom
	return ua >= 0 && ua <= 1 && ub >= 0 && ub <= 1
}

// CollinearVertices returns the indices of vertices that lie within
// tolerance of the line through their kept neighbours, i.e. vertices that
// could be removed without visibly changing the outline.
func CollinearVertices(vertices []Point, tolerance float64) []int {
	n := len(vertices)
	if n < 3 {
		return nil
	}

	// Start the chain at the lowest-leftmost vertex. It lies on the convex
	// hull, so it is never a removable midpoint itself.
	start := 0
	for i, v := range vertices {
		s := vertices[start]
		if v.X < s.X || (v.X == s.X && v.Y < s.Y) {
			start = i
		}
	}

	chain := make(orb.LineString, 0, n+1)
	for k := 0; k <= n; k++ {
		v := vertices[(start+k)%n]
		chain = append(chain, orb.Point{v.X, v.Y})
	}

	s := simplify.DouglasPeucker(tolerance).Simplify(chain.Clone())
	kept, ok := s.(orb.LineString)
	if !ok {
		return nil
	}

	var removed []int
	j := 0
	for k := 0; k < n; k++ {
		if j < len(kept) && kept[j].Equal(chain[k]) {
			j++
			continue
		}
		removed = append(removed, (start+k)%n)
	}
	slices.Sort(removed)
	return removed
}
