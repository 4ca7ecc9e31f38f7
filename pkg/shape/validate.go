package shape

import (
	"fmt"
	"strings"

	"github.com/matzehuels/tileplan/pkg/geometry"
)

const (
	// MinEdgePixels is the canvas length below which an edge is reported as tiny.
	MinEdgePixels = 10.0

	// LargeAreaM2 is the room area above which a warning is raised.
	LargeAreaM2 = 500.0

	// CollinearTolerance is the pixel distance within which a vertex is
	// considered to lie on the line through its neighbours.
	CollinearTolerance = 1.0
)

// ValidationResult describes the state of a drawn outline. Errors make the
// outline unusable; warnings are advisory.
type ValidationResult struct {
	IsValid             bool     `json:"is_valid"`
	IsClosed            bool     `json:"is_closed"`
	HasMinimumNodes     bool     `json:"has_minimum_nodes"`
	HasSelfIntersection bool     `json:"has_self_intersection"`
	MissingDimensions   []string `json:"missing_dimensions"`
	Errors              []string `json:"errors"`
	Warnings            []string `json:"warnings"`
}

func (r *ValidationResult) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// ValidateLayoutShape checks that the nodes and edges describe a closed,
// simple outline with at least one measured edge. It never fails; every
// problem is reported in the result.
func ValidateLayoutShape(nodes []Node, edges []Edge) ValidationResult {
	r := ValidationResult{
		HasMinimumNodes:   len(nodes) >= 3,
		MissingDimensions: []string{},
		Errors:            []string{},
		Warnings:          []string{},
	}
	if !r.HasMinimumNodes {
		r.errorf("at least 3 points are required to form a shape (got %d)", len(nodes))
	}

	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		if _, dup := index[n.ID]; dup {
			r.errorf("duplicate node id %q", n.ID)
			continue
		}
		index[n.ID] = i
	}

	segments := make([]geometry.Segment, 0, len(edges))
	for _, e := range edges {
		si, sok := index[e.Source]
		ti, tok := index[e.Target]
		switch {
		case !sok:
			r.errorf("edge %q references unknown node %q", e.ID, e.Source)
		case !tok:
			r.errorf("edge %q references unknown node %q", e.ID, e.Target)
		default:
			segments = append(segments, geometry.Segment{From: si, To: ti})
			if d := geometry.CanvasDistance(nodes[si].Position, nodes[ti].Position); d < MinEdgePixels {
				r.warnf("edge %q is very short (%.1f px)", e.ID, d)
			}
		}
		if e.Dimension != nil && e.Dimension.Length > 0 && !e.Dimension.Unit.Valid() {
			r.errorf("edge %q has unknown unit %q", e.ID, e.Dimension.Unit)
		}
		if !e.Dimensioned() {
			r.MissingDimensions = append(r.MissingDimensions, e.ID)
		}
	}

	ordered, cycle := Order(nodes, edges)
	vs := make([]geometry.Point, len(ordered))
	ids := make([]string, len(ordered))
	for i, n := range ordered {
		vs[i] = geometry.Point(n.Position)
		ids[i] = n.ID
	}

	r.IsClosed = r.HasMinimumNodes && (cycle || geometry.IsClosed(vs, segments))
	if r.HasMinimumNodes && !r.IsClosed {
		r.errorf("shape must be closed")
	}

	for _, pair := range geometry.DuplicateVertices(vs) {
		r.errorf("points %q and %q overlap", ids[pair[0]], ids[pair[1]])
	}

	if r.IsClosed {
		r.HasSelfIntersection = geometry.HasSelfIntersection(vs)
		if r.HasSelfIntersection {
			r.errorf("shape edges cross each other")
		}
		if idx := geometry.CollinearVertices(vs, CollinearTolerance); len(idx) > 0 {
			names := make([]string, len(idx))
			for i, k := range idx {
				names[i] = ids[k]
			}
			r.warnf("points %s lie on a straight line and can be removed", strings.Join(names, ", "))
		}
	}

	switch {
	case len(edges) > 0 && len(r.MissingDimensions) == len(edges), len(edges) == 0 && r.HasMinimumNodes:
		r.errorf("at least one edge needs a measurement to set the scale")
	case len(r.MissingDimensions) > 0:
		r.warnf("%d edge(s) without a measurement: %s", len(r.MissingDimensions), strings.Join(r.MissingDimensions, ", "))
	}

	if r.IsClosed {
		if res, err := ResolveScale(nodes, edges); err == nil && res.AreaM2 > LargeAreaM2 {
			r.warnf("room area of %.1f m² is unusually large", res.AreaM2)
		}
	}

	r.IsValid = len(r.Errors) == 0
	return r
}
