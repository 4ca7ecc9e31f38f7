// Package shape validates a room outline drawn as a graph of nodes and edges
// and turns it into the ordered polygon and scale samples the engine uses.
//
// Nodes carry canvas positions in pixels. Edges connect two nodes by ID and
// may carry a real-world dimension. When the edges form a single cycle the
// outline follows that cycle starting from the first node; otherwise the
// nodes are taken in the order supplied.
package shape

import (
	"github.com/matzehuels/tileplan/pkg/geometry"
	"github.com/matzehuels/tileplan/pkg/scale"
)

// Node is an outline vertex on the canvas.
type Node struct {
	ID       string               `json:"id"`
	Position geometry.CanvasPoint `json:"position"`
}

// Dimension is a measured edge length.
type Dimension struct {
	Length float64       `json:"length"`
	Unit   geometry.Unit `json:"unit"`
}

// Edge connects two nodes by ID.
type Edge struct {
	ID        string     `json:"id"`
	Source    string     `json:"source"`
	Target    string     `json:"target"`
	Dimension *Dimension `json:"dimension,omitempty"`
}

// Dimensioned reports whether the edge carries a usable measurement.
func (e Edge) Dimensioned() bool {
	return e.Dimension != nil && e.Dimension.Length > 0 && e.Dimension.Unit.Valid()
}

// Order returns the nodes in outline order and whether the edges form a
// single cycle through all of them.
func Order(nodes []Node, edges []Edge) ([]Node, bool) {
	if len(nodes) < 3 || len(edges) != len(nodes) {
		return nodes, false
	}
	index := indexNodes(nodes)
	adj := make(map[string][]string, len(nodes))
	for _, e := range edges {
		if _, ok := index[e.Source]; !ok {
			return nodes, false
		}
		if _, ok := index[e.Target]; !ok {
			return nodes, false
		}
		adj[e.Source] = append(adj[e.Source], e.Target)
		adj[e.Target] = append(adj[e.Target], e.Source)
	}
	for _, n := range nodes {
		if len(adj[n.ID]) != 2 {
			return nodes, false
		}
	}

	ordered := make([]Node, 0, len(nodes))
	seen := make(map[string]bool, len(nodes))
	prev, cur := "", nodes[0].ID
	for !seen[cur] {
		seen[cur] = true
		ordered = append(ordered, nodes[index[cur]])
		next := adj[cur][0]
		if next == prev {
			next = adj[cur][1]
		}
		prev, cur = cur, next
	}
	if len(ordered) != len(nodes) || cur != nodes[0].ID {
		return nodes, false
	}
	return ordered, true
}

// Outline returns the ordered canvas vertices of the layout.
func Outline(nodes []Node, edges []Edge) []geometry.Point {
	ordered, _ := Order(nodes, edges)
	vs := make([]geometry.Point, len(ordered))
	for i, n := range ordered {
		vs[i] = geometry.Point(n.Position)
	}
	return vs
}

// Samples converts the dimensioned edges into scale samples. Edges that
// reference unknown nodes are skipped.
func Samples(nodes []Node, edges []Edge) []scale.DimensionedEdge {
	index := indexNodes(nodes)
	var samples []scale.DimensionedEdge
	for _, e := range edges {
		if !e.Dimensioned() {
			continue
		}
		px, ok := edgeLength(nodes, index, e)
		if !ok {
			continue
		}
		samples = append(samples, scale.DimensionedEdge{
			PixelLength: px,
			RealLength:  e.Dimension.Length,
			Unit:        e.Dimension.Unit,
		})
	}
	return samples
}

// ResolveScale resolves the layout scale from its dimensioned edges and
// measures the ordered outline in it.
func ResolveScale(nodes []Node, edges []Edge) (scale.Resolution, error) {
	vs := Outline(nodes, edges)
	return scale.Resolve(
		Samples(nodes, edges),
		geometry.PolygonArea(vs),
		geometry.PolygonPerimeter(vs, len(vs) >= 3),
	)
}

func indexNodes(nodes []Node) map[string]int {
	index := make(map[string]int, len(nodes))
	for i, n := range nodes {
		if _, dup := index[n.ID]; !dup {
			index[n.ID] = i
		}
	}
	return index
}

func edgeLength(nodes []Node, index map[string]int, e Edge) (float64, bool) {
	si, ok := index[e.Source]
	if !ok {
		return 0, false
	}
	ti, ok := index[e.Target]
	if !ok {
		return 0, false
	}
	return geometry.CanvasDistance(nodes[si].Position, nodes[ti].Position), true
}
