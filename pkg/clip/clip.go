// Package clip trims a tile lattice to a room outline and classifies each
// remaining tile as full, cut or partial.
//
// # Modes
//
// [ModeHeuristic] (the default) counts how many tile corners fall inside the
// outline:
//
//   - 4 corners inside: full, 100%
//   - 1-3 corners inside: cut, corners/4 of the tile
//   - no corner inside but the centre inside: partial, a fixed 25%
//   - otherwise the tile is dropped
//
// A corner lying exactly on the outline counts as inside only when the tile
// body extends into the room from it. This never computes the true overlap.
// It is cheap and exact for rectilinear rooms laid on the lattice, but may
// misjudge tiles on deeply concave outlines.
//
// [ModeExact] computes the overlap area of each boundary tile with polygon
// clipping and uses the heuristic only to skip tiles that are clearly in or
// out.
//
// Outlines with fewer than three vertices leave the lattice unchanged.
package clip

import (
	"math"

	"github.com/ctessum/polyclip-go"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/matzehuels/tileplan/pkg/errors"
	"github.com/matzehuels/tileplan/pkg/geometry"
	"github.com/matzehuels/tileplan/pkg/tile"
)

// Mode selects the classification algorithm.
type Mode string

// Clip modes.
const (
	ModeHeuristic Mode = "heuristic"
	ModeExact     Mode = "exact"
)

// PartialCoverage is the fixed coverage estimate for partial tiles.
const PartialCoverage = 25.0

// areaEpsilon bounds the overlap fractions treated as empty or complete.
const areaEpsilon = 1e-9

// cornerInset is the fraction of the corner-to-centre distance corners are
// moved inwards before the containment test.
const cornerInset = 1e-9

// ParseMode parses a clip mode name. The empty string selects ModeHeuristic.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeHeuristic:
		return ModeHeuristic, nil
	case ModeExact:
		return ModeExact, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "invalid clip mode: %q (must be one of: heuristic, exact)", s)
}

// Clipper holds an outline prepared for repeated tile tests.
type Clipper struct {
	mode    Mode
	ring    orb.Ring
	bounds  geometry.Bounds
	convex  bool
	contour polyclip.Contour
}

// New prepares polygon for clipping in the given mode.
func New(polygon []geometry.Point, mode Mode) *Clipper {
	if mode == "" {
		mode = ModeHeuristic
	}
	c := &Clipper{
		mode:    mode,
		ring:    make(orb.Ring, 0, len(polygon)+1),
		bounds:  geometry.BoundingBox(polygon),
		convex:  geometry.IsConvex(polygon),
		contour: make(polyclip.Contour, len(polygon)),
	}
	for i, p := range polygon {
		c.ring = append(c.ring, orb.Point{p.X, p.Y})
		c.contour[i] = polyclip.Point{X: p.X, Y: p.Y}
	}
	if len(c.ring) > 0 {
		c.ring = append(c.ring, c.ring[0])
	}
	return c
}

// Clip classifies every tile against polygon. See Clipper.Clip.
func Clip(tiles []tile.Position, polygon []geometry.Point, mode Mode) []tile.Position {
	return New(polygon, mode).Clip(tiles)
}

// Clip returns a new slice containing the tiles that overlap the outline,
// each re-tagged with its type and cut percentage. The input is not modified.
func (c *Clipper) Clip(tiles []tile.Position) []tile.Position {
	if len(c.contour) < 3 {
		out := make([]tile.Position, len(tiles))
		copy(out, tiles)
		return out
	}
	out := make([]tile.Position, 0, len(tiles))
	for _, t := range tiles {
		if ct, ok := c.Classify(t); ok {
			out = append(out, ct)
		}
	}
	return out
}

// Classify tags a single tile. ok is false when the tile lies outside the
// outline and should be dropped.
func (c *Clipper) Classify(t tile.Position) (tile.Position, bool) {
	if c.mode == ModeExact {
		return c.classifyExact(t)
	}
	return c.classifyHeuristic(t)
}

// Contains reports whether p lies inside the outline or on its boundary.
func (c *Clipper) Contains(p geometry.Point) bool {
	if len(c.ring) < 4 {
		return false
	}
	return planar.RingContains(c.ring, orb.Point{p.X, p.Y})
}

// insetCorners returns the tile corners pulled a hair toward the centre.
func insetCorners(t tile.Position) [4]geometry.Point {
	center := t.Center()
	corners := t.Corners()
	for i, p := range corners {
		corners[i] = p.Add(center.Sub(p).Scale(cornerInset))
	}
	return corners
}

func (c *Clipper) cornersInside(t tile.Position) int {
	inside := 0
	for _, p := range insetCorners(t) {
		if c.Contains(p) {
			inside++
		}
	}
	return inside
}

func (c *Clipper) classifyHeuristic(t tile.Position) (tile.Position, bool) {
	inside := c.cornersInside(t)
	switch {
	case inside == 4:
		return t.Classified(tile.Full, 100), true
	case inside > 0:
		return t.Classified(tile.Cut, float64(inside)/4*100), true
	case c.Contains(t.Center()):
		return t.Classified(tile.Partial, PartialCoverage), true
	}
	return t, false
}

func (c *Clipper) classifyExact(t tile.Position) (tile.Position, bool) {
	if !t.Bounds().Intersects(c.bounds) {
		return t, false
	}
	if c.convex && c.cornersInside(t) == 4 {
		return t.Classified(tile.Full, 100), true
	}

	tileArea := t.Width * t.Height
	if tileArea <= 0 {
		return t, false
	}
	fraction := c.overlapArea(t) / tileArea
	switch {
	case fraction <= areaEpsilon:
		return t, false
	case fraction >= 1-areaEpsilon:
		return t.Classified(tile.Full, 100), true
	}
	return t.Classified(tile.Cut, fraction*100), true
}

// overlapArea returns the area of the tile rectangle inside the outline.
func (c *Clipper) overlapArea(t tile.Position) float64 {
	corners := t.Corners()
	subject := polyclip.Polygon{make(polyclip.Contour, len(corners))}
	for i, p := range corners {
		subject[0][i] = polyclip.Point{X: p.X, Y: p.Y}
	}
	result := subject.Construct(polyclip.INTERSECTION, polyclip.Polygon{c.contour})

	var area float64
	for _, contour := range result {
		pts := make([]geometry.Point, len(contour))
		for i, p := range contour {
			pts[i] = geometry.Point{X: p.X, Y: p.Y}
		}
		area += geometry.PolygonArea(pts)
	}
	return math.Min(area, t.Width*t.Height)
}
