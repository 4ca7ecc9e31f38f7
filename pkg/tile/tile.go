// Package tile defines the tile data model shared by the pattern generators,
// the clipper and the statistics aggregator.
//
// A [Position] is created by a pattern generator as a full tile, re-tagged by
// the clipper into a new slice, and never mutated afterwards. A
// [GenerationResult] is a derived view over a slice of positions and is
// recomputed wholesale on every generation.
package tile

import (
	"github.com/matzehuels/tileplan/pkg/errors"
	"github.com/matzehuels/tileplan/pkg/geometry"
)

// Type classifies a placed tile.
type Type string

// Tile types.
const (
	// Full tiles are placed uncut.
	Full Type = "full"
	// Cut tiles cross the room outline and need trimming.
	Cut Type = "cut"
	// Partial tiles have every corner outside the outline but their centre inside.
	Partial Type = "partial"
)

// Spec is the physical tile size and joint width. Width runs along X and
// Length along Y, both in Unit. GroutWidth is always in millimetres.
type Spec struct {
	Length     float64       `json:"length" toml:"length"`
	Width      float64       `json:"width" toml:"width"`
	Unit       geometry.Unit `json:"unit" toml:"unit"`
	GroutWidth float64       `json:"grout_width" toml:"grout_width"`
}

// Validate checks that the tile has a positive size, a known unit and a
// non-negative grout joint.
func (s Spec) Validate() error {
	if err := errors.ValidatePositive(errors.ErrCodeInvalidTile, "tile length", s.Length); err != nil {
		return err
	}
	if err := errors.ValidatePositive(errors.ErrCodeInvalidTile, "tile width", s.Width); err != nil {
		return err
	}
	if !s.Unit.Valid() {
		return errors.New(errors.ErrCodeInvalidUnit, "unknown tile unit %q", s.Unit)
	}
	return errors.ValidateNonNegative(errors.ErrCodeInvalidTile, "grout width", s.GroutWidth)
}

// WidthMM returns the tile width in millimetres.
func (s Spec) WidthMM() float64 { return geometry.ToMillimeters(s.Width, s.Unit) }

// LengthMM returns the tile length in millimetres.
func (s Spec) LengthMM() float64 { return geometry.ToMillimeters(s.Length, s.Unit) }

// AreaMM2 returns the face area of one tile in square millimetres.
func (s Spec) AreaMM2() float64 { return s.WidthMM() * s.LengthMM() }

// Position is one tile placed in working pixels.
type Position struct {
	ID            string   `json:"id"`
	X             float64  `json:"x"`
	Y             float64  `json:"y"`
	Width         float64  `json:"width"`
	Height        float64  `json:"height"`
	Rotation      float64  `json:"rotation"`
	Type          Type     `json:"type"`
	CutPercentage *float64 `json:"cut_percentage,omitempty"`
}

// Corners returns the four corners in drawing order starting top-left.
func (p Position) Corners() [4]geometry.Point {
	return [4]geometry.Point{
		{X: p.X, Y: p.Y},
		{X: p.X + p.Width, Y: p.Y},
		{X: p.X + p.Width, Y: p.Y + p.Height},
		{X: p.X, Y: p.Y + p.Height},
	}
}

// Center returns the tile's centre point.
func (p Position) Center() geometry.Point {
	return geometry.Point{X: p.X + p.Width/2, Y: p.Y + p.Height/2}
}

// Bounds returns the tile's bounding box.
func (p Position) Bounds() geometry.Bounds {
	return geometry.Bounds{
		Min: geometry.Point{X: p.X, Y: p.Y},
		Max: geometry.Point{X: p.X + p.Width, Y: p.Y + p.Height},
	}
}

// Coverage returns the estimated percentage of the tile inside the outline.
// Tiles that were never clipped count as fully covered.
func (p Position) Coverage() float64 {
	if p.CutPercentage == nil {
		return 100
	}
	return *p.CutPercentage
}

// Classified returns a copy of p tagged with t and pct.
func (p Position) Classified(t Type, pct float64) Position {
	p.Type = t
	p.CutPercentage = &pct
	return p
}

// GenerationResult is the aggregate view over a generated and optionally
// clipped tile list.
type GenerationResult struct {
	Tiles           []Position      `json:"tiles"`
	FullTiles       int             `json:"full_tiles"`
	CutTiles        int             `json:"cut_tiles"`
	TotalTiles      int             `json:"total_tiles"`
	WastePercentage float64         `json:"waste_percentage"`
	Coverage        float64         `json:"coverage"`
	Pattern         string          `json:"pattern"`
	BoundingBox     geometry.Bounds `json:"bounding_box"`
}

// BoundingBox returns the box enclosing every tile. An empty list yields the
// zero Bounds.
func BoundingBox(tiles []Position) geometry.Bounds {
	if len(tiles) == 0 {
		return geometry.Bounds{}
	}
	pts := make([]geometry.Point, 0, 2*len(tiles))
	for _, t := range tiles {
		b := t.Bounds()
		pts = append(pts, b.Min, b.Max)
	}
	return geometry.BoundingBox(pts)
}
