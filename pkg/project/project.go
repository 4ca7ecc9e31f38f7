// Package project defines the tiling project file: a room outline, a tile,
// a layout choice and optional prices, stored as TOML or JSON.
//
//	name = "Kitchen"
//
//	[tile]
//	length = 300
//	width = 300
//	unit = "mm"
//	grout_width = 3
//
//	[layout]
//	pattern = "brick"
//
//	[[nodes]]
//	id = "a"
//	x = 0
//	y = 0
//
//	[[edges]]
//	id = "ab"
//	source = "a"
//	target = "b"
//	length = 4
//	unit = "m"
//
// Node coordinates are canvas pixels. Edge lengths are real-world
// measurements and set the scale; edges without a length only close the
// outline.
package project

import (
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/tileplan/pkg/clip"
	"github.com/matzehuels/tileplan/pkg/errors"
	"github.com/matzehuels/tileplan/pkg/geometry"
	"github.com/matzehuels/tileplan/pkg/pattern"
	"github.com/matzehuels/tileplan/pkg/shape"
	"github.com/matzehuels/tileplan/pkg/stats"
	"github.com/matzehuels/tileplan/pkg/tile"
)

// Project is a complete tiling job.
type Project struct {
	ID      string        `json:"id,omitempty" toml:"id"`
	Name    string        `json:"name" toml:"name"`
	Tile    tile.Spec     `json:"tile" toml:"tile"`
	Layout  Layout        `json:"layout" toml:"layout"`
	Nodes   []Node        `json:"nodes" toml:"nodes"`
	Edges   []Edge        `json:"edges" toml:"edges"`
	Pricing stats.Pricing `json:"pricing" toml:"pricing"`
	Options Options       `json:"options" toml:"options"`
}

// Layout selects the pattern and how it is fitted to the room. Margin is the
// inset from the outline's bounding box in millimetres.
type Layout struct {
	Pattern        string    `json:"pattern" toml:"pattern"`
	Margin         float64   `json:"margin,omitempty" toml:"margin"`
	Clip           clip.Mode `json:"clip,omitempty" toml:"clip"`
	PixelsPerMeter float64   `json:"pixels_per_meter,omitempty" toml:"pixels_per_meter"`
}

// Node is an outline vertex in canvas pixels.
type Node struct {
	ID string  `json:"id" toml:"id"`
	X  float64 `json:"x" toml:"x"`
	Y  float64 `json:"y" toml:"y"`
}

// Edge joins two nodes. Length and Unit are optional.
type Edge struct {
	ID     string  `json:"id" toml:"id"`
	Source string  `json:"source" toml:"source"`
	Target string  `json:"target" toml:"target"`
	Length float64 `json:"length,omitempty" toml:"length"`
	Unit   string  `json:"unit,omitempty" toml:"unit"`
}

// Options are the project's estimate allowances and ordering preferences.
type Options struct {
	WasteFactor     float64 `json:"waste_factor,omitempty" toml:"waste_factor"`
	CuttingLoss     float64 `json:"cutting_loss,omitempty" toml:"cutting_loss"`
	SkipWasteFactor bool    `json:"skip_waste_factor,omitempty" toml:"skip_waste_factor"`
	SkipCuttingLoss bool    `json:"skip_cutting_loss,omitempty" toml:"skip_cutting_loss"`
	GroutDepthMM    float64 `json:"grout_depth_mm,omitempty" toml:"grout_depth_mm"`
	TilesPerBox     int     `json:"tiles_per_box,omitempty" toml:"tiles_per_box"`
	GroutBagKg      float64 `json:"grout_bag_kg,omitempty" toml:"grout_bag_kg"`
}

// Normalize fills defaults and canonicalises unit spellings. A project
// without an ID is given a random one. The edge slice is copied, never
// modified in place.
func (p *Project) Normalize() error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Layout.Pattern == "" {
		p.Layout.Pattern = pattern.NameGrid
	}
	if p.Layout.PixelsPerMeter == 0 {
		p.Layout.PixelsPerMeter = pattern.DefaultPixelsPerMeter
	}
	mode, err := clip.ParseMode(string(p.Layout.Clip))
	if err != nil {
		return err
	}
	p.Layout.Clip = mode

	u, err := geometry.ParseUnit(string(p.Tile.Unit))
	if err != nil {
		return err
	}
	p.Tile.Unit = u

	p.Edges = slices.Clone(p.Edges)
	for i, e := range p.Edges {
		if e.Unit == "" {
			continue
		}
		u, err := geometry.ParseUnit(e.Unit)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidUnit, "edge %q: unknown unit %q", e.ID, e.Unit)
		}
		p.Edges[i].Unit = string(u)
	}
	return nil
}

// Validate checks the fields that would make generation impossible. Outline
// problems are reported by shape validation instead.
func (p Project) Validate() error {
	if err := p.Tile.Validate(); err != nil {
		return err
	}
	if _, err := pattern.Lookup(p.Layout.Pattern); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative(errors.ErrCodeInvalidInput, "margin", p.Layout.Margin); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative(errors.ErrCodeInvalidInput, "pixels per meter", p.Layout.PixelsPerMeter); err != nil {
		return err
	}
	if p.Options.TilesPerBox < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "tiles per box must be non-negative, got %d", p.Options.TilesPerBox)
	}
	for _, n := range p.Nodes {
		if err := errors.ValidateIdentifier("node", n.ID); err != nil {
			return err
		}
	}
	for _, e := range p.Edges {
		if err := errors.ValidateIdentifier("edge", e.ID); err != nil {
			return err
		}
		if err := errors.ValidateNonNegative(errors.ErrCodeInvalidInput, "edge "+e.ID+" length", e.Length); err != nil {
			return err
		}
		if e.Length > 0 && e.Unit == "" {
			return errors.New(errors.ErrCodeInvalidUnit, "edge %q has a length but no unit", e.ID)
		}
	}
	return p.StatsOptions().Validate()
}

// Shape converts the outline to the layout graph used for validation and
// scale resolution.
func (p Project) Shape() ([]shape.Node, []shape.Edge) {
	nodes := make([]shape.Node, len(p.Nodes))
	for i, n := range p.Nodes {
		nodes[i] = shape.Node{ID: n.ID, Position: geometry.CanvasPoint{X: n.X, Y: n.Y}}
	}
	edges := make([]shape.Edge, len(p.Edges))
	for i, e := range p.Edges {
		edges[i] = shape.Edge{ID: e.ID, Source: e.Source, Target: e.Target}
		if e.Length > 0 {
			edges[i].Dimension = &shape.Dimension{Length: e.Length, Unit: geometry.Unit(e.Unit)}
		}
	}
	return nodes, edges
}

// StatsOptions returns the aggregator options for the project.
func (p Project) StatsOptions() stats.Options {
	return stats.Options{
		WasteFactor:     p.Options.WasteFactor,
		CuttingLoss:     p.Options.CuttingLoss,
		SkipWasteFactor: p.Options.SkipWasteFactor,
		SkipCuttingLoss: p.Options.SkipCuttingLoss,
		GroutDepthMM:    p.Options.GroutDepthMM,
		Pricing:         p.Pricing,
	}
}

// EdgeUnits returns the distinct units of the measured edges in first-seen order.
func (p Project) EdgeUnits() []geometry.Unit {
	var units []geometry.Unit
	seen := map[string]bool{}
	for _, e := range p.Edges {
		if e.Length <= 0 || e.Unit == "" || seen[e.Unit] {
			continue
		}
		seen[e.Unit] = true
		units = append(units, geometry.Unit(e.Unit))
	}
	return units
}

// WithPattern returns a copy of p laid out in another pattern.
func (p Project) WithPattern(name string) Project {
	p.Layout.Pattern = name
	return p
}
