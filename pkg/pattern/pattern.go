// Package pattern generates unclipped tile lattices covering a target
// rectangle.
//
// Three layouts are supported:
//
//   - [Grid]: tiles aligned in rows and columns
//   - [Brick]: running bond, odd rows offset by half a tile
//   - [Herringbone]: perpendicular tile pairs forming an L
//
// All generators work in working pixels: tile sizes are canonicalised to
// metres and multiplied by Config.PixelsPerMeter (100 by default). Counts use
// ceil so the lattice over-covers rather than under-covers the target; the
// clip package trims it to the room outline afterwards.
//
// # Usage
//
//	tiles, err := pattern.Generate(pattern.Config{
//	    Tile:         tile.Spec{Length: 300, Width: 300, Unit: geometry.Millimeters, GroutWidth: 3},
//	    Pattern:      pattern.NameBrick,
//	    TargetWidth:  400,
//	    TargetHeight: 300,
//	})
package pattern

import (
	"math"
	"sort"

	"github.com/matzehuels/tileplan/pkg/errors"
	"github.com/matzehuels/tileplan/pkg/geometry"
	"github.com/matzehuels/tileplan/pkg/tile"
)

// Pattern names.
const (
	NameGrid        = "grid"
	NameBrick       = "brick"
	NameHerringbone = "herringbone"
)

// DefaultPixelsPerMeter is the resolution of the working pixel space.
const DefaultPixelsPerMeter = 100.0

// MaxTiles caps the size of a generated lattice.
const MaxTiles = 1_000_000

// Config describes the lattice to generate. Target dimensions and margin are
// in working pixels.
type Config struct {
	Tile           tile.Spec `json:"tile"`
	Pattern        string    `json:"pattern"`
	TargetWidth    float64   `json:"target_width"`
	TargetHeight   float64   `json:"target_height"`
	Margin         float64   `json:"margin,omitempty"`
	PixelsPerMeter float64   `json:"pixels_per_meter,omitempty"`
}

// Generator produces a lattice for one pattern.
type Generator interface {
	// Name returns the pattern name used in configs.
	Name() string
	// Capacity returns the number of tiles Generate emits at most.
	Capacity(m Metrics) float64
	// Generate emits full, unclipped tiles covering the target rectangle.
	Generate(m Metrics) []tile.Position
}

var registry = map[string]Generator{
	NameGrid:        Grid{},
	NameBrick:       Brick{},
	NameHerringbone: Herringbone{},
}

// Lookup returns the generator registered under name.
func Lookup(name string) (Generator, error) {
	g, ok := registry[name]
	if !ok {
		return nil, errors.UnsupportedPattern(name)
	}
	return g, nil
}

// Names returns the supported pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Metrics are the lattice dimensions a generator works with, all in working
// pixels.
type Metrics struct {
	TileWidth    float64
	TileHeight   float64
	Grout        float64
	TargetWidth  float64
	TargetHeight float64
	Margin       float64
}

// EffectiveWidth is the horizontal repeat spacing: tile plus joint.
func (m Metrics) EffectiveWidth() float64 { return m.TileWidth + m.Grout }

// EffectiveHeight is the vertical repeat spacing: tile plus joint.
func (m Metrics) EffectiveHeight() float64 { return m.TileHeight + m.Grout }

// AvailableWidth is the target width with the margin removed on both sides.
func (m Metrics) AvailableWidth() float64 { return m.TargetWidth - 2*m.Margin }

// AvailableHeight is the target height with the margin removed on both sides.
func (m Metrics) AvailableHeight() float64 { return m.TargetHeight - 2*m.Margin }

// repeats returns how many repeats of step cover span, never negative.
func repeats(span, step float64) float64 {
	if span <= 0 || step <= 0 {
		return 0
	}
	return math.Ceil(span / step)
}

// count is repeats as an int. Callers check Capacity against MaxTiles first.
func count(span, step float64) int {
	return int(repeats(span, step))
}

// Resolve validates cfg and converts the tile to working pixels.
func Resolve(cfg Config) (Metrics, error) {
	if err := cfg.Tile.Validate(); err != nil {
		return Metrics{}, err
	}
	ppm := cfg.PixelsPerMeter
	if ppm == 0 {
		ppm = DefaultPixelsPerMeter
	}
	if err := errors.ValidatePositive(errors.ErrCodeInvalidInput, "pixels per meter", ppm); err != nil {
		return Metrics{}, err
	}
	toPx := func(mm float64) float64 {
		return geometry.ConvertLength(mm, geometry.Meters) * ppm
	}
	return Metrics{
		TileWidth:    toPx(cfg.Tile.WidthMM()),
		TileHeight:   toPx(cfg.Tile.LengthMM()),
		Grout:        toPx(cfg.Tile.GroutWidth),
		TargetWidth:  cfg.TargetWidth,
		TargetHeight: cfg.TargetHeight,
		Margin:       cfg.Margin,
	}, nil
}

// Generate validates cfg and runs the named generator. An unknown pattern, an
// invalid tile or a lattice of more than MaxTiles tiles is a fatal error; an
// empty target yields no tiles.
func Generate(cfg Config) ([]tile.Position, error) {
	g, err := Lookup(cfg.Pattern)
	if err != nil {
		return nil, err
	}
	m, err := Resolve(cfg)
	if err != nil {
		return nil, err
	}
	if n := g.Capacity(m); !(n <= MaxTiles) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"%s pattern needs %.0f tiles for a %.0fx%.0f target (max %d); use a larger tile or a smaller room",
			cfg.Pattern, n, cfg.TargetWidth, cfg.TargetHeight, MaxTiles)
	}
	return g.Generate(m), nil
}
