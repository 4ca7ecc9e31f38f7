// Package stats aggregates a clipped tile layout into counts, coverage and
// waste, and extends those into purchase quantities, installation time,
// grout volume, cost and quality metrics.
//
// [Basic] and [Result] are pure functions of the tile list. [Advanced] also
// needs the resolved room scale, since every real-world quantity is derived
// from the measured room area.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/matzehuels/tileplan/pkg/tile"
)

// Statistics are the counts and percentages of a tile layout.
type Statistics struct {
	FullTiles       int     `json:"full_tiles"`
	CutTiles        int     `json:"cut_tiles"`
	PartialTiles    int     `json:"partial_tiles"`
	TotalTiles      int     `json:"total_tiles"`
	WastePercentage float64 `json:"waste_percentage"`
	Coverage        float64 `json:"coverage"`
}

// Basic counts full and cut tiles and computes coverage as the mean tile
// coverage. Partial tiles count as cut and are also counted separately, since
// their coverage is an estimate. An empty layout yields all zeros.
func Basic(tiles []tile.Position) Statistics {
	if len(tiles) == 0 {
		return Statistics{}
	}
	s := Statistics{TotalTiles: len(tiles)}
	coverage := make([]float64, len(tiles))
	for i, t := range tiles {
		switch t.Type {
		case tile.Full:
			s.FullTiles++
		case tile.Partial:
			s.PartialTiles++
			s.CutTiles++
		default:
			s.CutTiles++
		}
		coverage[i] = t.Coverage()
	}
	s.Coverage = stat.Mean(coverage, nil)
	s.WastePercentage = math.Max(0, 100-s.Coverage)
	return s
}

// Result builds the generation result for a clipped layout.
func Result(tiles []tile.Position, pattern string) tile.GenerationResult {
	s := Basic(tiles)
	if tiles == nil {
		tiles = []tile.Position{}
	}
	return tile.GenerationResult{
		Tiles:           tiles,
		FullTiles:       s.FullTiles,
		CutTiles:        s.CutTiles,
		TotalTiles:      s.TotalTiles,
		WastePercentage: s.WastePercentage,
		Coverage:        s.Coverage,
		Pattern:         pattern,
		BoundingBox:     tile.BoundingBox(tiles),
	}
}

// FromResult extracts the statistics of a generation result.
func FromResult(r tile.GenerationResult) Statistics {
	s := Statistics{
		FullTiles:       r.FullTiles,
		CutTiles:        r.CutTiles,
		TotalTiles:      r.TotalTiles,
		WastePercentage: r.WastePercentage,
		Coverage:        r.Coverage,
	}
	for _, t := range r.Tiles {
		if t.Type == tile.Partial {
			s.PartialTiles++
		}
	}
	return s
}
