package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/tileplan/pkg/errors"
	"github.com/matzehuels/tileplan/pkg/geometry"
	"github.com/matzehuels/tileplan/pkg/pattern"
	"github.com/matzehuels/tileplan/pkg/tile"
)

func rectPolygon(b geometry.Bounds) []geometry.Point {
	return []geometry.Point{
		b.Min,
		{X: b.Max.X, Y: b.Min.Y},
		b.Max,
		{X: b.Min.X, Y: b.Max.Y},
	}
}

func square(x, y, size float64) tile.Position {
	return tile.Position{ID: "t", X: x, Y: y, Width: size, Height: size, Type: tile.Full}
}

// uShape is a 300x300 square with a 100-wide slot cut down from the top.
var uShape = []geometry.Point{
	{X: 0, Y: 0}, {X: 300, Y: 0}, {X: 300, Y: 300}, {X: 200, Y: 300},
	{X: 200, Y: 100}, {X: 100, Y: 100}, {X: 100, Y: 300}, {X: 0, Y: 300},
}

func TestClipKeepsLatticeInsideBoundingRectangle(t *testing.T) {
	lattice, err := pattern.Generate(pattern.Config{
		Tile:         tile.Spec{Width: 3, Length: 3, Unit: geometry.Meters},
		Pattern:      pattern.NameGrid,
		TargetWidth:  1000,
		TargetHeight: 1000,
		Margin:       10,
	})
	require.NoError(t, err)

	for _, mode := range []Mode{ModeHeuristic, ModeExact} {
		clipped := Clip(lattice, rectPolygon(tile.BoundingBox(lattice)), mode)
		require.Len(t, clipped, len(lattice), mode)
		for _, tl := range clipped {
			assert.Equal(t, tile.Full, tl.Type, mode)
			require.NotNil(t, tl.CutPercentage)
			assert.Equal(t, 100.0, *tl.CutPercentage, mode)
		}
	}
}

func TestHeuristicClassification(t *testing.T) {
	room := rectPolygon(geometry.Bounds{Max: geometry.Point{X: 100, Y: 100}})
	c := New(room, ModeHeuristic)

	tests := []struct {
		name     string
		tile     tile.Position
		wantKeep bool
		wantType tile.Type
		wantPct  float64
	}{
		{"inside", square(10, 10, 20), true, tile.Full, 100},
		{"two corners", square(90, 10, 20), true, tile.Cut, 50},
		{"one corner", square(90, 90, 20), true, tile.Cut, 25},
		{"outside", square(150, 150, 20), false, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Classify(tt.tile)
			require.Equal(t, tt.wantKeep, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantPct, *got.CutPercentage)
		})
	}
}

func TestPartialTile(t *testing.T) {
	diamond := []geometry.Point{{X: 50, Y: 0}, {X: 100, Y: 50}, {X: 50, Y: 100}, {X: 0, Y: 50}}
	tl := square(0, 0, 100)

	got, ok := New(diamond, ModeHeuristic).Classify(tl)
	require.True(t, ok)
	assert.Equal(t, tile.Partial, got.Type)
	assert.Equal(t, PartialCoverage, *got.CutPercentage)

	got, ok = New(diamond, ModeExact).Classify(tl)
	require.True(t, ok)
	assert.Equal(t, tile.Cut, got.Type)
	assert.InDelta(t, 50.0, *got.CutPercentage, 1e-6)
}

func TestExactModeOnConcaveOutline(t *testing.T) {
	tl := tile.Position{X: 50, Y: 150, Width: 200, Height: 100, Type: tile.Full}

	heuristic, ok := New(uShape, ModeHeuristic).Classify(tl)
	require.True(t, ok)
	assert.Equal(t, tile.Full, heuristic.Type, "all four corners sit in the arms of the U")

	exact, ok := New(uShape, ModeExact).Classify(tl)
	require.True(t, ok)
	assert.Equal(t, tile.Cut, exact.Type)
	assert.InDelta(t, 50.0, *exact.CutPercentage, 1e-6)

	// A tile entirely inside the slot is dropped.
	_, ok = New(uShape, ModeExact).Classify(square(120, 150, 50))
	assert.False(t, ok)
}

// lShape is a 600x600 square with its 300x300 top-right quadrant removed.
var lShape = []geometry.Point{
	{X: 0, Y: 0}, {X: 600, Y: 0}, {X: 600, Y: 300},
	{X: 300, Y: 300}, {X: 300, Y: 600}, {X: 0, Y: 600},
}

func TestHeuristicDropsTilesTouchingReentrantEdges(t *testing.T) {
	lattice, err := pattern.Generate(pattern.Config{
		Tile:         tile.Spec{Width: 300, Length: 300, Unit: geometry.Millimeters},
		Pattern:      pattern.NameGrid,
		TargetWidth:  600,
		TargetHeight: 600,
	})
	require.NoError(t, err)
	require.Len(t, lattice, 400)

	clipped := Clip(lattice, lShape, ModeHeuristic)
	assert.Len(t, clipped, 300, "27 m2 of 0.09 m2 tiles")
	for _, tl := range clipped {
		assert.Equal(t, tile.Full, tl.Type, "tile %s at (%v, %v)", tl.ID, tl.X, tl.Y)
	}

	c := New(lShape, ModeHeuristic)
	tests := []struct {
		name     string
		tile     tile.Position
		wantKeep bool
	}{
		{"notch corner", square(300, 300, 30), false},
		{"along vertical notch edge", square(300, 450, 30), false},
		{"along horizontal notch edge", square(450, 300, 30), false},
		{"inside next to vertical edge", square(270, 450, 30), true},
		{"inside next to horizontal edge", square(450, 270, 30), true},
		{"inside at reentrant corner", square(270, 270, 30), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Classify(tt.tile)
			require.Equal(t, tt.wantKeep, ok)
			if ok {
				assert.Equal(t, tile.Full, got.Type)
			}
		})
	}
}

func TestShortOutlineLeavesLatticeUnchanged(t *testing.T) {
	lattice := []tile.Position{square(0, 0, 10), square(500, 500, 10)}
	for _, poly := range [][]geometry.Point{nil, {{X: 0, Y: 0}, {X: 5, Y: 5}}} {
		got := Clip(lattice, poly, ModeHeuristic)
		assert.Equal(t, lattice, got)
	}
}

func TestClipDoesNotMutateInput(t *testing.T) {
	lattice := []tile.Position{square(90, 10, 20)}
	clipped := Clip(lattice, rectPolygon(geometry.Bounds{Max: geometry.Point{X: 100, Y: 100}}), ModeHeuristic)
	require.Len(t, clipped, 1)
	assert.Nil(t, lattice[0].CutPercentage)
	assert.Equal(t, tile.Full, lattice[0].Type)
	assert.Equal(t, tile.Cut, clipped[0].Type)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeHeuristic, m)

	m, err = ParseMode("exact")
	require.NoError(t, err)
	assert.Equal(t, ModeExact, m)

	_, err = ParseMode("fuzzy")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}
