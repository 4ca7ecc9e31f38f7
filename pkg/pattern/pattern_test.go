package pattern

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/tileplan/pkg/errors"
	"github.com/matzehuels/tileplan/pkg/geometry"
	"github.com/matzehuels/tileplan/pkg/tile"
)

// meterTile returns a tile whose size in working pixels is 100x per metre.
func meterTile(width, length float64) tile.Spec {
	return tile.Spec{Width: width, Length: length, Unit: geometry.Meters}
}

func TestGridCount(t *testing.T) {
	tiles, err := Generate(Config{
		Tile:         meterTile(3, 3),
		Pattern:      NameGrid,
		TargetWidth:  1000,
		TargetHeight: 1000,
		Margin:       10,
	})
	require.NoError(t, err)

	side := int(math.Ceil((1000.0 - 20) / 300))
	assert.Len(t, tiles, side*side)
	for _, tl := range tiles {
		assert.Equal(t, tile.Full, tl.Type)
		assert.Zero(t, tl.Rotation)
		assert.Nil(t, tl.CutPercentage)
	}
	assert.Equal(t, 10.0, tiles[0].X)
	assert.Equal(t, 10.0, tiles[0].Y)
	assert.Equal(t, 310.0, tiles[1].X)
}

func TestGridGroutSpacing(t *testing.T) {
	spec := tile.Spec{Width: 300, Length: 300, Unit: geometry.Millimeters, GroutWidth: 10}
	tiles, err := Generate(Config{Tile: spec, Pattern: NameGrid, TargetWidth: 100, TargetHeight: 31})
	require.NoError(t, err)

	// 300 mm = 30 px, grout 10 mm = 1 px, effective 31 px.
	require.Len(t, tiles, 4)
	assert.InDelta(t, 30.0, tiles[0].Width, 1e-9)
	assert.InDelta(t, 31.0, tiles[1].X, 1e-9)
	assert.InDelta(t, 93.0, tiles[3].X, 1e-9)
}

func TestBrickOffsetsOddRows(t *testing.T) {
	tiles, err := Generate(Config{
		Tile:         meterTile(3, 3),
		Pattern:      NameBrick,
		TargetWidth:  1000,
		TargetHeight: 600,
	})
	require.NoError(t, err)
	require.Len(t, tiles, 8)

	var row0, row1 []float64
	for _, tl := range tiles {
		assert.Less(t, tl.X, 1000.0, "tiles past the drawable area are dropped")
		switch tl.Y {
		case 0:
			row0 = append(row0, tl.X)
		case 300:
			row1 = append(row1, tl.X)
		}
	}
	assert.Equal(t, []float64{0, 300, 600, 900}, row0)
	assert.Equal(t, []float64{-150, 150, 450, 750}, row1)
}

func TestHerringbonePairs(t *testing.T) {
	tiles, err := Generate(Config{
		Tile:         meterTile(2, 1),
		Pattern:      NameHerringbone,
		TargetWidth:  400,
		TargetHeight: 400,
	})
	require.NoError(t, err)
	require.Len(t, tiles, 8)

	a, b := tiles[0], tiles[1]
	assert.Equal(t, tile.Position{ID: "herringbone-0-0-a", X: 0, Y: 0, Width: 200, Height: 100, Type: tile.Full}, a)
	assert.Equal(t, tile.Position{ID: "herringbone-0-0-b", X: 0, Y: 100, Width: 100, Height: 200, Rotation: 90, Type: tile.Full}, b)
	assert.Equal(t, 200.0, tiles[2].X, "pairs repeat on the larger effective dimension")
}

func TestUnsupportedPattern(t *testing.T) {
	tiles, err := Generate(Config{Tile: meterTile(1, 1), Pattern: "hexagonal", TargetWidth: 100, TargetHeight: 100})
	require.Error(t, err)
	assert.Nil(t, tiles)
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupportedPattern))

	_, err = Lookup("")
	assert.True(t, errors.Is(err, errors.ErrCodeUnsupportedPattern))
}

func TestInvalidTileIsFatal(t *testing.T) {
	for _, spec := range []tile.Spec{
		{Width: 0, Length: 1, Unit: geometry.Meters},
		{Width: 1, Length: -3, Unit: geometry.Meters},
	} {
		_, err := Generate(Config{Tile: spec, Pattern: NameGrid, TargetWidth: 100, TargetHeight: 100})
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidTile), "spec %+v: %v", spec, err)
	}
}

func TestOversizedLatticeIsRejected(t *testing.T) {
	mm := tile.Spec{Width: 1, Length: 1, Unit: geometry.Millimeters}
	for _, name := range Names() {
		for _, size := range []float64{1e8, math.Inf(1), math.NaN()} {
			tiles, err := Generate(Config{Tile: mm, Pattern: name, TargetWidth: size, TargetHeight: size})
			require.Error(t, err, "%s over %v", name, size)
			assert.Nil(t, tiles)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "%s: %v", name, err)
		}
	}
}

func TestCapacityBoundsGenerate(t *testing.T) {
	cfg := Config{Tile: tile.Spec{Width: 250, Length: 400, Unit: geometry.Millimeters, GroutWidth: 2}, TargetWidth: 733, TargetHeight: 512, Margin: 4}
	for _, name := range Names() {
		g, err := Lookup(name)
		require.NoError(t, err)
		m, err := Resolve(cfg)
		require.NoError(t, err)
		assert.LessOrEqual(t, float64(len(g.Generate(m))), g.Capacity(m), name)
	}

	// 1 cm tiles are 1 px: 1000 x 1000 is exactly the limit, one more row is not.
	m, err := Resolve(Config{Tile: tile.Spec{Width: 1, Length: 1, Unit: geometry.Centimeters}, TargetWidth: 1000, TargetHeight: 1000})
	require.NoError(t, err)
	assert.Equal(t, float64(MaxTiles), Grid{}.Capacity(m))
	_, err = Generate(Config{Tile: tile.Spec{Width: 1, Length: 1, Unit: geometry.Centimeters}, Pattern: NameGrid, TargetWidth: 1000, TargetHeight: 1001})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "%v", err)
}

func TestEmptyTargetIsNotAnError(t *testing.T) {
	for _, name := range Names() {
		tiles, err := Generate(Config{Tile: meterTile(1, 1), Pattern: name, TargetWidth: 20, TargetHeight: 20, Margin: 10})
		require.NoError(t, err, name)
		assert.Empty(t, tiles, name)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	for _, name := range Names() {
		cfg := Config{Tile: tile.Spec{Width: 250, Length: 400, Unit: geometry.Millimeters, GroutWidth: 2}, Pattern: name, TargetWidth: 733, TargetHeight: 512, Margin: 4}
		a, err := Generate(cfg)
		require.NoError(t, err)
		b, err := Generate(cfg)
		require.NoError(t, err)
		assert.True(t, reflect.DeepEqual(a, b), name)
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{NameBrick, NameGrid, NameHerringbone}, Names())
	for _, n := range Names() {
		g, err := Lookup(n)
		require.NoError(t, err)
		assert.Equal(t, n, g.Name())
	}
}

func TestResolveCustomResolution(t *testing.T) {
	m, err := Resolve(Config{Tile: tile.Spec{Width: 60, Length: 30, Unit: geometry.Centimeters, GroutWidth: 5}, PixelsPerMeter: 200})
	require.NoError(t, err)
	assert.InDelta(t, 120.0, m.TileWidth, 1e-9)
	assert.InDelta(t, 60.0, m.TileHeight, 1e-9)
	assert.InDelta(t, 1.0, m.Grout, 1e-9)

	_, err = Resolve(Config{Tile: meterTile(1, 1), PixelsPerMeter: -5})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}
