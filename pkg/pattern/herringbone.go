package pattern

import (
	"fmt"
	"math"

	"github.com/matzehuels/tileplan/pkg/tile"
)

// Herringbone lays tiles in L-shaped pairs. The first tile keeps the original
// orientation; the second sits directly below it, rotated 90 degrees with its
// width and height swapped. Pairs repeat on a square cell the size of the
// larger effective tile dimension.
type Herringbone struct{}

// Name implements Generator.
func (Herringbone) Name() string { return NameHerringbone }

// PairSize returns the repeat spacing of one L-pair.
func (Herringbone) PairSize(m Metrics) float64 {
	return math.Max(m.EffectiveWidth(), m.EffectiveHeight())
}

// Capacity implements Generator.
func (h Herringbone) Capacity(m Metrics) float64 {
	pair := h.PairSize(m)
	return 2 * repeats(m.AvailableWidth(), pair) * repeats(m.AvailableHeight(), pair)
}

// Generate implements Generator.
func (h Herringbone) Generate(m Metrics) []tile.Position {
	pair := h.PairSize(m)
	cols := count(m.AvailableWidth(), pair)
	rows := count(m.AvailableHeight(), pair)

	tiles := make([]tile.Position, 0, 2*cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			baseX := m.Margin + float64(col)*pair
			baseY := m.Margin + float64(row)*pair
			tiles = append(tiles,
				tile.Position{
					ID:     fmt.Sprintf("%s-%d-%d-a", NameHerringbone, row, col),
					X:      baseX,
					Y:      baseY,
					Width:  m.TileWidth,
					Height: m.TileHeight,
					Type:   tile.Full,
				},
				tile.Position{
					ID:       fmt.Sprintf("%s-%d-%d-b", NameHerringbone, row, col),
					X:        baseX,
					Y:        baseY + m.EffectiveHeight(),
					Width:    m.TileHeight,
					Height:   m.TileWidth,
					Rotation: 90,
					Type:     tile.Full,
				},
			)
		}
	}
	return tiles
}
