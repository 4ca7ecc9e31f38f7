package pattern

import (
	"fmt"

	"github.com/matzehuels/tileplan/pkg/tile"
)

// Grid lays tiles in aligned rows and columns.
type Grid struct{}

// Name implements Generator.
func (Grid) Name() string { return NameGrid }

// Capacity implements Generator.
func (Grid) Capacity(m Metrics) float64 {
	return repeats(m.AvailableWidth(), m.EffectiveWidth()) * repeats(m.AvailableHeight(), m.EffectiveHeight())
}

// Generate implements Generator.
func (Grid) Generate(m Metrics) []tile.Position {
	effW, effH := m.EffectiveWidth(), m.EffectiveHeight()
	cols := count(m.AvailableWidth(), effW)
	rows := count(m.AvailableHeight(), effH)

	tiles := make([]tile.Position, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			tiles = append(tiles, tile.Position{
				ID:     fmt.Sprintf("%s-%d-%d", NameGrid, row, col),
				X:      m.Margin + float64(col)*effW,
				Y:      m.Margin + float64(row)*effH,
				Width:  m.TileWidth,
				Height: m.TileHeight,
				Type:   tile.Full,
			})
		}
	}
	return tiles
}
