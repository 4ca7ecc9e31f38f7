package pattern

import (
	"fmt"

	"github.com/matzehuels/tileplan/pkg/tile"
)

// Brick lays a running bond: every odd row is shifted by half the effective
// tile width. Each row gets one extra column to cover the shifted overhang,
// and tiles starting at or past the right margin are dropped.
type Brick struct{}

// Name implements Generator.
func (Brick) Name() string { return NameBrick }

// Capacity implements Generator.
func (Brick) Capacity(m Metrics) float64 {
	cols := repeats(m.AvailableWidth(), m.EffectiveWidth())
	if cols == 0 {
		return 0
	}
	return (cols + 1) * repeats(m.AvailableHeight(), m.EffectiveHeight())
}

// Generate implements Generator.
func (Brick) Generate(m Metrics) []tile.Position {
	effW, effH := m.EffectiveWidth(), m.EffectiveHeight()
	cols := count(m.AvailableWidth(), effW)
	rows := count(m.AvailableHeight(), effH)
	if cols == 0 || rows == 0 {
		return nil
	}
	limit := m.TargetWidth - m.Margin

	tiles := make([]tile.Position, 0, (cols+1)*rows)
	for row := 0; row < rows; row++ {
		offset := 0.0
		if row%2 == 1 {
			offset = effW / 2
		}
		for col := 0; col <= cols; col++ {
			x := m.Margin + float64(col)*effW - offset
			if x >= limit {
				continue
			}
			tiles = append(tiles, tile.Position{
				ID:     fmt.Sprintf("%s-%d-%d", NameBrick, row, col),
				X:      x,
				Y:      m.Margin + float64(row)*effH,
				Width:  m.TileWidth,
				Height: m.TileHeight,
				Type:   tile.Full,
			})
		}
	}
	return tiles
}
