// Package report turns detailed results into the documents a customer acts
// on: a shopping list and a written report with recommendations.
package report

import (
	"math"

	"github.com/matzehuels/tileplan/pkg/stats"
	"github.com/matzehuels/tileplan/pkg/tile"
)

// Accessory quantities.
const (
	SpacersPerTile       = 4
	SpacersPerPack       = 200
	AdhesiveKgPerM2      = 4.0
	AdhesiveBagKg        = 20.0
	DefaultGroutBagKg    = 5.0
	LevelingThresholdMM  = 600.0
	levelingClipsPerTile = 3
	levelingClipsPerKit  = 100
)

// ListOptions tune how quantities are packed. Zero values select defaults.
type ListOptions struct {
	TilesPerBox int
	GroutBagKg  float64
}

// ShoppingList is what to buy for a layout.
type ShoppingList struct {
	Tiles       TileOrder  `json:"tiles"`
	Grout       GroutOrder `json:"grout"`
	Accessories []Item     `json:"accessories"`
}

// TileOrder is the tile line of a shopping list. Boxes is set only when the
// box size is known.
type TileOrder struct {
	Count       int `json:"count"`
	Boxes       int `json:"boxes,omitempty"`
	TilesPerBox int `json:"tiles_per_box,omitempty"`
}

// GroutOrder is the grout line of a shopping list.
type GroutOrder struct {
	Kilograms    float64 `json:"kilograms"`
	Bags         int     `json:"bags"`
	BagKilograms float64 `json:"bag_kilograms"`
}

// Item is an accessory line.
type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// NewShoppingList derives a shopping list from detailed results.
func NewShoppingList(results stats.DetailedResults, spec tile.Spec, opts ListOptions) ShoppingList {
	if opts.GroutBagKg <= 0 {
		opts.GroutBagKg = DefaultGroutBagKg
	}

	list := ShoppingList{
		Tiles: TileOrder{Count: results.PurchaseTiles},
		Grout: GroutOrder{
			Kilograms:    results.Grout.Kilograms,
			Bags:         packs(results.Grout.Kilograms, opts.GroutBagKg),
			BagKilograms: opts.GroutBagKg,
		},
		Accessories: []Item{},
	}
	if opts.TilesPerBox > 0 {
		list.Tiles.TilesPerBox = opts.TilesPerBox
		list.Tiles.Boxes = packs(float64(results.PurchaseTiles), float64(opts.TilesPerBox))
	}

	if n := packs(float64(results.PurchaseTiles*SpacersPerTile), SpacersPerPack); n > 0 {
		list.Accessories = append(list.Accessories, Item{Name: "Tile spacers", Quantity: n, Unit: "pack of 200"})
	}
	if n := packs(results.Scale.AreaM2*AdhesiveKgPerM2, AdhesiveBagKg); n > 0 {
		list.Accessories = append(list.Accessories, Item{Name: "Tile adhesive", Quantity: n, Unit: "20 kg bag"})
	}
	if LargeFormat(spec) && results.PurchaseTiles > 0 {
		n := packs(float64(results.PurchaseTiles*levelingClipsPerTile), levelingClipsPerKit)
		list.Accessories = append(list.Accessories, Item{Name: "Leveling system", Quantity: n, Unit: "kit of 100 clips"})
	}
	return list
}

// LargeFormat reports whether any side of the tile reaches LevelingThresholdMM.
func LargeFormat(spec tile.Spec) bool {
	return math.Max(spec.WidthMM(), spec.LengthMM()) >= LevelingThresholdMM
}

// packs returns how many packs of size per are needed for qty.
func packs(qty, per float64) int {
	if qty <= 0 || per <= 0 {
		return 0
	}
	return int(math.Ceil(qty/per - 1e-9))
}
