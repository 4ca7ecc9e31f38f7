package stats

import (
	"math"

	"github.com/matzehuels/tileplan/pkg/errors"
	"github.com/matzehuels/tileplan/pkg/pattern"
	"github.com/matzehuels/tileplan/pkg/scale"
	"github.com/matzehuels/tileplan/pkg/tile"
)

// Default allowances, in percent of the tile count.
const (
	DefaultWasteFactor = 10.0
	DefaultCuttingLoss = 5.0
)

// Grout constants.
const (
	DefaultGroutDepthMM = 3.0
	GroutDensityKgPerL  = 1.6
)

// Options tune the advanced metrics. The zero value selects the defaults;
// set a Skip flag to drop an allowance entirely.
type Options struct {
	WasteFactor     float64 `json:"waste_factor,omitempty"`
	CuttingLoss     float64 `json:"cutting_loss,omitempty"`
	SkipWasteFactor bool    `json:"skip_waste_factor,omitempty"`
	SkipCuttingLoss bool    `json:"skip_cutting_loss,omitempty"`
	GroutDepthMM    float64 `json:"grout_depth_mm,omitempty"`
	Pricing         Pricing `json:"pricing"`
}

// Pricing holds optional unit prices. A nil price leaves its cost line unset.
type Pricing struct {
	TilePrice       *float64 `json:"tile_price,omitempty" toml:"tile_price"`
	GroutPricePerKg *float64 `json:"grout_price_per_kg,omitempty" toml:"grout_price_per_kg"`
	LaborRatePerM2  *float64 `json:"labor_rate_per_m2,omitempty" toml:"labor_rate_per_m2"`
	DeliveryCost    *float64 `json:"delivery_cost,omitempty" toml:"delivery_cost"`
}

// Priced reports whether any price is set.
func (p Pricing) Priced() bool {
	return p.TilePrice != nil || p.GroutPricePerKg != nil || p.LaborRatePerM2 != nil || p.DeliveryCost != nil
}

// SetDefaults fills zero values with defaults.
func (o *Options) SetDefaults() {
	if o.WasteFactor == 0 {
		o.WasteFactor = DefaultWasteFactor
	}
	if o.CuttingLoss == 0 {
		o.CuttingLoss = DefaultCuttingLoss
	}
	if o.GroutDepthMM == 0 {
		o.GroutDepthMM = DefaultGroutDepthMM
	}
}

// Validate rejects negative allowances and prices.
func (o Options) Validate() error {
	checks := []struct {
		field string
		v     *float64
	}{
		{"waste factor", &o.WasteFactor},
		{"cutting loss", &o.CuttingLoss},
		{"grout depth", &o.GroutDepthMM},
		{"tile price", o.Pricing.TilePrice},
		{"grout price", o.Pricing.GroutPricePerKg},
		{"labor rate", o.Pricing.LaborRatePerM2},
		{"delivery cost", o.Pricing.DeliveryCost},
	}
	for _, c := range checks {
		if c.v == nil {
			continue
		}
		if err := errors.ValidateNonNegative(errors.ErrCodeInvalidInput, c.field, *c.v); err != nil {
			return err
		}
	}
	return nil
}

// Complexity grades how much cutting a layout needs.
type Complexity string

// Complexity levels.
const (
	Simple   Complexity = "simple"
	Moderate Complexity = "moderate"
	Complex  Complexity = "complex"
)

// ClassifyComplexity grades a layout by its share of cut tiles.
func ClassifyComplexity(cutRatio float64) Complexity {
	switch {
	case cutRatio > 0.4:
		return Complex
	case cutRatio > 0.2:
		return Moderate
	default:
		return Simple
	}
}

// InstallRate returns the installation rate in m² per hour.
func (c Complexity) InstallRate() float64 {
	switch c {
	case Complex:
		return 1.0
	case Moderate:
		return 2.0
	default:
		return 3.0
	}
}

// PatternMultiplier scales installation time by pattern difficulty.
func PatternMultiplier(name string) float64 {
	switch name {
	case pattern.NameBrick:
		return 1.2
	case pattern.NameHerringbone:
		return 1.8
	default:
		return 1.0
	}
}

// Grout is the estimated joint filler.
type Grout struct {
	Ratio     float64 `json:"ratio"`
	VolumeM3  float64 `json:"volume_m3"`
	Liters    float64 `json:"liters"`
	Kilograms float64 `json:"kilograms"`
}

// Cost lists the priced cost lines. Unpriced lines are nil and Total sums
// the priced ones.
type Cost struct {
	Tiles    *float64 `json:"tiles,omitempty"`
	Grout    *float64 `json:"grout,omitempty"`
	Labor    *float64 `json:"labor,omitempty"`
	Delivery *float64 `json:"delivery,omitempty"`
	Total    *float64 `json:"total,omitempty"`
}

// Unpriced names the cost lines left out of Total for lack of a price.
func (c Cost) Unpriced() []string {
	var names []string
	for _, line := range []struct {
		name  string
		value *float64
	}{
		{"tiles", c.Tiles},
		{"grout", c.Grout},
		{"labor", c.Labor},
		{"delivery", c.Delivery},
	} {
		if line.value == nil {
			names = append(names, line.name)
		}
	}
	return names
}

// Quality scores the layout.
type Quality struct {
	PatternAccuracy  float64 `json:"pattern_accuracy"`
	LayoutEfficiency float64 `json:"layout_efficiency"`
}

// DetailedResults are the statistics of a layout extended with real-world
// quantities.
type DetailedResults struct {
	Statistics
	Pattern                 string           `json:"pattern"`
	Scale                   scale.Resolution `json:"scale"`
	AdjustedWastePercentage float64          `json:"adjusted_waste_percentage"`
	PurchaseTiles           int              `json:"purchase_tiles"`
	CutRatio                float64          `json:"cut_ratio"`
	Complexity              Complexity       `json:"complexity"`
	InstallTimeHours        float64          `json:"install_time_hours"`
	Grout                   Grout            `json:"grout"`
	Cost                    Cost             `json:"cost"`
	Quality                 Quality          `json:"quality"`
}

// Advanced derives the detailed results of a layout covering the room
// measured by res.
func Advanced(res scale.Resolution, spec tile.Spec, result tile.GenerationResult, opts Options) DetailedResults {
	opts.SetDefaults()

	d := DetailedResults{
		Statistics: FromResult(result),
		Pattern:    result.Pattern,
		Scale:      res,
	}

	d.AdjustedWastePercentage = d.WastePercentage
	if !opts.SkipWasteFactor {
		d.AdjustedWastePercentage += opts.WasteFactor
	}
	if !opts.SkipCuttingLoss {
		d.AdjustedWastePercentage += opts.CuttingLoss
	}
	d.PurchaseTiles = PurchaseQuantity(d.TotalTiles, d.AdjustedWastePercentage)

	if d.TotalTiles > 0 {
		d.CutRatio = float64(d.CutTiles) / float64(d.TotalTiles)
		d.Quality.LayoutEfficiency = float64(d.FullTiles) / float64(d.TotalTiles) * 100
	}
	d.Complexity = ClassifyComplexity(d.CutRatio)
	d.InstallTimeHours = res.AreaM2 / (d.Complexity.InstallRate() / PatternMultiplier(d.Pattern))
	d.Quality.PatternAccuracy = math.Max(0, 100-d.WastePercentage)

	d.Grout = EstimateGrout(res.AreaM2, spec, opts.GroutDepthMM)
	d.Cost = estimateCost(d, res.AreaM2, opts.Pricing)
	return d
}

// PurchaseQuantity rounds total tiles plus a percentage allowance up to a
// whole tile count.
func PurchaseQuantity(total int, allowance float64) int {
	if total <= 0 {
		return 0
	}
	// Shave float noise so that 100 tiles at 20% buy 120, not 121.
	return int(math.Ceil(float64(total)*(1+allowance/100) - 1e-9))
}

// EstimateGrout estimates the grout needed for areaM2 of tiling. The joint
// share of the surface is the ring a grout joint adds around one tile.
func EstimateGrout(areaM2 float64, spec tile.Spec, depthMM float64) Grout {
	w, h, g := spec.WidthMM(), spec.LengthMM(), spec.GroutWidth
	ring := (w+g)*(h+g) - w*h
	cell := w*h + ring
	if cell <= 0 {
		return Grout{}
	}
	ratio := ring / cell
	volume := areaM2 * ratio * depthMM / 1000
	liters := volume * 1000
	return Grout{
		Ratio:     ratio,
		VolumeM3:  volume,
		Liters:    liters,
		Kilograms: liters * GroutDensityKgPerL,
	}
}

func estimateCost(d DetailedResults, areaM2 float64, p Pricing) Cost {
	var c Cost
	if p.TilePrice != nil {
		c.Tiles = ptr(float64(d.PurchaseTiles) * *p.TilePrice)
	}
	if p.GroutPricePerKg != nil {
		c.Grout = ptr(d.Grout.Kilograms * *p.GroutPricePerKg)
	}
	if p.LaborRatePerM2 != nil {
		c.Labor = ptr(areaM2 * *p.LaborRatePerM2)
	}
	if p.DeliveryCost != nil {
		c.Delivery = ptr(*p.DeliveryCost)
	}

	var total float64
	priced := false
	for _, line := range []*float64{c.Tiles, c.Grout, c.Labor, c.Delivery} {
		if line != nil {
			total += *line
			priced = true
		}
	}
	if priced {
		c.Total = ptr(total)
	}
	return c
}

func ptr(v float64) *float64 { return &v }
