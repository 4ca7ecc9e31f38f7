// Package scale derives the pixel-to-real-world scale of a drawn outline from
// the edges the user has dimensioned.
//
// Every dimensioned edge is one sample: its length on the canvas in pixels
// and its measured length in some unit. Samples are normalised to pixels per
// millimetre before they are averaged, so edges measured in different units
// can be mixed freely. The reported unit is the unit of the first sample.
package scale

import (
	"gonum.org/v1/gonum/stat"

	"github.com/matzehuels/tileplan/pkg/errors"
	"github.com/matzehuels/tileplan/pkg/geometry"
)

// DimensionedEdge is one scale sample.
type DimensionedEdge struct {
	PixelLength float64       `json:"pixel_length"`
	RealLength  float64       `json:"real_length"`
	Unit        geometry.Unit `json:"unit"`
}

// Resolution is a resolved scale together with the outline measured in it.
type Resolution struct {
	// ScaleFactor is the number of pixels per Unit.
	ScaleFactor         float64       `json:"scale_factor"`
	Unit                geometry.Unit `json:"unit"`
	PixelsPerMillimeter float64       `json:"pixels_per_millimeter"`
	Area                float64       `json:"area"`      // Unit²
	Perimeter           float64       `json:"perimeter"` // Unit
	AreaM2              float64       `json:"area_m2"`
	PerimeterM          float64       `json:"perimeter_m"`
	Samples             int           `json:"samples"`
}

func (e DimensionedEdge) usable() bool {
	return e.PixelLength > 0 && e.RealLength > 0 && e.Unit.Valid()
}

// Resolve averages the samples into a scale and measures an outline with the
// given canvas area (px²) and perimeter (px) in it.
//
// Samples with a non-positive length or an unknown unit are ignored. When no
// usable sample remains a SCALE_UNRESOLVED error is returned.
func Resolve(samples []DimensionedEdge, canvasArea, canvasPerimeter float64) (Resolution, error) {
	ratios := make([]float64, 0, len(samples))
	var unit geometry.Unit
	for _, s := range samples {
		if !s.usable() {
			continue
		}
		if unit == "" {
			unit = s.Unit
		}
		ratios = append(ratios, s.PixelLength/geometry.ToMillimeters(s.RealLength, s.Unit))
	}
	if len(ratios) == 0 {
		return Resolution{}, errors.ScaleUnresolved("no dimensioned edge to derive a scale from (%d samples given)", len(samples))
	}

	pxPerMM := stat.Mean(ratios, nil)
	factor := pxPerMM * unit.Millimeters()
	pxPerM := pxPerMM * geometry.Meters.Millimeters()

	return Resolution{
		ScaleFactor:         factor,
		Unit:                unit,
		PixelsPerMillimeter: pxPerMM,
		Area:                canvasArea / (factor * factor),
		Perimeter:           canvasPerimeter / factor,
		AreaM2:              canvasArea / (pxPerM * pxPerM),
		PerimeterM:          canvasPerimeter / pxPerM,
		Samples:             len(ratios),
	}, nil
}

// ToUnit converts a canvas length in pixels to the resolution's unit.
func (r Resolution) ToUnit(px float64) float64 {
	if r.ScaleFactor == 0 {
		return 0
	}
	return px / r.ScaleFactor
}

// PixelsPerMeter returns the scale in pixels per metre.
func (r Resolution) PixelsPerMeter() float64 {
	return r.PixelsPerMillimeter * geometry.Meters.Millimeters()
}
