package geometry

import (
	"strings"

	"github.com/matzehuels/tileplan/pkg/errors"
)

// Unit is a real-world length unit. Millimetres are the base unit.
type Unit string

// Supported length units.
const (
	Millimeters Unit = "mm"
	Centimeters Unit = "cm"
	Meters      Unit = "m"
	Inches      Unit = "in"
	Feet        Unit = "ft"
)

// millimetersPer holds the size of one unit in millimetres.
var millimetersPer = map[Unit]float64{
	Millimeters: 1,
	Centimeters: 10,
	Meters:      1000,
	Inches:      25.4,
	Feet:        304.8,
}

// unitAliases maps accepted spellings, including area spellings, to units.
var unitAliases = map[string]Unit{
	"mm": Millimeters, "millimeter": Millimeters, "millimeters": Millimeters, "mm2": Millimeters, "mm²": Millimeters,
	"cm": Centimeters, "centimeter": Centimeters, "centimeters": Centimeters, "cm2": Centimeters, "cm²": Centimeters,
	"m": Meters, "meter": Meters, "meters": Meters, "metre": Meters, "metres": Meters, "m2": Meters, "m²": Meters, "sqm": Meters,
	"in": Inches, "inch": Inches, "inches": Inches, "\"": Inches, "in2": Inches, "sqin": Inches,
	"ft": Feet, "foot": Feet, "feet": Feet, "'": Feet, "ft2": Feet, "ft²": Feet, "sqft": Feet,
}

// Units lists the supported units in display order.
var Units = []Unit{Millimeters, Centimeters, Meters, Inches, Feet}

// ParseUnit parses a unit name. Area spellings such as "m2" or "sqft" map to
// their length unit, since area conversion squares the length factor.
func ParseUnit(s string) (Unit, error) {
	if u, ok := unitAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return u, nil
	}
	return "", errors.New(errors.ErrCodeInvalidUnit, "unknown unit %q (must be one of: mm, cm, m, in, ft)", s)
}

// Valid reports whether u is a supported unit.
func (u Unit) Valid() bool {
	_, ok := millimetersPer[u]
	return ok
}

// Millimeters returns the size of one u in millimetres, or 0 for unknown units.
func (u Unit) Millimeters() float64 {
	return millimetersPer[u]
}

// ConvertLength converts a length in millimetres to unit u.
func ConvertLength(mm float64, u Unit) float64 {
	return mm / u.Millimeters()
}

// ConvertArea converts an area in square millimetres to square u.
func ConvertArea(mm2 float64, u Unit) float64 {
	f := u.Millimeters()
	return mm2 / (f * f)
}

// ToMillimeters converts a length in unit u to millimetres.
func ToMillimeters(v float64, u Unit) float64 {
	return v * u.Millimeters()
}

// AreaToSquareMillimeters converts an area in square u to square millimetres.
func AreaToSquareMillimeters(v float64, u Unit) float64 {
	f := u.Millimeters()
	return v * f * f
}

// ToCanvas converts a real-world point to canvas pixels.
func ToCanvas(p Point, pixelsPerUnit float64) CanvasPoint {
	return CanvasPoint{X: p.X * pixelsPerUnit, Y: p.Y * pixelsPerUnit}
}

// FromCanvas converts a canvas point back to real-world coordinates.
func FromCanvas(c CanvasPoint, pixelsPerUnit float64) Point {
	return Point{X: c.X / pixelsPerUnit, Y: c.Y / pixelsPerUnit}
}

// CanvasVertices reinterprets canvas points as unscaled points so that the
// polygon functions can measure them in pixel space.
func CanvasVertices(cs []CanvasPoint) []Point {
	out := make([]Point, len(cs))
	for i, c := range cs {
		out[i] = Point(c)
	}
	return out
}
