package pipeline

import (
	"github.com/matzehuels/tileplan/pkg/clip"
	"github.com/matzehuels/tileplan/pkg/geometry"
	"github.com/matzehuels/tileplan/pkg/pattern"
	"github.com/matzehuels/tileplan/pkg/project"
	"github.com/matzehuels/tileplan/pkg/report"
	"github.com/matzehuels/tileplan/pkg/scale"
	"github.com/matzehuels/tileplan/pkg/shape"
	"github.com/matzehuels/tileplan/pkg/stats"
	"github.com/matzehuels/tileplan/pkg/tile"
)

// GeneratePattern lays the configured pattern over the target rectangle,
// clips it to polygon and aggregates the result. Polygon and config share the
// working pixel space. An unsupported pattern or invalid tile is an error;
// a degenerate target or polygon is not.
func GeneratePattern(cfg pattern.Config, polygon []geometry.Point, mode clip.Mode) (tile.GenerationResult, error) {
	lattice, err := pattern.Generate(cfg)
	if err != nil {
		return tile.GenerationResult{}, err
	}
	return stats.Result(clip.Clip(lattice, polygon, mode), cfg.Pattern), nil
}

// ComputeAdvancedResults resolves the scale of the outline and extends the
// generation result with real-world quantities. Without a measured edge it
// returns a SCALE_UNRESOLVED error; negative allowances or prices are
// INVALID_INPUT.
func ComputeAdvancedResults(nodes []shape.Node, edges []shape.Edge, spec tile.Spec, result tile.GenerationResult, opts stats.Options) (stats.DetailedResults, error) {
	if err := opts.Validate(); err != nil {
		return stats.DetailedResults{}, err
	}
	res, err := shape.ResolveScale(nodes, edges)
	if err != nil {
		return stats.DetailedResults{}, err
	}
	return stats.Advanced(res, spec, result, opts), nil
}

// ValidateLayoutShape reports the problems of a drawn outline.
func ValidateLayoutShape(nodes []shape.Node, edges []shape.Edge) shape.ValidationResult {
	return shape.ValidateLayoutShape(nodes, edges)
}

// GenerateShoppingList derives what to buy from detailed results.
func GenerateShoppingList(results stats.DetailedResults, spec tile.Spec) report.ShoppingList {
	return report.NewShoppingList(results, spec, report.ListOptions{})
}

// GenerateDetailedReport writes the report for a project.
func GenerateDetailedReport(p project.Project, results stats.DetailedResults) report.Report {
	return report.DetailedReport(p, results)
}

// Workspace maps a canvas outline into working pixels.
type Workspace struct {
	// Polygon is the outline in working pixels with its bounding box at the origin.
	Polygon []geometry.Point
	// Width and Height are the extent of the outline in working pixels.
	Width, Height float64
	// Factor converts canvas pixels to working pixels.
	Factor float64
}

// NewWorkspace converts an ordered canvas outline measured at res into the
// working space of pixelsPerMeter pixels per metre.
func NewWorkspace(outline []geometry.Point, res scale.Resolution, pixelsPerMeter float64) Workspace {
	if pixelsPerMeter <= 0 {
		pixelsPerMeter = pattern.DefaultPixelsPerMeter
	}
	ws := Workspace{Polygon: make([]geometry.Point, len(outline))}
	if canvasPPM := res.PixelsPerMeter(); canvasPPM > 0 {
		ws.Factor = pixelsPerMeter / canvasPPM
	}
	origin := geometry.BoundingBox(outline).Min
	for i, v := range outline {
		ws.Polygon[i] = v.Sub(origin).Scale(ws.Factor)
	}
	b := geometry.BoundingBox(ws.Polygon)
	ws.Width, ws.Height = b.Width(), b.Height()
	return ws
}

// PatternConfig returns the pattern configuration covering the workspace.
// The project margin is converted from millimetres to working pixels.
func (ws Workspace) PatternConfig(p project.Project) pattern.Config {
	ppm := p.Layout.PixelsPerMeter
	if ppm <= 0 {
		ppm = pattern.DefaultPixelsPerMeter
	}
	return pattern.Config{
		Tile:           p.Tile,
		Pattern:        p.Layout.Pattern,
		TargetWidth:    ws.Width,
		TargetHeight:   ws.Height,
		Margin:         geometry.ConvertLength(p.Layout.Margin, geometry.Meters) * ppm,
		PixelsPerMeter: ppm,
	}
}
