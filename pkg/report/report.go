package report

import (
	"fmt"
	"strings"

	"github.com/matzehuels/tileplan/pkg/pattern"
	"github.com/matzehuels/tileplan/pkg/project"
	"github.com/matzehuels/tileplan/pkg/stats"
)

// HighWastePercentage is the pattern waste above which a report warns.
const HighWastePercentage = 20.0

// smallTileMM is the longest side below which a tile counts as mosaic.
const smallTileMM = 100.0

// Report is the written summary of a plan.
type Report struct {
	ProjectID       string                `json:"project_id"`
	ProjectName     string                `json:"project_name"`
	Summary         string                `json:"summary"`
	Recommendations []string              `json:"recommendations"`
	Warnings        []string              `json:"warnings"`
	Results         stats.DetailedResults `json:"results"`
	ShoppingList    ShoppingList          `json:"shopping_list"`
}

// DetailedReport writes the report for a project and its results.
func DetailedReport(p project.Project, results stats.DetailedResults) Report {
	return Report{
		ProjectID:       p.ID,
		ProjectName:     p.Name,
		Summary:         summary(p, results),
		Recommendations: recommendations(p, results),
		Warnings:        warnings(p, results),
		Results:         results,
		ShoppingList: NewShoppingList(results, p.Tile, ListOptions{
			TilesPerBox: p.Options.TilesPerBox,
			GroutBagKg:  p.Options.GroutBagKg,
		}),
	}
}

func summary(p project.Project, d stats.DetailedResults) string {
	var b strings.Builder
	name := p.Name
	if name == "" {
		name = "Room"
	}
	fmt.Fprintf(&b, "%s: %.2f m² in a %s pattern needs %d tiles (%d full, %d cut) with %.1f%% layout waste.",
		name, d.Scale.AreaM2, d.Pattern, d.TotalTiles, d.FullTiles, d.CutTiles, d.WastePercentage)
	fmt.Fprintf(&b, " Buy %d tiles including a %.1f%% allowance; installation takes about %.1f hours.",
		d.PurchaseTiles, d.AdjustedWastePercentage, d.InstallTimeHours)
	if d.Cost.Total != nil {
		fmt.Fprintf(&b, " Estimated cost: %.2f.", *d.Cost.Total)
	}
	return b.String()
}

func recommendations(p project.Project, d stats.DetailedResults) []string {
	recs := []string{}
	switch d.Complexity {
	case stats.Complex:
		recs = append(recs, "Most tiles need cutting; a wet saw or a professional installer is recommended.")
	case stats.Moderate:
		recs = append(recs, "Plan the cuts along the walls before setting the first tile.")
	}

	switch d.Pattern {
	case pattern.NameHerringbone:
		recs = append(recs, "Snap a chalk line along the room's centre axis to keep the herringbone straight.")
	case pattern.NameBrick:
		if LargeFormat(p.Tile) {
			recs = append(recs, "Limit the offset of large tiles to a third of their length to avoid lippage.")
		} else {
			recs = append(recs, "Stagger each row by half a tile and check the offset every few rows.")
		}
	}

	longest := max(p.Tile.WidthMM(), p.Tile.LengthMM())
	switch {
	case LargeFormat(p.Tile):
		recs = append(recs, "Use a leveling system and back-butter large-format tiles.")
	case longest < smallTileMM:
		recs = append(recs, "Small tiles use more grout; consider mesh-backed sheets.")
	}

	if d.WastePercentage > HighWastePercentage/2 && d.Pattern != pattern.NameGrid {
		recs = append(recs, "A grid layout may reduce waste for this room.")
	}
	return recs
}

func warnings(p project.Project, d stats.DetailedResults) []string {
	warns := []string{}
	if d.WastePercentage > HighWastePercentage {
		warns = append(warns, fmt.Sprintf("Layout waste is high (%.1f%%); check the room outline and tile size.", d.WastePercentage))
	}
	if d.Cost.Total == nil {
		warns = append(warns, "No prices were given, so no cost estimate is available.")
	} else if unpriced := d.Cost.Unpriced(); len(unpriced) > 0 {
		warns = append(warns, fmt.Sprintf("The cost estimate covers priced items only; no price was given for %s.", strings.Join(unpriced, ", ")))
	}
	if d.PartialTiles > 0 {
		warns = append(warns, fmt.Sprintf("%d tile(s) only touch the room with their centre; their coverage is estimated at 25%%.", d.PartialTiles))
	}
	if units := p.EdgeUnits(); len(units) > 1 {
		names := make([]string, len(units))
		for i, u := range units {
			names[i] = string(u)
		}
		warns = append(warns, fmt.Sprintf("Edges are measured in mixed units (%s); results are reported in %s.", strings.Join(names, ", "), d.Scale.Unit))
	}
	if d.Scale.Samples == 1 && len(p.Edges) > 1 {
		warns = append(warns, "The scale comes from a single measured edge; measure more edges for a better estimate.")
	}
	return warns
}
