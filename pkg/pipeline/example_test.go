package pipeline_test

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tileplan/pkg/clip"
	"github.com/matzehuels/tileplan/pkg/geometry"
	"github.com/matzehuels/tileplan/pkg/pattern"
	"github.com/matzehuels/tileplan/pkg/pipeline"
	"github.com/matzehuels/tileplan/pkg/project"
	"github.com/matzehuels/tileplan/pkg/tile"
)

func ExampleGeneratePattern() {
	// A 4 m × 3 m room in working pixels (100 px per metre).
	room := []geometry.Point{{X: 0, Y: 0}, {X: 400, Y: 0}, {X: 400, Y: 300}, {X: 0, Y: 300}}

	res, err := pipeline.GeneratePattern(pattern.Config{
		Tile:         tile.Spec{Length: 1, Width: 1, Unit: geometry.Meters},
		Pattern:      pattern.NameGrid,
		TargetWidth:  400,
		TargetHeight: 300,
	}, room, clip.ModeHeuristic)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%d full, %d cut, %.0f%% waste\n", res.FullTiles, res.CutTiles, res.WastePercentage)
	// Output: 12 full, 0 cut, 0% waste
}

func ExampleRunner_Execute() {
	p := project.Project{
		Name: "Studio",
		Tile: tile.Spec{Length: 1, Width: 1, Unit: geometry.Meters},
		Nodes: []project.Node{
			{ID: "a", X: 0, Y: 0}, {ID: "b", X: 400, Y: 0},
			{ID: "c", X: 400, Y: 300}, {ID: "d", X: 0, Y: 300},
		},
		Edges: []project.Edge{
			{ID: "ab", Source: "a", Target: "b", Length: 4, Unit: "m"},
			{ID: "bc", Source: "b", Target: "c"},
			{ID: "cd", Source: "c", Target: "d"},
			{ID: "da", Source: "d", Target: "a"},
		},
	}

	runner := pipeline.NewRunner(nil, nil, log.New(io.Discard))
	res, err := runner.Execute(context.Background(), p)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s: %d tiles, buy %d\n", res.Generation.Pattern, res.Generation.TotalTiles, res.Report.Results.PurchaseTiles)
	// Output: grid: 12 tiles, buy 14
}
