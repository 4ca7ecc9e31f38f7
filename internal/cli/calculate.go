package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tileplan/pkg/pipeline"
	"github.com/matzehuels/tileplan/pkg/report"
)

// bind registers the layout override flags on cmd.
func (f *layoutFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.clip, "clip", "", "clip mode: heuristic (default), exact")
	cmd.Flags().Float64Var(&f.margin, "margin", 0, "inset from the room bounds in millimetres")
}

// calculateCommand creates the calculate command for planning one project.
func (c *CLI) calculateCommand() *cobra.Command {
	var (
		layout  layoutFlags
		output  string
		asJSON  bool
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "calculate [project.toml]",
		Short: "Plan the tiles for a project",
		Long: `Plan the tiles for a project.

The calculate command validates the room outline, resolves the real-world
scale from the measured edges, lays the pattern over the room and clips it to
the outline. It prints tile counts, waste and the purchase quantity.

Results are cached locally; --refresh recomputes them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCalculate(cmd.Context(), args[0], layout, calculateOutput{
				path:    output,
				json:    asJSON,
				noCache: noCache,
				refresh: refresh,
			})
		},
	}

	cmd.Flags().StringVarP(&layout.pattern, "pattern", "p", "", "pattern: grid, brick, herringbone (default: from project)")
	layout.bind(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "also write the full result as JSON to this file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if a cached plan exists")

	return cmd
}

type calculateOutput struct {
	path    string
	json    bool
	noCache bool
	refresh bool
}

// runCalculate loads the project, plans it and prints the result.
func (c *CLI) runCalculate(ctx context.Context, input string, layout layoutFlags, o calculateOutput) error {
	res, err := c.plan(ctx, input, layout, o.noCache, o.refresh)
	if err != nil {
		return err
	}

	if o.path != "" {
		if err := writeJSONFile(o.path, res); err != nil {
			return err
		}
	}
	if o.json {
		return writeJSON(out, res)
	}

	printPlan(res)
	if o.path != "" {
		printFile(o.path)
	}
	return nil
}

// plan runs one project through the cached pipeline.
func (c *CLI) plan(ctx context.Context, input string, layout layoutFlags, noCache, refresh bool) (*pipeline.Result, error) {
	p, err := loadProject(input, layout)
	if err != nil {
		return nil, fmt.Errorf("load project %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return nil, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	res, err := runner.Run(ctx, pipeline.Options{Project: p, Refresh: refresh})
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Planned %d tiles", res.Generation.TotalTiles))
	return res, nil
}

// printPlan prints the headline numbers of a plan.
func printPlan(res *pipeline.Result) {
	d := res.Report.Results
	g := res.Generation

	printSuccess("%s: %s pattern, %d tiles", res.Report.ProjectName, g.Pattern, g.TotalTiles)
	printTileStats(g.FullTiles, g.CutTiles, d.PartialTiles, res.CacheInfo.PlanHit)
	fmt.Fprintln(out)

	printKeyValue("Area", formatArea(d.Scale.AreaM2))
	printKeyValue("Coverage", formatPercent(g.Coverage))
	printKeyValue("Waste", fmt.Sprintf("%s (%s with allowances)", formatPercent(g.WastePercentage), formatPercent(d.AdjustedWastePercentage)))
	printKeyValue("Purchase", StyleNumber.Render(fmt.Sprintf("%d tiles", d.PurchaseTiles)))
	printKeyValue("Complexity", string(d.Complexity))
	printKeyValue("Install time", fmt.Sprintf("%.1f h", d.InstallTimeHours))
	printKeyValue("Grout", fmt.Sprintf("%.1f kg", d.Grout.Kilograms))
	if d.Cost.Total != nil {
		printKeyValue("Total cost", formatMoney(d.Cost.Total))
	}

	for _, w := range res.Report.Warnings {
		printWarning("%s", w)
	}
}

// printShoppingList prints what to buy.
func printShoppingList(list report.ShoppingList) {
	printHeading("Shopping list")
	tiles := fmt.Sprintf("%d", list.Tiles.Count)
	if list.Tiles.Boxes > 0 {
		tiles = fmt.Sprintf("%d (%d boxes of %d)", list.Tiles.Count, list.Tiles.Boxes, list.Tiles.TilesPerBox)
	}
	printKeyValue("Tiles", tiles)
	printKeyValue("Grout", fmt.Sprintf("%.1f kg (%d × %.0f kg)", list.Grout.Kilograms, list.Grout.Bags, list.Grout.BagKilograms))
	for _, item := range list.Accessories {
		printKeyValue(item.Name, fmt.Sprintf("%d %s", item.Quantity, item.Unit))
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeJSONFile(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := writeJSON(f, v); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
