package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tileplan/pkg/report"
	"github.com/matzehuels/tileplan/pkg/stats"
)

// reportCommand creates the report command for the full project report.
func (c *CLI) reportCommand() *cobra.Command {
	var (
		layout  layoutFlags
		asJSON  bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "report [project.toml]",
		Short: "Print the detailed report and shopping list",
		Long: `Print the detailed report and shopping list.

The report adds costs (when the project has prices), installation time,
grout, recommendations and warnings to the plan, followed by what to buy.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReport(cmd.Context(), args[0], layout, asJSON, noCache)
		},
	}

	cmd.Flags().StringVarP(&layout.pattern, "pattern", "p", "", "pattern: grid, brick, herringbone (default: from project)")
	layout.bind(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runReport(ctx context.Context, input string, layout layoutFlags, asJSON, noCache bool) error {
	res, err := c.plan(ctx, input, layout, noCache, false)
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(out, res.Report)
	}
	printReport(res.Report)
	return nil
}

// printReport prints every section of a report.
func printReport(r report.Report) {
	fmt.Fprintln(out, StyleTitle.Render(r.ProjectName))
	fmt.Fprintln(out, r.Summary)

	d := r.Results
	printHeading("Layout")
	printKeyValue("Pattern", d.Pattern)
	printKeyValue("Area", formatArea(d.Scale.AreaM2))
	printKeyValue("Perimeter", fmt.Sprintf("%.2f m", d.Scale.PerimeterM))
	printKeyValue("Tiles", fmt.Sprintf("%d full, %d cut", d.FullTiles, d.CutTiles))
	printKeyValue("Waste", formatPercent(d.AdjustedWastePercentage))
	printKeyValue("Complexity", string(d.Complexity))
	printKeyValue("Install time", fmt.Sprintf("%.1f h", d.InstallTimeHours))
	printKeyValue("Efficiency", formatPercent(d.Quality.LayoutEfficiency))

	if d.Cost.Total != nil {
		printCost(d.Cost)
	}

	if len(r.Recommendations) > 0 {
		printHeading("Recommendations")
		for _, rec := range r.Recommendations {
			printInfo("%s", rec)
		}
	}
	if len(r.Warnings) > 0 {
		printHeading("Warnings")
		for _, w := range r.Warnings {
			printWarning("%s", w)
		}
	}

	printShoppingList(r.ShoppingList)
}

func printCost(c stats.Cost) {
	printHeading("Cost")
	printKeyValue("Tiles", formatMoney(c.Tiles))
	printKeyValue("Grout", formatMoney(c.Grout))
	printKeyValue("Labor", formatMoney(c.Labor))
	printKeyValue("Delivery", formatMoney(c.Delivery))
	printKeyValue("Total", StyleNumber.Render(formatMoney(c.Total)))
}
