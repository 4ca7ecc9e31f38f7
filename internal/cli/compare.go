package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tileplan/pkg/pipeline"
	"github.com/matzehuels/tileplan/pkg/project"
)

// compareCommand creates the compare command for planning several patterns.
func (c *CLI) compareCommand() *cobra.Command {
	var (
		layout      layoutFlags
		patterns    string
		interactive bool
		asJSON      bool
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "compare [project.toml]",
		Short: "Compare patterns for a project",
		Long: `Compare patterns for a project.

Plans the project once per pattern, concurrently, and prints the results side
by side. The pattern needing the fewest tiles is highlighted.

With --interactive, pick a pattern from the table to see its full report.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompare(cmd.Context(), args[0], layout, compareOpts{
				patterns:    splitList(patterns),
				interactive: interactive,
				json:        asJSON,
				noCache:     noCache,
			})
		},
	}

	cmd.Flags().StringVar(&patterns, "patterns", "", "patterns to compare (comma-separated, default: all)")
	layout.bind(cmd)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick a pattern interactively")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print all results as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

type compareOpts struct {
	patterns    []string
	interactive bool
	json        bool
	noCache     bool
}

func (c *CLI) runCompare(ctx context.Context, input string, layout layoutFlags, o compareOpts) error {
	p, err := loadProject(input, layout)
	if err != nil {
		return fmt.Errorf("load project %s: %w", input, err)
	}

	results, err := c.compare(ctx, p, o)
	if err != nil {
		return err
	}

	switch {
	case o.json:
		return writeJSON(out, results)
	case o.interactive:
		return c.pickPattern(results)
	}

	fmt.Fprintln(out, comparisonTable(results, noCursor))
	best := results[bestIndex(results)]
	printNextStep("Full report", fmt.Sprintf("%s report %s --pattern %s", appName, input, best.Generation.Pattern))
	return nil
}

func (c *CLI) compare(ctx context.Context, p project.Project, o compareOpts) ([]*pipeline.Result, error) {
	runner, err := c.newRunner(o.noCache)
	if err != nil {
		return nil, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	var spin *spinner
	if !o.json && !o.interactive {
		spin = newSpinner(ctx, "Planning patterns...")
		spin.Start()
	}
	results, err := runner.Compare(ctx, p, o.patterns)
	if spin != nil {
		if err != nil {
			spin.StopWithError("Comparison failed")
		} else {
			spin.Stop()
		}
	}
	if err != nil {
		return nil, fmt.Errorf("compare: %w", err)
	}
	return results, nil
}

// pickPattern runs the interactive picker and prints the chosen plan.
func (c *CLI) pickPattern(results []*pipeline.Result) error {
	final, err := tea.NewProgram(newPatternPicker(results)).Run()
	if err != nil {
		return fmt.Errorf("pattern picker: %w", err)
	}
	m, ok := final.(patternPicker)
	if !ok || m.selected == nil {
		printInfo("No pattern selected")
		return nil
	}
	printPlan(m.selected)
	printShoppingList(m.selected.Report.ShoppingList)
	return nil
}

// splitList parses a comma-separated flag value, dropping blanks.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
