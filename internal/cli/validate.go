package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tileplan/pkg/errors"
	"github.com/matzehuels/tileplan/pkg/pipeline"
	"github.com/matzehuels/tileplan/pkg/project"
)

// validateCommand creates the validate command for checking a room outline.
func (c *CLI) validateCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate [project.toml]",
		Short: "Check a room outline without planning it",
		Long: `Check a room outline without planning it.

Reports every problem that would stop planning (an open outline, crossing
edges, no measured edge) and warnings that would not (collinear points,
unmeasured edges, measurements that disagree with the drawing).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the validation result as JSON")

	return cmd
}

func (c *CLI) runValidate(input string, asJSON bool) error {
	p, err := project.Load(input)
	if err != nil {
		return fmt.Errorf("load project %s: %w", input, err)
	}
	nodes, edges := p.Shape()
	v := pipeline.ValidateLayoutShape(nodes, edges)
	c.Logger.Debug("validated outline", "nodes", len(nodes), "edges", len(edges), "valid", v.IsValid)

	if asJSON {
		if err := writeJSON(out, v); err != nil {
			return err
		}
	} else {
		if v.IsValid {
			printSuccess("%s: outline is valid", p.Name)
		}
		for _, e := range v.Errors {
			printError("%s", e)
		}
		for _, w := range v.Warnings {
			printWarning("%s", w)
		}
	}

	if !v.IsValid {
		return errors.New(errors.ErrCodeInvalidPolygon, "%s: outline has %d problem(s)", input, len(v.Errors))
	}
	if !asJSON {
		printNextStep("Plan it", fmt.Sprintf("%s calculate %s", appName, input))
	}
	return nil
}
