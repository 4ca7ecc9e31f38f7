package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/tileplan/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
// The persistent --verbose flag switches the CLI logger to debug level before
// any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "Tileplan plans tile layouts for drawn rooms",
		Long: `Tileplan computes how many tiles a room needs, how they are arranged and
how much is wasted, from a room outline and a tile specification.

Projects are TOML or JSON files holding the outline (canvas pixels), at least
one measured edge for the scale, the tile and the layout pattern.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := LogInfo
			if verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.calculateCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.reportCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
