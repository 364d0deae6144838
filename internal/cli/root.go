package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mlenz/cellgraph/pkg/buildinfo"
)

// Execute runs the cellgraph CLI and returns an error if any command
// fails.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree.
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "cellgraph",
		Short:        "cellgraph queries and serves cell graph files",
		Long:         `cellgraph is a CLI for working with cell graphs: directed graphs of nodes and edges with nesting, z-order, and geometry. It answers structural queries, extracts subgraphs, converts between formats, and serves graphs over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newQueryCmd())
	root.AddCommand(newPathCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newSubgraphCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
