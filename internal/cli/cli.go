// Package cli implements the seek command-line interface.
//
// The commands solve the bundled example problems with the search drivers:
//   - maze: solve a random or file-defined grid maze
//   - missionaries: narrate the river-crossing solution
//   - route: route between two cities of a weighted graph
//   - mst: print the minimum spanning tree of a weighted graph
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which includes
// the per-search summary emitted by the search package. Loggers are passed
// through context.Context and tagged with a per-invocation run id.
package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// appName is the binary name used in usage text.
const appName = "seek"

// Execute runs the seek CLI with ctx, which commands use for cancellation.
func Execute(ctx context.Context) error {
	return newRootCommand().ExecuteContext(ctx)
}

// newRootCommand builds the root command with every subcommand registered.
func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Solve search problems with DFS, BFS and A*",
		Long:         `seek runs depth-first, breadth-first and A* search over mazes, the missionaries-and-cannibals puzzle and weighted city graphs.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level).With("run", uuid.NewString()[:8])
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newMazeCmd())
	root.AddCommand(newMissionariesCmd())
	root.AddCommand(newRouteCmd())
	root.AddCommand(newMSTCmd())

	return root
}
