// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose   bool
	logFormat string

	// logger is built from the global flags before any subcommand runs.
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "hodos",
	Short: "Build graphs from files and search them",
	Long: `hodos - build a graph from a YAML description and traverse it.

Graph files name an input shape (adjacency, matrix, weighted-matrix, grid)
and optional admission policies. See 'hodos inspect' to check what a file
builds into.

Examples:
  # Fewest hops from 0 to 3
  hodos bfs -f chain.yaml --goal 3

  # Lightest route, with the engine trace on stderr as JSON
  hodos dijkstra -f roads.yaml --start 0 --goal 4 -v --log-format json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose, logFormat, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log the build and traversal trace")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}

// errorf prefixes command errors uniformly.
func errorf(cmd *cobra.Command, format string, args ...any) error {
	return fmt.Errorf("%s: "+format, append([]any{cmd.Name()}, args...)...)
}
