// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hodos/core"
	"github.com/katalvlaran/hodos/graphfile"
	"github.com/katalvlaran/hodos/search"
)

type runner func(g *graphfile.Graph, start uint32, opts ...search.Option) (*search.Result, error)

// searchFlags holds the flags of one search subcommand.
type searchFlags struct {
	file      string
	start     uint32
	goal      uint32
	maxOpened int
	strict    bool
}

func newSearchCmd(use, short string, run runner) *cobra.Command {
	var f searchFlags
	cmd := &cobra.Command{
		Use:   use + " -f <file>",
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []search.Option{search.WithMaxOpened(f.maxOpened)}
			if cmd.Flags().Changed("goal") {
				opts = append(opts, search.WithGoal(f.goal))
			}
			if f.strict {
				opts = append(opts, search.WithStrictAdjacency())
			}
			if IsVerbose() {
				opts = append(opts, search.WithLogger(logger))
			}
			return runSearch(cmd, f, run, opts)
		},
	}
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "graph file (YAML, - for stdin)")
	cmd.Flags().Uint32Var(&f.start, "start", 0, "start node id")
	cmd.Flags().Uint32Var(&f.goal, "goal", 0, "stop once this node is visited and print the path to it")
	cmd.Flags().IntVar(&f.maxOpened, "max-opened", 0, "stop once this many nodes are discovered (0 = no limit)")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "stop at the first node without outgoing edges")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runSearch(cmd *cobra.Command, f searchFlags, run runner, opts []search.Option) error {
	doc, err := graphfile.Load(f.file)
	if err != nil {
		return errorf(cmd, "%w", err)
	}
	g, _, err := doc.Build(logger)
	if err != nil {
		return errorf(cmd, "%w", err)
	}

	res, err := run(g, f.start, opts...)
	if err != nil {
		return errorf(cmd, "%w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "order: %s\n", join(res.Order, " "))
	if cmd.Flags().Changed("goal") {
		printPath(out, res, f.goal)
	}
	fmt.Fprintf(out, "stop: %s (visits=%d pushes=%d)\n",
		res.Traversal.Reason, res.Traversal.Visits, res.Traversal.Pushes)
	return nil
}

func printPath(w io.Writer, res *search.Result, goal uint32) {
	path, err := res.PathTo(goal)
	if errors.Is(err, search.ErrNoPath) {
		fmt.Fprintf(w, "path: none to %d\n", goal)
		return
	}
	fmt.Fprintf(w, "path: %s\n", join(path, " -> "))
	if d, ok := res.Distance(goal); ok {
		fmt.Fprintf(w, "distance: %g\n", d)
	}
}

func join(ids []uint32, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, sep)
}

func init() {
	rootCmd.AddCommand(
		newSearchCmd("bfs", "Breadth-first search (fewest edges)", search.BFS[core.Node, core.Edge]),
		newSearchCmd("dfs", "Depth-first search", search.DFS[core.Node, core.Edge]),
		newSearchCmd("dijkstra", "Lightest path search (non-negative weights)", search.Dijkstra[core.Node, core.Edge]),
	)
}
