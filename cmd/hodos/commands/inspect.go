// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hodos/graphfile"
)

var inspectFile string

var inspectCmd = &cobra.Command{
	Use:   "inspect -f <file>",
	Short: "Build a graph file and report its size",
	Long: `Build a graph file and report what the policies admitted.

With --verbose every stored edge is listed as well.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := graphfile.Load(inspectFile)
		if err != nil {
			return errorf(cmd, "%w", err)
		}
		g, rep, err := doc.Build(logger)
		if err != nil {
			return errorf(cmd, "%w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "kind:     %s\n", doc.Kind)
		fmt.Fprintf(out, "nodes:    %d (rejected %d)\n", g.NodeCount(), rep.NodesRejected)
		fmt.Fprintf(out, "edges:    %d (rejected %d)\n", g.EdgeCount(), rep.EdgesRejected)
		fmt.Fprintf(out, "samples:  %d\n", rep.Samples)
		if IsVerbose() {
			for _, e := range g.Edges() {
				fmt.Fprintf(out, "  %d -> %d (%g)\n", e.From(), e.To(), e.Weight())
			}
		}
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectFile, "file", "f", "", "graph file (YAML, - for stdin)")
	_ = inspectCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(inspectCmd)
}
