// SPDX-License-Identifier: MIT

// Package main is the entry point for the hodos CLI.
//
// Usage:
//
//	hodos [flags] <command> [args]
//
// Commands:
//
//	bfs       - Breadth-first search over a graph file
//	dfs       - Depth-first search over a graph file
//	dijkstra  - Lightest path search over a graph file
//	inspect   - Build a graph file and report its size
//	version   - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/hodos/cmd/hodos/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
