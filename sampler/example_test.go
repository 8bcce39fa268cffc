// SPDX-License-Identifier: MIT

package sampler_test

import (
	"fmt"

	"github.com/katalvlaran/hodos/builder"
	"github.com/katalvlaran/hodos/core"
	"github.com/katalvlaran/hodos/sampler"
)

// ExampleGrid builds a 2×2 grid graph with orthogonal links.
func ExampleGrid() {
	grid := [][]string{
		{"a", "b"},
		{"c", "d"},
	}
	b := builder.New[[][]string, core.DataNode[string], core.UnweightedEdge](
		sampler.NewGrid[string](sampler.Conn4), nil, nil)
	g := b.Build(grid)

	fmt.Println(g.Nodes())
	fmt.Println(g.Edges())
	// Output:
	// [node(0)=a node(1)=b node(2)=c node(3)=d]
	// [0→1 0→2 1→3 1→0 2→0 2→3 3→1 3→2]
}
