// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/hodos/core"
	"github.com/katalvlaran/hodos/frontier"
)

// printer visits every node reachable through unseen edges.
type printer struct {
	core.VisitorDefaults[*UG]
	seen map[uint32]bool
}

func (p *printer) ShouldExplore(_, to uint32, _ *UG) bool {
	if p.seen[to] {
		return false
	}
	p.seen[to] = true
	return true
}

func (p *printer) Visit(id uint32, _ *UG) { fmt.Println("visit", id) }

// ExampleGraph_Traverse wires a custom visitor with a FIFO frontier.
func ExampleGraph_Traverse() {
	g := core.NewGraph[core.EmptyNode, core.UnweightedEdge]()
	g.AddEdge(core.NewUnweightedEdge(0, 1))
	g.AddEdge(core.NewUnweightedEdge(0, 2))
	g.AddEdge(core.NewUnweightedEdge(1, 2))

	res := g.Traverse(0, frontier.NewQueue(), &printer{seen: map[uint32]bool{0: true}},
		core.WithMissingAdjacency(core.MissingAdjacencyAsLeaf))
	fmt.Println(res.Reason)
	// Output:
	// visit 0
	// visit 1
	// visit 2
	// exhausted
}
