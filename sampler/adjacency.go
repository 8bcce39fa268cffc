// SPDX-License-Identifier: MIT

package sampler

import (
	"github.com/katalvlaran/hodos/builder"
	"github.com/katalvlaran/hodos/core"
)

// AdjacencyList holds, for every source id (the index), its destinations.
type AdjacencyList = [][]uint32

// Adjacency walks an AdjacencyList row by row.
type Adjacency struct {
	next uint32
}

var _ builder.Sampler[AdjacencyList, core.EmptyNode, core.UnweightedEdge] = (*Adjacency)(nil)

// NewAdjacency returns an Adjacency sampler positioned at row 0.
func NewAdjacency() *Adjacency { return &Adjacency{} }

// Next emits node i and the edges i→list[i][k] in list order.
func (s *Adjacency) Next(list AdjacencyList) (builder.Sample[core.EmptyNode, core.UnweightedEdge], bool) {
	i := s.next
	if int(i) >= len(list) {
		return builder.Sample[core.EmptyNode, core.UnweightedEdge]{}, false
	}
	s.next++

	edges := make([]core.UnweightedEdge, 0, len(list[i]))
	for _, to := range list[i] {
		edges = append(edges, core.NewUnweightedEdge(i, to))
	}
	return builder.Sample[core.EmptyNode, core.UnweightedEdge]{
		Nodes: []core.EmptyNode{core.NewEmptyNode(i)},
		Edges: edges,
	}, true
}

// Reset rewinds to row 0.
func (s *Adjacency) Reset() { s.next = 0 }
