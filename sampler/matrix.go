// SPDX-License-Identifier: MIT

package sampler

import (
	"math"

	"github.com/katalvlaran/hodos/builder"
	"github.com/katalvlaran/hodos/core"
)

// BinaryMatrix walks a boolean adjacency matrix: m[i][j] == true is the edge
// i→j.
type BinaryMatrix struct {
	next uint32
}

var _ builder.Sampler[[][]bool, core.EmptyNode, core.UnweightedEdge] = (*BinaryMatrix)(nil)

// NewBinaryMatrix returns a BinaryMatrix sampler positioned at row 0.
func NewBinaryMatrix() *BinaryMatrix { return &BinaryMatrix{} }

// Next emits node i and an edge for every true cell of row i.
func (s *BinaryMatrix) Next(m [][]bool) (builder.Sample[core.EmptyNode, core.UnweightedEdge], bool) {
	i := s.next
	if int(i) >= len(m) {
		return builder.Sample[core.EmptyNode, core.UnweightedEdge]{}, false
	}
	s.next++

	var edges []core.UnweightedEdge
	for j, ok := range m[i] {
		if ok {
			edges = append(edges, core.NewUnweightedEdge(i, uint32(j)))
		}
	}
	return builder.Sample[core.EmptyNode, core.UnweightedEdge]{
		Nodes: []core.EmptyNode{core.NewEmptyNode(i)},
		Edges: edges,
	}, true
}

// Reset rewinds to row 0.
func (s *BinaryMatrix) Reset() { s.next = 0 }

// NoEdge marks an absent cell of a weighted matrix.
var NoEdge = math.Inf(1)

// WeightedMatrix walks a weighted adjacency matrix: m[i][j] is the cost of
// i→j, and +Inf (NoEdge) means there is no edge. NaN cells are skipped too.
type WeightedMatrix struct {
	next uint32
}

var _ builder.Sampler[[][]float64, core.EmptyNode, core.WeightedEdge] = (*WeightedMatrix)(nil)

// NewWeightedMatrix returns a WeightedMatrix sampler positioned at row 0.
func NewWeightedMatrix() *WeightedMatrix { return &WeightedMatrix{} }

// Next emits node i and an edge for every finite cell of row i.
func (s *WeightedMatrix) Next(m [][]float64) (builder.Sample[core.EmptyNode, core.WeightedEdge], bool) {
	i := s.next
	if int(i) >= len(m) {
		return builder.Sample[core.EmptyNode, core.WeightedEdge]{}, false
	}
	s.next++

	var edges []core.WeightedEdge
	for j, w := range m[i] {
		if math.IsInf(w, 1) || math.IsNaN(w) {
			continue
		}
		edges = append(edges, core.NewWeightedEdge(i, uint32(j), w))
	}
	return builder.Sample[core.EmptyNode, core.WeightedEdge]{
		Nodes: []core.EmptyNode{core.NewEmptyNode(i)},
		Edges: edges,
	}, true
}

// Reset rewinds to row 0.
func (s *WeightedMatrix) Reset() { s.next = 0 }
