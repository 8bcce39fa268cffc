// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hodos/core"
)

type (
	UG = core.Graph[core.EmptyNode, core.UnweightedEdge]
	DG = core.Graph[core.DataNode[string], core.WeightedEdge]
)

func TestNewGraph_Empty(t *testing.T) {
	g := core.NewGraph[core.EmptyNode, core.UnweightedEdge]()
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.Nodes())
	assert.Empty(t, g.Edges())
	assert.False(t, g.HasNode(0))
}

func TestAddNode_LastWriteWins(t *testing.T) {
	g := core.NewGraph[core.DataNode[string], core.WeightedEdge]()
	g.AddNode(core.NewDataNode(1, "first"))
	g.AddNode(core.NewDataNode(1, "second"))

	require.Equal(t, 1, g.NodeCount())
	n, ok := g.Node(1)
	require.True(t, ok)
	data, ok := n.Data()
	require.True(t, ok)
	assert.Equal(t, "second", data)
}

func TestAddEdge_DanglingAndParallelAreStored(t *testing.T) {
	g := core.NewGraph[core.DataNode[string], core.WeightedEdge]()
	g.AddEdge(core.NewWeightedEdge(7, 8, 1))
	g.AddEdge(core.NewWeightedEdge(7, 8, 2))

	assert.Zero(t, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(7, 8))
	assert.False(t, g.HasEdge(8, 7))

	edges, ok := g.EdgesFrom(7)
	require.True(t, ok)
	require.Len(t, edges, 2)
	assert.Equal(t, 1.0, edges[0].Weight(), "insertion order is kept")
	assert.Equal(t, 2.0, edges[1].Weight())
}

func TestEdgesFrom_AbsentVersusEmpty(t *testing.T) {
	g := core.NewGraph[core.EmptyNode, core.UnweightedEdge]()
	g.AddNode(core.NewEmptyNode(0))

	_, ok := g.EdgesFrom(0)
	assert.False(t, ok, "a node without edges has no adjacency entry")

	g.AddEdge(core.NewUnweightedEdge(0, 1))
	edges, ok := g.EdgesFrom(0)
	assert.True(t, ok)
	assert.Len(t, edges, 1)
}

func TestNodes_SortedByID(t *testing.T) {
	g := core.NewGraph[core.EmptyNode, core.UnweightedEdge]()
	for _, id := range []uint32{5, 1, 3, 0} {
		g.AddNode(core.NewEmptyNode(id))
	}
	var ids []uint32
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID())
	}
	assert.Equal(t, []uint32{0, 1, 3, 5}, ids)
}

func TestEdges_GroupedBySourceInInsertionOrder(t *testing.T) {
	g := core.NewGraph[core.EmptyNode, core.UnweightedEdge]()
	g.AddEdge(core.NewUnweightedEdge(2, 0))
	g.AddEdge(core.NewUnweightedEdge(0, 9))
	g.AddEdge(core.NewUnweightedEdge(2, 1))
	g.AddEdge(core.NewUnweightedEdge(0, 3))

	want := []core.UnweightedEdge{
		core.NewUnweightedEdge(0, 9),
		core.NewUnweightedEdge(0, 3),
		core.NewUnweightedEdge(2, 0),
		core.NewUnweightedEdge(2, 1),
	}
	assert.Equal(t, want, g.Edges())
}

func TestEntities(t *testing.T) {
	e := core.NewUnweightedEdge(1, 2)
	assert.Equal(t, core.DefaultWeight, e.Weight())
	assert.Equal(t, "1→2", e.String())

	w := core.NewWeightedEdge(1, 2, 0.5)
	w.SetWeight(3)
	assert.Equal(t, 3.0, w.Weight())
	assert.Equal(t, "1→2(3)", w.String())

	var n core.DataNode[int]
	_, ok := n.Data()
	assert.False(t, ok)
	assert.Equal(t, "node(0)", n.String())
	n.SetData(4)
	v, ok := n.Data()
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	assert.Equal(t, uint32(9), core.NewEmptyNode(9).ID())
	assert.Equal(t, "node(2)=x", core.NewDataNode(2, "x").String())
}
