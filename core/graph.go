// SPDX-License-Identifier: MIT

package core

import "slices"

// Graph stores nodes and their outgoing edges.
//
// nodes and edges are parallel id-keyed maps: an id may have a node and no
// edge entry (a leaf as produced by most samplers), an edge entry and no node
// (a dangling source), or both.
type Graph[N Node, E Edge] struct {
	nodes map[uint32]N   // node ID → node
	edges map[uint32][]E // node ID → outgoing edges, insertion order
	count int            // total number of stored edges
}

// NewGraph returns an empty graph.
// Complexity: O(1).
func NewGraph[N Node, E Edge]() *Graph[N, E] {
	return &Graph[N, E]{
		nodes: make(map[uint32]N),
		edges: make(map[uint32][]E),
	}
}

// AddNode inserts n, overwriting any node already stored under n.ID().
// Uniqueness is not enforced here; use an admission policy for that.
// Complexity: O(1) amortized.
func (g *Graph[N, E]) AddNode(n N) {
	g.nodes[n.ID()] = n
}

// AddEdge appends e to the adjacency sequence of e.From().
// Neither endpoint has to exist.
// Complexity: O(1) amortized.
func (g *Graph[N, E]) AddEdge(e E) {
	g.edges[e.From()] = append(g.edges[e.From()], e)
	g.count++
}

// Node returns the node stored under id.
func (g *Graph[N, E]) Node(id uint32) (N, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether a node is stored under id.
func (g *Graph[N, E]) HasNode(id uint32) bool {
	_, ok := g.nodes[id]
	return ok
}

// NodeCount returns the number of stored nodes.
func (g *Graph[N, E]) NodeCount() int { return len(g.nodes) }

// Nodes returns all nodes sorted by ascending ID.
// Complexity: O(V log V).
func (g *Graph[N, E]) Nodes() []N {
	ids := make([]uint32, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]N, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.nodes[id])
	}
	return out
}

// EdgesFrom returns the outgoing edges of id in insertion order.
// The boolean is false when id has no adjacency entry at all, which is
// distinct from an entry holding zero edges.
// The returned slice is shared with the graph and must not be modified.
func (g *Graph[N, E]) EdgesFrom(id uint32) ([]E, bool) {
	es, ok := g.edges[id]
	return es, ok
}

// EdgeCount returns the number of stored edges, dangling ones included.
func (g *Graph[N, E]) EdgeCount() int { return g.count }

// Edges returns every stored edge, grouped by ascending source ID and in
// insertion order within a source.
// Complexity: O(E + S log S) where S is the number of sources.
func (g *Graph[N, E]) Edges() []E {
	srcs := make([]uint32, 0, len(g.edges))
	for id := range g.edges {
		srcs = append(srcs, id)
	}
	slices.Sort(srcs)

	out := make([]E, 0, g.count)
	for _, id := range srcs {
		out = append(out, g.edges[id]...)
	}
	return out
}

// HasEdge reports whether at least one edge from → to is stored.
// Complexity: O(out-degree(from)).
func (g *Graph[N, E]) HasEdge(from, to uint32) bool {
	for _, e := range g.edges[from] {
		if e.To() == to {
			return true
		}
	}
	return false
}
