// SPDX-License-Identifier: MIT

package policy

import "github.com/katalvlaran/hodos/core"

// DenyDanglingEdge rejects an edge unless both endpoints are already nodes of
// the graph in the context.
type DenyDanglingEdge[N core.Node, E core.Edge] struct{}

// IsCompliant implements Policy.
func (DenyDanglingEdge[N, E]) IsCompliant(e E, g *core.Graph[N, E]) bool {
	return g.HasNode(e.From()) && g.HasNode(e.To())
}

func (DenyDanglingEdge[N, E]) String() string { return "DenyDanglingEdge" }

// DenyParallelEdge rejects an edge when the graph already stores one with the
// same source and destination.
type DenyParallelEdge[N core.Node, E core.Edge] struct{}

// IsCompliant implements Policy.
func (DenyParallelEdge[N, E]) IsCompliant(e E, g *core.Graph[N, E]) bool {
	return !g.HasEdge(e.From(), e.To())
}

func (DenyParallelEdge[N, E]) String() string { return "DenyParallelEdge" }

// DenySelfLoop rejects edges whose endpoints coincide.
type DenySelfLoop[E core.Edge, C any] struct{}

// IsCompliant implements Policy.
func (DenySelfLoop[E, C]) IsCompliant(e E, _ C) bool { return e.From() != e.To() }

func (DenySelfLoop[E, C]) String() string { return "DenySelfLoop" }

// DenyNodeOverride rejects a node whose ID is already stored, stopping a
// later sample from replacing an earlier node.
type DenyNodeOverride[N core.Node, E core.Edge] struct{}

// IsCompliant implements Policy.
func (DenyNodeOverride[N, E]) IsCompliant(n N, g *core.Graph[N, E]) bool {
	return !g.HasNode(n.ID())
}

func (DenyNodeOverride[N, E]) String() string { return "DenyNodeOverride" }
