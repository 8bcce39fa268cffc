// SPDX-License-Identifier: MIT
// Package: hodos/builder
//
// Package builder turns a Sampler's output into a core.Graph, admitting every
// candidate node and edge through a policy.
//
// Build loop (one pass):
//
//	for sample, ok := sampler.Next(ctx); ok; ... {
//	    for each node: if nodePolicy.IsCompliant(node, graph) → graph.AddNode
//	    buffer sample edges
//	}
//	for each buffered edge: if edgePolicy.IsCompliant(edge, graph) → graph.AddEdge
//
// Nodes are judged against the graph as built so far. Edges are held back
// until every node is in, so an edge policy such as policy.DenyDanglingEdge
// sees the complete node set no matter in which sample an endpoint arrived.
//
// Samplers are stateful cursors. A second Build on the same GraphBuilder
// continues where the sampler stopped, usually yielding an empty graph;
// reset the sampler (the stock ones have Reset) to build again.
package builder
