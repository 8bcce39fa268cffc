// SPDX-License-Identifier: MIT

// Package core defines the entity contracts (Node, Edge), the Graph store and
// the generic traversal engine of hodos.
//
// The Graph G = (V,E) is an arena of two id-keyed maps:
//
//   - nodes: node ID → node value (last write wins on re-insertion)
//   - edges: node ID → outgoing edges, in insertion order
//
// Node IDs are free-standing uint32 indices, not pointers. An edge may name
// an endpoint that has no node entry (a dangling edge); the Graph stores it
// and the traversal simply never reaches past it. Rejecting dangling edges is
// a policy decision (see policy.DenyDanglingEdge), not a store invariant.
//
// Traversal
//
// Graph.Traverse drives two strategies supplied by the caller:
//
//   - Frontier  – exploration order (FIFO, LIFO, min/max priority)
//   - Visitor   – admission of neighbors, cost accumulation, visit side effects,
//     and the stop decision
//
// The engine knows nothing about BFS, DFS or Dijkstra. Pairing a FIFO queue
// with a first-discovery visitor yields BFS; a LIFO stack yields DFS; a
// min-heap with a relaxing visitor yields Dijkstra.
//
// Loop (per popped id):
//
//	pop → [no adjacency entry? → MissingAdjacency mode]
//	    → for each edge: ShouldExplore? → Push(to, ExplorationCost)
//	    → Visit → ShouldStop? → end
//
// Errors
//
// The core has no error type. Traversal cannot fail: policies are total, and
// illegal inputs (NaN priorities, a sampler's broken invariants) are caller
// preconditions.
//
// Concurrency
//
// A Graph is not safe for concurrent mutation. A traversal takes exclusive
// use of its Frontier and Visitor; neither may be shared between traversals
// running at the same time.
package core
