// SPDX-License-Identifier: MIT

// Package hodos builds directed graphs from arbitrary data sources and
// traverses them with interchangeable strategies.
//
// 🚀 What is hodos?
//
//	A small, generic, zero-magic toolkit that brings together:
//		• Entities & store: Node/Edge contracts and an id-keyed Graph
//		• Builders: samplers feeding admission policies into a Graph
//		• Policies: composable And/Or/Not admission and stop rules
//		• Frontiers: FIFO queue, LIFO stack, min/max heaps
//		• Visitors: first-discovery (BFS/DFS) and relaxing (Dijkstra)
//		• Runners: validated BFS, DFS and Dijkstra with path reconstruction
//
// The traversal engine knows no algorithm. BFS, DFS and Dijkstra are what
// you get by pairing a frontier with a visitor:
//
//	Queue   + visitor.Simple   → BFS
//	Stack   + visitor.Simple   → DFS
//	MinHeap + visitor.Weighted → Dijkstra
//
// Everything is organized under these subpackages:
//
//	core/       Node, Edge, Graph, Frontier and Visitor contracts, Traverse
//	frontier/   Queue, Stack, MinHeap, MaxHeap
//	policy/     Policy algebra and preset value, structural, budget and stop rules
//	builder/    Sampler contract and GraphBuilder
//	sampler/    adjacency-list, matrix, weighted-matrix and grid samplers
//	visitor/    Simple and Weighted visitors with PathTo
//	search/     BFS, DFS, Dijkstra runners with sentinel errors
//	graphfile/  YAML graph descriptions resolved into built graphs
//	cmd/hodos   command-line front end
//
// Quick ASCII example:
//
//	    0 ──1── 1 ──2── 2
//	    │               │
//	    10              3
//	    │               │
//	    4 ──────1────── 3
//
//	search.Dijkstra(g, 0, search.WithGoal(3)) → path 0 → 1 → 2 → 3, cost 6.
//
//	go get github.com/katalvlaran/hodos
package hodos
