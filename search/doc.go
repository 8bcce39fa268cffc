// SPDX-License-Identifier: MIT

// Package search provides validating entry points that pair a frontier with a
// stock visitor and run core's traversal engine:
//
//	BFS       frontier.Queue   + visitor.Simple
//	DFS       frontier.Stack   + visitor.Simple
//	Dijkstra  frontier.MinHeap + visitor.Weighted
//
// Unlike Graph.Traverse, the runners check their inputs and report sentinel
// errors:
//
//	ErrGraphNil         g is nil
//	ErrStartNotFound    start is not a node of g
//	ErrNegativeWeight   Dijkstra on an edge with a negative or NaN weight
//	ErrOptionViolation  an Option was given a meaningless value
//
// They also default to core.MissingAdjacencyAsLeaf, so a node without
// outgoing edges is visited rather than ending the run. WithStrictAdjacency
// restores the engine default.
//
// Complexity:
//
//	BFS, DFS:  O(V + E)
//	Dijkstra:  O((V + E) log V) with lazy decrease-key
package search
