// SPDX-License-Identifier: MIT

// Package visitor provides the stock core.Visitor implementations.
//
//   - Simple: first-discovery bookkeeping. Paired with frontier.Queue it is a
//     BFS, with frontier.Stack a DFS.
//   - Weighted: distance relaxation. Paired with frontier.MinHeap it is
//     Dijkstra's algorithm.
//
// Both take a termination policy evaluated after every Visit against a
// policy.Progress snapshot of the visitor's own counters. A nil policy means
// policy.NoTermination.
//
// A visitor instance records one traversal. Build a fresh one per run.
package visitor
