// SPDX-License-Identifier: MIT

// Package frontier provides the exploration-order strategies consumed by
// core.Graph.Traverse.
//
//   - Queue   – FIFO, ignores cost, rejects ids it already saw → BFS order
//   - Stack   – LIFO, ignores cost, rejects ids it already saw → DFS order
//   - MinHeap – lowest cost first, keeps duplicates → Dijkstra / uniform cost
//   - MaxHeap – highest cost first, keeps duplicates
//
// Deduplication
//
// Queue and Stack remember every id ever pushed (not only the pending ones),
// so an id is enqueued at most once per frontier lifetime. The heaps do not
// deduplicate: the same id may be pending several times at different costs,
// which relaxation-style algorithms rely on ("lazy decrease-key"). Stale
// entries are never purged; the visitor must treat them as no-ops.
//
// Ordering
//
// Heaps compare costs with cmp.Compare, a total order over float64. Pushing
// NaN is a caller error: such entries sort before every other cost and give
// no meaningful order.
//
// A frontier is single-use state for one traversal; call Reset to reuse it.
package frontier
