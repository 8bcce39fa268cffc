// SPDX-License-Identifier: MIT

package frontier

import (
	"cmp"
	"container/heap"
)

// item pairs a node ID with the cost it was pushed at.
type item struct {
	id   uint32
	cost float64
}

// itemPQ is a binary heap of items; less decides min- or max-ordering.
// It implements container/heap.Interface.
type itemPQ struct {
	items []item
	less  func(a, b float64) bool
}

func (pq *itemPQ) Len() int           { return len(pq.items) }
func (pq *itemPQ) Less(i, j int) bool { return pq.less(pq.items[i].cost, pq.items[j].cost) }
func (pq *itemPQ) Swap(i, j int)      { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push is called by heap.Push; x must be an item.
func (pq *itemPQ) Push(x any) { pq.items = append(pq.items, x.(item)) }

// Pop is called by heap.Pop and removes the last element.
func (pq *itemPQ) Pop() any {
	old := pq.items
	n := len(old)
	it := old[n-1]
	pq.items = old[:n-1]
	return it
}

// MinHeap pops the lowest-cost pending id first.
// Duplicate ids are kept; see the package documentation.
type MinHeap struct {
	pq itemPQ
}

// NewMinHeap returns an empty min-priority frontier.
func NewMinHeap() *MinHeap {
	return &MinHeap{pq: itemPQ{less: func(a, b float64) bool { return cmp.Compare(a, b) < 0 }}}
}

// Push enqueues id at cost. Always accepted.
// Complexity: O(log n).
func (h *MinHeap) Push(id uint32, cost float64) bool {
	heap.Push(&h.pq, item{id: id, cost: cost})
	return true
}

// Pop removes the id with the lowest cost.
// Complexity: O(log n).
func (h *MinHeap) Pop() (uint32, bool) {
	if h.pq.Len() == 0 {
		return 0, false
	}
	return heap.Pop(&h.pq).(item).id, true
}

// Peek returns the lowest pending cost without removing it.
func (h *MinHeap) Peek() (uint32, float64, bool) {
	if h.pq.Len() == 0 {
		return 0, 0, false
	}
	top := h.pq.items[0]
	return top.id, top.cost, true
}

// IsEmpty reports whether no id is pending.
func (h *MinHeap) IsEmpty() bool { return h.pq.Len() == 0 }

// Len returns the number of pending entries, duplicates included.
func (h *MinHeap) Len() int { return h.pq.Len() }

// Reset drops every pending entry.
func (h *MinHeap) Reset() { h.pq.items = h.pq.items[:0] }

// MaxHeap pops the highest-cost pending id first.
// Duplicate ids are kept; see the package documentation.
type MaxHeap struct {
	pq itemPQ
}

// NewMaxHeap returns an empty max-priority frontier.
func NewMaxHeap() *MaxHeap {
	return &MaxHeap{pq: itemPQ{less: func(a, b float64) bool { return cmp.Compare(a, b) > 0 }}}
}

// Push enqueues id at cost. Always accepted.
func (h *MaxHeap) Push(id uint32, cost float64) bool {
	heap.Push(&h.pq, item{id: id, cost: cost})
	return true
}

// Pop removes the id with the highest cost.
func (h *MaxHeap) Pop() (uint32, bool) {
	if h.pq.Len() == 0 {
		return 0, false
	}
	return heap.Pop(&h.pq).(item).id, true
}

// Peek returns the highest pending cost without removing it.
func (h *MaxHeap) Peek() (uint32, float64, bool) {
	if h.pq.Len() == 0 {
		return 0, 0, false
	}
	top := h.pq.items[0]
	return top.id, top.cost, true
}

// IsEmpty reports whether no id is pending.
func (h *MaxHeap) IsEmpty() bool { return h.pq.Len() == 0 }

// Len returns the number of pending entries, duplicates included.
func (h *MaxHeap) Len() int { return h.pq.Len() }

// Reset drops every pending entry.
func (h *MaxHeap) Reset() { h.pq.items = h.pq.items[:0] }
