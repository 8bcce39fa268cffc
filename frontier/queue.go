// SPDX-License-Identifier: MIT

package frontier

import "github.com/katalvlaran/hodos/core"

// Compile-time checks that every strategy satisfies core.Frontier.
var (
	_ core.Frontier = (*Queue)(nil)
	_ core.Frontier = (*Stack)(nil)
	_ core.Frontier = (*MinHeap)(nil)
	_ core.Frontier = (*MaxHeap)(nil)
)

// Queue is a first-in first-out frontier.
type Queue struct {
	pending []uint32
	head    int
	seen    map[uint32]struct{}
}

// NewQueue returns an empty FIFO frontier.
func NewQueue() *Queue {
	return &Queue{seen: make(map[uint32]struct{})}
}

// Push appends id unless it was ever pushed before. cost is ignored.
func (q *Queue) Push(id uint32, _ float64) bool {
	if _, dup := q.seen[id]; dup {
		return false
	}
	q.seen[id] = struct{}{}
	q.pending = append(q.pending, id)
	return true
}

// Pop removes the oldest pending id.
func (q *Queue) Pop() (uint32, bool) {
	if q.head >= len(q.pending) {
		return 0, false
	}
	id := q.pending[q.head]
	q.head++
	// compact once the consumed prefix dominates the backing array
	if q.head > 64 && q.head*2 >= len(q.pending) {
		q.pending = append(q.pending[:0], q.pending[q.head:]...)
		q.head = 0
	}
	return id, true
}

// IsEmpty reports whether no id is pending.
func (q *Queue) IsEmpty() bool { return q.head >= len(q.pending) }

// Len returns the number of pending ids.
func (q *Queue) Len() int { return len(q.pending) - q.head }

// Reset drops pending ids and forgets every id ever pushed.
func (q *Queue) Reset() {
	q.pending = q.pending[:0]
	q.head = 0
	clear(q.seen)
}
