// SPDX-License-Identifier: MIT

package frontier

// Stack is a last-in first-out frontier.
type Stack struct {
	pending []uint32
	seen    map[uint32]struct{}
}

// NewStack returns an empty LIFO frontier.
func NewStack() *Stack {
	return &Stack{seen: make(map[uint32]struct{})}
}

// Push places id on top unless it was ever pushed before. cost is ignored.
func (s *Stack) Push(id uint32, _ float64) bool {
	if _, dup := s.seen[id]; dup {
		return false
	}
	s.seen[id] = struct{}{}
	s.pending = append(s.pending, id)
	return true
}

// Pop removes the most recently pushed id.
func (s *Stack) Pop() (uint32, bool) {
	n := len(s.pending)
	if n == 0 {
		return 0, false
	}
	id := s.pending[n-1]
	s.pending = s.pending[:n-1]
	return id, true
}

// IsEmpty reports whether no id is pending.
func (s *Stack) IsEmpty() bool { return len(s.pending) == 0 }

// Len returns the number of pending ids.
func (s *Stack) Len() int { return len(s.pending) }

// Reset drops pending ids and forgets every id ever pushed.
func (s *Stack) Reset() {
	s.pending = s.pending[:0]
	clear(s.seen)
}
