// SPDX-License-Identifier: MIT

package visitor

import "slices"

// progress is the snapshot handed to termination policies.
type progress struct {
	opened int
	visits int
}

func (p progress) Opened() int { return p.opened }
func (p progress) Visits() int { return p.visits }

// walkBack follows parent links from goal to a root and returns the path
// root → goal. limit bounds the walk so a corrupted parent chain cannot loop.
func walkBack(goal uint32, parent map[uint32]uint32, limit int) []uint32 {
	path := []uint32{goal}
	for cur := goal; len(path) <= limit; {
		prev, ok := parent[cur]
		if !ok || prev == cur {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)
	return path
}
