// SPDX-License-Identifier: MIT

package visitor

import (
	"slices"

	"github.com/katalvlaran/hodos/policy"
)

// Simple admits each id once, on first discovery, and remembers who
// discovered it. C is the traversal context, usually *core.Graph[N, E]; Simple
// never looks at it.
type Simple[C any] struct {
	parent     map[uint32]uint32   // child → discoverer
	discovered map[uint32]struct{} // every id seen so far, roots included
	visited    map[uint32]struct{}
	order      []uint32
	visits     int
	stop       policy.Policy[uint32, policy.Progress]
}

// NewSimple returns a Simple visitor stopping when stop is compliant.
func NewSimple[C any](stop policy.Policy[uint32, policy.Progress]) *Simple[C] {
	if stop == nil {
		stop = policy.NoTermination{}
	}
	return &Simple[C]{
		parent:     make(map[uint32]uint32),
		discovered: make(map[uint32]struct{}),
		visited:    make(map[uint32]struct{}),
		stop:       stop,
	}
}

// InitCost marks start as discovered without a parent.
func (v *Simple[C]) InitCost(start uint32, _ C) float64 {
	v.discovered[start] = struct{}{}
	return 0
}

// ExplorationCost returns 1 for every hop.
func (v *Simple[C]) ExplorationCost(uint32, uint32, C) float64 { return 1 }

// ShouldExplore is true only for an id never seen before; that first
// discovery records from as the parent of to.
func (v *Simple[C]) ShouldExplore(from, to uint32, _ C) bool {
	if _, seen := v.discovered[to]; seen {
		return false
	}
	v.discovered[to] = struct{}{}
	v.parent[to] = from
	return true
}

// Visit marks id visited, without a parent if it was never discovered.
func (v *Simple[C]) Visit(id uint32, _ C) {
	v.visits++
	v.discovered[id] = struct{}{}
	if _, ok := v.visited[id]; ok {
		return
	}
	v.visited[id] = struct{}{}
	v.order = append(v.order, id)
}

// ShouldStop delegates to the termination policy.
func (v *Simple[C]) ShouldStop(id uint32, _ C) bool {
	return v.stop.IsCompliant(id, v.Progress())
}

// Progress returns a snapshot of the visitor's counters.
func (v *Simple[C]) Progress() policy.Progress {
	return progress{opened: len(v.discovered), visits: v.visits}
}

// Parent returns the discoverer of id. Roots and unseen ids have none.
func (v *Simple[C]) Parent(id uint32) (uint32, bool) {
	p, ok := v.parent[id]
	return p, ok
}

// Discovered reports whether id was ever seen.
func (v *Simple[C]) Discovered(id uint32) bool {
	_, ok := v.discovered[id]
	return ok
}

// Visited reports whether id was visited.
func (v *Simple[C]) Visited(id uint32) bool {
	_, ok := v.visited[id]
	return ok
}

// Order returns the ids in first-visit order.
func (v *Simple[C]) Order() []uint32 { return slices.Clone(v.order) }

// PathTo returns the discovery path root → goal, or false if goal was never
// discovered. A discovered but unvisited goal still has a path.
func (v *Simple[C]) PathTo(goal uint32) ([]uint32, bool) {
	if !v.Discovered(goal) {
		return nil, false
	}
	return walkBack(goal, v.parent, len(v.discovered)), true
}
