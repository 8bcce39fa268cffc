// SPDX-License-Identifier: MIT

package visitor

import (
	"slices"

	"github.com/katalvlaran/hodos/core"
	"github.com/katalvlaran/hodos/policy"
)

// Weighted relaxes tentative distances along edge weights. It reads the
// weights from the graph handed in as context.
//
// ExplorationCost(from, to) = dist(from) + w(from→to), where dist of an id
// without an entry is 0 and w is the lightest stored from→to edge (0 when
// there is none). ShouldExplore accepts only strictly smaller candidates.
// Stale priority-queue entries pop as no-ops: their edges cannot improve
// anything anymore.
type Weighted[N core.Node, E core.Edge] struct {
	dist    map[uint32]float64
	parent  map[uint32]uint32
	visited map[uint32]struct{}
	order   []uint32
	visits  int
	stop    policy.Policy[uint32, policy.Progress]
}

// NewWeighted returns a Weighted visitor stopping when stop is compliant.
func NewWeighted[N core.Node, E core.Edge](stop policy.Policy[uint32, policy.Progress]) *Weighted[N, E] {
	if stop == nil {
		stop = policy.NoTermination{}
	}
	return &Weighted[N, E]{
		dist:    make(map[uint32]float64),
		parent:  make(map[uint32]uint32),
		visited: make(map[uint32]struct{}),
		stop:    stop,
	}
}

// InitCost seeds dist(start) = 0.
func (v *Weighted[N, E]) InitCost(start uint32, _ *core.Graph[N, E]) float64 {
	if _, ok := v.dist[start]; !ok {
		v.dist[start] = 0
	}
	return v.dist[start]
}

// ExplorationCost returns dist(from) + w(from→to).
func (v *Weighted[N, E]) ExplorationCost(from, to uint32, g *core.Graph[N, E]) float64 {
	return v.dist[from] + lightest(g, from, to)
}

// ShouldExplore stores the candidate distance and parent when absent or
// strictly smaller than the current one.
func (v *Weighted[N, E]) ShouldExplore(from, to uint32, g *core.Graph[N, E]) bool {
	cand := v.ExplorationCost(from, to, g)
	if cur, ok := v.dist[to]; ok && cand >= cur {
		return false
	}
	v.dist[to] = cand
	v.parent[to] = from
	return true
}

// Visit ensures id has a distance entry and records first visits.
func (v *Weighted[N, E]) Visit(id uint32, _ *core.Graph[N, E]) {
	v.visits++
	if _, ok := v.dist[id]; !ok {
		v.dist[id] = 0
	}
	if _, ok := v.visited[id]; ok {
		return
	}
	v.visited[id] = struct{}{}
	v.order = append(v.order, id)
}

// ShouldStop delegates to the termination policy.
func (v *Weighted[N, E]) ShouldStop(id uint32, _ *core.Graph[N, E]) bool {
	return v.stop.IsCompliant(id, v.Progress())
}

// Progress returns a snapshot of the visitor's counters. Opened counts ids
// holding a distance.
func (v *Weighted[N, E]) Progress() policy.Progress {
	return progress{opened: len(v.dist), visits: v.visits}
}

// Distance returns the best known distance to id.
func (v *Weighted[N, E]) Distance(id uint32) (float64, bool) {
	d, ok := v.dist[id]
	return d, ok
}

// Parent returns the predecessor of id on its best known path.
func (v *Weighted[N, E]) Parent(id uint32) (uint32, bool) {
	p, ok := v.parent[id]
	return p, ok
}

// Visited reports whether id was visited.
func (v *Weighted[N, E]) Visited(id uint32) bool {
	_, ok := v.visited[id]
	return ok
}

// Order returns the ids in first-visit order, which for Dijkstra is
// non-decreasing distance.
func (v *Weighted[N, E]) Order() []uint32 { return slices.Clone(v.order) }

// PathTo returns the best known path root → goal, or false if goal holds no
// distance.
func (v *Weighted[N, E]) PathTo(goal uint32) ([]uint32, bool) {
	if _, ok := v.dist[goal]; !ok {
		return nil, false
	}
	return walkBack(goal, v.parent, len(v.dist)), true
}

// lightest returns the smallest weight among the edges from → to, or 0.
func lightest[N core.Node, E core.Edge](g *core.Graph[N, E], from, to uint32) float64 {
	edges, _ := g.EdgesFrom(from)
	w, found := 0.0, false
	for _, e := range edges {
		if e.To() != to {
			continue
		}
		if !found || e.Weight() < w {
			w, found = e.Weight(), true
		}
	}
	return w
}
