// SPDX-License-Identifier: MIT

package core

import (
	"context"
	"fmt"
	"log/slog"
)

// MissingAdjacency selects what Traverse does with a popped id that has no
// adjacency entry at all.
type MissingAdjacency int

const (
	// MissingAdjacencyHalt ends the traversal without visiting the id.
	// This is the default.
	MissingAdjacencyHalt MissingAdjacency = iota

	// MissingAdjacencyAsLeaf treats an absent entry as an empty one: the id is
	// visited, has zero neighbors, and the traversal goes on.
	MissingAdjacencyAsLeaf
)

// String implements fmt.Stringer.
func (m MissingAdjacency) String() string {
	switch m {
	case MissingAdjacencyHalt:
		return "halt"
	case MissingAdjacencyAsLeaf:
		return "leaf"
	default:
		return fmt.Sprintf("MissingAdjacency(%d)", int(m))
	}
}

// StopReason tells why Traverse returned.
type StopReason int

const (
	// StopExhausted means the frontier ran empty.
	StopExhausted StopReason = iota
	// StopRequested means Visitor.ShouldStop returned true.
	StopRequested
	// StopMissingAdjacency means a popped id had no adjacency entry under
	// MissingAdjacencyHalt.
	StopMissingAdjacency
)

// String implements fmt.Stringer.
func (r StopReason) String() string {
	switch r {
	case StopExhausted:
		return "exhausted"
	case StopRequested:
		return "requested"
	case StopMissingAdjacency:
		return "missing-adjacency"
	default:
		return fmt.Sprintf("StopReason(%d)", int(r))
	}
}

// TraversalResult summarizes one Traverse call.
//   - Visits: number of Visit calls.
//   - Pushes: number of ids the frontier accepted, the start included.
//   - Last:   the last popped id (meaningful when Visits > 0 or Reason is
//     StopMissingAdjacency).
//   - Reason: why the loop ended.
type TraversalResult struct {
	Visits int
	Pushes int
	Last   uint32
	Reason StopReason
}

// TraverseOption configures a single Traverse call.
type TraverseOption func(*traverseOptions)

type traverseOptions struct {
	missing MissingAdjacency
	logger  *slog.Logger
}

func defaultTraverseOptions() traverseOptions {
	return traverseOptions{missing: MissingAdjacencyHalt}
}

// WithMissingAdjacency selects the behavior for popped ids without an
// adjacency entry. Panics on an unknown mode.
func WithMissingAdjacency(m MissingAdjacency) TraverseOption {
	if m != MissingAdjacencyHalt && m != MissingAdjacencyAsLeaf {
		panic(fmt.Sprintf("core: WithMissingAdjacency(%d): unknown mode", int(m)))
	}
	return func(o *traverseOptions) { o.missing = m }
}

// WithTraceLogger emits one debug record per engine step (start, pop, push,
// visit, stop) to l. Panics on nil.
func WithTraceLogger(l *slog.Logger) TraverseOption {
	if l == nil {
		panic("core: WithTraceLogger(nil)")
	}
	return func(o *traverseOptions) { o.logger = l }
}

// Traverse explores g from start, ordering work with f and delegating every
// decision to v.
//
// Implementation:
//  1. Push start with priority v.InitCost(start, g).
//  2. While f is not empty: pop the next id u.
//     - If u has no adjacency entry: halt (default) or treat as a leaf.
//     - For each outgoing edge u→w in insertion order, if
//     v.ShouldExplore(u, w, g) push w with v.ExplorationCost(u, w, g).
//     - v.Visit(u, g).
//     - If v.ShouldStop(u, g), return.
//
// Exactly one Visit happens per processed pop. Frontiers that keep
// duplicates (priority heaps) may pop an id more than once; idempotence is
// the visitor's job.
//
// Complexity: O(P·d) callback invocations, P = pops, d = out-degree, plus
// the frontier cost.
func (g *Graph[N, E]) Traverse(start uint32, f Frontier, v Visitor[*Graph[N, E]], opts ...TraverseOption) TraversalResult {
	o := defaultTraverseOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w := walker[N, E]{graph: g, frontier: f, visitor: v, opts: o}

	return w.run(start)
}

// walker holds the mutable state of one traversal.
type walker[N Node, E Edge] struct {
	graph    *Graph[N, E]
	frontier Frontier
	visitor  Visitor[*Graph[N, E]]
	opts     traverseOptions
	res      TraversalResult
}

func (w *walker[N, E]) run(start uint32) TraversalResult {
	cost := w.visitor.InitCost(start, w.graph)
	w.trace("traverse: start", slog.Uint64("id", uint64(start)), slog.Float64("cost", cost))
	w.push(start, cost)

	for !w.frontier.IsEmpty() {
		id, ok := w.frontier.Pop()
		if !ok {
			break
		}
		w.res.Last = id
		w.trace("traverse: pop", slog.Uint64("id", uint64(id)))

		edges, ok := w.graph.edges[id]
		if !ok && w.opts.missing == MissingAdjacencyHalt {
			w.res.Reason = StopMissingAdjacency
			w.trace("traverse: stop", slog.String("reason", w.res.Reason.String()))
			return w.res
		}
		w.explore(edges)

		w.visitor.Visit(id, w.graph)
		w.res.Visits++
		w.trace("traverse: visit", slog.Uint64("id", uint64(id)))

		if w.visitor.ShouldStop(id, w.graph) {
			w.res.Reason = StopRequested
			w.trace("traverse: stop", slog.String("reason", w.res.Reason.String()))
			return w.res
		}
	}

	w.res.Reason = StopExhausted
	w.trace("traverse: stop", slog.String("reason", w.res.Reason.String()))
	return w.res
}

// explore offers every edge of the popped id to the visitor.
func (w *walker[N, E]) explore(edges []E) {
	for _, e := range edges {
		from, to := e.From(), e.To()
		if !w.visitor.ShouldExplore(from, to, w.graph) {
			continue
		}
		w.push(to, w.visitor.ExplorationCost(from, to, w.graph))
	}
}

func (w *walker[N, E]) push(id uint32, cost float64) {
	accepted := w.frontier.Push(id, cost)
	if accepted {
		w.res.Pushes++
	}
	w.trace("traverse: push",
		slog.Uint64("id", uint64(id)),
		slog.Float64("cost", cost),
		slog.Bool("accepted", accepted))
}

func (w *walker[N, E]) trace(msg string, attrs ...slog.Attr) {
	if w.opts.logger == nil {
		return
	}
	w.opts.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
