// SPDX-License-Identifier: MIT

package search

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/hodos/core"
	"github.com/katalvlaran/hodos/frontier"
	"github.com/katalvlaran/hodos/policy"
	"github.com/katalvlaran/hodos/visitor"
)

// BFS runs breadth-first search on g from start. Parents are first
// discoverers, so PathTo yields a path with the fewest edges.
// Returns ErrGraphNil, ErrStartNotFound or ErrOptionViolation for invalid
// input.
func BFS[N core.Node, E core.Edge](g *core.Graph[N, E], start uint32, opts ...Option) (*Result, error) {
	o, err := prepare(g, start, opts)
	if err != nil {
		return nil, err
	}
	v := visitor.NewSimple[*core.Graph[N, E]](o.terminate())
	res := run(g, start, frontier.NewQueue(), v, o, "bfs")
	res.track = v
	res.distance = hops(v)
	return res, nil
}

// DFS runs depth-first search on g from start, exploring the most recently
// discovered id first. Each id keeps the first parent that discovered it.
// Returns ErrGraphNil, ErrStartNotFound or ErrOptionViolation for invalid
// input.
func DFS[N core.Node, E core.Edge](g *core.Graph[N, E], start uint32, opts ...Option) (*Result, error) {
	o, err := prepare(g, start, opts)
	if err != nil {
		return nil, err
	}
	v := visitor.NewSimple[*core.Graph[N, E]](o.terminate())
	res := run(g, start, frontier.NewStack(), v, o, "dfs")
	res.track = v
	res.distance = hops(v)
	return res, nil
}

// Dijkstra computes lightest paths from start. Every edge weight is checked
// up front; ErrNegativeWeight is returned for the first negative or NaN one.
// Parallel edges count with their lightest weight.
func Dijkstra[N core.Node, E core.Edge](g *core.Graph[N, E], start uint32, opts ...Option) (*Result, error) {
	o, err := prepare(g, start, opts)
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		if w := e.Weight(); w < 0 || math.IsNaN(w) {
			return nil, fmt.Errorf("%w: %d→%d has weight %g", ErrNegativeWeight, e.From(), e.To(), w)
		}
	}
	v := visitor.NewWeighted[N, E](o.terminate())
	res := run(g, start, frontier.NewMinHeap(), v, o, "dijkstra")
	res.track = v
	res.distance = v.Distance
	return res, nil
}

// prepare resolves options and validates the common preconditions.
func prepare[N core.Node, E core.Edge](g *core.Graph[N, E], start uint32, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	if !g.HasNode(start) {
		return Options{}, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}
	return o, nil
}

// terminate builds the stop policy: goal OR opening budget.
func (o Options) terminate() policy.Policy[uint32, policy.Progress] {
	var stop policy.Policy[uint32, policy.Progress] = policy.NoTermination{}
	if o.HasGoal {
		stop = policy.GoalReached{Goal: o.Goal}
	}
	if o.MaxOpened > 0 {
		stop = policy.Or[uint32, policy.Progress](stop, policy.OpeningExhausted{Max: o.MaxOpened})
	}
	return stop
}

type ordered interface {
	Order() []uint32
}

func run[N core.Node, E core.Edge, V interface {
	core.Visitor[*core.Graph[N, E]]
	ordered
}](g *core.Graph[N, E], start uint32, f core.Frontier, v V, o Options, algo string) *Result {
	topts := []core.TraverseOption{core.WithMissingAdjacency(core.MissingAdjacencyAsLeaf)}
	if o.Strict {
		topts[0] = core.WithMissingAdjacency(core.MissingAdjacencyHalt)
	}
	if o.Logger != nil {
		topts = append(topts, core.WithTraceLogger(o.Logger))
	}

	tr := g.Traverse(start, f, nodesOnly[N, E]{v}, topts...)

	if o.Logger != nil {
		o.Logger.LogAttrs(context.Background(), slog.LevelInfo, "search: done",
			slog.String("algorithm", algo),
			slog.Uint64("start", uint64(start)),
			slog.Int("visits", tr.Visits),
			slog.Int("pushes", tr.Pushes),
			slog.String("reason", tr.Reason.String()))
	}
	return &Result{Start: start, Order: v.Order(), Traversal: tr}
}

// nodesOnly keeps the walk on stored nodes: the target of a dangling edge is
// never explored, so it is neither visited nor reported as reached.
type nodesOnly[N core.Node, E core.Edge] struct {
	core.Visitor[*core.Graph[N, E]]
}

func (v nodesOnly[N, E]) ShouldExplore(from, to uint32, g *core.Graph[N, E]) bool {
	return g.HasNode(to) && v.Visitor.ShouldExplore(from, to, g)
}

// hops measures recorded path length in edges.
func hops[C any](v *visitor.Simple[C]) func(uint32) (float64, bool) {
	return func(id uint32) (float64, bool) {
		path, ok := v.PathTo(id)
		if !ok {
			return 0, false
		}
		return float64(len(path) - 1), true
	}
}
