// SPDX-License-Identifier: MIT

package graphfile

import (
	"log/slog"

	"github.com/katalvlaran/hodos/builder"
	"github.com/katalvlaran/hodos/core"
	"github.com/katalvlaran/hodos/policy"
	"github.com/katalvlaran/hodos/sampler"
)

// Graph is the kind-independent result of Build.
type Graph = core.Graph[core.Node, core.Edge]

type (
	nodePolicy = policy.Policy[core.Node, *Graph]
	edgePolicy = policy.Policy[core.Edge, *Graph]
)

// Build validates d and builds its graph. A nil logger disables builder
// logging.
func (d *Document) Build(logger *slog.Logger) (*Graph, builder.Report, error) {
	if err := d.Validate(); err != nil {
		return nil, builder.Report{}, err
	}
	var opts []builder.Option
	if logger != nil {
		opts = append(opts, builder.WithLogger(logger.With(slog.String("kind", string(d.Kind)))))
	}
	nodes, edges := d.Policies.nodePolicy(), d.Policies.edgePolicy()

	switch d.Kind {
	case KindAdjacency:
		return run(erase[sampler.AdjacencyList, core.EmptyNode, core.UnweightedEdge](sampler.NewAdjacency()), d.Adjacency, nodes, edges, opts)
	case KindMatrix:
		return run(erase[[][]bool, core.EmptyNode, core.UnweightedEdge](sampler.NewBinaryMatrix()), d.Matrix, nodes, edges, opts)
	case KindWeightedMatrix:
		return run(erase[[][]float64, core.EmptyNode, core.WeightedEdge](sampler.NewWeightedMatrix()), weights(d.Weights), nodes, edges, opts)
	default: // KindGrid, Validate rejected anything else
		conn := sampler.Conn4
		if d.Connectivity == 8 {
			conn = sampler.Conn8
		}
		return run(erase[[][]int, core.DataNode[int], core.UnweightedEdge](sampler.NewGrid[int](conn)), d.Grid, nodes, edges, opts)
	}
}

func run[C any](s builder.Sampler[C, core.Node, core.Edge], ctx C, nodes nodePolicy, edges edgePolicy, opts []builder.Option) (*Graph, builder.Report, error) {
	b := builder.New[C, core.Node, core.Edge](s, nodes, edges, opts...)
	g := b.Build(ctx)
	return g, b.Report(), nil
}

// erase lifts a concretely typed sampler to interface-typed entities.
func erase[C any, N core.Node, E core.Edge](s builder.Sampler[C, N, E]) builder.Sampler[C, core.Node, core.Edge] {
	return builder.SamplerFunc[C, core.Node, core.Edge](func(ctx C) (builder.Sample[core.Node, core.Edge], bool) {
		smp, ok := s.Next(ctx)
		if !ok {
			return builder.Sample[core.Node, core.Edge]{}, false
		}
		out := builder.Sample[core.Node, core.Edge]{
			Nodes: make([]core.Node, len(smp.Nodes)),
			Edges: make([]core.Edge, len(smp.Edges)),
		}
		for i, n := range smp.Nodes {
			out.Nodes[i] = n
		}
		for i, e := range smp.Edges {
			out.Edges[i] = e
		}
		return out, true
	})
}

// weights maps null cells to sampler.NoEdge.
func weights(rows [][]*float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = make([]float64, len(row))
		for j, w := range row {
			if w == nil {
				out[i][j] = sampler.NoEdge
				continue
			}
			out[i][j] = *w
		}
	}
	return out
}

func (p PolicyOptions) nodePolicy() nodePolicy {
	var ps []nodePolicy
	if p.MaxNodes > 0 {
		ps = append(ps, policy.NodeLimit[core.Node, core.Edge]{Max: p.MaxNodes})
	}
	if len(p.Blocked) > 0 {
		deny := policy.NewDenyNodeValue[int, core.DataNode[int], struct{}](p.Blocked...)
		ps = append(ps, policy.Func[core.Node, *Graph](func(n core.Node, _ *Graph) bool {
			cell, ok := n.(core.DataNode[int])
			return !ok || deny.IsCompliant(cell, struct{}{})
		}))
	}
	return all(ps)
}

func (p PolicyOptions) edgePolicy() edgePolicy {
	var ps []edgePolicy
	// Blocked cells are kept out as nodes; their edges must go with them.
	if p.DenyDangling || len(p.Blocked) > 0 {
		ps = append(ps, policy.DenyDanglingEdge[core.Node, core.Edge]{})
	}
	if p.DenySelfLoops {
		ps = append(ps, policy.DenySelfLoop[core.Edge, *Graph]{})
	}
	if p.DenyParallel {
		ps = append(ps, policy.DenyParallelEdge[core.Node, core.Edge]{})
	}
	if p.MinWeight != nil {
		ps = append(ps, policy.AllowWeightAbove[core.Edge, *Graph]{Threshold: *p.MinWeight})
	}
	if p.MaxWeight != nil {
		ps = append(ps, policy.AllowWeightBelow[core.Edge, *Graph]{Threshold: *p.MaxWeight})
	}
	// EdgeLimit reads the graph size, which only admitted edges grow.
	if p.MaxEdges > 0 {
		ps = append(ps, policy.EdgeLimit[core.Node, core.Edge]{Max: p.MaxEdges})
	}
	return all(ps)
}

// all folds ps with AND, left to right. Nil means admit everything.
func all[E any](ps []policy.Policy[E, *Graph]) policy.Policy[E, *Graph] {
	switch len(ps) {
	case 0:
		return nil
	case 1:
		return ps[0]
	}
	acc := policy.And[E, *Graph](ps[0], ps[1])
	for _, p := range ps[2:] {
		acc = acc.And(p)
	}
	return acc
}
