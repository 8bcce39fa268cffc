// SPDX-License-Identifier: MIT
// Package: hodos/builder
//
// builder.go - GraphBuilder and its build report.

package builder

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/hodos/core"
	"github.com/katalvlaran/hodos/policy"
)

// Report counts what the last Build did.
type Report struct {
	Samples       int
	NodesAdmitted int
	NodesRejected int
	EdgesAdmitted int
	EdgesRejected int
}

// GraphBuilder assembles graphs from a sampler under two admission policies.
// It is not safe for concurrent use.
type GraphBuilder[C any, N core.Node, E core.Edge] struct {
	sampler    Sampler[C, N, E]
	nodePolicy policy.Policy[N, *core.Graph[N, E]]
	edgePolicy policy.Policy[E, *core.Graph[N, E]]
	cfg        config
	report     Report
}

// New returns a GraphBuilder. A nil policy admits everything. Panics on a nil
// sampler.
func New[C any, N core.Node, E core.Edge](
	sampler Sampler[C, N, E],
	nodePolicy policy.Policy[N, *core.Graph[N, E]],
	edgePolicy policy.Policy[E, *core.Graph[N, E]],
	opts ...Option,
) *GraphBuilder[C, N, E] {
	if sampler == nil {
		panic("builder: New with nil sampler")
	}
	if nodePolicy == nil {
		nodePolicy = policy.AllowAll[N, *core.Graph[N, E]]{}
	}
	if edgePolicy == nil {
		edgePolicy = policy.AllowAll[E, *core.Graph[N, E]]{}
	}
	return &GraphBuilder[C, N, E]{
		sampler:    sampler,
		nodePolicy: nodePolicy,
		edgePolicy: edgePolicy,
		cfg:        newConfig(opts...),
	}
}

// Build drains the sampler and returns the admitted graph. Each node and each
// edge is offered to its policy exactly once, in sample order.
// Complexity: O(S + V·p + E·q), S samples, p and q the policy costs.
func (b *GraphBuilder[C, N, E]) Build(ctx C) *core.Graph[N, E] {
	g := core.NewGraph[N, E]()
	b.report = Report{}

	var pending []E
	for {
		s, ok := b.sampler.Next(ctx)
		if !ok {
			break
		}
		b.report.Samples++

		admitted := 0
		for _, n := range s.Nodes {
			if !b.nodePolicy.IsCompliant(n, g) {
				b.report.NodesRejected++
				continue
			}
			g.AddNode(n)
			admitted++
		}
		b.report.NodesAdmitted += admitted
		pending = append(pending, s.Edges...)

		b.log(slog.LevelDebug, "builder: sample",
			slog.Int("index", b.report.Samples-1),
			slog.Int("nodes", len(s.Nodes)),
			slog.Int("admitted", admitted),
			slog.Int("edges", len(s.Edges)))
	}

	for _, e := range pending {
		if !b.edgePolicy.IsCompliant(e, g) {
			b.report.EdgesRejected++
			continue
		}
		g.AddEdge(e)
		b.report.EdgesAdmitted++
	}

	b.log(slog.LevelInfo, "builder: built",
		slog.Int("samples", b.report.Samples),
		slog.Int("nodes", g.NodeCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("nodes_rejected", b.report.NodesRejected),
		slog.Int("edges_rejected", b.report.EdgesRejected))

	return g
}

// Report returns the counters of the last Build.
func (b *GraphBuilder[C, N, E]) Report() Report { return b.report }

func (b *GraphBuilder[C, N, E]) log(level slog.Level, msg string, attrs ...slog.Attr) {
	if b.cfg.logger == nil {
		return
	}
	b.cfg.logger.LogAttrs(context.Background(), level, msg, attrs...)
}
