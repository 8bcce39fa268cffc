// SPDX-License-Identifier: MIT
// Package: hodos/builder
//
// sample.go - the unit of work a Sampler hands to the builder.

package builder

import "github.com/katalvlaran/hodos/core"

// Sample is one batch of candidate entities.
type Sample[N core.Node, E core.Edge] struct {
	Nodes []N
	Edges []E
}

// Sampler yields samples from a context until it reports false.
// Next advances the sampler's internal cursor; given the same context and
// starting state it must yield the same sequence.
type Sampler[C any, N core.Node, E core.Edge] interface {
	Next(ctx C) (Sample[N, E], bool)
}

// SamplerFunc adapts a function to Sampler.
type SamplerFunc[C any, N core.Node, E core.Edge] func(ctx C) (Sample[N, E], bool)

// Next calls f.
func (f SamplerFunc[C, N, E]) Next(ctx C) (Sample[N, E], bool) { return f(ctx) }
