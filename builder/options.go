// SPDX-License-Identifier: MIT
// Package: hodos/builder
//
// options.go - functional options for GraphBuilder.
//
// Contract:
//   - Option constructors validate and panic on meaningless input.
//   - Build itself never panics and never fails.

package builder

import "log/slog"

// Option customizes a GraphBuilder.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithLogger makes Build emit one debug record per sample and one info
// record per build. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
