// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/hodos/core"
)

// Sentinel errors for the search runners.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrStartNotFound is returned when the start ID is not a node.
	ErrStartNotFound = errors.New("search: start node not found")

	// ErrNegativeWeight is returned by Dijkstra for a negative or NaN weight.
	ErrNegativeWeight = errors.New("search: negative edge weight")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for an unreached destination.
	ErrNoPath = errors.New("search: no path")
)

// Option configures a search run. Invalid values are recorded and surfaced as
// ErrOptionViolation when the runner is invoked.
type Option func(*Options)

// Options holds the parameters of a search run.
type Options struct {
	// Goal, when HasGoal is set, stops the run right after Goal is visited.
	Goal    uint32
	HasGoal bool

	// MaxOpened, if > 0, stops the run once that many ids were discovered.
	MaxOpened int

	// Strict halts on a popped id without adjacency entry instead of
	// treating it as a leaf.
	Strict bool

	// Logger receives the engine trace (debug) and one summary record (info).
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with no goal, no budget, leaf semantics for
// missing adjacency and no logging.
func DefaultOptions() Options {
	return Options{}
}

// WithGoal stops the run once id is visited.
func WithGoal(id uint32) Option {
	return func(o *Options) {
		o.Goal = id
		o.HasGoal = true
	}
}

// WithMaxOpened bounds the number of discovered ids.
//
//	n > 0:  stop once n ids are open
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxOpened(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxOpened cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxOpened = n
	}
}

// WithStrictAdjacency ends the run at the first popped id that has no
// adjacency entry, without visiting it.
func WithStrictAdjacency() Option {
	return func(o *Options) { o.Strict = true }
}

// WithLogger attaches a logger. A nil logger is an ErrOptionViolation.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: nil logger", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

// tracker is what Result needs from a visitor.
type tracker interface {
	Parent(id uint32) (uint32, bool)
	PathTo(goal uint32) ([]uint32, bool)
	Visited(id uint32) bool
}

// Result holds the outcome of a search run:
//   - Start: the start id.
//   - Order: ids in first-visit order.
//   - Traversal: the engine summary (visits, pushes, stop reason).
type Result struct {
	Start     uint32
	Order     []uint32
	Traversal core.TraversalResult

	track    tracker
	distance func(id uint32) (float64, bool)
}

// Parent returns the predecessor of id on its recorded path.
func (r *Result) Parent(id uint32) (uint32, bool) { return r.track.Parent(id) }

// Visited reports whether id was visited.
func (r *Result) Visited(id uint32) bool { return r.track.Visited(id) }

// Distance returns the cost of the recorded path to id: the hop count for BFS
// and DFS, the summed weight for Dijkstra.
func (r *Result) Distance(id uint32) (float64, bool) { return r.distance(id) }

// PathTo reconstructs the path from Start to dest. Returns ErrNoPath if dest
// was never reached.
func (r *Result) PathTo(dest uint32) ([]uint32, error) {
	path, ok := r.track.PathTo(dest)
	if !ok || path[0] != r.Start {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	return path, nil
}
