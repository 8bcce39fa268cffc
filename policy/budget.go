// SPDX-License-Identifier: MIT

package policy

import (
	"fmt"

	"github.com/katalvlaran/hodos/core"
)

// Budget accepts exactly the first n evaluations and rejects every later one,
// whatever the entity.
type Budget[E, C any] struct {
	remaining int
}

// NewBudget returns a Budget of n acceptances. Panics if n < 0.
func NewBudget[E, C any](n int) *Budget[E, C] {
	if n < 0 {
		panic(fmt.Sprintf("policy: NewBudget(%d): negative budget", n))
	}
	return &Budget[E, C]{remaining: n}
}

// IsCompliant consumes one unit when any is left.
func (b *Budget[E, C]) IsCompliant(E, C) bool {
	if b.remaining == 0 {
		return false
	}
	b.remaining--
	return true
}

// Add grows the budget by n. Panics if n < 0.
func (b *Budget[E, C]) Add(n int) {
	if n < 0 {
		panic(fmt.Sprintf("policy: Budget.Add(%d): negative amount", n))
	}
	b.remaining += n
}

// Remaining returns how many acceptances are left.
func (b *Budget[E, C]) Remaining() int { return b.remaining }

func (b *Budget[E, C]) String() string { return fmt.Sprintf("Budget(%d)", b.remaining) }

// NodeLimit accepts a node while the graph holds fewer than Max nodes.
type NodeLimit[N core.Node, E core.Edge] struct {
	Max int
}

// IsCompliant implements Policy.
func (p NodeLimit[N, E]) IsCompliant(_ N, g *core.Graph[N, E]) bool { return g.NodeCount() < p.Max }

func (p NodeLimit[N, E]) String() string { return fmt.Sprintf("NodeLimit(%d)", p.Max) }

// EdgeLimit accepts an edge while the graph holds fewer than Max edges.
type EdgeLimit[N core.Node, E core.Edge] struct {
	Max int
}

// IsCompliant implements Policy.
func (p EdgeLimit[N, E]) IsCompliant(_ E, g *core.Graph[N, E]) bool { return g.EdgeCount() < p.Max }

func (p EdgeLimit[N, E]) String() string { return fmt.Sprintf("EdgeLimit(%d)", p.Max) }
