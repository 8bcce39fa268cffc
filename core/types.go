// SPDX-License-Identifier: MIT

package core

// DefaultWeight is the weight reported by edges that carry no cost.
const DefaultWeight = 1.0

// Node is anything that can be stored in a Graph.
//
// ID uniquely identifies the node within its Graph and never changes once the
// node is admitted.
type Node interface {
	ID() uint32
}

// Valued is a Node carrying an optional payload.
// Data reports false when no payload was attached.
type Valued[T any] interface {
	Node
	Data() (T, bool)
}

// Edge is a directed connection From → To with a numeric weight.
// Implementations without a cost return DefaultWeight.
type Edge interface {
	From() uint32
	To() uint32
	Weight() float64
}

// Frontier decides in which order discovered node IDs are explored.
//
// Push reports whether id was accepted; deduplicating frontiers reject ids
// they already saw. Pop reports false when nothing is pending. The engine
// always consults IsEmpty before Pop.
type Frontier interface {
	Push(id uint32, cost float64) bool
	Pop() (uint32, bool)
	IsEmpty() bool
}

// Visitor is the per-traversal state machine that owns algorithm identity.
// C is the context handed to every callback; Graph.Traverse passes the
// graph itself.
//
// Callback order for every popped id u (see Graph.Traverse):
//
//	for each edge u→v: ShouldExplore(u, v) then, if true, ExplorationCost(u, v)
//	Visit(u)
//	ShouldStop(u)
//
// InitCost is called once, for the start node, before anything else.
type Visitor[C any] interface {
	// InitCost returns the priority of the start node.
	InitCost(start uint32, ctx C) float64

	// ExplorationCost returns the priority used to push to after ShouldExplore
	// accepted from → to.
	ExplorationCost(from, to uint32, ctx C) float64

	// ShouldExplore decides whether to is pushed. It may record bookkeeping
	// (provisional parent, tentative distance) as a side effect.
	ShouldExplore(from, to uint32, ctx C) bool

	// Visit finalizes id.
	Visit(id uint32, ctx C)

	// ShouldStop is asked after every Visit.
	ShouldStop(id uint32, ctx C) bool
}

// VisitorDefaults supplies the default cost and stop behavior.
// Embed it in a visitor to inherit those defaults:
//
//	InitCost        → 0.0
//	ExplorationCost → 1.0
//	ShouldStop      → false
type VisitorDefaults[C any] struct{}

// InitCost returns 0.
func (VisitorDefaults[C]) InitCost(uint32, C) float64 { return 0 }

// ExplorationCost returns 1.
func (VisitorDefaults[C]) ExplorationCost(uint32, uint32, C) float64 { return 1 }

// ShouldStop never stops.
func (VisitorDefaults[C]) ShouldStop(uint32, C) bool { return false }
