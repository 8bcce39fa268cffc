// SPDX-License-Identifier: MIT

package policy

import (
	"fmt"

	"github.com/katalvlaran/hodos/core"
)

// UniqueNode accepts each node ID the first time it is offered and rejects it
// afterwards. Every call records the ID, accepted or not.
type UniqueNode[N core.Node, C any] struct {
	seen map[uint32]struct{}
}

// NewUniqueNode returns an empty UniqueNode.
func NewUniqueNode[N core.Node, C any]() *UniqueNode[N, C] {
	return &UniqueNode[N, C]{seen: make(map[uint32]struct{})}
}

// IsCompliant implements Policy.
func (p *UniqueNode[N, C]) IsCompliant(n N, _ C) bool { return p.Add(n.ID()) }

// Add records id and reports whether it was new.
func (p *UniqueNode[N, C]) Add(id uint32) bool {
	if _, ok := p.seen[id]; ok {
		return false
	}
	p.seen[id] = struct{}{}
	return true
}

// Len returns how many distinct IDs were recorded.
func (p *UniqueNode[N, C]) Len() int { return len(p.seen) }

func (p *UniqueNode[N, C]) String() string { return fmt.Sprintf("UniqueNode(%d)", len(p.seen)) }

type edgeKey struct{ from, to uint32 }

// UniqueEdge accepts each (From, To) pair the first time it is offered.
type UniqueEdge[E core.Edge, C any] struct {
	seen map[edgeKey]struct{}
}

// NewUniqueEdge returns an empty UniqueEdge.
func NewUniqueEdge[E core.Edge, C any]() *UniqueEdge[E, C] {
	return &UniqueEdge[E, C]{seen: make(map[edgeKey]struct{})}
}

// IsCompliant implements Policy.
func (p *UniqueEdge[E, C]) IsCompliant(e E, _ C) bool { return p.Add(e.From(), e.To()) }

// Add records from → to and reports whether the pair was new.
func (p *UniqueEdge[E, C]) Add(from, to uint32) bool {
	k := edgeKey{from, to}
	if _, ok := p.seen[k]; ok {
		return false
	}
	p.seen[k] = struct{}{}
	return true
}

// Len returns how many distinct pairs were recorded.
func (p *UniqueEdge[E, C]) Len() int { return len(p.seen) }

func (p *UniqueEdge[E, C]) String() string { return fmt.Sprintf("UniqueEdge(%d)", len(p.seen)) }
