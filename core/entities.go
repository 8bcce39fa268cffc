// SPDX-License-Identifier: MIT

package core

import "fmt"

// EmptyNode is a node with an identity and no payload.
type EmptyNode struct {
	id uint32
}

// NewEmptyNode returns a payload-free node.
func NewEmptyNode(id uint32) EmptyNode { return EmptyNode{id: id} }

// ID returns the node identifier.
func (n EmptyNode) ID() uint32 { return n.id }

// String implements fmt.Stringer.
func (n EmptyNode) String() string { return fmt.Sprintf("node(%d)", n.id) }

// DataNode is a node carrying a payload of type T.
// The payload may be replaced in place with SetData; the identity may not.
type DataNode[T any] struct {
	id   uint32
	data T
	set  bool
}

// NewDataNode returns a node holding data.
func NewDataNode[T any](id uint32, data T) DataNode[T] {
	return DataNode[T]{id: id, data: data, set: true}
}

// ID returns the node identifier.
func (n DataNode[T]) ID() uint32 { return n.id }

// Data returns the payload; false means the node was built without one
// (the zero DataNode).
func (n DataNode[T]) Data() (T, bool) { return n.data, n.set }

// SetData overwrites the payload.
func (n *DataNode[T]) SetData(data T) {
	n.data = data
	n.set = true
}

// String implements fmt.Stringer.
func (n DataNode[T]) String() string {
	if !n.set {
		return fmt.Sprintf("node(%d)", n.id)
	}
	return fmt.Sprintf("node(%d)=%v", n.id, n.data)
}

// UnweightedEdge is a directed edge whose weight is always DefaultWeight.
type UnweightedEdge struct {
	from, to uint32
}

// NewUnweightedEdge returns the edge from → to.
func NewUnweightedEdge(from, to uint32) UnweightedEdge {
	return UnweightedEdge{from: from, to: to}
}

// From returns the source node ID.
func (e UnweightedEdge) From() uint32 { return e.from }

// To returns the destination node ID.
func (e UnweightedEdge) To() uint32 { return e.to }

// Weight returns DefaultWeight.
func (e UnweightedEdge) Weight() float64 { return DefaultWeight }

// String implements fmt.Stringer.
func (e UnweightedEdge) String() string { return fmt.Sprintf("%d→%d", e.from, e.to) }

// WeightedEdge is a directed edge with an explicit cost.
type WeightedEdge struct {
	from, to uint32
	weight   float64
}

// NewWeightedEdge returns the edge from → to with cost weight.
func NewWeightedEdge(from, to uint32, weight float64) WeightedEdge {
	return WeightedEdge{from: from, to: to, weight: weight}
}

// From returns the source node ID.
func (e WeightedEdge) From() uint32 { return e.from }

// To returns the destination node ID.
func (e WeightedEdge) To() uint32 { return e.to }

// Weight returns the edge cost.
func (e WeightedEdge) Weight() float64 { return e.weight }

// SetWeight overwrites the edge cost.
func (e *WeightedEdge) SetWeight(w float64) { e.weight = w }

// String implements fmt.Stringer.
func (e WeightedEdge) String() string { return fmt.Sprintf("%d→%d(%g)", e.from, e.to, e.weight) }
