// SPDX-License-Identifier: MIT

package policy

import (
	"fmt"

	"github.com/katalvlaran/hodos/core"
)

// AllowAll accepts every entity.
type AllowAll[E, C any] struct{}

// IsCompliant returns true.
func (AllowAll[E, C]) IsCompliant(E, C) bool { return true }

func (AllowAll[E, C]) String() string { return "AllowAll" }

// DenyAll rejects every entity.
type DenyAll[E, C any] struct{}

// IsCompliant returns false.
func (DenyAll[E, C]) IsCompliant(E, C) bool { return false }

func (DenyAll[E, C]) String() string { return "DenyAll" }

// AllowNodeValue accepts a node only when its payload is in the allowed set.
// Nodes without a payload are rejected. Evaluation never changes the set and
// copies share it, so AddAllowedValue is seen by every copy in a tree.
type AllowNodeValue[T comparable, N core.Valued[T], C any] struct {
	allowed map[T]struct{}
}

// NewAllowNodeValue returns a policy allowing the given payloads.
func NewAllowNodeValue[T comparable, N core.Valued[T], C any](values ...T) AllowNodeValue[T, N, C] {
	p := AllowNodeValue[T, N, C]{allowed: make(map[T]struct{}, len(values))}
	for _, v := range values {
		p.allowed[v] = struct{}{}
	}
	return p
}

// AddAllowedValue extends the allowed set.
func (p AllowNodeValue[T, N, C]) AddAllowedValue(v T) { p.allowed[v] = struct{}{} }

// IsCompliant implements Policy.
func (p AllowNodeValue[T, N, C]) IsCompliant(n N, _ C) bool {
	v, ok := n.Data()
	if !ok {
		return false
	}
	_, ok = p.allowed[v]
	return ok
}

func (p AllowNodeValue[T, N, C]) String() string {
	return fmt.Sprintf("AllowNodeValue(%d)", len(p.allowed))
}

// DenyNodeValue rejects a node whose payload is in the denied set.
// Nodes without a payload are accepted. Copies share the set.
type DenyNodeValue[T comparable, N core.Valued[T], C any] struct {
	denied map[T]struct{}
}

// NewDenyNodeValue returns a policy denying the given payloads.
func NewDenyNodeValue[T comparable, N core.Valued[T], C any](values ...T) DenyNodeValue[T, N, C] {
	p := DenyNodeValue[T, N, C]{denied: make(map[T]struct{}, len(values))}
	for _, v := range values {
		p.denied[v] = struct{}{}
	}
	return p
}

// AddDeniedValue extends the denied set.
func (p DenyNodeValue[T, N, C]) AddDeniedValue(v T) { p.denied[v] = struct{}{} }

// IsCompliant implements Policy.
func (p DenyNodeValue[T, N, C]) IsCompliant(n N, _ C) bool {
	v, ok := n.Data()
	if !ok {
		return true
	}
	_, hit := p.denied[v]
	return !hit
}

func (p DenyNodeValue[T, N, C]) String() string {
	return fmt.Sprintf("DenyNodeValue(%d)", len(p.denied))
}

// AllowWeightAbove accepts edges with Weight() strictly greater than Threshold.
type AllowWeightAbove[E core.Edge, C any] struct {
	Threshold float64
}

// IsCompliant implements Policy.
func (p AllowWeightAbove[E, C]) IsCompliant(e E, _ C) bool { return e.Weight() > p.Threshold }

func (p AllowWeightAbove[E, C]) String() string {
	return fmt.Sprintf("AllowWeightAbove(%g)", p.Threshold)
}

// AllowWeightBelow accepts edges with Weight() strictly less than Threshold.
type AllowWeightBelow[E core.Edge, C any] struct {
	Threshold float64
}

// IsCompliant implements Policy.
func (p AllowWeightBelow[E, C]) IsCompliant(e E, _ C) bool { return e.Weight() < p.Threshold }

func (p AllowWeightBelow[E, C]) String() string {
	return fmt.Sprintf("AllowWeightBelow(%g)", p.Threshold)
}
