// SPDX-License-Identifier: MIT

// Package policy defines the predicate contract used to gate graph
// construction and traversal termination, the boolean algebra that composes
// predicates, and a set of ready-made predicates.
//
// Contract
//
// A Policy[E, C] answers IsCompliant(entity, ctx). E is the candidate (a node,
// an edge, a node ID) and C is what the predicate may inspect: the
// in-progress *core.Graph during a build, a Progress view during a
// traversal. Policies are total (they never fail) and may carry mutable
// state: a Budget decrements, a UniqueNode records what it saw. Evaluation
// therefore has side effects, and how many times and in which order a policy
// is called is part of its contract.
//
// Algebra
//
//	And(l, r)   both l and r are evaluated, left first; result l && r
//	Or(l, r)    both l and r are evaluated, left first; result l || r
//	NewNot(p)   !p
//
// Composites chain: And(a, b).Or(c) is ((a AND b) OR c), evaluated a, b, c.
// There is no short-circuit. A stateful leaf is never skipped just because the
// outcome is already known.
//
// Ownership
//
// Each child belongs to exactly one expression tree position. Constructors
// panic when the same pointer-valued leaf (or sub-expression) is placed twice
// in one tree: a shared Budget would be drained twice per decision. Value
// types without state (AllowAll{}, DenySelfLoop{}) are copied and may repeat.
//
// Presets
//
//	value       AllowAll, DenyAll, AllowNodeValue, DenyNodeValue,
//	            AllowWeightAbove, AllowWeightBelow
//	structural  DenyDanglingEdge, DenyParallelEdge, DenySelfLoop
//	mutation    DenyNodeOverride
//	uniqueness  UniqueNode, UniqueEdge
//	budget      Budget, NodeLimit, EdgeLimit
//	traversal   GoalReached, NoTermination, OpeningBudget, OpeningExhausted
package policy
