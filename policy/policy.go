// SPDX-License-Identifier: MIT

package policy

import (
	"fmt"
	"reflect"
)

// Policy is a predicate over an entity evaluated in a context.
type Policy[E, C any] interface {
	IsCompliant(entity E, ctx C) bool
}

// Func adapts an ordinary function to Policy.
type Func[E, C any] func(entity E, ctx C) bool

// IsCompliant calls f.
func (f Func[E, C]) IsCompliant(entity E, ctx C) bool { return f(entity, ctx) }

// Progress is the read-only view of traversal bookkeeping handed to
// termination policies. Visitors pass a snapshot of their own state rather
// than themselves.
type Progress interface {
	// Opened returns how many distinct ids were discovered (explored or
	// visited) so far.
	Opened() int

	// Visits returns how many Visit calls happened so far.
	Visits() int
}

// Op is the boolean operator of a Composite.
type Op int

const (
	// OpAnd requires both operands.
	OpAnd Op = iota
	// OpOr requires at least one operand.
	OpOr
)

// String implements fmt.Stringer.
func (o Op) String() string {
	switch o {
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Composite is a binary node of a policy expression tree.
type Composite[E, C any] struct {
	op          Op
	left, right Policy[E, C]
}

// And returns left AND right. Panics on nil operands or when a stateful
// operand already appears elsewhere in the tree.
func And[E, C any](left, right Policy[E, C]) *Composite[E, C] {
	return compose(OpAnd, left, right)
}

// Or returns left OR right. Panics on nil operands or when a stateful
// operand already appears elsewhere in the tree.
func Or[E, C any](left, right Policy[E, C]) *Composite[E, C] {
	return compose(OpOr, left, right)
}

func compose[E, C any](op Op, left, right Policy[E, C]) *Composite[E, C] {
	if left == nil || right == nil {
		panic(fmt.Sprintf("policy: %s with nil operand", op))
	}
	mustNotAlias(left, right)
	return &Composite[E, C]{op: op, left: left, right: right}
}

// IsCompliant evaluates left then right, always both, and combines them.
func (c *Composite[E, C]) IsCompliant(entity E, ctx C) bool {
	l := c.left.IsCompliant(entity, ctx)
	r := c.right.IsCompliant(entity, ctx)
	if c.op == OpAnd {
		return l && r
	}
	return l || r
}

// And returns (c AND other).
func (c *Composite[E, C]) And(other Policy[E, C]) *Composite[E, C] {
	return And[E, C](c, other)
}

// Or returns (c OR other).
func (c *Composite[E, C]) Or(other Policy[E, C]) *Composite[E, C] {
	return Or[E, C](c, other)
}

// Op returns the operator.
func (c *Composite[E, C]) Op() Op { return c.op }

// Operands returns the left and right children.
func (c *Composite[E, C]) Operands() (Policy[E, C], Policy[E, C]) { return c.left, c.right }

// String renders the expression, e.g. "(DenyDanglingEdge AND NOT(DenySelfLoop))".
func (c *Composite[E, C]) String() string {
	return fmt.Sprintf("(%s %s %s)", describe(c.left), c.op, describe(c.right))
}

// Not negates its inner policy.
type Not[E, C any] struct {
	inner Policy[E, C]
}

// NewNot returns NOT p. Panics on nil.
func NewNot[E, C any](p Policy[E, C]) *Not[E, C] {
	if p == nil {
		panic("policy: NOT with nil operand")
	}
	return &Not[E, C]{inner: p}
}

// IsCompliant returns the negated inner result.
func (n *Not[E, C]) IsCompliant(entity E, ctx C) bool { return !n.inner.IsCompliant(entity, ctx) }

// Inner returns the negated policy.
func (n *Not[E, C]) Inner() Policy[E, C] { return n.inner }

// And returns (NOT p AND other).
func (n *Not[E, C]) And(other Policy[E, C]) *Composite[E, C] { return And[E, C](n, other) }

// Or returns (NOT p OR other).
func (n *Not[E, C]) Or(other Policy[E, C]) *Composite[E, C] { return Or[E, C](n, other) }

// String implements fmt.Stringer.
func (n *Not[E, C]) String() string { return "NOT(" + describe(n.inner) + ")" }

// describe names a tree position for String.
func describe(p any) string {
	if s, ok := p.(fmt.Stringer); ok {
		return s.String()
	}
	t := reflect.TypeOf(p)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// mustNotAlias panics when left and right share a stateful position.
func mustNotAlias[E, C any](left, right Policy[E, C]) {
	seen := make(map[uintptr]struct{})
	collect(left, seen, nil)
	collect(right, seen, func(p any) {
		panic(fmt.Sprintf("policy: %s appears twice in one expression tree", describe(p)))
	})
}

// collect walks p and records the address of every pointer-valued position.
// onDup is called when an address is already recorded; nil means record only.
func collect[E, C any](p Policy[E, C], seen map[uintptr]struct{}, onDup func(any)) {
	if addr, ok := identity(p); ok {
		if _, dup := seen[addr]; dup && onDup != nil {
			onDup(p)
		}
		seen[addr] = struct{}{}
	}
	switch n := p.(type) {
	case *Composite[E, C]:
		collect(n.left, seen, onDup)
		collect(n.right, seen, onDup)
	case *Not[E, C]:
		collect(n.inner, seen, onDup)
	}
}

// identity returns the address behind a non-nil pointer to a value that can
// hold state. Pointers to zero-size values carry no state and may share an
// address, so they are ignored.
func identity(p any) (uintptr, bool) {
	v := reflect.ValueOf(p)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return 0, false
	}
	if v.Type().Elem().Size() == 0 {
		return 0, false
	}
	return v.Pointer(), true
}
