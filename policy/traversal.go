// SPDX-License-Identifier: MIT

package policy

import "fmt"

// Termination policies are evaluated by visitors after each Visit with the
// visited id and a Progress snapshot; true means stop.

// GoalReached stops when the visited id equals Goal.
type GoalReached struct {
	Goal uint32
}

// IsCompliant implements Policy.
func (p GoalReached) IsCompliant(id uint32, _ Progress) bool { return id == p.Goal }

func (p GoalReached) String() string { return fmt.Sprintf("GoalReached(%d)", p.Goal) }

// NoTermination never stops.
type NoTermination struct{}

// IsCompliant returns false.
func (NoTermination) IsCompliant(uint32, Progress) bool { return false }

func (NoTermination) String() string { return "NoTermination" }

// OpeningBudget is compliant while fewer than Max ids are opened.
// Negate it, or use OpeningExhausted, to stop on the budget.
type OpeningBudget struct {
	Max int
}

// IsCompliant implements Policy.
func (p OpeningBudget) IsCompliant(_ uint32, pr Progress) bool { return pr.Opened() < p.Max }

func (p OpeningBudget) String() string { return fmt.Sprintf("OpeningBudget(%d)", p.Max) }

// OpeningExhausted is compliant once at least Max ids are opened.
type OpeningExhausted struct {
	Max int
}

// IsCompliant implements Policy.
func (p OpeningExhausted) IsCompliant(_ uint32, pr Progress) bool { return pr.Opened() >= p.Max }

func (p OpeningExhausted) String() string { return fmt.Sprintf("OpeningExhausted(%d)", p.Max) }
