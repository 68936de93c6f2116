// SPDX-License-Identifier: MIT

package transport

import (
	"fmt"
	"strings"
)

// StepKind tags which procedure produced a Step.
type StepKind int

const (
	// StepNorthWest is a North-West Corner allocation.
	StepNorthWest StepKind = iota

	// StepGreedy is a Greedy-Cell allocation.
	StepGreedy

	// StepVogel is a penalty-driven Vogel allocation.
	StepVogel

	// StepVogelFallback is a greedy allocation made after Vogel ran out of
	// rows or columns to rank.
	StepVogelFallback
)

// String returns a short, stable name for the kind.
func (k StepKind) String() string {
	switch k {
	case StepNorthWest:
		return "northwest"
	case StepGreedy:
		return "greedy"
	case StepVogel:
		return "vogel"
	case StepVogelFallback:
		return "vogel-fallback"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// Side says whether a Vogel penalty belongs to a row or a column.
type Side int

const (
	// RowSide marks a row (origin) penalty.
	RowSide Side = iota

	// ColSide marks a column (destination) penalty.
	ColSide
)

// String returns "row" or "column".
func (s Side) String() string {
	if s == ColSide {
		return "column"
	}

	return "row"
}

// Penalty is one Vogel penalty; Defined is false for eliminated lines.
type Penalty struct {
	Value   float64
	Defined bool
}

// Penalties is the Vogel payload of a Step: both penalty vectors as they
// stood at the decision point, plus the winning line.
type Penalties struct {
	Rows  []Penalty
	Cols  []Penalty
	Side  Side
	Index int
	Value float64
}

// Step is one replayable allocation decision.
//
// Fields common to every kind are always set. Available is set for greedy
// and fallback steps; Penalties only for StepVogel. All slices are
// snapshots taken at record time and never aliased to solver state.
type Step struct {
	Index int // 1-based position in the trace
	Kind  StepKind

	Cell     Cell
	Cost     float64
	Quantity float64

	RemainingSupply []float64
	RemainingDemand []float64
	EliminatedRows  []bool
	EliminatedCols  []bool

	Available []Candidate
	Penalties *Penalties

	Explanation string
}

// AvailableSummary renders the open cells as "(1,1):4, (1,2):6, …".
func (s Step) AvailableSummary() string {
	parts := make([]string, 0, len(s.Available))
	for _, c := range s.Available {
		parts = append(parts, fmt.Sprintf("(%d,%d):%g", c.Row+1, c.Col+1, c.Cost))
	}

	return strings.Join(parts, ", ")
}

// Trace is the append-only step recorder shared by all strategies.
// It has no behavior beyond numbering and storing steps.
type Trace struct {
	steps []Step
}

// Record numbers s, stores it and returns the stored value.
func (t *Trace) Record(s Step) Step {
	s.Index = len(t.steps) + 1
	t.steps = append(t.steps, s)

	return s
}

// Len returns the number of recorded steps.
func (t *Trace) Len() int { return len(t.steps) }

// Steps returns a copy of the recorded steps.
func (t *Trace) Steps() []Step {
	out := make([]Step, len(t.steps))
	copy(out, t.steps)

	return out
}
