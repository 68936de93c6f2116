// SPDX-License-Identifier: MIT

package modi

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtransport/matrix"
	"github.com/katalvlaran/lvtransport/transport"
)

// State is the engine state an iteration ended in.
type State int

const (
	// Testing is the dual/opportunity-cost pass; every iteration starts here.
	Testing State = iota

	// Pivoting means an entering cell was found and a pivot was applied.
	Pivoting

	// Optimal means no favorable opportunity cost remains.
	Optimal

	// Degenerate means the basis is too small to finish the test: either
	// some opportunity costs stayed undetermined with no favorable defined
	// one left, or no closed loop exists for the entering cell.
	Degenerate

	// Inconclusive means the run stopped on the pivot cap or on cycling.
	Inconclusive
)

// String returns a lower-case state name.
func (s State) String() string {
	switch s {
	case Testing:
		return "testing"
	case Pivoting:
		return "pivoting"
	case Optimal:
		return "optimal"
	case Degenerate:
		return "degenerate"
	case Inconclusive:
		return "inconclusive"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Dual is one dual variable (u for a row, v for a column).
// Known is false when propagation could not reach the line.
type Dual struct {
	Value float64
	Known bool
}

// String renders the value, or "?" when undetermined.
func (d Dual) String() string {
	if !d.Known {
		return "?"
	}

	return fmt.Sprintf("%g", d.Value)
}

// Sign is the direction θ moves through a loop cell.
type Sign int

const (
	// Plus cells receive θ.
	Plus Sign = 1

	// Minus cells give up θ.
	Minus Sign = -1
)

// String returns "+" or "-".
func (s Sign) String() string {
	if s == Minus {
		return "-"
	}

	return "+"
}

// LoopCell is one corner of a closed loop.
type LoopCell struct {
	transport.Cell
	Sign     Sign
	Quantity float64 // allocation before the pivot
}

// Iteration is the immutable record of one Testing pass and, when one
// happened, the pivot that followed it.
type Iteration struct {
	Index int // 1-based
	State State

	Allocation *matrix.Dense // allocation that was tested
	Cost       float64
	Basis      []transport.Cell
	Degenerate bool // len(Basis) < rows+cols−1

	U []Dual
	V []Dual

	// Opportunity holds c_ij − u_i − v_j for non-basic cells, 0 for basic
	// cells and NaN where a dual is undetermined.
	Opportunity *matrix.Dense

	// Undetermined counts the non-basic cells with a NaN opportunity cost.
	// An iteration can only end Optimal when it is zero.
	Undetermined int

	Entering      *transport.Cell
	EnteringValue float64

	Loop  []LoopCell
	Theta float64

	Next     *matrix.Dense // allocation after the pivot, nil if none
	NextCost float64

	Explanation string
}

// OpportunityAt returns the opportunity cost at (i, j) and whether it is
// defined.
func (it Iteration) OpportunityAt(i, j int) (float64, bool) {
	if it.Opportunity == nil {
		return 0, false
	}
	v, err := it.Opportunity.At(i, j)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}

	return v, true
}

// LoopCells returns the loop corners as plain cells.
func (it Iteration) LoopCells() []transport.Cell {
	out := make([]transport.Cell, len(it.Loop))
	for k, lc := range it.Loop {
		out[k] = lc.Cell
	}

	return out
}

// Result is the outcome of Optimize.
//
// Allocation and Cost always hold the last allocation reached, also when
// an error is returned alongside.
type Result struct {
	Iterations  []Iteration
	State       State
	Optimal     bool
	Allocation  *matrix.Dense
	Cost        float64
	InitialCost float64
	Pivots      int
}

// Improvement returns |InitialCost − Cost|.
func (r Result) Improvement() float64 {
	return math.Abs(r.InitialCost - r.Cost)
}
