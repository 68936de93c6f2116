// SPDX-License-Identifier: MIT
// Package transport - problem construction and validation.
//
// This file contains:
//  1. Problem: an immutable snapshot of costs, supply, demand and objective.
//  2. NewProblem: staged validation (objective → grid → vectors → values).
//  3. CheckBalance: the exact-equality balance test.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go,
//     wrapped in a *FieldError once the failing input is known.
//   - Inputs are deep-copied; accessors hand out copies.
package transport

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtransport/matrix"
)

// Problem is a validated transportation instance.
// It is immutable after construction and safe to share between solves.
type Problem struct {
	costs     *matrix.Dense
	supply    []float64
	demand    []float64
	objective Objective
}

// NewProblem validates and snapshots a transportation instance.
//
// Contract:
//   - costs must be non-empty and rectangular (rows×cols, both ≥ 1);
//   - len(supply)==rows, len(demand)==cols;
//   - every value finite, supply/demand non-negative;
//   - obj ∈ {Minimize, Maximize}.
//
// Balance is NOT checked here: an unbalanced Problem is a valid value that
// every strategy rejects with ErrUnbalanced.
//
// Complexity: O(rows·cols).
func NewProblem(costs [][]float64, supply, demand []float64, obj Objective) (*Problem, error) {
	// Stage 1: objective.
	if !obj.Valid() {
		return nil, ErrUnknownObjective
	}

	// Stage 2: cost grid shape and numeric policy.
	grid, err := matrix.NewDenseFrom(costs)
	if err != nil {
		switch {
		case errors.Is(err, matrix.ErrNaNInf):
			return nil, fieldErr("costs", ErrNaNInf)
		default:
			return nil, fieldErr("costs", ErrBadShape)
		}
	}

	// Stage 3: vector lengths.
	if err = matrix.ValidateVecLen(supply, grid.Rows()); err != nil {
		return nil, fieldErr("supply", ErrDimensionMismatch)
	}
	if err = matrix.ValidateVecLen(demand, grid.Cols()); err != nil {
		return nil, fieldErr("demand", ErrDimensionMismatch)
	}

	// Stage 4: vector values.
	if err = validateQuantities("supply", supply); err != nil {
		return nil, err
	}
	if err = validateQuantities("demand", demand); err != nil {
		return nil, err
	}

	return &Problem{
		costs:     grid,
		supply:    cloneFloats(supply),
		demand:    cloneFloats(demand),
		objective: obj,
	}, nil
}

// validateQuantities enforces finite, non-negative entries.
func validateQuantities(name string, xs []float64) error {
	if err := matrix.ValidateFinite(xs); err != nil {
		return fieldErr(name, ErrNaNInf)
	}
	var i int
	for i = 0; i < len(xs); i++ {
		if xs[i] < 0 {
			return &FieldError{Field: name, Index: i, Value: xs[i], Err: ErrNegativeQuantity}
		}
	}

	return nil
}

// Rows returns the number of origins.
func (p *Problem) Rows() int { return p.costs.Rows() }

// Cols returns the number of destinations.
func (p *Problem) Cols() int { return p.costs.Cols() }

// Objective returns the optimization direction.
func (p *Problem) Objective() Objective { return p.objective }

// Cost returns the unit cost (or profit) at (row, col).
func (p *Problem) Cost(row, col int) (float64, error) {
	return p.costs.At(row, col)
}

// Costs returns a fresh [][]float64 copy of the cost grid.
func (p *Problem) Costs() [][]float64 { return p.costs.ToSlices() }

// CostMatrix returns a copy of the cost grid as a *matrix.Dense.
func (p *Problem) CostMatrix() *matrix.Dense { return p.costs.Copy() }

// Supply returns a copy of the supply vector.
func (p *Problem) Supply() []float64 { return cloneFloats(p.supply) }

// Demand returns a copy of the demand vector.
func (p *Problem) Demand() []float64 { return cloneFloats(p.demand) }

// Balance runs CheckBalance over the problem's own vectors.
func (p *Problem) Balance() BalanceCheck { return CheckBalance(p.supply, p.demand) }

// WithObjective returns a copy of p with a different objective.
// The receiver is left untouched.
func (p *Problem) WithObjective(obj Objective) (*Problem, error) {
	if !obj.Valid() {
		return nil, ErrUnknownObjective
	}

	return &Problem{
		costs:     p.costs.Copy(),
		supply:    cloneFloats(p.supply),
		demand:    cloneFloats(p.demand),
		objective: obj,
	}, nil
}

// cost is the internal unchecked accessor; indices come from loops bounded
// by Rows()/Cols().
func (p *Problem) cost(row, col int) float64 {
	v, _ := p.costs.At(row, col)

	return v
}

// CheckBalance sums both vectors and compares them with exact equality.
// No epsilon is applied: transportation problems must be balanced exactly
// before any heuristic runs.
//
// Complexity: O(len(supply)+len(demand)).
func CheckBalance(supply, demand []float64) BalanceCheck {
	var (
		ts, td float64
		i      int
	)
	for i = 0; i < len(supply); i++ {
		ts += supply[i]
	}
	for i = 0; i < len(demand); i++ {
		td += demand[i]
	}

	return BalanceCheck{TotalSupply: ts, TotalDemand: td, Balanced: ts == td}
}

// requireBalanced is the shared entry guard of every strategy.
func requireBalanced(p *Problem) error {
	if p == nil {
		return ErrNilProblem
	}
	if bc := p.Balance(); !bc.Balanced {
		return fmt.Errorf("supply %g, demand %g: %w", bc.TotalSupply, bc.TotalDemand, ErrUnbalanced)
	}

	return nil
}

func cloneFloats(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)

	return out
}

func cloneBools(xs []bool) []bool {
	out := make([]bool, len(xs))
	copy(out, xs)

	return out
}
