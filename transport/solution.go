// SPDX-License-Identifier: MIT
// Package transport - solution value and cost utilities.
//
// Design:
//   - Cost is always Σ allocation·cost in row-major order (matrix.Dot), for
//     Minimize and Maximize alike.
//   - A Solution never shares mutable storage with the solver that made it.
package transport

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtransport/matrix"
)

// Solution is a feasible shipment plan plus the trace that produced it.
//
// Allocation must be treated as read-only; use Allocation.Copy() before
// editing. FinalMethod differs from Method only for VogelApproximation runs
// whose last steps came from the greedy fallback.
type Solution struct {
	Problem     *Problem
	Method      Method
	FinalMethod Method
	Allocation  *matrix.Dense
	TotalCost   float64
	Steps       []Step
}

// TotalCost returns Σ allocation_ij·cost_ij.
//
// Errors: ErrDimensionMismatch when shapes differ, ErrNilProblem on nil input.
// Complexity: O(rows·cols).
func TotalCost(costs, allocation matrix.Matrix) (float64, error) {
	v, err := matrix.Dot(costs, allocation)
	if err != nil {
		if errors.Is(err, matrix.ErrNilMatrix) {
			return 0, fmt.Errorf("total cost: %w", ErrNilProblem)
		}

		return 0, fmt.Errorf("total cost: %w", ErrDimensionMismatch)
	}

	return v, nil
}

// Basis returns the cells with a positive allocation in row-major order.
func (s Solution) Basis() []Cell {
	return BasisOf(s.Allocation)
}

// BasisOf returns the cells of alloc holding a positive quantity, row-major.
func BasisOf(alloc *matrix.Dense) []Cell {
	if alloc == nil {
		return nil
	}
	var out []Cell
	alloc.Do(func(i, j int, v float64) bool {
		if v > 0 {
			out = append(out, Cell{Row: i, Col: j})
		}
		return true
	})

	return out
}

// IsDegenerate reports whether the plan has fewer than rows+cols−1 basic cells.
func (s Solution) IsDegenerate() bool {
	if s.Allocation == nil {
		return false
	}

	return len(s.Basis()) < s.Allocation.Rows()+s.Allocation.Cols()-1
}

// Breakdown lists every shipped cell with its line cost, row-major.
func (s Solution) Breakdown() []Shipment {
	if s.Problem == nil || s.Allocation == nil {
		return nil
	}
	basis := s.Basis()
	out := make([]Shipment, 0, len(basis))
	for _, c := range basis {
		q, _ := s.Allocation.At(c.Row, c.Col)
		unit := s.Problem.cost(c.Row, c.Col)
		out = append(out, Shipment{Cell: c, Quantity: q, UnitCost: unit, LineCost: q * unit})
	}

	return out
}

// RowSums returns the shipped quantity per origin.
func (s Solution) RowSums() []float64 {
	out, _ := matrix.RowSums(s.Allocation)

	return out
}

// ColSums returns the received quantity per destination.
func (s Solution) ColSums() []float64 {
	out, _ := matrix.ColSums(s.Allocation)

	return out
}
