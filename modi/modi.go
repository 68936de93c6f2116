// SPDX-License-Identifier: MIT
// Package modi - the optimality loop.
//
// State machine per call:
//
//	Testing ──optimal──────────────▶ Optimal
//	   │
//	   ├─undetermined cells left───▶ Degenerate   (ErrDegenerateBasis)
//	   ├─cap reached───────────────▶ Inconclusive (ErrIterationCapExceeded)
//	   ├─no loop───────────────────▶ Degenerate   (ErrNoCircuit)
//	   └─pivot──▶ Pivoting ──▶ Testing
//	                 └─state seen──▶ Inconclusive (ErrCycling)
package modi

import (
	"fmt"

	"github.com/katalvlaran/lvtransport/matrix"
	"github.com/katalvlaran/lvtransport/transport"
)

// Optimize improves sol with the modified-distribution method until no
// favorable opportunity cost remains.
//
// Contract:
//   - sol.Problem and sol.Allocation must be set and shaped alike;
//   - obj selects the sign test (Minimize: d < −ε improves; Maximize: d > +ε);
//   - sol is never mutated; every iteration owns fresh matrices.
//
// Optimal is reported only when every non-basic opportunity cost is
// defined. A degenerate plan whose defined cells no longer improve stops
// in Degenerate with ErrDegenerateBasis instead.
//
// On ErrDegenerateBasis, ErrIterationCapExceeded, ErrCycling and
// ErrNoCircuit the returned Result still carries every iteration and the
// last allocation reached.
//
// Errors: ErrNilSolution, ErrBadOptions, transport.ErrUnknownObjective,
// transport.ErrDimensionMismatch, ErrDegenerateBasis, ErrNoCircuit,
// ErrIterationCapExceeded, ErrCycling.
// Complexity: O(MaxIterations·(rows+cols)·rows·cols).
func Optimize(sol transport.Solution, obj transport.Objective, opts ...Option) (Result, error) {
	// Stage 1: options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}

	// Stage 2: input.
	if sol.Problem == nil || sol.Allocation == nil {
		return Result{}, ErrNilSolution
	}
	if !obj.Valid() {
		return Result{}, transport.ErrUnknownObjective
	}
	p := sol.Problem
	if sol.Allocation.Rows() != p.Rows() || sol.Allocation.Cols() != p.Cols() {
		return Result{}, fmt.Errorf("allocation %dx%d, problem %dx%d: %w",
			sol.Allocation.Rows(), sol.Allocation.Cols(), p.Rows(), p.Cols(), transport.ErrDimensionMismatch)
	}

	// Stage 3: iterate.
	var (
		alloc = sol.Allocation.Copy()
		costs = p.CostMatrix()
		seen  = map[string]struct{}{stateKey(alloc): {}}
		res   Result
	)
	cost, err := transport.TotalCost(costs, alloc)
	if err != nil {
		return Result{}, err
	}
	res.InitialCost = cost

	finish := func(s State, err error) (Result, error) {
		res.State = s
		res.Optimal = s == Optimal
		res.Allocation = alloc
		res.Cost = cost

		return res, err
	}

	for {
		it := test(p, alloc, cost, obj, o.Epsilon)
		it.Index = len(res.Iterations) + 1

		if it.Entering == nil && it.Undetermined > 0 {
			it.State = Degenerate
			it.Explanation = fmt.Sprintf("no favorable defined opportunity cost, %d non-basic cell(s) undetermined",
				it.Undetermined)
			res.Iterations = append(res.Iterations, it)

			return finish(Degenerate, ErrDegenerateBasis)
		}

		if it.Entering == nil {
			it.State = Optimal
			it.Explanation = "no favorable opportunity cost remains"
			res.Iterations = append(res.Iterations, it)

			return finish(Optimal, nil)
		}

		if res.Pivots >= o.MaxIterations {
			it.State = Inconclusive
			it.Explanation = fmt.Sprintf("cell %s could still improve by %g, pivot cap %d reached",
				*it.Entering, it.EnteringValue, o.MaxIterations)
			res.Iterations = append(res.Iterations, it)

			return finish(Inconclusive, ErrIterationCapExceeded)
		}

		path := findLoop(*it.Entering, it.Basis)
		if path == nil {
			it.State = Degenerate
			it.Explanation = fmt.Sprintf("no closed loop through cell %s", *it.Entering)
			res.Iterations = append(res.Iterations, it)

			return finish(Degenerate, fmt.Errorf("cell %s: %w", *it.Entering, ErrNoCircuit))
		}

		it.Loop, it.Theta = signLoop(path, alloc)
		next := pivot(alloc, it.Loop, it.Theta)
		nextCost, err := transport.TotalCost(costs, next)
		if err != nil {
			return Result{}, err
		}
		it.Next, it.NextCost = next, nextCost
		it.State = Pivoting
		it.Explanation = fmt.Sprintf("enter cell %s (opportunity %g), θ = %g: cost %g → %g",
			*it.Entering, it.EnteringValue, it.Theta, cost, nextCost)
		res.Iterations = append(res.Iterations, it)
		res.Pivots++

		alloc, cost = next.Copy(), nextCost

		if o.DetectCycling {
			key := stateKey(alloc)
			if _, dup := seen[key]; dup {
				return finish(Inconclusive, ErrCycling)
			}
			seen[key] = struct{}{}
		}
	}
}

// test runs one Testing pass: basis, duals, opportunity grid and the
// entering cell, if any.
func test(p *transport.Problem, alloc *matrix.Dense, cost float64, obj transport.Objective, eps float64) Iteration {
	basis := transport.BasisOf(alloc)
	u, v := computeDuals(p, basis)
	grid, unknown := opportunityGrid(p, alloc, u, v)

	it := Iteration{
		State:        Testing,
		Allocation:   alloc.Copy(),
		Cost:         cost,
		Basis:        basis,
		Degenerate:   len(basis) < p.Rows()+p.Cols()-1,
		U:            u,
		V:            v,
		Opportunity:  grid,
		Undetermined: unknown,
	}
	if c, d, ok := chooseEntering(grid, alloc, obj, eps); ok {
		it.Entering, it.EnteringValue = &c, d
	}

	return it
}
