// Package transport solves the classical transportation problem: origins
// with fixed supply, destinations with fixed demand and a per-cell unit
// cost (or profit) grid.
//
// It provides three initial-solution strategies on a validated Problem:
//
//   - NorthWest: North-West Corner rule. Ignores costs and walks a
//     staircase from cell (0,0). O(rows+cols) allocations.
//   - Greedy: Minimum-Cost / Maximum-Profit cell selection. Best open cell
//     first; ties go to the first row-major cell. O(k·rows·cols).
//   - Vogel: Vogel's Approximation Method with a greedy fallback once a
//     single row or column is left.
//
// Every run returns a Solution: the allocation grid, its total cost
// (Σ allocation·cost) and a replayable []Step trace of every decision.
// Runs are pure: a Problem is never mutated and can be solved again with
// another strategy, even after a failed run.
//
// Balance is exact (Σsupply == Σdemand, no epsilon); unbalanced problems
// fail with ErrUnbalanced before anything is allocated.
//
// The MODI optimality test and improvement loop live in package modi.
//
// Example:
//
//	p, _ := transport.NewProblem(costs, supply, demand, transport.Minimize)
//	sol, err := transport.Solve(p, transport.VogelApproximation)
package transport
