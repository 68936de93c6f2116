// SPDX-License-Identifier: MIT

// Package modi checks a transportation plan for optimality and improves it
// with the modified-distribution (u-v) method and stepping-stone pivots.
//
// One iteration:
//
//  1. Basis: cells with a positive allocation.
//  2. Duals: u[0] = 0, then u_i + v_j = c_ij over the basis. Lines the
//     basis does not reach stay undetermined.
//  3. Opportunity costs: d_ij = c_ij − u_i − v_j for non-basic cells with
//     both duals known.
//  4. Optimality: Minimize stops when no d < −ε; Maximize when no d > +ε,
//     and only if every non-basic d is defined.
//  5. Entering cell: most negative (Minimize) or most positive (Maximize)
//     d, first in row-major order on ties.
//  6. Loop: alternating row/column DFS over the basis; signs +,−,+,−…
//     from the entering cell; θ = min allocation over − cells.
//  7. Pivot: add θ on + cells, subtract on − cells; a fresh allocation.
//
// Every pass yields an immutable Iteration, so callers can replay the run.
// Optimize stops after Options.MaxIterations pivots (default 10) with
// ErrIterationCapExceeded, on a repeated allocation with ErrCycling, and
// with ErrNoCircuit when no loop exists. In every case the Result still
// holds the last allocation.
//
// A basis with fewer than rows+cols−1 cells is flagged as degenerate on
// the iteration. Pivots still run on any favorable defined cell, but once
// none is left while some cells are undetermined the run ends in
// Degenerate with ErrDegenerateBasis: the plan may or may not be optimal.
//
// Example:
//
//	sol, _ := transport.Solve(p, transport.NorthWestCorner)
//	res, err := modi.Optimize(sol, p.Objective())
//	if err != nil {
//		// res still holds the best allocation reached
//	}
//	fmt.Println(res.Cost, res.Optimal)
package modi
