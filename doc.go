// SPDX-License-Identifier: MIT

// Package lvtransport solves the classical balanced transportation problem:
// ship goods from origins (rows, with supply) to destinations (columns, with
// demand) so that the total unit cost is minimal, or the total profit maximal.
//
// The module is organized as a small stack of packages:
//
//	matrix/         dense float64 grid, validators and row/column reductions
//	transport/      Problem, balance check and the three initial strategies
//	                (North-West Corner, Greedy-Cell, Vogel Approximation),
//	                each with a replayable step trace
//	modi/           MODI (u-v) optimality test and stepping-stone pivots
//	internal/       config loading (YAML), logging, rendering, build info
//	cmd/transport/  the "transport" command-line tool
//	examples/       runnable scenarios
//
// Typical use:
//
//	p, err := transport.NewProblem(costs, supply, demand, transport.Minimize)
//	if err != nil {
//		return err
//	}
//	sol, err := transport.Solve(p, transport.VogelApproximation)
//	if err != nil {
//		return err
//	}
//	res, err := modi.Optimize(sol, p.Objective())
//
// Every solver is deterministic, never mutates its inputs and reports
// failures through sentinel errors matched with errors.Is.
package lvtransport
