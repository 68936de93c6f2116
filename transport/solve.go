// SPDX-License-Identifier: MIT
// Package transport - unified dispatcher for initial-solution strategies.
//
// This file provides the canonical entry points:
//
//   - Solve: route a Problem to the built-in strategy named by a Method.
//   - SolveWith: run any caller-supplied Strategy (e.g. a future
//     Simplex-based initializer) under the same balance guard.
//
// Design principles:
//   - Deterministic: identical input ⇒ bit-identical allocation and trace.
//   - Strict sentinels: only errors from errors.go.
//   - Fail fast: an unbalanced problem allocates nothing.
package transport

import "fmt"

// Strategy is an initial-solution procedure.
// Run must not mutate p and must return a Solution whose Allocation and
// Steps are owned by the caller.
type Strategy interface {
	Method() Method
	Run(p *Problem) (Solution, error)
}

var (
	_ Strategy = NorthWest{}
	_ Strategy = Greedy{}
	_ Strategy = Vogel{}
)

// StrategyFor returns the built-in Strategy for m.
func StrategyFor(m Method) (Strategy, error) {
	switch m {
	case NorthWestCorner:
		return NorthWest{}, nil
	case GreedyCell:
		return Greedy{}, nil
	case VogelApproximation:
		return Vogel{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, m)
	}
}

// Solve validates balance and runs the strategy selected by m.
//
// Errors: ErrNilProblem, ErrUnbalanced, ErrUnsupportedMethod, ErrNoAvailableCell.
// Complexity: per strategy (see northwest.go, greedy.go, vogel.go).
func Solve(p *Problem, m Method) (Solution, error) {
	s, err := StrategyFor(m)
	if err != nil {
		return Solution{}, err
	}

	return SolveWith(p, s)
}

// SolveWith runs s on p after the shared balance guard.
func SolveWith(p *Problem, s Strategy) (Solution, error) {
	if s == nil {
		return Solution{}, ErrUnsupportedMethod
	}
	if err := requireBalanced(p); err != nil {
		return Solution{}, err
	}

	return s.Run(p)
}
