// SPDX-License-Identifier: MIT

package transport

import "fmt"

// Greedy is the Minimum-Cost / Maximum-Profit ("greedy cell") strategy.
//
// Each iteration scans the open cells (row and column not eliminated, both
// remaining quantities positive), takes the best one under the objective
// (first row-major occurrence on ties) and ships min(supply, demand) there.
// An exhausted row and an exhausted column may close on the same step.
//
// Complexity: O(k·rows·cols) with k ≤ rows+cols−1 allocations.
type Greedy struct{}

// Method returns GreedyCell.
func (Greedy) Method() Method { return GreedyCell }

// Run executes the greedy-cell procedure on p.
func (Greedy) Run(p *Problem) (Solution, error) {
	if err := requireBalanced(p); err != nil {
		return Solution{}, err
	}
	l := newLedger(p)
	l.greedyPhase(StepGreedy)

	return l.finish(GreedyCell, GreedyCell)
}

// greedyPhase allocates greedily until nothing is left or no cell is open.
// Vogel reuses it as its fallback over the remaining sub-matrix.
func (l *ledger) greedyPhase(kind StepKind) {
	obj := l.p.Objective()
	for l.hasWork() {
		avail := l.available()
		if len(avail) == 0 {
			return
		}
		best := pickBest(avail, obj)

		q := l.ship(best.Cell)
		l.eliminate(best.Cell)

		st := l.snapshotStep(kind, best.Cell, q)
		st.Available = avail
		st.Explanation = greedyExplanation(kind, obj, best, q)
		l.trace.Record(st)

		if l.exhausted() {
			return
		}
	}
}

// pickBest returns the first candidate with the best cost under obj.
func pickBest(cands []Candidate, obj Objective) Candidate {
	best := cands[0]
	for _, c := range cands[1:] {
		if obj.Better(c.Cost, best.Cost) {
			best = c
		}
	}

	return best
}

func greedyExplanation(kind StepKind, obj Objective, c Candidate, q float64) string {
	label := "minimum cost"
	if obj == Maximize {
		label = "maximum profit"
	}
	if kind == StepVogelFallback {
		return fmt.Sprintf("greedy fallback, %s %g at cell %s: allocate %g units", label, c.Cost, c.Cell, q)
	}

	return fmt.Sprintf("%s %g at cell %s: allocate %g units", label, c.Cost, c.Cell, q)
}
