// SPDX-License-Identifier: MIT

package transport

import (
	"fmt"

	"github.com/katalvlaran/lvtransport/matrix"
)

// ledger is the private, per-run working state of a strategy: remaining
// supply/demand, elimination flags, the allocation being built and the
// trace. Each Run creates its own ledger, so runs never share state.
type ledger struct {
	p      *Problem
	alloc  *matrix.Dense
	supply []float64
	demand []float64
	rowOut []bool
	colOut []bool
	trace  Trace
}

func newLedger(p *Problem) *ledger {
	alloc, _ := matrix.NewDense(p.Rows(), p.Cols()) // shape already validated by NewProblem

	return &ledger{
		p:      p,
		alloc:  alloc,
		supply: p.Supply(),
		demand: p.Demand(),
		rowOut: make([]bool, p.Rows()),
		colOut: make([]bool, p.Cols()),
	}
}

// ship moves min(supply[row], demand[col]) into c and returns the amount.
func (l *ledger) ship(c Cell) float64 {
	q := l.supply[c.Row]
	if l.demand[c.Col] < q {
		q = l.demand[c.Col]
	}
	prev, _ := l.alloc.At(c.Row, c.Col)
	_ = l.alloc.Set(c.Row, c.Col, prev+q)
	l.supply[c.Row] -= q
	l.demand[c.Col] -= q

	return q
}

// eliminate closes the row and/or column of c once exhausted.
// Both may close on the same step.
func (l *ledger) eliminate(c Cell) {
	if l.supply[c.Row] == 0 {
		l.rowOut[c.Row] = true
	}
	if l.demand[c.Col] == 0 {
		l.colOut[c.Col] = true
	}
}

// hasWork reports whether some supply AND some demand is still outstanding.
func (l *ledger) hasWork() bool {
	return anyPositive(l.supply) && anyPositive(l.demand)
}

// exhausted reports whether every supply and demand entry is zero.
func (l *ledger) exhausted() bool {
	return !anyPositive(l.supply) && !anyPositive(l.demand)
}

// activeRows counts rows that have not been eliminated.
func (l *ledger) activeRows() int { return countFalse(l.rowOut) }

// activeCols counts columns that have not been eliminated.
func (l *ledger) activeCols() int { return countFalse(l.colOut) }

// available lists open cells in row-major order: row and column not
// eliminated and both remaining quantities positive.
func (l *ledger) available() []Candidate {
	var (
		out  []Candidate
		i, j int
	)
	for i = 0; i < len(l.supply); i++ {
		if l.rowOut[i] || l.supply[i] <= 0 {
			continue
		}
		for j = 0; j < len(l.demand); j++ {
			if l.colOut[j] || l.demand[j] <= 0 {
				continue
			}
			q := l.supply[i]
			if l.demand[j] < q {
				q = l.demand[j]
			}
			out = append(out, Candidate{Cell: Cell{Row: i, Col: j}, Cost: l.p.cost(i, j), MaxQuantity: q})
		}
	}

	return out
}

// snapshotStep fills the state snapshots shared by every step kind.
func (l *ledger) snapshotStep(kind StepKind, c Cell, q float64) Step {
	return Step{
		Kind:            kind,
		Cell:            c,
		Cost:            l.p.cost(c.Row, c.Col),
		Quantity:        q,
		RemainingSupply: cloneFloats(l.supply),
		RemainingDemand: cloneFloats(l.demand),
		EliminatedRows:  cloneBools(l.rowOut),
		EliminatedCols:  cloneBools(l.colOut),
	}
}

// finish turns the ledger into a Solution. Leftover quantities mean the
// procedure ran out of cells and no partial plan is returned.
func (l *ledger) finish(m, final Method) (Solution, error) {
	if anyPositive(l.supply) || anyPositive(l.demand) {
		return Solution{}, fmt.Errorf("%s: %w", m, ErrNoAvailableCell)
	}
	total, err := TotalCost(l.p.costs, l.alloc)
	if err != nil {
		return Solution{}, err
	}

	return Solution{
		Problem:     l.p,
		Method:      m,
		FinalMethod: final,
		Allocation:  l.alloc,
		TotalCost:   total,
		Steps:       l.trace.Steps(),
	}, nil
}

func anyPositive(xs []float64) bool {
	for _, x := range xs {
		if x > 0 {
			return true
		}
	}

	return false
}

func countFalse(xs []bool) int {
	n := 0
	for _, x := range xs {
		if !x {
			n++
		}
	}

	return n
}
