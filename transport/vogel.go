// SPDX-License-Identifier: MIT

package transport

import (
	"fmt"
	"math"
	"sort"
)

// Vogel is Vogel's Approximation Method.
//
// While more than one row AND more than one column are active:
//  1. For every active line collect the costs of its active cross lines.
//     Penalty = |first − second| after sorting in objective order (two
//     lowest under Minimize, two highest under Maximize); one value ⇒ 0;
//     eliminated line ⇒ undefined.
//  2. Pick the winning line, rows scanned before columns, first occurrence
//     on ties: Minimize ⇒ LARGEST penalty, Maximize ⇒ SMALLEST penalty.
//  3. In that line take the best cell among cross lines with remaining
//     quantity and ship min(supply, demand).
//  4. Eliminate exhausted lines and record the step with both penalty vectors.
//
// When one row or one column remains (or the winning line offers no cell)
// the greedy procedure finishes the remaining sub-matrix; those steps are
// tagged StepVogelFallback and Solution.FinalMethod becomes GreedyCell.
//
// The Maximize rule in step 2 ranks by the smallest penalty, unlike the
// usual textbook rule. It is kept on purpose and pinned by tests.
//
// Complexity: O(k·(rows+cols)·max(rows,cols)·log) with k ≤ rows+cols−1.
type Vogel struct{}

// Method returns VogelApproximation.
func (Vogel) Method() Method { return VogelApproximation }

// Run executes Vogel's Approximation Method on p.
func (Vogel) Run(p *Problem) (Solution, error) {
	if err := requireBalanced(p); err != nil {
		return Solution{}, err
	}

	var (
		l        = newLedger(p)
		obj      = p.Objective()
		fallback bool
	)
	for !l.exhausted() {
		if l.activeRows() <= 1 || l.activeCols() <= 1 {
			fallback = true
			break
		}

		pen := l.penalties()
		if !selectPenalty(&pen, obj) {
			fallback = true
			break
		}
		c, ok := l.bestInLine(pen.Side, pen.Index)
		if !ok {
			fallback = true
			break
		}

		q := l.ship(c)
		l.eliminate(c)

		st := l.snapshotStep(StepVogel, c, q)
		st.Penalties = &pen
		st.Explanation = fmt.Sprintf("%s %d penalty = %g: allocate %g units to cell %s",
			pen.Side, pen.Index+1, pen.Value, q, c)
		l.trace.Record(st)
	}

	final := VogelApproximation
	if fallback && l.hasWork() {
		l.greedyPhase(StepVogelFallback)
		final = GreedyCell
	}

	return l.finish(VogelApproximation, final)
}

// penalties computes the row and column penalty vectors for the current
// elimination state. Only elimination flags decide which costs take part.
func (l *ledger) penalties() Penalties {
	var (
		obj  = l.p.Objective()
		rows = len(l.supply)
		cols = len(l.demand)
		pen  = Penalties{Rows: make([]Penalty, rows), Cols: make([]Penalty, cols)}
		buf  = make([]float64, 0, max(rows, cols))
		i, j int
	)
	for i = 0; i < rows; i++ {
		if l.rowOut[i] {
			continue
		}
		buf = buf[:0]
		for j = 0; j < cols; j++ {
			if !l.colOut[j] {
				buf = append(buf, l.p.cost(i, j))
			}
		}
		pen.Rows[i] = linePenalty(buf, obj)
	}
	for j = 0; j < cols; j++ {
		if l.colOut[j] {
			continue
		}
		buf = buf[:0]
		for i = 0; i < rows; i++ {
			if !l.rowOut[i] {
				buf = append(buf, l.p.cost(i, j))
			}
		}
		pen.Cols[j] = linePenalty(buf, obj)
	}

	return pen
}

// linePenalty sorts costs in objective order and returns |c[0] − c[1]|.
func linePenalty(costs []float64, obj Objective) Penalty {
	switch len(costs) {
	case 0:
		return Penalty{}
	case 1:
		return Penalty{Value: 0, Defined: true}
	}
	sort.Slice(costs, func(a, b int) bool { return obj.Better(costs[a], costs[b]) })

	return Penalty{Value: math.Abs(costs[0] - costs[1]), Defined: true}
}

// selectPenalty writes the winning line into pen and reports whether any
// defined penalty existed.
func selectPenalty(pen *Penalties, obj Objective) bool {
	var (
		best  = math.Inf(-1)
		found bool
	)
	if obj == Maximize {
		best = math.Inf(1)
	}
	wins := func(v float64) bool {
		if obj == Maximize {
			return v < best
		}
		return v > best
	}

	for i, p := range pen.Rows {
		if p.Defined && wins(p.Value) {
			best, found = p.Value, true
			pen.Side, pen.Index, pen.Value = RowSide, i, p.Value
		}
	}
	for j, p := range pen.Cols {
		if p.Defined && wins(p.Value) {
			best, found = p.Value, true
			pen.Side, pen.Index, pen.Value = ColSide, j, p.Value
		}
	}

	return found
}

// bestInLine returns the best cell of the chosen line whose cross line is
// active and still has a positive remaining quantity.
func (l *ledger) bestInLine(side Side, idx int) (Cell, bool) {
	var (
		obj  = l.p.Objective()
		best = math.Inf(1)
		out  Cell
		ok   bool
		k    int
	)
	if obj == Maximize {
		best = math.Inf(-1)
	}

	if side == RowSide {
		for k = 0; k < len(l.demand); k++ {
			if l.colOut[k] || l.demand[k] <= 0 {
				continue
			}
			if c := l.p.cost(idx, k); obj.Better(c, best) {
				best, out, ok = c, Cell{Row: idx, Col: k}, true
			}
		}

		return out, ok
	}

	for k = 0; k < len(l.supply); k++ {
		if l.rowOut[k] || l.supply[k] <= 0 {
			continue
		}
		if c := l.p.cost(k, idx); obj.Better(c, best) {
			best, out, ok = c, Cell{Row: k, Col: idx}, true
		}
	}

	return out, ok
}
