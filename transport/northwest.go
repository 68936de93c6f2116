// SPDX-License-Identifier: MIT

package transport

import "fmt"

// NorthWest is the North-West Corner strategy.
//
// Algorithm:
//  1. Start the cursor at (0,0) with private copies of supply and demand.
//  2. While the cursor is inside the grid, ship min(supply[row], demand[col])
//     into the cursor cell; record a step only when that amount is positive.
//  3. Advance: both exhausted ⇒ row+1 and col+1; else supply exhausted ⇒
//     row+1; else demand exhausted ⇒ col+1.
//  4. Stop when row == rows or col == cols.
//
// The advance order fixes the staircase path and therefore the plan.
// Costs and objective are ignored while allocating.
//
// Complexity: O(rows+cols) steps, O(rows·cols) for snapshots and cost.
type NorthWest struct{}

// Method returns NorthWestCorner.
func (NorthWest) Method() Method { return NorthWestCorner }

// Run executes the North-West Corner rule on p.
func (NorthWest) Run(p *Problem) (Solution, error) {
	if err := requireBalanced(p); err != nil {
		return Solution{}, err
	}

	var (
		l        = newLedger(p)
		row, col int
		rows     = p.Rows()
		cols     = p.Cols()
	)
	for row < rows && col < cols {
		c := Cell{Row: row, Col: col}
		if q := min(l.supply[row], l.demand[col]); q > 0 {
			l.ship(c)
			l.eliminate(c)
			st := l.snapshotStep(StepNorthWest, c, q)
			st.Explanation = fmt.Sprintf("allocate %g units to cell %s", q, c)
			l.trace.Record(st)
		}

		switch {
		case l.supply[row] == 0 && l.demand[col] == 0:
			row++
			col++
		case l.supply[row] == 0:
			row++
		case l.demand[col] == 0:
			col++
		default:
			// Unreachable for non-negative inputs; keeps the loop bounded.
			row++
		}
	}

	return l.finish(NorthWestCorner, NorthWestCorner)
}
