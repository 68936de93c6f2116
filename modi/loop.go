// SPDX-License-Identifier: MIT

package modi

import "github.com/katalvlaran/lvtransport/transport"

// axis is the direction of one move along a loop.
type axis int

const (
	alongRow axis = iota
	alongCol
)

func (a axis) flip() axis {
	if a == alongRow {
		return alongCol
	}

	return alongRow
}

// frame is one level of the explicit DFS stack.
type frame struct {
	cell transport.Cell
	idx  int  // basis index of cell, -1 for the entering cell
	move axis // axis of the move leaving cell
	next int  // next basis index to try from cell
}

// findLoop returns the stepping-stone loop through enter, entering cell
// first, or nil when none exists. A row-first search is tried before a
// column-first one.
func findLoop(enter transport.Cell, basis []transport.Cell) []transport.Cell {
	if path := searchLoop(enter, basis, alongRow); path != nil {
		return path
	}

	return searchLoop(enter, basis, alongCol)
}

// searchLoop runs a backtracking DFS over the basic cells. Moves alternate
// between rows and columns starting with first; the loop closes when a
// cell at depth ≥ 3 lines up with enter on the closing axis.
//
// The visited set is scoped to the current path: cells are released on
// backtrack, so the result does not depend on earlier dead ends.
//
// Complexity: O(|basis|²) for a forest basis.
func searchLoop(enter transport.Cell, basis []transport.Cell, first axis) []transport.Cell {
	var (
		closing = first.flip()
		onPath  = make([]bool, len(basis))
		stack   = []frame{{cell: enter, idx: -1, move: first}}
	)
	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		k, ok := nextNeighbor(top, basis, onPath)
		if !ok {
			// Dead end: release the cell and backtrack.
			if top.idx >= 0 {
				onPath[top.idx] = false
			}
			stack = stack[:len(stack)-1]
			continue
		}
		top.next = k + 1

		child := frame{cell: basis[k], idx: k, move: top.move.flip()}
		onPath[k] = true
		stack = append(stack, child)

		if len(stack) >= 4 && child.move == closing && aligned(child.cell, enter, closing) {
			path := make([]transport.Cell, len(stack))
			for d := range stack {
				path[d] = stack[d].cell
			}

			return path
		}
	}

	return nil
}

// nextNeighbor finds the next basis cell reachable from f along f.move
// that is not already on the path.
func nextNeighbor(f *frame, basis []transport.Cell, onPath []bool) (int, bool) {
	var k int
	for k = f.next; k < len(basis); k++ {
		if onPath[k] {
			continue
		}
		b := basis[k]
		if f.move == alongRow && b.Row == f.cell.Row && b.Col != f.cell.Col {
			return k, true
		}
		if f.move == alongCol && b.Col == f.cell.Col && b.Row != f.cell.Row {
			return k, true
		}
	}

	return 0, false
}

// aligned reports whether a and b share the line selected by ax.
func aligned(a, b transport.Cell, ax axis) bool {
	if ax == alongRow {
		return a.Row == b.Row
	}

	return a.Col == b.Col
}
