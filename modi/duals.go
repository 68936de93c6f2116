// SPDX-License-Identifier: MIT

package modi

import (
	"math"

	"github.com/katalvlaran/lvtransport/matrix"
	"github.com/katalvlaran/lvtransport/transport"
)

// computeDuals solves u_i + v_j = c_ij over the basic cells with u[0] = 0.
//
// Each pass scans the basis in row-major order and fixes the missing side
// of any cell with exactly one known side. Passes stop when nothing
// changes or after rows+cols passes; unreached lines stay unknown.
//
// Complexity: O((rows+cols)·|basis|).
func computeDuals(p *transport.Problem, basis []transport.Cell) ([]Dual, []Dual) {
	var (
		u    = make([]Dual, p.Rows())
		v    = make([]Dual, p.Cols())
		pass int
	)
	u[0] = Dual{Value: 0, Known: true}

	for pass = 0; pass < p.Rows()+p.Cols(); pass++ {
		changed := false
		for _, c := range basis {
			cost, _ := p.Cost(c.Row, c.Col)
			switch {
			case u[c.Row].Known && !v[c.Col].Known:
				v[c.Col] = Dual{Value: cost - u[c.Row].Value, Known: true}
				changed = true
			case v[c.Col].Known && !u[c.Row].Known:
				u[c.Row] = Dual{Value: cost - v[c.Col].Value, Known: true}
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return u, v
}

// opportunityGrid returns c_ij − u_i − v_j for non-basic cells, 0 for basic
// cells and NaN where either dual is unknown, plus the number of NaN cells.
func opportunityGrid(p *transport.Problem, alloc *matrix.Dense, u, v []Dual) (*matrix.Dense, int) {
	grid, _ := matrix.NewDense(p.Rows(), p.Cols())
	var (
		i, j    int
		unknown int
	)
	for i = 0; i < p.Rows(); i++ {
		for j = 0; j < p.Cols(); j++ {
			if q, _ := alloc.At(i, j); q > 0 {
				continue
			}
			if !u[i].Known || !v[j].Known {
				_ = grid.Set(i, j, math.NaN())
				unknown++
				continue
			}
			cost, _ := p.Cost(i, j)
			_ = grid.Set(i, j, cost-u[i].Value-v[j].Value)
		}
	}

	return grid, unknown
}

// chooseEntering returns the most favorable defined opportunity cost
// beyond ±eps, first in row-major order on ties. ok is false when no
// defined cell improves the plan; undefined cells are never chosen.
func chooseEntering(grid *matrix.Dense, alloc *matrix.Dense, obj transport.Objective, eps float64) (cell transport.Cell, value float64, ok bool) {
	best := -eps
	if obj == transport.Maximize {
		best = eps
	}
	grid.Do(func(i, j int, d float64) bool {
		if math.IsNaN(d) {
			return true
		}
		if q, _ := alloc.At(i, j); q > 0 {
			return true
		}
		if obj.Better(d, best) {
			best, cell, value, ok = d, transport.Cell{Row: i, Col: j}, d, true
		}
		return true
	})

	return cell, value, ok
}
