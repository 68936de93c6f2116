package transport_test

import (
	"testing"

	"github.com/katalvlaran/lvtransport/transport"
	"github.com/stretchr/testify/require"
)

// TestNorthWest_Reference follows the staircase path of the reference instance.
func TestNorthWest_Reference(t *testing.T) {
	p := refProblem(t, transport.Minimize)
	sol, err := transport.NorthWest{}.Run(p)
	require.NoError(t, err)

	require.Equal(t, [][]float64{
		{10, 10, 0},
		{0, 15, 15},
		{0, 0, 25},
	}, sol.Allocation.ToSlices())
	require.Equal(t, 380.0, sol.TotalCost)
	require.Equal(t, transport.NorthWestCorner, sol.Method)
	require.Equal(t, transport.NorthWestCorner, sol.FinalMethod)
	requireFeasible(t, p, sol)

	wantCells := []transport.Cell{{0, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 2}}
	wantQty := []float64{10, 10, 15, 15, 25}
	require.Len(t, sol.Steps, len(wantCells))
	for k, st := range sol.Steps {
		require.Equal(t, k+1, st.Index)
		require.Equal(t, transport.StepNorthWest, st.Kind)
		require.Equal(t, wantCells[k], st.Cell)
		require.Equal(t, wantQty[k], st.Quantity)
		require.Nil(t, st.Penalties)
	}

	// Snapshots are taken after the allocation.
	first := sol.Steps[0]
	require.Equal(t, []float64{10, 30, 25}, first.RemainingSupply)
	require.Equal(t, []float64{0, 25, 40}, first.RemainingDemand)
	require.Equal(t, []bool{false, false, false}, first.EliminatedRows)
	require.Equal(t, []bool{true, false, false}, first.EliminatedCols)
	require.Equal(t, "allocate 10 units to cell (1, 1)", first.Explanation)

	// A non-degenerate staircase has exactly rows+cols-1 cells.
	require.False(t, sol.IsDegenerate())
}

// TestNorthWest_IgnoresObjective produces the same plan for both objectives.
func TestNorthWest_IgnoresObjective(t *testing.T) {
	minSol, err := transport.Solve(refProblem(t, transport.Minimize), transport.NorthWestCorner)
	require.NoError(t, err)
	maxSol, err := transport.Solve(refProblem(t, transport.Maximize), transport.NorthWestCorner)
	require.NoError(t, err)

	require.Equal(t, minSol.Allocation.ToSlices(), maxSol.Allocation.ToSlices())
	require.Equal(t, minSol.TotalCost, maxSol.TotalCost)
}

// TestNorthWest_SimultaneousExhaustion moves diagonally when row and column
// close together, leaving a degenerate plan.
func TestNorthWest_SimultaneousExhaustion(t *testing.T) {
	p := mustProblem(t,
		[][]float64{{1, 2}, {3, 4}},
		[]float64{5, 5}, []float64{5, 5},
		transport.Minimize)
	sol, err := transport.NorthWest{}.Run(p)
	require.NoError(t, err)

	require.Equal(t, [][]float64{{5, 0}, {0, 5}}, sol.Allocation.ToSlices())
	require.Len(t, sol.Steps, 2)
	require.Equal(t, []bool{true, false}, sol.Steps[0].EliminatedRows)
	require.Equal(t, []bool{true, false}, sol.Steps[0].EliminatedCols)
	require.True(t, sol.IsDegenerate())
}

// TestNorthWest_ZeroSupplySkipsRow records no step for a zero quantity.
func TestNorthWest_ZeroSupplySkipsRow(t *testing.T) {
	p := mustProblem(t,
		[][]float64{{1, 2}, {3, 4}},
		[]float64{0, 10}, []float64{5, 5},
		transport.Minimize)
	sol, err := transport.NorthWest{}.Run(p)
	require.NoError(t, err)

	require.Equal(t, [][]float64{{0, 0}, {5, 5}}, sol.Allocation.ToSlices())
	require.Len(t, sol.Steps, 2)
	require.Equal(t, transport.Cell{Row: 1, Col: 0}, sol.Steps[0].Cell)
	require.Equal(t, 35.0, sol.TotalCost)
}

func TestNorthWest_SingleCell(t *testing.T) {
	p := mustProblem(t, [][]float64{{7}}, []float64{3}, []float64{3}, transport.Minimize)
	sol, err := transport.NorthWest{}.Run(p)
	require.NoError(t, err)
	require.Equal(t, 21.0, sol.TotalCost)
	require.Len(t, sol.Steps, 1)
}
