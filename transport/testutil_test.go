package transport_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvtransport/transport"
	"github.com/stretchr/testify/require"
)

// Reference instance used throughout the package tests:
//
//	        D1  D2  D3 | supply
//	O1       4   6   8 |   20
//	O2       3   5   2 |   30
//	O3       9   1   7 |   25
//	demand  10  25  40
var (
	refCosts  = [][]float64{{4, 6, 8}, {3, 5, 2}, {9, 1, 7}}
	refSupply = []float64{20, 30, 25}
	refDemand = []float64{10, 25, 40}
)

// mustProblem builds a Problem or fails the test.
func mustProblem(t testing.TB, costs [][]float64, supply, demand []float64, obj transport.Objective) *transport.Problem {
	t.Helper()
	p, err := transport.NewProblem(costs, supply, demand, obj)
	require.NoError(t, err)

	return p
}

// refProblem returns the reference instance under obj.
func refProblem(t testing.TB, obj transport.Objective) *transport.Problem {
	t.Helper()

	return mustProblem(t, refCosts, refSupply, refDemand, obj)
}

// requireFeasible asserts exact row/column marginals and non-negativity.
func requireFeasible(t *testing.T, p *transport.Problem, sol transport.Solution) {
	t.Helper()
	require.Equal(t, p.Supply(), sol.RowSums(), "row sums must equal supply")
	require.Equal(t, p.Demand(), sol.ColSums(), "column sums must equal demand")
	for _, row := range sol.Allocation.ToSlices() {
		for _, v := range row {
			require.GreaterOrEqual(t, v, 0.0)
		}
	}
}

// recomputeCost sums allocation·cost independently of the package code.
func recomputeCost(costs, alloc [][]float64) float64 {
	var sum float64
	for i := range costs {
		for j := range costs[i] {
			sum += alloc[i][j] * costs[i][j]
		}
	}

	return sum
}

// randomBalanced builds an integer-valued balanced instance, so every
// subtraction performed by the strategies is exact.
func randomBalanced(r *rand.Rand, rows, cols int) ([][]float64, []float64, []float64) {
	costs := make([][]float64, rows)
	for i := range costs {
		costs[i] = make([]float64, cols)
		for j := range costs[i] {
			costs[i][j] = float64(r.Intn(20) + 1)
		}
	}

	supply := make([]float64, rows)
	total := 0
	for i := range supply {
		s := r.Intn(50) + 1
		supply[i] = float64(s)
		total += s
	}

	// Spread the same total over the destinations.
	demand := make([]float64, cols)
	left := total
	for j := 0; j < cols-1; j++ {
		d := r.Intn(left/(cols-j) + 1)
		demand[j] = float64(d)
		left -= d
	}
	demand[cols-1] = float64(left)

	return costs, supply, demand
}

var allMethods = []transport.Method{
	transport.NorthWestCorner,
	transport.GreedyCell,
	transport.VogelApproximation,
}
