package transport_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvtransport/transport"
	"github.com/stretchr/testify/require"
)

// TestNewProblem_Validation walks every validation stage in order.
func TestNewProblem_Validation(t *testing.T) {
	cases := []struct {
		name   string
		costs  [][]float64
		supply []float64
		demand []float64
		obj    transport.Objective
		want   error
		field  string
	}{
		{"unknown objective", refCosts, refSupply, refDemand, transport.Objective(7), transport.ErrUnknownObjective, ""},
		{"nil costs", nil, refSupply, refDemand, transport.Minimize, transport.ErrBadShape, "costs"},
		{"ragged costs", [][]float64{{1, 2}, {3}}, []float64{1, 1}, []float64{1, 1}, transport.Minimize, transport.ErrBadShape, "costs"},
		{"NaN cost", [][]float64{{1, math.NaN()}}, []float64{2}, []float64{1, 1}, transport.Minimize, transport.ErrNaNInf, "costs"},
		{"short supply", refCosts, []float64{1, 2}, refDemand, transport.Minimize, transport.ErrDimensionMismatch, "supply"},
		{"long demand", refCosts, refSupply, []float64{1, 2, 3, 4}, transport.Minimize, transport.ErrDimensionMismatch, "demand"},
		{"Inf supply", refCosts, []float64{math.Inf(1), 1, 1}, refDemand, transport.Minimize, transport.ErrNaNInf, "supply"},
		{"negative demand", refCosts, refSupply, []float64{10, -25, 40}, transport.Minimize, transport.ErrNegativeQuantity, "demand"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := transport.NewProblem(tc.costs, tc.supply, tc.demand, tc.obj)
			require.ErrorIs(t, err, tc.want)

			var fe *transport.FieldError
			if tc.field == "" {
				require.False(t, errors.As(err, &fe))
				return
			}
			require.ErrorAs(t, err, &fe)
			require.Equal(t, tc.field, fe.Field)
		})
	}
}

// TestNewProblem_FieldErrorEntry points at the offending entry.
func TestNewProblem_FieldErrorEntry(t *testing.T) {
	_, err := transport.NewProblem(refCosts, refSupply, []float64{10, -25, 40}, transport.Minimize)

	var fe *transport.FieldError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "demand", fe.Field)
	require.Equal(t, 1, fe.Index)
	require.Equal(t, -25.0, fe.Value)
	require.Equal(t, "demand[1]=-25: transport: negative supply or demand", err.Error())

	_, err = transport.NewProblem(refCosts, []float64{1, 2}, refDemand, transport.Minimize)
	require.ErrorAs(t, err, &fe)
	require.Equal(t, -1, fe.Index)
	require.Equal(t, "supply: transport: dimension mismatch", err.Error())
}

// TestNewProblem_AnyPositiveShape accepts shapes outside the 2..6 UI range.
func TestNewProblem_AnyPositiveShape(t *testing.T) {
	p, err := transport.NewProblem([][]float64{{3}}, []float64{4}, []float64{4}, transport.Minimize)
	require.NoError(t, err)
	require.Equal(t, 1, p.Rows())
	require.Equal(t, 1, p.Cols())

	costs := make([][]float64, 8)
	for i := range costs {
		costs[i] = make([]float64, 9)
	}
	_, err = transport.NewProblem(costs, make([]float64, 8), make([]float64, 9), transport.Maximize)
	require.NoError(t, err)
}

// TestProblem_Immutable proves inputs are copied in and out.
func TestProblem_Immutable(t *testing.T) {
	costs := [][]float64{{1, 2}, {3, 4}}
	supply := []float64{5, 5}
	demand := []float64{4, 6}
	p := mustProblem(t, costs, supply, demand, transport.Minimize)

	costs[0][0] = 100
	supply[0] = 100
	p.Demand()[0] = 100
	p.Costs()[1][1] = 100

	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, p.Costs())
	require.Equal(t, []float64{5, 5}, p.Supply())
	require.Equal(t, []float64{4, 6}, p.Demand())

	v, err := p.Cost(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
	_, err = p.Cost(2, 0)
	require.Error(t, err)
}

// TestProblem_WithObjective leaves the receiver untouched.
func TestProblem_WithObjective(t *testing.T) {
	p := refProblem(t, transport.Minimize)
	q, err := p.WithObjective(transport.Maximize)
	require.NoError(t, err)
	require.Equal(t, transport.Minimize, p.Objective())
	require.Equal(t, transport.Maximize, q.Objective())
	require.Equal(t, p.Costs(), q.Costs())

	_, err = p.WithObjective(transport.Objective(-1))
	require.ErrorIs(t, err, transport.ErrUnknownObjective)
}

// TestCheckBalance uses exact equality.
func TestCheckBalance(t *testing.T) {
	bc := transport.CheckBalance(refSupply, refDemand)
	require.Equal(t, transport.BalanceCheck{TotalSupply: 75, TotalDemand: 75, Balanced: true}, bc)

	bc = transport.CheckBalance([]float64{10, 5}, []float64{7, 7})
	require.False(t, bc.Balanced)
	require.Equal(t, 15.0, bc.TotalSupply)
	require.Equal(t, 14.0, bc.TotalDemand)

	// No epsilon: 0.1+0.2 != 0.3 in binary floating point.
	require.False(t, transport.CheckBalance([]float64{0.1, 0.2}, []float64{0.3}).Balanced)

	require.True(t, transport.CheckBalance(nil, nil).Balanced)
}

func TestParseObjectiveAndMethod(t *testing.T) {
	for in, want := range map[string]transport.Objective{
		"min": transport.Minimize, "Minimize": transport.Minimize,
		"MAX": transport.Maximize, " maximize ": transport.Maximize,
	} {
		got, err := transport.ParseObjective(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := transport.ParseObjective("sideways")
	require.ErrorIs(t, err, transport.ErrUnknownObjective)

	for in, want := range map[string]transport.Method{
		"nw": transport.NorthWestCorner, "northwest": transport.NorthWestCorner,
		"greedy": transport.GreedyCell, "min-cost": transport.GreedyCell,
		"vogel": transport.VogelApproximation, "VAM": transport.VogelApproximation,
	} {
		got, err := transport.ParseMethod(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err = transport.ParseMethod("simplex")
	require.ErrorIs(t, err, transport.ErrUnsupportedMethod)

	require.Equal(t, "vogel-approximation", transport.VogelApproximation.String())
	require.Equal(t, "maximize", transport.Maximize.String())
	require.Equal(t, "(3, 2)", transport.Cell{Row: 2, Col: 1}.String())
}
