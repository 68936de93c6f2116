package modi_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtransport/modi"
	"github.com/katalvlaran/lvtransport/transport"
)

// ExampleOptimize improves a North-West Corner plan. The final plan is
// degenerate, so the run stops without claiming optimality.
func ExampleOptimize() {
	p, _ := transport.NewProblem(
		[][]float64{{4, 6, 8}, {3, 5, 2}, {9, 1, 7}},
		[]float64{20, 30, 25},
		[]float64{10, 25, 40},
		transport.Minimize,
	)
	sol, _ := transport.Solve(p, transport.NorthWestCorner)

	res, err := modi.Optimize(sol, p.Objective())
	if err != nil && !errors.Is(err, modi.ErrDegenerateBasis) {
		fmt.Println("error:", err)
		return
	}
	for _, it := range res.Iterations {
		fmt.Printf("%d %s: %s\n", it.Index, it.State, it.Explanation)
	}
	fmt.Printf("cost %g → %g, optimal=%t\n", res.InitialCost, res.Cost, res.Optimal)
	// Output:
	// 1 pivoting: enter cell (3, 2) (opportunity -9), θ = 15: cost 380 → 245
	// 2 pivoting: enter cell (1, 3) (opportunity -4), θ = 10: cost 245 → 205
	// 3 degenerate: no favorable defined opportunity cost, 4 non-basic cell(s) undetermined
	// cost 380 → 205, optimal=false
}
