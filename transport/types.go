// SPDX-License-Identifier: MIT

package transport

import (
	"fmt"
	"strings"
)

// Objective selects the comparison direction used everywhere a "best"
// value is chosen. It never changes how cost is accumulated.
type Objective int

const (
	// Minimize treats the grid as unit costs: lower is better.
	Minimize Objective = iota

	// Maximize treats the grid as unit profits: higher is better.
	Maximize
)

// String returns "minimize" or "maximize".
func (o Objective) String() string {
	switch o {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return fmt.Sprintf("Objective(%d)", int(o))
	}
}

// Valid reports whether o is one of the declared objectives.
func (o Objective) Valid() bool {
	return o == Minimize || o == Maximize
}

// Better reports whether a is strictly better than b under o.
// Strictness gives first-occurrence tie-breaking in row-major scans.
func (o Objective) Better(a, b float64) bool {
	if o == Maximize {
		return a > b
	}

	return a < b
}

// ParseObjective accepts min, minimize, max, maximize (case-insensitive).
func ParseObjective(s string) (Objective, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min", "minimize", "minimise", "cost":
		return Minimize, nil
	case "max", "maximize", "maximise", "profit":
		return Maximize, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownObjective, s)
	}
}

// Method identifies an initial-solution strategy.
type Method int

const (
	// NorthWestCorner fills cells from the top-left corner along a staircase path.
	NorthWestCorner Method = iota

	// GreedyCell repeatedly picks the cheapest (or most profitable) open cell.
	GreedyCell

	// VogelApproximation ranks rows/columns by penalty before picking a cell.
	VogelApproximation
)

// String returns the canonical method name.
func (m Method) String() string {
	switch m {
	case NorthWestCorner:
		return "northwest-corner"
	case GreedyCell:
		return "greedy-cell"
	case VogelApproximation:
		return "vogel-approximation"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps user-facing aliases onto a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nw", "nwc", "northwest", "north-west", "northwest-corner":
		return NorthWestCorner, nil
	case "greedy", "greedy-cell", "mincost", "min-cost", "least-cost", "maxprofit", "max-profit":
		return GreedyCell, nil
	case "vogel", "vam", "vogel-approximation":
		return VogelApproximation, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMethod, s)
	}
}

// Cell addresses one origin/destination pair (0-based).
type Cell struct {
	Row int
	Col int
}

// String renders the cell with 1-based labels, e.g. "(3, 2)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row+1, c.Col+1)
}

// Candidate is a cell that was open at a greedy decision point.
type Candidate struct {
	Cell
	Cost        float64 // unit cost or profit
	MaxQuantity float64 // min(remaining supply, remaining demand)
}

// BalanceCheck is the outcome of CheckBalance.
type BalanceCheck struct {
	TotalSupply float64
	TotalDemand float64
	Balanced    bool
}

// Shipment is one line of a cost breakdown.
type Shipment struct {
	Cell
	Quantity float64
	UnitCost float64
	LineCost float64 // Quantity * UnitCost
}
