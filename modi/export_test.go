package modi

import "github.com/katalvlaran/lvtransport/transport"

// Test hooks for unexported helpers.
var (
	FindLoop     = findLoop
	ComputeDuals = computeDuals
)

// ShareRowsOrCols reports whether consecutive loop cells alternate
// between sharing a row and sharing a column, closing on enter.
func ShareRowsOrCols(loop []transport.Cell) bool {
	if len(loop) < 4 || len(loop)%2 != 0 {
		return false
	}
	var (
		prev = -1 // 0 row, 1 column
		k    int
	)
	for k = 0; k < len(loop); k++ {
		a, b := loop[k], loop[(k+1)%len(loop)]
		cur := -1
		switch {
		case a.Row == b.Row:
			cur = 0
		case a.Col == b.Col:
			cur = 1
		default:
			return false
		}
		if cur == prev {
			return false
		}
		prev = cur
	}

	return true
}
