// SPDX-License-Identifier: MIT

package modi

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvtransport/matrix"
	"github.com/katalvlaran/lvtransport/transport"
)

// signLoop assigns alternating signs from the entering cell and computes
// θ as the smallest allocation among Minus cells.
func signLoop(path []transport.Cell, alloc *matrix.Dense) ([]LoopCell, float64) {
	var (
		out   = make([]LoopCell, len(path))
		theta = math.Inf(1)
	)
	for k, c := range path {
		q, _ := alloc.At(c.Row, c.Col)
		s := Plus
		if k%2 == 1 {
			s = Minus
			if q < theta {
				theta = q
			}
		}
		out[k] = LoopCell{Cell: c, Sign: s, Quantity: q}
	}

	return out, theta
}

// pivot returns a fresh allocation with θ moved around the loop.
// Minus cells that reach zero leave the basis.
func pivot(alloc *matrix.Dense, loop []LoopCell, theta float64) *matrix.Dense {
	next := alloc.Copy()
	for _, lc := range loop {
		q := lc.Quantity + float64(lc.Sign)*theta
		if q < 0 {
			q = 0
		}
		_ = next.Set(lc.Row, lc.Col, q)
	}

	return next
}

// stateKey fingerprints an allocation for cycle detection.
func stateKey(alloc *matrix.Dense) string {
	var b strings.Builder
	alloc.Do(func(_, _ int, v float64) bool {
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		b.WriteByte(';')
		return true
	})

	return b.String()
}
