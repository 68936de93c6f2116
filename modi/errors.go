// SPDX-License-Identifier: MIT

package modi

import "errors"

var (
	// ErrNilSolution is returned when the input Solution has no Problem or
	// no Allocation.
	ErrNilSolution = errors.New("modi: solution is nil or incomplete")

	// ErrNoCircuit signals that no closed loop exists for the entering cell.
	// The basis is degenerate or otherwise irregular; nothing is retried.
	ErrNoCircuit = errors.New("modi: no closed loop for entering cell")

	// ErrDegenerateBasis signals that no favorable cell was found among the
	// defined opportunity costs while some non-basic cells stayed
	// undetermined, so optimality cannot be proven. The plan is feasible
	// and returned as is.
	ErrDegenerateBasis = errors.New("modi: degenerate basis, optimality undetermined")

	// ErrIterationCapExceeded is returned when the pivot cap is reached
	// without optimality. The last allocation is still returned.
	ErrIterationCapExceeded = errors.New("modi: iteration cap exceeded, optimization inconclusive")

	// ErrCycling is returned when a pivot reproduces an allocation already
	// seen in the same run.
	ErrCycling = errors.New("modi: allocation state repeated")

	// ErrBadOptions indicates a negative iteration cap or an invalid epsilon.
	ErrBadOptions = errors.New("modi: invalid options")
)
