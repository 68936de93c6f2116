// SPDX-License-Identifier: MIT
// Package transport: sentinel error set.
// Every exported function returns one of these (optionally wrapped with
// fmt.Errorf("ctx: %w", ErrX)); callers match with errors.Is.
// No function panics on user input.

package transport

import (
	"errors"
	"fmt"
)

var (
	// ErrUnbalanced is returned by every strategy when Σsupply ≠ Σdemand.
	// No allocation is produced.
	ErrUnbalanced = errors.New("transport: unbalanced problem (total supply != total demand)")

	// ErrNoAvailableCell signals that the search space was exhausted while
	// supply or demand was still outstanding (malformed input).
	ErrNoAvailableCell = errors.New("transport: no available cell while supply/demand remain")

	// ErrNilProblem is returned when a nil *Problem is passed to a solver.
	ErrNilProblem = errors.New("transport: problem is nil")

	// ErrBadShape indicates an empty or ragged cost grid.
	ErrBadShape = errors.New("transport: cost matrix must be non-empty and rectangular")

	// ErrDimensionMismatch indicates that supply/demand lengths do not match the cost grid.
	ErrDimensionMismatch = errors.New("transport: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf in costs, supply or demand.
	ErrNaNInf = errors.New("transport: NaN or Inf encountered")

	// ErrNegativeQuantity signals a negative supply or demand entry.
	ErrNegativeQuantity = errors.New("transport: negative supply or demand")

	// ErrUnknownObjective is returned for an Objective outside {Minimize, Maximize}.
	ErrUnknownObjective = errors.New("transport: unknown objective")

	// ErrUnsupportedMethod is returned by the dispatcher for an unknown Method.
	ErrUnsupportedMethod = errors.New("transport: unsupported method")
)

// FieldError names the NewProblem input ("costs", "supply" or "demand") a
// validation failure points at. Index is the offending entry, or -1 when
// the whole field is at fault. Err is one of the sentinels above.
type FieldError struct {
	Field string
	Index int
	Value float64
	Err   error
}

func (e *FieldError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s[%d]=%g: %v", e.Field, e.Index, e.Value, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func fieldErr(field string, err error) error {
	return &FieldError{Field: field, Index: -1, Err: err}
}
