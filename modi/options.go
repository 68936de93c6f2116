// SPDX-License-Identifier: MIT

package modi

import (
	"fmt"
	"math"
)

const (
	// DefaultMaxIterations bounds the number of pivots per Optimize call.
	DefaultMaxIterations = 10

	// DefaultEpsilon absorbs floating-point noise in the optimality test.
	DefaultEpsilon = 1e-9
)

// Option configures Optimize.
type Option func(*Options)

// Options holds the tunables of the optimality engine.
type Options struct {
	// MaxIterations caps the number of pivots. Zero only tests the input.
	MaxIterations int

	// Epsilon is the tolerance of the sign test on opportunity costs:
	// Minimize needs d < −Epsilon to improve, Maximize d > +Epsilon.
	Epsilon float64

	// DetectCycling stops with ErrCycling when a pivot returns to an
	// allocation already produced in the same run.
	DetectCycling bool
}

// DefaultOptions returns the engine defaults:
//   - MaxIterations = 10
//   - Epsilon = 1e-9
//   - DetectCycling = true
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Epsilon:       DefaultEpsilon,
		DetectCycling: true,
	}
}

// WithMaxIterations sets the pivot cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithEpsilon sets the optimality tolerance.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		o.Epsilon = eps
	}
}

// WithCycleDetection toggles repeated-state detection.
func WithCycleDetection(on bool) Option {
	return func(o *Options) {
		o.DetectCycling = on
	}
}

// validate rejects option values the engine cannot run with.
func (o Options) validate() error {
	if o.MaxIterations < 0 {
		return fmt.Errorf("MaxIterations=%d: %w", o.MaxIterations, ErrBadOptions)
	}
	if math.IsNaN(o.Epsilon) || math.IsInf(o.Epsilon, 0) || o.Epsilon < 0 {
		return fmt.Errorf("Epsilon=%g: %w", o.Epsilon, ErrBadOptions)
	}

	return nil
}
