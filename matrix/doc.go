// Package matrix provides the small dense-grid toolkit used by the
// transportation engine: cost matrices, allocation plans and
// opportunity-cost grids are all r×c row-major float64 grids.
//
// The package provides:
//
//   - Dense: a row-major float64 grid with bounds-checked At/Set and deep Clone.
//   - Validators: nil/shape/vector-length/finite-value guards returning sentinels.
//   - Element-wise helpers: Dot (Σ a_ij·b_ij), RowSums, ColSums, AllClose.
//
// Every public function returns a sentinel from errors.go on misuse; nothing
// panics on user input. Loops run in fixed row-major order, so results are
// bit-for-bit reproducible for a given input.
package matrix
