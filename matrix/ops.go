// SPDX-License-Identifier: MIT
// Package matrix: element-wise reductions over same-shaped grids.
//
// Every function here:
//   - validates presence and shape through validators.go,
//   - takes a *Dense fast-path over the flat buffer,
//   - falls back to At for any other Matrix implementation,
//   - iterates in row-major order, so float summation order is fixed.

package matrix

import "math"

// matrixErrorf wraps a validator/sentinel error with the operation tag.
func matrixErrorf(tag string, err error) error {
	return validatorErrorf(tag, err)
}

// Dot returns the Frobenius inner product Σ a_ij·b_ij.
// For a cost matrix and an allocation plan this is the plan's total cost.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped).
// Complexity: O(r*c), O(1) extra space.
func Dot(a, b Matrix) (float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return 0, matrixErrorf("Dot", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return 0, matrixErrorf("Dot", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf("Dot", err)
	}

	var sum float64
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var idx int
			for idx = 0; idx < len(da.data); idx++ {
				sum += da.data[idx] * db.data[idx]
			}

			return sum, nil
		}
	}

	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return 0, matrixErrorf("Dot", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return 0, matrixErrorf("Dot", err)
			}
			sum += av * bv
		}
	}

	return sum, nil
}

// RowSums returns a vector s with s[i] = Σ_j m_ij.
// Complexity: O(r*c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSums", err)
	}
	out := make([]float64, m.Rows())
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf("RowSums", err)
			}
			out[i] += v
		}
	}

	return out, nil
}

// ColSums returns a vector s with s[j] = Σ_i m_ij.
// Complexity: O(r*c).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ColSums", err)
	}
	out := make([]float64, m.Cols())
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf("ColSums", err)
			}
			out[j] += v
		}
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
//   - NaN entries compare equal only to NaN at the same position.
//
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, _ = a.At(i, j)
			bv, _ = b.At(i, j)
			if math.IsNaN(av) || math.IsNaN(bv) {
				if math.IsNaN(av) != math.IsNaN(bv) {
					return false, nil
				}
				continue
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
