// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Each facade delegates to the canonical implementation; no logic duplication.

package matrix

import "fmt"

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2).
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows())
}

// Product multiplies a chain of matrices left to right: ms[0]·ms[1]·…·ms[k-1].
// A single operand is returned as a clone.
//
// Errors:
//   - ErrNilMatrix (empty chain or nil operand), ErrDimensionMismatch.
//
// Complexity:
//   - Sum of the pairwise Mul costs.
func Product(ms ...Matrix) (Matrix, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf("Product", ErrNilMatrix)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, matrixErrorf("Product", err)
	}
	acc := ms[0].Clone()
	var err error
	for i := 1; i < len(ms); i++ {
		if acc, err = Mul(acc, ms[i]); err != nil {
			return nil, matrixErrorf("Product", fmt.Errorf("operand %d: %w", i, err))
		}
	}

	return acc, nil
}

// Gram returns mᵀ·m, the matrix of pairwise column inner products.
// Complexity: O(r*c^2).
func Gram(m Matrix) (Matrix, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("Gram", err)
	}
	g, err := Mul(mt, m)
	if err != nil {
		return nil, matrixErrorf("Gram", err)
	}

	return g, nil
}

// Column copies column j of m into a new slice.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(r), Space O(r).
func Column(m Matrix, j int) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Column", err)
	}
	if j < 0 || j >= m.Cols() {
		return nil, matrixErrorf("Column", ErrOutOfRange)
	}
	out := make([]float64, m.Rows())
	var err error
	for i := range out {
		if out[i], err = m.At(i, j); err != nil {
			return nil, matrixErrorf("Column", err)
		}
	}

	return out, nil
}

// FromColumns builds an n×k matrix whose j-th column is cols[j].
// All columns must share the same non-zero length.
//
// Errors:
//   - ErrInvalidDimensions, ErrRaggedRows, ErrNaNInf.
//
// Complexity:
//   - Time O(n*k), Space O(n*k).
func FromColumns(cols [][]float64) (*Dense, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, matrixErrorf("FromColumns", ErrInvalidDimensions)
	}
	n, k := len(cols[0]), len(cols)
	out, err := NewDense(n, k)
	if err != nil {
		return nil, matrixErrorf("FromColumns", err)
	}
	for j := 0; j < k; j++ {
		if len(cols[j]) != n {
			return nil, matrixErrorf("FromColumns", fmt.Errorf("column %d: %w", j, ErrRaggedRows))
		}
		for i := 0; i < n; i++ {
			if err = out.Set(i, j, cols[j][i]); err != nil {
				return nil, matrixErrorf("FromColumns", err)
			}
		}
	}

	return out, nil
}
