// SPDX-License-Identifier: MIT
// Package matrix - tolerance utility.
//
// Purpose:
//   - One place for every epsilon-based decision made on top of this package:
//     element-wise closeness, integrality, orthogonality and scalar sign.
//   - All helpers take an explicit absolute tolerance; relative scaling (e.g.
//     by a lattice metric) is the caller's job.
//
// Determinism:
//   - Fixed i→j scans with early exit on the first violation.

package matrix

import "math"

const (
	opAllClose     = "AllClose"
	opIsIntegral   = "IsIntegral"
	opRound        = "Round"
	opIsOrthogonal = "IsOrthogonal"
	opBilinear     = "BilinearForm"
)

// AllClose reports whether |a[i,j] − b[i,j]| ≤ tol for every element.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tolerance).
//
// Complexity:
//   - Time O(r*c), Space O(1) for *Dense operands.
func AllClose(a, b Matrix, tol float64) (bool, error) {
	tol, err := ValidateTolerance(tol)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for i := range da.data {
		if math.Abs(da.data[i]-db.data[i]) > tol {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// IsIntegral reports whether every element lies within tol of an integer.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (bad tolerance).
//
// Complexity:
//   - Time O(r*c).
func IsIntegral(m Matrix, tol float64) (bool, error) {
	tol, err := ValidateTolerance(tol)
	if err != nil {
		return false, matrixErrorf(opIsIntegral, err)
	}
	if err = ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opIsIntegral, err)
	}
	d, err := asDense(m)
	if err != nil {
		return false, matrixErrorf(opIsIntegral, err)
	}
	for _, v := range d.data {
		if math.Abs(v-math.Round(v)) > tol {
			return false, nil
		}
	}

	return true, nil
}

// Round returns a new matrix with every element rounded to the nearest integer
// (half away from zero). Negative zero is normalized to +0 so rounded
// matrices compare and print consistently.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Round(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRound, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opRound, err)
	}
	res, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf(opRound, err)
	}
	for i, v := range d.data {
		res.data[i] = math.Round(v) + 0 // +0 folds -0 into 0
	}

	return res, nil
}

// IsOrthogonal reports whether qᵀq = I within tol (element-wise).
// Non-square input is simply not orthogonal.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (bad tolerance).
//
// Complexity:
//   - Time O(n^3).
func IsOrthogonal(q Matrix, tol float64) (bool, error) {
	tol, err := ValidateTolerance(tol)
	if err != nil {
		return false, matrixErrorf(opIsOrthogonal, err)
	}
	if err = ValidateNotNil(q); err != nil {
		return false, matrixErrorf(opIsOrthogonal, err)
	}
	if q.Rows() != q.Cols() {
		return false, nil
	}
	d, err := asDense(q)
	if err != nil {
		return false, matrixErrorf(opIsOrthogonal, err)
	}

	n := d.r
	var (
		i, j, k int
		dot     float64
		want    float64
	)
	// (qᵀq)[i,j] = column i · column j; the product is symmetric, so j ≥ i suffices.
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			dot = ZeroSum
			for k = 0; k < n; k++ {
				dot += d.data[k*n+i] * d.data[k*n+j]
			}
			want = 0
			if i == j {
				want = 1
			}
			if math.Abs(dot-want) > tol {
				return false, nil
			}
		}
	}

	return true, nil
}

// SignOf classifies x as -1, 0 or +1, treating |x| ≤ tol as zero.
// Complexity: O(1).
func SignOf(x, tol float64) int {
	switch {
	case x > math.Abs(tol):
		return 1
	case x < -math.Abs(tol):
		return -1
	default:
		return 0
	}
}

// BilinearForm returns uᵀ·g·v for a square g.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (g non-square or vector lengths differ).
//
// Complexity:
//   - Time O(n^2), Space O(1).
func BilinearForm(g Matrix, u, v []float64) (float64, error) {
	if err := ValidateSquareNonNil(g); err != nil {
		return 0, matrixErrorf(opBilinear, err)
	}
	n := g.Rows()
	if err := ValidateVecLen(u, n); err != nil {
		return 0, matrixErrorf(opBilinear, err)
	}
	if err := ValidateVecLen(v, n); err != nil {
		return 0, matrixErrorf(opBilinear, err)
	}
	d, err := asDense(g)
	if err != nil {
		return 0, matrixErrorf(opBilinear, err)
	}
	var (
		i, j     int
		sum, row float64
	)
	for i = 0; i < n; i++ {
		if u[i] == 0 {
			continue
		}
		row = ZeroSum
		for j = 0; j < n; j++ {
			row += d.data[i*n+j] * v[j]
		}
		sum += u[i] * row
	}

	return sum, nil
}
