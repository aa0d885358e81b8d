// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// subtraction, multiplication, transpose, scaling, pivoted LU, determinant,
// inverse and symmetric eigen-decomposition. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel converts its operands once via asDense and then works on
//     flat row-major buffers with fixed loop orders.
//   - Results are always freshly allocated *Dense values; inputs are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for substitutions and accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opLU        = "LU"
	opDet       = "Det"
	opInverse   = "Inverse"
	opEigen     = "Eigen"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Sub returns a new matrix a − b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res, err := NewDense(da.r, da.c)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	for i := range res.data { // single flat walk
		res.data[i] = da.data[i] - db.data[i]
	}

	return res, nil
}

// Mul computes the matrix product a × b into a new Dense.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate result (a.Rows × b.Cols).
//   - Stage 2: i→k→j accumulation over flat buffers, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// Scale returns alpha·m as a new matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (non-finite alpha).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for i, v := range d.data {
		res.data[i] = alpha * v
	}

	return res, nil
}

// MatVec computes y = m·x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, d.r)
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			y[i] += d.data[base+j] * x[j]
		}
	}

	return y, nil
}

// luFactor runs Doolittle elimination with partial pivoting on a copy of a.
// The compact result stores U on and above the diagonal and the multipliers of
// L (unit diagonal implied) below it; row i of P·A is row perm[i] of A.
// sign is the parity of perm (±1). singular reports a column whose largest
// candidate pivot is below pivotFloor; that column is skipped.
//
// Complexity: O(n^3) time, O(n^2) space.
func luFactor(a *Dense) (lu *Dense, perm []int, sign float64, singular bool) {
	n := a.r
	lu = a.Clone().(*Dense)
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign = 1.0

	var (
		i, j, k, p int
		best, v    float64
		pivot, f   float64
	)
	for k = 0; k < n; k++ {
		// Pick the largest |a[i,k]| for i ≥ k (first one wins on ties).
		p, best = k, math.Abs(lu.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(lu.data[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best < pivotFloor {
			singular = true
			continue
		}
		if p != k {
			for j = 0; j < n; j++ {
				lu.data[k*n+j], lu.data[p*n+j] = lu.data[p*n+j], lu.data[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}
		pivot = lu.data[k*n+k]
		for i = k + 1; i < n; i++ {
			f = lu.data[i*n+k] / pivot
			lu.data[i*n+k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				lu.data[i*n+j] -= f * lu.data[k*n+j]
			}
		}
	}

	return lu, perm, sign, singular
}

// LU computes the factorization P·A = L·U with partial pivoting.
//
// Returns:
//   - L: unit lower triangular.
//   - U: upper triangular.
//   - perm: row permutation; row i of P·A is row perm[i] of A.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (no usable pivot).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix) (Matrix, Matrix, []int, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	lu, perm, _, singular := luFactor(d)
	if singular {
		return nil, nil, nil, matrixErrorf(opLU, ErrSingular)
	}

	n := d.r
	L, _ := NewDense(n, n) // shape already validated
	U, _ := NewDense(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case i > j:
				L.data[i*n+j] = lu.data[i*n+j]
			case i == j:
				L.data[i*n+j] = 1.0
				U.data[i*n+j] = lu.data[i*n+j]
			default:
				U.data[i*n+j] = lu.data[i*n+j]
			}
		}
	}

	return L, U, perm, nil
}

// Det returns the determinant of a square matrix.
// A matrix without a usable pivot has determinant 0 (no error).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Det(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	d, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	lu, _, sign, singular := luFactor(d)
	if singular {
		return 0, nil
	}
	det := sign
	for i := 0; i < d.r; i++ {
		det *= lu.data[i*d.r+i]
	}

	return det, nil
}

// Inverse computes A^{-1} from the pivoted LU factorization.
//
// Implementation:
//   - Stage 1: validate; factorize P·A = L·U.
//   - Stage 2: for each unit column e_col solve L·y = P·e_col, then U·x = y.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	lu, perm, _, singular := luFactor(d)
	if singular {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	n := d.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	var (
		col, i, k int
		sum       float64
		y         = make([]float64, n) // forward substitution workspace
		x         = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		// Forward: L*y = P*e_col (unit diagonal).
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += lu.data[i*n+k] * y[k]
			}
			if perm[i] == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = ZeroSum - sum // keeps +0 for structural zeros
			}
		}
		// Backward: U*x = y.
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += lu.data[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / lu.data[i*n+i]
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
//
// Implementation:
//   - Stage 1: validate symmetric square input within tol.
//   - Stage 2: repeatedly pick (p,q) with the largest |A[p,q]| in i→j order and rotate it away.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix).
//   - Matrix: Q whose columns are eigenvectors.
//
// Errors:
//   - ErrDimensionMismatch, ErrAsymmetry, ErrMatrixEigenFailed (max off-diagonal > tol after maxIter).
//
// Complexity:
//   - Time O(maxIter * n^2), Space O(n^2).
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := src.r
	A := src.Clone().(*Dense) // working copy; input stays untouched
	Q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	var (
		iter, i, j, p, q int
		maxOff, off      float64
		app, aqq, apq    float64
		aip, aiq         float64
		qip, qiq         float64
		theta, t, c, s   float64
	)
	for iter = 0; iter < maxIter; iter++ {
		// Find pivot (p,q) maximizing |A[p,q]|.
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off = math.Abs(A.data[i*n+j]); off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff <= tol {
			break
		}

		app, aqq, apq = A.data[p*n+p], A.data[q*n+q], A.data[p*n+q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq = A.data[i*n+p], A.data[i*n+q]
			A.data[i*n+p], A.data[p*n+i] = c*aip-s*aiq, c*aip-s*aiq
			A.data[i*n+q], A.data[q*n+i] = s*aip+c*aiq, s*aip+c*aiq
		}
		A.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		A.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		A.data[p*n+q], A.data[q*n+p] = 0, 0

		// Accumulate rotation into Q.
		for i = 0; i < n; i++ {
			qip, qiq = Q.data[i*n+p], Q.data[i*n+q]
			Q.data[i*n+p] = c*qip - s*qiq
			Q.data[i*n+q] = s*qip + c*qiq
		}
	}

	maxOff = 0
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if off = math.Abs(A.data[i*n+j]); off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff > tol {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = A.data[i*n+i]
	}

	return eigs, Q, nil
}
