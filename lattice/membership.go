// SPDX-License-Identifier: MIT

package lattice

import "github.com/katalvlaran/latsym/matrix"

// InPointGroup reports whether q maps the lattice onto itself: q is n×n,
// orthogonal within tolerance, and q·B = B·M' for the integer M' =
// round(B⁻¹·q·B), compared within tol·max‖bⱼ‖ on the reduced basis B.
// It never triggers the group search and never fails; malformed input simply
// yields false.
// Complexity: O(n^3).
func (l *Lattice) InPointGroup(q matrix.Matrix) bool {
	if !l.valid() || !l.isSquareOfDim(q) {
		return false
	}
	ok, err := matrix.IsOrthogonal(q, l.opts.tol)
	if err != nil || !ok {
		return false
	}
	raw, err := matrix.Product(l.red.inv, q, l.red.basis)
	if err != nil {
		return false
	}
	mr, err := matrix.Round(raw)
	if err != nil {
		return false
	}
	qb, err := matrix.Mul(q, l.red.basis)
	if err != nil {
		return false
	}
	bm, err := matrix.Mul(l.red.basis, mr)
	if err != nil {
		return false
	}
	ok, err = matrix.AllClose(qb, bm, l.lengthTol())

	return err == nil && ok
}

// InLatticeGroup reports whether m is an integer matrix (within tolerance)
// that preserves every inner product of the lattice, i.e. E·m·E⁻¹ is
// orthogonal. The metric check runs in reduced coordinates U⁻¹·m·U.
// Complexity: O(n^3).
func (l *Lattice) InLatticeGroup(m matrix.Matrix) bool {
	if !l.valid() || !l.isSquareOfDim(m) {
		return false
	}
	ok, err := matrix.IsIntegral(m, l.opts.tol)
	if err != nil || !ok {
		return false
	}
	r, err := matrix.Round(m)
	if err != nil {
		return false
	}
	mr, err := l.toReducedCoordinates(r)
	if err != nil {
		return false
	}

	return l.preservesMetric(mr)
}

// isSquareOfDim reports whether m is a non-nil n×n matrix for this lattice.
func (l *Lattice) isSquareOfDim(m matrix.Matrix) bool {
	return matrix.ValidateNotNil(m) == nil && m.Rows() == l.dim && m.Cols() == l.dim
}
