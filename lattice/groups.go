// SPDX-License-Identifier: MIT

package lattice

import (
	"fmt"
	"math"

	"github.com/katalvlaran/latsym/group"
	"github.com/katalvlaran/latsym/matrix"
)

// PointGroup returns the orthogonal matrices Q with Q·E = E·M for an integer M.
//
// Errors (all match ErrPrecondition):
//   - ErrMalformedLattice, ErrUnsupportedDimension, ErrInconsistentGroups.
func (l *Lattice) PointGroup() (*group.MatrixGroup, error) {
	gs, err := l.cachedGroups()
	if err != nil {
		return nil, latticeErrorf("PointGroup", err)
	}

	return gs.point, nil
}

// LaueGroup returns the proper rotations (det Q = +1) of the point group.
func (l *Lattice) LaueGroup() (*group.MatrixGroup, error) {
	gs, err := l.cachedGroups()
	if err != nil {
		return nil, latticeErrorf("LaueGroup", err)
	}

	return gs.laue, nil
}

// LatticeGroup returns the integer basis changes M = E⁻¹·Q·E for Q in the point group.
func (l *Lattice) LatticeGroup() (*group.MatrixGroup, error) {
	gs, err := l.cachedGroups()
	if err != nil {
		return nil, latticeErrorf("LatticeGroup", err)
	}

	return gs.lattice, nil
}

// SpecialLatticeGroup returns the det M = +1 part of the lattice group.
func (l *Lattice) SpecialLatticeGroup() (*group.MatrixGroup, error) {
	gs, err := l.cachedGroups()
	if err != nil {
		return nil, latticeErrorf("SpecialLatticeGroup", err)
	}

	return gs.special, nil
}

// cachedGroups computes all four groups on first use; results and errors are memoized.
func (l *Lattice) cachedGroups() (*groupSet, error) {
	if !l.valid() {
		return nil, ErrMalformedLattice
	}
	l.once.Do(func() {
		l.groups, l.errG = l.computeGroups()
	})

	return l.groups, l.errG
}

// computeGroups runs the point-group search and derives the other three groups.
//
// Implementation:
//   - Stage 1: guard the dimension limit.
//   - Stage 2: search the reduced basis for metric-preserving M' and keep the
//     orthogonal Q = B·M'·B⁻¹; Laue group = det Q > 0 subset.
//   - Stage 3: lattice group from M = U·M'·U⁻¹; special = det M = +1 subset.
//   - Stage 4: the Q ↔ M correspondence must survive deduplication one-to-one.
func (l *Lattice) computeGroups() (*groupSet, error) {
	if l.dim > l.opts.maxGroupDim {
		return nil, fmt.Errorf("dimension %d > %d: %w", l.dim, l.opts.maxGroupDim, ErrUnsupportedDimension)
	}

	tol := l.opts.tol
	qs, ms, err := l.searchSymmetries()
	if err != nil {
		return nil, fmt.Errorf("point group search: %v: %w", err, ErrPrecondition)
	}
	point, err := group.New(qs, group.WithTolerance(tol))
	if err != nil {
		return nil, fmt.Errorf("point group: %v: %w", err, ErrPrecondition)
	}
	laue, err := point.Subset(func(q matrix.Matrix) bool { return determinantSign(q, tol) > 0 })
	if err != nil {
		return nil, fmt.Errorf("laue group: %v: %w", err, ErrPrecondition)
	}

	lattice, err := group.New(ms, group.WithTolerance(tol))
	if err != nil {
		return nil, fmt.Errorf("lattice group: %v: %w", err, ErrPrecondition)
	}
	special, err := lattice.Subset(func(m matrix.Matrix) bool { return determinantSign(m, tol) > 0 })
	if err != nil {
		return nil, fmt.Errorf("special lattice group: %v: %w", err, ErrPrecondition)
	}

	if lattice.Order() != point.Order() || special.Order() != laue.Order() {
		return nil, fmt.Errorf("orders %d/%d vs %d/%d: %w",
			point.Order(), laue.Order(), lattice.Order(), special.Order(), ErrInconsistentGroups)
	}

	return &groupSet{point: point, laue: laue, lattice: lattice, special: special}, nil
}

// determinantSign is the sign of det(m) with |det| ≤ tol treated as zero.
func determinantSign(m matrix.Matrix, tol float64) int {
	det, err := matrix.Det(m)
	if err != nil || math.IsNaN(det) {
		return 0
	}

	return matrix.SignOf(det, tol)
}
