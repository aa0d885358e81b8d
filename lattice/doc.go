// SPDX-License-Identifier: MIT

// Package lattice computes the symmetry groups of a Bravais lattice.
//
// A Lattice is built from an n×n basis matrix E whose columns are the basis
// vectors. From E the package derives four finite groups:
//
//	PointGroup          orthogonal Q with Q·E = E·M for an integer M
//	LaueGroup           the det Q = +1 part of the point group
//	LatticeGroup        the integer basis changes M = E⁻¹·Q·E
//	SpecialLatticeGroup the det M = +1 part of the lattice group
//
// New first LLL-reduces E to B = E·U with U an integer matrix of determinant
// ±1. The point group is found on B by enumerating, for every basis vector bⱼ,
// all lattice vectors of the same length (searching a box that provably
// contains them), then assembling integer matrices M' column by column so that
// the Gram matrix G' = BᵀB is preserved. Each such M' yields Q = B·M'·B⁻¹ and
// the lattice-group member M = U·M'·U⁻¹. Working on B keeps the search small
// and the answers identical for every basis of the same lattice.
//
// Groups are computed once, on first access, and cached. A Lattice is
// immutable and safe for concurrent readers.
//
// Tolerances:
//
//	The single Options tolerance (DefaultTolerance) is relative. Inner products
//	compare within tol·‖bᵢ‖·‖bⱼ‖, positions of lattice vectors within
//	tol·max‖bⱼ‖, and dimensionless matrices (orthogonality, integrality) within
//	tol. All comparisons go through the matrix package tolerance helpers.
//
// Errors:
//
//	ErrValidation    construction failures (empty, ragged, non-numeric, singular).
//	ErrPrecondition  group accessors on a malformed lattice or an unsupported dimension.
package lattice
