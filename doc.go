// SPDX-License-Identifier: MIT

// Package latsym computes the symmetry groups of Bravais lattices.
//
// A lattice is given by n basis vectors, the columns of an n×n matrix E. Its
// symmetry is described by four finite matrix groups:
//
//	point group            orthogonal Q mapping the lattice onto itself
//	Laue group             the proper rotations (det Q = +1) of the point group
//	lattice group          the integer basis changes M = E⁻¹·Q·E
//	special lattice group  the det M = +1 part of the lattice group
//
// Everything is organized under three packages:
//
//	matrix/  dense row-major matrices, pivoted LU, inverse, Jacobi eigen,
//	         and the tolerance helpers every numeric decision goes through
//	group/   finite matrix groups with tolerance-based membership and
//	         the conventional reference groups (hexagonal, cubic, 2D)
//	lattice/ lattice construction, equality and the symmetry search
//
// The latsym command (cmd/latsym) exposes the same operations on the
// command line.
//
// Quick example:
//
//	rows, _ := lattice.ParseBasis("1,0,1; 1,1,0; 0,1,1") // fcc
//	l, _ := lattice.New(rows)
//	pg, _ := l.PointGroup()
//	fmt.Println(pg.Order()) // 48
package latsym
