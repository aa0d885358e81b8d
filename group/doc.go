// SPDX-License-Identifier: MIT

// Package group implements finite matrix groups with tolerance-based membership.
//
// A MatrixGroup is a finite set of square matrices of one dimension. Members are
// deep-copied on construction, duplicates within the tolerance collapse (first
// occurrence wins), and accessors hand out clones, so a group is immutable.
//
// Queries:
//
//	Order()         number of distinct members
//	Contains(m)     tolerance-based membership
//	HasSubgroup(h)  every member of h is a member of g (reflexive)
//	Equal(h)        same order and mutual inclusion
//	IsClosed()      products of members stay in the set
//
// Closure is the caller's responsibility: New does not verify it. The lattice
// package is the intended producer of closed groups; IsClosed exists for tests
// and for callers assembling groups by hand.
//
// Reference groups in the conventional orientation are provided:
// HexLaueGroup (order 12), CubicLaueGroup (order 24), SquareGroup2D (order 8)
// and HexGroup2D (order 12).
package group
