// SPDX-License-Identifier: MIT

package group

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/latsym/matrix"
)

// MatrixGroup is an immutable finite set of n×n matrices.
// Members keep their insertion order (first occurrence wins on duplicates).
type MatrixGroup struct {
	dim     int             // common row/column count of every member
	members []matrix.Matrix // distinct members, deep copies
	tol     float64         // element-wise tolerance for member comparison
}

// New builds a MatrixGroup from ms.
//
// Implementation:
//   - Stage 1: validate non-empty input, non-nil square members of one dimension.
//   - Stage 2: copy members in order, skipping any within tol of an earlier one.
//
// Closure is not verified here; see IsClosed.
//
// Errors:
//   - ErrEmptyGroup, ErrNilMember, ErrNonSquareMember, ErrMixedDimension.
//
// Complexity:
//   - Time O(k^2 · n^2) for k inputs, Space O(k · n^2).
func New(ms []matrix.Matrix, opts ...Option) (*MatrixGroup, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("group.New: %w", ErrEmptyGroup)
	}
	o := gatherOptions(opts...)

	g := &MatrixGroup{tol: o.tol, members: make([]matrix.Matrix, 0, len(ms))}
	for i, m := range ms {
		if err := matrix.ValidateNotNil(m); err != nil {
			return nil, groupErrorf("New", i, ErrNilMember)
		}
		if m.Rows() != m.Cols() {
			return nil, groupErrorf("New", i, ErrNonSquareMember)
		}
		if i == 0 {
			g.dim = m.Rows()
		} else if m.Rows() != g.dim {
			return nil, groupErrorf("New", i, ErrMixedDimension)
		}
		if g.indexOf(m) >= 0 {
			continue // duplicate within tolerance
		}
		g.members = append(g.members, m.Clone())
	}

	return g, nil
}

// mustNew is New for static reference data; a failure is a programming error.
func mustNew(rows ...[][]float64) *MatrixGroup {
	ms := make([]matrix.Matrix, len(rows))
	for i, r := range rows {
		d, err := matrix.NewDenseFrom(r)
		if err != nil {
			panic(fmt.Sprintf("group: reference member %d: %v", i, err))
		}
		ms[i] = d
	}
	g, err := New(ms)
	if err != nil {
		panic(fmt.Sprintf("group: reference group: %v", err))
	}

	return g
}

// Order returns the number of distinct members. A nil group has order 0.
func (g *MatrixGroup) Order() int {
	if g == nil {
		return 0
	}

	return len(g.members)
}

// Dimension returns n for a group of n×n matrices.
func (g *MatrixGroup) Dimension() int {
	if g == nil {
		return 0
	}

	return g.dim
}

// Tolerance returns the element-wise tolerance used for member comparison.
func (g *MatrixGroup) Tolerance() float64 { return g.tol }

// Matrices returns deep copies of the members in their stable order.
// Complexity: O(k · n^2).
func (g *MatrixGroup) Matrices() []matrix.Matrix {
	if g == nil {
		return nil
	}
	out := make([]matrix.Matrix, len(g.members))
	for i, m := range g.members {
		out[i] = m.Clone()
	}

	return out
}

// indexOf returns the position of the member within tol of m, or -1.
func (g *MatrixGroup) indexOf(m matrix.Matrix) int {
	for i, member := range g.members {
		ok, err := matrix.AllClose(member, m, g.tol)
		if err == nil && ok {
			return i
		}
	}

	return -1
}

// Contains reports whether m equals some member within the group tolerance.
// nil or wrongly shaped matrices are never members.
// Complexity: O(k · n^2).
func (g *MatrixGroup) Contains(m matrix.Matrix) bool {
	if g == nil || matrix.ValidateNotNil(m) != nil {
		return false
	}
	if m.Rows() != g.dim || m.Cols() != g.dim {
		return false
	}

	return g.indexOf(m) >= 0
}

// HasSubgroup reports whether every member of h is a member of g.
// Reflexive: g.HasSubgroup(g) is true. A nil h or a dimension mismatch yields false.
// Complexity: O(|g| · |h| · n^2).
func (g *MatrixGroup) HasSubgroup(h *MatrixGroup) bool {
	if g == nil || h == nil || g.dim != h.dim {
		return false
	}
	if h.Order() > g.Order() {
		return false
	}
	for _, m := range h.members {
		if !g.Contains(m) {
			return false
		}
	}

	return true
}

// Equal reports whether g and h hold the same members (order-insensitive).
func (g *MatrixGroup) Equal(h *MatrixGroup) bool {
	if g == nil || h == nil {
		return g == h
	}

	return g.Order() == h.Order() && g.HasSubgroup(h) && h.HasSubgroup(g)
}

// IsClosed reports whether a·b is a member for every pair of members.
// Complexity: O(k^3 · n^2) comparisons plus k^2 products.
func (g *MatrixGroup) IsClosed() bool {
	if g == nil {
		return false
	}
	for _, a := range g.members {
		for _, b := range g.members {
			p, err := matrix.Mul(a, b)
			if err != nil || !g.Contains(p) {
				return false
			}
		}
	}

	return true
}

// Subset returns the group of members for which keep reports true, preserving order.
//
// Errors:
//   - ErrEmptyGroup when nothing is kept.
func (g *MatrixGroup) Subset(keep func(matrix.Matrix) bool) (*MatrixGroup, error) {
	kept := make([]matrix.Matrix, 0, len(g.members))
	for _, m := range g.members {
		if keep(m) {
			kept = append(kept, m)
		}
	}

	return New(kept, WithTolerance(g.tol))
}

// String lists the members separated by blank lines.
func (g *MatrixGroup) String() string {
	if g == nil {
		return "<nil group>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "MatrixGroup(order=%d, dim=%d)\n", len(g.members), g.dim)
	for i, m := range g.members {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprint(m))
	}

	return b.String()
}
