// SPDX-License-Identifier: MIT

package lattice

import (
	"math"

	"github.com/katalvlaran/latsym/matrix"
)

const (
	// lllDelta is the Lovász constant of the reduction.
	lllDelta = 0.99
	// sizeSlack keeps |μ| = 1/2 ties from triggering a reduction step.
	sizeSlack = 1e-9
	// maxReduceSteps bounds the LLL loop per basis vector.
	maxReduceSteps = 1000
)

// reduction is an LLL-reduced basis B = E·U of the same lattice together with
// the integer change of basis U and its inverse.
type reduction struct {
	basis *matrix.Dense // B
	inv   *matrix.Dense // B⁻¹
	gram  *matrix.Dense // BᵀB
	u     *matrix.Dense // E·U = B, det U = ±1
	uInv  *matrix.Dense // U⁻¹, integer
}

// reduce LLL-reduces the columns of basis.
//
// Implementation:
//   - Stage 1: size-reduce column k against k-1..0 by the nearest integer of μ.
//   - Stage 2: swap k and k-1 when the Lovász condition fails.
//   - Stage 3: rebuild B = E·U from the integer U so rounding does not accumulate.
//
// Every step is an integer column operation, so U stays unimodular even when
// the loop stops early at maxReduceSteps.
//
// Complexity:
//   - Time O(steps · n^3) with a full Gram-Schmidt pass per step, n is small.
func reduce(basis *matrix.Dense) (*reduction, error) {
	n := basis.Rows()
	b := make([][]float64, n)
	us := make([][]float64, n)
	for j := 0; j < n; j++ {
		b[j], _ = matrix.Column(basis, j)
		us[j] = make([]float64, n)
		us[j][j] = 1
	}

	gs := newGramSchmidt(n)
	gs.update(b)
	k := 1
	for steps := 0; k < n && steps < maxReduceSteps*n; steps++ {
		for j := k - 1; j >= 0; j-- {
			if math.Abs(gs.mu[k][j]) <= 0.5+sizeSlack {
				continue
			}
			r := math.Round(gs.mu[k][j])
			axpy(b[k], b[j], -r)
			axpy(us[k], us[j], -r)
			gs.update(b)
		}
		mu := gs.mu[k][k-1]
		if gs.sq[k] >= (lllDelta-mu*mu)*gs.sq[k-1] {
			k++
			continue
		}
		b[k], b[k-1] = b[k-1], b[k]
		us[k], us[k-1] = us[k-1], us[k]
		gs.update(b)
		if k > 1 {
			k--
		}
	}

	u, err := matrix.FromColumns(us)
	if err != nil {
		return nil, err
	}
	uInv, err := integerInverse(u)
	if err != nil {
		return nil, err
	}

	return newReduction(basis, u, uInv)
}

// newReduction derives B, B⁻¹ and BᵀB from E and U.
func newReduction(basis, u, uInv *matrix.Dense) (*reduction, error) {
	bm, err := matrix.Mul(basis, u)
	if err != nil {
		return nil, err
	}
	inv, err := matrix.Inverse(bm)
	if err != nil {
		return nil, err
	}
	gram, err := gramOf(bm)
	if err != nil {
		return nil, err
	}

	return &reduction{
		basis: bm.(*matrix.Dense),
		inv:   inv.(*matrix.Dense),
		gram:  gram,
		u:     u,
		uInv:  uInv,
	}, nil
}

// integerInverse returns U⁻¹ for a unimodular integer U, verified exactly.
func integerInverse(u *matrix.Dense) (*matrix.Dense, error) {
	inv, err := matrix.Inverse(u)
	if err != nil {
		return nil, err
	}
	r, err := matrix.Round(inv)
	if err != nil {
		return nil, err
	}
	check, err := matrix.Mul(u, r)
	if err != nil {
		return nil, err
	}
	id, err := matrix.IdentityLike(u)
	if err != nil {
		return nil, err
	}
	if ok, _ := matrix.AllClose(check, id, 0); !ok {
		return nil, matrix.ErrSingular
	}

	return r.(*matrix.Dense), nil
}

// gramSchmidt holds the orthogonalization of the current columns:
// b*ⱼ = bⱼ − Σᵢ<ⱼ μⱼᵢ b*ᵢ and sqⱼ = ‖b*ⱼ‖².
type gramSchmidt struct {
	star [][]float64
	mu   [][]float64
	sq   []float64
}

func newGramSchmidt(n int) *gramSchmidt {
	gs := &gramSchmidt{
		star: make([][]float64, n),
		mu:   make([][]float64, n),
		sq:   make([]float64, n),
	}
	for i := range gs.mu {
		gs.star[i] = make([]float64, n)
		gs.mu[i] = make([]float64, n)
	}

	return gs
}

// update recomputes the orthogonalization of b from scratch.
func (gs *gramSchmidt) update(b [][]float64) {
	for j := range b {
		copy(gs.star[j], b[j])
		for i := 0; i < j; i++ {
			gs.mu[j][i] = dot(b[j], gs.star[i]) / gs.sq[i]
			axpy(gs.star[j], gs.star[i], -gs.mu[j][i])
		}
		gs.sq[j] = dot(gs.star[j], gs.star[j])
	}
}

func dot(u, v []float64) float64 {
	s := 0.0
	for i := range u {
		s += u[i] * v[i]
	}

	return s
}

// axpy sets y += a·x.
func axpy(y, x []float64, a float64) {
	for i := range y {
		y[i] += a * x[i]
	}
}
