// SPDX-License-Identifier: MIT

package lattice

import (
	"math"

	"github.com/katalvlaran/latsym/matrix"
)

// gramOf returns G = EᵀE as a *Dense.
func gramOf(basis matrix.Matrix) (*matrix.Dense, error) {
	g, err := matrix.Gram(basis)
	if err != nil {
		return nil, err
	}

	return g.(*matrix.Dense), nil
}

// norm is the Euclidean length of v.
func norm(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x * x
	}

	return math.Sqrt(s)
}

// Gram returns a copy of the Gram matrix G = EᵀE, the pairwise inner products
// of the basis vectors.
func (l *Lattice) Gram() matrix.Matrix {
	if !l.valid() {
		return nil
	}

	return l.gram.Clone()
}

// Lengths returns ‖eⱼ‖ for every basis vector.
func (l *Lattice) Lengths() []float64 {
	if !l.valid() {
		return nil
	}
	out := make([]float64, l.dim)
	for j := range out {
		gjj, _ := l.gram.At(j, j)
		out[j] = math.Sqrt(gjj)
	}

	return out
}

// Angles returns the angles (radians) between basis vectors eᵢ and eⱼ for
// i < j in the order (0,1), (0,2), …, (1,2), …. For 3D this is γ, β, α.
func (l *Lattice) Angles() []float64 {
	if !l.valid() {
		return nil
	}
	lengths := l.Lengths()
	out := make([]float64, 0, l.dim*(l.dim-1)/2)
	for i := 0; i < l.dim; i++ {
		for j := i + 1; j < l.dim; j++ {
			gij, _ := l.gram.At(i, j)
			c := gij / (lengths[i] * lengths[j])
			out = append(out, math.Acos(math.Max(-1, math.Min(1, c))))
		}
	}

	return out
}

// metricTol is the tolerance for the inner product ⟨bᵢ, bⱼ⟩ of reduced basis
// vectors: tol·‖bᵢ‖·‖bⱼ‖.
func (l *Lattice) metricTol(i, j int) float64 {
	gii, _ := l.red.gram.At(i, i)
	gjj, _ := l.red.gram.At(j, j)

	return l.opts.tol * math.Sqrt(gii*gjj)
}

// lengthTol is the tolerance for coordinates of lattice vectors:
// tol times the longest reduced basis vector.
func (l *Lattice) lengthTol() float64 {
	s := 0.0
	for j := 0; j < l.dim; j++ {
		gjj, _ := l.red.gram.At(j, j)
		s = math.Max(s, gjj)
	}

	return l.opts.tol * math.Sqrt(s)
}

// preservesMetric reports whether the reduced-coordinate change m keeps every
// inner product: |mᵢᵀ·G'·mⱼ − G'ᵢⱼ| ≤ metricTol(i, j).
func (l *Lattice) preservesMetric(m matrix.Matrix) bool {
	cols := make([][]float64, l.dim)
	var err error
	for j := range cols {
		if cols[j], err = matrix.Column(m, j); err != nil {
			return false
		}
	}
	for i := 0; i < l.dim; i++ {
		for j := i; j < l.dim; j++ {
			gij, _ := l.red.gram.At(i, j)
			q, err := matrix.BilinearForm(l.red.gram, cols[i], cols[j])
			if err != nil || math.Abs(q-gij) > l.metricTol(i, j) {
				return false
			}
		}
	}

	return true
}
