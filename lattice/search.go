// SPDX-License-Identifier: MIT

package lattice

import (
	"math"

	"github.com/katalvlaran/latsym/matrix"
)

// candidateVectors lists the integer coordinate vectors v with |vᵀG'v − G'ⱼⱼ| ≤ eps
// in the reduced basis B, i.e. every lattice vector as long as bⱼ.
//
// Search box: for a lattice vector x = B·v with ‖x‖ = ‖bⱼ‖ we have
// vᵢ = (row i of B⁻¹)·x, so |vᵢ| ≤ ‖row i of B⁻¹‖·‖bⱼ‖. The box built from
// that bound (with eps slack) contains every solution, and stays small
// because B is reduced.
//
// The unit vector eⱼ itself is moved to the front so the identity is the first
// matrix assembled by searchBasisChanges.
//
// Complexity: O(∏(2bᵢ+1) · n^2) where bᵢ are the per-coordinate bounds.
func (l *Lattice) candidateVectors(j int, eps float64) [][]float64 {
	n := l.dim
	g := l.red.gram
	gjj, _ := g.At(j, j)
	radius := math.Sqrt(gjj + eps)

	bounds := make([]int, n)
	var i, k int
	var rowNorm, v float64
	for i = 0; i < n; i++ {
		rowNorm = 0
		for k = 0; k < n; k++ {
			v, _ = l.red.inv.At(i, k)
			rowNorm += v * v
		}
		bounds[i] = int(math.Floor(radius * math.Sqrt(rowNorm)))
	}

	var out [][]float64
	unit := -1
	coords := make([]float64, n)
	for i = range coords {
		coords[i] = float64(-bounds[i])
	}
	for {
		q, _ := matrix.BilinearForm(g, coords, coords) // shapes fixed at build time
		if math.Abs(q-gjj) <= eps {
			if isUnitVector(coords, j) {
				unit = len(out)
			}
			out = append(out, append([]float64(nil), coords...))
		}
		// Odometer step: last coordinate fastest.
		i = n - 1
		for i >= 0 {
			if coords[i] < float64(bounds[i]) {
				coords[i]++
				break
			}
			coords[i] = float64(-bounds[i])
			i--
		}
		if i < 0 {
			break
		}
	}
	if unit > 0 {
		out[0], out[unit] = out[unit], out[0]
	}

	return out
}

// isUnitVector reports whether v is the j-th standard unit vector.
func isUnitVector(v []float64, j int) bool {
	for i, x := range v {
		if (i == j && x != 1) || (i != j && x != 0) {
			return false
		}
	}

	return true
}

// searchBasisChanges assembles every integer matrix M' with M'ᵀG'M' = G' (within
// metricTol) and |det M'| = 1, column by column from the candidate vectors,
// pruning on the inner products with the columns already placed. M' is in
// reduced coordinates. Matrices come out in depth-first order; the identity
// is first.
//
// Complexity: bounded by ∏ⱼ |candidates(j)| products, pruned in practice to
// a few times the group order.
func (l *Lattice) searchBasisChanges() []matrix.Matrix {
	n := l.dim
	cands := make([][][]float64, n)
	for j := 0; j < n; j++ {
		cands[j] = l.candidateVectors(j, l.metricTol(j, j))
	}

	var found []matrix.Matrix
	cols := make([][]float64, n)
	var place func(j int)
	place = func(j int) {
		if j == n {
			m, err := matrix.FromColumns(cols)
			if err != nil {
				return
			}
			det, err := matrix.Det(m)
			if err != nil || math.Abs(math.Round(det)) != 1 {
				return
			}
			found = append(found, m)
			return
		}
		for _, v := range cands[j] {
			if !l.preservesInnerProducts(cols[:j], v, j) {
				continue
			}
			cols[j] = v
			place(j + 1)
		}
	}
	place(0)

	return found
}

// preservesInnerProducts checks mᵢᵀ·G'·v ≈ G'ᵢⱼ for every placed column mᵢ.
func (l *Lattice) preservesInnerProducts(placed [][]float64, v []float64, j int) bool {
	for i, mi := range placed {
		gij, _ := l.red.gram.At(i, j)
		q, err := matrix.BilinearForm(l.red.gram, mi, v)
		if err != nil || math.Abs(q-gij) > l.metricTol(i, j) {
			return false
		}
	}

	return true
}

// searchSymmetries maps every metric-preserving M' to Q = B·M'·B⁻¹, keeps the
// Q that are orthogonal within tol, and returns them with their basis changes
// M = U·M'·U⁻¹ in the coordinates of E. qs[k] and ms[k] correspond.
func (l *Lattice) searchSymmetries() (qs, ms []matrix.Matrix, err error) {
	for _, mr := range l.searchBasisChanges() {
		q, err := matrix.Product(l.red.basis, mr, l.red.inv)
		if err != nil {
			return nil, nil, err
		}
		ok, err := matrix.IsOrthogonal(q, l.opts.tol)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			continue
		}
		m, err := l.toBasisCoordinates(mr)
		if err != nil {
			return nil, nil, err
		}
		qs = append(qs, q)
		ms = append(ms, m)
	}

	return qs, ms, nil
}

// toBasisCoordinates returns U·M'·U⁻¹, an integer matrix for integer M'.
func (l *Lattice) toBasisCoordinates(mr matrix.Matrix) (matrix.Matrix, error) {
	m, err := matrix.Product(l.red.u, mr, l.red.uInv)
	if err != nil {
		return nil, err
	}

	return matrix.Round(m)
}

// toReducedCoordinates returns U⁻¹·M·U, an integer matrix for integer M.
func (l *Lattice) toReducedCoordinates(m matrix.Matrix) (matrix.Matrix, error) {
	mr, err := matrix.Product(l.red.uInv, m, l.red.u)
	if err != nil {
		return nil, err
	}

	return matrix.Round(mr)
}
