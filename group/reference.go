// SPDX-License-Identifier: MIT

package group

import "math"

// Reference groups in the conventional orientation. Each is closed and immutable.
var (
	// HexLaueGroup holds the 12 rotations of the hexagonal Laue group 6/mmm
	// with the six-fold axis along z and an a-axis along x: rotations by k·60°
	// about z, and two-fold rotations about the in-plane axes at k·30°.
	HexLaueGroup = hexLaueGroup()

	// CubicLaueGroup holds the 24 rotations of the cube: signed 3×3
	// permutation matrices with determinant +1.
	CubicLaueGroup = signedPermutationGroup(3, true)

	// SquareGroup2D holds the 8 symmetries of the square lattice.
	SquareGroup2D = signedPermutationGroup(2, false)

	// HexGroup2D holds the 12 symmetries of the plane hexagonal lattice with
	// a-axis along x: rotations by k·60° and mirrors across lines at k·30°.
	HexGroup2D = hexGroup2D()
)

// snap folds trigonometric noise so table entries are exact where they should be.
func snap(x float64) float64 {
	if r := math.Round(x); math.Abs(x-r) < 1e-15 {
		return r + 0
	}

	return x
}

func hexLaueGroup() *MatrixGroup {
	rows := make([][][]float64, 0, 12)
	var k int
	var c, s float64
	for k = 0; k < 6; k++ { // six-fold rotations about z
		c, s = snap(math.Cos(float64(k)*math.Pi/3)), snap(math.Sin(float64(k)*math.Pi/3))
		rows = append(rows, [][]float64{{c, snap(-s), 0}, {s, c, 0}, {0, 0, 1}})
	}
	for k = 0; k < 6; k++ { // two-fold rotations about in-plane axes at k·30°
		c, s = snap(math.Cos(float64(k)*math.Pi/3)), snap(math.Sin(float64(k)*math.Pi/3))
		rows = append(rows, [][]float64{{c, s, 0}, {s, snap(-c), 0}, {0, 0, -1}})
	}

	return mustNew(rows...)
}

func hexGroup2D() *MatrixGroup {
	rows := make([][][]float64, 0, 12)
	var k int
	var c, s float64
	for k = 0; k < 6; k++ {
		c, s = snap(math.Cos(float64(k)*math.Pi/3)), snap(math.Sin(float64(k)*math.Pi/3))
		rows = append(rows, [][]float64{{c, snap(-s)}, {s, c}})
	}
	for k = 0; k < 6; k++ {
		c, s = snap(math.Cos(float64(k)*math.Pi/3)), snap(math.Sin(float64(k)*math.Pi/3))
		rows = append(rows, [][]float64{{c, s}, {s, snap(-c)}})
	}

	return mustNew(rows...)
}

// signedPermutationGroup enumerates n×n signed permutation matrices in
// lexicographic permutation order and sign order; properOnly keeps det = +1.
func signedPermutationGroup(n int, properOnly bool) *MatrixGroup {
	var rows [][][]float64
	for _, perm := range permutations(n) {
		parity := permutationParity(perm)
		for mask := 0; mask < 1<<n; mask++ {
			det := parity
			m := make([][]float64, n)
			for i := range m {
				m[i] = make([]float64, n)
			}
			for col, row := range perm {
				v := 1.0
				if mask&(1<<col) != 0 {
					v = -1.0
					det = -det
				}
				m[row][col] = v
			}
			if properOnly && det < 0 {
				continue
			}
			rows = append(rows, m)
		}
	}

	return mustNew(rows...)
}

// permutations lists every permutation of 0..n-1 in lexicographic order.
func permutations(n int) [][]int {
	var out [][]int
	var rec func(prefix []int, used []bool)
	rec = func(prefix []int, used []bool) {
		if len(prefix) == n {
			out = append(out, append([]int(nil), prefix...))
			return
		}
		for v := 0; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			rec(append(prefix, v), used)
			used[v] = false
		}
	}
	rec(make([]int, 0, n), make([]bool, n))

	return out
}

// permutationParity returns +1 for even and -1 for odd permutations.
func permutationParity(p []int) int {
	sign := 1
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if p[i] > p[j] {
				sign = -sign
			}
		}
	}

	return sign
}
