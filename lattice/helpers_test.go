// SPDX-License-Identifier: MIT
// Package lattice_test contains shared fixtures for the lattice tests.
package lattice_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/latsym/lattice"
	"github.com/katalvlaran/latsym/matrix"
	"github.com/stretchr/testify/require"
)

// fixture is a named basis with its known point-group and Laue-group orders.
type fixture struct {
	name        string
	basis       [][]float64
	point, laue int
}

var sqrt3 = math.Sqrt(3)

// fixtures3D covers every 3D crystal family plus the common centerings.
var fixtures3D = []fixture{
	{"simple cubic", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 48, 24},
	{"fcc", [][]float64{{1, 0, 1}, {1, 1, 0}, {0, 1, 1}}, 48, 24},
	{"bcc", [][]float64{{1, -1, 1}, {1, 1, -1}, {-1, 1, 1}}, 48, 24},
	{"hexagonal", [][]float64{{2, 1, 0}, {0, sqrt3, 0}, {0, 0, 3}}, 24, 12},
	{"hexagonal rounded", [][]float64{{2, 1, 0}, {0, 1.73205081, 0}, {0, 0, 3}}, 24, 12},
	{"rhombohedral", [][]float64{{1, 0.5, 0.5}, {0.5, 1, 0.5}, {0.5, 0.5, 1}}, 12, 6},
	{"tetragonal", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1.7}}, 16, 8},
	{"orthorhombic", [][]float64{{1, 0, 0}, {0, 1.3, 0}, {0, 0, 1.7}}, 8, 4},
	{"monoclinic", [][]float64{{2, 0, 0.20934382}, {0, 3, 0}, {0, 0, 3.99451814}}, 4, 2},
	{"triclinic a", [][]float64{{1.3, 0.2, 0.5}, {0.1, 2.1, 0.3}, {0.4, 0.7, 3.3}}, 2, 1},
	{"triclinic b", [][]float64{{3.1, 0.7, 1.2}, {0.4, 2.6, 0.9}, {1.1, 0.3, 3.8}}, 2, 1},
	{"triclinic c", [][]float64{{1, 0.3, 0.2}, {0, 1.1, 0.4}, {0, 0, 0.9}}, 2, 1},
}

// fixtures2D covers the plane lattices. In 2D −I is a rotation, so an oblique
// lattice has point group = Laue group = {I, −I}.
var fixtures2D = []fixture{
	{"square", [][]float64{{2, 0}, {0, 2}}, 8, 4},
	{"centered rectangular", [][]float64{{1, -1}, {1.5, 1.5}}, 4, 2},
	{"hexagonal 2d", [][]float64{{2, 1}, {0, 1.73205081}}, 12, 6},
	{"oblique", [][]float64{{2.7, 1.9}, {0.6, 3.4}}, 2, 2},
}

func mustLattice(t *testing.T, rows [][]float64, opts ...lattice.Option) *lattice.Lattice {
	t.Helper()
	l, err := lattice.New(rows, opts...)
	require.NoError(t, err)

	return l
}

func mustMatrix(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// product multiplies a chain of matrices or fails the test.
func product(t *testing.T, ms ...matrix.Matrix) matrix.Matrix {
	t.Helper()
	p, err := matrix.Product(ms...)
	require.NoError(t, err)

	return p
}

func det(t *testing.T, m matrix.Matrix) float64 {
	t.Helper()
	d, err := matrix.Det(m)
	require.NoError(t, err)

	return d
}

func inverse(t *testing.T, m matrix.Matrix) matrix.Matrix {
	t.Helper()
	inv, err := matrix.Inverse(m)
	require.NoError(t, err)

	return inv
}
