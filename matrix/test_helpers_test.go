// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers shared by the matrix tests.
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels and tolerance helpers.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/latsym/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (copying) paths.
type hide struct{ matrix.Matrix }

// MustDense builds a *Dense from a row-major literal or fails the test.
func MustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireClose asserts element-wise closeness of got and want.
func RequireClose(t *testing.T, want [][]float64, got matrix.Matrix, tol float64) {
	t.Helper()
	ok, err := matrix.AllClose(MustDense(t, want), got, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "want\n%v\ngot\n%v", MustDense(t, want), got)
}
