// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra layer used by the lattice
// symmetry engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Kernels: Mul, Transpose, Scale, Sub, LU (partial pivoting), Det,
//     Inverse and a Jacobi Eigen solver for symmetric input.
//   - The shared tolerance utility: AllClose, IsIntegral, Round,
//     IsOrthogonal, SignOf and BilinearForm. Every epsilon comparison made by
//     the lattice and group packages goes through these helpers.
//
// Matrices handled here are small (2×2, 3×3 in practice), so kernels favor
// determinism and clear error reporting over blocking or vectorization.
//
// Errors are package sentinels (see errors.go) wrapped with an operation tag;
// match them with errors.Is.
package matrix
