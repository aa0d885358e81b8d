// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
package matrix

const (
	// DefaultEpsilon is the tolerance used by callers that do not carry their
	// own numeric policy (e.g., Eigen convergence in PositiveDefinite).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	DefaultValidateNaNInf = true

	// DefaultEigenMaxIter caps Jacobi sweeps for the small matrices handled here.
	DefaultEigenMaxIter = 200

	// pivotFloor is the smallest |pivot| LU accepts before reporting ErrSingular.
	// Rank decisions that depend on a caller tolerance are made above this layer.
	pivotFloor = 1e-300
)
