// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"fmt"
)

// Error categories. Every specific sentinel below matches exactly one of them
// through errors.Is.
var (
	// ErrValidation marks a basis that cannot define a lattice.
	ErrValidation = errors.New("lattice: invalid basis")

	// ErrPrecondition marks a group query that cannot proceed on this lattice.
	ErrPrecondition = errors.New("lattice: precondition failed")
)

var (
	// ErrEmptyBasis is returned for a basis with no rows or no columns.
	ErrEmptyBasis = fmt.Errorf("%w: empty basis", ErrValidation)

	// ErrNonSquareBasis is returned when the basis is ragged or not n×n.
	ErrNonSquareBasis = fmt.Errorf("%w: basis is not square", ErrValidation)

	// ErrNonNumericBasis is returned when text input cannot be read as numbers.
	ErrNonNumericBasis = fmt.Errorf("%w: basis is not numeric", ErrValidation)

	// ErrNonFiniteBasis is returned when the basis holds NaN or ±Inf.
	ErrNonFiniteBasis = fmt.Errorf("%w: basis holds NaN or Inf", ErrValidation)

	// ErrSingularBasis is returned when the basis vectors are linearly dependent
	// within tolerance.
	ErrSingularBasis = fmt.Errorf("%w: basis is singular", ErrValidation)

	// ErrMalformedLattice is returned by group accessors on a Lattice that was
	// not built with New (e.g. the zero value).
	ErrMalformedLattice = fmt.Errorf("%w: lattice has no basis", ErrPrecondition)

	// ErrUnsupportedDimension is returned by group accessors when the dimension
	// exceeds the configured group-search limit.
	ErrUnsupportedDimension = fmt.Errorf("%w: dimension not supported for group search", ErrPrecondition)

	// ErrInconsistentGroups is returned when the point and lattice groups fail
	// to correspond one-to-one (tolerance too loose for this basis).
	ErrInconsistentGroups = fmt.Errorf("%w: point and lattice groups disagree", ErrPrecondition)
)

// latticeErrorf tags err with the failing operation.
func latticeErrorf(op string, err error) error {
	return fmt.Errorf("lattice.%s: %w", op, err)
}
