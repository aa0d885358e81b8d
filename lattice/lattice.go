// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/latsym/group"
	"github.com/katalvlaran/latsym/matrix"
)

// Lattice is the point set generated by integer combinations of the columns of
// an n×n basis E. It is immutable once built by New; the four symmetry groups
// are computed lazily and cached.
//
// Numeric decisions run on an LLL-reduced basis of the same lattice, so they
// do not depend on how skewed E is.
type Lattice struct {
	dim   int           // n
	basis *matrix.Dense // E, columns are basis vectors
	gram  *matrix.Dense // G = EᵀE
	red   *reduction    // B = E·U
	opts  Options

	once   sync.Once // guards groups/errG
	groups *groupSet
	errG   error
}

// groupSet bundles the four cached groups.
type groupSet struct {
	point, laue, lattice, special *group.MatrixGroup
}

// New builds a Lattice from a row-major basis literal; columns are basis vectors.
//
// Implementation:
//   - Stage 1: shape checks (non-empty, square, finite).
//   - Stage 2: singularity check |det E| ≤ tol·∏‖eᵢ‖ (scale-free).
//   - Stage 3: cache the Gram matrix and an LLL-reduced basis.
//
// Errors (all match ErrValidation):
//   - ErrEmptyBasis, ErrNonSquareBasis, ErrNonFiniteBasis, ErrSingularBasis.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func New(rows [][]float64, opts ...Option) (*Lattice, error) {
	n := len(rows)
	if n == 0 {
		return nil, latticeErrorf("New", ErrEmptyBasis)
	}
	for i, r := range rows {
		if len(r) == 0 {
			return nil, latticeErrorf("New", ErrEmptyBasis)
		}
		if len(r) != n {
			return nil, latticeErrorf("New", fmt.Errorf("row %d has %d entries, want %d: %w", i, len(r), n, ErrNonSquareBasis))
		}
	}
	basis, err := matrix.NewDenseFrom(rows)
	if err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return nil, latticeErrorf("New", ErrNonFiniteBasis)
		}
		return nil, latticeErrorf("New", fmt.Errorf("%w: %v", ErrValidation, err))
	}

	return build(basis, gatherOptions(opts...))
}

// NewFromMatrix builds a Lattice from any square matrix; columns are basis vectors.
// Errors are the same as New; a nil matrix yields ErrEmptyBasis.
func NewFromMatrix(m matrix.Matrix, opts ...Option) (*Lattice, error) {
	if matrix.ValidateNotNil(m) != nil {
		return nil, latticeErrorf("NewFromMatrix", ErrEmptyBasis)
	}
	rows := make([][]float64, m.Rows())
	for i := range rows {
		rows[i] = make([]float64, m.Cols())
		for j := range rows[i] {
			v, err := m.At(i, j)
			if err != nil {
				return nil, latticeErrorf("NewFromMatrix", fmt.Errorf("%w: %v", ErrValidation, err))
			}
			rows[i][j] = v
		}
	}

	return New(rows, opts...)
}

// build runs the singularity check and fills the derived caches.
func build(basis *matrix.Dense, o Options) (*Lattice, error) {
	n := basis.Rows()
	det, err := matrix.Det(basis)
	if err != nil {
		return nil, latticeErrorf("New", fmt.Errorf("%w: %v", ErrValidation, err))
	}
	// Hadamard bound: |det E| ≤ ∏‖eᵢ‖, with equality for orthogonal columns.
	bound := 1.0
	for j := 0; j < n; j++ {
		col, _ := matrix.Column(basis, j)
		bound *= norm(col)
	}
	if bound == 0 || math.Abs(det) <= o.tol*bound {
		return nil, latticeErrorf("New", ErrSingularBasis)
	}

	gram, err := gramOf(basis)
	if err != nil {
		return nil, latticeErrorf("New", fmt.Errorf("%w: %v", ErrValidation, err))
	}
	red, err := reduce(basis)
	if err != nil {
		return nil, latticeErrorf("New", fmt.Errorf("%w: %v", ErrSingularBasis, err))
	}

	return &Lattice{
		dim:   n,
		basis: basis,
		gram:  gram,
		red:   red,
		opts:  o,
	}, nil
}

// ParseBasis reads a basis literal from text in one of two forms:
//
//	"1,0,1; 1,1,0; 0,1,1"       rows split by ';' or newlines, entries by ',' or blanks
//	"[[1,0,1],[1,1,0],[0,1,1]]" a YAML (or JSON) sequence of rows
//
// Shape is not checked here; New does that.
//
// Errors:
//   - ErrEmptyBasis (blank input), ErrNonNumericBasis.
func ParseBasis(s string) ([][]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, latticeErrorf("ParseBasis", ErrEmptyBasis)
	}
	if strings.HasPrefix(s, "[") {
		var rows [][]float64
		if err := yaml.Unmarshal([]byte(s), &rows); err != nil {
			return nil, latticeErrorf("ParseBasis", fmt.Errorf("%w: %v", ErrNonNumericBasis, err))
		}
		if len(rows) == 0 {
			return nil, latticeErrorf("ParseBasis", ErrEmptyBasis)
		}
		return rows, nil
	}

	lines := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' })
	rows := make([][]float64, 0, len(lines))
	for _, line := range lines {
		fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		if len(fields) == 0 {
			continue // blank row, e.g. trailing ';'
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, latticeErrorf("ParseBasis", fmt.Errorf("%w: %q", ErrNonNumericBasis, f))
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, latticeErrorf("ParseBasis", ErrEmptyBasis)
	}

	return rows, nil
}

// valid reports whether l was built by New.
func (l *Lattice) valid() bool {
	return l != nil && l.basis != nil && l.gram != nil && l.red != nil
}

// Dimension returns n. A malformed lattice reports 0.
func (l *Lattice) Dimension() int {
	if !l.valid() {
		return 0
	}

	return l.dim
}

// Base returns a copy of the basis matrix E (columns are basis vectors).
func (l *Lattice) Base() matrix.Matrix {
	if !l.valid() {
		return nil
	}

	return l.basis.Clone()
}

// Tolerance returns the relative tolerance the lattice was built with.
func (l *Lattice) Tolerance() float64 { return l.opts.tol }

// Equal reports whether l and other generate the same point set: same
// dimension, R = round(B₁⁻¹·B₂) has determinant ±1, and B₁·R matches B₂ within
// tol·max‖bⱼ‖ (the larger of the two lattices' tolerances). B₁ and B₂ are the
// reduced bases, so the answer does not depend on the bases passed to New.
// nil or malformed lattices are never equal to anything.
// Complexity: O(n^3).
func (l *Lattice) Equal(other *Lattice) bool {
	if !l.valid() || !other.valid() || l.dim != other.dim {
		return false
	}
	x, err := matrix.Mul(l.red.inv, other.red.basis)
	if err != nil {
		return false
	}
	r, err := matrix.Round(x)
	if err != nil {
		return false
	}
	det, err := matrix.Det(r)
	if err != nil || math.Abs(math.Round(det)) != 1 {
		return false
	}
	image, err := matrix.Mul(l.red.basis, r)
	if err != nil {
		return false
	}
	ok, err := matrix.AllClose(image, other.red.basis, math.Max(l.lengthTol(), other.lengthTol()))

	return err == nil && ok
}

// String renders the basis for diagnostics.
func (l *Lattice) String() string {
	if !l.valid() {
		return "Lattice(<malformed>)"
	}

	return fmt.Sprintf("Lattice(dim=%d)\n%s", l.dim, l.basis)
}
