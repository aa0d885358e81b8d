// SPDX-License-Identifier: MIT
// Package lattice_test contains tests for the four symmetry groups.
package lattice_test

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/latsym/group"
	"github.com/katalvlaran/latsym/lattice"
	"github.com/katalvlaran/latsym/matrix"
	"github.com/stretchr/testify/require"
)

// allGroups fetches the four groups or fails the test.
func allGroups(t *testing.T, l *lattice.Lattice) (point, laue, lat, special *group.MatrixGroup) {
	t.Helper()
	var err error
	point, err = l.PointGroup()
	require.NoError(t, err)
	laue, err = l.LaueGroup()
	require.NoError(t, err)
	lat, err = l.LatticeGroup()
	require.NoError(t, err)
	special, err = l.SpecialLatticeGroup()
	require.NoError(t, err)

	return point, laue, lat, special
}

func TestGroupOrders(t *testing.T) {
	t.Parallel()

	for _, fx := range append(append([]fixture(nil), fixtures3D...), fixtures2D...) {
		fx := fx
		t.Run(fx.name, func(t *testing.T) {
			t.Parallel()
			l := mustLattice(t, fx.basis)
			point, laue, lat, special := allGroups(t, l)

			require.Equal(t, fx.point, point.Order(), "point group")
			require.Equal(t, fx.laue, laue.Order(), "laue group")
			require.Equal(t, point.Order(), lat.Order(), "lattice group")
			require.Equal(t, laue.Order(), special.Order(), "special lattice group")
			require.True(t, point.HasSubgroup(laue))
			require.True(t, lat.HasSubgroup(special))
			if l.Dimension() == 3 {
				require.Equal(t, 2*laue.Order(), point.Order())
			}
		})
	}
}

// TestGroupStructure checks closure, the identity-first ordering, determinant
// partitions and the Q ↔ M correspondence for every fixture.
func TestGroupStructure(t *testing.T) {
	t.Parallel()

	for _, fx := range append(append([]fixture(nil), fixtures3D...), fixtures2D...) {
		fx := fx
		t.Run(fx.name, func(t *testing.T) {
			t.Parallel()
			requireGroupStructure(t, mustLattice(t, fx.basis))
		})
	}
}

// TestGroupStructure_RandomBases runs the structure checks on seeded random
// bases, 4·rand(3,3) and 10·rand(2,2). Such bases are skewed and mostly
// triclinic or oblique, so every group holds at least {I, −I}.
func TestGroupStructure_RandomBases(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(20240917))
	randomBasis := func(n int, scale float64) [][]float64 {
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, n)
			for j := range rows[i] {
				rows[i][j] = scale * rng.Float64()
			}
		}
		return rows
	}

	var bases [][][]float64
	for i := 0; i < 25; i++ {
		bases = append(bases, randomBasis(3, 4))
	}
	for i := 0; i < 25; i++ {
		bases = append(bases, randomBasis(2, 10))
	}

	for i, rows := range bases {
		rows := rows
		t.Run(fmt.Sprintf("basis %d", i), func(t *testing.T) {
			l, err := lattice.New(rows)
			if errors.Is(err, lattice.ErrSingularBasis) {
				t.Skip("singular draw")
			}
			require.NoError(t, err)
			point, laue := requireGroupStructure(t, l)

			id, err := matrix.NewIdentity(l.Dimension())
			require.NoError(t, err)
			minus, err := matrix.Scale(id, -1)
			require.NoError(t, err)
			require.True(t, point.Contains(minus), "−I is always a lattice symmetry")
			if l.Dimension() == 3 {
				require.Equal(t, 2*laue.Order(), point.Order())
			}
		})
	}
}

// TestGroups_InvariantUnderRebasing checks that E and E·M, for unimodular M
// with large entries, give equal lattices with the same group orders.
func TestGroups_InvariantUnderRebasing(t *testing.T) {
	t.Parallel()

	shear := func(k float64) [][]float64 {
		return [][]float64{{1, k, 0}, {0, 1, k}, {0, 0, 1}}
	}
	mixed3 := [][]float64{{1, 5, 0}, {4, 21, 6}, {2, 13, 19}}
	mixed2 := [][]float64{{3, 5}, {4, 7}}
	wide2 := [][]float64{{2, 9}, {1, 5}}

	byName := make(map[string]fixture)
	for _, fx := range append(append([]fixture(nil), fixtures3D...), fixtures2D...) {
		byName[fx.name] = fx
	}

	tests := []struct {
		fixture string
		m       [][]float64
	}{
		{"simple cubic", shear(6)},
		{"simple cubic", shear(9)},
		{"simple cubic", shear(10)},
		{"simple cubic", mixed3},
		{"fcc", mixed3},
		{"bcc", shear(7)},
		{"hexagonal", mixed3},
		{"hexagonal rounded", shear(8)},
		{"rhombohedral", mixed3},
		{"tetragonal", shear(10)},
		{"orthorhombic", mixed3},
		{"monoclinic", mixed3},
		{"triclinic a", shear(10)},
		{"triclinic b", mixed3},
		{"square", mixed2},
		{"centered rectangular", wide2},
		{"hexagonal 2d", mixed2},
		{"oblique", wide2},
	}
	for i, tc := range tests {
		tc := tc
		fx, ok := byName[tc.fixture]
		require.True(t, ok, tc.fixture)
		t.Run(fmt.Sprintf("%s %d", tc.fixture, i), func(t *testing.T) {
			t.Parallel()
			m := mustMatrix(t, tc.m)
			require.InDelta(t, 1, math.Abs(det(t, m)), 1e-9, "unimodular")

			base := mustLattice(t, fx.basis)
			rebased, err := lattice.NewFromMatrix(product(t, mustMatrix(t, fx.basis), m))
			require.NoError(t, err)
			require.True(t, base.Equal(rebased))
			require.True(t, rebased.Equal(base))

			point, laue, lat, special := allGroups(t, rebased)
			require.Equal(t, fx.point, point.Order(), "point group")
			require.Equal(t, fx.laue, laue.Order(), "laue group")
			require.Equal(t, fx.point, lat.Order(), "lattice group")
			require.Equal(t, fx.laue, special.Order(), "special lattice group")

			basePoint, err := base.PointGroup()
			require.NoError(t, err)
			require.True(t, basePoint.Equal(point), "point group is a property of the lattice")
			requireGroupStructure(t, rebased)
		})
	}
}

// requireGroupStructure asserts closure, identity-first ordering, the
// determinant partitions and the Q ↔ M correspondence, and returns the point
// and Laue groups.
func requireGroupStructure(t *testing.T, l *lattice.Lattice) (point, laue *group.MatrixGroup) {
	t.Helper()
	point, laue, lat, special := allGroups(t, l)
	e := l.Base()
	eInv := inverse(t, e)
	n := l.Dimension()
	id, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	require.Equal(t, point.Order(), lat.Order())
	require.Equal(t, laue.Order(), special.Order())
	require.True(t, point.IsClosed())
	require.True(t, lat.IsClosed())
	require.True(t, point.Contains(id))
	ok, err := matrix.AllClose(id, lat.Matrices()[0], 0)
	require.NoError(t, err)
	require.True(t, ok, "identity comes first")

	tol := l.Tolerance()
	for _, q := range point.Matrices() {
		ok, err := matrix.IsOrthogonal(q, tol)
		require.NoError(t, err)
		require.True(t, ok)
		d := det(t, q)
		require.InDelta(t, 1, math.Abs(d), tol)
		require.Equal(t, d > 0, laue.Contains(q))

		m, err := matrix.Round(product(t, eInv, q, e))
		require.NoError(t, err)
		require.True(t, lat.Contains(m))
		require.True(t, l.InPointGroup(q))

		image, err := lattice.NewFromMatrix(product(t, q, e))
		require.NoError(t, err)
		require.True(t, l.Equal(image), "Q·E spans the same lattice")
	}

	for _, m := range lat.Matrices() {
		ok, err := matrix.IsIntegral(m, 0)
		require.NoError(t, err)
		require.True(t, ok)
		d := det(t, m)
		require.Equal(t, 1.0, math.Abs(math.Round(d)))
		require.Equal(t, d > 0, special.Contains(m))
		require.True(t, l.InLatticeGroup(m))
		require.True(t, point.Contains(product(t, e, m, eInv)))

		image, err := lattice.NewFromMatrix(product(t, e, m))
		require.NoError(t, err)
		require.True(t, l.Equal(image), "E·M spans the same lattice")
	}

	return point, laue
}

func TestPointGroup_FCC(t *testing.T) {
	t.Parallel()

	fcc := mustLattice(t, [][]float64{{1, 0, 1}, {1, 1, 0}, {0, 1, 1}})
	point, laue, _, _ := allGroups(t, fcc)

	q := mustMatrix(t, [][]float64{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}})
	require.True(t, point.Contains(q))
	require.True(t, laue.Contains(q)) // det = +1
	require.True(t, fcc.InPointGroup(q))
	require.True(t, laue.Equal(group.CubicLaueGroup))

	mirror := mustMatrix(t, [][]float64{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}})
	require.True(t, point.Contains(mirror))
	require.False(t, laue.Contains(mirror))

	mono := mustLattice(t, [][]float64{{2, 0, 0.20934382}, {0, 3, 0}, {0, 0, 3.99451814}})
	require.False(t, mono.InPointGroup(q))
	monoPoint, err := mono.PointGroup()
	require.NoError(t, err)
	require.True(t, point.HasSubgroup(monoPoint))
	require.False(t, monoPoint.HasSubgroup(point))
}

func TestPointGroup_Hexagonal(t *testing.T) {
	t.Parallel()

	for _, rows := range [][][]float64{
		{{2, 1, 0}, {0, sqrt3, 0}, {0, 0, 3}},
		{{2, 1, 0}, {0, 1.73205081, 0}, {0, 0, 3}},
	} {
		hex := mustLattice(t, rows)
		point, laue, _, _ := allGroups(t, hex)

		for _, q := range group.HexLaueGroup.Matrices() {
			require.True(t, hex.InPointGroup(q))
			require.True(t, point.Contains(q))
		}
		require.True(t, laue.Equal(group.HexLaueGroup))
		require.True(t, point.HasSubgroup(group.HexLaueGroup))

		fcc := mustLattice(t, [][]float64{{1, 0, 1}, {1, 1, 0}, {0, 1, 1}})
		fccPoint, err := fcc.PointGroup()
		require.NoError(t, err)
		require.False(t, fccPoint.HasSubgroup(point))
	}
}

func TestPointGroup_2D(t *testing.T) {
	t.Parallel()

	square := mustLattice(t, [][]float64{{2, 0}, {0, 2}})
	rect := mustLattice(t, [][]float64{{1, -1}, {1.5, 1.5}})
	hex := mustLattice(t, [][]float64{{2, 1}, {0, 1.73205081}})

	sq, err := square.PointGroup()
	require.NoError(t, err)
	require.True(t, sq.Equal(group.SquareGroup2D))

	rp, err := rect.PointGroup()
	require.NoError(t, err)
	require.True(t, sq.HasSubgroup(rp))
	for _, rows := range [][][]float64{
		{{1, 0}, {0, 1}},
		{{-1, 0}, {0, -1}},
		{{1, 0}, {0, -1}},
		{{-1, 0}, {0, 1}},
	} {
		require.True(t, rp.Contains(mustMatrix(t, rows)))
	}

	hp, err := hex.PointGroup()
	require.NoError(t, err)
	require.True(t, hp.Equal(group.HexGroup2D))
}

func TestGroups_UnsupportedDimension(t *testing.T) {
	t.Parallel()

	id4 := [][]float64{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
	l := mustLattice(t, id4)
	for _, get := range []func() (*group.MatrixGroup, error){
		l.PointGroup, l.LaueGroup, l.LatticeGroup, l.SpecialLatticeGroup,
	} {
		g, err := get()
		require.Nil(t, g)
		require.ErrorIs(t, err, lattice.ErrUnsupportedDimension)
		require.ErrorIs(t, err, lattice.ErrPrecondition)
	}

	// The hypercube: 2^4 · 4! signed permutations.
	wide := mustLattice(t, id4, lattice.WithMaxGroupDimension(4))
	point, laue, lat, special := allGroups(t, wide)
	require.Equal(t, 384, point.Order())
	require.Equal(t, 192, laue.Order())
	require.Equal(t, 384, lat.Order())
	require.Equal(t, 192, special.Order())
}

func TestGroups_MalformedLattice(t *testing.T) {
	t.Parallel()

	var l lattice.Lattice
	for _, get := range []func() (*group.MatrixGroup, error){
		l.PointGroup, l.LaueGroup, l.LatticeGroup, l.SpecialLatticeGroup,
	} {
		_, err := get()
		require.ErrorIs(t, err, lattice.ErrMalformedLattice)
		require.ErrorIs(t, err, lattice.ErrPrecondition)
		require.NotErrorIs(t, err, lattice.ErrValidation)
	}
}

func TestGroups_CachedAndConcurrent(t *testing.T) {
	t.Parallel()

	l := mustLattice(t, [][]float64{{1, -1, 1}, {1, 1, -1}, {-1, 1, 1}})
	const workers = 8
	results := make([]*group.MatrixGroup, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			g, err := l.PointGroup()
			if err == nil {
				results[i] = g
			}
		}(i)
	}
	wg.Wait()

	for _, g := range results {
		require.NotNil(t, g)
		require.Same(t, results[0], g)
	}
	again, err := l.PointGroup()
	require.NoError(t, err)
	require.Same(t, results[0], again)
}
