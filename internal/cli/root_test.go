// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/latsym/lattice"
)

const fccBasis = "1,0,1; 1,1,0; 0,1,1"

// run executes the CLI and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := Execute(context.Background(), args, &out, &errOut)

	return out.String(), errOut.String(), err
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersion("dev", "", "") })

	out, _, err := run(t, "--version")
	require.NoError(t, err)
	require.Equal(t, "latsym 1.0.0\ncommit: abc123\nbuilt: 2026-01-01\n", out)
}

func TestGroups_Text(t *testing.T) {
	out, _, err := run(t, "groups", "--basis", fccBasis)
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"dimension: 3",
		"point group:           48",
		"laue group:            24",
		"lattice group:         48",
		"special lattice group: 24",
		"",
	}, "\n"), out)
}

func TestGroups_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errOut bytes.Buffer
	err := Execute(ctx, []string{"groups", "--basis", fccBasis}, &out, &errOut)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, out.String())
}

func TestGroups_ShearedBasis(t *testing.T) {
	out, _, err := run(t, "groups", "--basis", "1,10,0; 0,1,10; 0,0,1")
	require.NoError(t, err)
	require.Contains(t, out, "point group:           48")
	require.Contains(t, out, "special lattice group: 24")
}

func TestGroups_YAMLWithMatrices(t *testing.T) {
	out, _, err := run(t, "groups", "-b", "2,0; 0,2", "--matrices", "-o", "yaml")
	require.NoError(t, err)

	var r groupsReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	require.Equal(t, 2, r.Dimension)
	require.Equal(t, lattice.DefaultTolerance, r.Tolerance)
	require.Equal(t, [][]float64{{2, 0}, {0, 2}}, r.Basis)
	require.Len(t, r.Groups, 4)

	want := []groupReport{
		{Name: "point group", Order: 8},
		{Name: "laue group", Order: 4},
		{Name: "lattice group", Order: 8},
		{Name: "special lattice group", Order: 4},
	}
	if diff := cmp.Diff(want, r.Groups, cmpopts.IgnoreFields(groupReport{}, "Matrices")); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
	for _, g := range r.Groups {
		require.Len(t, g.Matrices, g.Order, g.Name)
	}
	require.Equal(t, [][]float64{{1, 0}, {0, 1}}, r.Groups[2].Matrices[0])
}

func TestGroups_VerboseLogsToStderr(t *testing.T) {
	_, errOut, err := run(t, "-v", "groups", "--basis", "1,0; 0,1")
	require.NoError(t, err)
	require.Contains(t, errOut, "computed groups")

	_, errOut, err = run(t, "groups", "--basis", "1,0; 0,1")
	require.NoError(t, err)
	require.Empty(t, errOut)
}

func TestGroups_Errors(t *testing.T) {
	_, _, err := run(t, "groups", "--basis", "adfda")
	require.ErrorIs(t, err, lattice.ErrValidation)

	_, _, err = run(t, "groups", "--basis", "1,0,0; 0,0,0; 0,0,1")
	require.ErrorIs(t, err, lattice.ErrSingularBasis)

	id4 := "1,0,0,0; 0,1,0,0; 0,0,1,0; 0,0,0,1"
	_, _, err = run(t, "groups", "--basis", id4)
	require.ErrorIs(t, err, lattice.ErrPrecondition)

	out, _, err := run(t, "groups", "--basis", id4, "--max-dim", "4")
	require.NoError(t, err)
	require.Contains(t, out, "point group:           384")

	_, _, err = run(t, "groups", "--basis", fccBasis, "-o", "json")
	require.ErrorIs(t, err, errUnknownFormat)

	_, _, err = run(t, "groups", "--basis", fccBasis, "--tol", "0")
	require.Error(t, err)

	_, _, err = run(t, "groups")
	require.Error(t, err) // --basis is required
}

func TestEqual(t *testing.T) {
	out, _, err := run(t, "equal", "--basis", "1,0; 0,1", "--other", "1,1; 0,1")
	require.NoError(t, err)
	require.Equal(t, "true\n", out)

	out, _, err = run(t, "equal", "--basis", "1,0; 0,1", "--other", "2,0; 0,1", "-o", "yaml")
	require.NoError(t, err)
	var r equalReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	require.False(t, r.Equal)

	_, _, err = run(t, "equal", "--basis", "1,0; 0,1", "--other", "")
	require.ErrorIs(t, err, lattice.ErrEmptyBasis)
}

func TestMember(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"point member", []string{"--matrix", "0,1,0; 1,0,0; 0,0,-1"}, "true\n"},
		{"point non-member", []string{"--matrix", "1,1,0; 0,1,0; 0,0,1"}, "false\n"},
		{"lattice member", []string{"--matrix", "0,1,0; 1,0,0; 0,0,1", "--kind", "lattice"}, "true\n"},
		{"lattice non-member", []string{"-m", "1,1,0; 0,1,0; 0,0,1", "--kind", "lattice"}, "false\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, append([]string{"member", "--basis", fccBasis}, tt.args...)...)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}

	out, _, err := run(t, "member", "-b", fccBasis, "-m", "0,1,0; 1,0,0; 0,0,-1", "-o", "yaml")
	require.NoError(t, err)
	require.Equal(t, "kind: point\nmember: true\n", out)

	_, _, err = run(t, "member", "-b", fccBasis, "-m", "1,0,0; 0,1,0; 0,0,1", "--kind", "laue")
	require.ErrorIs(t, err, errUnknownKind)

	_, _, err = run(t, "member", "-b", fccBasis, "-m", "x")
	require.ErrorIs(t, err, lattice.ErrNonNumericBasis)
}
