// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/latsym/lattice"
)

// Group kinds accepted by member --kind.
const (
	kindPoint   = "point"
	kindLattice = "lattice"
)

// newMemberCmd creates the "member" command.
func newMemberCmd() *cobra.Command {
	var (
		basis, mat, kind string
		tol              float64
		output           string
	)

	cmd := &cobra.Command{
		Use:   "member",
		Short: "Test whether a matrix belongs to the point or lattice group of a basis",
		Example: `  latsym member --basis "1,0,1; 1,1,0; 0,1,1" --matrix "0,1,0; 1,0,0; 0,0,-1"
  latsym member --basis "1,0,1; 1,1,0; 0,1,1" --matrix "0,1,0; 1,0,0; 0,0,1" --kind lattice`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(output); err != nil {
				return err
			}
			if err := checkTolerance(tol); err != nil {
				return err
			}
			if kind != kindPoint && kind != kindLattice {
				return fmt.Errorf("%w: %q (want %s or %s)", errUnknownKind, kind, kindPoint, kindLattice)
			}
			l, err := readBasis(basis, lattice.WithTolerance(tol))
			if err != nil {
				return err
			}
			m, err := readMatrix(mat)
			if err != nil {
				return err
			}

			var ok bool
			if kind == kindPoint {
				ok = l.InPointGroup(m)
			} else {
				ok = l.InLatticeGroup(m)
			}
			loggerFromContext(cmd.Context()).Debug("membership", "kind", kind, "member", ok)

			return writeBool(cmd.OutOrStdout(), output, ok, memberReport{Kind: kind, Member: ok})
		},
	}

	cmd.Flags().StringVarP(&basis, "basis", "b", "", "lattice basis")
	cmd.Flags().StringVarP(&mat, "matrix", "m", "", "matrix to test, same syntax as --basis")
	cmd.Flags().StringVar(&kind, "kind", kindPoint, "group to test against: point or lattice")
	cmd.Flags().Float64Var(&tol, "tol", lattice.DefaultTolerance, "relative numeric tolerance")
	cmd.Flags().StringVarP(&output, "output", "o", formatText, "output format: text or yaml")
	_ = cmd.MarkFlagRequired("basis")
	_ = cmd.MarkFlagRequired("matrix")

	return cmd
}
