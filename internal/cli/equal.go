// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/latsym/lattice"
)

// newEqualCmd creates the "equal" command.
func newEqualCmd() *cobra.Command {
	var (
		basis, other string
		tol          float64
		output       string
	)

	cmd := &cobra.Command{
		Use:     "equal",
		Short:   "Report whether two bases generate the same lattice",
		Example: `  latsym equal --basis "1,0; 0,1" --other "1,1; 0,1"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(output); err != nil {
				return err
			}
			if err := checkTolerance(tol); err != nil {
				return err
			}
			a, err := readBasis(basis, lattice.WithTolerance(tol))
			if err != nil {
				return err
			}
			b, err := readBasis(other, lattice.WithTolerance(tol))
			if err != nil {
				return err
			}
			eq := a.Equal(b)
			loggerFromContext(cmd.Context()).Debug("compared lattices", "dimensions", []int{a.Dimension(), b.Dimension()}, "equal", eq)

			return writeBool(cmd.OutOrStdout(), output, eq, equalReport{Equal: eq})
		},
	}

	cmd.Flags().StringVarP(&basis, "basis", "b", "", "first basis")
	cmd.Flags().StringVar(&other, "other", "", "second basis")
	cmd.Flags().Float64Var(&tol, "tol", lattice.DefaultTolerance, "relative numeric tolerance")
	cmd.Flags().StringVarP(&output, "output", "o", formatText, "output format: text or yaml")
	_ = cmd.MarkFlagRequired("basis")
	_ = cmd.MarkFlagRequired("other")

	return cmd
}
