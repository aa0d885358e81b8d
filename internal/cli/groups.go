// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/latsym/group"
	"github.com/katalvlaran/latsym/lattice"
)

// newGroupsCmd creates the "groups" command.
func newGroupsCmd() *cobra.Command {
	var (
		basis    string
		tol      float64
		maxDim   int
		matrices bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Print the point, Laue, lattice and special lattice groups of a basis",
		Example: `  latsym groups --basis "1,0,1; 1,1,0; 0,1,1"
  latsym groups --basis "[[2,1,0],[0,1.73205081,0],[0,0,3]]" --matrices -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(output); err != nil {
				return err
			}
			if err := checkTolerance(tol); err != nil {
				return err
			}
			if maxDim < 1 {
				return fmt.Errorf("--max-dim must be >= 1, got %d", maxDim)
			}
			logger := loggerFromContext(cmd.Context())

			l, err := readBasis(basis, lattice.WithTolerance(tol), lattice.WithMaxGroupDimension(maxDim))
			if err != nil {
				return err
			}
			logger.Debug("parsed basis", "dimension", l.Dimension(), "lengths", l.Lengths())

			prog := newProgress(logger)
			named := []struct {
				name string
				get  func() (*group.MatrixGroup, error)
			}{
				{"point group", l.PointGroup},
				{"laue group", l.LaueGroup},
				{"lattice group", l.LatticeGroup},
				{"special lattice group", l.SpecialLatticeGroup},
			}
			report := groupsReport{
				Dimension: l.Dimension(),
				Tolerance: l.Tolerance(),
				Basis:     rowsOf(l.Base()),
			}
			ctx := cmd.Context()
			for _, n := range named {
				if err := ctx.Err(); err != nil {
					logger.Debug("interrupted", "before", n.name)
					return err
				}
				g, err := n.get()
				if err != nil {
					return err
				}
				gr := groupReport{Name: n.name, Order: g.Order()}
				if matrices {
					for _, m := range g.Matrices() {
						gr.Matrices = append(gr.Matrices, rowsOf(m))
					}
				}
				report.Groups = append(report.Groups, gr)
			}
			prog.done("computed groups", "point", report.Groups[0].Order, "laue", report.Groups[1].Order)

			return writeGroups(cmd.OutOrStdout(), output, report)
		},
	}

	cmd.Flags().StringVarP(&basis, "basis", "b", "", `basis rows, e.g. "1,0,1; 1,1,0; 0,1,1" (columns are basis vectors)`)
	cmd.Flags().Float64Var(&tol, "tol", lattice.DefaultTolerance, "relative numeric tolerance")
	cmd.Flags().IntVar(&maxDim, "max-dim", lattice.DefaultMaxGroupDimension, "largest dimension for the group search")
	cmd.Flags().BoolVar(&matrices, "matrices", false, "also print the group members")
	cmd.Flags().StringVarP(&output, "output", "o", formatText, "output format: text or yaml")
	_ = cmd.MarkFlagRequired("basis")

	return cmd
}
