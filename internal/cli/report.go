// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/latsym/lattice"
	"github.com/katalvlaran/latsym/matrix"
)

// Output formats accepted by -o/--output.
const (
	formatText = "text"
	formatYAML = "yaml"
)

// displayTol snaps printed entries within this distance of an integer.
const displayTol = 1e-9

var (
	errUnknownFormat = errors.New("unknown output format")
	errUnknownKind   = errors.New("unknown group kind")
)

// groupReport is one group in a groups report.
type groupReport struct {
	Name     string        `yaml:"name"`
	Order    int           `yaml:"order"`
	Matrices [][][]float64 `yaml:"matrices,omitempty"`
}

// groupsReport is the result of the groups command.
type groupsReport struct {
	Dimension int           `yaml:"dimension"`
	Tolerance float64       `yaml:"tolerance"`
	Basis     [][]float64   `yaml:"basis"`
	Groups    []groupReport `yaml:"groups"`
}

// equalReport is the result of the equal command.
type equalReport struct {
	Equal bool `yaml:"equal"`
}

// memberReport is the result of the member command.
type memberReport struct {
	Kind   string `yaml:"kind"`
	Member bool   `yaml:"member"`
}

// checkFormat rejects anything but text and yaml.
func checkFormat(format string) error {
	if format != formatText && format != formatYAML {
		return fmt.Errorf("%w: %q (want %s or %s)", errUnknownFormat, format, formatText, formatYAML)
	}
	return nil
}

// checkTolerance rejects tolerances the lattice options would refuse.
func checkTolerance(tol float64) error {
	if !(tol > 0) || math.IsInf(tol, 0) {
		return fmt.Errorf("--tol must be finite and > 0, got %g", tol)
	}
	return nil
}

// writeYAML encodes v as a YAML document with two-space indentation.
func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// writeGroups renders r as text or YAML.
func writeGroups(w io.Writer, format string, r groupsReport) error {
	if format == formatYAML {
		return writeYAML(w, r)
	}
	fmt.Fprintf(w, "dimension: %d\n", r.Dimension)
	for _, g := range r.Groups {
		fmt.Fprintf(w, "%-22s %d\n", g.Name+":", g.Order)
	}
	for _, g := range r.Groups {
		if len(g.Matrices) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n", g.Name)
		for i, m := range g.Matrices {
			fmt.Fprintf(w, "  #%d\n", i+1)
			for _, row := range m {
				fmt.Fprintf(w, "    %v\n", row)
			}
		}
	}
	return nil
}

// writeBool renders a single yes/no answer as text ("true"/"false") or YAML.
func writeBool(w io.Writer, format string, answer bool, report interface{}) error {
	if format == formatYAML {
		return writeYAML(w, report)
	}
	_, err := fmt.Fprintln(w, answer)
	return err
}

// readBasis parses a basis flag and builds the lattice.
func readBasis(s string, opts ...lattice.Option) (*lattice.Lattice, error) {
	rows, err := lattice.ParseBasis(s)
	if err != nil {
		return nil, err
	}
	return lattice.New(rows, opts...)
}

// readMatrix parses a matrix flag with the same text syntax as a basis.
func readMatrix(s string) (matrix.Matrix, error) {
	rows, err := lattice.ParseBasis(s)
	if err != nil {
		return nil, err
	}
	m, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("read matrix: %w", err)
	}
	return m, nil
}

// rowsOf exports m row by row, snapping near-integers so reports stay readable.
func rowsOf(m matrix.Matrix) [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, _ := m.At(i, j)
			if r := math.Round(v); math.Abs(v-r) <= displayTol {
				v = r + 0
			}
			out[i][j] = v
		}
	}
	return out
}
