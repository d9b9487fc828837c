package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/drills/internal/cli/output"
	"github.com/leapstack-labs/drills/internal/drills"
	"github.com/spf13/cobra"
)

// NewTransposeCommand creates the transpose command.
func NewTransposeCommand() *cobra.Command {
	var matrixFlag string

	cmd := &cobra.Command{
		Use:   "transpose",
		Short: "Transpose a 3x3 matrix",
		Long: `Print a 3x3 matrix and its transpose as tables.

The matrix defaults to transpose.matrix from the configuration. Use
--matrix with rows separated by ";" and values by ",".`,
		Example: `  drills transpose
  drills transpose --matrix "1,2,3;4,5,6;7,8,9"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContextWithoutEngine(cmd)

			rows := cmdCtx.Cfg.Transpose.Matrix
			if cmd.Flags().Changed("matrix") {
				parsed, err := parseMatrixFlag(matrixFlag)
				if err != nil {
					return err
				}
				rows = parsed
			}

			m, err := drills.ParseMatrix3(rows)
			if err != nil {
				return fmt.Errorf("invalid --matrix: %w", err)
			}
			return renderTranspose(cmdCtx.Renderer, m)
		},
	}

	cmd.Flags().StringVar(&matrixFlag, "matrix", "", `Matrix rows, e.g. "1,2,3;4,5,6;7,8,9"`)

	return cmd
}

// parseMatrixFlag parses "1,2,3;4,5,6" into row-major values.
func parseMatrixFlag(s string) ([][]int32, error) {
	var rows [][]int32
	for _, rowStr := range strings.Split(s, ";") {
		var row []int32
		for _, cell := range strings.Split(rowStr, ",") {
			cell = strings.TrimSpace(cell)
			v, err := strconv.ParseInt(cell, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid matrix value %q", cell)
			}
			row = append(row, int32(v))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func renderTranspose(r *output.Renderer, m drills.Matrix3) error {
	t := drills.Transpose(m)

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(output.TransposeOutput{Matrix: m.Rows(), Transposed: t.Rows()})
	}

	header := []string{"", "c0", "c1", "c2"}
	r.Header(2, "Matrix")
	r.Table(header, matrixRows(m))
	r.Println("")
	r.Header(2, "Transposed")
	r.Table(header, matrixRows(t))
	return nil
}

func matrixRows(m drills.Matrix3) [][]any {
	rows := make([][]any, 0, 3)
	for i, row := range m {
		rows = append(rows, []any{fmt.Sprintf("r%d", i), row[0], row[1], row[2]})
	}
	return rows
}
