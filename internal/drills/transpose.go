package drills

import (
	"fmt"
	"strings"
)

// Matrix3 is a fixed 3×3 integer grid.
type Matrix3 [3][3]int32

// Transpose returns m with rows and columns swapped.
func Transpose(m Matrix3) Matrix3 {
	var t Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] = m[j][i]
		}
	}
	return t
}

// ParseMatrix3 copies a row-major literal into a Matrix3.
func ParseMatrix3(rows [][]int32) (Matrix3, error) {
	var m Matrix3
	if len(rows) != 3 {
		return m, fmt.Errorf("%w: got %d rows", ErrBadShape, len(rows))
	}
	for i, row := range rows {
		if len(row) != 3 {
			return m, fmt.Errorf("%w: row %d has %d columns", ErrBadShape, i, len(row))
		}
		copy(m[i][:], row)
	}
	return m, nil
}

// Rows returns m as a row-major slice literal.
func (m Matrix3) Rows() [][]int32 {
	rows := make([][]int32, 3)
	for i := range m {
		rows[i] = append([]int32(nil), m[i][:]...)
	}
	return rows
}

// RowString renders row i as space-separated values with a trailing space.
func (m Matrix3) RowString(i int) string {
	var b strings.Builder
	for _, v := range m[i] {
		fmt.Fprintf(&b, "%d ", v)
	}
	return b.String()
}
