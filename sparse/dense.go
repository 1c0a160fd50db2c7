// SPDX-License-Identifier: MIT

package sparse

const ctxFromDense = "FromDense"

// FromDense builds a grid from a row-major [][]int; zero entries are skipped.
// An empty outer slice yields a 0×0 grid.
//
// Errors:
//   - ErrDimensionMismatch when rows have different lengths.
//
// Complexity: O(rows*cols).
func FromDense(data [][]int, opts ...Option) (*Grid, error) {
	rows, cols := len(data), 0
	if rows > 0 {
		cols = len(data[0])
	}
	g, err := New(rows, cols, opts...)
	if err != nil {
		return nil, opErrorf(ctxFromDense, err)
	}
	for i, row := range data {
		if len(row) != cols {
			return nil, opErrorf(ctxFromDense, ErrDimensionMismatch)
		}
		for j, v := range row {
			g.appendCell(i, j, v) // row-major walk keeps reading order
		}
	}

	return g, nil
}

// ToDense expands g into a freshly allocated rows×cols [][]int.
// Complexity: O(rows*cols) memory; O(nnz) writes.
func (g *Grid) ToDense() [][]int {
	out := make([][]int, g.rows)
	for i := range out {
		out[i] = make([]int, g.cols)
	}
	for _, c := range g.cells {
		out[c.Row][c.Col] = c.Value
	}

	return out
}
