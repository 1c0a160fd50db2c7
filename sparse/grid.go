// SPDX-License-Identifier: MIT

// Package sparse - Grid storage (sorted triples) & safe accessors.
//
// Purpose:
//   - Store only nonzero entries as a slice of Cell kept in reading order.
//   - Guarantee safety at the public surface: Set/Remove/At return errors instead of panicking.
//   - A failed call never mutates the grid.
//
// Invariants (hold before and after every public method):
//   - cells sorted ascending by (Row, Col);
//   - no two cells share a position;
//   - no cell stores 0;
//   - every cell lies inside [0,rows) × [0,cols).
//
// Complexity quicksheet:
//   - New/Clear/Resize: O(1); At: O(log nnz); Set/Remove: O(log nnz + nnz) worst case (slice shift);
//   - Clone/Cells: O(nnz).
package sparse

import "slices"

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRemove = "Remove"
)

// Grid is a fixed-bound sparse matrix of ints.
// The zero value is a usable 0×0 grid. A Grid is not safe for concurrent
// mutation; guard it externally or exchange clones between goroutines.
type Grid struct {
	rows, cols int     // bounds (>= 0)
	cells      []Cell  // nonzero entries, strictly increasing in reading order
	opts       Options // arithmetic policy inherited by Add/Mul results
}

// Compile-time assertion for interface conformance.
var _ Matrix = (*Grid)(nil)

// New creates an empty rows×cols grid.
// Zero-sized grids are legal and always empty.
//
// Errors:
//   - ErrInvalidDimensions if rows < 0 or cols < 0.
//
// Complexity: O(1).
func New(rows, cols int, opts ...Option) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Grid{
		rows: rows,
		cols: cols,
		opts: gatherOptions(defaultOptions(), opts...),
	}, nil
}

// NewDefault creates an empty DefaultRows×DefaultCols grid.
func NewDefault(opts ...Option) *Grid {
	g, _ := New(DefaultRows, DefaultCols, opts...) // constant bounds are valid

	return g
}

// Rows returns the row bound.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the column bound.
func (g *Grid) Cols() int { return g.cols }

// Dims returns (rows, cols).
func (g *Grid) Dims() (rows, cols int) { return g.rows, g.cols }

// NNZ returns the number of stored nonzero cells.
func (g *Grid) NNZ() int { return len(g.cells) }

// Clear discards every cell; bounds are unchanged.
// Complexity: O(1) (the old slice is released to the GC).
func (g *Grid) Clear() {
	g.cells = nil
}

// Resize discards every cell and adopts the new bounds.
// It behaves exactly like constructing a fresh grid, except that options are kept.
//
// Errors:
//   - ErrInvalidDimensions if rows < 0 or cols < 0; the grid is left untouched.
func (g *Grid) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrInvalidDimensions
	}
	g.Clear()
	g.rows, g.cols = rows, cols

	return nil
}

// inBounds reports whether (row, col) addresses a cell of g.
func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// search returns the index of the first cell whose key is >= (row, col) and
// whether that cell sits exactly at (row, col).
// The probe carries a zero value; only its position takes part in the comparison.
// Complexity: O(log nnz).
func (g *Grid) search(row, col int) (int, bool) {
	probe := Cell{Row: row, Col: col}

	return slices.BinarySearchFunc(g.cells, probe, func(e, t Cell) int {
		return compareKey(e.Row, e.Col, t.Row, t.Col)
	})
}

// At returns the value stored at (row, col), or 0 for an empty position.
//
// Errors:
//   - ErrOutOfRange (wrapped with coordinates) when the position is outside
//     the bounds. The returned value is then 0 and must not be read as data.
func (g *Grid) At(row, col int) (int, error) {
	if !g.inBounds(row, col) {
		return 0, gridErrorf(ctxAt, row, col, ErrOutOfRange)
	}
	if i, ok := g.search(row, col); ok {
		return g.cells[i].Value, nil
	}

	return 0, nil
}

// Set stores value at (row, col), overwriting any previous value.
// Setting 0 removes the cell at that position; no zero is ever stored.
//
// Errors:
//   - ErrOutOfRange (wrapped with coordinates); the grid is unchanged.
func (g *Grid) Set(row, col, value int) error {
	if !g.inBounds(row, col) {
		return gridErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	g.set(row, col, value)

	return nil
}

// set is Set without the bounds check. Callers guarantee inBounds(row, col).
func (g *Grid) set(row, col, value int) {
	i, found := g.search(row, col)
	switch {
	case value == 0 && found:
		g.cells = slices.Delete(g.cells, i, i+1)
	case value == 0:
		// nothing stored, nothing to remove
	case found:
		g.cells[i].Value = value // same position, same slot: order is preserved
	default:
		// i is the first cell with a greater key; inserting there keeps reading order.
		g.cells = slices.Insert(g.cells, i, Cell{Row: row, Col: col, Value: value})
	}
}

// Remove deletes the cell at (row, col) if one is stored; otherwise it is a no-op.
//
// Errors:
//   - ErrOutOfRange (wrapped with coordinates); the grid is unchanged.
func (g *Grid) Remove(row, col int) error {
	if !g.inBounds(row, col) {
		return gridErrorf(ctxRemove, row, col, ErrOutOfRange)
	}
	g.set(row, col, 0)

	return nil
}

// Cells returns a copy of the stored cells in reading order.
// Mutating the returned slice does not affect g.
func (g *Grid) Cells() []Cell {
	return slices.Clone(g.cells)
}

// Clone returns an independent deep copy of g, options included.
// Complexity: O(nnz).
func (g *Grid) Clone() *Grid {
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: slices.Clone(g.cells),
		opts:  g.opts,
	}
}

// appendCell appends a cell known to sort after every stored cell.
// Kernels that emit results in reading order use it to skip the search.
func (g *Grid) appendCell(row, col, value int) {
	if value == 0 {
		return
	}
	g.cells = append(g.cells, Cell{Row: row, Col: col, Value: value})
}
