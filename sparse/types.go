// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by the grid and its operations.
// This file contains ONLY the Cell triple, the Matrix capability interface
// and the row-major ordering used to keep storage sorted.
package sparse

// Cell is one stored nonzero entry of a Grid.
// A Cell with Value == 0 is never stored; Value is ignored by SamePos.
type Cell struct {
	Row   int // row index, 0 <= Row < rows
	Col   int // column index, 0 <= Col < cols
	Value int // nonzero payload
}

// SamePos reports whether c and o address the same (row, col) position.
// Values are not compared.
func (c Cell) SamePos(o Cell) bool {
	return c.Row == o.Row && c.Col == o.Col
}

// compareKey orders positions in reading order: row first, then column.
// Returns -1, 0 or +1 in the style of cmp.Compare.
// Complexity: O(1).
func compareKey(r1, c1, r2, c2 int) int {
	switch {
	case r1 < r2:
		return -1
	case r1 > r2:
		return 1
	case c1 < c2:
		return -1
	case c1 > c2:
		return 1
	default:
		return 0
	}
}

// Matrix is the capability set Add, Mul and Equal need from an operand.
// Any shape-aware integer matrix can take part in the algebra by providing it.
//
// Complexity notes: Rows/Cols are expected O(1); At depends on the storage
// (O(log nnz) for *Grid).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the value at (i, j), or ErrOutOfRange when i or j is outside
	// [0,Rows()) × [0,Cols()). On error the returned value is 0.
	At(i, j int) (int, error)
}
