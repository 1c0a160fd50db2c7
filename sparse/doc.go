// Package sparse implements a fixed-bound sparse matrix of ints.
//
// What & Why:
//
//	A Grid stores only its nonzero entries, as (row, col, value) triples kept
//	sorted in reading order (row first, then column). Storing 0 at a position
//	removes whatever was there, so the storage never holds a zero, never holds
//	two cells for one position and never holds a cell outside the bounds.
//
// The package provides:
//
//   - Construction & sizing: New, NewDefault (5×5), Resize, Clear.
//   - Element access: Set, Remove, At, all bounds-checked and returning
//     ErrOutOfRange instead of panicking; a failed call leaves the grid unchanged.
//   - Canonical text: Render / String / WriteTo emit "row col value\n" per
//     stored cell in reading order ("" for an empty grid); Parse reads it back.
//   - Algebra: Add (elementwise sum) and Mul (matrix product) return a fresh
//     Grid or ErrDimensionMismatch; Equal compares two operands.
//
// Operands of Add, Mul and Equal only need the Matrix capability
// (Rows, Cols, At). Two *Grid operands take sparse fast paths; anything else
// is read position by position.
//
// Arithmetic follows Go's native int semantics (wraparound on overflow)
// unless the grid is built WithCheckedArithmetic, in which case Add and Mul
// return ErrOverflow.
//
// Complexity:
//
//	At is O(log nnz); Set/Remove are O(log nnz) search plus an O(nnz) shift.
//	Add is O(nnz(a)+nnz(b)); Mul visits only the products of stored cells.
package sparse
