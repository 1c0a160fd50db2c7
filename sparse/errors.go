// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every public method
// returns one of these (possibly wrapped with call-site context) and tests
// match them via errors.Is. No method panics on user-triggered conditions.

package sparse

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "sparse: ..." for easy grepping. Call sites
// wrap with gridErrorf/opErrorf so the sentinel survives for errors.Is while
// the message carries the method and coordinates.

var (
	// ErrOutOfRange indicates that a row or column index is negative or not
	// below the grid's bound. Set/Remove/At return it and leave the grid unchanged.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates operands whose shapes cannot be combined:
	// Add with different shapes, Mul with a.Cols != b.Rows, ragged dense input.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrInvalidDimensions indicates a negative row or column bound.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be >= 0")

	// ErrNilMatrix indicates that a nil operand was passed to an operation.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrMalformedLine is returned by Parse for a line that is not three integers.
	ErrMalformedLine = errors.New("sparse: malformed line")

	// ErrOverflow is returned by Add/Mul under checked arithmetic when an
	// intermediate sum or product does not fit in int.
	ErrOverflow = errors.New("sparse: integer overflow")
)

// ErrIndexOutOfBounds is the historical name of ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

// gridErrorf wraps err with the Grid method name and the offending coordinates.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// opErrorf wraps err with an operation tag (Add, Mul, Parse, ...).
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
