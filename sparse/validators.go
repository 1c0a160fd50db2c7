// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Single source of truth for operand checks used by Add, Mul and Equal.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Note:
//   - Composite validators run in a fixed sequence: NotNil -> Shape.

package sparse

// ValidateNotNil ensures the operand is neither a nil interface nor a typed nil *Grid.
// Returns ErrNilMatrix otherwise.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if g, ok := m.(*Grid); ok && g == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and share (rows, cols).
// Returns ErrNilMatrix or ErrDimensionMismatch.
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols() == b.Rows(),
// i.e. the contraction dimension is shared.
// Returns ErrNilMatrix or ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return ErrDimensionMismatch
	}

	return nil
}
