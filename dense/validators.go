// SPDX-License-Identifier: MIT
// Package: dense
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating nil/shape/region checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Every check is O(1); no validator touches matrix elements.
//
// Note:
//   - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//   - Validation ALWAYS precedes mutation: kernels call validators before the
//     first element write so a failed operation leaves operands untouched.

package dense

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	// A nil matrix has no shape; fail with the unified sentinel.
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateShape ensures both dimensions are strictly positive.
// Returns ErrBadShape otherwise. Complexity: O(1).
func ValidateShape(rows, cols int) error {
	// A matrix with zero rows or zero columns is an invalid state; it cannot
	// be constructed or reached via Resize.
	if rows <= 0 || cols <= 0 {
		return ErrBadShape
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are non-nil (callers must ensure). Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a.rows != b.rows || a.cols != b.cols {
		return ErrShapeMismatch
	}

	return nil
}

// ValidateBinarySameShape — composite: NotNil(a) → NotNil(b) → SameShape.
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(1).
func ValidateBinarySameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible ensures a.cols == b.rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	// Inner dimensions must agree for the contraction sum.
	if a.cols != b.rows {
		return ErrShapeMismatch
	}

	return nil
}

// ValidateSquare checks that m is square (rows == cols).
// Assumes m is non-nil. Errors: ErrShapeMismatch. Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m.rows != m.cols {
		return ErrShapeMismatch
	}

	return nil
}

// ValidateRegion checks a corner-inclusive region against the given shape:
// 0 <= r0 <= r1 < rows and 0 <= c0 <= c1 < cols.
// Errors: ErrBadRegion on out-of-bounds or inverted corners. Complexity: O(1).
func ValidateRegion(rows, cols, r0, c0, r1, c1 int) error {
	// Row axis: ordered and inside [0, rows).
	if r0 < 0 || r1 < r0 || r1 >= rows {
		return ErrBadRegion
	}
	// Column axis: ordered and inside [0, cols).
	if c0 < 0 || c1 < c0 || c1 >= cols {
		return ErrBadRegion
	}

	return nil
}
