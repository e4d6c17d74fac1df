// SPDX-License-Identifier: MIT
// Package: dense
//
// Purpose:
//   - Structural equality with exact and tolerance-based comparison.
//
// Determinism & Policy:
//   - Shape is compared first and short-circuits on mismatch.
//   - Element comparison depends only on values and shape, never on the
//     column offset cache beyond what shape implies; the relation is
//     symmetric because |a-b| == |b-a|.
//   - Negative tolerances are normalized by absolute value.

package dense

import "math"

// DefaultEpsilon is a reasonable tolerance for float64 comparisons where the
// caller has no better estimate of the accumulated rounding error.
const DefaultEpsilon = 1e-9

// Equal reports exact structural equality: same shape, every element bitwise
// comparison via == (tolerance zero). Complexity: O(r*c), O(1) on shape
// mismatch.
func (m *Dense) Equal(b *Dense) bool {
	return m.EqualWithin(b, 0)
}

// EqualWithin reports structural equality within a tolerance: same shape and
// |m[i,j] - b[i,j]| <= tol for every position. A nil argument is never equal.
// Complexity: O(r*c) with early exit on the first violation.
func (m *Dense) EqualWithin(b *Dense, tol float64) bool {
	if b == nil {
		return false
	}
	// Shape short-circuit before touching any element.
	if m.rows != b.rows || m.cols != b.cols {
		return false
	}
	if tol < 0 {
		tol = -tol
	}

	n := len(m.data)
	var diff float64
	for idx := 0; idx < n; idx++ { // flat 0..n-1; early exit on violation
		diff = m.data[idx] - b.data[idx]
		if diff < 0 {
			diff = -diff
		}
		if diff > tol || math.IsNaN(diff) {
			return false
		}
	}

	return true
}
