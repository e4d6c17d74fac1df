// SPDX-License-Identifier: MIT
// Package dense: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the dense
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in private helpers (if any).

package dense

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dense: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with opErrorf at the call site —
// callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver/argument -> bad shape -> out of range -> shape mismatch
// -> region violations -> length mismatch. Every check runs BEFORE the
// first element write of the operation.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Constructors and Resize must validate before any allocation.
	ErrBadShape = errors.New("dense: shape dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row, column, or linear index) is
	// outside valid bounds. Public indexers (At/Set/AtIndex/SetIndex) MUST
	// return this, not panic. This is a programming-error class: callers are
	// not expected to recover from it, only to surface it.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrShapeMismatch indicates incompatible operand shapes, e.g. Add/Sub on
	// different shapes, Mul where a.Cols != b.Rows, or Symmetrize on a
	// non-square matrix.
	ErrShapeMismatch = errors.New("dense: shape mismatch")

	// ErrBadRegion signals region coordinates that are out of bounds or
	// inverted (top-left below/right of bottom-right) in submatrix operations.
	ErrBadRegion = errors.New("dense: invalid region coordinates")

	// ErrLengthMismatch signals a flat-array length that does not match the
	// element count required by the operation (FromSlice, SetSubmatrixSlice).
	ErrLengthMismatch = errors.New("dense: slice length mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("dense: nil matrix")

	// ErrBadParam signals an invalid random-distribution parameter (lo >= hi,
	// stddev <= 0, non-finite values). Samplers return it from Validate and
	// Fill surfaces it before any element is written.
	ErrBadParam = errors.New("dense: invalid distribution parameter")
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid wrapping a nil cause.
// Complexity: O(1).
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
