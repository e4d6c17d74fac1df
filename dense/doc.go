// SPDX-License-Identifier: MIT

// Package dense implements the dense-matrix numerical kernel every
// higher-level routine in this module builds on: a column-major float64
// matrix with a per-column offset cache, strict sizing contracts, and the
// primitive algebraic operation set (arithmetic, matrix and Kronecker
// products, transpose, symmetrization, sub-region extraction/insertion,
// randomized fill, identity/diagonal construction, flat-array interop).
//
// Storage contract:
//
//	Element (i, j) lives at data[colOff[j]+i]; the colOff cache is derived
//	redundancy (colOff[j] == j*rows) rebuilt atomically with the buffer on
//	every shape change, so the two can never be observed inconsistent.
//
// Call shapes:
//
//	Every arithmetic operation comes in three shapes derived from a single
//	into-kernel: XxxInto(b, dst) resizes a mismatched destination and is the
//	canonical form; Xxx(b) allocates and returns a fresh result; XxxInPlace
//	mutates the receiver. The matrix product, Kronecker product and
//	transpose are aliasing-sensitive: their in-place shapes compute into
//	scratch storage and commit atomically, never overwriting an input
//	mid-computation. Elementwise operations are alias-safe per position.
//
// Error policy:
//
//	Package-level sentinels (ErrBadShape, ErrShapeMismatch, ErrOutOfRange,
//	ErrBadRegion, ErrLengthMismatch, ErrNilMatrix, ErrBadParam) matched via
//	errors.Is; every precondition is validated before the first element
//	write, so a failed operation leaves its operands untouched. No silent
//	coercion: shapes are never padded or truncated.
//
// Concurrency:
//
//	Dense has no internal locking; methods are synchronous. Callers sharing
//	an instance across goroutines must serialize access externally or give
//	each task its own Clone.
package dense
