// SPDX-License-Identifier: MIT
// Package decomp: sentinel error set (unified, consistent).
// All factorizations return these sentinels (or the dense package's shape
// sentinels) and tests check them via errors.Is. Shape preconditions are
// verified before any storage is touched.

package decomp

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular is returned when a zero pivot is encountered during LU in
	// the non-pivoting scheme (intentional for determinism and simplicity).
	ErrSingular = errors.New("decomp: singular matrix")

	// ErrNotPositiveDefinite signals a non-positive pivot during Cholesky;
	// the input is not symmetric positive definite.
	ErrNotPositiveDefinite = errors.New("decomp: matrix is not positive definite")

	// ErrNotSymmetric signals that a matrix required to be symmetric violated
	// symmetry within the configured tolerance.
	ErrNotSymmetric = errors.New("decomp: matrix is not symmetric within eps")

	// ErrNoConvergence indicates an iterative factorization (Jacobi SVD)
	// failed to converge under the sweep cap.
	ErrNoConvergence = errors.New("decomp: iteration failed to converge")
)

// opErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Complexity: O(1).
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
