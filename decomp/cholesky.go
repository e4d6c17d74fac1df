// SPDX-License-Identifier: MIT
// Package: decomp
//
// Cholesky factorization of symmetric positive definite matrices.

package decomp

import (
	"math"

	"github.com/arbelos/linden/dense"
)

// symmetricWithin reports |A[i,j] - A[j,i]| <= tol over the strict upper
// triangle. Assumes a square input. Complexity: O(n²), O(1) space.
func symmetricWithin(a *dense.Dense, tol float64) bool {
	n := a.Rows()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // triangle scan, fixed i→j order
			if math.Abs(at(a, i, j)-at(a, j, i)) > tol {
				return false
			}
		}
	}

	return true
}

// Cholesky computes the lower-triangular factor L of a symmetric positive
// definite matrix A such that A = L·Lᵀ.
// Implementation:
//   - Stage 1: validate a non-nil, square and symmetric within
//     dense.DefaultEpsilon — all before any allocation.
//   - Stage 2: column-by-column factorization; each diagonal pivot must stay
//     strictly positive.
//
// Errors:
//   - dense.ErrNilMatrix, dense.ErrShapeMismatch (non-square).
//   - ErrNotSymmetric when the symmetry check fails.
//   - ErrNotPositiveDefinite on a non-positive pivot.
//
// Complexity: Time O(n³), Space O(n²).
func Cholesky(a *dense.Dense) (*dense.Dense, error) {
	if err := dense.ValidateNotNil(a); err != nil {
		return nil, opErrorf(opCholesky, err)
	}
	if err := dense.ValidateSquare(a); err != nil {
		return nil, opErrorf(opCholesky, err)
	}
	if !symmetricWithin(a, dense.DefaultEpsilon) {
		return nil, opErrorf(opCholesky, ErrNotSymmetric)
	}

	n := a.Rows()
	l, err := dense.New(n, n)
	if err != nil {
		return nil, opErrorf(opCholesky, err)
	}

	var i, j, k int
	var sum float64
	for j = 0; j < n; j++ {
		// Diagonal entry: L[j,j] = sqrt(A[j,j] - Σ_{k<j} L[j,k]²).
		sum = at(a, j, j)
		for k = 0; k < j; k++ {
			sum -= at(l, j, k) * at(l, j, k)
		}
		if sum <= 0 {
			return nil, opErrorf(opCholesky, ErrNotPositiveDefinite)
		}
		pivot := math.Sqrt(sum)
		set(l, j, j, pivot)

		// Below-diagonal column j: L[i,j] = (A[i,j] - Σ L[i,k]·L[j,k]) / L[j,j].
		for i = j + 1; i < n; i++ {
			sum = at(a, i, j)
			for k = 0; k < j; k++ {
				sum -= at(l, i, k) * at(l, j, k)
			}
			set(l, i, j, sum/pivot)
		}
	}

	return l, nil
}
