// SPDX-License-Identifier: MIT
// Package decomp provides matrix factorizations built strictly on top of the
// dense package's public contract: elements are read via At, written via Set,
// and reconstruction checks compose Mul/Transpose. No factorization reaches
// into Dense internals.
package decomp

import (
	"github.com/arbelos/linden/dense"
)

// Operation name constants for unified error wrapping.
const (
	opLU       = "LU"
	opCholesky = "Cholesky"
	opQR       = "QR"
	opRQ       = "RQ"
	opSVD      = "SVD"
)

// at reads m(i, j); indices are valid by construction after shape validation,
// so the error path cannot trigger. Complexity: O(1).
func at(m *dense.Dense, i, j int) float64 {
	v, _ := m.At(i, j)
	return v
}

// set writes m(i, j) = v under the same valid-by-construction contract.
// Complexity: O(1).
func set(m *dense.Dense, i, j int, v float64) {
	_ = m.Set(i, j, v)
}

// LU computes the Doolittle factorization A = L·U with unit diagonal on L and
// no pivoting (deterministic).
// Implementation:
//   - Stage 1: validate a non-nil and square; allocate L, U; set diag(L) = 1.
//   - Stage 2: for each i, build row i of U (j >= i) and column i of L
//     (j > i) in fixed order, guarding the pivot U[i,i] against zero.
//
// Behavior highlights:
//   - No pivoting: bit-for-bit reproducible, but callers must keep
//     ill-conditioned inputs away or precondition upstream.
//   - The input is never mutated; L and U are fresh matrices.
//
// Errors:
//   - dense.ErrNilMatrix, dense.ErrShapeMismatch (non-square input).
//   - ErrSingular on a zero pivot.
//
// Complexity: Time O(n³), Space O(n²).
func LU(a *dense.Dense) (l, u *dense.Dense, err error) {
	if err = dense.ValidateNotNil(a); err != nil {
		return nil, nil, opErrorf(opLU, err)
	}
	if err = dense.ValidateSquare(a); err != nil {
		return nil, nil, opErrorf(opLU, err)
	}

	n := a.Rows()
	if l, err = dense.Identity(n, n); err != nil { // unit lower triangular seed
		return nil, nil, opErrorf(opLU, err)
	}
	if u, err = dense.New(n, n); err != nil {
		return nil, nil, opErrorf(opLU, err)
	}

	var i, j, k int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		// Row i of U: U[i,j] = A[i,j] - Σ_{k<i} L[i,k]·U[k,j] for j >= i.
		for j = i; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += at(l, i, k) * at(u, k, j)
			}
			set(u, i, j, at(a, i, j)-sum)
		}

		// Zero-pivot guard (deterministic singularity detection).
		pivot = at(u, i, i)
		if pivot == 0 {
			return nil, nil, opErrorf(opLU, ErrSingular)
		}

		// Column i of L: L[j,i] = (A[j,i] - Σ_{k<i} L[j,k]·U[k,i]) / U[i,i].
		for j = i + 1; j < n; j++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += at(l, j, k) * at(u, k, i)
			}
			set(l, j, i, (at(a, j, i)-sum)/pivot)
		}
	}

	return l, u, nil
}
