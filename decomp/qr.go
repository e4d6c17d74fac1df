// SPDX-License-Identifier: MIT
// Package: decomp
//
// Householder QR and the RQ factorization derived from it by index reversal.

package decomp

import (
	"math"

	"github.com/arbelos/linden/dense"
)

// QR computes a Householder factorization A = Q·R of a square matrix, with Q
// orthogonal and R upper triangular.
// Implementation:
//   - Stage 1: validate a non-nil and square; R starts as a deep copy of A
//     and Q as the identity.
//   - Stage 2: for k = 0..n-1 build the column reflector for R[k:, k] and
//     apply it to R from the left and accumulate it into Q from the right.
//
// Behavior highlights:
//   - Deterministic column order; zero columns are skipped via (c=1, s=0)
//     no-op reflectors; no sign canonicalization of diag(R).
//
// Errors: dense.ErrNilMatrix, dense.ErrShapeMismatch.
// Complexity: Time O(n³), Space O(n²).
func QR(a *dense.Dense) (q, r *dense.Dense, err error) {
	if err = dense.ValidateNotNil(a); err != nil {
		return nil, nil, opErrorf(opQR, err)
	}
	if err = dense.ValidateSquare(a); err != nil {
		return nil, nil, opErrorf(opQR, err)
	}

	n := a.Rows()
	r = a.Clone() // working copy; A itself is never mutated
	if q, err = dense.Identity(n, n); err != nil {
		return nil, nil, opErrorf(opQR, err)
	}

	v := make([]float64, n) // Householder vector workspace
	var (
		i, j, k     int
		norm, alpha float64 // column norm and reflection scalar
		beta, tau   float64 // vᵀv and the 2/β factor
		sum         float64
	)
	for k = 0; k < n; k++ {
		// Norm of the subcolumn R[k:n, k].
		norm = 0
		for i = k; i < n; i++ {
			norm += at(r, i, k) * at(r, i, k)
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue // zero column needs no reflector
		}

		// alpha = -sign(R[k,k]) * norm; v = R[k:n,k] with v[k] -= alpha.
		alpha = -math.Copysign(norm, at(r, k, k))
		for i = 0; i < n; i++ {
			v[i] = 0
		}
		for i = k; i < n; i++ {
			v[i] = at(r, i, k)
		}
		v[k] -= alpha

		// β = vᵀv; degenerate reflectors are skipped for safety.
		beta = 0
		for i = k; i < n; i++ {
			beta += v[i] * v[i]
		}
		if beta == 0 {
			continue
		}
		tau = 2.0 / beta

		// Apply H = I - τ·v·vᵀ to R from the left: R ← H·R.
		for j = k; j < n; j++ {
			sum = 0
			for i = k; i < n; i++ {
				sum += v[i] * at(r, i, j)
			}
			for i = k; i < n; i++ {
				set(r, i, j, at(r, i, j)-tau*v[i]*sum)
			}
		}

		// Accumulate into Q from the right: Q ← Q·H (H is symmetric).
		for i = 0; i < n; i++ {
			sum = 0
			for j = k; j < n; j++ {
				sum += at(q, i, j) * v[j]
			}
			for j = k; j < n; j++ {
				set(q, i, j, at(q, i, j)-tau*sum*v[j])
			}
		}
	}

	return q, r, nil
}

// revRows returns P·m where P is the exchange (anti-identity) matrix: row i
// of the result is row n-1-i of the input. Complexity: O(r*c).
func revRows(m *dense.Dense) *dense.Dense {
	rows, cols := m.Rows(), m.Cols()
	out, _ := dense.New(rows, cols) // shape is valid by construction
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			set(out, i, j, at(m, rows-1-i, j))
		}
	}

	return out
}

// revBoth returns P·m·P: both row and column order reversed.
// Complexity: O(r*c).
func revBoth(m *dense.Dense) *dense.Dense {
	rows, cols := m.Rows(), m.Cols()
	out, _ := dense.New(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			set(out, i, j, at(m, rows-1-i, cols-1-j))
		}
	}

	return out
}

// RQ computes the factorization A = R·Q of a square matrix, with R upper
// triangular and Q orthogonal.
// Implementation:
//   - Stage 1: validate a non-nil and square.
//   - Stage 2: reduce to QR by index reversal — with P the exchange matrix,
//     (P·A)ᵀ = Q₁·R₁ gives A = (P·R₁ᵀ·P)·(P·Q₁ᵀ): the first factor is upper
//     triangular, the second orthogonal.
//
// Errors: dense.ErrNilMatrix, dense.ErrShapeMismatch.
// Complexity: Time O(n³), Space O(n²).
func RQ(a *dense.Dense) (r, q *dense.Dense, err error) {
	if err = dense.ValidateNotNil(a); err != nil {
		return nil, nil, opErrorf(opRQ, err)
	}
	if err = dense.ValidateSquare(a); err != nil {
		return nil, nil, opErrorf(opRQ, err)
	}

	// B = (P·A)ᵀ, factor B = Q₁·R₁.
	b := revRows(a).Transpose()
	q1, r1, err := QR(b)
	if err != nil {
		return nil, nil, opErrorf(opRQ, err)
	}

	// Map the factors back: R = P·R₁ᵀ·P (upper triangular), Q = P·Q₁ᵀ.
	r = revBoth(r1.Transpose())
	q = revRows(q1.Transpose())

	return r, q, nil
}
