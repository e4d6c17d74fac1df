// SPDX-License-Identifier: MIT
// Package: decomp
//
// Singular value decomposition via one-sided Jacobi sweeps.

package decomp

import (
	"math"
	"sort"

	"github.com/arbelos/linden/dense"
)

// svdMaxSweeps caps the number of full Jacobi sweeps before the iteration is
// declared non-convergent. One-sided Jacobi converges quadratically; well
// inside this cap for float64 inputs of reasonable condition.
const svdMaxSweeps = 60

// SVD computes the thin singular value decomposition A = U·diag(S)·Vᵀ of an
// m×n matrix with m >= n: U is m×n with orthonormal columns, S holds the n
// singular values in descending order, V is n×n orthogonal.
// Implementation:
//   - Stage 1: validate a non-nil and m >= n (transpose taller-than-wide
//     inputs at the call site).
//   - Stage 2: one-sided Jacobi — repeatedly rotate column pairs (p, q) of a
//     working copy of A (and of V) until every pair is numerically
//     orthogonal; fixed p→q sweep order keeps the iteration deterministic.
//   - Stage 3: singular values are the column norms of the rotated matrix;
//     columns are normalized and sorted descending together with V.
//
// Errors:
//   - dense.ErrNilMatrix, dense.ErrShapeMismatch (m < n).
//   - ErrNoConvergence past the sweep cap.
//
// Complexity: Time O(sweeps · m·n²), Space O(m·n).
func SVD(a *dense.Dense) (u *dense.Dense, s []float64, v *dense.Dense, err error) {
	if err = dense.ValidateNotNil(a); err != nil {
		return nil, nil, nil, opErrorf(opSVD, err)
	}
	m, n := a.Rows(), a.Cols()
	if m < n {
		return nil, nil, nil, opErrorf(opSVD, dense.ErrShapeMismatch)
	}

	u = a.Clone() // columns rotated in place
	if v, err = dense.Identity(n, n); err != nil {
		return nil, nil, nil, opErrorf(opSVD, err)
	}

	// alpha, beta, gamma are the Gram entries of the current column pair
	// (‖u_p‖², ‖u_q‖², u_p·u_q); zeta, t, c and sn drive the Jacobi rotation.
	var sweep, i, p, q int
	var alpha, beta, gamma float64
	var zeta, t, c, sn float64
	var up, uq, vp, vq float64
	var converged bool
	for sweep = 0; sweep < svdMaxSweeps; sweep++ {
		converged = true
		for p = 0; p < n-1; p++ { // fixed pair order p→q
			for q = p + 1; q < n; q++ {
				// Gram entries of the (p, q) column pair.
				alpha, beta, gamma = 0, 0, 0
				for i = 0; i < m; i++ {
					up = at(u, i, p)
					uq = at(u, i, q)
					alpha += up * up
					beta += uq * uq
					gamma += up * uq
				}
				// Pair already orthogonal within tolerance: nothing to rotate.
				if math.Abs(gamma) <= dense.DefaultEpsilon*math.Sqrt(alpha*beta) {
					continue
				}
				converged = false

				// Jacobi rotation annihilating the off-diagonal Gram entry.
				zeta = (beta - alpha) / (2 * gamma)
				t = math.Copysign(1.0/(math.Abs(zeta)+math.Hypot(zeta, 1)), zeta)
				c = 1.0 / math.Sqrt(t*t+1)
				sn = c * t

				// Rotate columns p and q of U and V in lockstep.
				for i = 0; i < m; i++ {
					up = at(u, i, p)
					uq = at(u, i, q)
					set(u, i, p, c*up-sn*uq)
					set(u, i, q, sn*up+c*uq)
				}
				for i = 0; i < n; i++ {
					vp = at(v, i, p)
					vq = at(v, i, q)
					set(v, i, p, c*vp-sn*vq)
					set(v, i, q, sn*vp+c*vq)
				}
			}
		}
		if converged {
			break
		}
	}
	if !converged {
		return nil, nil, nil, opErrorf(opSVD, ErrNoConvergence)
	}

	// Singular values are the column norms of the rotated working matrix;
	// normalize the surviving columns into an orthonormal U.
	s = make([]float64, n)
	var norm float64
	for p = 0; p < n; p++ {
		norm = 0
		for i = 0; i < m; i++ {
			up = at(u, i, p)
			norm += up * up
		}
		norm = math.Sqrt(norm)
		s[p] = norm
		if norm > 0 {
			for i = 0; i < m; i++ {
				set(u, i, p, at(u, i, p)/norm)
			}
		}
	}

	// Sort descending, permuting the columns of U and V alongside S.
	perm := make([]int, n)
	for p = 0; p < n; p++ {
		perm[p] = p
	}
	sort.SliceStable(perm, func(x, y int) bool { return s[perm[x]] > s[perm[y]] })

	su := u.Clone()
	sv := v.Clone()
	sorted := make([]float64, n)
	for p = 0; p < n; p++ {
		sorted[p] = s[perm[p]]
		for i = 0; i < m; i++ {
			set(u, i, p, at(su, i, perm[p]))
		}
		for i = 0; i < n; i++ {
			set(v, i, p, at(sv, i, perm[p]))
		}
	}

	return u, sorted, v, nil
}
