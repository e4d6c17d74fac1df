// SPDX-License-Identifier: MIT
// Package decomp_test: one-sided Jacobi singular value decomposition.

package decomp_test

import (
	"sort"
	"testing"

	"github.com/arbelos/linden/decomp"
	"github.com/arbelos/linden/dense"
	"github.com/stretchr/testify/require"
)

// TestSVDDiagonal recovers known singular values from a diagonal matrix.
func TestSVDDiagonal(t *testing.T) {
	a, err := dense.Diagonal([]float64{3, 1, 2})
	require.NoError(t, err)

	_, s, _, err := decomp.SVD(a)
	require.NoError(t, err)

	require.Len(t, s, 3)
	require.InDelta(t, 3, s[0], 1e-9) // descending order
	require.InDelta(t, 2, s[1], 1e-9)
	require.InDelta(t, 1, s[2], 1e-9)
}

// TestSVDReconstruction checks A ≈ U·diag(S)·Vᵀ with orthonormal factors.
func TestSVDReconstruction(t *testing.T) {
	a := mustDense(t, 3, 2,
		3, 2,
		2, 3,
		2, -2)

	u, s, v, err := decomp.SVD(a)
	require.NoError(t, err)

	requireOrthonormal(t, u, 1e-9)
	requireOrthonormal(t, v, 1e-9)
	require.True(t, sort.SliceIsSorted(s, func(i, j int) bool { return s[i] > s[j] }))
	for _, sv := range s {
		require.GreaterOrEqual(t, sv, 0.0)
	}

	sig, err := dense.Diagonal(s)
	require.NoError(t, err)
	requireReconstructs(t, a, 1e-9, u, sig, v.Transpose())
}

// TestSVDRankDeficient handles a matrix with a zero singular value.
func TestSVDRankDeficient(t *testing.T) {
	a := mustDense(t, 2, 2,
		1, 2,
		2, 4) // rank 1

	_, s, _, err := decomp.SVD(a)
	require.NoError(t, err)
	require.Len(t, s, 2)
	require.InDelta(t, 5, s[0], 1e-9) // sqrt(25): the only nonzero value
	require.InDelta(t, 0, s[1], 1e-9)
}

// TestSVDWideRejected requires m >= n; wide inputs must be transposed by the
// caller.
func TestSVDWideRejected(t *testing.T) {
	a := mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)

	_, _, _, err := decomp.SVD(a)
	require.ErrorIs(t, err, dense.ErrShapeMismatch)
}
