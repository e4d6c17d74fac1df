// SPDX-License-Identifier: MIT
// Package decomp_test: Doolittle LU factorization.

package decomp_test

import (
	"testing"

	"github.com/arbelos/linden/decomp"
	"github.com/arbelos/linden/dense"
	"github.com/stretchr/testify/require"
)

// TestLUReconstruction factors a well-conditioned matrix and checks A ≈ L·U,
// unit diagonal on L, and the triangular shapes.
func TestLUReconstruction(t *testing.T) {
	a := mustDense(t, 3, 3,
		4, 3, 2,
		6, 3, 1,
		8, 5, 9)

	l, u, err := decomp.LU(a)
	require.NoError(t, err)

	requireReconstructs(t, a, 1e-12, l, u)
	requireLowerTriangular(t, l, 0)
	requireUpperTriangular(t, u, 0)

	// Doolittle convention: unit diagonal on L.
	for i := 0; i < 3; i++ {
		v, errAt := l.At(i, i)
		require.NoError(t, errAt)
		require.Equal(t, 1.0, v)
	}
}

// TestLUKnownFactors checks a small case with hand-computed factors.
func TestLUKnownFactors(t *testing.T) {
	a := mustDense(t, 2, 2,
		4, 3,
		6, 3)

	l, u, err := decomp.LU(a)
	require.NoError(t, err)

	require.True(t, mustDense(t, 2, 2, 1, 0, 1.5, 1).EqualWithin(l, 1e-12))
	require.True(t, mustDense(t, 2, 2, 4, 3, 0, -1.5).EqualWithin(u, 1e-12))
}

// TestLUSingular hits a zero pivot (no pivoting is performed).
func TestLUSingular(t *testing.T) {
	a := mustDense(t, 2, 2,
		0, 1,
		1, 0)

	_, _, err := decomp.LU(a)
	require.ErrorIs(t, err, decomp.ErrSingular)
}

// TestLURequiresSquare rejects rectangular input.
func TestLURequiresSquare(t *testing.T) {
	a := mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)

	_, _, err := decomp.LU(a)
	require.ErrorIs(t, err, dense.ErrShapeMismatch)
}

// TestLULeavesInputUntouched ensures the factorization works on copies.
func TestLULeavesInputUntouched(t *testing.T) {
	a := mustDense(t, 2, 2, 4, 3, 6, 3)

	_, _, err := decomp.LU(a)
	require.NoError(t, err)
	require.True(t, mustDense(t, 2, 2, 4, 3, 6, 3).Equal(a))
}
