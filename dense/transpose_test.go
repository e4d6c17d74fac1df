// SPDX-License-Identifier: MIT
// Package dense_test: transpose and symmetrize behavior.

package dense_test

import (
	"testing"

	"github.com/arbelos/linden/dense"
	"github.com/stretchr/testify/require"
)

// TestTransposeRectangular flips a 2x3 into the expected 3x2.
func TestTransposeRectangular(t *testing.T) {
	a := mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	want := mustDense(t, 3, 2, 1, 4, 2, 5, 3, 6)

	got := a.Transpose()
	requireMatrixEqual(t, want, got, 0)

	// The source stays untouched.
	requireMatrixEqual(t, mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6), a, 0)
}

// TestTransposeInvolution checks (Aᵀ)ᵀ == A.
func TestTransposeInvolution(t *testing.T) {
	a := mustDense(t, 3, 2, 1, -2, 0.5, 7, 3, 9)
	requireMatrixEqual(t, a, a.Transpose().Transpose(), 0)
}

// TestTransposeInPlace flips a non-square receiver, forcing the shape swap.
func TestTransposeInPlace(t *testing.T) {
	a := mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)

	a.TransposeInPlace()
	require.Equal(t, 3, a.Rows())
	require.Equal(t, 2, a.Cols())
	requireMatrixEqual(t, mustDense(t, 3, 2, 1, 4, 2, 5, 3, 6), a, 0)
}

// TestTransposeIntoAliased routes through scratch when dst aliases the
// source.
func TestTransposeIntoAliased(t *testing.T) {
	a := mustDense(t, 2, 2, 1, 2, 3, 4)

	require.NoError(t, a.TransposeInto(a))
	requireMatrixEqual(t, mustDense(t, 2, 2, 1, 3, 2, 4), a, 0)
}

// TestSymmetrize averages the matrix with its transpose and yields a matrix
// equal to its own transpose.
func TestSymmetrize(t *testing.T) {
	a := mustDense(t, 2, 2, 1, 4, 2, 3)

	got, err := a.Symmetrize()
	require.NoError(t, err)
	requireMatrixEqual(t, mustDense(t, 2, 2, 1, 3, 3, 3), got, 0)

	// R == Rᵀ exactly: both mirrors come from the same averaged value.
	require.True(t, got.Equal(got.Transpose()))
}

// TestSymmetrizeRequiresSquare rejects rectangular inputs.
func TestSymmetrizeRequiresSquare(t *testing.T) {
	a := mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)

	_, err := a.Symmetrize()
	require.ErrorIs(t, err, dense.ErrShapeMismatch)
	require.ErrorIs(t, a.SymmetrizeInPlace(), dense.ErrShapeMismatch)
}

// TestSymmetrizeIntoStrictShape fails on a mismatched destination instead of
// resizing it.
func TestSymmetrizeIntoStrictShape(t *testing.T) {
	a := mustDense(t, 2, 2, 1, 4, 2, 3)
	dst, err := dense.New(3, 3)
	require.NoError(t, err)

	require.ErrorIs(t, a.SymmetrizeInto(dst), dense.ErrShapeMismatch)

	// The destination keeps its shape and contents.
	require.Equal(t, 3, dst.Rows())
	require.Equal(t, 3, dst.Cols())
}
