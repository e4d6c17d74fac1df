// SPDX-License-Identifier: MIT
// Package dense_test: flat-slice export and import in both element orders.

package dense_test

import (
	"testing"

	"github.com/arbelos/linden/dense"
	"github.com/stretchr/testify/require"
)

// TestToSliceOrders exports a 2x3 matrix in both orders.
func TestToSliceOrders(t *testing.T) {
	a := mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)

	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, a.ToSlice(dense.ColMajor))
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, a.ToSlice(dense.RowMajor))
}

// TestToSliceIsACopy ensures the exported slice does not alias the matrix.
func TestToSliceIsACopy(t *testing.T) {
	a := mustDense(t, 2, 2, 1, 2, 3, 4)

	s := a.ToSlice(dense.ColMajor)
	s[0] = 99

	v, err := a.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestFromSliceRoundTrip imports in one order and exports in the other.
func TestFromSliceRoundTrip(t *testing.T) {
	a, err := dense.New(2, 3)
	require.NoError(t, err)

	require.NoError(t, a.FromSlice([]float64{1, 2, 3, 4, 5, 6}, dense.RowMajor))
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, a.ToSlice(dense.ColMajor))
}

// TestFromSliceLengthMismatch rejects a wrong-length slice before any write.
func TestFromSliceLengthMismatch(t *testing.T) {
	a := mustDense(t, 2, 2, 1, 2, 3, 4)

	require.ErrorIs(t, a.FromSlice([]float64{1, 2, 3}, dense.RowMajor), dense.ErrLengthMismatch)
	requireMatrixEqual(t, mustDense(t, 2, 2, 1, 2, 3, 4), a, 0) // untouched
}

// TestNewFromSlice builds a column vector from ColMajor input and a row
// vector from RowMajor input.
func TestNewFromSlice(t *testing.T) {
	col, err := dense.NewFromSlice([]float64{1, 2, 3}, dense.ColMajor)
	require.NoError(t, err)
	require.Equal(t, 3, col.Rows())
	require.Equal(t, 1, col.Cols())

	row, err := dense.NewFromSlice([]float64{1, 2, 3}, dense.RowMajor)
	require.NoError(t, err)
	require.Equal(t, 1, row.Rows())
	require.Equal(t, 3, row.Cols())

	_, err = dense.NewFromSlice(nil, dense.ColMajor)
	require.ErrorIs(t, err, dense.ErrBadShape)
}
