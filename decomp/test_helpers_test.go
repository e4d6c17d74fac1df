// SPDX-License-Identifier: MIT
// Package decomp_test: shared helpers for the decomposition tests.

package decomp_test

import (
	"testing"

	"github.com/arbelos/linden/dense"
	"github.com/stretchr/testify/require"
)

// mustDense builds a matrix from row-major values, failing the test on any
// construction error.
func mustDense(t *testing.T, rows, cols int, vals ...float64) *dense.Dense {
	t.Helper()
	m, err := dense.New(rows, cols)
	require.NoError(t, err)
	require.NoError(t, m.FromSlice(vals, dense.RowMajor))

	return m
}

// requireReconstructs multiplies the factors left to right and compares the
// product against the original within tol.
func requireReconstructs(t *testing.T, want *dense.Dense, tol float64, factors ...*dense.Dense) {
	t.Helper()
	require.NotEmpty(t, factors)
	acc := factors[0]
	var err error
	for _, f := range factors[1:] {
		acc, err = acc.Mul(f)
		require.NoError(t, err)
	}
	require.True(t, want.EqualWithin(acc, tol),
		"reconstruction mismatch:\nwant:\n%sgot:\n%s", want, acc)
}

// requireLowerTriangular asserts all strictly-upper entries are ~0.
func requireLowerTriangular(t *testing.T, m *dense.Dense, tol float64) {
	t.Helper()
	for i := 0; i < m.Rows(); i++ {
		for j := i + 1; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, 0, v, tol, "entry (%d,%d) above diagonal", i, j)
		}
	}
}

// requireUpperTriangular asserts all strictly-lower entries are ~0.
func requireUpperTriangular(t *testing.T, m *dense.Dense, tol float64) {
	t.Helper()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < i && j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, 0, v, tol, "entry (%d,%d) below diagonal", i, j)
		}
	}
}

// requireOrthonormal asserts QᵀQ == I within tol.
func requireOrthonormal(t *testing.T, q *dense.Dense, tol float64) {
	t.Helper()
	prod, err := q.Transpose().Mul(q)
	require.NoError(t, err)
	eye, err := dense.Identity(prod.Rows(), prod.Cols())
	require.NoError(t, err)
	require.True(t, eye.EqualWithin(prod, tol), "QᵀQ is not identity:\n%s", prod)
}
