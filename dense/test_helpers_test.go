// SPDX-License-Identifier: MIT
// Package dense_test: shared helpers for the dense test suite.

package dense_test

import (
	"testing"

	"github.com/arbelos/linden/dense"
	"github.com/stretchr/testify/require"
)

// mustDense builds a rows×cols matrix from row-major values and fails the
// test on any construction error.
func mustDense(t *testing.T, rows, cols int, vals ...float64) *dense.Dense {
	t.Helper()

	m, err := dense.New(rows, cols) // allocate the target shape
	require.NoError(t, err)         // construction must succeed for valid shapes

	err = m.FromSlice(vals, dense.RowMajor) // ingest values in reading order
	require.NoError(t, err)                 // lengths are fixed by the caller

	return m
}

// requireMatrixEqual asserts elementwise equality within tol, with a readable
// dump of both matrices on failure.
func requireMatrixEqual(t *testing.T, want, got *dense.Dense, tol float64) {
	t.Helper()

	require.Truef(t, want.EqualWithin(got, tol),
		"matrices differ (tol=%g)\nwant:\n%sgot:\n%s", tol, want, got)
}
