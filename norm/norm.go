// SPDX-License-Identifier: MIT

// Package norm computes matrix and vector norms as strictly read-only
// consumers of the dense contract: iteration goes through At/Rows/Cols and
// nothing here ever mutates a matrix.
package norm

import (
	"errors"
	"math"

	"github.com/arbelos/linden/dense"
)

// ErrEmptyVector is returned by vector norms handed a nil or empty slice.
var ErrEmptyVector = errors.New("norm: empty vector")

// at reads m(i, j); indices are in range by construction. Complexity: O(1).
func at(m *dense.Dense, i, j int) float64 {
	v, _ := m.At(i, j)
	return v
}

// Frobenius returns sqrt(Σ a[i,j]²), the entrywise two-norm of the matrix.
// Complexity: O(r*c), O(1) space.
func Frobenius(m *dense.Dense) float64 {
	rows, cols := m.Rows(), m.Cols()
	var i, j int
	var sum, v float64
	for j = 0; j < cols; j++ { // storage-order sweep
		for i = 0; i < rows; i++ {
			v = at(m, i, j)
			sum += v * v
		}
	}

	return math.Sqrt(sum)
}

// One returns the maximum absolute column sum of the matrix.
// Complexity: O(r*c), O(1) space.
func One(m *dense.Dense) float64 {
	rows, cols := m.Rows(), m.Cols()
	var i, j int
	var colSum, maxSum float64
	for j = 0; j < cols; j++ {
		colSum = 0
		for i = 0; i < rows; i++ {
			colSum += math.Abs(at(m, i, j))
		}
		if colSum > maxSum {
			maxSum = colSum
		}
	}

	return maxSum
}

// Inf returns the maximum absolute row sum of the matrix.
// Complexity: O(r*c), O(1) space.
func Inf(m *dense.Dense) float64 {
	rows, cols := m.Rows(), m.Cols()
	var i, j int
	var rowSum, maxSum float64
	for i = 0; i < rows; i++ {
		rowSum = 0
		for j = 0; j < cols; j++ {
			rowSum += math.Abs(at(m, i, j))
		}
		if rowSum > maxSum {
			maxSum = rowSum
		}
	}

	return maxSum
}

// VecOne returns Σ|v[i]|. Errors: ErrEmptyVector. Complexity: O(n).
func VecOne(v []float64) (float64, error) {
	if len(v) == 0 {
		return 0, ErrEmptyVector
	}
	var sum float64
	for _, x := range v {
		sum += math.Abs(x)
	}

	return sum, nil
}

// VecTwo returns sqrt(Σ v[i]²). Errors: ErrEmptyVector. Complexity: O(n).
func VecTwo(v []float64) (float64, error) {
	if len(v) == 0 {
		return 0, ErrEmptyVector
	}
	var sum float64
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum), nil
}

// VecInf returns max|v[i]|. Errors: ErrEmptyVector. Complexity: O(n).
func VecInf(v []float64) (float64, error) {
	if len(v) == 0 {
		return 0, ErrEmptyVector
	}
	var maxAbs, x float64
	for _, e := range v {
		x = math.Abs(e)
		if x > maxAbs {
			maxAbs = x
		}
	}

	return maxAbs, nil
}

// OneWithJacobian returns the one-norm n = Σ|v[i]| together with the
// jacobian of the normalized vector, jac[i] = v[i]/n.
//
// When the norm is zero every jacobian entry is set to math.MaxFloat64.
// This sentinel is a documented historical edge case kept for numeric
// parity: the division guard substitutes the largest finite value rather
// than reporting an error, and downstream consumers depend on that shape.
//
// Errors: ErrEmptyVector. Complexity: O(n).
func OneWithJacobian(v []float64) (float64, []float64, error) {
	if len(v) == 0 {
		return 0, nil, ErrEmptyVector
	}

	var sum float64
	for _, x := range v {
		sum += math.Abs(x)
	}

	jac := make([]float64, len(v))
	if sum == 0 {
		// Division-by-zero guard: saturate instead of failing.
		for i := range jac {
			jac[i] = math.MaxFloat64
		}
		return 0, jac, nil
	}
	for i, x := range v {
		jac[i] = x / sum
	}

	return sum, jac, nil
}
