// SPDX-License-Identifier: MIT
// Package: randdist
//
// Multivariate Gaussian sampling over a covariance matrix. This is the
// statistical consumer of the dense contract: covariance matrices are built
// with Identity/Diagonal, combined via Mul/Add, validated with tolerance
// equality, and factorized through decomp.Cholesky.

package randdist

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/arbelos/linden/decomp"
	"github.com/arbelos/linden/dense"
)

// ErrBadCovariance signals a covariance matrix that is not square, does not
// match the mean length, or is not symmetric within dense.DefaultEpsilon.
var ErrBadCovariance = errors.New("randdist: invalid covariance matrix")

const opMVGaussian = "MultivariateGaussian"

// MultivariateGaussian samples vectors from N(mean, cov). The factorization
// is computed once at construction; each Sample costs one matrix-vector
// product.
type MultivariateGaussian struct {
	mean []float64    // distribution mean, one entry per dimension
	chol *dense.Dense // lower Cholesky factor L of the covariance, cov = L·Lᵀ
}

// NewMultivariateGaussian validates the distribution and precomputes the
// Cholesky factor of the covariance.
// Implementation:
//   - Stage 1: dimension checks (square covariance matching len(mean)), then
//     symmetry via tolerance equality against the transpose.
//   - Stage 2: decomp.Cholesky; a non-SPD covariance surfaces its sentinel.
//
// Errors: ErrBadCovariance, decomp.ErrNotPositiveDefinite.
// Complexity: O(n³) for the factorization.
func NewMultivariateGaussian(mean []float64, cov *dense.Dense) (*MultivariateGaussian, error) {
	if cov == nil || len(mean) == 0 {
		return nil, fmt.Errorf("%s: %w", opMVGaussian, ErrBadCovariance)
	}
	if cov.Rows() != cov.Cols() || cov.Rows() != len(mean) {
		return nil, fmt.Errorf("%s: %w", opMVGaussian, ErrBadCovariance)
	}
	// Symmetry within tolerance, checked through the public equality surface.
	if !cov.EqualWithin(cov.Transpose(), dense.DefaultEpsilon) {
		return nil, fmt.Errorf("%s: %w", opMVGaussian, ErrBadCovariance)
	}

	l, err := decomp.Cholesky(cov)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMVGaussian, err)
	}

	// Keep a private copy of the mean; callers may reuse their slice.
	m := make([]float64, len(mean))
	copy(m, mean)

	return &MultivariateGaussian{mean: m, chol: l}, nil
}

// Dim returns the dimensionality of the distribution. Complexity: O(1).
func (d *MultivariateGaussian) Dim() int { return len(d.mean) }

// Sample draws one vector: mean + L·z with z ~ N(0, I), returned as an n×1
// column matrix. A nil rng falls back to the shared default source.
// Complexity: O(n²) for the matrix-vector product.
func (d *MultivariateGaussian) Sample(rng *rand.Rand) (*dense.Dense, error) {
	n := len(d.mean)

	// Draw the standard normal driver z as a column vector.
	zvals := make([]float64, n)
	g := Gaussian{Mean: 0, StdDev: 1, Src: rng}
	for i := 0; i < n; i++ {
		zvals[i] = g.Sample()
	}
	z, err := dense.NewFromSlice(zvals, dense.ColMajor)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMVGaussian, err)
	}

	// y = L·z, then shift by the mean.
	y, err := d.chol.Mul(z)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMVGaussian, err)
	}
	mu, err := dense.NewFromSlice(d.mean, dense.ColMajor)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMVGaussian, err)
	}
	if err = y.AddInPlace(mu); err != nil {
		return nil, fmt.Errorf("%s: %w", opMVGaussian, err)
	}

	return y, nil
}
