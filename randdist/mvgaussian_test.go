// SPDX-License-Identifier: MIT
// Package randdist_test: multivariate Gaussian construction and sampling.

package randdist_test

import (
	"math/rand"
	"testing"

	"github.com/arbelos/linden/decomp"
	"github.com/arbelos/linden/dense"
	"github.com/arbelos/linden/randdist"
	"github.com/stretchr/testify/require"
)

// spdCov builds a small SPD covariance matrix from row-major values.
func spdCov(t *testing.T, n int, vals ...float64) *dense.Dense {
	t.Helper()
	m, err := dense.New(n, n)
	require.NoError(t, err)
	require.NoError(t, m.FromSlice(vals, dense.RowMajor))

	return m
}

// TestNewMultivariateGaussian constructs a 2D distribution over a valid
// covariance.
func TestNewMultivariateGaussian(t *testing.T) {
	cov := spdCov(t, 2,
		4, 1,
		1, 3)

	d, err := randdist.NewMultivariateGaussian([]float64{1, -2}, cov)
	require.NoError(t, err)
	require.Equal(t, 2, d.Dim())
}

// TestNewMultivariateGaussianRejects covers the invalid-input surface:
// missing inputs, dimension mismatch, asymmetry, and non-SPD covariance.
func TestNewMultivariateGaussianRejects(t *testing.T) {
	cov := spdCov(t, 2, 4, 1, 1, 3)

	_, err := randdist.NewMultivariateGaussian(nil, cov)
	require.ErrorIs(t, err, randdist.ErrBadCovariance)

	_, err = randdist.NewMultivariateGaussian([]float64{1}, nil)
	require.ErrorIs(t, err, randdist.ErrBadCovariance)

	// Mean length disagrees with the covariance side.
	_, err = randdist.NewMultivariateGaussian([]float64{1, 2, 3}, cov)
	require.ErrorIs(t, err, randdist.ErrBadCovariance)

	// Asymmetric covariance.
	_, err = randdist.NewMultivariateGaussian([]float64{0, 0}, spdCov(t, 2, 4, 1, 2, 3))
	require.ErrorIs(t, err, randdist.ErrBadCovariance)

	// Symmetric but indefinite: the factorization sentinel passes through.
	_, err = randdist.NewMultivariateGaussian([]float64{0, 0}, spdCov(t, 2, 1, 2, 2, 1))
	require.ErrorIs(t, err, decomp.ErrNotPositiveDefinite)
}

// TestMultivariateGaussianSampleShape returns an n×1 column per draw.
func TestMultivariateGaussianSampleShape(t *testing.T) {
	d, err := randdist.NewMultivariateGaussian([]float64{0, 0, 0}, spdCov(t, 3,
		2, 0, 0,
		0, 2, 0,
		0, 0, 2))
	require.NoError(t, err)

	v, err := d.Sample(rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	require.Equal(t, 3, v.Rows())
	require.Equal(t, 1, v.Cols())
}

// TestMultivariateGaussianMoments draws many seeded samples and checks the
// empirical mean and covariance diagonal against the parameters.
func TestMultivariateGaussianMoments(t *testing.T) {
	const n = 20000
	mean := []float64{2, -1}
	d, err := randdist.NewMultivariateGaussian(mean, spdCov(t, 2,
		4, 1,
		1, 3))
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	var sum0, sum1, sq0, sq1 float64
	for i := 0; i < n; i++ {
		v, errS := d.Sample(rng)
		require.NoError(t, errS)
		x0, _ := v.At(0, 0)
		x1, _ := v.At(1, 0)
		sum0 += x0
		sum1 += x1
		sq0 += x0 * x0
		sq1 += x1 * x1
	}

	m0, m1 := sum0/n, sum1/n
	require.InDelta(t, 2, m0, 0.1)
	require.InDelta(t, -1, m1, 0.1)
	require.InDelta(t, 4, sq0/n-m0*m0, 0.25) // cov[0][0]
	require.InDelta(t, 3, sq1/n-m1*m1, 0.25) // cov[1][1]
}

// TestMultivariateGaussianDeterminism: equal seeds yield equal draws.
func TestMultivariateGaussianDeterminism(t *testing.T) {
	cov := spdCov(t, 2, 4, 1, 1, 3)
	d, err := randdist.NewMultivariateGaussian([]float64{0, 0}, cov)
	require.NoError(t, err)

	a, err := d.Sample(rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	b, err := d.Sample(rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	require.True(t, a.Equal(b))
}
