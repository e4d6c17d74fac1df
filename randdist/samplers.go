// SPDX-License-Identifier: MIT

// Package randdist provides the random-value distributions consumed by the
// dense fill operations and the multivariate Gaussian built on top of them.
//
// Every sampler validates its parameters up front: dense.(*Dense).Fill calls
// Validate before the first element write, so a bad parameter set never
// partially mutates a matrix. A nil Src falls back to the shared default
// source of math/rand.
package randdist

import (
	"math"
	"math/rand"

	"github.com/arbelos/linden/dense"
)

// Uniform draws values uniformly from the half-open interval [Lo, Hi).
// It implements dense.Sampler.
type Uniform struct {
	Lo, Hi float64
	Src    *rand.Rand // nil means the shared default source
}

// Validate rejects non-finite bounds and Lo >= Hi.
// Errors: dense.ErrBadParam. Complexity: O(1).
func (u Uniform) Validate() error {
	if math.IsNaN(u.Lo) || math.IsNaN(u.Hi) || math.IsInf(u.Lo, 0) || math.IsInf(u.Hi, 0) {
		return dense.ErrBadParam
	}
	// An empty or inverted interval has no mass to draw from.
	if u.Lo >= u.Hi {
		return dense.ErrBadParam
	}

	return nil
}

// Sample draws one value from [Lo, Hi). Complexity: O(1).
func (u Uniform) Sample() float64 {
	if u.Src != nil {
		return u.Lo + (u.Hi-u.Lo)*u.Src.Float64()
	}

	return u.Lo + (u.Hi-u.Lo)*rand.Float64()
}

// Gaussian draws values from the normal distribution N(Mean, StdDev²).
// It implements dense.Sampler.
type Gaussian struct {
	Mean, StdDev float64
	Src          *rand.Rand // nil means the shared default source
}

// Validate rejects non-finite parameters and a non-positive standard
// deviation. Errors: dense.ErrBadParam. Complexity: O(1).
func (g Gaussian) Validate() error {
	if math.IsNaN(g.Mean) || math.IsInf(g.Mean, 0) || math.IsNaN(g.StdDev) || math.IsInf(g.StdDev, 0) {
		return dense.ErrBadParam
	}
	if g.StdDev <= 0 {
		return dense.ErrBadParam
	}

	return nil
}

// Sample draws one value from N(Mean, StdDev²). Complexity: O(1).
func (g Gaussian) Sample() float64 {
	if g.Src != nil {
		return g.Mean + g.StdDev*g.Src.NormFloat64()
	}

	return g.Mean + g.StdDev*rand.NormFloat64()
}
