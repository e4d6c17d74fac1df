// SPDX-License-Identifier: MIT
// Package: dense
//
// Purpose:
//   - Structural constructors (identity, diagonal) and randomized fill.
//
// Determinism & Policy:
//   - Identity/Diagonal use fixed i-loops; single write per diagonal cell.
//   - Randomized fill delegates parameter validation to the Sampler: an
//     invalid distribution fails BEFORE any element is written, leaving the
//     matrix untouched.

package dense

// Operation name constants for unified error wrapping.
const (
	opIdentity = "Identity"
	opDiagonal = "Diagonal"
	opFill     = "Fill"
)

// Sampler draws i.i.d. float64 values from one distribution. Implementations
// live in package randdist; the interface sits here so the core stays a leaf
// package while fill validation remains the distribution's responsibility.
type Sampler interface {
	// Validate reports whether the distribution parameters are usable.
	// Fill calls it exactly once, before the first element write.
	Validate() error

	// Sample draws the next value. Called only after Validate succeeded.
	Sample() float64
}

// Identity returns a rows×cols matrix with ones on the min(rows, cols) first
// diagonal entries and zeros elsewhere. Rectangular shapes are allowed.
// Errors: ErrBadShape. Complexity: O(r*c) zeroing + O(min(r,c)) writes.
func Identity(rows, cols int) (*Dense, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, opErrorf(opIdentity, ErrBadShape)
	}
	n := rows
	if cols < n {
		n = cols
	}
	for i := 0; i < n; i++ { // fixed i order; one write per diagonal cell
		m.data[m.colOff[i]+i] = 1.0
	}

	return m, nil
}

// Diagonal returns a square matrix of side len(vals) with vals[i] at (i,i)
// and zeros elsewhere.
// Errors: ErrBadShape on an empty slice. Complexity: O(n²) zeroing + O(n).
func Diagonal(vals []float64) (*Dense, error) {
	n := len(vals)
	if n == 0 {
		return nil, opErrorf(opDiagonal, ErrBadShape)
	}
	m := &Dense{}
	m.reshape(n, n)
	for i := 0; i < n; i++ {
		m.data[m.colOff[i]+i] = vals[i]
	}

	return m, nil
}

// Fill overwrites every element with an independent draw from s.
// Implementation:
//   - Stage 1: s.Validate() — a bad parameter set (e.g. non-positive
//     standard deviation, lo >= hi) fails here, before any element write.
//   - Stage 2: one flat pass over the buffer drawing s.Sample() per cell.
//
// Errors: ErrBadParam (nil sampler or rejected distribution parameters).
// Complexity: O(r*c) draws.
func (m *Dense) Fill(s Sampler) error {
	if s == nil {
		return opErrorf(opFill, ErrBadParam)
	}
	// Validation gate: the matrix stays untouched on failure.
	if err := s.Validate(); err != nil {
		return opErrorf(opFill, err)
	}

	n := len(m.data)
	for idx := 0; idx < n; idx++ { // element order is irrelevant for i.i.d. draws
		m.data[idx] = s.Sample()
	}

	return nil
}
