// SPDX-License-Identifier: MIT
// Package: dense
//
// Purpose:
//   - The sole conversion boundary between the matrix and flat float64
//     slices, with an explicit, caller-chosen linearization. External callers
//     composing matrices from externally-sourced vectors must thread the same
//     Order consistently on both directions.
//
// Determinism & Performance:
//   - ColMajor conversions are a single flat copy (the buffer order).
//   - RowMajor conversions remap element by element with fixed i→j order.

package dense

// Operation name constants for unified error wrapping.
const (
	opFromSlice    = "FromSlice"
	opNewFromSlice = "NewFromSlice"
)

// ToSlice copies the matrix out into a fresh flat slice of length rows*cols
// under the chosen linearization. The returned slice never aliases the
// backing buffer. Complexity: O(r*c).
func (m *Dense) ToSlice(ord Order) []float64 {
	out := make([]float64, len(m.data))
	if ord == ColMajor {
		// The buffer already holds the column-major linearization.
		copy(out, m.data)
		return out
	}

	// Row-major view: walk rows outer, columns inner.
	var i, j, k int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			out[k] = m.data[m.colOff[j]+i]
			k++
		}
	}

	return out
}

// FromSlice overwrites the matrix contents from a flat slice under the chosen
// linearization. The shape is unchanged; the length must match exactly.
// Errors: ErrLengthMismatch (checked before any write). Complexity: O(r*c).
func (m *Dense) FromSlice(vals []float64, ord Order) error {
	// Length check precedes every write; no partial ingestion.
	if len(vals) != len(m.data) {
		return opErrorf(opFromSlice, ErrLengthMismatch)
	}
	if ord == ColMajor {
		copy(m.data, vals)
		return nil
	}

	var i, j, k int
	for i = 0; i < m.rows; i++ {
		for j = 0; j < m.cols; j++ {
			m.data[m.colOff[j]+i] = vals[k]
			k++
		}
	}

	return nil
}

// NewFromSlice builds a new single-column (ColMajor) or single-row (RowMajor)
// matrix holding the given values in order.
// Errors: ErrBadShape on an empty slice. Complexity: O(n).
func NewFromSlice(vals []float64, ord Order) (*Dense, error) {
	n := len(vals)
	if n == 0 {
		return nil, opErrorf(opNewFromSlice, ErrBadShape)
	}

	m := &Dense{}
	if ord == ColMajor {
		m.reshape(n, 1) // column vector
	} else {
		m.reshape(1, n) // row vector
	}
	// Either orientation is a single contiguous run in column-major storage.
	copy(m.data, vals)

	return m, nil
}
