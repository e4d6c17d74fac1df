// SPDX-License-Identifier: MIT
// Package dense provides the core dense-matrix storage abstraction for
// array-based numeric computations. Dense stores elements column-major in a
// flat slice, with a per-column offset cache that keeps element addressing a
// single add away from the buffer.
package dense

import (
	"fmt"
	"strings"
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opNew      = "New"
	opAt       = "At"
	opSet      = "Set"
	opAtIndex  = "AtIndex"
	opSetIndex = "SetIndex"
	opResize   = "Resize"
	opCopyFrom = "CopyFrom"
	opCopyTo   = "CopyTo"
)

// Dense is a column-major matrix of float64 values.
//
// Invariants (maintained by every mutating operation, atomically):
//   - len(data) == rows*cols at all times.
//   - len(colOff) == cols; colOff[j] == j*rows; strictly increasing by rows.
//   - The element at (row i, column j) lives at data[colOff[j]+i].
//   - rows > 0 and cols > 0; an empty matrix is unreachable.
//   - data is ownership-exclusive; no public operation aliases two instances.
//
// The colOff cache is derived redundancy: it exists purely to avoid
// recomputing j*rows on every access. All shape changes go through the single
// internal reshape so the buffer and the cache can never drift apart.
type Dense struct {
	rows, cols int       // matrix dimensions, both strictly positive
	data       []float64 // flat backing storage, column-major, len == rows*cols
	colOff     []int     // per-column base offsets, colOff[j] = j*rows
}

// New creates a rows×cols Dense matrix initialized to zeros.
// Implementation:
//   - Stage 1: validate rows and cols > 0.
//   - Stage 2: allocate the flat buffer and the column offset cache together.
//
// Errors:
//   - ErrBadShape when either dimension is non-positive.
//
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*Dense, error) {
	// Validate dimensions before any allocation.
	if err := ValidateShape(rows, cols); err != nil {
		return nil, opErrorf(opNew, err)
	}

	// Allocate buffer and cache as one atomic construction step.
	m := &Dense{}
	m.reshape(rows, cols)

	return m, nil
}

// reshape reallocates the buffer and rebuilds the column offset cache for the
// new shape. It is the ONLY path that touches rows/cols, so the derived cache
// can never be observed inconsistent with the dimensions. Prior contents are
// discarded; the new buffer is zero-filled by the runtime.
//
// Callers must have validated the shape already. Complexity: O(r*c).
func (m *Dense) reshape(rows, cols int) {
	m.rows = rows
	m.cols = cols
	m.data = make([]float64, rows*cols)
	m.colOff = make([]int, cols)
	for j := 0; j < cols; j++ { // colOff[0] == 0, step == rows
		m.colOff[j] = j * rows
	}
}

// commit atomically replaces the receiver's shape, buffer and offset cache
// with those of a fully computed scratch matrix. This is the shared second
// phase of every aliasing-sensitive in-place operation (matrix product,
// Kronecker product, transpose): compute into scratch, then commit.
// Complexity: O(1).
func (m *Dense) commit(s *Dense) {
	m.rows, m.cols = s.rows, s.cols
	m.data = s.data
	m.colOff = s.colOff
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.cols }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.rows {
		return 0, ErrOutOfRange
	}
	// Validate column index.
	if col < 0 || col >= m.cols {
		return 0, ErrOutOfRange
	}

	// Column-major offset: walk down column col, then row steps.
	return m.colOff[col] + row, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange on invalid coordinates. Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, opErrorf(opAt, err)
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Errors: ErrOutOfRange on invalid coordinates. Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return opErrorf(opSet, err)
	}
	m.data[idx] = v

	return nil
}

// AtIndex retrieves the element addressed by a single linear index under the
// given linearization order. Under ColMajor the index addresses the backing
// buffer directly; under RowMajor it is decomposed as row = idx/cols,
// col = idx%cols and mapped through the column offset cache.
// Errors: ErrOutOfRange when idx is outside [0, rows*cols). Complexity: O(1).
func (m *Dense) AtIndex(idx int, ord Order) (float64, error) {
	if idx < 0 || idx >= len(m.data) {
		return 0, opErrorf(opAtIndex, ErrOutOfRange)
	}
	// Column-major index is the buffer index itself.
	if ord == ColMajor {
		return m.data[idx], nil
	}

	// Row-major index: decompose, then address column-major storage.
	return m.data[m.colOff[idx%m.cols]+idx/m.cols], nil
}

// SetIndex assigns v at the element addressed by a linear index under the
// given linearization order; see AtIndex for the mapping.
// Errors: ErrOutOfRange when idx is outside [0, rows*cols). Complexity: O(1).
func (m *Dense) SetIndex(idx int, ord Order, v float64) error {
	if idx < 0 || idx >= len(m.data) {
		return opErrorf(opSetIndex, ErrOutOfRange)
	}
	if ord == ColMajor {
		m.data[idx] = v
		return nil
	}
	m.data[m.colOff[idx%m.cols]+idx/m.cols] = v

	return nil
}

// Resize reallocates the buffer and rebuilds the offset cache for the new
// shape. Prior contents are NOT preserved. The operation fails rather than
// silently degrading to an empty matrix.
//
// Errors: ErrBadShape when either dimension is non-positive (the receiver is
// left untouched). Complexity: O(r*c).
func (m *Dense) Resize(rows, cols int) error {
	// Validate fully before mutating; a failed resize is a no-op.
	if err := ValidateShape(rows, cols); err != nil {
		return opErrorf(opResize, err)
	}
	m.reshape(rows, cols)

	return nil
}

// CopyFrom overwrites the receiver with the contents of src.
// Implementation:
//   - Stage 1: validate src non-nil.
//   - Stage 2: if shapes differ, reshape the receiver (discarding contents);
//     if shapes already match, reuse the existing buffer — this fast path
//     avoids allocation churn in hot loops that recycle a result matrix.
//   - Stage 3: copy the flat buffer verbatim (layouts are identical).
//
// Errors: ErrNilMatrix. Complexity: O(r*c).
func (m *Dense) CopyFrom(src *Dense) error {
	if err := ValidateNotNil(src); err != nil {
		return opErrorf(opCopyFrom, err)
	}
	// Self-copy is a no-op; the buffers already coincide.
	if m == src {
		return nil
	}
	// Reallocate only on shape mismatch; same shape overwrites in place.
	if m.rows != src.rows || m.cols != src.cols {
		m.reshape(src.rows, src.cols)
	}
	copy(m.data, src.data)

	return nil
}

// CopyTo overwrites dst with the contents of the receiver; the mirror of
// CopyFrom with the same resize-or-reuse discipline.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func (m *Dense) CopyTo(dst *Dense) error {
	if err := ValidateNotNil(dst); err != nil {
		return opErrorf(opCopyTo, err)
	}

	return dst.CopyFrom(m)
}

// Clone returns a deep, independent copy of the matrix: buffer and offset
// cache are freshly allocated, so mutating the copy never affects the
// original. Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	c := &Dense{rows: m.rows, cols: m.cols}
	c.data = make([]float64, len(m.data))
	copy(c.data, m.data)
	c.colOff = make([]int, len(m.colOff))
	copy(c.colOff, m.colOff)

	return c
}

// String implements fmt.Stringer for easy debugging; one bracketed line per
// row. Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.rows; i++ { // iterate over rows
		b.WriteByte('[')
		for j = 0; j < m.cols; j++ { // walk the row across columns
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[m.colOff[j]+i])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
