// SPDX-License-Identifier: MIT
// Package: dense
//
// Purpose:
//   - Rectangular region extraction and insertion over corner-inclusive
//     coordinates, plus scalar region fill.
//
// Determinism & Performance:
//   - Regions are copied column by column (the storage order), so extraction
//     preserves the column-major relative layout of the source region.
//   - Region validation is complete before the first element moves; a failed
//     call leaves both matrices untouched.
//   - Region size checks compare row and column counts individually: a region
//     is copied column-by-column, so equal element counts with different
//     shapes are rejected (ErrShapeMismatch), never reinterpreted.

package dense

// Operation name constants for unified error wrapping.
const (
	opSubmatrix    = "Submatrix"
	opSetSubmatrix = "SetSubmatrix"
	opFillRegion   = "FillRegion"
)

// SubmatrixInto extracts the corner-inclusive region (r0,c0)-(r1,c1) into
// dst, resizing dst to (r1-r0+1) × (c1-c0+1) on shape mismatch.
// Errors: ErrBadRegion (out-of-bounds or inverted corners), ErrNilMatrix.
// Complexity: O(region).
func (m *Dense) SubmatrixInto(r0, c0, r1, c1 int, dst *Dense) error {
	if err := ValidateRegion(m.rows, m.cols, r0, c0, r1, c1); err != nil {
		return opErrorf(opSubmatrix, err)
	}
	if err := ValidateNotNil(dst); err != nil {
		return opErrorf(opSubmatrix, err)
	}
	rows, cols := r1-r0+1, c1-c0+1
	if dst.rows != rows || dst.cols != cols {
		dst.reshape(rows, cols)
	}

	// Copy one source column segment per destination column; contiguous in
	// both matrices thanks to the shared column-major layout.
	var j int
	for j = 0; j < cols; j++ {
		srcBase := m.colOff[c0+j] + r0
		copy(dst.data[dst.colOff[j]:dst.colOff[j]+rows], m.data[srcBase:srcBase+rows])
	}

	return nil
}

// Submatrix extracts and returns the corner-inclusive region (r0,c0)-(r1,c1)
// as a fresh matrix. Errors: ErrBadRegion. Complexity: O(region).
func (m *Dense) Submatrix(r0, c0, r1, c1 int) (*Dense, error) {
	dst := &Dense{}
	if err := m.SubmatrixInto(r0, c0, r1, c1, dst); err != nil {
		return nil, err
	}

	return dst, nil
}

// SetSubmatrix copies the whole of src into the receiver with its top-left
// element landing at (r0, c0). The implied destination region must lie fully
// inside the receiver.
// Errors: ErrNilMatrix, ErrBadRegion. Complexity: O(src).
func (m *Dense) SetSubmatrix(r0, c0 int, src *Dense) error {
	if err := ValidateNotNil(src); err != nil {
		return opErrorf(opSetSubmatrix, err)
	}

	return m.SetSubmatrixRegion(r0, c0, r0+src.rows-1, c0+src.cols-1, src, 0, 0, src.rows-1, src.cols-1)
}

// SetSubmatrixRegion copies the source region (sr0,sc0)-(sr1,sc1) of src into
// the destination region (r0,c0)-(r1,c1) of the receiver.
// Implementation:
//   - Stage 1: validate both regions inside their matrices, then require the
//     row counts and column counts to match INDIVIDUALLY — element-count
//     equality alone is not sufficient because the copy proceeds column by
//     column, not as a flat blit.
//   - Stage 2: copy one column segment at a time.
//
// Errors: ErrNilMatrix, ErrBadRegion (either region invalid),
// ErrShapeMismatch (region shapes differ). Complexity: O(region).
func (m *Dense) SetSubmatrixRegion(r0, c0, r1, c1 int, src *Dense, sr0, sc0, sr1, sc1 int) error {
	if err := ValidateNotNil(src); err != nil {
		return opErrorf(opSetSubmatrix, err)
	}
	if err := ValidateRegion(m.rows, m.cols, r0, c0, r1, c1); err != nil {
		return opErrorf(opSetSubmatrix, err)
	}
	if err := ValidateRegion(src.rows, src.cols, sr0, sc0, sr1, sc1); err != nil {
		return opErrorf(opSetSubmatrix, err)
	}
	rows, cols := r1-r0+1, c1-c0+1
	// Per-axis match; 2×3 into 3×2 is rejected even though 6 == 6.
	if rows != sr1-sr0+1 || cols != sc1-sc0+1 {
		return opErrorf(opSetSubmatrix, ErrShapeMismatch)
	}

	var j int
	for j = 0; j < cols; j++ {
		srcBase := src.colOff[sc0+j] + sr0
		dstBase := m.colOff[c0+j] + r0
		copy(m.data[dstBase:dstBase+rows], src.data[srcBase:srcBase+rows])
	}

	return nil
}

// SetSubmatrixSlice copies a flat array into the destination region
// (r0,c0)-(r1,c1) under the chosen linearization: ColMajor consumes vals
// walking down each region column, RowMajor walking along each region row.
// Errors: ErrBadRegion, ErrLengthMismatch (len(vals) != region element
// count). Complexity: O(region).
func (m *Dense) SetSubmatrixSlice(r0, c0, r1, c1 int, vals []float64, ord Order) error {
	if err := ValidateRegion(m.rows, m.cols, r0, c0, r1, c1); err != nil {
		return opErrorf(opSetSubmatrix, err)
	}
	rows, cols := r1-r0+1, c1-c0+1
	if len(vals) != rows*cols {
		return opErrorf(opSetSubmatrix, ErrLengthMismatch)
	}

	var i, j, k int
	if ord == ColMajor {
		// Source walks down columns; each column segment is contiguous.
		for j = 0; j < cols; j++ {
			dstBase := m.colOff[c0+j] + r0
			copy(m.data[dstBase:dstBase+rows], vals[k:k+rows])
			k += rows
		}
		return nil
	}
	// Row-major source: scatter one row of vals across the region columns.
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			m.data[m.colOff[c0+j]+r0+i] = vals[k]
			k++
		}
	}

	return nil
}

// FillRegion sets every element of the corner-inclusive region
// (r0,c0)-(r1,c1) to v, without any intermediate buffer.
// Errors: ErrBadRegion. Complexity: O(region).
func (m *Dense) FillRegion(r0, c0, r1, c1 int, v float64) error {
	if err := ValidateRegion(m.rows, m.cols, r0, c0, r1, c1); err != nil {
		return opErrorf(opFillRegion, err)
	}

	var i, j, base int
	for j = c0; j <= c1; j++ { // column-major sweep over the region
		base = m.colOff[j]
		for i = r0; i <= r1; i++ {
			m.data[base+i] = v
		}
	}

	return nil
}
