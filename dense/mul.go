// SPDX-License-Identifier: MIT
// Package: dense
//
// Purpose:
//   - Matrix product and Kronecker product kernels with the two-phase
//     "compute into scratch, then commit" protocol for their in-place shapes.
//
// Determinism & Performance:
//   - Product loop order is column-outer, row-middle, contraction-inner: the
//     contraction walks one operand column sequentially and the output is
//     written column by column, matching the column-major layout of both
//     operands for access locality.
//   - The in-place variants never overwrite the receiver mid-computation: the
//     receiver's own buffer is one of the inputs, so the full result is built
//     in fresh storage and committed atomically via the shared commit helper.
//   - All shape checks happen before any storage is touched.

package dense

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opKronecker = "Kronecker"
)

// mulScratch computes the product a×b into a freshly allocated matrix.
// Callers have already validated compatibility. Complexity: O(r*n*c).
func mulScratch(a, b *Dense) *Dense {
	out := &Dense{}
	out.reshape(a.rows, b.cols)

	var j, k, i int      // output row, output column, contraction index
	var sum float64      // per-cell accumulator
	var bBase, oBase int // column base offsets into b and out
	for k = 0; k < b.cols; k++ { // output column outer
		bBase = b.colOff[k]
		oBase = out.colOff[k]
		for j = 0; j < a.rows; j++ { // output row middle
			sum = 0
			for i = 0; i < a.cols; i++ { // contraction inner
				// a(j,i) strides across columns; b(i,k) walks one column.
				sum += a.data[a.colOff[i]+j] * b.data[bBase+i]
			}
			out.data[oBase+j] = sum
		}
	}

	return out
}

// MulInto computes the matrix product dst = m × b.
// Implementation:
//   - Stage 1: ValidateMulCompatible(m, b); validate dst non-nil. Both checks
//     run before any storage is touched.
//   - Stage 2: if dst aliases an operand, compute into scratch and commit;
//     otherwise resize dst to m.rows × b.cols if needed and write directly.
//
// Behavior highlights:
//   - Column-outer/row-middle/contraction-inner loop order (layout-matched).
//   - Aliased destinations are safe: the result is fully built before commit.
//
// Errors: ErrNilMatrix, ErrShapeMismatch (inner dimension mismatch).
// Complexity: Time O(m.rows * m.cols * b.cols), Space O(result) when
// resizing or going through scratch.
func (m *Dense) MulInto(b, dst *Dense) error {
	if err := ValidateMulCompatible(m, b); err != nil {
		return opErrorf(opMul, err)
	}
	if err := ValidateNotNil(dst); err != nil {
		return opErrorf(opMul, err)
	}

	// The destination buffer is an input when dst aliases an operand; build
	// the result in fresh storage first, then commit atomically.
	if dst == m || dst == b {
		dst.commit(mulScratch(m, b))
		return nil
	}

	if dst.rows != m.rows || dst.cols != b.cols {
		dst.reshape(m.rows, b.cols)
	}
	var j, k, i int
	var sum float64
	var bBase, oBase int
	for k = 0; k < b.cols; k++ { // output column outer
		bBase = b.colOff[k]
		oBase = dst.colOff[k]
		for j = 0; j < m.rows; j++ { // output row middle
			sum = 0
			for i = 0; i < m.cols; i++ { // contraction inner
				sum += m.data[m.colOff[i]+j] * b.data[bBase+i]
			}
			dst.data[oBase+j] = sum
		}
	}

	return nil
}

// Mul computes and returns the matrix product m × b as a fresh matrix.
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(r*n*c).
func (m *Dense) Mul(b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, opErrorf(opMul, err)
	}

	return mulScratch(m, b), nil
}

// MulInPlace mutates the receiver: m = m × b. The receiver's buffer is one of
// the inputs and cannot be overwritten mid-computation, so the full result is
// computed into fresh storage before committing (two-phase protocol).
// Errors: ErrNilMatrix, ErrShapeMismatch, raised before any storage changes.
// Complexity: O(r*n*c) time, O(result) space for the scratch buffer.
func (m *Dense) MulInPlace(b *Dense) error {
	if err := ValidateMulCompatible(m, b); err != nil {
		return opErrorf(opMul, err)
	}
	m.commit(mulScratch(m, b))

	return nil
}

// kroneckerScratch computes the Kronecker product a ⊗ b into fresh storage.
// For an m×n receiver and p×q operand the result is (m*p)×(n*q); the p×q
// block at block coordinates (i1, j1) equals a(i1,j1) * b. Complexity:
// O(m*n*p*q).
func kroneckerScratch(a, b *Dense) *Dense {
	out := &Dense{}
	out.reshape(a.rows*b.rows, a.cols*b.cols)

	var j1, j2, i1, i2 int // block column, inner column, block row, inner row
	var f float64          // scale factor a(i1,j1) for the current block
	var bBase, oBase int   // column bases into b and out
	for j1 = 0; j1 < a.cols; j1++ {
		for j2 = 0; j2 < b.cols; j2++ {
			// One full result column per (j1,j2); written top to bottom.
			bBase = b.colOff[j2]
			oBase = out.colOff[j1*b.cols+j2]
			for i1 = 0; i1 < a.rows; i1++ {
				f = a.data[a.colOff[j1]+i1]
				for i2 = 0; i2 < b.rows; i2++ {
					out.data[oBase+i1*b.rows+i2] = f * b.data[bBase+i2]
				}
			}
		}
	}

	return out
}

// KroneckerInto computes the Kronecker product dst = m ⊗ b. Any operand
// shapes are compatible; the result shape is (m.rows*b.rows) ×
// (m.cols*b.cols), and dst is resized to it when needed. Aliased
// destinations go through scratch-then-commit like MulInto.
// Errors: ErrNilMatrix. Complexity: O(m*n*p*q).
func (m *Dense) KroneckerInto(b, dst *Dense) error {
	if err := ValidateNotNil(b); err != nil {
		return opErrorf(opKronecker, err)
	}
	if err := ValidateNotNil(dst); err != nil {
		return opErrorf(opKronecker, err)
	}

	// The tiling reads both operands while writing; never write over an input.
	if dst == m || dst == b {
		dst.commit(kroneckerScratch(m, b))
		return nil
	}

	// Non-aliased destination: reuse its buffer when the shape already fits.
	rows, cols := m.rows*b.rows, m.cols*b.cols
	if dst.rows != rows || dst.cols != cols {
		dst.reshape(rows, cols)
	}
	var j1, j2, i1, i2 int
	var f float64
	var bBase, oBase int
	for j1 = 0; j1 < m.cols; j1++ {
		for j2 = 0; j2 < b.cols; j2++ {
			bBase = b.colOff[j2]
			oBase = dst.colOff[j1*b.cols+j2]
			for i1 = 0; i1 < m.rows; i1++ {
				f = m.data[m.colOff[j1]+i1]
				for i2 = 0; i2 < b.rows; i2++ {
					dst.data[oBase+i1*b.rows+i2] = f * b.data[bBase+i2]
				}
			}
		}
	}

	return nil
}

// Kronecker computes and returns m ⊗ b as a fresh matrix.
// Errors: ErrNilMatrix. Complexity: O(m*n*p*q).
func (m *Dense) Kronecker(b *Dense) (*Dense, error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, opErrorf(opKronecker, err)
	}

	return kroneckerScratch(m, b), nil
}

// KroneckerInPlace mutates the receiver: m = m ⊗ b. Mirrors the product's
// two-step commit rule: the receiver's storage is replaced only after the
// full result exists in scratch buffers.
// Errors: ErrNilMatrix. Complexity: O(m*n*p*q).
func (m *Dense) KroneckerInPlace(b *Dense) error {
	if err := ValidateNotNil(b); err != nil {
		return opErrorf(opKronecker, err)
	}
	m.commit(kroneckerScratch(m, b))

	return nil
}
