// SPDX-License-Identifier: MIT
// Package: dense
//
// Purpose:
//   - Transpose and symmetrization kernels.
//
// Determinism & Performance:
//   - Transpose reads the source column by column and scatters across result
//     columns; fixed j→i order.
//   - The in-place transpose of a non-square matrix would corrupt
//     not-yet-read source elements if done over the live buffer, so it
//     follows the same compute-into-scratch-then-commit protocol as the
//     matrix product.
//   - Symmetrize visits only the upper triangle (i <= j) and writes the
//     averaged value to both mirror cells, halving the work of a naive
//     transpose-and-average pass.

package dense

// Operation name constants for unified error wrapping.
const (
	opTranspose  = "Transpose"
	opSymmetrize = "Symmetrize"
)

// transposeScratch builds mᵀ in fresh storage. Complexity: O(r*c).
func transposeScratch(m *Dense) *Dense {
	out := &Dense{}
	out.reshape(m.cols, m.rows)

	var i, j, base int
	for j = 0; j < m.cols; j++ { // walk the source one column at a time
		base = m.colOff[j]
		for i = 0; i < m.rows; i++ {
			// (i,j) of the source becomes (j,i) of the transpose.
			out.data[out.colOff[i]+j] = m.data[base+i]
		}
	}

	return out
}

// TransposeInto computes dst = mᵀ with result shape cols × rows, resizing dst
// on shape mismatch. An aliased destination (dst == m) goes through scratch.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func (m *Dense) TransposeInto(dst *Dense) error {
	if err := ValidateNotNil(dst); err != nil {
		return opErrorf(opTranspose, err)
	}
	// Writing (j,i) while (i,j) is still unread corrupts non-square inputs;
	// an aliased destination must take the scratch path.
	if dst == m {
		dst.commit(transposeScratch(m))
		return nil
	}
	if dst.rows != m.cols || dst.cols != m.rows {
		dst.reshape(m.cols, m.rows)
	}

	var i, j, base int
	for j = 0; j < m.cols; j++ {
		base = m.colOff[j]
		for i = 0; i < m.rows; i++ {
			dst.data[dst.colOff[i]+j] = m.data[base+i]
		}
	}

	return nil
}

// Transpose computes and returns mᵀ as a fresh matrix. Complexity: O(r*c).
func (m *Dense) Transpose() *Dense {
	return transposeScratch(m)
}

// TransposeInPlace replaces the receiver with its transpose. The result is
// computed into a freshly allocated buffer of swapped dimensions before the
// shape, buffer and offset cache are committed together — overwriting in
// place during the copy would corrupt not-yet-read elements for non-square
// matrices. Complexity: O(r*c) time and space.
func (m *Dense) TransposeInPlace() {
	m.commit(transposeScratch(m))
}

// SymmetrizeInto computes dst = (m + mᵀ) / 2 for a square receiver.
// Implementation:
//   - Stage 1: validate m square, dst non-nil and dst shape equal to m's —
//     unlike the elementwise kernels, a mismatched destination here FAILS
//     rather than resizes. All checks run before any write.
//   - Stage 2: visit only the upper triangle (i <= j) and write the averaged
//     value to both (i,j) and (j,i) simultaneously.
//
// An aliased destination is safe: for each visited pair both source values
// are read before either mirror cell is written.
// Errors: ErrNilMatrix, ErrShapeMismatch (non-square receiver or mismatched
// destination). Complexity: O(n²) with half the element visits of a full pass.
func (m *Dense) SymmetrizeInto(dst *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return opErrorf(opSymmetrize, err)
	}
	if err := ValidateNotNil(dst); err != nil {
		return opErrorf(opSymmetrize, err)
	}
	if err := ValidateSameShape(m, dst); err != nil {
		return opErrorf(opSymmetrize, err)
	}

	n := m.rows
	var i, j int
	var avg float64
	for j = 0; j < n; j++ {
		// Diagonal is its own mirror; copy it unchanged.
		dst.data[dst.colOff[j]+j] = m.data[m.colOff[j]+j]
		for i = 0; i < j; i++ { // strict upper triangle
			avg = (m.data[m.colOff[j]+i] + m.data[m.colOff[i]+j]) / 2
			dst.data[dst.colOff[j]+i] = avg // (i,j)
			dst.data[dst.colOff[i]+j] = avg // (j,i) mirror
		}
	}

	return nil
}

// Symmetrize computes and returns (m + mᵀ) / 2 as a fresh matrix.
// Errors: ErrShapeMismatch (non-square receiver). Complexity: O(n²).
func (m *Dense) Symmetrize() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, opErrorf(opSymmetrize, err)
	}
	dst := &Dense{}
	dst.reshape(m.rows, m.cols) // allocate the matching-shape destination
	if err := m.SymmetrizeInto(dst); err != nil {
		return nil, err
	}

	return dst, nil
}

// SymmetrizeInPlace replaces m with (m + mᵀ) / 2.
// Errors: ErrShapeMismatch (non-square receiver). Complexity: O(n²).
func (m *Dense) SymmetrizeInPlace() error { return m.SymmetrizeInto(m) }
