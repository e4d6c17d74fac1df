// SPDX-License-Identifier: MIT
// Package: dense
//
// Purpose:
//   - Element-wise and scalar arithmetic kernels over the flat column-major buffer.
//   - One canonical "into-result" kernel per operation; the "return-new" and
//     "in-place" call shapes are thin wrappers (allocate-then-delegate,
//     delegate-with-self-as-result) so shape validation lives in one place.
//
// Determinism & Performance:
//   - Fixed flat loop order 0..n-1 over the backing buffer.
//   - Elementwise operations process each position independently, so aliasing
//     the destination with an operand is safe (unlike Mul/Kronecker).
//   - The into-kernels resize a mismatched destination once, then write; no
//     hidden allocations beyond that.

package dense

// Operation name constants for unified error wrapping.
const (
	opAdd     = "Add"
	opSub     = "Sub"
	opMulElem = "MulElem"
	opScale   = "Scale"
)

// addSubInto computes dst = a + sign*b elementwise for sign ∈ {+1, -1}.
// Shared core of Add/Sub: validation, destination sizing and the hot loop
// live here exactly once.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b); validate dst non-nil.
//   - Stage 2: resize dst if its shape differs from the operands'.
//   - Stage 3: single flat loop 0..n-1 over the buffers.
//
// Errors: ErrNilMatrix, ErrShapeMismatch (all raised before any write).
// Complexity: Time O(r*c), Space O(1) beyond an eventual dst resize.
func addSubInto(a, b, dst *Dense, sign float64, opTag string) error {
	// Validate operands first; a failed call must not touch dst.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return opErrorf(opTag, err)
	}
	if err := ValidateNotNil(dst); err != nil {
		return opErrorf(opTag, err)
	}
	// Adapt the destination shape once (documented resize-on-mismatch path).
	if dst.rows != a.rows || dst.cols != a.cols {
		dst.reshape(a.rows, a.cols)
	}

	// Flat elementwise loop; per-position independence makes dst aliasing safe.
	n := len(a.data)
	for idx := 0; idx < n; idx++ { // deterministic 0..n-1
		dst.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return nil
}

// AddInto computes dst = m + b elementwise, resizing dst on shape mismatch.
// Operand shapes must be identical. Errors: ErrNilMatrix, ErrShapeMismatch.
// Complexity: O(r*c).
func (m *Dense) AddInto(b, dst *Dense) error { return addSubInto(m, b, dst, +1, opAdd) }

// Add computes and returns m + b as a fresh matrix.
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(r*c).
func (m *Dense) Add(b *Dense) (*Dense, error) {
	dst := &Dense{}
	if err := addSubInto(m, b, dst, +1, opAdd); err != nil {
		return nil, err
	}

	return dst, nil
}

// AddInPlace mutates the receiver: m += b.
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(r*c).
func (m *Dense) AddInPlace(b *Dense) error { return addSubInto(m, b, m, +1, opAdd) }

// SubInto computes dst = m - b elementwise, resizing dst on shape mismatch.
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(r*c).
func (m *Dense) SubInto(b, dst *Dense) error { return addSubInto(m, b, dst, -1, opSub) }

// Sub computes and returns m - b as a fresh matrix.
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(r*c).
func (m *Dense) Sub(b *Dense) (*Dense, error) {
	dst := &Dense{}
	if err := addSubInto(m, b, dst, -1, opSub); err != nil {
		return nil, err
	}

	return dst, nil
}

// SubInPlace mutates the receiver: m -= b.
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(r*c).
func (m *Dense) SubInPlace(b *Dense) error { return addSubInto(m, b, m, -1, opSub) }

// MulElemInto computes the elementwise (Hadamard) product dst = m ⊙ b,
// resizing dst on shape mismatch. This is NOT the matrix product; see Mul.
//
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(r*c).
func (m *Dense) MulElemInto(b, dst *Dense) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return opErrorf(opMulElem, err)
	}
	if err := ValidateNotNil(dst); err != nil {
		return opErrorf(opMulElem, err)
	}
	if dst.rows != m.rows || dst.cols != m.cols {
		dst.reshape(m.rows, m.cols)
	}

	n := len(m.data)
	for idx := 0; idx < n; idx++ { // fixed order, position-independent
		dst.data[idx] = m.data[idx] * b.data[idx]
	}

	return nil
}

// MulElem computes and returns the elementwise product m ⊙ b.
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(r*c).
func (m *Dense) MulElem(b *Dense) (*Dense, error) {
	dst := &Dense{}
	if err := m.MulElemInto(b, dst); err != nil {
		return nil, err
	}

	return dst, nil
}

// MulElemInPlace mutates the receiver: m[i] *= b[i] for every position.
// Errors: ErrNilMatrix, ErrShapeMismatch. Complexity: O(r*c).
func (m *Dense) MulElemInPlace(b *Dense) error { return m.MulElemInto(b, m) }

// ScaleInto computes dst = alpha * m, resizing dst on shape mismatch.
// NaN/Inf alphas propagate; the kernel imposes no numeric policy.
//
// Errors: ErrNilMatrix. Complexity: O(r*c).
func (m *Dense) ScaleInto(alpha float64, dst *Dense) error {
	if err := ValidateNotNil(dst); err != nil {
		return opErrorf(opScale, err)
	}
	if dst.rows != m.rows || dst.cols != m.cols {
		dst.reshape(m.rows, m.cols)
	}

	n := len(m.data)
	for idx := 0; idx < n; idx++ {
		dst.data[idx] = m.data[idx] * alpha
	}

	return nil
}

// Scale computes and returns alpha * m as a fresh matrix.
// Complexity: O(r*c).
func (m *Dense) Scale(alpha float64) *Dense {
	dst := &Dense{}
	_ = m.ScaleInto(alpha, dst) // dst is non-nil; no failure path remains

	return dst
}

// ScaleInPlace mutates the receiver: every element times alpha.
// Complexity: O(r*c).
func (m *Dense) ScaleInPlace(alpha float64) {
	_ = m.ScaleInto(alpha, m)
}
