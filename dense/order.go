// SPDX-License-Identifier: MIT
// Package dense: linearization order for flat-array views of a matrix.

package dense

// Order selects the linearization used when a matrix is addressed through a
// single flat index or converted to/from a flat slice.
//
// The backing buffer of Dense is column-major, so ColMajor reads and writes
// address the buffer directly, while RowMajor remaps element by element.
// ColMajor is the package default wherever an order is implied.
type Order int

const (
	// ColMajor walks down a column before advancing to the next column.
	// This is the storage order of Dense: index idx addresses data[idx].
	ColMajor Order = iota

	// RowMajor walks along a row before advancing to the next row:
	// row = idx / cols, col = idx % cols, then mapped through the column
	// offset cache.
	RowMajor
)

// String implements fmt.Stringer for diagnostics.
// Complexity: O(1).
func (o Order) String() string {
	if o == RowMajor {
		return "RowMajor"
	}

	return "ColMajor"
}
