// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide in-place element-wise kernels over views (sum, zero fill).
//   - Mutate the destination and return only an error: no handle to the
//     destination is handed back, so ownership stays with the caller's Dense.
//
// Determinism & Performance:
//   - Fixed i→j loop order; no allocations.

package matrix

const (
	opAddInto = "AddInto"
)

// AddInto stores the element-wise sum a + b into dst (dst = a + b).
//
// dst may be exactly a or b (same base, same window): each cell is read
// before it is written. Any other overlap is rejected.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAliasedOperands.
// Time: O(n²). Space: O(1).
func AddInto(dst, a, b MatrixView) error {
	if err := validateViews(dst, a, b); err != nil {
		return matrixErrorf(opAddInto, err)
	}
	if (dst.Overlaps(a) && dst != a) || (dst.Overlaps(b) && dst != b) {
		return matrixErrorf(opAddInto, ErrAliasedOperands)
	}

	var i, j int
	for i = 0; i < dst.n; i++ {
		for j = 0; j < dst.n; j++ {
			dst.base.data[dst.offset(i, j)] = a.at(i, j) + b.at(i, j)
		}
	}

	return nil
}

// Zero overwrites every cell of the view with 0. A zero view is a no-op.
// Time: O(n²).
func (v MatrixView) Zero() {
	if v.base == nil {
		return
	}
	for i := 0; i < v.n; i++ {
		start := v.offset(i, 0)
		clear(v.base.data[start : start+v.n])
	}
}

// Reset zeroes the whole matrix so it can be reused as a product destination.
// Time: O(n²).
func (m *Dense) Reset() {
	clear(m.data)
}
