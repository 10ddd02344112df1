// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide one owned row-major buffer per matrix with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Hand out no-copy square windows (MatrixView) for the quadrant recursion.
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Set: O(1); Clone: O(n²); View/Full: O(1).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"   // method tag used in error wrappers
	ctxSet  = "Set"  // method tag used in error wrappers
	ctxView = "View" // ctor tag for Dense.View
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a square row-major integer matrix.
//   - n is the logical dimension (rows == cols == n).
//   - data is a flat buffer of length n*n in row-major order (offset = i*n + j).
//
// A Dense exclusively owns its buffer; every MatrixView taken from it borrows
// that buffer and must not outlive it.
type Dense struct {
	n    int   // dimension (>0)
	data []int // contiguous row-major storage (len == n*n)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an n×n zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate n>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer of n*n cells.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewDense(%d): %w", n, ErrInvalidDimensions)
	}

	// make() zero-fills the buffer deterministically.
	return &Dense{n: n, data: make([]int, n*n)}, nil
}

// NewDenseFromRows builds a Dense from a square literal, copying every row.
// MAIN DESCRIPTION:
//   - Convenience constructor for fixtures and callers that hold [][]int.
//
// Implementation:
//   - Stage 1: reject empty input (ErrInvalidDimensions).
//   - Stage 2: every row must have len(rows) entries (ErrNonSquare).
//   - Stage 3: copy rows into the flat buffer.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewDenseFromRows(rows [][]int) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: %w", ErrInvalidDimensions)
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d cols, want %d: %w", i, len(row), n, ErrNonSquare)
		}
	}

	m := &Dense{n: n, data: make([]int, n*n)}
	for i, row := range rows {
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// Size returns the dimension n. No side effects.
// Complexity: O(1).
func (m *Dense) Size() int { return m.n }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap it with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*n + j.
	return row*m.n + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Set overwrites; accumulation is the multiplier's business, not the matrix's.
// Complexity: O(1).
func (m *Dense) Set(row, col, v int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer).
// Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// Equal reports whether m and o have the same size and cells.
// Two nil matrices are equal; nil and non-nil are not.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// RawRows copies the matrix out as [][]int (row-major).
// Complexity: O(n²).
func (m *Dense) RawRows() [][]int {
	out := make([][]int, m.n)
	for i := range out {
		out[i] = append([]int(nil), m.data[i*m.n:(i+1)*m.n]...)
	}

	return out
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Behavior highlights:
//   - Not for hot paths; intended for logs and debugging.
//
// Complexity:
//   - Time O(n²), Space O(n²) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.n; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.n
		for j = 0; j < m.n; j++ {
			b.WriteString(strconv.Itoa(m.data[base+j]))
			if j+1 < m.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(n²), no allocations.
func (m *Dense) Do(f func(i, j, v int) bool) {
	var i, j, base int
	for i = 0; i < m.n; i++ {
		base = i * m.n
		for j = 0; j < m.n; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// View creates a no-copy square window of size n with top-left corner (r0, c0).
// MAIN DESCRIPTION:
//   - Lightweight submatrix referencing the base buffer (shared storage).
//
// Implementation:
//   - Stage 1: validate the window fits inside the matrix.
//   - Stage 2: return a MatrixView value carrying the offsets.
//
// Behavior highlights:
//   - Writes via the view reflect in m.
//
// Errors:
//   - ErrOutOfRange when the window leaves the matrix or n<=0.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) View(r0, c0, n int) (MatrixView, error) {
	if n <= 0 || r0 < 0 || c0 < 0 || r0+n > m.n || c0+n > m.n {
		return MatrixView{}, fmt.Errorf("Dense.%s(%d,%d,%d): %w", ctxView, r0, c0, n, ErrOutOfRange)
	}

	return MatrixView{base: m, r0: r0, c0: c0, n: n}, nil
}

// Full returns the view covering the whole matrix.
// Complexity: O(1).
func (m *Dense) Full() MatrixView {
	return MatrixView{base: m, n: m.n}
}
