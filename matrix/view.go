// SPDX-License-Identifier: MIT

// Package matrix - MatrixView: non-owning square windows & quadrant partitioning.
//
// Purpose:
//   - Address a square block of a Dense by (r0, c0, n) without copying.
//   - Split a view into its four quadrants with offsets composed additively,
//     so nested views always point straight into the base buffer.
//
// Lifetime:
//   - A MatrixView borrows its Dense; it is a value type, cheap to pass and
//     meant to be discarded after the call that produced it.

package matrix

import "fmt"

// QuadrantID names one of the four blocks produced by Partition.
type QuadrantID int

const (
	// TopLeft is the block at offset (0, 0).
	TopLeft QuadrantID = iota
	// TopRight is the block at offset (0, n/2).
	TopRight
	// BottomLeft is the block at offset (n/2, 0).
	BottomLeft
	// BottomRight is the block at offset (n/2, n/2).
	BottomRight
)

// String returns the quadrant name in textbook notation.
func (q QuadrantID) String() string {
	switch q {
	case TopLeft:
		return "11"
	case TopRight:
		return "12"
	case BottomLeft:
		return "21"
	case BottomRight:
		return "22"
	default:
		return fmt.Sprintf("QuadrantID(%d)", int(q))
	}
}

// MatrixView is a non-owning square window into a Dense (shared storage).
// The zero MatrixView has no base; its accessors return ErrNilMatrix.
type MatrixView struct {
	base *Dense // underlying storage owner
	r0   int    // top-left row offset in base
	c0   int    // top-left col offset in base
	n    int    // view dimension
}

// Size returns the dimension of the view.
// Complexity: O(1).
func (v MatrixView) Size() int { return v.n }

// Offset returns the top-left corner of the view in base coordinates.
// Complexity: O(1).
func (v MatrixView) Offset() (row, col int) { return v.r0, v.c0 }

// Base returns the Dense the view borrows from.
func (v MatrixView) Base() *Dense { return v.base }

// At reads element (i,j) of the view.
// MAIN DESCRIPTION:
//   - Safe read within the view bounds; translates to base coordinates.
//
// Errors:
//   - ErrNilMatrix for a zero view, ErrOutOfRange outside [0,n)×[0,n).
//
// Complexity:
//   - Time O(1), Space O(1).
func (v MatrixView) At(i, j int) (int, error) {
	if v.base == nil {
		return 0, fmt.Errorf("MatrixView.At(%d,%d): %w", i, j, ErrNilMatrix)
	}
	if i < 0 || i >= v.n || j < 0 || j >= v.n {
		return 0, fmt.Errorf("MatrixView.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.at(i, j), nil
}

// Set writes element (i,j) of the view through to the base buffer.
// Complexity: O(1).
func (v MatrixView) Set(i, j, val int) error {
	if v.base == nil {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrNilMatrix)
	}
	if i < 0 || i >= v.n || j < 0 || j >= v.n {
		return fmt.Errorf("MatrixView.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	v.base.data[v.offset(i, j)] = val // write through

	return nil
}

// Partition splits the view into its four quadrants (11, 12, 21, 22).
// MAIN DESCRIPTION:
//   - Return four views of size n/2 at offsets (0,0), (0,n/2), (n/2,0), (n/2,n/2)
//     relative to v's own offset.
//
// Behavior highlights:
//   - No copies; each quadrant writes through to the same base buffer.
//   - The four quadrants are pairwise disjoint and cover v exactly.
//
// Errors:
//   - ErrNilMatrix for a zero view.
//   - ErrNotPartitionable when n is odd (this includes n == 1).
//
// Complexity:
//   - Time O(1), Space O(1).
func (v MatrixView) Partition() (q11, q12, q21, q22 MatrixView, err error) {
	if v.base == nil {
		return q11, q12, q21, q22, fmt.Errorf("MatrixView.Partition: %w", ErrNilMatrix)
	}
	if v.n%2 != 0 {
		return q11, q12, q21, q22, fmt.Errorf("MatrixView.Partition(n=%d): %w", v.n, ErrNotPartitionable)
	}
	q11, q12, q21, q22 = v.split()

	return q11, q12, q21, q22, nil
}

// Quadrant returns a single quadrant of the view.
func (v MatrixView) Quadrant(q QuadrantID) (MatrixView, error) {
	q11, q12, q21, q22, err := v.Partition()
	if err != nil {
		return MatrixView{}, err
	}
	switch q {
	case TopLeft:
		return q11, nil
	case TopRight:
		return q12, nil
	case BottomLeft:
		return q21, nil
	case BottomRight:
		return q22, nil
	default:
		return MatrixView{}, fmt.Errorf("MatrixView.Quadrant(%v): %w", q, ErrOutOfRange)
	}
}

// Overlaps reports whether v and o share at least one cell of the same base.
func (v MatrixView) Overlaps(o MatrixView) bool {
	if v.base == nil || v.base != o.base {
		return false
	}

	return v.r0 < o.r0+o.n && o.r0 < v.r0+v.n &&
		v.c0 < o.c0+o.n && o.c0 < v.c0+v.n
}

// Materialize copies the view into a new, independent Dense.
// Complexity: O(n²).
func (v MatrixView) Materialize() (*Dense, error) {
	if v.base == nil {
		return nil, fmt.Errorf("MatrixView.Materialize: %w", ErrNilMatrix)
	}
	res := &Dense{n: v.n, data: make([]int, v.n*v.n)}
	for i := 0; i < v.n; i++ {
		src := v.offset(i, 0)
		copy(res.data[i*v.n:(i+1)*v.n], v.base.data[src:src+v.n])
	}

	return res, nil
}

// ---------- unchecked helpers for the recursion ----------

// offset maps view coordinates to the base buffer index.
func (v MatrixView) offset(i, j int) int {
	return (v.r0+i)*v.base.n + (v.c0 + j)
}

// at is the unchecked read.
func (v MatrixView) at(i, j int) int { return v.base.data[v.offset(i, j)] }

// add is the unchecked accumulate: cell(i,j) += val.
func (v MatrixView) add(i, j, val int) { v.base.data[v.offset(i, j)] += val }

// split returns the four quadrants without validation; n must be even.
func (v MatrixView) split() (q11, q12, q21, q22 MatrixView) {
	h := v.n / 2
	q11 = MatrixView{base: v.base, r0: v.r0, c0: v.c0, n: h}
	q12 = MatrixView{base: v.base, r0: v.r0, c0: v.c0 + h, n: h}
	q21 = MatrixView{base: v.base, r0: v.r0 + h, c0: v.c0, n: h}
	q22 = MatrixView{base: v.base, r0: v.r0 + h, c0: v.c0 + h, n: h}

	return q11, q12, q21, q22
}
