// SPDX-License-Identifier: MIT

// Package matrix - recursive square-matrix multiplication over quadrant views.
//
// Purpose:
//   - C += A×B by the textbook divide-and-conquer scheme: split A, B and C into
//     quadrants and issue eight half-size products into the C quadrants.
//   - Keep every intermediate result in C itself: the base case accumulates,
//     so two products into one C quadrant add up without temporaries.
//
// Complexity quicksheet:
//   - MultiplyInto: Θ(N³) time, O(log N) stack, zero allocations.
//   - NaiveMul: Θ(N³) time, one N×N allocation.

package matrix

import "fmt"

const (
	opMultiplyInto      = "MultiplyInto"
	opMultiplyViewsInto = "MultiplyViewsInto"
	opMul               = "Mul"
	opNaiveMul          = "NaiveMul"
)

// matrixErrorf wraps an error with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MultiplyInto accumulates the product a×b into c (c += a×b).
// MAIN DESCRIPTION:
//   - Square-matrix-multiply-recursive: partition a, b, c into quadrants and
//     recurse until the blocks are 1×1.
//
// Implementation:
//   - Stage 1: validate non-nil, equal sizes, size a power of two, c distinct from a and b.
//   - Stage 2: run the unchecked recursion on the full views.
//
// Behavior highlights:
//   - Additive: c keeps its prior contents; pass a zero c for a plain product.
//   - a and b may be the same matrix (squaring); c must not be a or b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNotPowerOfTwo, ErrAliasedOperands.
//
// Complexity:
//   - Time Θ(N³), Space O(log N) stack.
func MultiplyInto(a, b, c *Dense) error {
	if err := ValidateNotNil(a, b, c); err != nil {
		return matrixErrorf(opMultiplyInto, err)
	}
	if err := ValidateSameSize(a, b); err != nil {
		return matrixErrorf(opMultiplyInto, err)
	}
	if err := ValidateSameSize(a, c); err != nil {
		return matrixErrorf(opMultiplyInto, err)
	}
	if err := ValidatePowerOfTwo(a.n); err != nil {
		return matrixErrorf(opMultiplyInto, err)
	}
	if c == a || c == b {
		return matrixErrorf(opMultiplyInto, ErrAliasedOperands)
	}
	multiplyRecursive(a.Full(), b.Full(), c.Full())

	return nil
}

// MultiplyViewsInto is MultiplyInto over arbitrary views, e.g. one quadrant of
// a larger matrix multiplied into another. The destination view must not
// overlap either source view.
func MultiplyViewsInto(a, b, c MatrixView) error {
	if err := validateViews(c, a, b); err != nil {
		return matrixErrorf(opMultiplyViewsInto, err)
	}
	if err := ValidatePowerOfTwo(c.n); err != nil {
		return matrixErrorf(opMultiplyViewsInto, err)
	}
	if c.Overlaps(a) || c.Overlaps(b) {
		return matrixErrorf(opMultiplyViewsInto, ErrAliasedOperands)
	}
	multiplyRecursive(a, b, c)

	return nil
}

// Mul returns the plain product a×b in a freshly allocated matrix.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	c, err := NewDense(a.n)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err = MultiplyInto(a, b, c); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return c, nil
}

// multiplyRecursive is the unchecked kernel. All three views have the same
// power-of-two size and c overlaps neither a nor b.
//
//	C11 += A11·B11 + A12·B21
//	C12 += A11·B12 + A12·B22
//	C21 += A21·B11 + A22·B21
//	C22 += A21·B12 + A22·B22
func multiplyRecursive(a, b, c MatrixView) {
	if a.n == 1 {
		c.add(0, 0, a.at(0, 0)*b.at(0, 0))
		return
	}

	a11, a12, a21, a22 := a.split()
	b11, b12, b21, b22 := b.split()
	c11, c12, c21, c22 := c.split()

	multiplyRecursive(a11, b11, c11)
	multiplyRecursive(a12, b21, c11)

	multiplyRecursive(a11, b12, c12)
	multiplyRecursive(a12, b22, c12)

	multiplyRecursive(a21, b11, c21)
	multiplyRecursive(a22, b21, c21)

	multiplyRecursive(a21, b12, c22)
	multiplyRecursive(a22, b22, c22)
}

// NaiveMul returns a×b using the i-k-j triple loop over the flat buffers.
// MAIN DESCRIPTION:
//   - Reference kernel; any equal size is accepted (no power-of-two rule).
//
// Implementation:
//   - Stage 1: validate non-nil and equal sizes; allocate result.
//   - Stage 2: for each row i and each k, stream row k of b into row i of the result.
//
// Complexity:
//   - Time Θ(N³), Space O(N²).
func NaiveMul(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a, b); err != nil {
		return nil, matrixErrorf(opNaiveMul, err)
	}
	if err := ValidateSameSize(a, b); err != nil {
		return nil, matrixErrorf(opNaiveMul, err)
	}
	n := a.n
	res, err := NewDense(n)
	if err != nil {
		return nil, matrixErrorf(opNaiveMul, err)
	}

	var i, j, k, av int
	var rowA, rowB int
	for i = 0; i < n; i++ {
		rowA = i * n
		for k = 0; k < n; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue // skip zero
			}
			rowB = k * n
			for j = 0; j < n; j++ {
				res.data[rowA+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}
