// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.

package matrix

// NewZeros returns a new zero-initialized n×n *Dense.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(n int) (*Dense, error) {
	return NewDense(n)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// ZerosLike returns a zero matrix with the size of m.
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.n)
}

// Product is a discoverability alias of Mul (recursive quadrant product).
func Product(a, b *Dense) (*Dense, error) { return Mul(a, b) }
