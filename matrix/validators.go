// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/size/power-of-two/aliasing checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → SameSize → PowerOfTwo → NoAlias.

package matrix

import (
	"fmt"
	"math/bits"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// IsPowerOfTwo reports whether n is a positive power of two (1, 2, 4, ...).
func IsPowerOfTwo(n int) bool {
	return n > 0 && bits.OnesCount(uint(n)) == 1
}

// ValidateNotNil – Ensures every matrix reference is non-nil.
//
// Returns ErrNilMatrix on the first nil argument.
// Complexity: O(k) for k arguments.
func ValidateNotNil(ms ...*Dense) error {
	for i, m := range ms {
		if m == nil {
			return validatorErrorf(fmt.Sprintf("ValidateNotNil: arg %d", i), ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSameSize – Ensures a and b have equal dimension.
//
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameSize(a, b *Dense) error {
	if a.n != b.n {
		return validatorErrorf(fmt.Sprintf("ValidateSameSize(%d,%d)", a.n, b.n), ErrDimensionMismatch)
	}

	return nil
}

// ValidatePowerOfTwo ensures n can be halved down to 1 by the quadrant recursion.
func ValidatePowerOfTwo(n int) error {
	if !IsPowerOfTwo(n) {
		return validatorErrorf(fmt.Sprintf("ValidatePowerOfTwo(%d)", n), ErrNotPowerOfTwo)
	}

	return nil
}

// validateViews runs the composite check shared by the view-level kernels:
// non-zero views, equal sizes, and a destination that overlaps no source.
func validateViews(dst MatrixView, srcs ...MatrixView) error {
	if dst.base == nil {
		return validatorErrorf("validateViews: dst", ErrNilMatrix)
	}
	for i, s := range srcs {
		if s.base == nil {
			return validatorErrorf(fmt.Sprintf("validateViews: src %d", i), ErrNilMatrix)
		}
		if s.n != dst.n {
			return validatorErrorf(fmt.Sprintf("validateViews: src %d size %d, dst %d", i, s.n, dst.n), ErrDimensionMismatch)
		}
	}

	return nil
}
