// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All exported functions return these sentinels (possibly wrapped with call
// context via %w); tests match them with errors.Is. User-triggered conditions
// never panic.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> dimension mismatch -> power of two -> aliasing.

var (
	// ErrInvalidDimensions indicates that a requested size is non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals row literals that do not form a square grid.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates operands of different sizes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotPowerOfTwo indicates a size the quadrant recursion cannot halve down to 1.
	ErrNotPowerOfTwo = errors.New("matrix: size is not a power of two")

	// ErrNotPartitionable indicates a view whose size is not even (including size 1).
	ErrNotPartitionable = errors.New("matrix: view cannot be split into quadrants")

	// ErrNilMatrix indicates that a nil *Dense or a zero View was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrAliasedOperands indicates a destination that overlaps one of its sources.
	ErrAliasedOperands = errors.New("matrix: destination overlaps an operand")
)
