// Package matrix offers square integer matrices with no-copy quadrant views
// and the recursive divide-and-conquer product built on them.
//
// The matrix package provides:
//
//   - Dense: an N×N integer matrix backed by one flat row-major buffer.
//   - View: a non-owning (offset, size) window into a Dense; writes through a
//     view land in the owner's buffer.
//   - MultiplyInto: C += A×B by splitting every operand into four quadrant
//     views and recursing eight times (N must be a power of two).
//   - NaiveMul: the i-k-j triple loop, kept as a reference kernel.
//
// Quadrant views at the same recursion level never overlap, so the recursion
// needs no synchronization and no temporaries.
//
// See the examples in this package for usage patterns.
package matrix
