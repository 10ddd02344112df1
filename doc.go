// Package divconq is a small home for two textbook divide-and-conquer
// algorithms over integers.
//
// 🚀 What is inside?
//
//	• subarray/ — maximum-sum contiguous run, O(n log n), with the explicit
//	  crossing-the-midpoint merge step
//	• matrix/   — square integer matrices, no-copy quadrant views and the
//	  recursive C += A×B product over them
//
// ✨ Why this shape?
//
//   - Pure Go, no hidden I/O: every call is a function of its arguments.
//   - Explicit preconditions: bad ranges and non-power-of-two sizes return
//     sentinel errors instead of reading out of bounds.
//   - Views, not copies: the matrix recursion allocates nothing.
//
// Quick ASCII example of one partition step:
//
//	┌────┬────┐
//	│ 11 │ 12 │
//	├────┼────┤
//	│ 21 │ 22 │
//	└────┴────┘
//
// The runnable demo lives in examples/.
//
//	go get github.com/katalvlaran/divconq
package divconq
