// Package subarray finds the maximum-sum contiguous run of an integer sequence
// by divide and conquer.
//
// 🚀 What is the maximum subarray problem?
//
//	Given a sequence of signed integers, pick the contiguous range whose
//	elements add up to the largest total. Typical uses:
//	  • best buy/sell window over daily price changes
//	  • strongest burst in a signal or a metric series
//	  • densest segment of a score track
//
// ✨ How it works:
//   - split [low, high] at mid = (low+high)/2
//   - solve the left half [low, mid] and the right half [mid+1, high] recursively
//   - find the best range crossing the midpoint with a linear two-way scan
//   - keep the best of the three (ties: left, then right, then crossing)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/divconq/subarray"
//
//	res, err := subarray.FindMaxSubarray(seq, 0, len(seq)-1)
//	if err != nil {
//	  // ErrEmptySequence, ErrInvalidRange or ErrIndexOutOfRange
//	}
//	fmt.Println(res.Low, res.High, res.Sum)
//
// All bounds are inclusive. The returned range is never empty: for an
// all-negative input the answer is the single least-negative element.
//
// Performance:
//
//   - Time:   O(n log n)
//   - Memory: O(log n) recursion depth, no allocations
package subarray
