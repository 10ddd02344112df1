package subarray

import "fmt"

// FindMaxSubarray — divide-and-conquer maximum subarray
//
// Description:
//
//	Returns the contiguous range inside [low, high] (inclusive) whose
//	elements have the largest sum, together with that sum.
//
// Algorithm Outline:
//  1. If low == high, the only candidate is seq[low].
//  2. mid = (low+high)/2.
//  3. left  = FindMaxSubarray(seq, low, mid)
//     right = FindMaxSubarray(seq, mid+1, high)
//     cross = FindMaxCrossingSubarray(seq, low, mid, high)
//  4. Return the largest of left, right, cross. On equal sums the earlier
//     candidate in that order wins.
//
// Complexity:
//
//	Time   = O(n log n), n = high-low+1
//	Memory = O(log n) call stack
//
// Errors:
//   - ErrEmptySequence   — seq has no elements.
//   - ErrInvalidRange    — low > high.
//   - ErrIndexOutOfRange — low or high outside seq.
func FindMaxSubarray(seq []int, low, high int) (Result, error) {
	if err := validateRange(seq, low, high); err != nil {
		return Result{}, fmt.Errorf("FindMaxSubarray(%d,%d): %w", low, high, err)
	}

	return findMax(seq, low, high), nil
}

// MaxSubarray runs FindMaxSubarray over the whole of seq.
//
// Example:
//
//	res, _ := MaxSubarray([]int{-2, 1, -3, 4, -1, 2, 1, -5, 4})
//	// res == Result{Low: 3, High: 6, Sum: 6}
func MaxSubarray(seq []int) (Result, error) {
	if len(seq) == 0 {
		return Result{}, fmt.Errorf("MaxSubarray: %w", ErrEmptySequence)
	}

	return findMax(seq, 0, len(seq)-1), nil
}

// FindMaxCrossingSubarray returns the best range that contains both seq[mid]
// and seq[mid+1].
//
// The left scan walks mid, mid-1, ..., low and the right scan walks
// mid+1, ..., high; each keeps the prefix with the largest running sum.
// Both bounds are inclusive.
//
// Requires low <= mid < high with every index inside seq.
func FindMaxCrossingSubarray(seq []int, low, mid, high int) (Result, error) {
	if err := validateRange(seq, low, high); err != nil {
		return Result{}, fmt.Errorf("FindMaxCrossingSubarray(%d,%d,%d): %w", low, mid, high, err)
	}
	if mid < low || mid >= high {
		return Result{}, fmt.Errorf("FindMaxCrossingSubarray(%d,%d,%d): %w", low, mid, high, ErrInvalidRange)
	}

	return findMaxCrossing(seq, low, mid, high), nil
}

// findMax is the unchecked recursion behind FindMaxSubarray.
func findMax(seq []int, low, high int) Result {
	if low == high {
		return Result{Low: low, High: high, Sum: seq[low]}
	}

	mid := (low + high) / 2
	left := findMax(seq, low, mid)
	right := findMax(seq, mid+1, high)
	cross := findMaxCrossing(seq, low, mid, high)

	switch {
	case left.Sum >= right.Sum && left.Sum >= cross.Sum:
		return left
	case right.Sum >= left.Sum && right.Sum >= cross.Sum:
		return right
	default:
		return cross
	}
}

// findMaxCrossing is the unchecked linear merge step.
func findMaxCrossing(seq []int, low, mid, high int) Result {
	leftSum, leftBound := HalfMinInt, mid
	sum := 0
	for i := mid; i >= low; i-- {
		sum += seq[i]
		if sum > leftSum {
			leftSum = sum
			leftBound = i
		}
	}

	rightSum, rightBound := HalfMinInt, mid+1
	sum = 0
	for i := mid + 1; i <= high; i++ {
		sum += seq[i]
		if sum > rightSum {
			rightSum = sum
			rightBound = i
		}
	}

	return Result{Low: leftBound, High: rightBound, Sum: leftSum + rightSum}
}

// validateRange checks the inclusive bounds [low, high] against seq.
func validateRange(seq []int, low, high int) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}
	if low > high {
		return ErrInvalidRange
	}
	if low < 0 || high >= len(seq) {
		return ErrIndexOutOfRange
	}

	return nil
}
