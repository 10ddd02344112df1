package subarray_test

import (
	"testing"

	randomdata "github.com/Pallinder/go-randomdata"
	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/divconq/subarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFindMaxSubarray_Table covers the canonical inputs and the tie-break order.
func TestFindMaxSubarray_Table(t *testing.T) {
	tests := []struct {
		name string
		seq  []int
		want subarray.Result
	}{
		{"single", []int{5}, subarray.Result{Low: 0, High: 0, Sum: 5}},
		{"textbook", []int{-2, 1, -3, 4, -1, 2, 1, -5, 4}, subarray.Result{Low: 3, High: 6, Sum: 6}},
		{"all negative", []int{-3, -5, -1}, subarray.Result{Low: 2, High: 2, Sum: -1}},
		{"all positive", []int{1, 2, 3, 4}, subarray.Result{Low: 0, High: 3, Sum: 10}},
		{"last element", []int{-1, -1, -1, 7}, subarray.Result{Low: 3, High: 3, Sum: 7}},
		{"zeros", []int{0, 0, 0}, subarray.Result{Low: 0, High: 0, Sum: 0}},
		// left, right and crossing all sum to 1; left wins.
		{"tie prefers left", []int{1, -1, 1}, subarray.Result{Low: 0, High: 0, Sum: 1}},
		// right half and crossing range both sum to 3; right wins.
		{"tie prefers right over crossing", []int{-5, 0, 3}, subarray.Result{Low: 2, High: 2, Sum: 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := subarray.FindMaxSubarray(tc.seq, 0, len(tc.seq)-1)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("FindMaxSubarray mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestFindMaxSubarray_SubRange verifies that the search never leaves [low, high].
func TestFindMaxSubarray_SubRange(t *testing.T) {
	seq := []int{100, -1, 2, -1, 3, -50, 100}

	got, err := subarray.FindMaxSubarray(seq, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, subarray.Result{Low: 2, High: 4, Sum: 4}, got)
}

// TestFindMaxSubarray_Errors checks the precondition sentinels.
func TestFindMaxSubarray_Errors(t *testing.T) {
	_, err := subarray.FindMaxSubarray(nil, 0, 0)
	assert.ErrorIs(t, err, subarray.ErrEmptySequence, "nil sequence must be rejected")

	_, err = subarray.FindMaxSubarray([]int{1, 2}, 1, 0)
	assert.ErrorIs(t, err, subarray.ErrInvalidRange, "low > high must be rejected")

	_, err = subarray.FindMaxSubarray([]int{1, 2}, -1, 1)
	assert.ErrorIs(t, err, subarray.ErrIndexOutOfRange, "negative low must be rejected")

	_, err = subarray.FindMaxSubarray([]int{1, 2}, 0, 2)
	assert.ErrorIs(t, err, subarray.ErrIndexOutOfRange, "high == len must be rejected")

	_, err = subarray.MaxSubarray([]int{})
	assert.ErrorIs(t, err, subarray.ErrEmptySequence)
}

// TestFindMaxCrossingSubarray checks the merge step in isolation, including
// that the right scan reaches the last element.
func TestFindMaxCrossingSubarray(t *testing.T) {
	seq := []int{-2, 1, -3, 4, -1, 2, 1, -5, 4}

	got, err := subarray.FindMaxCrossingSubarray(seq, 0, 4, 8)
	require.NoError(t, err)
	assert.Equal(t, subarray.Result{Low: 3, High: 6, Sum: 6}, got)

	tail := []int{-1, -1, 9}
	got, err = subarray.FindMaxCrossingSubarray(tail, 0, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, subarray.Result{Low: 1, High: 2, Sum: 8}, got, "right scan must include high")

	_, err = subarray.FindMaxCrossingSubarray(seq, 0, 8, 8)
	assert.ErrorIs(t, err, subarray.ErrInvalidRange, "mid must be < high")

	_, err = subarray.FindMaxCrossingSubarray(seq, 3, 2, 8)
	assert.ErrorIs(t, err, subarray.ErrInvalidRange, "mid must be >= low")
}

// TestFindMaxCrossingSubarray_ExtremeValues checks that the sentinel baseline
// is beaten by very negative elements without wrapping.
func TestFindMaxCrossingSubarray_ExtremeValues(t *testing.T) {
	big := subarray.HalfMinInt / 4
	seq := []int{big, big}

	got, err := subarray.FindMaxCrossingSubarray(seq, 0, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, subarray.Result{Low: 0, High: 1, Sum: 2 * big}, got)
}

// TestMaxSubarray_BruteForce cross-checks the recursion against the O(n²)
// enumeration of all ranges on random sequences.
func TestMaxSubarray_BruteForce(t *testing.T) {
	for round := 0; round < 200; round++ {
		n := randomdata.Number(1, 40)
		seq := make([]int, n)
		for i := range seq {
			seq[i] = randomdata.Number(-100, 101)
		}

		got, err := subarray.MaxSubarray(seq)
		require.NoError(t, err, "seq=%v", seq)

		require.LessOrEqual(t, got.Low, got.High, "seq=%v", seq)
		require.GreaterOrEqual(t, got.Low, 0)
		require.Less(t, got.High, n)
		require.Equal(t, rangeSum(seq, got.Low, got.High), got.Sum, "seq=%v res=%v", seq, got)
		require.Equal(t, bruteForceMax(seq), got.Sum, "seq=%v res=%v", seq, got)
	}
}

// TestResult_LenAndString covers the small Result helpers.
func TestResult_LenAndString(t *testing.T) {
	r := subarray.Result{Low: 3, High: 6, Sum: 6}
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, "[3..6]=6", r.String())
}

// bruteForceMax enumerates every non-empty contiguous range.
func bruteForceMax(seq []int) int {
	best := seq[0]
	for i := range seq {
		sum := 0
		for j := i; j < len(seq); j++ {
			sum += seq[j]
			if sum > best {
				best = sum
			}
		}
	}

	return best
}

func rangeSum(seq []int, low, high int) int {
	sum := 0
	for i := low; i <= high; i++ {
		sum += seq[i]
	}

	return sum
}
