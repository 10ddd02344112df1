package subarray

import (
	"fmt"
	"math"
)

// HalfMinInt is the "nothing seen yet" baseline of the crossing scan.
// Half of math.MinInt keeps leftSum+rightSum from wrapping when one side
// never improves on the baseline.
const HalfMinInt = math.MinInt / 2

// Result identifies a contiguous range [Low, High] (inclusive) and its sum.
//
// Invariants:
//   - Low <= High, both inside the searched sequence.
//   - Sum equals seq[Low] + ... + seq[High].
type Result struct {
	Low  int // first index of the range
	High int // last index of the range (inclusive)
	Sum  int // total of seq[Low..High]
}

// Len returns the number of elements covered by r.
func (r Result) Len() int { return r.High - r.Low + 1 }

// String renders r as "[low..high]=sum".
func (r Result) String() string {
	return fmt.Sprintf("[%d..%d]=%d", r.Low, r.High, r.Sum)
}
