package subarray

import "errors"

var (
	// ErrEmptySequence indicates that the input sequence has no elements.
	ErrEmptySequence = errors.New("subarray: sequence must be non-empty")

	// ErrInvalidRange indicates inconsistent bounds (low > high, or mid outside [low, high)).
	ErrInvalidRange = errors.New("subarray: invalid index range")

	// ErrIndexOutOfRange indicates a bound that falls outside the sequence.
	ErrIndexOutOfRange = errors.New("subarray: index out of range")
)
