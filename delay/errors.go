package delay

import "errors"

var (
	// ErrInvalidMaxDelay is returned when maxDelay is negative, NaN or infinite.
	ErrInvalidMaxDelay = errors.New("delay: max delay must be a finite, non-negative number")

	// ErrNegativeCount is returned when a collector is asked for n < 0 tasks.
	ErrNegativeCount = errors.New("delay: task count must not be negative")
)
