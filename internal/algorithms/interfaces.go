package algorithms

import "time"

// BackoffStrategy computes the pause before a retry.
//
// It is exported so the pool package can hold one, but every implementation
// stays internal.
type BackoffStrategy interface {
	// NextDelay returns the wait before retry number attemptNumber
	// (0 = first retry after the initial failure).
	NextDelay(attemptNumber int, lastError error) time.Duration

	// Reset clears per-task state. Called before each new task.
	Reset()
}
