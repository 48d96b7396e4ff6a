package algorithms

import (
	"time"

	"github.com/utkarsh5026/fanout/internal/random"
)

// BackoffType selects the retry backoff algorithm.
type BackoffType int

const (
	// BackoffExponential doubles the delay on every retry (default).
	BackoffExponential BackoffType = iota
	// BackoffJittered spreads exponential delays by ±jitterFactor.
	BackoffJittered
	// BackoffDecorrelated uses decorrelated jitter: random(initial, prev*3).
	BackoffDecorrelated
)

// String implements fmt.Stringer.
func (b BackoffType) String() string {
	switch b {
	case BackoffJittered:
		return "jittered"
	case BackoffDecorrelated:
		return "decorrelated"
	default:
		return "exponential"
	}
}

// NewBackoffStrategy builds the strategy for backoffType. A nil src uses the
// process-wide random generator.
func NewBackoffStrategy(
	backoffType BackoffType,
	initialDelay, maxDelay time.Duration,
	jitterFactor float64,
	src *random.Source,
) BackoffStrategy {
	if src == nil {
		src = random.New()
	}

	switch backoffType {
	case BackoffJittered:
		return newJitteredBackoff(initialDelay, maxDelay, jitterFactor, src)

	case BackoffDecorrelated:
		return newDecorrelatedJitterBackoff(initialDelay, maxDelay, src)

	default:
		return newExponentialBackoff(initialDelay, maxDelay)
	}
}
