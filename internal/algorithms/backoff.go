package algorithms

import (
	"math"
	"sync"
	"time"

	"github.com/utkarsh5026/fanout/internal/random"
)

const (
	maxShift = 62 // 1<<63 overflows int64
)

// exponentialBackoff waits initialDelay * 2^attempt, capped at maxDelay.
type exponentialBackoff struct {
	initialDelay time.Duration
	maxDelay     time.Duration
}

func newExponentialBackoff(initialDelay, maxDelay time.Duration) *exponentialBackoff {
	return &exponentialBackoff{
		initialDelay: initialDelay,
		maxDelay:     maxDelay,
	}
}

func (eb *exponentialBackoff) NextDelay(attemptNumber int, _ error) time.Duration {
	return calcExponentialDelay(attemptNumber, eb.initialDelay, eb.maxDelay)
}

func (eb *exponentialBackoff) Reset() {}

// jitteredBackoff multiplies the exponential delay by a factor drawn from
// [1-jitterFactor, 1+jitterFactor] so that tasks failing together do not
// retry together.
type jitteredBackoff struct {
	initialDelay, maxDelay time.Duration
	jitterFactor           float64
	src                    *random.Source
}

func newJitteredBackoff(initialDelay, maxDelay time.Duration, jitterFactor float64, src *random.Source) *jitteredBackoff {
	return &jitteredBackoff{
		initialDelay: initialDelay,
		maxDelay:     maxDelay,
		jitterFactor: clamp(jitterFactor, 0, 1),
		src:          src,
	}
}

func (jb *jitteredBackoff) NextDelay(attemptNumber int, _ error) time.Duration {
	if attemptNumber < 0 {
		return 0
	}

	base := calcExponentialDelay(attemptNumber, jb.initialDelay, jb.maxDelay)
	multiplier := 1.0 + (jb.src.Float64()*2-1)*jb.jitterFactor

	return clamp(time.Duration(float64(base)*multiplier), 0, jb.maxDelay)
}

func (jb *jitteredBackoff) Reset() {}

// decorrelatedJitterBackoff picks each delay from [initialDelay, prev*3),
// capped at maxDelay. The next delay depends on the previous one rather than
// on the attempt number.
type decorrelatedJitterBackoff struct {
	initialDelay time.Duration
	maxDelay     time.Duration
	src          *random.Source

	mu        sync.Mutex
	prevDelay time.Duration
}

func newDecorrelatedJitterBackoff(initialDelay, maxDelay time.Duration, src *random.Source) *decorrelatedJitterBackoff {
	return &decorrelatedJitterBackoff{
		initialDelay: initialDelay,
		maxDelay:     maxDelay,
		prevDelay:    initialDelay,
		src:          src,
	}
}

func (djb *decorrelatedJitterBackoff) NextDelay(attemptNumber int, _ error) time.Duration {
	djb.mu.Lock()
	defer djb.mu.Unlock()

	if attemptNumber <= 0 {
		djb.prevDelay = djb.initialDelay
		return djb.initialDelay
	}

	upper := min(time.Duration(float64(djb.prevDelay)*3), djb.maxDelay)
	span := upper - djb.initialDelay
	if span <= 0 {
		djb.prevDelay = djb.initialDelay
		return djb.initialDelay
	}

	delay := djb.initialDelay + time.Duration(djb.src.Uniform(float64(span)))
	djb.prevDelay = delay
	return delay
}

func (djb *decorrelatedJitterBackoff) Reset() {
	djb.mu.Lock()
	defer djb.mu.Unlock()
	djb.prevDelay = djb.initialDelay
}

func calcExponentialDelay(attemptNumber int, initialDelay, maxDelay time.Duration) time.Duration {
	if attemptNumber < 0 {
		return 0
	}

	if attemptNumber > maxShift || initialDelay > math.MaxInt64>>uint(attemptNumber) {
		return maxDelay
	}

	delay := time.Duration(int64(1)<<uint(attemptNumber)) * initialDelay
	if delay > maxDelay {
		return maxDelay
	}

	return delay
}

func clamp[T ~int64 | ~float64](v, lo, hi T) T {
	return max(lo, min(v, hi))
}
