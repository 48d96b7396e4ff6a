package pool

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWorkerPool_RateLimit_BasicThroughput(t *testing.T) {
	// 15 tasks at 20/s with burst 5: 5 immediately, 10 more over ~500ms
	pool := NewWorkerPool[int, int](
		WithWorkerCount(10),
		WithRateLimit(20, 5),
	)

	tasks := make([]int, 15)
	start := time.Now()
	results, err := pool.Process(context.Background(), tasks, func(ctx context.Context, task int) (int, error) {
		return task, nil
	})
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(tasks) {
		t.Fatalf("expected %d results, got %d", len(tasks), len(results))
	}
	if elapsed < 400*time.Millisecond {
		t.Errorf("expected at least ~500ms, got %v (rate limiting not applied)", elapsed)
	}
	if elapsed > 2*time.Second {
		t.Errorf("took too long: %v", elapsed)
	}
}

func TestWorkerPool_RateLimit_BurstBehavior(t *testing.T) {
	pool := NewWorkerPool[int, int](
		WithWorkerCount(10),
		WithRateLimit(1, 10),
	)

	start := time.Now()
	_, err := pool.Process(context.Background(), make([]int, 10), func(ctx context.Context, task int) (int, error) {
		return task, nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 200*time.Millisecond {
		t.Errorf("burst should let all tasks start immediately, took %v", elapsed)
	}
}

func TestWorkerPool_RateLimit_WithContextCancellation(t *testing.T) {
	pool := NewWorkerPool[int, int](
		WithWorkerCount(2),
		WithRateLimit(1, 1),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := pool.Process(ctx, make([]int, 10), func(ctx context.Context, task int) (int, error) {
		return task, nil
	})

	// the limiter refuses waits that would overrun the deadline, so the
	// error is either the deadline itself or the limiter's own
	if err == nil {
		t.Fatal("expected an error once the deadline passes")
	}
	if errors.Is(err, context.Canceled) {
		t.Errorf("unexpected cancellation error: %v", err)
	}
}

func TestWorkerPool_RateLimit_InvalidParameters(t *testing.T) {
	tests := []struct {
		name  string
		rate  float64
		burst int
	}{
		{"zero rate", 0, 5},
		{"negative rate", -1, 5},
		{"zero burst", 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewWorkerPool[int, int](WithRateLimit(tt.rate, tt.burst))
			if pool.conf.rateLimiter != nil {
				t.Error("expected invalid parameters to leave the pool unthrottled")
			}
		})
	}
}
