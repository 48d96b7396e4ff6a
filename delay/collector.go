package delay

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/utkarsh5026/fanout/pool"
)

// WaitN runs n delay tasks concurrently and returns their delays in
// completion order. It returns once every task has finished.
//
// The tasks run on a worker pool with one worker per task. n == 0 yields an
// empty slice. If ctx ends early the delays collected so far are returned
// together with the context error.
func WaitN(ctx context.Context, n int, maxDelay float64, opts ...Option) ([]float64, error) {
	if err := validate(n, maxDelay); err != nil {
		return nil, err
	}
	if n == 0 {
		return []float64{}, nil
	}

	cfg := newConfig(opts)
	runID := uuid.New()
	log := cfg.logger.With("run_id", runID, "collector", "pool")

	poolOpts := []pool.WorkerPoolOption{
		pool.WithWorkerCount(n),
		pool.WithLogger(log),
	}
	if cfg.limiter != nil {
		poolOpts = append(poolOpts, pool.WithRateLimit(cfg.rateLimit, cfg.rateBurst))
	}
	if cfg.onComplete != nil {
		poolOpts = append(poolOpts, pool.WithOnTaskEnd(func(_ float64, d float64, err error) {
			if err == nil {
				cfg.onComplete(d)
			}
		}))
	}
	wp := pool.NewWorkerPool[float64, float64](poolOpts...)

	tasks := make([]float64, n)
	for i := range tasks {
		tasks[i] = maxDelay
	}

	log.Info("fan-out started", "tasks", n, "max_delay", maxDelay)
	start := time.Now()

	completed, err := wp.ProcessCompleted(ctx, tasks, func(ctx context.Context, upper float64) (float64, error) {
		// the pool applies the rate limit before each task
		return cfg.sleepRandom(ctx, upper)
	})

	delays := make([]float64, 0, len(completed))
	for _, r := range completed {
		if r.OK() {
			delays = append(delays, r.Value)
		}
	}

	if err != nil {
		log.Warn("fan-out stopped", "completed", len(delays), "error", err)
		return delays, err
	}

	log.Info("fan-out finished", "tasks", n, "elapsed", time.Since(start))
	return delays, nil
}

// TaskWaitN behaves like WaitN but starts every task with TaskWaitRandom
// and gathers the futures with pool.AsCompleted.
func TaskWaitN(ctx context.Context, n int, maxDelay float64, opts ...Option) ([]float64, error) {
	if err := validate(n, maxDelay); err != nil {
		return nil, err
	}
	if n == 0 {
		return []float64{}, nil
	}

	cfg := newConfig(opts)
	runID := uuid.New()
	log := cfg.logger.With("run_id", runID, "collector", "futures")

	futures := make([]*Future, n)
	for i := range futures {
		futures[i] = cfg.spawn(ctx, maxDelay)
	}

	log.Info("fan-out started", "tasks", n, "max_delay", maxDelay)
	start := time.Now()

	delays := make([]float64, 0, n)
	var firstErr error
	for r := range pool.AsCompleted(ctx, futures...) {
		if r.Error != nil {
			if firstErr == nil {
				firstErr = r.Error
			}
			continue
		}
		delays = append(delays, r.Value)
		if cfg.onComplete != nil {
			cfg.onComplete(r.Value)
		}
	}

	if firstErr != nil {
		log.Warn("fan-out stopped", "completed", len(delays), "error", firstErr)
		return delays, firstErr
	}

	log.Info("fan-out finished", "tasks", n, "elapsed", time.Since(start))
	return delays, nil
}

func validate(n int, maxDelay float64) error {
	if n < 0 {
		return ErrNegativeCount
	}
	return validateMaxDelay(maxDelay)
}
