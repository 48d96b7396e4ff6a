package delay

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/utkarsh5026/fanout/pool"
)

// Future is the handle returned by TaskWaitRandom, keyed by task ID.
type Future = pool.Future[float64, uuid.UUID]

// WaitRandom samples a delay uniformly from [0, maxDelay), sleeps for that
// many units and returns it. It returns early with ctx.Err() if ctx ends.
func WaitRandom(ctx context.Context, maxDelay float64, opts ...Option) (float64, error) {
	return newConfig(opts).wait(ctx, maxDelay)
}

// TaskWaitRandom starts WaitRandom in its own goroutine and returns
// immediately with a Future keyed by a fresh task ID.
func TaskWaitRandom(ctx context.Context, maxDelay float64, opts ...Option) *Future {
	return newConfig(opts).spawn(ctx, maxDelay)
}

func (cfg *config) spawn(ctx context.Context, maxDelay float64) *Future {
	id := uuid.New()
	return pool.Go(id, func() (float64, error) {
		d, err := cfg.wait(ctx, maxDelay)
		if err == nil {
			cfg.logger.Debug("delay task finished", "task_id", id, "delay", d)
		}
		return d, err
	})
}

// wait throttles on the config's limiter, then sleeps a sampled delay.
func (cfg *config) wait(ctx context.Context, maxDelay float64) (float64, error) {
	if err := validateMaxDelay(maxDelay); err != nil {
		return 0, err
	}

	if cfg.limiter != nil {
		if err := cfg.limiter.Wait(ctx); err != nil {
			return 0, err
		}
	}
	return cfg.sleepRandom(ctx, maxDelay)
}

func (cfg *config) sleepRandom(ctx context.Context, maxDelay float64) (float64, error) {
	d := cfg.src.Uniform(maxDelay)
	if err := sleep(ctx, cfg.toDuration(d)); err != nil {
		return 0, err
	}
	return d, nil
}

func (cfg *config) toDuration(d float64) time.Duration {
	ns := d * float64(cfg.unit)
	if ns >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ns)
}

func validateMaxDelay(maxDelay float64) error {
	if maxDelay < 0 || math.IsNaN(maxDelay) || math.IsInf(maxDelay, 0) {
		return ErrInvalidMaxDelay
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
