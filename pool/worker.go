package pool

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/utkarsh5026/fanout/internal/algorithms"
	"github.com/utkarsh5026/fanout/internal/cpu"
)

// worker drains taskChan until it is closed or ctx is done, sending one
// Result per task. It returns the task's error when the pool is fail-fast.
func (wp *WorkerPool[T, R]) worker(
	ctx context.Context,
	workerID int,
	taskChan <-chan indexedTask[T],
	resultChan chan<- Result[R, int],
	processFn ProcessFunc[T, R],
) error {
	if wp.conf.pinWorkers {
		release, err := cpu.Pin(workerID)
		if err != nil {
			wp.conf.logger.Debug("cpu pinning unavailable", "worker", workerID, "error", err)
		}
		defer release()
	}

	for {
		select {
		case t, ok := <-taskChan:
			if !ok {
				return nil
			}

			result, err := wp.runTask(ctx, t.task, processFn)

			select {
			case resultChan <- Result[R, int]{Value: result, Error: err, Key: t.index}:
			case <-ctx.Done():
				return ctx.Err()
			}

			if err != nil && !wp.conf.continueOnErr {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// runTask applies the rate limit and hooks around processWithRecovery.
func (wp *WorkerPool[T, R]) runTask(ctx context.Context, task T, processFn ProcessFunc[T, R]) (R, error) {
	if wp.conf.rateLimiter != nil {
		if err := wp.conf.rateLimiter.Wait(ctx); err != nil {
			var zero R
			return zero, err
		}
	}

	if wp.conf.beforeTaskStart != nil {
		wp.conf.beforeTaskStart(task)
	}

	result, err := processWithRecovery(ctx, wp.conf, task, processFn)

	if wp.conf.onTaskEnd != nil {
		wp.conf.onTaskEnd(task, result, err)
	}
	return result, err
}

// processWithRecovery runs processFn with panic recovery and retries.
// A panic becomes an error carrying the stack trace and is not retried.
func processWithRecovery[T, R any](
	ctx context.Context,
	conf *processorConfig[T, R],
	task T,
	processFn ProcessFunc[T, R],
) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("%w: %v\nstack trace:\n%s", ErrTaskPanicked, r, buf[:n])
			conf.logger.Error("task panicked", "panic", r)
		}
	}()

	var backoff algorithms.BackoffStrategy
	if conf.maxAttempts > 1 && conf.retryBackoff {
		backoff = conf.newBackoff()
	}

	for attempt := range conf.maxAttempts {
		if attempt > 0 && backoff != nil {
			delay := backoff.NextDelay(attempt-1, err)
			if waitErr := sleepCtx(ctx, delay); waitErr != nil {
				return result, waitErr
			}
		}

		result, err = processFn(ctx, task)
		if err == nil {
			return result, nil
		}
		if ctx.Err() != nil {
			return result, err
		}

		if attempt < conf.maxAttempts-1 {
			conf.logger.Debug("task attempt failed, retrying", "attempt", attempt+1, "error", err)
			if conf.onRetry != nil {
				conf.onRetry(task, attempt+1, err)
			}
		}
	}

	return result, err
}

func sleepCtx(ctx context.Context, d time.Duration) error {
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
