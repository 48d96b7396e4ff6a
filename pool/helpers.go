package pool

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/utkarsh5026/fanout/internal/algorithms"
	"golang.org/x/time/rate"
)

// processorConfig is the resolved, typed configuration shared by every
// processing mode of a WorkerPool.
type processorConfig[T, R any] struct {
	workerCount   int
	taskBuffer    int
	maxAttempts   int
	rateLimiter   *rate.Limiter
	continueOnErr bool
	pinWorkers    bool
	logger        *slog.Logger

	// newBackoff builds one strategy per task; a strategy holds that
	// task's delay history.
	newBackoff   func() algorithms.BackoffStrategy
	retryBackoff bool

	beforeTaskStart func(T)
	onTaskEnd       func(T, R, error)
	onRetry         func(T, int, error)
}

func createConfig[T, R any](opts ...WorkerPoolOption) *processorConfig[T, R] {
	cfg := &workerPoolConfig{
		workerCount:         runtime.GOMAXPROCS(0),
		taskBuffer:          0, // resolved to workerCount below
		maxAttempts:         1,
		backoffType:         BackoffExponential,
		backoffInitialDelay: 100 * time.Millisecond,
		backoffMaxDelay:     5 * time.Second,
		backoffJitterFactor: 0.1,
		logger:              discardLogger(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.taskBuffer == 0 {
		cfg.taskBuffer = cfg.workerCount
	}

	// an explicit retry delay wins over the backoff default
	if cfg.retryPolicySet {
		cfg.backoffInitialDelay = cfg.initialDelay
	}

	beforeTaskStart, onTaskEnd, onRetry := checkfuncs[T, R](cfg, typeName[T](), typeName[R]())

	return &processorConfig[T, R]{
		workerCount:   cfg.workerCount,
		taskBuffer:    cfg.taskBuffer,
		maxAttempts:   max(cfg.maxAttempts, 1),
		rateLimiter:   cfg.rateLimiter,
		continueOnErr: cfg.continueOnError,
		pinWorkers:    cfg.pinWorkers,
		logger:        cfg.logger,
		newBackoff: func() algorithms.BackoffStrategy {
			return algorithms.NewBackoffStrategy(
				cfg.backoffType,
				cfg.backoffInitialDelay,
				cfg.backoffMaxDelay,
				cfg.backoffJitterFactor,
				nil,
			)
		},
		retryBackoff:    cfg.retryPolicySet || cfg.backoffSet,
		beforeTaskStart: beforeTaskStart,
		onTaskEnd:       onTaskEnd,
		onRetry:         onRetry,
	}
}

// checkfuncs validates user-supplied hooks against the pool's task and result
// types and returns typed wrappers for them.
//
// Panics if any hook was registered for a different task or result type.
func checkfuncs[T any, R any](
	cfg *workerPoolConfig,
	expectedTaskType, expectedResultType string,
) (
	beforeTaskStart func(T),
	onTaskEnd func(T, R, error),
	onRetry func(T, int, error),
) {
	if cfg.beforeTaskStart != nil {
		if cfg.beforeTaskStartType != expectedTaskType {
			panic(fmt.Sprintf("WithBeforeTaskStart hook expects task type %s, but pool processes type %s",
				cfg.beforeTaskStartType, expectedTaskType))
		}
		beforeTaskStart = func(task T) {
			cfg.beforeTaskStart(task)
		}
	}

	if cfg.onTaskEnd != nil {
		if cfg.onTaskEndTaskType != expectedTaskType {
			panic(fmt.Sprintf("WithOnTaskEnd hook expects task type %s, but pool processes type %s",
				cfg.onTaskEndTaskType, expectedTaskType))
		}
		if cfg.onTaskEndResultType != expectedResultType {
			panic(fmt.Sprintf("WithOnTaskEnd hook expects result type %s, but pool produces type %s",
				cfg.onTaskEndResultType, expectedResultType))
		}
		onTaskEnd = func(task T, result R, err error) {
			cfg.onTaskEnd(task, result, err)
		}
	}

	if cfg.onRetry != nil {
		if cfg.onRetryType != expectedTaskType {
			panic(fmt.Sprintf("WithOnEachAttempt hook expects task type %s, but pool processes type %s",
				cfg.onRetryType, expectedTaskType))
		}
		onRetry = func(task T, attempt int, err error) {
			cfg.onRetry(task, attempt, err)
		}
	}

	return beforeTaskStart, onTaskEnd, onRetry
}
