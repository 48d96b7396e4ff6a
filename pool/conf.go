package pool

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/utkarsh5026/fanout/internal/algorithms"
	"golang.org/x/time/rate"
)

// BackoffType selects how retry delays grow.
type BackoffType = algorithms.BackoffType

const (
	BackoffExponential  = algorithms.BackoffExponential
	BackoffJittered     = algorithms.BackoffJittered
	BackoffDecorrelated = algorithms.BackoffDecorrelated
)

// WorkerPoolOption is a functional option for configuring the worker pool.
type WorkerPoolOption func(*workerPoolConfig)

type workerPoolConfig struct {
	workerCount     int
	taskBuffer      int
	maxAttempts     int
	initialDelay    time.Duration
	retryPolicySet  bool
	rateLimiter     *rate.Limiter
	continueOnError bool
	pinWorkers      bool
	logger          *slog.Logger

	backoffType         BackoffType
	backoffSet          bool
	backoffInitialDelay time.Duration
	backoffMaxDelay     time.Duration
	backoffJitterFactor float64

	// hooks are stored untyped and checked against the pool's T and R in
	// checkfuncs, since options cannot carry the pool's type parameters.
	beforeTaskStart     func(any)
	beforeTaskStartType string
	onTaskEnd           func(any, any, error)
	onTaskEndTaskType   string
	onTaskEndResultType string
	onRetry             func(any, int, error)
	onRetryType         string
}

// WithWorkerCount sets the number of concurrent workers.
// If not specified, defaults to runtime.GOMAXPROCS(0).
func WithWorkerCount(count int) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if count > 0 {
			cfg.workerCount = count
		}
	}
}

// WithTaskBuffer sets the buffer size for the task channel.
// If not specified, defaults to the number of workers.
func WithTaskBuffer(size int) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if size >= 0 {
			cfg.taskBuffer = size
		}
	}
}

// WithRetryPolicy retries a failing task up to maxAttempts times in total.
// initialDelay is the pause before the first retry; later pauses follow the
// configured backoff (exponential unless WithBackoff says otherwise).
func WithRetryPolicy(maxAttempts int, initialDelay time.Duration) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if maxAttempts > 0 {
			cfg.maxAttempts = maxAttempts
		}
		if initialDelay > 0 {
			cfg.initialDelay = initialDelay
			cfg.retryPolicySet = true
		}
	}
}

// WithBackoff picks the retry backoff algorithm and its bounds.
func WithBackoff(backoffType BackoffType, initialDelay, maxDelay time.Duration) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		cfg.backoffType = backoffType
		cfg.backoffSet = true
		if initialDelay > 0 {
			cfg.backoffInitialDelay = initialDelay
		}
		if maxDelay > 0 {
			cfg.backoffMaxDelay = maxDelay
		}
	}
}

// WithRateLimit caps how fast workers may start tasks.
// tasksPerSecond is the sustained rate, burst the number of tasks allowed
// back to back. Non-positive values leave the pool unthrottled.
//
// Example:
//
//	WithRateLimit(10, 5) // Allow 10 tasks/sec with burst of 5
func WithRateLimit(tasksPerSecond float64, burst int) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if tasksPerSecond > 0 && burst > 0 {
			cfg.rateLimiter = rate.NewLimiter(rate.Limit(tasksPerSecond), burst)
		}
	}
}

// WithContinueOnError keeps processing the remaining tasks after a failure.
// The first error is still returned once every task has run.
func WithContinueOnError() WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		cfg.continueOnError = true
	}
}

// WithCPUPinning locks every worker goroutine to an OS thread bound to one
// core. Useful for CPU-heavy tasks; pointless for sleeping ones.
func WithCPUPinning() WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		cfg.pinWorkers = true
	}
}

// WithLogger routes the pool's retry, panic and lifecycle records to l.
func WithLogger(l *slog.Logger) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithBeforeTaskStart registers a hook invoked before each task runs.
// T must match the pool's task type; NewWorkerPool panics otherwise.
func WithBeforeTaskStart[T any](fn func(T)) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if fn == nil {
			return
		}
		cfg.beforeTaskStart = func(task any) {
			t, _ := task.(T)
			fn(t)
		}
		cfg.beforeTaskStartType = typeName[T]()
	}
}

// WithOnTaskEnd registers a hook invoked after each task, with its final
// result and error.
func WithOnTaskEnd[T, R any](fn func(T, R, error)) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if fn == nil {
			return
		}
		cfg.onTaskEnd = func(task, result any, err error) {
			t, _ := task.(T)
			r, _ := result.(R)
			fn(t, r, err)
		}
		cfg.onTaskEndTaskType = typeName[T]()
		cfg.onTaskEndResultType = typeName[R]()
	}
}

// WithOnEachAttempt registers a hook invoked after every failed attempt that
// will be retried. attempt is 1-based.
func WithOnEachAttempt[T any](fn func(task T, attempt int, err error)) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if fn == nil {
			return
		}
		cfg.onRetry = func(task any, attempt int, err error) {
			t, _ := task.(T)
			fn(t, attempt, err)
		}
		cfg.onRetryType = typeName[T]()
	}
}

func typeName[T any]() string {
	return fmt.Sprintf("%T", *new(T))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
