// Package pool is the fan-out engine: a small generic worker pool plus
// futures that can be drained in completion order.
//
// The primary type is WorkerPool[T, R], a configurable pool of workers which
// process tasks of type T and produce results of type R. Workers recover from
// panics, retry with backoff, respect an optional rate limit, and report
// through optional hooks and a structured logger.
//
// # Basic Usage
//
//	ctx := context.Background()
//	wp := pool.NewWorkerPool[int, int](pool.WithWorkerCount(4))
//	results, err := wp.Process(ctx, []int{1, 2, 3, 4}, func(ctx context.Context, t int) (int, error) {
//	    return t * 2, nil
//	})
//
// # Processing Modes
//
//   - Process: results in the same order as the input slice
//   - ProcessCompleted: results in the order tasks finished, keyed by input index
//   - ProcessStream: tasks read from a channel, results written to a channel
//
// # Futures
//
// Go starts a function in its own goroutine and returns a Future. AsCompleted
// turns a set of futures into a channel that yields each result as soon as
// it is ready:
//
//	futures := []*pool.Future[string, int]{pool.Go(0, slow), pool.Go(1, fast)}
//	for r := range pool.AsCompleted(ctx, futures...) {
//	    fmt.Println(r.Key, r.Value) // 1 first, then 0
//	}
//
// # Configuration Options
//
//   - WithWorkerCount(n): number of concurrent workers (default: GOMAXPROCS)
//   - WithTaskBuffer(n): task channel buffer (default: worker count)
//   - WithRetryPolicy(maxAttempts, initialDelay): retry failed tasks
//   - WithBackoff(type, initialDelay, maxDelay): choose the retry backoff
//   - WithRateLimit(tasksPerSecond, burst): throttle task starts
//   - WithContinueOnError(): keep going after a task fails
//   - WithBeforeTaskStart / WithOnTaskEnd / WithOnEachAttempt: hooks
//   - WithLogger(l): structured logging of retries and panics
//   - WithCPUPinning(): bind each worker to a CPU core
//
// # Error Handling
//
// The pool is fail-fast by default: the first failing task cancels the rest
// and its error is returned. Panics inside a task are converted into errors
// carrying the stack trace.
package pool
