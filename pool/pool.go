package pool

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// WorkerPool is a generic worker pool with a fixed worker count, context
// support, panic recovery and optional retries.
//
// Type parameters:
//   - T: The input task type
//   - R: The result type
type WorkerPool[T any, R any] struct {
	conf *processorConfig[T, R]
}

// NewWorkerPool creates a new worker pool with the given options.
//
// Default configuration:
//   - workerCount: runtime.GOMAXPROCS(0)
//   - taskBuffer: equal to workerCount
//   - maxAttempts: 1 (no retries)
//   - continueOnError: false
//
// Panics if a hook option was registered for other task or result types.
func NewWorkerPool[T any, R any](opts ...WorkerPoolOption) *WorkerPool[T, R] {
	return &WorkerPool[T, R]{
		conf: createConfig[T, R](opts...),
	}
}

// WorkerCount reports how many workers a batch may use.
func (wp *WorkerPool[T, R]) WorkerCount() int {
	return wp.conf.workerCount
}

// Process runs every task and returns the results in input order.
// On failure the results gathered so far are returned with the first error.
//
// Example:
//
//	results, err := wp.Process(ctx, []int{1, 2, 3}, func(ctx context.Context, n int) (string, error) {
//	    return fmt.Sprintf("processed %d", n), nil
//	})
func (wp *WorkerPool[T, R]) Process(
	ctx context.Context,
	tasks []T,
	processFn ProcessFunc[T, R],
) ([]R, error) {
	if processFn == nil {
		return nil, ErrNilProcessFunc
	}
	if len(tasks) == 0 {
		return []R{}, nil
	}

	results := make([]R, len(tasks))
	err := wp.run(ctx, tasks, processFn, func(r Result[R, int]) {
		if r.Error == nil && r.Key >= 0 && r.Key < len(results) {
			results[r.Key] = r.Value
		}
	})
	return results, err
}

// ProcessCompleted runs every task and returns the results in the order the
// tasks finished. Each Result is keyed by the task's index in tasks.
//
// Failed tasks are included with their Error set; the first error is also
// returned. In fail-fast mode tasks cancelled by that error are not reported.
func (wp *WorkerPool[T, R]) ProcessCompleted(
	ctx context.Context,
	tasks []T,
	processFn ProcessFunc[T, R],
) ([]Result[R, int], error) {
	if processFn == nil {
		return nil, ErrNilProcessFunc
	}
	if len(tasks) == 0 {
		return []Result[R, int]{}, nil
	}

	completed := make([]Result[R, int], 0, len(tasks))
	err := wp.run(ctx, tasks, processFn, func(r Result[R, int]) {
		completed = append(completed, r)
	})
	return completed, err
}

// run fans tasks out to the workers and hands every result to collect from a
// single goroutine, in arrival order.
func (wp *WorkerPool[T, R]) run(
	ctx context.Context,
	tasks []T,
	processFn ProcessFunc[T, R],
	collect func(Result[R, int]),
) error {
	g, gctx := errgroup.WithContext(ctx)

	taskChan := make(chan indexedTask[T], wp.conf.taskBuffer)
	resultChan := make(chan Result[R, int], len(tasks))

	numWorkers := min(wp.conf.workerCount, len(tasks))
	for i := range numWorkers {
		g.Go(func() error {
			return wp.worker(gctx, i, taskChan, resultChan, processFn)
		})
	}

	g.Go(func() error {
		defer close(taskChan)
		for idx, task := range tasks {
			select {
			case taskChan <- indexedTask[T]{index: idx, task: task}:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	var collectionErr error
	var collectionWg sync.WaitGroup

	collectionWg.Go(func() {
		for result := range resultChan {
			if result.Error != nil && collectionErr == nil {
				collectionErr = result.Error
			}
			collect(result)
		}
	})

	err := g.Wait()
	close(resultChan)
	collectionWg.Wait()

	// prefer the task's own error over the cancellation it caused
	if collectionErr != nil {
		return collectionErr
	}
	return err
}

// ProcessStream processes tasks read from taskChan until it is closed.
// Results are emitted as they complete. The error channel receives at most
// one error and is closed together with the result channel.
func (wp *WorkerPool[T, R]) ProcessStream(
	ctx context.Context,
	taskChan <-chan T,
	processFn ProcessFunc[T, R],
) (resultChan <-chan R, errChan <-chan error) {
	resChan := make(chan R, wp.conf.taskBuffer)
	errCh := make(chan error, 1)

	if processFn == nil {
		errCh <- ErrNilProcessFunc
		close(resChan)
		close(errCh)
		return resChan, errCh
	}

	go func() {
		defer close(errCh)
		defer close(resChan)

		g, gctx := errgroup.WithContext(ctx)

		internal := make(chan indexedTask[T], wp.conf.taskBuffer)
		results := make(chan Result[R, int], wp.conf.taskBuffer)

		g.Go(func() error {
			defer close(internal)
			idx := 0
			for {
				select {
				case t, ok := <-taskChan:
					if !ok {
						return nil
					}
					select {
					case internal <- indexedTask[T]{task: t, index: idx}:
						idx++
					case <-gctx.Done():
						return gctx.Err()
					}
				case <-gctx.Done():
					return gctx.Err()
				}
			}
		})

		var workers sync.WaitGroup
		for i := range wp.conf.workerCount {
			workers.Add(1)
			g.Go(func() error {
				defer workers.Done()
				return wp.worker(gctx, i, internal, results, processFn)
			})
		}

		go func() {
			workers.Wait()
			close(results)
		}()

		var firstErr error
		for r := range results {
			if r.Error != nil {
				if firstErr == nil {
					firstErr = r.Error
				}
				continue
			}
			select {
			case resChan <- r.Value:
			case <-ctx.Done():
			}
		}

		err := g.Wait()
		if firstErr != nil {
			err = firstErr
		}
		if err != nil {
			errCh <- err
		}
	}()

	return resChan, errCh
}
