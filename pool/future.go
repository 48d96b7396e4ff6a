package pool

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// Future is a handle to a value computed in another goroutine.
// Every getter returns the same Value, Key and error once the Future is done.
type Future[R any, K comparable] struct {
	key  K
	done chan struct{}
	once sync.Once
	res  Result[R, K]
}

func newFuture[R any, K comparable](key K) *Future[R, K] {
	return &Future[R, K]{key: key, done: make(chan struct{})}
}

// complete resolves the future. Only the first call has an effect.
func (f *Future[R, K]) complete(r Result[R, K]) {
	f.once.Do(func() {
		f.res = r
		close(f.done)
	})
}

// Go runs fn in a new goroutine and returns a Future for its result, keyed
// by key. A panic in fn resolves the Future with an ErrTaskPanicked error.
func Go[R any, K comparable](key K, fn func() (R, error)) *Future[R, K] {
	f := newFuture[R](key)
	go func() {
		var (
			value R
			err   error
		)
		defer func() {
			if r := recover(); r != nil {
				buf := make([]byte, 4096)
				n := runtime.Stack(buf, false)
				err = fmt.Errorf("%w: %v\nstack trace:\n%s", ErrTaskPanicked, r, buf[:n])
			}
			f.complete(Result[R, K]{Value: value, Error: err, Key: key})
		}()
		value, err = fn()
	}()
	return f
}

// Get blocks until the Future is done.
func (f *Future[R, K]) Get() (R, K, error) {
	<-f.done
	return f.res.Value, f.res.Key, f.res.Error
}

// GetWithContext blocks until the Future is done or ctx ends. On ctx expiry
// it returns zero values and ctx.Err(); the Future itself keeps running.
func (f *Future[R, K]) GetWithContext(ctx context.Context) (R, K, error) {
	select {
	case <-f.done:
		return f.res.Value, f.res.Key, f.res.Error
	case <-ctx.Done():
		var (
			zeroR R
			zeroK K
		)
		return zeroR, zeroK, ctx.Err()
	}
}

// TryGet returns the result without blocking. ok is false while the Future
// is still running.
func (f *Future[R, K]) TryGet() (res Result[R, K], ok bool) {
	select {
	case <-f.done:
		return f.res, true
	default:
		return res, false
	}
}

// Key returns the key the Future was created with.
func (f *Future[R, K]) Key() K {
	return f.key
}

// IsReady reports whether the result is available.
func (f *Future[R, K]) IsReady() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed once the result is available.
func (f *Future[R, K]) Done() <-chan struct{} {
	return f.done
}

// AsCompleted yields the result of every future in the order they finish.
// The channel is closed after the last one. If ctx ends first, each future
// still pending is reported with ctx.Err() and its own key.
func AsCompleted[R any, K comparable](ctx context.Context, futures ...*Future[R, K]) <-chan Result[R, K] {
	out := make(chan Result[R, K], len(futures))

	var wg sync.WaitGroup
	for _, f := range futures {
		if f == nil {
			continue
		}
		wg.Go(func() {
			select {
			case <-f.done:
				out <- f.res
			case <-ctx.Done():
				out <- Result[R, K]{Key: f.key, Error: ctx.Err()}
			}
		})
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
