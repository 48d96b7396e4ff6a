package pool

import "context"

// ProcessFunc processes one task. Returning an error fails the task; unless
// the pool continues on error, it also stops the batch.
type ProcessFunc[T any, R any] func(ctx context.Context, task T) (R, error)

// Result is the outcome of a single task.
//
// Key identifies the task: the input index for slice processing, or the key
// handed to Go for futures.
type Result[R any, K comparable] struct {
	Value R
	Error error
	Key   K
}

// OK reports whether the task succeeded.
func (r Result[R, K]) OK() bool { return r.Error == nil }

type indexedTask[T any] struct {
	task  T
	index int
}
