package pool

import "errors"

var (
	// ErrTaskPanicked wraps the error produced when a task panics.
	ErrTaskPanicked = errors.New("worker panic")

	// ErrNilProcessFunc is returned when a batch is started without a function.
	ErrNilProcessFunc = errors.New("pool: nil process function")
)
