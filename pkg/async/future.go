package async

import (
	"context"
	"sync"
	"time"
)

// Future represents the result of an asynchronous computation.
type Future[T any] struct {
	value T
	err   error
	once  sync.Once
	done  chan struct{}
}

// Await waits for the asynchronous function to complete and returns its result.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.value, f.err
}

// AwaitWithTimeout waits for the asynchronous function to complete with a timeout.
// Returns the result if the function completes before the timeout.
// If the timeout occurs before completion, returns ErrTimeout.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete checks if the asynchronous function is complete without blocking.
// Returns true if the function has completed, false otherwise.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Resolved returns an already-completed future holding the given value.
func Resolved[T any](value T) *Future[T] {
	f := &Future[T]{value: value, done: make(chan struct{})}
	close(f.done)
	return f
}

// Rejected returns an already-completed future holding the given error.
func Rejected[T any](err error) *Future[T] {
	f := &Future[T]{err: err, done: make(chan struct{})}
	close(f.done)
	return f
}

// Async executes a function asynchronously and returns a Future for its result.
// The function accepts a context.Context and a parameter of any type P, and
// returns a value of type T and an error.
func Async[P, T any](ctx context.Context, param P, fn func(context.Context, P) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		// Early exit prevents goroutine leak when context is pre-canceled
		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		value, err := fn(ctx, param)

		// Use sync.Once to prevent race conditions on multiple goroutine completions
		f.once.Do(func() {
			f.value = value
			f.err = err
		})
	}()

	return f
}

// WaitAll waits for all futures to complete and returns their results in the
// order the futures were passed. The first non-nil error is returned, but all
// futures are awaited regardless so no goroutine is left running.
func WaitAll[T any](futures ...*Future[T]) ([]T, error) {
	values := make([]T, len(futures))
	var firstErr error
	for i, future := range futures {
		value, err := future.Await()
		values[i] = value
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return values, firstErr
}

// WaitAny waits for any of the futures to complete and returns the index of
// the completed future, its value, and any error it might have returned.
// Note: This function spawns one goroutine per future. All goroutines will
// complete naturally when their respective futures finish.
func WaitAny[T any](futures ...*Future[T]) (int, T, error) {
	if len(futures) == 0 {
		var zero T
		return -1, zero, ErrNoFutures
	}

	type completion struct {
		index int
		value T
		err   error
	}

	done := make(chan completion, 1)

	for i, future := range futures {
		go func(index int, f *Future[T]) {
			value, err := f.Await()
			select {
			case done <- completion{index, value, err}:
			default:
				// Prevents race condition where multiple futures complete simultaneously
			}
		}(i, future)
	}

	res := <-done
	return res.index, res.value, res.err
}
