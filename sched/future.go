package sched

import (
	"context"
	"sync"
)

// Future is a write-once container for the eventual result of a task.
// A Future starts pending and transitions exactly once to either a
// resolved value or a failure; later completions are ignored.
type Future[T any] struct {
	once sync.Once
	done chan struct{}
	val  T
	err  error
}

// NewFuture creates a pending future.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Completed creates a future already resolved with val.
func Completed[T any](val T) *Future[T] {
	f := NewFuture[T]()
	f.Complete(val)
	return f
}

// Failed creates a future already failed with err.
func Failed[T any](err error) *Future[T] {
	f := NewFuture[T]()
	f.Fail(err)
	return f
}

// Complete resolves the future with val. The first completion wins;
// subsequent Complete or Fail calls are no-ops.
func (f *Future[T]) Complete(val T) {
	f.once.Do(func() {
		f.val = val
		close(f.done)
	})
}

// Fail fails the future with err. The first completion wins.
func (f *Future[T]) Fail(err error) {
	f.once.Do(func() {
		f.err = err
		close(f.done)
	})
}

// Get blocks until the future completes and returns its value or error.
func (f *Future[T]) Get() (T, error) {
	<-f.done
	return f.val, f.err
}

// GetContext blocks until the future completes or ctx is cancelled.
// Cancellation does not affect the underlying task; the future may
// still complete later.
func (f *Future[T]) GetContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// TryGet returns the value or error if the future has completed.
// The third return reports whether a result was available.
func (f *Future[T]) TryGet() (T, error, bool) {
	select {
	case <-f.done:
		return f.val, f.err, true
	default:
		var zero T
		return zero, nil, false
	}
}

// Done returns a channel that is closed when the future completes.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// IsDone reports whether the future has completed.
func (f *Future[T]) IsDone() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// IsFailed reports whether the future completed with an error.
func (f *Future[T]) IsFailed() bool {
	return f.IsDone() && f.err != nil
}
