package sched

import "runtime/debug"

// Executor is the minimal task-running capability handler dispatch
// delegates to. Implementations decide where and when a task runs:
// inline on the calling goroutine, or handed off to a pool.
type Executor interface {
	// Execute runs task. Direct implementations run it before
	// returning; pooled implementations may return first.
	Execute(task func())
}

// Direct runs every task synchronously on the calling goroutine.
// It is stateless and safe to share between registries.
var Direct Executor = directExecutor{}

type directExecutor struct{}

func (directExecutor) Execute(task func()) { task() }

// Submit schedules task on ex and returns a future for its result.
// A panic inside the task is recovered and surfaces as a failed
// future carrying a TaskPanicError.
func Submit[T any](ex Executor, task func() (T, error)) *Future[T] {
	f := NewFuture[T]()
	ex.Execute(func() {
		defer func() {
			if r := recover(); r != nil {
				f.Fail(&TaskPanicError{Value: r, Stack: debug.Stack()})
			}
		}()
		val, err := task()
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(val)
	})
	return f
}

// RunAll submits every task to ex and waits for all of them,
// returning the first failure in submission order. With the Direct
// executor the tasks run fully sequentially, so a failure is
// reported before any result is combined elsewhere.
func RunAll(ex Executor, tasks ...func() error) error {
	futures := make([]*Future[struct{}], len(tasks))
	for i, task := range tasks {
		task := task
		futures[i] = Submit(ex, func() (struct{}, error) {
			return struct{}{}, task()
		})
	}
	for _, f := range futures {
		if _, err := f.Get(); err != nil {
			return err
		}
	}
	return nil
}
