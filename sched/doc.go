// Package sched provides the task-running capabilities the emitter
// registries dispatch through: a minimal Executor abstraction, a
// write-once Future, and a bounded worker Pool.
//
// # Executors
//
// An Executor accepts a nullary task. Two behaviors ship with the
// package:
//
//   - Direct: run the task inline, before Execute returns. This is
//     the default everywhere an executor is not supplied.
//   - Pool: hand the task to a fixed set of worker goroutines behind
//     a bounded queue. A saturated or stopped pool runs the task
//     inline rather than dropping it.
//
// # Futures
//
// Future[T] models pending -> resolved | failed. Submit schedules a
// result-producing task on any Executor and wraps its outcome:
//
//	f := sched.Submit(ex, func() (int, error) { return compute(), nil })
//	v, err := f.Get()
//
// With the Direct executor, Submit returns an already-completed
// future; a task panic surfaces as a failed future carrying a
// TaskPanicError.
//
// # Batches
//
// RunAll submits a set of tasks and waits for all of them,
// propagating the first failure in submission order rather than
// partial results.
package sched
