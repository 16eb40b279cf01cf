package sched

import "errors"

// Sentinel errors for the sched package.
var (
	// ErrPoolRunning is returned when Start is called on a running pool.
	ErrPoolRunning = errors.New("sched: pool is already running")

	// ErrPoolStopped is returned when Stop is called on a stopped pool.
	ErrPoolStopped = errors.New("sched: pool is not running")

	// ErrTaskPanic is matched by errors.Is against a TaskPanicError.
	ErrTaskPanic = errors.New("sched: task panicked")
)

// TaskPanicError wraps a panic recovered from a scheduled task.
type TaskPanicError struct {
	// Value is the value passed to panic().
	Value any

	// Stack is the stack trace captured at recovery.
	Stack []byte
}

// Error implements the error interface.
func (e *TaskPanicError) Error() string {
	return "sched: task panicked"
}

// Is allows errors.Is to match TaskPanicError with ErrTaskPanic.
func (e *TaskPanicError) Is(target error) bool {
	return target == ErrTaskPanic
}
