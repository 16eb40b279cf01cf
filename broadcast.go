package emitter

import "github.com/dshills/emitter/sched"

// Broadcast strategies call every handler in registration order and
// discard results. Each entry runs on its registered executor
// (inline by default). In the synchronous path a handler panic
// aborts the remaining handlers in that fire and propagates to the
// caller; the loop is deliberately not wrapped.

// Proc creates a confined event for nullary handlers.
func Proc() *Event[func()] {
	return NewEvent(func(live func() []Entry[func()]) func() {
		return func() {
			for _, e := range live() {
				e.Executor.Execute(e.Handler)
			}
		}
	})
}

// Consumer creates a confined event for single-payload handlers.
func Consumer[X any]() *Event[func(X)] {
	return NewEvent(func(live func() []Entry[func(X)]) func(X) {
		return func(payload X) {
			for _, e := range live() {
				handler := e.Handler
				e.Executor.Execute(func() { handler(payload) })
			}
		}
	})
}

// BiConsumer creates a confined event for two-payload handlers.
func BiConsumer[X, Y any]() *Event[func(X, Y)] {
	return NewEvent(func(live func() []Entry[func(X, Y)]) func(X, Y) {
		return func(x X, y Y) {
			for _, e := range live() {
				handler := e.Handler
				e.Executor.Execute(func() { handler(x, y) })
			}
		}
	})
}

// SafeProc creates a synchronized event for nullary handlers.
func SafeProc() *SafeEvent[func()] {
	return NewSafeEvent(func(baked []Entry[func()]) func() {
		return func() {
			for _, e := range baked {
				e.Executor.Execute(e.Handler)
			}
		}
	})
}

// SafeConsumer creates a synchronized event for single-payload
// handlers.
func SafeConsumer[X any]() *SafeEvent[func(X)] {
	return NewSafeEvent(func(baked []Entry[func(X)]) func(X) {
		return func(payload X) {
			for _, e := range baked {
				handler := e.Handler
				e.Executor.Execute(func() { handler(payload) })
			}
		}
	})
}

// SafeBiConsumer creates a synchronized event for two-payload
// handlers.
func SafeBiConsumer[X, Y any]() *SafeEvent[func(X, Y)] {
	return NewSafeEvent(func(baked []Entry[func(X, Y)]) func(X, Y) {
		return func(x X, y Y) {
			for _, e := range baked {
				handler := e.Handler
				e.Executor.Execute(func() { handler(x, y) })
			}
		}
	})
}

// PooledProc creates a synchronized event that schedules every
// handler on ex, overriding per-entry executors. With a sched.Pool
// the handlers may run concurrently with each other and with the
// firing call's return.
func PooledProc(ex sched.Executor) *SafeEvent[func()] {
	return NewSafeEvent(func(baked []Entry[func()]) func() {
		return func() {
			for _, e := range baked {
				ex.Execute(e.Handler)
			}
		}
	})
}

// PooledConsumer creates a synchronized event that schedules every
// single-payload handler on ex.
func PooledConsumer[X any](ex sched.Executor) *SafeEvent[func(X)] {
	return NewSafeEvent(func(baked []Entry[func(X)]) func(X) {
		return func(payload X) {
			for _, e := range baked {
				handler := e.Handler
				ex.Execute(func() { handler(payload) })
			}
		}
	})
}

// PooledBiConsumer creates a synchronized event that schedules every
// two-payload handler on ex.
func PooledBiConsumer[X, Y any](ex sched.Executor) *SafeEvent[func(X, Y)] {
	return NewSafeEvent(func(baked []Entry[func(X, Y)]) func(X, Y) {
		return func(x X, y Y) {
			for _, e := range baked {
				handler := e.Handler
				ex.Execute(func() { handler(x, y) })
			}
		}
	})
}
