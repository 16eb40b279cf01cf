package emitter

import (
	"sync/atomic"

	"github.com/dshills/emitter/sched"
)

// AsyncEvent fans each fire out to its handlers as scheduled tasks
// and fans the responses back in through a reducer. Fire returns
// immediately with a future; the result becomes available once every
// handler task and the join task complete.
//
// The entry list is lock-free copy-on-write: registration and
// removal are safe without external locking and preserve insertion
// order. Unregistration is weakly consistent - a handler removed
// concurrently with an in-flight fire may or may not be included in
// that fire, but never causes a fault.
type AsyncEvent[T, U any] struct {
	entries atomic.Pointer[[]Entry[func(T) U]]
	reduce  Reducer[U]
	ex      sched.Executor

	// Stats
	fires     atomic.Uint64
	submitted atomic.Uint64
	failures  atomic.Uint64
}

// AsyncOption configures an AsyncEvent.
type AsyncOption func(*asyncConfig)

type asyncConfig struct {
	executor sched.Executor
}

// WithScheduler sets the executor handler tasks and the join task
// are scheduled on. Defaults to sched.Direct, which fires
// synchronously and returns completed futures.
func WithScheduler(ex sched.Executor) AsyncOption {
	return func(c *asyncConfig) {
		if ex != nil {
			c.executor = ex
		}
	}
}

// NewAsync creates an async fan-out event. Responses are coalesced
// with reduce in registration order, exactly as in the synchronous
// reduce strategies.
func NewAsync[T, U any](reduce Reducer[U], opts ...AsyncOption) *AsyncEvent[T, U] {
	cfg := asyncConfig{executor: sched.Direct}
	for _, opt := range opts {
		opt(&cfg)
	}
	a := &AsyncEvent[T, U]{reduce: reduce, ex: cfg.executor}
	a.entries.Store(&[]Entry[func(T) U]{})
	return a
}

// FirstWins creates an async event where handlers that respond
// earlier in registration order take precedence; all handlers still
// run.
func FirstWins[T, U any](opts ...AsyncOption) *AsyncEvent[T, U] {
	return NewAsync[T, U](First[U], opts...)
}

// Register appends a handler and returns the key that removes it.
// Safe for concurrent use; lock-free.
func (a *AsyncEvent[T, U]) Register(handler func(T) U, opts ...RegOption) Key {
	entry := newEntry(handler, opts)
	for {
		old := a.entries.Load()
		next := make([]Entry[func(T) U], len(*old)+1)
		copy(next, *old)
		next[len(*old)] = entry
		if a.entries.CompareAndSwap(old, &next) {
			return entry.Key
		}
	}
}

// Unregister removes every entry whose key is identity-equal to key.
// Weakly consistent with concurrent fires.
func (a *AsyncEvent[T, U]) Unregister(key Key) {
	for {
		old := a.entries.Load()
		next, removed := removeByKey(bake(*old), key)
		if !removed {
			return
		}
		if a.entries.CompareAndSwap(old, &next) {
			return
		}
	}
}

// Clear removes all entries.
func (a *AsyncEvent[T, U]) Clear() {
	a.entries.Store(&[]Entry[func(T) U]{})
}

// Len returns the number of registered entries.
func (a *AsyncEvent[T, U]) Len() int {
	return len(*a.entries.Load())
}

// Fire dispatches payload to every currently registered handler as a
// scheduled task, then schedules a join task that awaits each
// response in registration order and folds them with the reducer.
// The returned future resolves to the folded result, or fails with
// the first handler failure in registration order; sibling tasks
// still run to completion. With zero handlers the future resolves to
// the zero value.
func (a *AsyncEvent[T, U]) Fire(payload T) *sched.Future[U] {
	snapshot := *a.entries.Load()
	a.fires.Add(1)

	futures := make([]*sched.Future[U], len(snapshot))
	for i, e := range snapshot {
		handler := e.Handler
		futures[i] = sched.Submit(a.ex, func() (U, error) {
			return handler(payload), nil
		})
	}
	a.submitted.Add(uint64(len(futures)))

	return sched.Submit(a.ex, func() (U, error) {
		var result U
		for i, f := range futures {
			cur, err := f.Get()
			if err != nil {
				a.failures.Add(1)
				var zero U
				return zero, err
			}
			if i == 0 {
				result = cur
				continue
			}
			result = a.reduce(result, cur)
		}
		return result, nil
	})
}

// Stats returns a snapshot of dispatch counters.
func (a *AsyncEvent[T, U]) Stats() AsyncStats {
	return AsyncStats{
		Fires:          a.fires.Load(),
		TasksSubmitted: a.submitted.Load(),
		Failures:       a.failures.Load(),
	}
}

// AsyncStats contains counters for an AsyncEvent.
type AsyncStats struct {
	// Fires is the number of Fire calls.
	Fires uint64

	// TasksSubmitted is the number of handler tasks scheduled.
	TasksSubmitted uint64

	// Failures is the number of fires whose joined future failed.
	Failures uint64
}
