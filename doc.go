// Package emitter provides typed, allocation-light event registries:
// a publisher holds registered handlers and exposes a single callable
// invoker that dispatches to all of them under a per-event
// composition strategy.
//
// # Registries
//
// Three registry kinds cover the three concurrency regimes:
//
//	Event[H]          confined: no locks, creating-goroutine only
//	SafeEvent[H]      synchronized: locked mutation, lock-free fire
//	AsyncEvent[T, U]  pooled: lock-free list, Fire returns a future
//
// A confined Event's invoker reads live registration state on every
// call; using it from another goroutine panics with a
// ConfinementError. A SafeEvent's invoker is bound to an immutable
// snapshot baked at the last mutation - a fire in progress is never
// affected by concurrent registration, and callers re-fetch Invoker
// after mutating. An AsyncEvent fans handler tasks out to a
// scheduler and joins their responses into one future.
//
// # Composition strategies
//
// Factory functions pick the strategy and handler shape:
//
//   - Broadcast: Proc, Consumer, BiConsumer (and Safe*/Pooled*
//     variants) call every handler in order and discard results.
//   - Chain: Chain, BiChain thread a value through the handlers;
//     zero handlers pass the payload through unchanged.
//   - Reduce: Supplier, Query, BiQuery left-fold handler responses
//     with a Reducer; LastSupplier keeps the latest response.
//   - Vote: Ballot, Vote fold boolean responses under a VotePolicy
//     (FavorFalse, FavorTrue, FavorDifference).
//   - Async: NewAsync fans out through a sched.Executor and reduces
//     the fan-in; FirstWins keeps the earliest response.
//
// # Keys
//
// Registration returns an identity Key; Unregister(key) removes
// every entry registered under it and silently ignores unknown keys.
// Keys compare by identity, never by structure: registering two
// identical handlers yields two independently removable entries.
// Supply a shared key with WithKey to group registrations.
//
// # Basic usage
//
//	ev := emitter.Consumer[string]()
//	key := ev.Register(func(s string) { fmt.Println("got", s) })
//	ev.Invoker()("hello")
//	ev.Unregister(key)
//
//	sum := emitter.NewAsync[int, int](func(a, b int) int { return a + b })
//	sum.Register(func(n int) int { return n * 2 })
//	total, err := sum.Fire(21).Get()
//
// # Error handling
//
// The package never logs, retries, or suppresses. A handler panic in
// a synchronous fire aborts the remaining handlers of that pass and
// propagates to the caller. A panic inside an async task is captured
// by its future and surfaces, as a TaskPanicError, when the joined
// future is awaited; sibling tasks still run. Unregistering an
// unknown key and firing with zero handlers are not errors.
//
// # Subpackages
//
//   - sched: Executor capability, Future, and a bounded worker Pool
package emitter
