package emitter

import (
	"sync"
	"sync/atomic"
)

// SafeEvent is the synchronized registry variant. Mutations take a
// mutex, rebake an immutable snapshot of the entry list and
// resynthesize the invoker; reading the invoker is a lock-free
// atomic load.
//
// A firing in progress completes against the snapshot that existed
// when its invoker was synthesized: concurrent registrations never
// affect it. Callers must re-fetch Invoker after mutating to observe
// the change; no operation blocks waiting for an in-flight fire.
type SafeEvent[H any] struct {
	mu      sync.Mutex
	entries []Entry[H]
	synth   func(baked []Entry[H]) H
	invoker atomic.Pointer[H]
}

// NewSafeEvent creates a synchronized event whose invoker is
// synthesized by synth from a baked snapshot. The snapshot is never
// mutated once passed in; synth may iterate it freely without
// locking but must not modify it.
func NewSafeEvent[H any](synth func(baked []Entry[H]) H) *SafeEvent[H] {
	s := &SafeEvent[H]{synth: synth}
	inv := synth(nil)
	s.invoker.Store(&inv)
	return s
}

// Invoker returns the callable bound to the most recently published
// snapshot. Handlers registered after this call are not seen until
// Invoker is fetched again.
func (s *SafeEvent[H]) Invoker() H {
	return *s.invoker.Load()
}

// Register appends a handler and returns the key that removes it.
// Safe for concurrent use.
func (s *SafeEvent[H]) Register(handler H, opts ...RegOption) Key {
	entry := newEntry(handler, opts)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	s.rebake()
	return entry.Key
}

// Unregister removes every entry whose key is identity-equal to key.
// Removing an unknown key is a no-op and does not resynthesize the
// invoker.
func (s *SafeEvent[H]) Unregister(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, removed := removeByKey(s.entries, key)
	if !removed {
		return
	}
	s.entries = entries
	s.rebake()
}

// Clear removes all entries and publishes an empty-dispatch invoker.
func (s *SafeEvent[H]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.rebake()
}

// Len returns the number of registered entries.
func (s *SafeEvent[H]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// rebake publishes a fresh snapshot and invoker. Caller holds mu.
func (s *SafeEvent[H]) rebake() {
	inv := s.synth(bake(s.entries))
	s.invoker.Store(&inv)
}
