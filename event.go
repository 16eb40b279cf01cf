package emitter

// Event is the confined (single-goroutine) registry variant. It
// takes no locks: every operation, including firing the invoker,
// must happen on the goroutine that created the event. Violations
// panic with a ConfinementError.
//
// The invoker reads the live entry list at call time, so it always
// reflects the latest registration state without re-fetching. A
// handler that mutates the registry mid-fire may or may not affect
// the fire in progress; ordering under self-mutation is unspecified.
type Event[H any] struct {
	created uint64
	entries []Entry[H]
	invoker H
}

// NewEvent creates a confined event whose invoker is synthesized by
// synth. The live accessor passed to synth returns the current entry
// list each time it is called; synth must not cache its result
// across invocations.
//
// The shape factories (Proc, Consumer, Chain, Supplier, Vote, ...)
// cover the common compositions; NewEvent is the extension point for
// custom ones.
func NewEvent[H any](synth func(live func() []Entry[H]) H) *Event[H] {
	e := &Event[H]{created: gid()}
	e.invoker = synth(func() []Entry[H] {
		e.check()
		return e.entries
	})
	return e
}

// Invoker returns the callable that fires this event. The returned
// value stays valid across registrations; it reads live state on
// every call.
func (e *Event[H]) Invoker() H {
	e.check()
	return e.invoker
}

// Register appends a handler and returns the key that removes it.
// Without WithKey a fresh key is minted, so registering the same
// handler twice yields two independently removable entries.
func (e *Event[H]) Register(handler H, opts ...RegOption) Key {
	e.check()
	entry := newEntry(handler, opts)
	e.entries = append(e.entries, entry)
	return entry.Key
}

// Unregister removes every entry whose key is identity-equal to key.
// Removing an unknown key is a no-op.
func (e *Event[H]) Unregister(key Key) {
	e.check()
	e.entries, _ = removeByKey(e.entries, key)
}

// Clear removes all entries.
func (e *Event[H]) Clear() {
	e.check()
	e.entries = nil
}

// Len returns the number of registered entries.
func (e *Event[H]) Len() int {
	e.check()
	return len(e.entries)
}

// check enforces the confinement precondition.
func (e *Event[H]) check() {
	if current := gid(); current != e.created {
		panic(&ConfinementError{Created: e.created, Current: current})
	}
}
