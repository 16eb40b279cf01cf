package emitter

import "github.com/dshills/emitter/sched"

// Entry is one registered handler with its identity key and the
// executor broadcast dispatch runs it on.
type Entry[H any] struct {
	Handler  H
	Key      Key
	Executor sched.Executor
}

// newEntry builds an entry from a handler and registration options,
// minting a key when none was supplied.
func newEntry[H any](handler H, opts []RegOption) Entry[H] {
	cfg := regConfig{executor: sched.Direct}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.key.IsZero() {
		cfg.key = NewKey("")
	}
	return Entry[H]{Handler: handler, Key: cfg.key, Executor: cfg.executor}
}

// removeByKey returns entries with every identity-matching entry
// removed, preserving the order of survivors. The second return
// reports whether anything was removed.
func removeByKey[H any](entries []Entry[H], key Key) ([]Entry[H], bool) {
	kept := entries[:0:len(entries)]
	removed := false
	for _, e := range entries {
		if e.Key == key {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	return kept, removed
}

// bake returns an immutable point-in-time copy of entries for
// lock-free dispatch. The copy is never mutated once published.
func bake[H any](entries []Entry[H]) []Entry[H] {
	baked := make([]Entry[H], len(entries))
	copy(baked, entries)
	return baked
}
