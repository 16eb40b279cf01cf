package emitter

// Chain strategies thread a value through the handlers in
// registration order; each handler sees its predecessor's result.
// With zero handlers the payload passes through unchanged. Handlers
// run inline: per-entry executors are ignored because each step
// depends on the one before it.

// Chain creates a confined event whose handlers progressively
// transform a single value.
func Chain[T any]() *Event[func(T) T] {
	return NewEvent(func(live func() []Entry[func(T) T]) func(T) T {
		return func(payload T) T {
			result := payload
			for _, e := range live() {
				result = e.Handler(result)
			}
			return result
		}
	})
}

// BiChain creates a confined event whose handlers progressively
// transform their first argument; the second is passed through to
// every handler unchanged.
func BiChain[T, U any]() *Event[func(T, U) T] {
	return NewEvent(func(live func() []Entry[func(T, U) T]) func(T, U) T {
		return func(payload T, context U) T {
			result := payload
			for _, e := range live() {
				result = e.Handler(result, context)
			}
			return result
		}
	})
}

// SafeChain is the synchronized variant of Chain.
func SafeChain[T any]() *SafeEvent[func(T) T] {
	return NewSafeEvent(func(baked []Entry[func(T) T]) func(T) T {
		return func(payload T) T {
			result := payload
			for _, e := range baked {
				result = e.Handler(result)
			}
			return result
		}
	})
}

// SafeBiChain is the synchronized variant of BiChain.
func SafeBiChain[T, U any]() *SafeEvent[func(T, U) T] {
	return NewSafeEvent(func(baked []Entry[func(T, U) T]) func(T, U) T {
		return func(payload T, context U) T {
			result := payload
			for _, e := range baked {
				result = e.Handler(result, context)
			}
			return result
		}
	})
}
