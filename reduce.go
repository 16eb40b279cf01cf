package emitter

// Reduce strategies call every handler with the same payload and
// left-fold the results: given responses [a, b, c, d] and reducer f
// the event returns f(f(f(a, b), c), d). With zero handlers the
// result is the type's zero value. Handlers run inline; per-entry
// executors are ignored.

// Reducer combines an accumulated result with the next handler's
// response.
type Reducer[X any] func(acc, next X) X

// First keeps the earlier of two responses.
func First[X any](acc, _ X) X { return acc }

// Last keeps the later of two responses.
func Last[X any](_, next X) X { return next }

// reduceFold left-folds responses produced by next over n entries.
func reduceFold[X any](n int, reduce Reducer[X], next func(int) X) X {
	var result X
	for i := 0; i < n; i++ {
		cur := next(i)
		if i == 0 {
			result = cur
			continue
		}
		result = reduce(result, cur)
	}
	return result
}

// Supplier creates a confined event whose handlers each supply a
// value; responses are coalesced with reduce.
func Supplier[X any](reduce Reducer[X]) *Event[func() X] {
	return NewEvent(func(live func() []Entry[func() X]) func() X {
		return func() X {
			entries := live()
			return reduceFold(len(entries), reduce, func(i int) X {
				return entries[i].Handler()
			})
		}
	})
}

// LastSupplier creates a confined supplier event where responders
// registered later override earlier ones.
func LastSupplier[X any]() *Event[func() X] {
	return Supplier(Last[X])
}

// Query creates a confined event whose handlers answer a payload
// with a value; responses are coalesced with reduce.
func Query[T, U any](reduce Reducer[U]) *Event[func(T) U] {
	return NewEvent(func(live func() []Entry[func(T) U]) func(T) U {
		return func(payload T) U {
			entries := live()
			return reduceFold(len(entries), reduce, func(i int) U {
				return entries[i].Handler(payload)
			})
		}
	})
}

// BiQuery creates a confined event whose handlers answer two
// payloads with a value; responses are coalesced with reduce.
func BiQuery[T, U, V any](reduce Reducer[V]) *Event[func(T, U) V] {
	return NewEvent(func(live func() []Entry[func(T, U) V]) func(T, U) V {
		return func(t T, u U) V {
			entries := live()
			return reduceFold(len(entries), reduce, func(i int) V {
				return entries[i].Handler(t, u)
			})
		}
	})
}

// SafeSupplier is the synchronized variant of Supplier.
func SafeSupplier[X any](reduce Reducer[X]) *SafeEvent[func() X] {
	return NewSafeEvent(func(baked []Entry[func() X]) func() X {
		return func() X {
			return reduceFold(len(baked), reduce, func(i int) X {
				return baked[i].Handler()
			})
		}
	})
}

// SafeLastSupplier is the synchronized variant of LastSupplier.
func SafeLastSupplier[X any]() *SafeEvent[func() X] {
	return SafeSupplier(Last[X])
}

// SafeQuery is the synchronized variant of Query.
func SafeQuery[T, U any](reduce Reducer[U]) *SafeEvent[func(T) U] {
	return NewSafeEvent(func(baked []Entry[func(T) U]) func(T) U {
		return func(payload T) U {
			return reduceFold(len(baked), reduce, func(i int) U {
				return baked[i].Handler(payload)
			})
		}
	})
}

// SafeBiQuery is the synchronized variant of BiQuery.
func SafeBiQuery[T, U, V any](reduce Reducer[V]) *SafeEvent[func(T, U) V] {
	return NewSafeEvent(func(baked []Entry[func(T, U) V]) func(T, U) V {
		return func(t T, u U) V {
			return reduceFold(len(baked), reduce, func(i int) V {
				return baked[i].Handler(t, u)
			})
		}
	})
}
