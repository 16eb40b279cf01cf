package emitter

// Vote strategies let handlers vote on a single boolean result. The
// policy reconciles two votes at a time, left to right. With zero
// handlers every vote event returns false.

// VotePolicy reconciles two votes into one.
type VotePolicy func(a, b bool) bool

var (
	// FavorFalse carries a false vote through: the event reports
	// true only if every handler votes true (AND).
	FavorFalse VotePolicy = func(a, b bool) bool { return a && b }

	// FavorTrue carries a true vote through: the event reports true
	// if any handler votes true (OR).
	FavorTrue VotePolicy = func(a, b bool) bool { return a || b }

	// FavorDifference reports whether an odd number of handlers
	// voted true (XOR).
	FavorDifference VotePolicy = func(a, b bool) bool { return a != b }
)

// Ballot creates a confined event whose handlers vote without a
// payload.
func Ballot(policy VotePolicy) *Event[func() bool] {
	return NewEvent(func(live func() []Entry[func() bool]) func() bool {
		return func() bool {
			entries := live()
			return reduceFold(len(entries), Reducer[bool](policy), func(i int) bool {
				return entries[i].Handler()
			})
		}
	})
}

// Vote creates a confined event whose handlers vote on a payload.
func Vote[T any](policy VotePolicy) *Event[func(T) bool] {
	return NewEvent(func(live func() []Entry[func(T) bool]) func(T) bool {
		return func(payload T) bool {
			entries := live()
			return reduceFold(len(entries), Reducer[bool](policy), func(i int) bool {
				return entries[i].Handler(payload)
			})
		}
	})
}

// SafeBallot is the synchronized variant of Ballot.
func SafeBallot(policy VotePolicy) *SafeEvent[func() bool] {
	return NewSafeEvent(func(baked []Entry[func() bool]) func() bool {
		return func() bool {
			return reduceFold(len(baked), Reducer[bool](policy), func(i int) bool {
				return baked[i].Handler()
			})
		}
	})
}

// SafeVote is the synchronized variant of Vote.
func SafeVote[T any](policy VotePolicy) *SafeEvent[func(T) bool] {
	return NewSafeEvent(func(baked []Entry[func(T) bool]) func(T) bool {
		return func(payload T) bool {
			return reduceFold(len(baked), Reducer[bool](policy), func(i int) bool {
				return baked[i].Handler(payload)
			})
		}
	})
}
