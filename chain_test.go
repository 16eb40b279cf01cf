package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChain_ZeroHandlersIsIdentity(t *testing.T) {
	tests := []struct {
		name    string
		payload int
	}{
		{"zero", 0},
		{"positive", 42},
		{"negative", -7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := Chain[int]()
			assert.Equal(t, tt.payload, ev.Invoker()(tt.payload))
		})
	}
}

func TestChain_ThreadsResultThroughHandlers(t *testing.T) {
	ev := Chain[int]()
	ev.Register(func(n int) int { return n + 1 })
	ev.Register(func(n int) int { return n * 2 })

	// (5 + 1) * 2
	assert.Equal(t, 12, ev.Invoker()(5))
}

func TestChain_OrderMatters(t *testing.T) {
	ev := Chain[string]()
	ev.Register(func(s string) string { return s + "a" })
	ev.Register(func(s string) string { return s + "b" })
	ev.Register(func(s string) string { return s + "c" })

	assert.Equal(t, "-abc", ev.Invoker()("-"))
}

func TestChain_UnregisterMidChain(t *testing.T) {
	ev := Chain[int]()
	key := NewKey("doubler")
	ev.Register(func(n int) int { return n + 1 })
	ev.Register(func(n int) int { return n * 2 }, WithKey(key))

	ev.Unregister(key)

	assert.Equal(t, 6, ev.Invoker()(5))
}

func TestBiChain_SecondArgumentPassesThrough(t *testing.T) {
	ev := BiChain[int, int]()
	ev.Register(func(acc, step int) int { return acc + step })
	ev.Register(func(acc, step int) int { return acc + step })

	assert.Equal(t, 26, ev.Invoker()(6, 10))
}

func TestSafeChain_SnapshotSemantics(t *testing.T) {
	ev := SafeChain[int]()
	ev.Register(func(n int) int { return n + 1 })

	invoke := ev.Invoker()
	ev.Register(func(n int) int { return n * 10 })

	// The invoker fetched before the second registration still runs
	// only the first handler.
	assert.Equal(t, 6, invoke(5))

	// Re-fetching picks up the new snapshot.
	assert.Equal(t, 60, ev.Invoker()(5))
}

func TestSafeBiChain(t *testing.T) {
	ev := SafeBiChain[string, string]()
	ev.Register(func(acc, sep string) string { return acc + sep + "x" })
	ev.Register(func(acc, sep string) string { return acc + sep + "y" })

	assert.Equal(t, "p.x.y", ev.Invoker()("p", "."))
}
