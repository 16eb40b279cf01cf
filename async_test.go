package emitter

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dshills/emitter/sched"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsyncEvent_SumScenario(t *testing.T) {
	// Three handlers returning 1, 2, 3 after staggered delays must
	// reduce to 6 regardless of completion order.
	pool := sched.NewPool(sched.WithWorkers(4), sched.WithQueueSize(16))
	require.NoError(t, pool.Start())
	defer func() { _ = pool.Stop(context.Background()) }()

	ev := NewAsync[int, int](func(a, b int) int { return a + b }, WithScheduler(pool))
	delays := []time.Duration{30 * time.Millisecond, 10 * time.Millisecond, 20 * time.Millisecond}
	for i, d := range delays {
		i, d := i, d
		ev.Register(func(int) int {
			time.Sleep(d)
			return i + 1
		})
	}

	got, err := ev.Fire(0).Get()
	require.NoError(t, err)
	assert.Equal(t, 6, got)
}

func TestAsyncEvent_DirectSchedulerCompletesInline(t *testing.T) {
	ev := NewAsync[int, int](func(a, b int) int { return a + b })
	ev.Register(func(n int) int { return n })
	ev.Register(func(n int) int { return n * 10 })

	f := ev.Fire(2)
	assert.True(t, f.IsDone(), "direct scheduler should resolve before Fire returns")

	got, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, 22, got)
}

func TestAsyncEvent_ZeroHandlers(t *testing.T) {
	ev := NewAsync[string, int](func(a, b int) int { return a + b })

	got, err := ev.Fire("x").Get()
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestAsyncEvent_ReduceOrderIsRegistrationOrder(t *testing.T) {
	ev := NewAsync[struct{}, string](func(acc, next string) string {
		return "(" + acc + "+" + next + ")"
	})
	for _, v := range []string{"a", "b", "c"} {
		v := v
		ev.Register(func(struct{}) string { return v })
	}

	got, err := ev.Fire(struct{}{}).Get()
	require.NoError(t, err)
	assert.Equal(t, "((a+b)+c)", got)
}

func TestAsyncEvent_HandlerPanicFailsJoinButSiblingsRun(t *testing.T) {
	ev := NewAsync[int, int](func(a, b int) int { return a + b })

	var ran atomic.Int32
	ev.Register(func(int) int { ran.Add(1); return 1 })
	ev.Register(func(int) int { panic("handler exploded") })
	ev.Register(func(int) int { ran.Add(1); return 3 })

	_, err := ev.Fire(0).Get()
	require.Error(t, err)
	assert.ErrorIs(t, err, sched.ErrTaskPanic)
	assert.Equal(t, int32(2), ran.Load(), "sibling handlers must still run")

	var pe *sched.TaskPanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "handler exploded", pe.Value)
}

func TestAsyncEvent_FirstWins(t *testing.T) {
	ev := FirstWins[int, string]()
	ev.Register(func(int) string { return "early" })
	ev.Register(func(int) string { return "late" })

	got, err := ev.Fire(0).Get()
	require.NoError(t, err)
	assert.Equal(t, "early", got)
}

func TestAsyncEvent_UnregisterAndClear(t *testing.T) {
	ev := NewAsync[int, int](func(a, b int) int { return a + b })

	key := ev.Register(func(n int) int { return 100 })
	ev.Register(func(n int) int { return 1 })
	require.Equal(t, 2, ev.Len())

	ev.Unregister(key)
	require.Equal(t, 1, ev.Len())

	got, err := ev.Fire(0).Get()
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	ev.Clear()
	assert.Zero(t, ev.Len())
}

func TestAsyncEvent_UnregisterUnknownKeyIsNoOp(t *testing.T) {
	ev := NewAsync[int, int](func(a, b int) int { return a + b })
	ev.Register(func(int) int { return 1 })

	ev.Unregister(NewKey("ghost"))
	assert.Equal(t, 1, ev.Len())
}

func TestAsyncEvent_WeaklyConsistentUnregister(t *testing.T) {
	// Removing a handler concurrently with fires may or may not
	// include it in a given fire, but must never fault.
	pool := sched.NewPool(sched.WithWorkers(2), sched.WithQueueSize(64))
	require.NoError(t, pool.Start())
	defer func() { _ = pool.Stop(context.Background()) }()

	ev := NewAsync[int, int](func(a, b int) int { return a + b }, WithScheduler(pool))
	ev.Register(func(int) int { return 1 })
	key := ev.Register(func(int) int { return 10 })

	done := make(chan struct{})
	go func() {
		defer close(done)
		ev.Unregister(key)
	}()

	for i := 0; i < 50; i++ {
		got, err := ev.Fire(0).Get()
		require.NoError(t, err)
		assert.Contains(t, []int{1, 11}, got)
	}
	<-done

	got, err := ev.Fire(0).Get()
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestAsyncEvent_Stats(t *testing.T) {
	ev := NewAsync[int, int](func(a, b int) int { return a + b })
	ev.Register(func(int) int { return 1 })
	ev.Register(func(int) int { return 2 })

	_, _ = ev.Fire(0).Get()
	_, _ = ev.Fire(0).Get()

	stats := ev.Stats()
	assert.Equal(t, uint64(2), stats.Fires)
	assert.Equal(t, uint64(4), stats.TasksSubmitted)
	assert.Zero(t, stats.Failures)
}

func TestAsyncEvent_HandlerErrorCountsAsFailure(t *testing.T) {
	ev := NewAsync[int, int](func(a, b int) int { return a + b })
	ev.Register(func(int) int { panic(errors.New("bad")) })

	_, err := ev.Fire(0).Get()
	require.Error(t, err)
	assert.Equal(t, uint64(1), ev.Stats().Failures)
}
