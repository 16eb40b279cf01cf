package sched

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuture_CompleteThenGet(t *testing.T) {
	f := NewFuture[int]()
	assert.False(t, f.IsDone())

	f.Complete(42)

	got, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.True(t, f.IsDone())
	assert.False(t, f.IsFailed())
}

func TestFuture_FailThenGet(t *testing.T) {
	boom := errors.New("boom")
	f := NewFuture[int]()
	f.Fail(boom)

	got, err := f.Get()
	assert.Zero(t, got)
	assert.ErrorIs(t, err, boom)
	assert.True(t, f.IsFailed())
}

func TestFuture_FirstCompletionWins(t *testing.T) {
	f := NewFuture[string]()
	f.Complete("first")
	f.Complete("second")
	f.Fail(errors.New("too late"))

	got, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, "first", got)
}

func TestFuture_GetBlocksUntilComplete(t *testing.T) {
	f := NewFuture[int]()
	go func() {
		time.Sleep(10 * time.Millisecond)
		f.Complete(7)
	}()

	got, err := f.Get()
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestFuture_GetContextCancellation(t *testing.T) {
	f := NewFuture[int]()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.GetContext(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	// Cancellation does not complete the future.
	assert.False(t, f.IsDone())
	f.Complete(1)
	got, err := f.GetContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestFuture_TryGet(t *testing.T) {
	f := NewFuture[int]()

	_, _, ok := f.TryGet()
	assert.False(t, ok)

	f.Complete(5)
	got, err, ok := f.TryGet()
	assert.True(t, ok)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestFuture_Constructors(t *testing.T) {
	done := Completed("ready")
	got, err := done.Get()
	require.NoError(t, err)
	assert.Equal(t, "ready", got)

	failed := Failed[string](errors.New("nope"))
	_, err = failed.Get()
	assert.Error(t, err)
}

func TestFuture_DoneChannel(t *testing.T) {
	f := NewFuture[int]()

	select {
	case <-f.Done():
		t.Fatal("pending future's Done channel must not be closed")
	default:
	}

	f.Complete(0)

	select {
	case <-f.Done():
	case <-time.After(time.Second):
		t.Fatal("Done channel not closed after completion")
	}
}
