package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
)

type stubBuilder struct {
	builds  atomic.Int32
	inside  atomic.Int32
	overlap atomic.Bool
	err     error
	delay   time.Duration
}

func (b *stubBuilder) Build(ctx context.Context) ([]domain.ViewRow, error) {
	if b.inside.Add(1) > 1 {
		b.overlap.Store(true)
	}
	defer b.inside.Add(-1)

	if b.delay > 0 {
		time.Sleep(b.delay)
	}
	n := b.builds.Add(1)
	if b.err != nil {
		return nil, b.err
	}
	return []domain.ViewRow{{SessionID: string(rune('a' + n - 1))}}, nil
}

type refreshResult struct {
	rows []domain.ViewRow
	err  error
}

func startLoop(t *testing.T, loop *RefreshLoop) (<-chan refreshResult, context.CancelFunc, <-chan error) {
	t.Helper()

	results := make(chan refreshResult, 100)
	done := make(chan error, 1)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		done <- loop.Run(ctx, func(rows []domain.ViewRow, err error) {
			results <- refreshResult{rows: rows, err: err}
		})
	}()
	return results, cancel, done
}

func waitResult(t *testing.T, results <-chan refreshResult) refreshResult {
	t.Helper()
	select {
	case r := <-results:
		return r
	case <-time.After(2 * time.Second):
		require.FailNow(t, "timed out waiting for refresh")
		return refreshResult{}
	}
}

func stopLoop(t *testing.T, cancel context.CancelFunc, done <-chan error) {
	t.Helper()
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.FailNow(t, "refresh loop did not stop")
	}
}

func TestRefreshLoop_RefreshesImmediately(t *testing.T) {
	builder := &stubBuilder{}
	loop := NewRefreshLoopWithPeriod(builder, time.Hour)

	results, cancel, done := startLoop(t, loop)
	r := waitResult(t, results)
	stopLoop(t, cancel, done)

	require.NoError(t, r.err)
	require.Len(t, r.rows, 1)
	assert.Equal(t, int32(1), builder.builds.Load())
}

func TestRefreshLoop_RefreshesPeriodically(t *testing.T) {
	builder := &stubBuilder{}
	loop := NewRefreshLoopWithPeriod(builder, 10*time.Millisecond)

	results, cancel, done := startLoop(t, loop)
	for i := 0; i < 3; i++ {
		waitResult(t, results)
	}
	stopLoop(t, cancel, done)

	assert.GreaterOrEqual(t, builder.builds.Load(), int32(3))
}

func TestRefreshLoop_Trigger(t *testing.T) {
	builder := &stubBuilder{}
	loop := NewRefreshLoopWithPeriod(builder, time.Hour)

	results, cancel, done := startLoop(t, loop)
	waitResult(t, results)

	loop.Trigger()
	waitResult(t, results)
	stopLoop(t, cancel, done)

	assert.Equal(t, int32(2), builder.builds.Load())
}

func TestRefreshLoop_TriggersCoalesce(t *testing.T) {
	loop := NewRefreshLoopWithPeriod(&stubBuilder{}, time.Hour)

	loop.Trigger()
	loop.Trigger()
	loop.Trigger()

	assert.Len(t, loop.trigger, 1)
}

func TestRefreshLoop_TriggerAfter(t *testing.T) {
	builder := &stubBuilder{}
	loop := NewRefreshLoopWithPeriod(builder, time.Hour)

	results, cancel, done := startLoop(t, loop)
	waitResult(t, results)

	loop.TriggerAfter(20 * time.Millisecond)
	waitResult(t, results)
	stopLoop(t, cancel, done)

	assert.Equal(t, 0, loop.Pending())
}

func TestRefreshLoop_CancelStopsDelayedTriggers(t *testing.T) {
	builder := &stubBuilder{}
	loop := NewRefreshLoopWithPeriod(builder, time.Hour)

	results, cancel, done := startLoop(t, loop)
	waitResult(t, results)

	loop.TriggerAfter(time.Hour)
	assert.Equal(t, 1, loop.Pending())

	stopLoop(t, cancel, done)
	assert.Equal(t, 0, loop.Pending())

	loop.TriggerAfter(time.Millisecond)
	assert.Equal(t, 0, loop.Pending(), "no timers are armed after the loop stopped")
	assert.Equal(t, int32(1), builder.builds.Load())
}

func TestRefreshLoop_ForwardsBuildErrors(t *testing.T) {
	builder := &stubBuilder{err: errors.New("registry unavailable")}
	loop := NewRefreshLoopWithPeriod(builder, time.Hour)

	results, cancel, done := startLoop(t, loop)
	r := waitResult(t, results)
	stopLoop(t, cancel, done)

	require.Error(t, r.err)
	assert.Nil(t, r.rows)
}

func TestRefreshLoop_NeverBuildsConcurrently(t *testing.T) {
	builder := &stubBuilder{delay: 2 * time.Millisecond}
	loop := NewRefreshLoopWithPeriod(builder, time.Millisecond)

	results, cancel, done := startLoop(t, loop)
	for i := 0; i < 5; i++ {
		loop.Trigger()
		loop.TriggerAfter(time.Millisecond)
		waitResult(t, results)
	}
	stopLoop(t, cancel, done)

	assert.False(t, builder.overlap.Load())
}

func TestRefreshLoop_NoSinkAfterCancel(t *testing.T) {
	builder := &stubBuilder{delay: 50 * time.Millisecond}
	loop := NewRefreshLoopWithPeriod(builder, time.Hour)

	results := make(chan refreshResult, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := loop.Run(ctx, func(rows []domain.ViewRow, err error) {
		results <- refreshResult{rows: rows, err: err}
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNopRefresher(t *testing.T) {
	r := NopRefresher()
	assert.NotPanics(t, func() {
		r.Trigger()
		r.TriggerAfter(time.Millisecond)
	})
}
