package clock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects ticks published from the timer goroutine.
type recorder struct {
	mu    sync.Mutex
	ticks []Tick
}

func (r *recorder) publish(t Tick) {
	r.mu.Lock()
	r.ticks = append(r.ticks, t)
	r.mu.Unlock()
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ticks)
}

func (r *recorder) last() Tick {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ticks[len(r.ticks)-1]
}

func TestTicker_InitialStateStopped(t *testing.T) {
	tk := NewTicker(0, "", func(Tick) {})
	assert.Equal(t, StateStopped, tk.State())
	assert.Equal(t, DefaultInterval, tk.Interval)
	assert.Equal(t, DefaultLayout, tk.Layout)
	assert.Equal(t, 0, tk.Generation())
}

func TestTicker_PublishesWithinWindow(t *testing.T) {
	rec := &recorder{}
	tk := NewTicker(time.Second, "", rec.publish)
	require.NoError(t, tk.Start(context.Background()))
	defer tk.Stop()

	require.Eventually(t, func() bool { return rec.count() >= 1 }, 1100*time.Millisecond, 10*time.Millisecond)
	assert.Equal(t, StateRunning, tk.State())
}

func TestTicker_PublishesRepeatedly(t *testing.T) {
	rec := &recorder{}
	tk := NewTicker(10*time.Millisecond, "", rec.publish)
	require.NoError(t, tk.Start(context.Background()))
	defer tk.Stop()

	require.Eventually(t, func() bool { return rec.count() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestTicker_NoPublishAfterStop(t *testing.T) {
	rec := &recorder{}
	tk := NewTicker(10*time.Millisecond, "", rec.publish)
	require.NoError(t, tk.Start(context.Background()))
	require.Eventually(t, func() bool { return rec.count() >= 2 }, time.Second, 5*time.Millisecond)

	tk.Stop()
	assert.Equal(t, StateStopped, tk.State())
	n := rec.count()

	// Five intervals.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, n, rec.count(), "tick published after Stop")
}

func TestTicker_StopIsIdempotent(t *testing.T) {
	tk := NewTicker(10*time.Millisecond, "", func(Tick) {})
	tk.Stop()
	require.NoError(t, tk.Start(context.Background()))
	tk.Stop()
	tk.Stop()
	assert.Equal(t, StateStopped, tk.State())
}

func TestTicker_StartWhileRunningIsNoOp(t *testing.T) {
	tk := NewTicker(10*time.Millisecond, "", func(Tick) {})
	require.NoError(t, tk.Start(context.Background()))
	defer tk.Stop()
	require.NoError(t, tk.Start(context.Background()))
	assert.Equal(t, 1, tk.Generation())
}

func TestTicker_RestartUsesFreshGeneration(t *testing.T) {
	rec := &recorder{}
	tk := NewTicker(10*time.Millisecond, "", rec.publish)
	require.NoError(t, tk.Start(context.Background()))
	require.Eventually(t, func() bool { return rec.count() >= 1 }, time.Second, 5*time.Millisecond)
	tk.Stop()
	assert.Equal(t, 1, rec.last().Generation)

	require.NoError(t, tk.Start(context.Background()))
	defer tk.Stop()
	assert.Equal(t, 2, tk.Generation())
	require.Eventually(t, func() bool { return rec.last().Generation == 2 }, time.Second, 5*time.Millisecond)
}

func TestTicker_ParentCancelStops(t *testing.T) {
	rec := &recorder{}
	tk := NewTicker(10*time.Millisecond, "", rec.publish)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, tk.Start(ctx))
	require.Eventually(t, func() bool { return rec.count() >= 1 }, time.Second, 5*time.Millisecond)

	cancel()
	require.Eventually(t, func() bool { return tk.State() == StateStopped }, time.Second, 5*time.Millisecond)
	n := rec.count()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, n, rec.count())
}

func TestTicker_FormatsWithLayoutAndClock(t *testing.T) {
	fixed := time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC)
	rec := &recorder{}
	tk := NewTicker(time.Hour, "15:04:05", rec.publish)
	tk.Now = func() time.Time { return fixed }
	require.NoError(t, tk.Start(context.Background()))
	require.Eventually(t, func() bool { return rec.count() >= 1 }, time.Second, 5*time.Millisecond)
	tk.Stop()

	got := rec.last()
	assert.Equal(t, "15:04:05", got.Text)
	assert.True(t, got.Time.Equal(fixed))
	assert.Equal(t, "3:04:05 PM", NewTicker(0, "", nil).Format(fixed))
}

func TestTicker_StartErrors(t *testing.T) {
	assert.ErrorIs(t, NewTicker(0, "", nil).Start(context.Background()), ErrNoPublisher)

	tk := NewTicker(time.Second, "", func(Tick) {})
	tk.Interval = -time.Second
	assert.ErrorIs(t, tk.Start(context.Background()), ErrInvalidInterval)
	assert.Equal(t, StateStopped, tk.State())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Stopped", StateStopped.String())
	assert.Equal(t, "Running", StateRunning.String())
	assert.Equal(t, "Unknown", State(5).String())
}
