// Package clock drives the once-per-interval refresh of the displayed time.
//
// A Ticker is a scoped resource: Start acquires a timer goroutine when the
// screen mounts and Stop releases it when the screen unmounts. After Stop
// returns, the publisher is never called again for that generation.
package clock

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultInterval is how often the clock display refreshes.
const DefaultInterval = time.Second

// DefaultLayout renders times like "3:04:05 PM".
const DefaultLayout = "3:04:05 PM"

// State is the lifecycle state of a Ticker.
type State int

const (
	StateStopped State = iota
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

// Tick is one firing of the periodic refresh.
type Tick struct {
	Time       time.Time
	Text       string
	Generation int // increments on every Start; lets consumers drop stale ticks
}

// Publisher receives ticks from the timer goroutine.
// It must not block indefinitely or Stop will wait on it.
type Publisher func(Tick)

var (
	ErrNoPublisher     = errors.New("clock: publisher is nil")
	ErrInvalidInterval = errors.New("clock: interval must be positive")
)

// Ticker publishes the formatted wall-clock time once per Interval while running.
type Ticker struct {
	Interval time.Duration
	Layout   string
	Now      func() time.Time // test hook; defaults to time.Now

	publish Publisher

	mu         sync.Mutex
	state      State
	generation int
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewTicker creates a stopped Ticker. Zero interval or empty layout fall back
// to DefaultInterval and DefaultLayout.
func NewTicker(interval time.Duration, layout string, publish Publisher) *Ticker {
	if interval == 0 {
		interval = DefaultInterval
	}
	if layout == "" {
		layout = DefaultLayout
	}
	return &Ticker{
		Interval: interval,
		Layout:   layout,
		Now:      time.Now,
		publish:  publish,
	}
}

// Format renders at with the ticker's layout.
func (t *Ticker) Format(at time.Time) string {
	return at.Format(t.Layout)
}

// State returns the current lifecycle state.
func (t *Ticker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Generation returns the number of times the ticker has been started.
func (t *Ticker) Generation() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.generation
}

// Start moves the ticker to Running and publishes immediately, then once per
// Interval until Stop is called or ctx is cancelled. Start on a running
// ticker is a no-op. Every Start after a Stop runs a fresh timer.
func (t *Ticker) Start(ctx context.Context) error {
	if t.publish == nil {
		return ErrNoPublisher
	}
	if t.Interval <= 0 {
		return ErrInvalidInterval
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateRunning {
		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	t.generation++
	t.cancel = cancel
	t.done = make(chan struct{})
	t.state = StateRunning

	go t.run(runCtx, t.generation, t.done)
	return nil
}

// Stop cancels the timer and waits for its goroutine to exit.
// Safe to call more than once and on a ticker that never started.
func (t *Ticker) Stop() {
	t.mu.Lock()
	if t.state == StateStopped {
		t.mu.Unlock()
		return
	}
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.state = StateStopped
	t.mu.Unlock()

	cancel()
	<-done
}

func (t *Ticker) run(ctx context.Context, gen int, done chan struct{}) {
	defer close(done)
	defer t.exited(gen)

	now := t.Now
	if now == nil {
		now = time.Now
	}
	emit := func() {
		at := now()
		t.publish(Tick{Time: at, Text: t.Format(at), Generation: gen})
	}

	emit()

	timer := time.NewTicker(t.Interval)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			// A tick and a cancel can be ready together; cancel wins.
			if ctx.Err() != nil {
				return
			}
			emit()
		}
	}
}

// exited marks the ticker stopped when its goroutine ends on parent context
// cancellation rather than through Stop.
func (t *Ticker) exited(gen int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.generation != gen || t.state != StateRunning {
		return
	}
	t.cancel()
	t.cancel, t.done = nil, nil
	t.state = StateStopped
}
