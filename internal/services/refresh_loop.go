package services

import (
	"context"
	"sync"
	"time"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
	"github.com/ElleNajt/agent-shell-manager/internal/logging"
)

const (
	// DefaultRefreshPeriod is the fixed dashboard cadence
	DefaultRefreshPeriod = 2 * time.Second

	// KillRefreshDelay gives process death time to propagate before the
	// status is recomputed after a kill
	KillRefreshDelay = 500 * time.Millisecond
)

// RowBuilder produces the current display rows
type RowBuilder interface {
	Build(ctx context.Context) ([]domain.ViewRow, error)
}

// RowSink receives every rebuilt set of rows, or the error that prevented it
type RowSink func(rows []domain.ViewRow, err error)

// Refresher requests an out-of-cycle rebuild
type Refresher interface {
	Trigger()
	TriggerAfter(delay time.Duration)
}

// RefreshLoop rebuilds rows on a fixed period and on demand. All rebuilds run
// on the goroutine calling Run, so the builder is never entered concurrently.
type RefreshLoop struct {
	builder RowBuilder
	period  time.Duration
	trigger chan struct{}

	mu      sync.Mutex
	timers  map[*time.Timer]struct{}
	stopped bool
}

// NewRefreshLoop creates a loop with the default period
func NewRefreshLoop(builder RowBuilder) *RefreshLoop {
	return NewRefreshLoopWithPeriod(builder, DefaultRefreshPeriod)
}

// NewRefreshLoopWithPeriod creates a loop with a custom period
func NewRefreshLoopWithPeriod(builder RowBuilder, period time.Duration) *RefreshLoop {
	return &RefreshLoop{
		builder: builder,
		period:  period,
		trigger: make(chan struct{}, 1),
		timers:  make(map[*time.Timer]struct{}),
	}
}

// Run refreshes immediately, then on every tick or trigger until ctx is done.
// The ticker and any pending delayed triggers are stopped on every return path.
func (l *RefreshLoop) Run(ctx context.Context, sink RowSink) error {
	ticker := time.NewTicker(l.period)
	defer ticker.Stop()
	defer l.stopTimers()

	logging.Logger.Debug("Refresh loop started", "period", l.period)

	l.refresh(ctx, sink)
	for {
		select {
		case <-ctx.Done():
			logging.Logger.Debug("Refresh loop stopped")
			return nil
		case <-ticker.C:
			l.refresh(ctx, sink)
		case <-l.trigger:
			l.refresh(ctx, sink)
		}
	}
}

// Trigger requests a rebuild. Requests made while one is pending coalesce.
func (l *RefreshLoop) Trigger() {
	select {
	case l.trigger <- struct{}{}:
	default:
	}
}

// TriggerAfter requests a rebuild once delay has elapsed
func (l *RefreshLoop) TriggerAfter(delay time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped {
		return
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		l.mu.Lock()
		delete(l.timers, timer)
		l.mu.Unlock()
		l.Trigger()
	})
	l.timers[timer] = struct{}{}
}

// Pending returns the number of delayed triggers not yet fired
func (l *RefreshLoop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.timers)
}

func (l *RefreshLoop) refresh(ctx context.Context, sink RowSink) {
	rows, err := l.builder.Build(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to rebuild rows", "error", err)
	}
	if ctx.Err() != nil {
		return
	}
	sink(rows, err)
}

func (l *RefreshLoop) stopTimers() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stopped = true
	for timer := range l.timers {
		timer.Stop()
		delete(l.timers, timer)
	}
}

// nopRefresher is used by one-shot commands that have no dashboard
type nopRefresher struct{}

func (nopRefresher) Trigger() {}

func (nopRefresher) TriggerAfter(time.Duration) {}

// NopRefresher returns a Refresher that does nothing
func NopRefresher() Refresher {
	return nopRefresher{}
}
