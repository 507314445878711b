package services

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/ElleNajt/agent-shell-manager/internal/logging"
)

// DefaultFeedRefreshInterval bounds how often output events may trigger an
// out-of-cycle refresh
const DefaultFeedRefreshInterval = 500 * time.Millisecond

// ActivityFeed consumes output-observed events. Every event is recorded in
// the history; refreshes of subscribed loops are triggered opportunistically
// under a rate limit.
type ActivityFeed struct {
	history *ActivityHistory
	limiter *rate.Limiter

	mu     sync.Mutex
	nextID int
	subs   map[int]Refresher
}

// NewActivityFeed creates a feed with the default refresh rate limit
func NewActivityFeed(history *ActivityHistory) *ActivityFeed {
	return NewActivityFeedWithInterval(history, DefaultFeedRefreshInterval)
}

// NewActivityFeedWithInterval creates a feed allowing one refresh per interval
func NewActivityFeedWithInterval(history *ActivityHistory, interval time.Duration) *ActivityFeed {
	return &ActivityFeed{
		history: history,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		subs:    make(map[int]Refresher),
	}
}

// Subscribe registers a refresher and returns the function removing it
func (f *ActivityFeed) Subscribe(r Refresher) func() {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	f.subs[id] = r

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.subs, id)
	}
}

// Observe handles one output event for a session
func (f *ActivityFeed) Observe(sessionID string) {
	f.history.RecordActivity(sessionID)

	if !f.limiter.Allow() {
		return
	}

	f.mu.Lock()
	subs := make([]Refresher, 0, len(f.subs))
	for _, r := range f.subs {
		subs = append(subs, r)
	}
	f.mu.Unlock()

	for _, r := range subs {
		r.Trigger()
	}
}

// Run consumes events until ctx is done or the channel closes
func (f *ActivityFeed) Run(ctx context.Context, events <-chan string) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case id, ok := <-events:
			if !ok {
				logging.Logger.Debug("Activity event channel closed")
				return nil
			}
			f.Observe(id)
		}
	}
}
