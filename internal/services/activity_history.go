package services

import (
	"sync"
	"time"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
)

// ActivityHistory is the process-wide table of per-session activity records.
// Records are created lazily and never deleted, so an identifier reused by a
// new session inherits the old timeline.
type ActivityHistory struct {
	mu      sync.RWMutex
	now     func() time.Time
	records map[string]domain.ActivityRecord
}

// NewActivityHistory creates an empty history using the wall clock
func NewActivityHistory() *ActivityHistory {
	return NewActivityHistoryWithClock(time.Now)
}

// NewActivityHistoryWithClock creates an empty history with a custom clock
func NewActivityHistoryWithClock(now func() time.Time) *ActivityHistory {
	return &ActivityHistory{
		now:     now,
		records: make(map[string]domain.ActivityRecord),
	}
}

// RecordVisit sets FirstVisited on the first navigation to a session
func (h *ActivityHistory) RecordVisit(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rec := h.records[id]
	if rec.FirstVisited.IsZero() {
		rec.FirstVisited = h.now()
	}
	h.records[id] = rec
}

// RecordActivity marks output observed for a session
func (h *ActivityHistory) RecordActivity(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	rec := h.records[id]
	if rec.FirstVisited.IsZero() {
		rec.FirstVisited = now
	}
	// Clock steps backwards must not move the timeline back
	if now.After(rec.LastActivity) {
		rec.LastActivity = now
	}
	h.records[id] = rec
}

// Restore seeds LastActivity from an earlier observation, such as an
// activity marker left on disk. It never moves LastActivity backwards and
// does not touch FirstVisited.
func (h *ActivityHistory) Restore(id string, lastActivity time.Time) {
	if lastActivity.IsZero() {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	rec := h.records[id]
	if lastActivity.After(rec.LastActivity) {
		rec.LastActivity = lastActivity
		h.records[id] = rec
	}
}

// LastActivity returns the last observed output time, zero if none
func (h *ActivityHistory) LastActivity(id string) time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.records[id].LastActivity
}

// Record returns a copy of the record for id
func (h *ActivityHistory) Record(id string) (domain.ActivityRecord, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	rec, ok := h.records[id]
	return rec, ok
}
