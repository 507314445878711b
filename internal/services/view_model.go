package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
	"github.com/ElleNajt/agent-shell-manager/internal/logging"
	"github.com/ElleNajt/agent-shell-manager/internal/ports"
)

// ViewModelBuilder turns the registry and activity history into display rows
type ViewModelBuilder struct {
	history  *ActivityHistory
	now      func() time.Time
	registry ports.SessionRegistry
}

// NewViewModelBuilder creates a builder using the wall clock
func NewViewModelBuilder(registry ports.SessionRegistry, history *ActivityHistory) *ViewModelBuilder {
	return &ViewModelBuilder{
		history:  history,
		now:      time.Now,
		registry: registry,
	}
}

// WithClock overrides the clock used for relative activity labels
func (b *ViewModelBuilder) WithClock(now func() time.Time) *ViewModelBuilder {
	b.now = now
	return b
}

// Build returns rows for every session that still resolves, newest activity first.
// Identifiers that stopped resolving between enumeration and resolution are skipped.
func (b *ViewModelBuilder) Build(ctx context.Context) ([]domain.ViewRow, error) {
	ids, err := b.registry.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	now := b.now()
	rows := make([]domain.ViewRow, 0, len(ids))
	for _, id := range ids {
		session, ok, err := b.registry.Resolve(ctx, id)
		if err != nil {
			logging.Logger.Warn("Failed to resolve session", "id", id, "error", err)
			continue
		}
		if !ok {
			logging.Logger.Debug("Session no longer resolves, skipping", "id", id)
			continue
		}
		rows = append(rows, b.row(session, now))
	}

	domain.SortRows(rows)
	return rows, nil
}

func (b *ViewModelBuilder) row(session *domain.Session, now time.Time) domain.ViewRow {
	status := domain.Classify(session)
	lastActivity := b.history.LastActivity(session.ID)

	return domain.ViewRow{
		Activity:      domain.FormatRelativeTime(lastActivity, now),
		DisplayName:   session.DisplayName,
		Mode:          session.ModeName(),
		SessionID:     session.ID,
		SessionStatus: domain.SessionStatusOf(session, status),
		SortTimestamp: lastActivity,
		Status:        status,
	}
}
