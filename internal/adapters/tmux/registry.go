package tmux

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
	"github.com/ElleNajt/agent-shell-manager/internal/ports"
)

// paneSnapshotTTL bounds how long a pane listing taken by ListIDs serves the
// Resolve calls of the same refresh
const paneSnapshotTTL = 250 * time.Millisecond

// Registry resolves sessions from the state database and their tmux panes.
// The pane process is the session's exec process; the control process is
// whatever pid the supervisor last published.
type Registry struct {
	client    ports.TmuxClient
	inspector ports.ProcessInspector
	now       func() time.Time
	sessions  ports.SessionReader

	mu      sync.Mutex
	panes   []ports.TmuxPane
	panesAt time.Time
}

// Compile-time interface verification
var _ ports.SessionRegistry = (*Registry)(nil)

// NewRegistry creates a Registry
func NewRegistry(sessions ports.SessionReader, client ports.TmuxClient, inspector ports.ProcessInspector) *Registry {
	return &Registry{
		client:    client,
		inspector: inspector,
		now:       time.Now,
		sessions:  sessions,
	}
}

// ListIDs implements SessionRegistry.ListIDs. It also lists the tmux panes
// once, so resolving every returned id costs a single tmux call.
func (r *Registry) ListIDs(ctx context.Context) ([]string, error) {
	sessions, err := r.sessions.List(ctx)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.panes, r.panesAt = nil, time.Time{}
	if panes, err := r.client.ListPanes(); err == nil {
		r.panes, r.panesAt = panes, r.now()
	}
	r.mu.Unlock()

	ids := make([]string, len(sessions))
	for i, s := range sessions {
		ids[i] = s.ID
	}
	return ids, nil
}

// Resolve implements SessionRegistry.Resolve
func (r *Registry) Resolve(ctx context.Context, id string) (*domain.Session, bool, error) {
	session, err := r.sessions.Get(ctx, id)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	panes, err := r.currentPanes()
	if err != nil {
		return nil, false, fmt.Errorf("failed to resolve exec process: %w", err)
	}
	for _, pane := range panes {
		if pane.SessionName != id {
			continue
		}
		status := domain.ProcessExit
		if !pane.Dead {
			status = r.inspector.Inspect(pane.PID)
		}
		session.ExecProcess = &domain.Process{PID: pane.PID, Status: status}
		break
	}

	if session.ControlProcess != nil {
		session.ControlProcess.Status = r.inspector.Inspect(session.ControlProcess.PID)
	}

	return session, true, nil
}

// currentPanes returns the snapshot taken by ListIDs while it is fresh,
// otherwise a new listing
func (r *Registry) currentPanes() ([]ports.TmuxPane, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.panesAt.IsZero() && r.now().Sub(r.panesAt) < paneSnapshotTTL {
		return r.panes, nil
	}
	return r.client.ListPanes()
}
