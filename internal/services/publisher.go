package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
	"github.com/ElleNajt/agent-shell-manager/internal/logging"
	"github.com/ElleNajt/agent-shell-manager/internal/ports"
)

// PublisherService records the flags agents publish about themselves.
// Agents reach it through the publish commands, usually from hooks.
type PublisherService struct {
	now        func() time.Time
	publisher  ports.SessionStatePublisher
	sessionGet ports.SessionReader
}

// NewPublisherService creates a PublisherService
func NewPublisherService(reader ports.SessionReader, publisher ports.SessionStatePublisher) *PublisherService {
	return &PublisherService{
		now:        time.Now,
		publisher:  publisher,
		sessionGet: reader,
	}
}

func (p *PublisherService) ensure(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("session id is required")
	}
	if _, err := p.sessionGet.Get(ctx, id); err != nil {
		return err
	}
	return nil
}

// ControlStarted records a freshly started protocol client and clears
// everything published by a previous one
func (p *PublisherService) ControlStarted(ctx context.Context, id string, pid int) error {
	if err := p.ensure(ctx, id); err != nil {
		return err
	}
	logging.Logger.Info("Control process started", "id", id, "pid", pid)
	return p.publisher.ResetRuntimeState(ctx, id, pid)
}

// Initialized records the end of the startup handshake
func (p *PublisherService) Initialized(ctx context.Context, id string, initialized bool) error {
	if err := p.ensure(ctx, id); err != nil {
		return err
	}
	return p.publisher.UpdateInitialized(ctx, id, initialized)
}

// SessionNegotiated records the protocol session id
func (p *PublisherService) SessionNegotiated(ctx context.Context, id, sessionID string) error {
	if err := p.ensure(ctx, id); err != nil {
		return err
	}
	logging.Logger.Debug("Protocol session negotiated", "id", id, "session_id", sessionID)
	return p.publisher.UpdateSessionID(ctx, id, sessionID)
}

// Busy records the interactive busy flag
func (p *PublisherService) Busy(ctx context.Context, id string, busy bool) error {
	if err := p.ensure(ctx, id); err != nil {
		return err
	}
	return p.publisher.UpdateBusy(ctx, id, busy)
}

// Mode records the current mode and, when given, the selectable ones
func (p *PublisherService) Mode(ctx context.Context, id, modeID string, available []domain.Mode) error {
	if err := p.ensure(ctx, id); err != nil {
		return err
	}
	return p.publisher.UpdateMode(ctx, id, modeID, available)
}

// ToolCallStarted records an in-flight tool call. Publishing the same call
// again updates it, which is how a pending permission is raised or cleared.
func (p *PublisherService) ToolCallStarted(ctx context.Context, id, callID, title string, pendingPermission bool) error {
	if err := p.ensure(ctx, id); err != nil {
		return err
	}
	if callID == "" {
		return fmt.Errorf("tool call id is required")
	}
	return p.publisher.AddToolCall(ctx, id, domain.ToolCall{
		CreatedAt:         p.now(),
		ID:                callID,
		PendingPermission: pendingPermission,
		Title:             title,
	})
}

// ToolCallFinished removes a tool call
func (p *PublisherService) ToolCallFinished(ctx context.Context, id, callID string) error {
	if err := p.ensure(ctx, id); err != nil {
		return err
	}
	return p.publisher.RemoveToolCall(ctx, id, callID)
}

// TurnEnded clears in-flight tool calls and the busy flag
func (p *PublisherService) TurnEnded(ctx context.Context, id string) error {
	if err := p.ensure(ctx, id); err != nil {
		return err
	}
	if err := p.publisher.ClearToolCalls(ctx, id); err != nil {
		return err
	}
	return p.publisher.UpdateBusy(ctx, id, false)
}

// ParseModes parses "id:Name,id2:Name 2". A bare id uses itself as the name.
func ParseModes(value string) ([]domain.Mode, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	var modes []domain.Mode
	seen := make(map[string]bool)
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, name, found := strings.Cut(part, ":")
		id = strings.TrimSpace(id)
		name = strings.TrimSpace(name)
		if id == "" {
			return nil, fmt.Errorf("invalid mode %q: empty id", part)
		}
		if !found || name == "" {
			name = id
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate mode %q", id)
		}
		seen[id] = true
		modes = append(modes, domain.Mode{ID: id, Name: name})
	}
	return modes, nil
}
