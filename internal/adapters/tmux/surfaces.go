package tmux

import (
	"context"

	"github.com/ElleNajt/agent-shell-manager/internal/ports"
)

// SurfaceLocator uses attached tmux clients as surfaces, identified by tty
type SurfaceLocator struct {
	client   ports.TmuxClient
	registry ports.SessionRegistry
}

// Compile-time interface verification
var _ ports.SurfaceLocator = (*SurfaceLocator)(nil)

// NewSurfaceLocator creates a SurfaceLocator
func NewSurfaceLocator(client ports.TmuxClient, registry ports.SessionRegistry) *SurfaceLocator {
	return &SurfaceLocator{client: client, registry: registry}
}

// VisibleSurface implements SurfaceLocator.VisibleSurface
func (s *SurfaceLocator) VisibleSurface(ctx context.Context, sessionID string) (string, bool, error) {
	clients, err := s.client.ListClients()
	if err != nil {
		return "", false, err
	}
	for _, c := range clients {
		if c.SessionName == sessionID {
			return c.TTY, true, nil
		}
	}
	return "", false, nil
}

// AgentSurface implements SurfaceLocator.AgentSurface
func (s *SurfaceLocator) AgentSurface(ctx context.Context, excludeID string) (string, bool, error) {
	clients, err := s.client.ListClients()
	if err != nil {
		return "", false, err
	}
	agents, err := agentSet(ctx, s.registry)
	if err != nil {
		return "", false, err
	}
	for _, c := range clients {
		if c.SessionName != excludeID && agents[c.SessionName] {
			return c.TTY, true, nil
		}
	}
	return "", false, nil
}

// Present implements SurfaceLocator.Present
func (s *SurfaceLocator) Present(ctx context.Context, surfaceID, sessionID string) error {
	return s.client.SwitchClient(surfaceID, sessionID)
}
