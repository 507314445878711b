package tmux

import (
	"context"
	"fmt"

	"github.com/ElleNajt/agent-shell-manager/internal/config"
	"github.com/ElleNajt/agent-shell-manager/internal/domain"
	"github.com/ElleNajt/agent-shell-manager/internal/logging"
	"github.com/ElleNajt/agent-shell-manager/internal/ports"
)

// ModeController switches modes by sending the agent's mode-cycle key.
// The stored mode is advanced optimistically; the agent may publish the
// real one afterwards.
type ModeController struct {
	client    ports.TmuxClient
	cycleKey  string
	publisher ports.SessionStatePublisher
}

// Compile-time interface verification
var _ ports.ModeController = (*ModeController)(nil)

// NewModeController creates a ModeController. An empty cycleKey uses the default.
func NewModeController(client ports.TmuxClient, publisher ports.SessionStatePublisher, cycleKey string) *ModeController {
	if cycleKey == "" {
		cycleKey = config.DefaultModeCycleKey
	}
	return &ModeController{client: client, cycleKey: cycleKey, publisher: publisher}
}

// CycleMode implements ModeController.CycleMode
func (m *ModeController) CycleMode(ctx context.Context, session *domain.Session) error {
	if err := m.client.SendKeys(session.ID, m.cycleKey); err != nil {
		return err
	}

	n := len(session.AvailableModes)
	if n == 0 {
		return nil
	}
	current := session.ModeIndex(session.ModeID)
	next := session.AvailableModes[(current+1)%n].ID
	return m.publisher.UpdateMode(ctx, session.ID, next, nil)
}

// SetMode implements ModeController.SetMode
func (m *ModeController) SetMode(ctx context.Context, session *domain.Session, modeID string) error {
	target := session.ModeIndex(modeID)
	if target < 0 {
		return fmt.Errorf("%s: %w", modeID, domain.ErrUnknownMode)
	}
	current := session.ModeIndex(session.ModeID)
	if current < 0 {
		current = 0
	}

	n := len(session.AvailableModes)
	presses := (target - current + n) % n
	if presses == 0 {
		return nil
	}

	keys := make([]string, presses)
	for i := range keys {
		keys[i] = m.cycleKey
	}
	logging.Logger.Debug("Cycling to mode", "id", session.ID, "mode", modeID, "presses", presses)
	if err := m.client.SendKeys(session.ID, keys...); err != nil {
		return err
	}
	return m.publisher.UpdateMode(ctx, session.ID, modeID, nil)
}
