package services

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/ElleNajt/agent-shell-manager/internal/config"
	"github.com/ElleNajt/agent-shell-manager/internal/domain"
	"github.com/ElleNajt/agent-shell-manager/internal/logging"
	"github.com/ElleNajt/agent-shell-manager/internal/ports"
)

// ControlService implements the session control commands. Every command
// validates its target first and aborts before any effect when the session
// no longer resolves. Every command that reaches its effect triggers a refresh.
type ControlService struct {
	agents    *config.AgentCatalog
	lifecycle ports.SessionLifecycle
	modes     ports.ModeController
	refresher Refresher
	registry  ports.SessionRegistry
}

// NewControlService creates a ControlService. modes may be nil.
func NewControlService(
	registry ports.SessionRegistry,
	lifecycle ports.SessionLifecycle,
	modes ports.ModeController,
	agents *config.AgentCatalog,
	refresher Refresher,
) *ControlService {
	if refresher == nil {
		refresher = NopRefresher()
	}
	return &ControlService{
		agents:    agents,
		lifecycle: lifecycle,
		modes:     modes,
		refresher: refresher,
		registry:  registry,
	}
}

// Lookup resolves a session for a command, reporting ErrSessionGone when it
// no longer exists
func (s *ControlService) Lookup(ctx context.Context, id string) (*domain.Session, error) {
	session, ok, err := s.registry.Resolve(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session %s: %w", id, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, domain.ErrSessionGone)
	}
	return session, nil
}

// Create starts a new session; a nil cfg uses the default agent in workingDir
func (s *ControlService) Create(ctx context.Context, cfg *domain.SessionConfig, workingDir string) (string, error) {
	var effective domain.SessionConfig
	if cfg != nil {
		effective = *cfg
	} else {
		effective = s.agents.Default().SessionConfig(workingDir)
	}
	if effective.WorkingDir == "" {
		effective.WorkingDir = workingDir
	}

	logging.Logger.Info("Creating session", "agent", effective.ConfigName, "working_dir", effective.WorkingDir)
	id, err := s.lifecycle.Create(ctx, effective)
	s.refresher.Trigger()
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// Kill terminates the session's processes. Killing an already-dead session
// is a no-op. The refresh is delayed so the death is observed.
func (s *ControlService) Kill(ctx context.Context, id string) error {
	session, err := s.Lookup(ctx, id)
	if err != nil {
		return err
	}

	defer s.refresher.TriggerAfter(KillRefreshDelay)

	if domain.Classify(session) == domain.StatusKilled {
		logging.Logger.Debug("Session already dead, nothing to kill", "id", id)
		return nil
	}
	if err := s.lifecycle.Terminate(ctx, session); err != nil {
		return fmt.Errorf("failed to kill session %s: %w", id, err)
	}

	logging.Logger.Info("Session killed", "id", id)
	return nil
}

// RestartConfig recovers the configuration a session was created with from
// its display name, falling back to the default agent
func (s *ControlService) RestartConfig(session *domain.Session) (domain.SessionConfig, bool) {
	agent, matched := s.agents.MatchDisplayName(session.DisplayName)
	if !matched {
		agent = s.agents.Default()
	}
	cfg := agent.SessionConfig(session.WorkingDir)
	cfg.ID = session.ID
	return cfg, matched
}

// Restart replaces the session with a fresh one created from the recovered
// configuration. The identifier is kept, so the activity history carries over.
func (s *ControlService) Restart(ctx context.Context, id string) (string, error) {
	session, err := s.Lookup(ctx, id)
	if err != nil {
		return "", err
	}

	cfg, matched := s.RestartConfig(session)
	if !matched {
		logging.Logger.Info("No creation configuration matches, restarting with default", "id", id, "display_name", session.DisplayName)
	}
	if cfg.Command == "" {
		return "", fmt.Errorf("cannot restart session %s with agent %q: %w", id, cfg.ConfigName, domain.ErrNoCommand)
	}

	defer s.refresher.Trigger()

	if domain.Classify(session) != domain.StatusKilled {
		if err := s.lifecycle.Terminate(ctx, session); err != nil {
			return "", fmt.Errorf("failed to stop session %s: %w", id, err)
		}
	}
	if err := s.lifecycle.Destroy(ctx, session); err != nil {
		return "", fmt.Errorf("failed to remove session %s: %w", id, err)
	}

	newID, err := s.lifecycle.Create(ctx, cfg)
	if err != nil {
		return "", fmt.Errorf("failed to recreate session %s: %w", id, err)
	}

	logging.Logger.Info("Session restarted", "id", id, "new_id", newID, "agent", cfg.ConfigName)
	return newID, nil
}

// KilledSessions returns every session currently classified as killed.
// It reports ErrNoKilledSessions when there are none.
func (s *ControlService) KilledSessions(ctx context.Context) ([]*domain.Session, error) {
	ids, err := s.registry.ListIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	var killed []*domain.Session
	for _, id := range ids {
		session, ok, err := s.registry.Resolve(ctx, id)
		if err != nil || !ok {
			continue
		}
		if domain.Classify(session) == domain.StatusKilled {
			killed = append(killed, session)
		}
	}

	if len(killed) == 0 {
		return nil, domain.ErrNoKilledSessions
	}
	return killed, nil
}

// DeleteKilled removes every killed session in one batch and refreshes once
func (s *ControlService) DeleteKilled(ctx context.Context) (int, error) {
	killed, err := s.KilledSessions(ctx)
	if err != nil {
		return 0, err
	}
	return s.DeleteSessions(ctx, killed)
}

// DeleteSessions removes a batch chosen earlier, typically the one an operator
// confirmed. Sessions that came back to life are left alone.
func (s *ControlService) DeleteSessions(ctx context.Context, batch []*domain.Session) (int, error) {
	if len(batch) == 0 {
		return 0, domain.ErrNoKilledSessions
	}

	var errs []error
	deleted := 0
	for _, candidate := range batch {
		session, ok, err := s.registry.Resolve(ctx, candidate.ID)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !ok {
			continue
		}
		if domain.Classify(session) != domain.StatusKilled {
			logging.Logger.Info("Session is alive again, not deleting", "id", session.ID)
			continue
		}
		if err := s.lifecycle.Destroy(ctx, session); err != nil {
			errs = append(errs, fmt.Errorf("failed to delete %s: %w", session.ID, err))
			continue
		}
		deleted++
	}

	logging.Logger.Info("Deleted killed sessions", "count", deleted)
	s.refresher.Trigger()
	return deleted, errors.Join(errs...)
}

// SetMode switches the session into modeID. Without mode support it is a no-op.
func (s *ControlService) SetMode(ctx context.Context, id, modeID string) error {
	session, err := s.Lookup(ctx, id)
	if err != nil {
		return err
	}
	if s.modes == nil {
		logging.Logger.Debug("Mode control not supported, ignoring set mode", "id", id)
		return nil
	}
	if session.ModeIndex(modeID) < 0 {
		return fmt.Errorf("%s: %w", modeID, domain.ErrUnknownMode)
	}

	err = s.modes.SetMode(ctx, session, modeID)
	s.refresher.Trigger()
	if err != nil {
		return fmt.Errorf("failed to set mode: %w", err)
	}
	return nil
}

// CycleMode advances the session to its next mode. Without mode support it is a no-op.
func (s *ControlService) CycleMode(ctx context.Context, id string) error {
	session, err := s.Lookup(ctx, id)
	if err != nil {
		return err
	}
	if s.modes == nil {
		logging.Logger.Debug("Mode control not supported, ignoring cycle mode", "id", id)
		return nil
	}

	err = s.modes.CycleMode(ctx, session)
	s.refresher.Trigger()
	if err != nil {
		return fmt.Errorf("failed to cycle mode: %w", err)
	}
	return nil
}

// Interrupt asks the agent to stop its current turn
func (s *ControlService) Interrupt(ctx context.Context, id string) error {
	session, err := s.Lookup(ctx, id)
	if err != nil {
		return err
	}
	err = s.lifecycle.Interrupt(ctx, session)
	s.refresher.Trigger()
	if err != nil {
		return fmt.Errorf("failed to interrupt session %s: %w", id, err)
	}
	return nil
}

// TrafficView returns the command displaying the session's protocol traffic
func (s *ControlService) TrafficView(ctx context.Context, id string) (*exec.Cmd, error) {
	session, err := s.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	cmd, err := s.lifecycle.TrafficViewCommand(session)
	s.refresher.Trigger()
	if err != nil {
		return nil, err
	}
	return cmd, nil
}

// ToggleLogging flips traffic logging for every session and returns the new state
func (s *ControlService) ToggleLogging(ctx context.Context) (bool, error) {
	enabled, err := s.lifecycle.ToggleLogging(ctx)
	s.refresher.Trigger()
	if err != nil {
		return false, fmt.Errorf("failed to toggle traffic logging: %w", err)
	}
	logging.Logger.Info("Traffic logging toggled", "enabled", enabled)
	return enabled, nil
}

// AttachCommand returns the command attaching a terminal to the session
func (s *ControlService) AttachCommand(ctx context.Context, id string) (*exec.Cmd, error) {
	session, err := s.Lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.lifecycle.AttachCommand(session), nil
}
