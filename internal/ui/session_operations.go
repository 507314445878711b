package ui

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
	"github.com/ElleNajt/agent-shell-manager/internal/logging"
)

// ErrNeedsLocalTerminal is reported when an action must take over a terminal
// the dashboard does not own, as in an SSH-served dashboard
var ErrNeedsLocalTerminal = errors.New("this action needs a local terminal; open the session from a local dashboard or tmux")

// SessionController is the part of services.ControlService the dashboard drives
type SessionController interface {
	AttachCommand(ctx context.Context, id string) (*exec.Cmd, error)
	Create(ctx context.Context, cfg *domain.SessionConfig, workingDir string) (string, error)
	CycleMode(ctx context.Context, id string) error
	DeleteSessions(ctx context.Context, batch []*domain.Session) (int, error)
	Interrupt(ctx context.Context, id string) error
	Kill(ctx context.Context, id string) error
	KilledSessions(ctx context.Context) ([]*domain.Session, error)
	Lookup(ctx context.Context, id string) (*domain.Session, error)
	Restart(ctx context.Context, id string) (string, error)
	SetMode(ctx context.Context, id, modeID string) error
	ToggleLogging(ctx context.Context) (bool, error)
	TrafficView(ctx context.Context, id string) (*exec.Cmd, error)
}

// SessionNavigator is the part of services.Navigator the dashboard drives
type SessionNavigator interface {
	Navigate(ctx context.Context, session *domain.Session, switchWorkspace bool) (domain.NavigationPlan, error)
	Present(ctx context.Context, plan domain.NavigationPlan, session *domain.Session) (bool, error)
}

// SessionOperations turns control commands into tea.Cmds run off the update loop
type SessionOperations struct {
	controller      SessionController
	navigator       SessionNavigator
	switchWorkspace bool
}

// NewSessionOperations creates a SessionOperations
func NewSessionOperations(controller SessionController, navigator SessionNavigator, switchWorkspace bool) *SessionOperations {
	return &SessionOperations{
		controller:      controller,
		navigator:       navigator,
		switchWorkspace: switchWorkspace,
	}
}

func (so *SessionOperations) run(action string, fn func(ctx context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		notice, err := fn(context.Background())
		if err != nil {
			logging.Logger.Warn("Session command failed", "action", action, "error", err)
		}
		return actionResultMsg{action: action, err: err, notice: notice}
	}
}

// Create starts a session from cfg
func (so *SessionOperations) Create(cfg domain.SessionConfig, workingDir string) tea.Cmd {
	return so.run("create", func(ctx context.Context) (string, error) {
		id, err := so.controller.Create(ctx, &cfg, workingDir)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Created %s", id), nil
	})
}

// Kill terminates a session
func (so *SessionOperations) Kill(id string) tea.Cmd {
	return so.run("kill", func(ctx context.Context) (string, error) {
		return fmt.Sprintf("Killed %s", id), so.controller.Kill(ctx, id)
	})
}

// Restart recreates a session from its recovered configuration
func (so *SessionOperations) Restart(id string) tea.Cmd {
	return so.run("restart", func(ctx context.Context) (string, error) {
		newID, err := so.controller.Restart(ctx, id)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Restarted %s", newID), nil
	})
}

// DeleteSessions removes a confirmed batch of killed sessions
func (so *SessionOperations) DeleteSessions(batch []*domain.Session) tea.Cmd {
	return so.run("delete-killed", func(ctx context.Context) (string, error) {
		deleted, err := so.controller.DeleteSessions(ctx, batch)
		return fmt.Sprintf("Deleted %d killed sessions", deleted), err
	})
}

// CycleMode advances a session to its next mode
func (so *SessionOperations) CycleMode(id string) tea.Cmd {
	return so.run("cycle-mode", func(ctx context.Context) (string, error) {
		return "", so.controller.CycleMode(ctx, id)
	})
}

// SetMode switches a session into modeID
func (so *SessionOperations) SetMode(id, modeID string) tea.Cmd {
	return so.run("set-mode", func(ctx context.Context) (string, error) {
		return "", so.controller.SetMode(ctx, id, modeID)
	})
}

// Interrupt stops the agent's current turn
func (so *SessionOperations) Interrupt(id string) tea.Cmd {
	return so.run("interrupt", func(ctx context.Context) (string, error) {
		return fmt.Sprintf("Interrupted %s", id), so.controller.Interrupt(ctx, id)
	})
}

// ToggleLogging flips traffic logging
func (so *SessionOperations) ToggleLogging() tea.Cmd {
	return so.run("toggle-logging", func(ctx context.Context) (string, error) {
		enabled, err := so.controller.ToggleLogging(ctx)
		if err != nil {
			return "", err
		}
		if enabled {
			return "Traffic logging enabled", nil
		}
		return "Traffic logging disabled", nil
	})
}

// Open navigates to a session; the result tells whether it still has to be
// attached in this terminal
func (so *SessionOperations) Open(id string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		session, err := so.controller.Lookup(ctx, id)
		if err != nil {
			return navigatedMsg{err: err, id: id}
		}
		plan, err := so.navigator.Navigate(ctx, session, so.switchWorkspace)
		if err != nil {
			return navigatedMsg{err: err, id: id}
		}
		needsSurface, err := so.navigator.Present(ctx, plan, session)
		logging.Logger.Info("Navigated to session",
			"id", id,
			"workspace", plan.TargetWorkspace,
			"reuse_surface", plan.ReuseSurfaceID,
			"needs_surface", needsSurface)
		return navigatedMsg{err: err, id: id, needsSurface: needsSurface}
	}
}

// Attach suspends the program and attaches this terminal to the session
func (so *SessionOperations) Attach(id string) tea.Cmd {
	cmd, err := so.controller.AttachCommand(context.Background(), id)
	if err != nil {
		return func() tea.Msg { return detachedMsg{err: err, id: id} }
	}
	return so.exec(id, cmd)
}

// ViewTraffic suspends the program and pages through the session's traffic log
func (so *SessionOperations) ViewTraffic(id string) tea.Cmd {
	cmd, err := so.controller.TrafficView(context.Background(), id)
	if err != nil {
		return func() tea.Msg { return detachedMsg{err: err, id: id} }
	}
	return so.exec(id, cmd)
}

func (so *SessionOperations) exec(id string, cmd *exec.Cmd) tea.Cmd {
	logging.Logger.Debug("Executing command", "command", cmd.Path, "args", cmd.Args, "id", id)
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		if err != nil {
			logging.Logger.Error("Command failed", "error", err, "id", id)
		}
		return detachedMsg{err: err, id: id}
	})
}
