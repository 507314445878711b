package tmux

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"

	"github.com/ElleNajt/agent-shell-manager/internal/config"
	"github.com/ElleNajt/agent-shell-manager/internal/domain"
	"github.com/ElleNajt/agent-shell-manager/internal/logging"
	"github.com/ElleNajt/agent-shell-manager/internal/ports"
)

// LifecycleOptions configures where sessions keep their side files and how
// they are started
type LifecycleOptions struct {
	ActivityDir  string
	Executable   string // Binary started in the pane as "<exe> supervise"
	HomeDir      string
	InterruptKey string
	TrafficDir   string
}

// Lifecycle creates and destroys agent sessions as tmux sessions running a supervisor
type Lifecycle struct {
	client ports.TmuxClient
	now    func() time.Time
	opts   LifecycleOptions
	repo   ports.SessionRepository
	signal func(pid int, sig unix.Signal) error
}

// Compile-time interface verification
var _ ports.SessionLifecycle = (*Lifecycle)(nil)

// NewLifecycle creates a Lifecycle
func NewLifecycle(client ports.TmuxClient, repo ports.SessionRepository, opts LifecycleOptions) *Lifecycle {
	if opts.Executable == "" {
		exe, err := os.Executable()
		if err != nil {
			logging.Logger.Warn("Could not get executable path, using PATH", "error", err)
			exe = "agent-shell-manager"
		}
		opts.Executable = exe
	}
	if opts.InterruptKey == "" {
		opts.InterruptKey = config.DefaultInterruptKey
	}

	return &Lifecycle{
		client: client,
		now:    time.Now,
		opts:   opts,
		repo:   repo,
		signal: unix.Kill,
	}
}

// Create implements SessionLifecycle.Create
func (l *Lifecycle) Create(ctx context.Context, cfg domain.SessionConfig) (string, error) {
	if cfg.Command == "" {
		return "", fmt.Errorf("agent %q: %w", cfg.ConfigName, domain.ErrNoCommand)
	}

	id := cfg.ID
	if id == "" {
		var err error
		if id, err = l.nextIdentifier(ctx, cfg); err != nil {
			return "", err
		}
	}

	session := domain.Session{
		AgentKind:   cfg.Kind,
		ConfigName:  cfg.ConfigName,
		CreatedAt:   l.now().UTC(),
		DisplayName: domain.DisplayNameFor(cfg.ConfigName, cfg.WorkingDir),
		ID:          id,
		ModeID:      cfg.DefaultMode,
		WorkingDir:  cfg.WorkingDir,
	}
	if err := l.repo.Add(ctx, session); err != nil {
		return "", err
	}

	command := []string{l.opts.Executable, "supervise", "--session", id}
	if cfg.PublishesHandshake {
		command = append(command, "--publishes-handshake")
	}
	command = append(command, "--", cfg.Command)
	command = append(command, cfg.Args...)

	if err := l.client.CreateSession(id, cfg.WorkingDir, l.sessionEnv(id, cfg.Env), command...); err != nil {
		if delErr := l.repo.Delete(ctx, id); delErr != nil {
			logging.Logger.Warn("Failed to roll back session record", "id", id, "error", delErr)
		}
		return "", err
	}

	logging.Logger.Info("Session created", "id", id, "display_name", session.DisplayName)
	return id, nil
}

// nextIdentifier picks the first free identifier derived from the agent kind and directory
func (l *Lifecycle) nextIdentifier(ctx context.Context, cfg domain.SessionConfig) (string, error) {
	base := domain.BaseIdentifier(cfg.Kind, cfg.WorkingDir)
	for n := 1; ; n++ {
		candidate := domain.NthIdentifier(base, n)
		_, err := l.repo.Get(ctx, candidate)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrSessionNotFound) {
			return "", err
		}
		if l.client.SessionExists(candidate) {
			continue
		}
		return candidate, nil
	}
}

func (l *Lifecycle) sessionEnv(id string, extra []string) []string {
	env := []string{config.EnvSessionID + "=" + id}
	if l.opts.HomeDir != "" {
		env = append(env, config.EnvHome+"="+l.opts.HomeDir)
	}
	if os.Getenv(logging.EnvDebug) == "1" {
		env = append(env, logging.EnvDebug+"=1")
		if debugFile := os.Getenv(logging.EnvDebugFile); debugFile != "" {
			env = append(env, logging.EnvDebugFile+"="+debugFile)
		}
		if maxLogFiles := os.Getenv(logging.EnvMaxLogFiles); maxLogFiles != "" {
			env = append(env, logging.EnvMaxLogFiles+"="+maxLogFiles)
		}
	}
	return append(env, extra...)
}

// Terminate implements SessionLifecycle.Terminate
func (l *Lifecycle) Terminate(ctx context.Context, session *domain.Session) error {
	if session.ControlProcess.Alive() {
		if err := l.signal(session.ControlProcess.PID, unix.SIGTERM); err != nil && !errors.Is(err, unix.ESRCH) {
			logging.Logger.Warn("Failed to signal control process", "id", session.ID, "pid", session.ControlProcess.PID, "error", err)
		}
	}

	if err := l.client.KillSession(session.ID); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return fmt.Errorf("failed to kill tmux session: %w", err)
	}
	return nil
}

// Destroy implements SessionLifecycle.Destroy
func (l *Lifecycle) Destroy(ctx context.Context, session *domain.Session) error {
	if err := l.client.KillSession(session.ID); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return fmt.Errorf("failed to kill tmux session: %w", err)
	}
	if err := l.repo.Delete(ctx, session.ID); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return err
	}

	for _, path := range l.sideFiles(session.ID) {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logging.Logger.Warn("Failed to remove session file", "path", path, "error", err)
		}
	}
	return nil
}

// sideFiles lists the activity marker and traffic logs, rotated ones included
func (l *Lifecycle) sideFiles(id string) []string {
	var files []string
	if l.opts.ActivityDir != "" {
		files = append(files, config.ActivityMarkerPath(l.opts.ActivityDir, id))
	}
	if l.opts.TrafficDir != "" {
		files = append(files, config.TrafficLogPath(l.opts.TrafficDir, id))
		rotated, _ := filepath.Glob(filepath.Join(l.opts.TrafficDir, id+"-[0-9][0-9][0-9][0-9]-*.log"))
		files = append(files, rotated...)
	}
	return files
}

// Interrupt implements SessionLifecycle.Interrupt
func (l *Lifecycle) Interrupt(ctx context.Context, session *domain.Session) error {
	return l.client.SendKeys(session.ID, l.opts.InterruptKey)
}

// ToggleLogging implements SessionLifecycle.ToggleLogging
func (l *Lifecycle) ToggleLogging(ctx context.Context) (bool, error) {
	enabled, err := l.repo.GetFlag(ctx, domain.FlagTrafficLogging)
	if err != nil {
		return false, err
	}
	if err := l.repo.SetFlag(ctx, domain.FlagTrafficLogging, !enabled); err != nil {
		return false, err
	}
	return !enabled, nil
}

// TrafficViewCommand implements SessionLifecycle.TrafficViewCommand
func (l *Lifecycle) TrafficViewCommand(session *domain.Session) (*exec.Cmd, error) {
	path := config.TrafficLogPath(l.opts.TrafficDir, session.ID)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no traffic recorded for %s, enable traffic logging first", session.ID)
	}

	if pager := os.Getenv("PAGER"); pager != "" {
		return exec.Command(pager, path), nil
	}
	return exec.Command("less", "-R", "+G", path), nil
}

// AttachCommand implements SessionLifecycle.AttachCommand
func (l *Lifecycle) AttachCommand(session *domain.Session) *exec.Cmd {
	return l.client.AttachCommand(session.ID)
}
