package tmux

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/ElleNajt/agent-shell-manager/internal/logging"
	"github.com/ElleNajt/agent-shell-manager/internal/ports"
)

// DefaultClient runs the tmux binary
type DefaultClient struct {
	binary string
}

// Compile-time interface verification
var _ ports.TmuxClient = (*DefaultClient)(nil)

// Local error aliases
var (
	ErrSessionExists   = ports.ErrTmuxSessionExists
	ErrSessionNotFound = ports.ErrTmuxSessionNotFound
)

const fieldSep = "\t"

// NewClient creates a new DefaultClient instance
func NewClient() *DefaultClient {
	return &DefaultClient{binary: "tmux"}
}

func (c *DefaultClient) command(args ...string) *exec.Cmd {
	return exec.Command(c.binary, args...)
}

// output runs a tmux query. A missing server is reported as empty output.
func (c *DefaultClient) output(args ...string) (string, error) {
	out, err := c.command(args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", err
	}
	return string(out), nil
}

// CreateSession starts a detached session running command in workingDir.
// The pane is kept after the command exits so its death stays observable.
func (c *DefaultClient) CreateSession(name, workingDir string, env []string, command ...string) error {
	if c.SessionExists(name) {
		return ErrSessionExists
	}

	args := []string{"new-session", "-d", "-s", name}
	if workingDir != "" {
		args = append(args, "-c", workingDir)
	}
	for _, e := range env {
		args = append(args, "-e", e)
	}
	args = append(args, command...)

	logging.Logger.Info("Creating tmux session", "name", name, "working_dir", workingDir, "command", command)
	if out, err := c.command(args...).CombinedOutput(); err != nil {
		return fmt.Errorf("failed to create tmux session: %w (output: %s)", err, strings.TrimSpace(string(out)))
	}

	if err := c.command("set-option", "-t", name, "remain-on-exit", "on").Run(); err != nil {
		logging.Logger.Warn("Failed to set remain-on-exit", "session", name, "error", err)
	}

	// Wait for session to be ready
	timeout := time.After(2 * time.Second)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if c.SessionExists(name) {
			return nil
		}
		select {
		case <-timeout:
			return fmt.Errorf("timeout waiting for session %s to be created", name)
		case <-ticker.C:
		}
	}
}

// SessionExists checks if the tmux session exists
func (c *DefaultClient) SessionExists(name string) bool {
	return c.command("has-session", "-t", "="+name).Run() == nil
}

// ListSessions returns the names of all tmux sessions
func (c *DefaultClient) ListSessions() ([]string, error) {
	out, err := c.output("list-sessions", "-F", "#{session_name}")
	if err != nil {
		return nil, fmt.Errorf("failed to list tmux sessions: %w", err)
	}

	var names []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}

// ListPanes returns every pane of every session
func (c *DefaultClient) ListPanes() ([]ports.TmuxPane, error) {
	format := strings.Join([]string{"#{session_name}", "#{pane_pid}", "#{pane_dead}", "#{pane_current_path}"}, fieldSep)
	out, err := c.output("list-panes", "-a", "-F", format)
	if err != nil {
		return nil, fmt.Errorf("failed to list tmux panes: %w", err)
	}
	return parsePanes(out), nil
}

// ListClients returns every attached client
func (c *DefaultClient) ListClients() ([]ports.TmuxClientInfo, error) {
	out, err := c.output("list-clients", "-F", "#{client_tty}"+fieldSep+"#{session_name}")
	if err != nil {
		return nil, fmt.Errorf("failed to list tmux clients: %w", err)
	}
	return parseClients(out), nil
}

// KillSession terminates the tmux session
func (c *DefaultClient) KillSession(name string) error {
	if !c.SessionExists(name) {
		return ErrSessionNotFound
	}
	return c.command("kill-session", "-t", "="+name).Run()
}

// SwitchClient shows sessionName on the client at tty. An empty tty
// switches the client running this process.
func (c *DefaultClient) SwitchClient(tty, sessionName string) error {
	args := []string{"switch-client"}
	if tty != "" {
		args = append(args, "-c", tty)
	}
	args = append(args, "-t", "="+sessionName)

	if out, err := c.command(args...).CombinedOutput(); err != nil {
		return fmt.Errorf("failed to switch client to %s: %w (output: %s)", sessionName, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// InTmux reports whether this process runs inside a tmux client
func (c *DefaultClient) InTmux() bool {
	return os.Getenv("TMUX") != ""
}

// AttachCommand returns an exec.Cmd configured for attaching to a session.
// This is useful for integration with frameworks like Bubble Tea's tea.ExecProcess.
// It unsets TMUX and TMUX_PANE environment variables to allow attaching from within tmux.
func (c *DefaultClient) AttachCommand(sessionName string) *exec.Cmd {
	cmd := c.command("attach-session", "-t", "="+sessionName)

	var cleanEnv []string
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, "TMUX=") && !strings.HasPrefix(e, "TMUX_PANE=") {
			cleanEnv = append(cleanEnv, e)
		}
	}
	cmd.Env = cleanEnv

	return cmd
}

// SendKeys sends keystrokes to the specified tmux session
func (c *DefaultClient) SendKeys(sessionName string, keys ...string) error {
	args := append([]string{"send-keys", "-t", "=" + sessionName + ":"}, keys...)
	if out, err := c.command(args...).CombinedOutput(); err != nil {
		return fmt.Errorf("failed to send keys to %s: %w (output: %s)", sessionName, err, strings.TrimSpace(string(out)))
	}
	return nil
}

func parsePanes(out string) []ports.TmuxPane {
	var panes []ports.TmuxPane
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, fieldSep, 4)
		if len(fields) < 3 {
			logging.Logger.Debug("Skipping malformed pane line", "line", line)
			continue
		}
		pid, err := strconv.Atoi(fields[1])
		if err != nil {
			logging.Logger.Debug("Skipping pane with invalid pid", "line", line)
			continue
		}
		pane := ports.TmuxPane{
			Dead:        fields[2] == "1",
			PID:         pid,
			SessionName: fields[0],
		}
		if len(fields) == 4 {
			pane.CurrentPath = fields[3]
		}
		panes = append(panes, pane)
	}
	return panes
}

func parseClients(out string) []ports.TmuxClientInfo {
	var clients []ports.TmuxClientInfo
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		tty, session, ok := strings.Cut(line, fieldSep)
		if !ok {
			continue
		}
		clients = append(clients, ports.TmuxClientInfo{SessionName: session, TTY: tty})
	}
	return clients
}
