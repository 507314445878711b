// Package supervisor runs an agent inside a session's terminal pane. It
// relays the terminal, publishes the control process and handshake, marks
// output activity and records traffic.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/creack/pty"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/ElleNajt/agent-shell-manager/internal/config"
	"github.com/ElleNajt/agent-shell-manager/internal/logging"
)

// DefaultActivityInterval bounds how often the activity marker is rewritten
const DefaultActivityInterval = 250 * time.Millisecond

// ControlPublisher records what the supervisor learns about its agent
type ControlPublisher interface {
	ControlStarted(ctx context.Context, id string, pid int) error
	Initialized(ctx context.Context, id string, initialized bool) error
	SessionNegotiated(ctx context.Context, id, sessionID string) error
}

// Options configures one supervised agent
type Options struct {
	ActivityDir        string
	ActivityInterval   time.Duration
	Args               []string
	Command            string
	PublishesHandshake bool // The agent publishes initialized and session itself
	SessionID          string
	Stdin              io.Reader
	Stdout             io.Writer
	TrafficBackups     int
	TrafficDir         string
	TrafficMaxSizeMB   int
}

// Supervisor runs one agent process under a pseudo terminal
type Supervisor struct {
	activity  *rate.Limiter
	handshake sync.Once
	opts      Options
	publisher ControlPublisher
	traffic   *trafficRecorder
}

// New creates a Supervisor. flags may be nil, which disables traffic logging.
func New(opts Options, publisher ControlPublisher, flags FlagReader) *Supervisor {
	if opts.ActivityInterval <= 0 {
		opts.ActivityInterval = DefaultActivityInterval
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.TrafficMaxSizeMB <= 0 {
		opts.TrafficMaxSizeMB = config.DefaultTrafficLogMaxSizeMB
	}
	if opts.TrafficBackups <= 0 {
		opts.TrafficBackups = config.DefaultTrafficLogBackups
	}

	s := &Supervisor{
		activity:  rate.NewLimiter(rate.Every(opts.ActivityInterval), 1),
		opts:      opts,
		publisher: publisher,
	}
	if opts.TrafficDir != "" {
		s.traffic = newTrafficRecorder(config.TrafficLogPath(opts.TrafficDir, opts.SessionID), opts.TrafficMaxSizeMB, opts.TrafficBackups, flags)
	}
	return s
}

// Run starts the agent and relays the terminal until it exits. It returns
// the agent's exit code. Cancelling ctx terminates the agent.
func (s *Supervisor) Run(ctx context.Context) (int, error) {
	if s.opts.Command == "" {
		return 1, fmt.Errorf("no agent command given")
	}
	if s.opts.ActivityDir != "" {
		if err := os.MkdirAll(s.opts.ActivityDir, 0755); err != nil {
			return 1, fmt.Errorf("failed to create activity directory: %w", err)
		}
	}
	if s.traffic != nil {
		defer s.traffic.Close()
	}

	cmd := exec.Command(s.opts.Command, s.opts.Args...)
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return 1, fmt.Errorf("failed to start %s: %w", s.opts.Command, err)
	}
	defer ptmx.Close()

	logging.Logger.Info("Agent started", "session", s.opts.SessionID, "command", s.opts.Command, "pid", cmd.Process.Pid)
	if err := s.publisher.ControlStarted(ctx, s.opts.SessionID, cmd.Process.Pid); err != nil {
		logging.Logger.Warn("Failed to publish control process", "error", err)
	}

	restore := s.prepareTerminal(ptmx)
	defer restore()

	exited := make(chan struct{})
	defer close(exited)
	go func() {
		select {
		case <-ctx.Done():
			_ = cmd.Process.Signal(syscall.SIGTERM)
		case <-exited:
		}
	}()

	go func() {
		_, _ = io.Copy(ptmx, &inputTap{s: s, r: s.opts.Stdin})
	}()

	// Returns once the pty reports EIO after the agent exits
	_, _ = io.Copy(&outputTap{s: s, w: s.opts.Stdout}, ptmx)

	err = cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		logging.Logger.Info("Agent exited", "session", s.opts.SessionID, "code", exitErr.ExitCode())
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return 1, err
	}
	logging.Logger.Info("Agent exited", "session", s.opts.SessionID, "code", 0)
	return 0, nil
}

// prepareTerminal puts a terminal stdin into raw mode and keeps the pty size
// in sync with it. It is a no-op when stdin is not a terminal.
func (s *Supervisor) prepareTerminal(ptmx *os.File) func() {
	stdin, ok := s.opts.Stdin.(*os.File)
	if !ok || !term.IsTerminal(stdin.Fd()) {
		return func() {}
	}

	resize := make(chan os.Signal, 1)
	signal.Notify(resize, syscall.SIGWINCH)
	go func() {
		for range resize {
			if err := pty.InheritSize(stdin, ptmx); err != nil {
				logging.Logger.Debug("Failed to resize pty", "error", err)
			}
		}
	}()
	resize <- syscall.SIGWINCH

	state, err := term.MakeRaw(stdin.Fd())
	if err != nil {
		logging.Logger.Warn("Failed to set raw mode", "error", err)
	}

	return func() {
		signal.Stop(resize)
		close(resize)
		if state != nil {
			_ = term.Restore(stdin.Fd(), state)
		}
	}
}

func (s *Supervisor) observeOutput(p []byte) {
	if s.opts.ActivityDir != "" && s.activity.Allow() {
		s.touchMarker()
	}
	if !s.opts.PublishesHandshake {
		s.handshake.Do(s.publishHandshake)
	}
	if s.traffic != nil {
		s.traffic.record("out", p)
	}
}

// touchMarker rewrites the marker so watchers see a write
func (s *Supervisor) touchMarker() {
	path := config.ActivityMarkerPath(s.opts.ActivityDir, s.opts.SessionID)
	stamp := time.Now().UTC().Format(time.RFC3339Nano) + "\n"
	if err := os.WriteFile(path, []byte(stamp), 0644); err != nil {
		logging.Logger.Debug("Failed to touch activity marker", "path", filepath.Base(path), "error", err)
	}
}

// publishHandshake stands in for agents that never publish one; the first
// output shows the agent is up and gets a locally generated session id
func (s *Supervisor) publishHandshake() {
	ctx := context.Background()
	if err := s.publisher.Initialized(ctx, s.opts.SessionID, true); err != nil {
		logging.Logger.Warn("Failed to publish initialized", "error", err)
	}
	if err := s.publisher.SessionNegotiated(ctx, s.opts.SessionID, uuid.NewString()); err != nil {
		logging.Logger.Warn("Failed to publish session id", "error", err)
	}
}

type outputTap struct {
	s *Supervisor
	w io.Writer
}

func (t *outputTap) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if n > 0 {
		t.s.observeOutput(p[:n])
	}
	return n, err
}

type inputTap struct {
	s *Supervisor
	r io.Reader
}

func (t *inputTap) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if n > 0 && t.s.traffic != nil {
		t.s.traffic.record("in", p[:n])
	}
	return n, err
}
