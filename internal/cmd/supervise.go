package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ElleNajt/agent-shell-manager/internal/config"
	"github.com/ElleNajt/agent-shell-manager/internal/logging"
	"github.com/ElleNajt/agent-shell-manager/internal/supervisor"
)

// SuperviseCmd is the process a session pane runs. It starts the agent under
// a pseudo terminal, publishes its pid and records output activity.
type SuperviseCmd struct {
	Command            []string `arg:"" passthrough:"" help:"Agent command and arguments"`
	PublishesHandshake bool     `help:"The agent publishes initialized and session itself"`
	Session            string   `help:"Session identifier" env:"ASM_SESSION_ID" required:""`
}

// Run executes the supervisor and exits with the agent's exit code
func (s *SuperviseCmd) Run(cli *CLI) error {
	command := s.Command
	if len(command) > 0 && command[0] == "--" {
		command = command[1:]
	}

	opts := supervisor.Options{
		ActivityDir:        config.GetActivityDir(),
		PublishesHandshake: s.PublishesHandshake,
		SessionID:          s.Session,
		TrafficDir:         config.GetTrafficDir(),
	}
	if len(command) > 0 {
		opts.Command = command[0]
		opts.Args = command[1:]
	}
	settings := cli.LoadedSettings()
	if settings.TrafficLogMaxSizeMB != nil {
		opts.TrafficMaxSizeMB = *settings.TrafficLogMaxSizeMB
	}
	if settings.TrafficLogBackups != nil {
		opts.TrafficBackups = *settings.TrafficLogBackups
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	logging.Logger.Info("Supervising agent", "session", s.Session, "command", opts.Command)
	code, err := supervisor.New(opts, cli.Container.Publisher, cli.Container.Repository).Run(ctx)
	if err != nil {
		return err
	}
	logging.Logger.Info("Agent exited", "session", s.Session, "exit_code", code)

	if code != 0 {
		stop()
		cli.Close()
		os.Exit(code)
	}
	return nil
}
