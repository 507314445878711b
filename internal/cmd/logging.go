package cmd

import (
	"context"
	"fmt"

	"github.com/ElleNajt/agent-shell-manager/internal/config"
	"github.com/ElleNajt/agent-shell-manager/internal/domain"
	"github.com/ElleNajt/agent-shell-manager/internal/logging"
)

// LoggingCmd shows or changes protocol traffic logging for all sessions
type LoggingCmd struct {
	State string `arg:"" optional:"" enum:"status,on,off,toggle" default:"status" help:"status, on, off or toggle"`
}

// Run executes the logging command
func (l *LoggingCmd) Run(cli *CLI) error {
	ctx := context.Background()
	repo := cli.Container.Repository

	var enabled bool
	var err error
	switch l.State {
	case "toggle":
		enabled, err = cli.Container.NewControlService(nil).ToggleLogging(ctx)
	case "on", "off":
		enabled = l.State == "on"
		err = repo.SetFlag(ctx, domain.FlagTrafficLogging, enabled)
	default:
		enabled, err = repo.GetFlag(ctx, domain.FlagTrafficLogging)
	}
	if err != nil {
		return fmt.Errorf("failed to update traffic logging: %w", err)
	}
	logging.Logger.Debug("Traffic logging", "state", l.State, "enabled", enabled)

	if enabled {
		fmt.Printf("Traffic logging enabled (logs in %s)\n", config.GetTrafficDir())
	} else {
		fmt.Println("Traffic logging disabled")
	}
	return nil
}
