package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/ElleNajt/agent-shell-manager/internal/logging"
	"github.com/ElleNajt/agent-shell-manager/internal/ui"
)

// RunCmd starts the dashboard
type RunCmd struct {
	Dev             bool `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int  `help:"Seconds before error messages auto-clear (0 = settings or default)" default:"0"`
}

// Run executes the dashboard until the operator quits
func (r *RunCmd) Run(cli *CLI) error {
	settings := cli.LoadedSettings()
	if settings.Keys != nil {
		if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		logging.Logger.Debug("Custom key bindings loaded and validated")
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	logging.Logger.Info("Starting dashboard")
	container := cli.Container

	watcher, err := container.NewActivityWatcher()
	if err != nil {
		return err
	}

	opts := ui.ModelOptions{
		DevMode:    r.Dev,
		WorkingDir: workingDir,
	}
	if r.ErrorClearDelay > 0 {
		opts.ErrorClearDelay = time.Duration(r.ErrorClearDelay) * time.Second
	}
	model, runLoop := container.NewDashboard(opts)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return watcher.Run(ctx)
	})
	g.Go(func() error {
		return container.Feed.Run(ctx, watcher.Events())
	})
	g.Go(func() error {
		return runLoop(ctx)
	})
	g.Go(func() error {
		defer cancel()
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil && ctx.Err() == nil {
			logging.Logger.Error("TUI program error", "error", err)
			return fmt.Errorf("error running program: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logging.Logger.Info("Dashboard exited normally")
	return nil
}
