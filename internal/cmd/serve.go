package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/ElleNajt/agent-shell-manager/internal/config"
	"github.com/ElleNajt/agent-shell-manager/internal/server"
	"github.com/ElleNajt/agent-shell-manager/internal/ui"
)

// ServeCmd serves the dashboard over SSH
type ServeCmd struct {
	AuthorizedKeys string `help:"Authorized keys file (defaults to ~/.ssh/authorized_keys)" type:"path"`
	Host           string `help:"Host to listen on (overrides ssh_host)"`
	Port           int    `help:"Port to listen on (overrides ssh_port)"`
}

// Run executes the SSH server until interrupted
func (s *ServeCmd) Run(cli *CLI) error {
	settings := cli.LoadedSettings()
	host := s.Host
	if host == "" {
		host = settings.SSHHost
	}
	if host == "" {
		host = config.DefaultSSHHost
	}
	port := s.Port
	if port == 0 && settings.SSHPort != nil {
		port = *settings.SSHPort
	}
	if port == 0 {
		port = config.DefaultSSHPort
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	container := cli.Container
	watcher, err := container.NewActivityWatcher()
	if err != nil {
		return err
	}

	srv, err := server.NewServer(server.Options{
		AuthorizedKeysPath: s.AuthorizedKeys,
		Host:               host,
		HostKeyDir:         config.GetSSHDir(),
		Port:               port,
	}, func() (tea.Model, func(ctx context.Context) error) {
		model, run := container.NewDashboard(ui.ModelOptions{
			Remote:     true,
			WorkingDir: workingDir,
		})
		return model, run
	})
	if err != nil {
		return err
	}

	fmt.Printf("Serving dashboard on ssh://%s\n", srv.Address())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return watcher.Run(ctx)
	})
	g.Go(func() error {
		return container.Feed.Run(ctx, watcher.Events())
	})
	g.Go(func() error {
		return srv.Start(ctx)
	})
	return g.Wait()
}
