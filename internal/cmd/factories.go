package cmd

import (
	"context"
	"os"
	"time"

	adapterprocess "github.com/ElleNajt/agent-shell-manager/internal/adapters/process"
	adapterstorage "github.com/ElleNajt/agent-shell-manager/internal/adapters/storage"
	adaptertmux "github.com/ElleNajt/agent-shell-manager/internal/adapters/tmux"
	adapterwatcher "github.com/ElleNajt/agent-shell-manager/internal/adapters/watcher"
	"github.com/ElleNajt/agent-shell-manager/internal/config"
	"github.com/ElleNajt/agent-shell-manager/internal/logging"
	"github.com/ElleNajt/agent-shell-manager/internal/ports"
	"github.com/ElleNajt/agent-shell-manager/internal/services"
	"github.com/ElleNajt/agent-shell-manager/internal/ui"
)

// Container holds all dependencies for the application
type Container struct {
	Agents     *config.AgentCatalog
	Builder    *services.ViewModelBuilder
	Feed       *services.ActivityFeed
	History    *services.ActivityHistory
	Lifecycle  *adaptertmux.Lifecycle
	Navigator  *services.Navigator
	Publisher  *services.PublisherService
	Registry   *adaptertmux.Registry
	Repository ports.SessionRepository
	Tmux       ports.TmuxClient

	modes    ports.ModeController
	settings *config.Settings
}

// NewContainer creates a new Container with all dependencies wired.
// tmuxClient may be nil to use the tmux binary.
func NewContainer(settings *config.Settings, tmuxClient ports.TmuxClient) (*Container, error) {
	repo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	if tmuxClient == nil {
		tmuxClient = adaptertmux.NewClient()
	}

	history := services.NewActivityHistory()
	registry := adaptertmux.NewRegistry(repo, tmuxClient, adapterprocess.NewOSProcessInspector())
	lifecycle := adaptertmux.NewLifecycle(tmuxClient, repo, adaptertmux.LifecycleOptions{
		ActivityDir:  config.GetActivityDir(),
		HomeDir:      config.GetHomeDir(),
		InterruptKey: settings.InterruptKey,
		TrafficDir:   config.GetTrafficDir(),
	})

	// Workspaces only exist when the dashboard runs inside tmux
	var workspaces ports.WorkspaceProvider
	if tmuxClient.InTmux() {
		workspaces = adaptertmux.NewWorkspaceProvider(tmuxClient, registry)
	}

	return &Container{
		Agents:     config.NewAgentCatalog(settings),
		Builder:    services.NewViewModelBuilder(registry, history),
		Feed:       services.NewActivityFeed(history),
		History:    history,
		Lifecycle:  lifecycle,
		Navigator:  services.NewNavigator(history, workspaces, adaptertmux.NewSurfaceLocator(tmuxClient, registry)),
		Publisher:  services.NewPublisherService(repo, repo),
		Registry:   registry,
		Repository: repo,
		Tmux:       tmuxClient,
		modes:      adaptertmux.NewModeController(tmuxClient, repo, settings.ModeCycleKey),
		settings:   settings,
	}, nil
}

// NewControlService creates the control commands of one dashboard.
// refresher is the dashboard's refresh loop; nil for one-shot CLI commands.
func (c *Container) NewControlService(refresher services.Refresher) *services.ControlService {
	return services.NewControlService(c.Registry, c.Lifecycle, c.modes, c.Agents, refresher)
}

// RestoreActivity seeds the activity history with the output observed
// before this process started
func (c *Container) RestoreActivity() {
	markers, err := adapterwatcher.ReadMarkers(config.GetActivityDir())
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Logger.Warn("Failed to read activity markers", "error", err)
		}
		return
	}
	for id, lastActivity := range markers {
		c.History.Restore(id, lastActivity)
	}
	logging.Logger.Debug("Activity history restored", "sessions", len(markers))
}

// NewActivityWatcher creates the watcher over the activity markers and
// restores the history it will keep current
func (c *Container) NewActivityWatcher() (*adapterwatcher.ActivityWatcher, error) {
	watcher, err := adapterwatcher.NewActivityWatcher(config.GetActivityDir())
	if err != nil {
		return nil, err
	}
	c.RestoreActivity()
	return watcher, nil
}

// NewDashboard creates a dashboard with its own refresh loop subscribed to
// the activity feed. run drives the loop until ctx is done.
func (c *Container) NewDashboard(opts ui.ModelOptions) (*ui.Model, func(ctx context.Context) error) {
	stream := ui.NewRowStream()
	loop := services.NewRefreshLoop(c.Builder)

	opts.Agents = c.Agents.All()
	opts.DefaultAgent = c.Agents.Default().Name
	opts.Keys = c.settings.Keys
	if opts.ErrorClearDelay <= 0 {
		delay := config.DefaultErrorClearDelay
		if c.settings.ErrorClearDelay != nil {
			delay = *c.settings.ErrorClearDelay
		}
		opts.ErrorClearDelay = time.Duration(delay) * time.Second
	}
	opts.SwitchWorkspace = c.settings.SwitchWorkspace == nil || *c.settings.SwitchWorkspace

	model := ui.NewModel(c.NewControlService(loop), c.Navigator, stream, loop, opts)

	run := func(ctx context.Context) error {
		unsubscribe := c.Feed.Subscribe(loop)
		defer unsubscribe()
		defer stream.Close()
		return loop.Run(ctx, stream.Sink)
	}
	return model, run
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.Repository != nil {
		return c.Repository.Close()
	}
	return nil
}
