package tmux

import (
	"context"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
	"github.com/ElleNajt/agent-shell-manager/internal/ports"
)

// WorkspaceProvider treats every tmux session that is not an agent session
// as a workspace
type WorkspaceProvider struct {
	client   ports.TmuxClient
	registry ports.SessionRegistry
}

// Compile-time interface verification
var _ ports.WorkspaceProvider = (*WorkspaceProvider)(nil)

// NewWorkspaceProvider creates a WorkspaceProvider
func NewWorkspaceProvider(client ports.TmuxClient, registry ports.SessionRegistry) *WorkspaceProvider {
	return &WorkspaceProvider{client: client, registry: registry}
}

// ListWorkspaces implements WorkspaceProvider.ListWorkspaces
func (w *WorkspaceProvider) ListWorkspaces(ctx context.Context) ([]string, error) {
	names, err := w.client.ListSessions()
	if err != nil {
		return nil, err
	}
	agents, err := agentSet(ctx, w.registry)
	if err != nil {
		return nil, err
	}

	var workspaces []string
	for _, name := range names {
		if !agents[name] {
			workspaces = append(workspaces, name)
		}
	}
	return workspaces, nil
}

// ContainsDir implements WorkspaceProvider.ContainsDir. A workspace contains
// dir when one of its panes sits in dir or one of its parents.
func (w *WorkspaceProvider) ContainsDir(ctx context.Context, workspace, dir string) (bool, error) {
	panes, err := w.client.ListPanes()
	if err != nil {
		return false, err
	}
	for _, pane := range panes {
		if pane.SessionName == workspace && domain.DirContains(pane.CurrentPath, dir) {
			return true, nil
		}
	}
	return false, nil
}

// SwitchTo implements WorkspaceProvider.SwitchTo
func (w *WorkspaceProvider) SwitchTo(ctx context.Context, workspace string) error {
	return w.client.SwitchClient("", workspace)
}

func agentSet(ctx context.Context, registry ports.SessionRegistry) (map[string]bool, error) {
	ids, err := registry.ListIDs(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
