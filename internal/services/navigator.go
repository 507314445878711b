package services

import (
	"context"
	"fmt"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
	"github.com/ElleNajt/agent-shell-manager/internal/logging"
	"github.com/ElleNajt/agent-shell-manager/internal/ports"
)

// Navigator decides where a selected session is displayed
type Navigator struct {
	history    *ActivityHistory
	surfaces   ports.SurfaceLocator
	workspaces ports.WorkspaceProvider
}

// NewNavigator creates a navigator. Both collaborators are optional.
func NewNavigator(history *ActivityHistory, workspaces ports.WorkspaceProvider, surfaces ports.SurfaceLocator) *Navigator {
	return &Navigator{
		history:    history,
		surfaces:   surfaces,
		workspaces: workspaces,
	}
}

// ResolveWorkspace returns the first workspace, in enumeration order, that
// contains the session's working directory. Empty when none matches.
func (n *Navigator) ResolveWorkspace(ctx context.Context, session *domain.Session) (string, error) {
	if n.workspaces == nil || session.WorkingDir == "" {
		return "", nil
	}

	workspaces, err := n.workspaces.ListWorkspaces(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list workspaces: %w", err)
	}
	for _, ws := range workspaces {
		contains, err := n.workspaces.ContainsDir(ctx, ws, session.WorkingDir)
		if err != nil {
			logging.Logger.Warn("Failed to inspect workspace", "workspace", ws, "error", err)
			continue
		}
		if contains {
			return ws, nil
		}
	}
	return "", nil
}

// ResolveSurface decides which surface to reuse. It must run after any
// workspace switch, since visibility depends on the active workspace.
func (n *Navigator) ResolveSurface(ctx context.Context, session *domain.Session) (domain.NavigationPlan, error) {
	if n.surfaces == nil {
		return domain.NavigationPlan{MustCreateSurface: true}, nil
	}

	surface, ok, err := n.surfaces.VisibleSurface(ctx, session.ID)
	if err != nil {
		return domain.NavigationPlan{}, fmt.Errorf("failed to locate session surface: %w", err)
	}
	if ok {
		return domain.NavigationPlan{ReuseSurfaceID: surface}, nil
	}

	surface, ok, err = n.surfaces.AgentSurface(ctx, session.ID)
	if err != nil {
		return domain.NavigationPlan{}, fmt.Errorf("failed to locate agent surface: %w", err)
	}
	if ok {
		return domain.NavigationPlan{ReuseSurfaceID: surface}, nil
	}

	return domain.NavigationPlan{MustCreateSurface: true}, nil
}

// Navigate applies the workspace switch when switchWorkspace is set, then
// resolves surface placement and records the visit. The returned plan has
// not been presented yet; see Present.
func (n *Navigator) Navigate(ctx context.Context, session *domain.Session, switchWorkspace bool) (domain.NavigationPlan, error) {
	var workspace string
	if switchWorkspace {
		ws, err := n.ResolveWorkspace(ctx, session)
		if err != nil {
			return domain.NavigationPlan{}, err
		}
		if ws != "" {
			if err := n.workspaces.SwitchTo(ctx, ws); err != nil {
				return domain.NavigationPlan{}, fmt.Errorf("failed to switch to workspace %s: %w", ws, err)
			}
			logging.Logger.Info("Switched workspace", "workspace", ws, "session", session.ID)
		}
		workspace = ws
	}

	plan, err := n.ResolveSurface(ctx, session)
	if err != nil {
		return domain.NavigationPlan{}, err
	}
	plan.TargetWorkspace = workspace

	n.history.RecordVisit(session.ID)
	return plan, nil
}

// Present shows the session on the reused surface. It returns true when the
// plan needs a new surface, which only the caller can create.
func (n *Navigator) Present(ctx context.Context, plan domain.NavigationPlan, session *domain.Session) (bool, error) {
	if plan.MustCreateSurface || plan.ReuseSurfaceID == "" {
		return true, nil
	}
	if err := n.surfaces.Present(ctx, plan.ReuseSurfaceID, session.ID); err != nil {
		return false, fmt.Errorf("failed to present session: %w", err)
	}
	return false, nil
}
