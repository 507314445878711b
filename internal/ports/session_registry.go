package ports

import (
	"context"
	"os/exec"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
)

// SessionRegistry enumerates sessions and resolves live snapshots of them
type SessionRegistry interface {
	ListIDs(ctx context.Context) ([]string, error)
	// Resolve returns ok=false when the id no longer refers to a session
	Resolve(ctx context.Context, id string) (session *domain.Session, ok bool, err error)
}

// SessionLifecycle performs the effects behind session control commands
type SessionLifecycle interface {
	AttachCommand(session *domain.Session) *exec.Cmd
	// Create starts a session and returns its identifier
	Create(ctx context.Context, cfg domain.SessionConfig) (string, error)
	// Destroy removes the session and everything recorded about it
	Destroy(ctx context.Context, session *domain.Session) error
	Interrupt(ctx context.Context, session *domain.Session) error
	// Terminate stops the session's processes; already-dead processes are not an error
	Terminate(ctx context.Context, session *domain.Session) error
	ToggleLogging(ctx context.Context) (bool, error)
	TrafficViewCommand(session *domain.Session) (*exec.Cmd, error)
}

// ModeController is optional; it is nil when agents have no modes
type ModeController interface {
	CycleMode(ctx context.Context, session *domain.Session) error
	SetMode(ctx context.Context, session *domain.Session, modeID string) error
}

// WorkspaceProvider is optional; it is nil when no workspace system is available
type WorkspaceProvider interface {
	ContainsDir(ctx context.Context, workspace, dir string) (bool, error)
	ListWorkspaces(ctx context.Context) ([]string, error)
	SwitchTo(ctx context.Context, workspace string) error
}

// SurfaceLocator finds where sessions are displayed. It is optional; without
// it every navigation creates a new surface.
type SurfaceLocator interface {
	// AgentSurface returns a surface presenting any agent session other than excludeID
	AgentSurface(ctx context.Context, excludeID string) (string, bool, error)
	Present(ctx context.Context, surfaceID, sessionID string) error
	// VisibleSurface returns the surface currently showing the session
	VisibleSurface(ctx context.Context, sessionID string) (string, bool, error)
}
