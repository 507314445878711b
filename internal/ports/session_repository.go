package ports

import (
	"context"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
)

// SessionReader reads persisted session state
type SessionReader interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]domain.Session, error)
}

// SessionWriter creates and deletes sessions
type SessionWriter interface {
	Add(ctx context.Context, session domain.Session) error
	Delete(ctx context.Context, id string) error
}

// SessionStatePublisher records the flags a running agent publishes
type SessionStatePublisher interface {
	AddToolCall(ctx context.Context, id string, call domain.ToolCall) error
	ClearToolCalls(ctx context.Context, id string) error
	RemoveToolCall(ctx context.Context, id, callID string) error
	ResetRuntimeState(ctx context.Context, id string, controlPID int) error
	UpdateBusy(ctx context.Context, id string, busy bool) error
	UpdateInitialized(ctx context.Context, id string, initialized bool) error
	UpdateMode(ctx context.Context, id, modeID string, available []domain.Mode) error
	UpdateSessionID(ctx context.Context, id, sessionID string) error
}

// AppFlagStore persists process-independent toggles
type AppFlagStore interface {
	GetFlag(ctx context.Context, name string) (bool, error)
	SetFlag(ctx context.Context, name string, value bool) error
}

// SessionRepository is the composite interface
type SessionRepository interface {
	SessionReader
	SessionWriter
	SessionStatePublisher
	AppFlagStore
	Close() error
}
