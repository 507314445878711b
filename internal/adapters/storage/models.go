package storage

import (
	"time"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
)

// SessionModel is the GORM model for sessions table
type SessionModel struct {
	AgentKind      string        `gorm:"not null;default:''"`
	AvailableModes []domain.Mode `gorm:"serializer:json;type:text"`
	Busy           bool          `gorm:"not null;default:false"`
	ConfigName     string        `gorm:"not null;default:''"`
	ControlPID     int           `gorm:"column:control_pid;not null;default:0"`
	CreatedAt      time.Time     `gorm:"index:idx_created_at"`
	DisplayName    string        `gorm:"not null;default:''"`
	ID             string        `gorm:"primaryKey"`
	Initialized    bool          `gorm:"not null;default:false"`
	ModeID         string        `gorm:"not null;default:''"`
	SessionID      string        `gorm:"not null;default:''"`
	UpdatedAt      time.Time
	WorkingDir     string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string { return "sessions" }

// ToolCallModel is an in-flight tool call of a session
type ToolCallModel struct {
	CallID            string `gorm:"primaryKey"`
	CreatedAt         time.Time
	PendingPermission bool   `gorm:"not null;default:false"`
	SessionID         string `gorm:"primaryKey;index:idx_tool_calls_session"`
	Title             string `gorm:"not null;default:''"`
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (ToolCallModel) TableName() string { return "tool_calls" }

// AppFlagModel is a named process-independent toggle
type AppFlagModel struct {
	Name      string `gorm:"primaryKey"`
	UpdatedAt time.Time
	Value     bool `gorm:"not null;default:false"`
}

// TableName specifies the table name for GORM
func (AppFlagModel) TableName() string { return "app_flags" }
