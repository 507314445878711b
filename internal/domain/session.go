package domain

import "time"

// Mode is an operating mode an agent can be switched into
type Mode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToolCall is an in-flight tool invocation requested by the agent
type ToolCall struct {
	CreatedAt         time.Time
	ID                string
	PendingPermission bool
	Title             string
}

// Session is a snapshot of one managed agent session.
// ExecProcess is the outer interactive process (the pane running the
// supervisor). ControlProcess is the inner protocol client and stays nil
// until a client has attached.
type Session struct {
	AgentKind      string
	AvailableModes []Mode
	Busy           bool
	ConfigName     string
	ControlProcess *Process
	CreatedAt      time.Time
	DisplayName    string
	ExecProcess    *Process
	ID             string
	Initialized    bool
	ModeID         string
	SessionID      string
	ToolCalls      []ToolCall
	WorkingDir     string
}

// HasControlClient reports whether a protocol client was ever attached
func (s *Session) HasControlClient() bool {
	return s.ControlProcess != nil
}

// ModeName resolves the current mode to its human name.
// Returns "-" when no mode is set or the id is not among the available modes.
func (s *Session) ModeName() string {
	if s.ModeID == "" {
		return "-"
	}
	for _, m := range s.AvailableModes {
		if m.ID == s.ModeID {
			if m.Name == "" {
				return m.ID
			}
			return m.Name
		}
	}
	return "-"
}

// ModeIndex returns the position of modeID in AvailableModes, or -1
func (s *Session) ModeIndex(modeID string) int {
	for i, m := range s.AvailableModes {
		if m.ID == modeID {
			return i
		}
	}
	return -1
}

// SessionConfig describes how to create a session
type SessionConfig struct {
	Args               []string
	Command            string
	ConfigName         string
	DefaultMode        string
	Env                []string
	ID                 string // Optional; reuses a specific identifier (restart)
	Kind               string
	PublishesHandshake bool
	WorkingDir         string
}

// ActivityRecord is the per-session activity timeline
type ActivityRecord struct {
	FirstVisited time.Time
	LastActivity time.Time
}
