package storage

import (
	"sort"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
)

// sessionModelToDomain converts a SessionModel (GORM) to domain.Session.
// The control process carries only its pid; liveness is filled in by the registry.
func sessionModelToDomain(m SessionModel, calls []ToolCallModel) domain.Session {
	var control *domain.Process
	if m.ControlPID > 0 {
		control = &domain.Process{PID: m.ControlPID}
	}

	return domain.Session{
		AgentKind:      m.AgentKind,
		AvailableModes: m.AvailableModes,
		Busy:           m.Busy,
		ConfigName:     m.ConfigName,
		ControlProcess: control,
		CreatedAt:      m.CreatedAt,
		DisplayName:    m.DisplayName,
		ExecProcess:    nil, // Not persisted, resolved from the terminal multiplexer
		ID:             m.ID,
		Initialized:    m.Initialized,
		ModeID:         m.ModeID,
		SessionID:      m.SessionID,
		ToolCalls:      toolCallModelsToDomain(calls),
		WorkingDir:     m.WorkingDir,
	}
}

// domainToSessionModel converts a domain.Session to SessionModel (GORM)
func domainToSessionModel(s domain.Session) SessionModel {
	var controlPID int
	if s.ControlProcess != nil {
		controlPID = s.ControlProcess.PID
	}

	return SessionModel{
		AgentKind:      s.AgentKind,
		AvailableModes: s.AvailableModes,
		Busy:           s.Busy,
		ConfigName:     s.ConfigName,
		ControlPID:     controlPID,
		CreatedAt:      s.CreatedAt,
		DisplayName:    s.DisplayName,
		ID:             s.ID,
		Initialized:    s.Initialized,
		ModeID:         s.ModeID,
		SessionID:      s.SessionID,
		WorkingDir:     s.WorkingDir,
	}
}

func toolCallModelsToDomain(calls []ToolCallModel) []domain.ToolCall {
	if len(calls) == 0 {
		return nil
	}

	sorted := append([]ToolCallModel(nil), calls...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	result := make([]domain.ToolCall, len(sorted))
	for i, c := range sorted {
		result[i] = domain.ToolCall{
			CreatedAt:         c.CreatedAt,
			ID:                c.CallID,
			PendingPermission: c.PendingPermission,
			Title:             c.Title,
		}
	}
	return result
}
