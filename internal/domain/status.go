package domain

// Status is the aggregated state shown for a session
type Status string

const (
	StatusUnknown      Status = "unknown"
	StatusInitializing Status = "initializing"
	StatusReady        Status = "ready"
	StatusWorking      Status = "working"
	StatusWaiting      Status = "waiting"
	StatusKilled       Status = "killed"
)

// AllStatuses lists statuses in display order
var AllStatuses = []Status{
	StatusWaiting,
	StatusWorking,
	StatusReady,
	StatusInitializing,
	StatusUnknown,
	StatusKilled,
}

// SessionStatus says whether a protocol session has been negotiated
type SessionStatus string

const (
	SessionActive SessionStatus = "active"
	SessionNone   SessionStatus = "none"
)

// Classify maps the liveness signals and published flags of a session
// to a single status. Rules are evaluated in order and the first match wins.
// Each signal is read exactly once.
func Classify(s *Session) Status {
	if s == nil || !s.ExecProcess.Alive() {
		return StatusKilled
	}
	if s.HasControlClient() && !s.ControlProcess.Alive() {
		return StatusKilled
	}

	if len(s.ToolCalls) > 0 {
		for _, call := range s.ToolCalls {
			if call.PendingPermission {
				return StatusWaiting
			}
		}
		return StatusWorking
	}
	if s.Busy {
		return StatusWorking
	}
	if s.SessionID != "" {
		return StatusReady
	}
	if !s.Initialized {
		return StatusInitializing
	}
	return StatusUnknown
}

// SessionStatusOf derives the session status from the classification
func SessionStatusOf(s *Session, status Status) SessionStatus {
	if status == StatusKilled || s == nil {
		return SessionNone
	}
	if s.SessionID != "" {
		return SessionActive
	}
	return SessionNone
}
