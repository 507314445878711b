package ports

import "github.com/ElleNajt/agent-shell-manager/internal/domain"

// ProcessInspector reads the liveness of operating system processes
type ProcessInspector interface {
	// Inspect returns the observed status of pid. Non-positive pids are
	// reported as exited.
	Inspect(pid int) domain.ProcessStatus
}
