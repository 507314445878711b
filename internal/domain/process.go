package domain

// ProcessStatus is the observed state of an operating system process
type ProcessStatus string

const (
	ProcessRun     ProcessStatus = "run"
	ProcessOpen    ProcessStatus = "open"
	ProcessListen  ProcessStatus = "listen"
	ProcessConnect ProcessStatus = "connect"
	ProcessStop    ProcessStatus = "stop"
	ProcessExit    ProcessStatus = "exit"
	ProcessSignal  ProcessStatus = "signal"
	ProcessClosed  ProcessStatus = "closed"
	ProcessFailed  ProcessStatus = "failed"
)

// IsAlive reports whether the status counts as a live process.
// A stopped process is still alive; it can be continued.
func (s ProcessStatus) IsAlive() bool {
	switch s {
	case ProcessRun, ProcessOpen, ProcessListen, ProcessConnect, ProcessStop:
		return true
	default:
		return false
	}
}

// Process is a handle to one process backing a session
type Process struct {
	PID    int
	Status ProcessStatus
}

// Alive is nil-safe: an absent process is never alive
func (p *Process) Alive() bool {
	return p != nil && p.Status.IsAlive()
}
