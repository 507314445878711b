package process

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
	"github.com/ElleNajt/agent-shell-manager/internal/logging"
	"github.com/ElleNajt/agent-shell-manager/internal/ports"
)

// OSProcessInspector implements ProcessInspector with signal 0 probes and,
// where available, the /proc state letter
type OSProcessInspector struct {
	procRoot string
}

// Compile-time interface verification
var _ ports.ProcessInspector = (*OSProcessInspector)(nil)

// NewOSProcessInspector creates a new OS process inspector
func NewOSProcessInspector() *OSProcessInspector {
	return &OSProcessInspector{procRoot: "/proc"}
}

// Inspect implements ProcessInspector.Inspect
func (i *OSProcessInspector) Inspect(pid int) domain.ProcessStatus {
	if pid <= 0 {
		return domain.ProcessExit
	}

	err := unix.Kill(pid, 0)
	switch {
	case err == nil, errors.Is(err, unix.EPERM):
		// Exists; owned by someone else is still alive
	case errors.Is(err, unix.ESRCH):
		return domain.ProcessExit
	default:
		logging.Logger.Debug("Process probe failed", "pid", pid, "error", err)
		return domain.ProcessFailed
	}

	state, ok := i.procState(pid)
	if !ok {
		return domain.ProcessRun
	}
	return statusFromProcState(state)
}

// procState reads the single-letter state from /proc/<pid>/stat
func (i *OSProcessInspector) procState(pid int) (byte, bool) {
	data, err := os.ReadFile(fmt.Sprintf("%s/%d/stat", i.procRoot, pid))
	if err != nil {
		return 0, false
	}
	// The command name is parenthesized and may contain spaces
	stat := string(data)
	end := strings.LastIndexByte(stat, ')')
	if end < 0 || end+2 >= len(stat) {
		return 0, false
	}
	return stat[end+2], true
}

func statusFromProcState(state byte) domain.ProcessStatus {
	switch state {
	case 'Z', 'X', 'x':
		return domain.ProcessExit
	case 'T', 't':
		return domain.ProcessStop
	default:
		return domain.ProcessRun
	}
}
