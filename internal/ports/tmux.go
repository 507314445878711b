package ports

import (
	"errors"
	"os/exec"
)

var (
	ErrTmuxSessionExists   = errors.New("tmux session already exists")
	ErrTmuxSessionNotFound = errors.New("tmux session not found")
)

// TmuxPane is one pane as reported by list-panes
type TmuxPane struct {
	CurrentPath string
	Dead        bool
	PID         int
	SessionName string
}

// TmuxClientInfo is one attached tmux client
type TmuxClientInfo struct {
	SessionName string
	TTY         string
}

// TmuxClient abstracts the tmux commands used by the adapters
type TmuxClient interface {
	AttachCommand(sessionName string) *exec.Cmd
	CreateSession(name, workingDir string, env []string, command ...string) error
	InTmux() bool
	KillSession(name string) error
	ListClients() ([]TmuxClientInfo, error)
	ListPanes() ([]TmuxPane, error)
	ListSessions() ([]string, error)
	SendKeys(sessionName string, keys ...string) error
	SessionExists(name string) bool
	SwitchClient(tty, sessionName string) error
}
