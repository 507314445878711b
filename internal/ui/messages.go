package ui

import (
	"github.com/ElleNajt/agent-shell-manager/internal/domain"
)

// RowsMsg carries one refresh result into the program
type RowsMsg struct {
	Err  error
	Rows []domain.ViewRow
}

// actionResultMsg reports the outcome of a session control command
type actionResultMsg struct {
	action string
	err    error
	notice string
}

// navigatedMsg reports a completed navigation. needsSurface is set when the
// session must be attached in this terminal.
type navigatedMsg struct {
	err          error
	id           string
	needsSurface bool
}

// detachedMsg is sent when an attached terminal or pager returns
type detachedMsg struct {
	err error
	id  string
}
