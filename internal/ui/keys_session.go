package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/ElleNajt/agent-shell-manager/internal/config"
)

// SessionKeys defines key bindings for the session control commands
type SessionKeys struct {
	CycleMode    key.Binding
	DeleteKilled key.Binding
	Interrupt    key.Binding
	Kill         key.Binding
	New          key.Binding
	Restart      key.Binding
	SetMode      key.Binding
	Traffic      key.Binding
}

func newSessionKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) SessionKeys {
	return SessionKeys{
		CycleMode:    buildBinding("cycle_mode", defaults, customKeys),
		DeleteKilled: buildBinding("delete_killed", defaults, customKeys),
		Interrupt:    buildBinding("interrupt", defaults, customKeys),
		Kill:         buildBinding("kill", defaults, customKeys),
		New:          buildBinding("new_session", defaults, customKeys),
		Restart:      buildBinding("restart", defaults, customKeys),
		SetMode:      buildBinding("set_mode", defaults, customKeys),
		Traffic:      buildBinding("traffic", defaults, customKeys),
	}
}
