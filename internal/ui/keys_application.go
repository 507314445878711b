package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/ElleNajt/agent-shell-manager/internal/config"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	ForceQuit     key.Binding
	Help          key.Binding
	Quit          key.Binding
	Refresh       key.Binding
	Sort          key.Binding
	ToggleLogging key.Binding
}

func newApplicationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ApplicationKeys {
	return ApplicationKeys{
		ForceQuit:     buildBinding("force_quit", defaults, customKeys),
		Help:          buildBinding("help", defaults, customKeys),
		Quit:          buildBinding("quit", defaults, customKeys),
		Refresh:       buildBinding("refresh", defaults, customKeys),
		Sort:          buildBinding("sort", defaults, customKeys),
		ToggleLogging: buildBinding("toggle_logging", defaults, customKeys),
	}
}
