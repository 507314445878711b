package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/ElleNajt/agent-shell-manager/internal/config"
)

// NavigationKeys defines key bindings for moving through the dashboard
type NavigationKeys struct {
	Down key.Binding
	Open key.Binding
	Up   key.Binding
}

func newNavigationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) NavigationKeys {
	return NavigationKeys{
		Down: buildBinding("down", defaults, customKeys),
		Open: buildBinding("open", defaults, customKeys),
		Up:   buildBinding("up", defaults, customKeys),
	}
}
