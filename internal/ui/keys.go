package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/ElleNajt/agent-shell-manager/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Navigation  NavigationKeys
	Session     SessionKeys
}

// NewKeyMap creates a KeyMap; nil customKeys uses the default bindings
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, customKeys),
		Navigation:  newNavigationKeys(defaults, customKeys),
		Session:     newSessionKeys(defaults, customKeys),
	}
}

// ShortHelp returns the bindings shown in the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Navigation.Open,
		k.Session.New,
		k.Session.Kill,
		k.Session.Restart,
		k.Session.CycleMode,
		k.Application.Sort,
		k.Application.Help,
		k.Application.Quit,
	}
}

// FullHelp returns every binding grouped by context
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigation.Up, k.Navigation.Down, k.Navigation.Open},
		{
			k.Session.New,
			k.Session.Kill,
			k.Session.Restart,
			k.Session.DeleteKilled,
			k.Session.CycleMode,
			k.Session.SetMode,
			k.Session.Interrupt,
			k.Session.Traffic,
		},
		{
			k.Application.Sort,
			k.Application.Refresh,
			k.Application.ToggleLogging,
			k.Application.Help,
			k.Application.Quit,
			k.Application.ForceQuit,
		},
	}
}
