package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ElleNajt/agent-shell-manager/internal/config"
)

// buildBinding creates a key.Binding from its definition, preferring custom keys
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), def.Help),
	)
}
