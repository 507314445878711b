package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions contains all configurable key bindings
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"h", "?"}, Help: "show keyboard shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application"},
	{Name: "refresh", Defaults: []string{"ctrl+r"}, Help: "refresh now"},
	{Name: "sort", Defaults: []string{"s"}, Help: "cycle sort column"},
	{Name: "toggle_logging", Defaults: []string{"L"}, Help: "toggle traffic logging"},

	// Navigation keys
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next session"},
	{Name: "open", Defaults: []string{"enter"}, Help: "open session"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous session"},

	// Session control keys
	{Name: "cycle_mode", Defaults: []string{"m"}, Help: "cycle mode"},
	{Name: "delete_killed", Defaults: []string{"D"}, Help: "delete killed sessions"},
	{Name: "interrupt", Defaults: []string{"i"}, Help: "interrupt agent"},
	{Name: "kill", Defaults: []string{"x"}, Help: "kill session"},
	{Name: "new_session", Defaults: []string{"n"}, Help: "create new session"},
	{Name: "restart", Defaults: []string{"R"}, Help: "restart session"},
	{Name: "set_mode", Defaults: []string{"M"}, Help: "choose mode"},
	{Name: "traffic", Defaults: []string{"l"}, Help: "view traffic log"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name, or nil
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName reports whether name is a known key binding
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
