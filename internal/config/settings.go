package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON implements custom unmarshaling for KeyBindingValue
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	// Fall back to single string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// MarshalJSON implements custom marshaling for KeyBindingValue
func (kv KeyBindingValue) MarshalJSON() ([]byte, error) {
	if len(kv) == 1 {
		return json.Marshal(kv[0])
	}
	return json.Marshal([]string(kv))
}

// KeyBindingsConfig holds custom key binding overrides as a map.
// Keys are binding names (e.g., "kill", "help"), values are the key sequences.
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.GetValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	// Build set of valid names for quick lookup
	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	// Track all keys to detect duplicates
	keyToAction := make(map[string]string)

	// Validate each configured binding
	for name, keys := range k {
		// Check if the key name is valid
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		// Check for empty values and duplicates
		if len(keys) == 0 {
			continue // Not configured, will use default
		}

		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Defaults applied when settings.json leaves a value unset
const (
	DefaultErrorClearDelay     = 10
	DefaultInterruptKey        = "Escape"
	DefaultModeCycleKey        = "BTab"
	DefaultSSHHost             = "localhost"
	DefaultSSHPort             = 23235
	DefaultTrafficLogMaxSizeMB = 20
	DefaultTrafficLogBackups   = 3
)

// Settings represents the structure of $ASM_HOME/settings.json
type Settings struct {
	Agents              []AgentSettings   `json:"agents,omitempty"`
	Debug               *bool             `json:"debug,omitempty"`
	DefaultAgent        string            `json:"default_agent,omitempty"`
	ErrorClearDelay     *int              `json:"error_clear_delay,omitempty"`
	InterruptKey        string            `json:"interrupt_key,omitempty"`
	Keys                KeyBindingsConfig `json:"keys,omitempty"`
	MaxLogFiles         *int              `json:"max_log_files,omitempty"`
	ModeCycleKey        string            `json:"mode_cycle_key,omitempty"`
	SSHHost             string            `json:"ssh_host,omitempty"`
	SSHPort             *int              `json:"ssh_port,omitempty"`
	SwitchWorkspace     *bool             `json:"switch_workspace,omitempty"`
	TrafficLogBackups   *int              `json:"traffic_log_backups,omitempty"`
	TrafficLogMaxSizeMB *int              `json:"traffic_log_max_size_mb,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $ASM_HOME/settings.json.
// A missing file yields empty Settings, not an error.
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	for i := range settings.Agents {
		if settings.Agents[i].Name == "" {
			return nil, fmt.Errorf("invalid settings.json: agents[%d] has no name", i)
		}
		if settings.Agents[i].Command == "" {
			return nil, fmt.Errorf("invalid settings.json: agents[%d] has no command", i)
		}
		settings.Agents[i].Command = ExpandPath(settings.Agents[i].Command)
	}

	return &settings, nil
}

// SaveSettings saves settings to $ASM_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
