package config

import (
	"reflect"
	"sort"
	"strings"
)

// SettingField describes one settings.json key
type SettingField struct {
	Example any
	Name    string
}

// GetSettingsExample uses reflection to list every settings.json key with an
// example value, so new fields show up without extra wiring
func GetSettingsExample() []SettingField {
	t := reflect.TypeOf(Settings{})
	fields := make([]SettingField, 0, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		jsonTag := t.Field(i).Tag.Get("json")
		if jsonTag == "" {
			continue
		}
		name := strings.Split(jsonTag, ",")[0]
		fields = append(fields, SettingField{
			Example: generateExampleValue(t.Field(i).Type, name),
			Name:    name,
		})
	}

	sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })
	return fields
}

func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug" || fieldName == "switch_workspace"
		case reflect.Int:
			switch fieldName {
			case "error_clear_delay":
				return DefaultErrorClearDelay
			case "max_log_files":
				return 1000
			case "ssh_port":
				return DefaultSSHPort
			case "traffic_log_backups":
				return DefaultTrafficLogBackups
			case "traffic_log_max_size_mb":
				return DefaultTrafficLogMaxSizeMB
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.String:
		switch fieldName {
		case "default_agent":
			return "Claude Code"
		case "interrupt_key":
			return DefaultInterruptKey
		case "mode_cycle_key":
			return DefaultModeCycleKey
		case "ssh_host":
			return DefaultSSHHost
		default:
			return "example"
		}
	case reflect.Map:
		return map[string]any{
			"kill": "X",
			"help": []string{"h", "?"},
		}
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Struct {
			return []map[string]any{{
				"name":    "Claude Code",
				"kind":    "claude",
				"command": "claude",
				"args":    []string{"--verbose"},
			}}
		}
		return []string{"example1", "example2"}
	}

	return nil
}
