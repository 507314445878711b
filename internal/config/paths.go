package config

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the state directory
const EnvHome = "ASM_HOME"

// GetHomeDir returns $ASM_HOME or the ~/.agent-shell-manager default
func GetHomeDir() string {
	home := os.Getenv(EnvHome)
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".agent-shell-manager"
		}
		return filepath.Join(homeDir, ".agent-shell-manager")
	}
	return ExpandPath(home)
}

// GetDBPath returns $ASM_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetHomeDir(), "state.db")
}

// GetSettingsPath returns $ASM_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHomeDir(), "settings.json")
}

// GetActivityDir returns the directory supervisors touch on agent output
func GetActivityDir() string {
	return filepath.Join(GetHomeDir(), "activity")
}

// GetTrafficDir returns the directory holding protocol traffic logs
func GetTrafficDir() string {
	return filepath.Join(GetHomeDir(), "traffic")
}

// GetSSHDir returns the directory holding the SSH host key
func GetSSHDir() string {
	return filepath.Join(GetHomeDir(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

// EnvSessionID names the session a supervisor or publish command acts on
const EnvSessionID = "ASM_SESSION_ID"

// ActivityMarkerPath is the file a supervisor rewrites whenever its agent writes output
func ActivityMarkerPath(dir, id string) string {
	return filepath.Join(dir, id+".log")
}

// TrafficLogPath is the current traffic log of a session
func TrafficLogPath(dir, id string) string {
	return filepath.Join(dir, id+".log")
}
