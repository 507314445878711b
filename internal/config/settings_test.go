package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArray_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected StringArray
	}{
		{"array", `["a", "b"]`, StringArray{"a", "b"}},
		{"comma separated", `"a, b ,c"`, StringArray{"a", "b", "c"}},
		{"empty string", `""`, StringArray{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sa StringArray
			require.NoError(t, json.Unmarshal([]byte(tt.input), &sa))
			assert.Equal(t, tt.expected, sa)
		})
	}
}

func TestKeyBindingValue_UnmarshalJSON(t *testing.T) {
	var single KeyBindingValue
	require.NoError(t, json.Unmarshal([]byte(`"x"`), &single))
	assert.Equal(t, KeyBindingValue{"x"}, single)

	var multi KeyBindingValue
	require.NoError(t, json.Unmarshal([]byte(`["up", "k"]`), &multi))
	assert.Equal(t, KeyBindingValue{"up", "k"}, multi)
}

func TestKeyBindingsConfig_Validate(t *testing.T) {
	valid := []string{"kill", "help", "quit"}

	assert.NoError(t, KeyBindingsConfig(nil).Validate(valid))
	assert.NoError(t, KeyBindingsConfig{"kill": {"X"}, "help": {"?"}}.Validate(valid))

	err := KeyBindingsConfig{"archive": {"a"}}.Validate(valid)
	assert.ErrorContains(t, err, "unknown key binding 'archive'")

	err = KeyBindingsConfig{"kill": {"x"}, "quit": {"x"}}.Validate(valid)
	assert.ErrorContains(t, err, "key 'x' is assigned to both")

	err = KeyBindingsConfig{"kill": {""}}.Validate(valid)
	assert.ErrorContains(t, err, "contains empty value")
}

func TestLoadSettings(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)

	t.Run("missing file yields defaults", func(t *testing.T) {
		settings, err := LoadSettings()
		require.NoError(t, err)
		assert.Equal(t, &Settings{}, settings)
	})

	t.Run("parses agents and pointers", func(t *testing.T) {
		content := `{
			"debug": true,
			"error_clear_delay": 3,
			"default_agent": "Mine",
			"agents": [{"name": "Mine", "command": "~/bin/agent", "args": "--fast, --quiet"}]
		}`
		require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))

		settings, err := LoadSettings()
		require.NoError(t, err)
		require.NotNil(t, settings.Debug)
		assert.True(t, *settings.Debug)
		require.NotNil(t, settings.ErrorClearDelay)
		assert.Equal(t, 3, *settings.ErrorClearDelay)
		require.Len(t, settings.Agents, 1)
		assert.Equal(t, StringArray{"--fast", "--quiet"}, settings.Agents[0].Args)
		assert.NotContains(t, settings.Agents[0].Command, "~")
	})

	t.Run("rejects unnamed agents", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(`{"agents":[{"command":"x"}]}`), 0644))

		_, err := LoadSettings()
		assert.ErrorContains(t, err, "agents[0] has no name")
	})

	t.Run("rejects agents without a command", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(`{"agents":[{"name":"Broken"}]}`), 0644))

		_, err := LoadSettings()
		assert.ErrorContains(t, err, "agents[0] has no command")
	})

	t.Run("rejects invalid json", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(`{`), 0644))

		_, err := LoadSettings()
		assert.ErrorContains(t, err, "invalid settings.json")
	})
}

func TestSaveSettings_RoundTripsThroughDisk(t *testing.T) {
	t.Setenv(EnvHome, filepath.Join(t.TempDir(), "nested"))
	delay := 7

	require.NoError(t, SaveSettings(&Settings{ErrorClearDelay: &delay, SSHHost: "0.0.0.0"}))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, loaded.ErrorClearDelay)
	assert.Equal(t, 7, *loaded.ErrorClearDelay)
	assert.Equal(t, "0.0.0.0", loaded.SSHHost)
}

func TestGetSettingsExample_CoversEveryField(t *testing.T) {
	fields := GetSettingsExample()

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
		assert.NotNil(t, f.Example, f.Name)
	}
	assert.Contains(t, names, "agents")
	assert.Contains(t, names, "keys")
	assert.Contains(t, names, "traffic_log_max_size_mb")
	assert.IsIncreasing(t, names)
}
