package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ElleNajt/agent-shell-manager/internal/config"
	"github.com/ElleNajt/agent-shell-manager/internal/theme"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Keys SettingsKeysCmd `cmd:"keys" help:"List or set key bindings"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		format := make(map[string]any, len(example))
		for _, field := range example {
			format[field.Name] = field.Example
		}
		data, err := json.MarshalIndent(map[string]any{
			"format":        format,
			"settings_file": settingsFile,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")

	t := newPlainTable("KEY", "EXAMPLE")
	for _, field := range example {
		t.Row(field.Name, formatExample(field.Example))
	}
	fmt.Println(t)

	fmt.Println()
	fmt.Println("Create or edit this file to configure agent-shell-manager.")
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}

func formatExample(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool, int:
		return fmt.Sprintf("%v", v)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}

// newPlainTable creates a borderless table for CLI output
func newPlainTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.TableHeaderStyle.PaddingRight(2)
			}
			return theme.NormalStyle.PaddingRight(2)
		})
}
