package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
	"github.com/ElleNajt/agent-shell-manager/internal/theme"
)

// ListCmd prints the dashboard rows once
type ListCmd struct {
	JSON bool   `help:"Output as JSON"`
	Sort string `help:"Sort column" enum:"recency,name,status,mode" default:"recency"`
}

type listEntry struct {
	Activity      string `json:"activity"`
	DisplayName   string `json:"display_name"`
	ID            string `json:"id"`
	Mode          string `json:"mode"`
	SessionStatus string `json:"session_status"`
	Status        string `json:"status"`
}

// Run executes the list command
func (l *ListCmd) Run(cli *CLI) error {
	cli.Container.RestoreActivity()
	rows, err := cli.Container.Builder.Build(context.Background())
	if err != nil {
		return fmt.Errorf("failed to build rows: %w", err)
	}
	domain.SortRowsBy(rows, parseSortColumn(l.Sort))

	if l.JSON {
		return printRowsJSON(os.Stdout, rows)
	}
	return printRowsTable(os.Stdout, rows)
}

func parseSortColumn(name string) domain.SortColumn {
	for _, column := range domain.SortColumns {
		if column.String() == name {
			return column
		}
	}
	return domain.SortByRecency
}

func printRowsJSON(w io.Writer, rows []domain.ViewRow) error {
	entries := make([]listEntry, len(rows))
	for i, row := range rows {
		entries[i] = listEntry{
			Activity:      row.Activity,
			DisplayName:   row.DisplayName,
			ID:            row.SessionID,
			Mode:          row.Mode,
			SessionStatus: string(row.SessionStatus),
			Status:        string(row.Status),
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func printRowsTable(w io.Writer, rows []domain.ViewRow) error {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No sessions")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.TableBorderStyle).
		Headers("ID", "STATUS", "AGENT", "MODE", "SESSION", "ACTIVITY").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.TableHeaderStyle
			}
			if col == 1 && row < len(rows) {
				return theme.StatusStyle(rows[row].Status)
			}
			return theme.NormalStyle
		})

	for _, row := range rows {
		t.Row(
			row.SessionID,
			theme.StatusIcon(row.Status)+" "+string(row.Status),
			row.DisplayName,
			row.Mode,
			string(row.SessionStatus),
			row.Activity,
		)
	}

	fmt.Fprintln(w, t)
	return nil
}
