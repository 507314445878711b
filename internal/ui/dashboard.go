package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
	"github.com/ElleNajt/agent-shell-manager/internal/theme"
)

const (
	activityColumnWidth = 10
	minAgentColumnWidth = 20
	modeColumnWidth     = 14
	sessionColumnWidth  = 8
	statusColumnWidth   = 16
)

// Dashboard is the session table. Rows arrive already ordered by recency;
// the dashboard re-sorts them by the chosen column without losing the
// selected session.
type Dashboard struct {
	column domain.SortColumn
	rows   []domain.ViewRow
	table  table.Model
	width  int
}

// NewDashboard creates an empty dashboard sorted by recency
func NewDashboard() *Dashboard {
	t := table.New(
		table.WithColumns(dashboardColumns(0, domain.SortByRecency)),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = theme.TableHeaderStyle
	styles.Selected = theme.TableSelectedStyle
	t.SetStyles(styles)

	return &Dashboard{
		column: domain.SortByRecency,
		table:  t,
	}
}

// SetRows replaces the displayed rows, keeping the cursor on the same session
func (d *Dashboard) SetRows(rows []domain.ViewRow) {
	selected, hadSelection := d.Selected()

	d.rows = append([]domain.ViewRow(nil), rows...)
	domain.SortRowsBy(d.rows, d.column)
	d.render()

	if !hadSelection {
		return
	}
	for i, row := range d.rows {
		if row.SessionID == selected.SessionID {
			d.table.SetCursor(i)
			return
		}
	}
}

// CycleSort advances to the next sort column and returns it
func (d *Dashboard) CycleSort() domain.SortColumn {
	d.column = d.column.Next()
	d.SetRows(d.rows)
	d.table.SetColumns(dashboardColumns(d.width, d.column))
	return d.column
}

// SortColumn returns the active sort column
func (d *Dashboard) SortColumn() domain.SortColumn {
	return d.column
}

// Rows returns the displayed rows in display order
func (d *Dashboard) Rows() []domain.ViewRow {
	return d.rows
}

// Selected returns the row under the cursor
func (d *Dashboard) Selected() (domain.ViewRow, bool) {
	cursor := d.table.Cursor()
	if cursor < 0 || cursor >= len(d.rows) {
		return domain.ViewRow{}, false
	}
	return d.rows[cursor], true
}

// MoveUp moves the cursor one row up
func (d *Dashboard) MoveUp() {
	d.table.MoveUp(1)
}

// MoveDown moves the cursor one row down
func (d *Dashboard) MoveDown() {
	d.table.MoveDown(1)
}

// SetSize fits the table into width x height cells
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.table.SetColumns(dashboardColumns(width, d.column))
	d.table.SetWidth(width)
	d.table.SetHeight(max(height, 1))
}

// View renders the status counts line above the table
func (d *Dashboard) View() string {
	return renderStatusCounts(d.rows) + "\n" + d.table.View()
}

func (d *Dashboard) render() {
	tableRows := make([]table.Row, len(d.rows))
	for i, row := range d.rows {
		tableRows[i] = table.Row{
			theme.StatusIcon(row.Status) + " " + string(row.Status),
			row.DisplayName,
			row.Mode,
			string(row.SessionStatus),
			row.Activity,
		}
	}
	d.table.SetRows(tableRows)
}

func dashboardColumns(width int, sortColumn domain.SortColumn) []table.Column {
	fixed := statusColumnWidth + modeColumnWidth + sessionColumnWidth + activityColumnWidth
	agentWidth := max(width-fixed-10, minAgentColumnWidth)

	title := func(name string, column domain.SortColumn) string {
		if column == sortColumn {
			return name + " ▾"
		}
		return name
	}

	return []table.Column{
		{Title: title("Status", domain.SortByStatus), Width: statusColumnWidth},
		{Title: title("Agent", domain.SortByName), Width: agentWidth},
		{Title: title("Mode", domain.SortByMode), Width: modeColumnWidth},
		{Title: "Session", Width: sessionColumnWidth},
		{Title: title("Activity", domain.SortByRecency), Width: activityColumnWidth},
	}
}

// StatusCounts counts rows per status
func StatusCounts(rows []domain.ViewRow) map[domain.Status]int {
	counts := make(map[domain.Status]int, len(domain.AllStatuses))
	for _, row := range rows {
		counts[row.Status]++
	}
	return counts
}

func renderStatusCounts(rows []domain.ViewRow) string {
	if len(rows) == 0 {
		return theme.MutedStyle.Render("No sessions. Press n to create one.")
	}

	counts := StatusCounts(rows)
	parts := make([]string, 0, len(domain.AllStatuses)+1)
	parts = append(parts, theme.HeaderCountStyle.Render(fmt.Sprintf("%d sessions", len(rows))))
	for _, status := range domain.AllStatuses {
		if counts[status] == 0 {
			continue
		}
		parts = append(parts, theme.StatusStyle(status).Render(
			fmt.Sprintf("%s %d %s", theme.StatusIcon(status), counts[status], status)))
	}
	return strings.Join(parts, theme.MutedStyle.Render(" · "))
}
