package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
)

// Main UI styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HeaderCountStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	SortIndicatorStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0, 0, 0)
)

// Table styles
var (
	// TableBorderStyle colors border runes; lipgloss/table draws the runes itself
	TableBorderStyle = lipgloss.NewStyle().
				Foreground(ColorBorder)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSubtle).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder).
				BorderBottom(true)

	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Background(ColorSelected).
				Bold(true)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

var statusColors = map[domain.Status]Color{
	domain.StatusInitializing: ColorInitializing,
	domain.StatusKilled:       ColorKilled,
	domain.StatusReady:        ColorReady,
	domain.StatusUnknown:      ColorUnknown,
	domain.StatusWaiting:      ColorWaiting,
	domain.StatusWorking:      ColorWorking,
}

var statusIcons = map[domain.Status]string{
	domain.StatusInitializing: "◌",
	domain.StatusKilled:       "■",
	domain.StatusReady:        "○",
	domain.StatusUnknown:      "?",
	domain.StatusWaiting:      "◐",
	domain.StatusWorking:      "●",
}

// StatusColor returns the display color of a status
func StatusColor(s domain.Status) Color {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return ColorUnknown
}

// StatusIcon returns the single-cell glyph for a status
func StatusIcon(s domain.Status) string {
	if icon, ok := statusIcons[s]; ok {
		return icon
	}
	return statusIcons[domain.StatusUnknown]
}

// StatusStyle returns the foreground style of a status
func StatusStyle(s domain.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(StatusColor(s))
}

// RenderStatus renders a status as icon plus name
func RenderStatus(s domain.Status) string {
	return StatusStyle(s).Render(StatusIcon(s) + " " + string(s))
}
