package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ElleNajt/agent-shell-manager/internal/theme"
)

// VersionInfo holds version information for display in headers.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo is used until SetVersionInfo is called
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   "a live dashboard over your coding agents",
	Version:   "dev",
}

var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// renderHeader renders the app name, optional version line and tagline.
// A non-empty subtitle is rendered below as the dialog title.
func renderHeader(devMode bool, subtitle string) string {
	header := theme.AppNameStyle.Render("agent-shell-manager")
	if devMode {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		header += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			versionInfo.Version, commit, versionInfo.Date, versionInfo.GoVersion))
	}
	header += "\n" + theme.TaglineStyle.Render(versionInfo.Tagline)

	if subtitle != "" {
		header += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}
	return header + "\n"
}

// Dialog wraps any tea.Model and prepends the application header with a title
type Dialog struct {
	content tea.Model
	devMode bool
	title   string
}

// NewDialog creates a dialog around content
func NewDialog(title string, content tea.Model, devMode bool) *Dialog {
	return &Dialog{
		content: content,
		devMode: devMode,
		title:   title,
	}
}

// Init delegates to the wrapped content
func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to the wrapped content and keeps the Dialog as the model
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := d.content.Update(msg)
	d.content = updated
	return d, cmd
}

// View renders header plus content
func (d *Dialog) View() string {
	return renderHeader(d.devMode, d.title) + d.content.View()
}

// Content returns the wrapped content for type assertion
func (d *Dialog) Content() tea.Model {
	return d.content
}
