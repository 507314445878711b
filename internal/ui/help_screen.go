package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
	"github.com/ElleNajt/agent-shell-manager/internal/theme"
)

// HelpScreen displays keyboard shortcuts and the status legend
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

var statusDescriptions = map[domain.Status]string{
	domain.StatusInitializing: "agent starting, no handshake yet",
	domain.StatusKilled:       "agent process is gone",
	domain.StatusReady:        "idle, waiting for a prompt",
	domain.StatusUnknown:      "initialized but no session negotiated",
	domain.StatusWaiting:      "a tool call needs permission",
	domain.StatusWorking:      "running a turn or a tool call",
}

func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

func buildHelpContent(keys *KeyMap) string {
	var b strings.Builder

	groups := []string{"Navigation", "Session Control", "Application"}
	for i, bindings := range keys.FullHelp() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(theme.HelpGroupStyle.Render(groups[i]) + "\n")
		for _, binding := range bindings {
			b.WriteString(renderBinding(binding))
		}
	}

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Statuses") + "\n")
	for _, status := range domain.AllStatuses {
		b.WriteString(theme.HelpKeyStyle.Render(theme.RenderStatus(status)) +
			theme.HelpDescStyle.Render(statusDescriptions[status]) + "\n")
	}

	return b.String()
}

// NewHelpScreen creates a help screen for keys
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit, h.keys.Application.Help) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}
	footer := theme.HelpStyle.Render("Press esc, q, h, or ? to close • ↑↓/jk/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
