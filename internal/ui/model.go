package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ElleNajt/agent-shell-manager/internal/config"
	"github.com/ElleNajt/agent-shell-manager/internal/domain"
	"github.com/ElleNajt/agent-shell-manager/internal/logging"
	"github.com/ElleNajt/agent-shell-manager/internal/services"
	"github.com/ElleNajt/agent-shell-manager/internal/theme"
)

type uiState int

const (
	stateList uiState = iota
	stateChoosing
	stateConfirming
	stateHelp
)

// Lines around the table: title (2), counts (1), bottom bar (2), key help (1), spacing (1)
const layoutOverhead = 7

// maxListedSessions bounds the names listed in a delete confirmation
const maxListedSessions = 5

// ModelOptions configures a dashboard Model
type ModelOptions struct {
	Agents          []config.AgentSettings
	DefaultAgent    string
	DevMode         bool
	ErrorClearDelay time.Duration
	Keys            config.KeyBindingsConfig
	// Remote marks a dashboard served over SSH; it cannot take over the terminal
	Remote          bool
	SwitchWorkspace bool
	WorkingDir      string
}

// Model is the dashboard program. Rows are pushed in through a RowStream by a
// refresh loop; the model never builds rows itself.
type Model struct {
	agents       []config.AgentSettings
	choice       *string
	confirmed    *bool
	controller   SessionController
	dashboard    *Dashboard
	defaultAgent string
	devMode      bool
	dialog       *Dialog
	errorManager *ErrorManager
	height       int
	help         help.Model
	helpScreen   *Dialog
	keys         KeyMap
	onChoice     func(string) tea.Cmd
	onConfirm    tea.Cmd
	ops          *SessionOperations
	refresher    services.Refresher
	remote       bool
	rows         *RowStream
	state        uiState
	width        int
	workingDir   string
}

// NewModel creates a dashboard fed by rows. refresher is asked for an
// immediate rebuild whenever the operator expects the table to change.
func NewModel(
	controller SessionController,
	navigator SessionNavigator,
	rows *RowStream,
	refresher services.Refresher,
	opts ModelOptions,
) *Model {
	if refresher == nil {
		refresher = services.NopRefresher()
	}
	if opts.ErrorClearDelay <= 0 {
		opts.ErrorClearDelay = config.DefaultErrorClearDelay * time.Second
	}

	return &Model{
		agents:       opts.Agents,
		controller:   controller,
		dashboard:    NewDashboard(),
		defaultAgent: opts.DefaultAgent,
		devMode:      opts.DevMode,
		errorManager: NewErrorManager(opts.ErrorClearDelay),
		help:         help.New(),
		keys:         NewKeyMap(opts.Keys),
		ops:          NewSessionOperations(controller, navigator, opts.SwitchWorkspace),
		refresher:    refresher,
		remote:       opts.Remote,
		rows:         rows,
		state:        stateList,
		workingDir:   opts.WorkingDir,
	}
}

// Init waits for the first refresh result
func (m *Model) Init() tea.Cmd {
	return m.rows.Next()
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.dashboard.SetSize(msg.Width, msg.Height-layoutOverhead)
		if m.state == stateList {
			return m, nil
		}

	case RowsMsg:
		return m, m.handleRows(msg)

	case clearErrorMsg:
		m.errorManager.HandleClear(msg)
		return m, nil

	case actionResultMsg:
		if msg.err != nil {
			return m, m.errorManager.SetError(fmt.Errorf("%s failed: %w", msg.action, msg.err))
		}
		if msg.notice != "" {
			return m, m.errorManager.SetNotice(msg.notice)
		}
		return m, nil

	case navigatedMsg:
		return m, m.handleNavigated(msg)

	case detachedMsg:
		m.refresher.Trigger()
		if msg.err != nil {
			return m, m.errorManager.SetError(fmt.Errorf("%s: %w", msg.id, msg.err))
		}
		return m, nil
	}

	switch m.state {
	case stateChoosing, stateConfirming:
		return m.updateDialog(msg)
	case stateHelp:
		return m.updateHelp(msg)
	}
	return m.updateList(msg)
}

func (m *Model) handleRows(msg RowsMsg) tea.Cmd {
	next := m.rows.Next()
	if msg.Err != nil {
		logging.Logger.Warn("Refresh failed", "error", msg.Err)
		return tea.Batch(next, m.errorManager.SetError(fmt.Errorf("refresh failed: %w", msg.Err)))
	}
	m.dashboard.SetRows(msg.Rows)
	return next
}

func (m *Model) handleNavigated(msg navigatedMsg) tea.Cmd {
	m.refresher.Trigger()
	if msg.err != nil {
		return m.errorManager.SetError(fmt.Errorf("failed to open %s: %w", msg.id, msg.err))
	}
	if !msg.needsSurface {
		return nil
	}
	if m.remote {
		return m.errorManager.SetError(ErrNeedsLocalTerminal)
	}
	return m.ops.Attach(msg.id)
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Application.ForceQuit, m.keys.Application.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Application.Help):
		return m, m.showHelp()
	case key.Matches(keyMsg, m.keys.Application.Refresh):
		m.refresher.Trigger()
		return m, nil
	case key.Matches(keyMsg, m.keys.Application.Sort):
		column := m.dashboard.CycleSort()
		return m, m.errorManager.SetNotice("Sorted by " + column.String())
	case key.Matches(keyMsg, m.keys.Application.ToggleLogging):
		return m, m.ops.ToggleLogging()
	case key.Matches(keyMsg, m.keys.Navigation.Up):
		m.dashboard.MoveUp()
		return m, nil
	case key.Matches(keyMsg, m.keys.Navigation.Down):
		m.dashboard.MoveDown()
		return m, nil
	case key.Matches(keyMsg, m.keys.Session.New):
		return m, m.chooseAgent()
	case key.Matches(keyMsg, m.keys.Session.DeleteKilled):
		return m, m.confirmDeleteKilled()
	}

	row, ok := m.dashboard.Selected()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Navigation.Open):
		return m, m.ops.Open(row.SessionID)
	case key.Matches(keyMsg, m.keys.Session.Kill):
		return m, m.confirm("Kill Session",
			fmt.Sprintf("Kill %s?", row.DisplayName),
			"The agent is stopped. The row stays until killed sessions are deleted.",
			m.ops.Kill(row.SessionID))
	case key.Matches(keyMsg, m.keys.Session.Restart):
		return m, m.confirm("Restart Session",
			fmt.Sprintf("Restart %s?", row.DisplayName),
			"The session is stopped, removed and created again with the same configuration.",
			m.ops.Restart(row.SessionID))
	case key.Matches(keyMsg, m.keys.Session.CycleMode):
		return m, m.ops.CycleMode(row.SessionID)
	case key.Matches(keyMsg, m.keys.Session.SetMode):
		return m, m.chooseMode(row)
	case key.Matches(keyMsg, m.keys.Session.Interrupt):
		return m, m.ops.Interrupt(row.SessionID)
	case key.Matches(keyMsg, m.keys.Session.Traffic):
		if m.remote {
			return m, m.errorManager.SetError(ErrNeedsLocalTerminal)
		}
		return m, m.ops.ViewTraffic(row.SessionID)
	}

	return m, nil
}

func (m *Model) showHelp() tea.Cmd {
	m.helpScreen = NewDialog("Help", NewHelpScreen(&m.keys), m.devMode)
	m.state = stateHelp
	initCmd := m.helpScreen.Init()
	updated, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.helpScreen = updated.(*Dialog)
	return tea.Batch(initCmd, sizeCmd)
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateList
		m.helpScreen = nil
		return m, nil
	}
	return m, cmd
}

// chooseAgent asks which agent to create; a single agent is created directly
func (m *Model) chooseAgent() tea.Cmd {
	if len(m.agents) == 0 {
		return m.errorManager.SetError(errors.New("no agents configured"))
	}
	if len(m.agents) == 1 {
		return m.ops.Create(m.agents[0].SessionConfig(m.workingDir), m.workingDir)
	}

	options := make([]huh.Option[string], len(m.agents))
	for i, agent := range m.agents {
		options[i] = huh.NewOption(agent.Name, agent.Name)
	}
	initial := m.agents[0].Name
	for _, agent := range m.agents {
		if agent.Name == m.defaultAgent {
			initial = agent.Name
		}
	}

	return m.choose("Create Session", "Agent", options, initial, func(name string) tea.Cmd {
		for _, agent := range m.agents {
			if agent.Name == name {
				return m.ops.Create(agent.SessionConfig(m.workingDir), m.workingDir)
			}
		}
		return nil
	})
}

func (m *Model) chooseMode(row domain.ViewRow) tea.Cmd {
	session, err := m.controller.Lookup(context.Background(), row.SessionID)
	if err != nil {
		return m.errorManager.SetError(err)
	}
	if len(session.AvailableModes) == 0 {
		return m.errorManager.SetError(fmt.Errorf("%s: %w", session.ID, domain.ErrNoModes))
	}

	options := make([]huh.Option[string], len(session.AvailableModes))
	for i, mode := range session.AvailableModes {
		label := mode.Name
		if label == "" {
			label = mode.ID
		}
		options[i] = huh.NewOption(label, mode.ID)
	}
	initial := session.ModeID
	if session.ModeIndex(initial) < 0 {
		initial = session.AvailableModes[0].ID
	}

	id := session.ID
	return m.choose("Set Mode", session.DisplayName, options, initial, func(modeID string) tea.Cmd {
		return m.ops.SetMode(id, modeID)
	})
}

// confirmDeleteKilled captures the killed batch now, so only the sessions the
// operator saw are deleted
func (m *Model) confirmDeleteKilled() tea.Cmd {
	batch, err := m.controller.KilledSessions(context.Background())
	if errors.Is(err, domain.ErrNoKilledSessions) {
		return m.errorManager.SetNotice("No killed sessions")
	}
	if err != nil {
		return m.errorManager.SetError(err)
	}

	names := make([]string, 0, maxListedSessions)
	for i, session := range batch {
		if i == maxListedSessions {
			names = append(names, fmt.Sprintf("and %d more", len(batch)-maxListedSessions))
			break
		}
		names = append(names, session.DisplayName)
	}

	return m.confirm("Delete Killed Sessions",
		fmt.Sprintf("Delete %d killed sessions?", len(batch)),
		strings.Join(names, "\n"),
		m.ops.DeleteSessions(batch))
}

func (m *Model) confirm(dialogTitle, title, description string, action tea.Cmd) tea.Cmd {
	confirmed := false
	m.confirmed = &confirmed
	m.onConfirm = action

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Value(m.confirmed).
				Affirmative("Yes").
				Negative("No"),
		),
	)
	m.dialog = NewDialog(dialogTitle, form, m.devMode)
	m.state = stateConfirming
	return m.dialog.Init()
}

func (m *Model) choose(dialogTitle, title string, options []huh.Option[string], initial string, onChoice func(string) tea.Cmd) tea.Cmd {
	choice := initial
	m.choice = &choice
	m.onChoice = onChoice

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(m.choice),
		),
	)
	m.dialog = NewDialog(dialogTitle, form, m.devMode)
	m.state = stateChoosing
	return m.dialog.Init()
}

func (m *Model) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || key.Matches(keyMsg, m.keys.Application.ForceQuit) {
			m.closeDialog()
			return m, nil
		}
	}
	if m.dialog == nil {
		m.state = stateList
		return m, nil
	}

	updated, cmd := m.dialog.Update(msg)
	m.dialog = updated.(*Dialog)

	form, ok := m.dialog.Content().(*huh.Form)
	if !ok {
		return m, cmd
	}
	switch form.State {
	case huh.StateCompleted:
		var action tea.Cmd
		if m.state == stateConfirming && *m.confirmed {
			action = m.onConfirm
		}
		if m.state == stateChoosing {
			action = m.onChoice(*m.choice)
		}
		m.closeDialog()
		return m, action
	case huh.StateAborted:
		m.closeDialog()
		return m, nil
	}
	return m, cmd
}

func (m *Model) closeDialog() {
	m.choice = nil
	m.confirmed = nil
	m.dialog = nil
	m.onChoice = nil
	m.onConfirm = nil
	m.state = stateList
}

// View implements tea.Model
func (m *Model) View() string {
	switch m.state {
	case stateHelp:
		if m.helpScreen != nil {
			return m.helpScreen.View()
		}
	case stateChoosing, stateConfirming:
		if m.dialog != nil {
			return m.dialog.View()
		}
	}

	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("agent-shell-manager"))
	b.WriteString(theme.SortIndicatorStyle.Render("  sorted by " + m.dashboard.SortColumn().String()))
	b.WriteString("\n")
	b.WriteString(m.dashboard.View())
	b.WriteString("\n")

	// Bottom bar is a fixed 2 lines; errors take priority over notices
	switch {
	case m.errorManager.Error() != nil:
		errorText := formatErrorForDisplay(m.errorManager.Error(), m.width)
		if !strings.Contains(errorText, "\n") {
			errorText += "\n"
		}
		b.WriteString(theme.ErrorStyle.Render(errorText))
	case m.errorManager.Notice() != "":
		b.WriteString(theme.MutedStyle.Render(m.errorManager.Notice()) + "\n")
	default:
		b.WriteString(" \n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}
