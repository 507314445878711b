package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElleNajt/agent-shell-manager/internal/config"
	"github.com/ElleNajt/agent-shell-manager/internal/domain"
)

type modelFixture struct {
	controller *fakeController
	model      *Model
	navigator  *fakeNavigator
	refresher  *countingRefresher
	stream     *RowStream
}

func newModelFixture(t *testing.T, opts ModelOptions, sessions ...*domain.Session) *modelFixture {
	t.Helper()
	f := &modelFixture{
		controller: newFakeController(sessions...),
		navigator:  &fakeNavigator{},
		refresher:  &countingRefresher{},
		stream:     NewRowStream(),
	}
	if opts.Agents == nil {
		opts.Agents = []config.AgentSettings{{Name: "Claude Code", Kind: "claude", Command: "claude"}}
	}
	f.model = NewModel(f.controller, f.navigator, f.stream, f.refresher, opts)
	f.model.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	t.Cleanup(f.stream.Close)
	return f
}

// push delivers rows through the stream the way a refresh loop would
func (f *modelFixture) push(rows ...domain.ViewRow) {
	f.stream.Sink(rows, nil)
	f.model.Update(f.model.Init()())
}

func (f *modelFixture) press(keys string) tea.Cmd {
	var msg tea.KeyMsg
	switch keys {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	}
	_, cmd := f.model.Update(msg)
	return cmd
}

func testSession(id string) *domain.Session {
	return &domain.Session{
		DisplayName: "Claude Code Agent @ " + id,
		ID:          id,
		WorkingDir:  "/work/" + id,
	}
}

func TestModelShowsPushedRows(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})

	f.push(viewRow("a", domain.StatusReady, time.Minute), viewRow("b", domain.StatusKilled, 0))

	assert.Equal(t, []string{"a", "b"}, rowIDs(f.model.dashboard.Rows()))
	assert.Contains(t, f.model.View(), "Agent a")
}

func TestModelRefreshErrorKeepsRows(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})
	f.push(viewRow("a", domain.StatusReady, time.Minute))

	f.stream.Sink(nil, errors.New("database is locked"))
	_, cmd := f.model.Update(f.model.Init()())

	assert.NotNil(t, cmd)
	assert.Equal(t, []string{"a"}, rowIDs(f.model.dashboard.Rows()))
	require.Error(t, f.model.errorManager.Error())
	assert.Contains(t, f.model.errorManager.Error().Error(), "database is locked")
}

func TestModelKillAsksForConfirmation(t *testing.T) {
	f := newModelFixture(t, ModelOptions{}, testSession("a"))
	f.push(viewRow("a", domain.StatusReady, time.Minute))

	f.press("x")

	assert.Equal(t, stateConfirming, f.model.state)
	assert.Empty(t, f.controller.Calls(), "nothing runs before confirmation")
	require.NotNil(t, f.model.onConfirm)

	msg := f.model.onConfirm()
	result, ok := msg.(actionResultMsg)
	require.True(t, ok)
	assert.NoError(t, result.err)
	assert.Equal(t, []string{"kill a"}, f.controller.Calls())
}

func TestModelEscCancelsDialog(t *testing.T) {
	f := newModelFixture(t, ModelOptions{}, testSession("a"))
	f.push(viewRow("a", domain.StatusReady, time.Minute))

	f.press("R")
	require.Equal(t, stateConfirming, f.model.state)

	f.press("esc")

	assert.Equal(t, stateList, f.model.state)
	assert.Nil(t, f.model.dialog)
	assert.Empty(t, f.controller.Calls())
}

func TestModelKeysWithoutSelectionDoNothing(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})

	assert.Nil(t, f.press("x"))
	assert.Nil(t, f.press("enter"))
	assert.Equal(t, stateList, f.model.state)
}

func TestModelOpenReusesSurface(t *testing.T) {
	f := newModelFixture(t, ModelOptions{}, testSession("a"))
	f.push(viewRow("a", domain.StatusReady, time.Minute))

	cmd := f.press("enter")
	require.NotNil(t, cmd)

	msg, ok := cmd().(navigatedMsg)
	require.True(t, ok)
	assert.False(t, msg.needsSurface)
	assert.Equal(t, []string{"a"}, f.navigator.navigated)

	_, next := f.model.Update(msg)
	assert.Nil(t, next)
	assert.Equal(t, int32(1), f.refresher.triggers.Load())
}

func TestModelOpenOverSSHCannotCreateSurface(t *testing.T) {
	f := newModelFixture(t, ModelOptions{Remote: true}, testSession("a"))
	f.navigator.needsSurface = true
	f.push(viewRow("a", domain.StatusReady, time.Minute))

	msg := f.press("enter")()
	f.model.Update(msg)

	assert.ErrorIs(t, f.model.errorManager.Error(), ErrNeedsLocalTerminal)
	assert.Empty(t, f.controller.Calls(), "no attach command is built")
}

func TestModelOpenGoneSession(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})
	f.push(viewRow("gone", domain.StatusKilled, 0))

	msg := f.press("enter")()
	f.model.Update(msg)

	assert.ErrorIs(t, f.model.errorManager.Error(), domain.ErrSessionGone)
	assert.Empty(t, f.navigator.navigated)
}

func TestModelSortKey(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})
	f.push(viewRow("z", domain.StatusReady, time.Second), viewRow("a", domain.StatusReady, time.Minute))

	f.press("s")

	assert.Equal(t, domain.SortByName, f.model.dashboard.SortColumn())
	assert.Equal(t, []string{"a", "z"}, rowIDs(f.model.dashboard.Rows()))
	assert.Equal(t, "Sorted by name", f.model.errorManager.Notice())
}

func TestModelRefreshKey(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})

	_, _ = f.model.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.Equal(t, int32(1), f.refresher.triggers.Load())
}

func TestModelCreateWithSingleAgent(t *testing.T) {
	f := newModelFixture(t, ModelOptions{WorkingDir: "/work/api"})

	cmd := f.press("n")
	require.NotNil(t, cmd)

	result, ok := cmd().(actionResultMsg)
	require.True(t, ok)
	assert.NoError(t, result.err)
	require.Len(t, f.controller.created, 1)
	assert.Equal(t, "Claude Code", f.controller.created[0].ConfigName)
	assert.Equal(t, "/work/api", f.controller.created[0].WorkingDir)
}

func TestModelCreateWithSeveralAgentsAsks(t *testing.T) {
	f := newModelFixture(t, ModelOptions{
		Agents: []config.AgentSettings{
			{Name: "Claude Code", Kind: "claude", Command: "claude"},
			{Name: "Codex", Kind: "codex", Command: "codex"},
		},
		DefaultAgent: "Codex",
		WorkingDir:   "/work/api",
	})

	f.press("n")

	require.Equal(t, stateChoosing, f.model.state)
	assert.Equal(t, "Codex", *f.model.choice)

	result, ok := f.model.onChoice("Codex")().(actionResultMsg)
	require.True(t, ok)
	assert.NoError(t, result.err)
	require.Len(t, f.controller.created, 1)
	assert.Equal(t, "codex", f.controller.created[0].Kind)
}

func TestModelSetModeWithoutModes(t *testing.T) {
	f := newModelFixture(t, ModelOptions{}, testSession("a"))
	f.push(viewRow("a", domain.StatusReady, time.Minute))

	f.press("M")

	assert.Equal(t, stateList, f.model.state)
	assert.ErrorIs(t, f.model.errorManager.Error(), domain.ErrNoModes)
}

func TestModelSetModeChoosesFromAvailableModes(t *testing.T) {
	session := testSession("a")
	session.AvailableModes = []domain.Mode{{ID: "default", Name: "Default"}, {ID: "plan", Name: "Plan"}}
	session.ModeID = "plan"
	f := newModelFixture(t, ModelOptions{}, session)
	f.push(viewRow("a", domain.StatusReady, time.Minute))

	f.press("M")

	require.Equal(t, stateChoosing, f.model.state)
	assert.Equal(t, "plan", *f.model.choice)

	f.model.onChoice("default")()
	assert.Equal(t, []string{"set-mode a default"}, f.controller.Calls())
}

func TestModelDeleteKilledWithNone(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})

	f.press("D")

	assert.Equal(t, stateList, f.model.state)
	assert.Equal(t, "No killed sessions", f.model.errorManager.Notice())
}

func TestModelDeleteKilledDeletesConfirmedBatch(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})
	f.controller.killed = []*domain.Session{testSession("a"), testSession("b")}

	f.press("D")
	require.Equal(t, stateConfirming, f.model.state)

	// A session killed after the prompt is not part of the batch
	f.controller.killed = append(f.controller.killed, testSession("c"))

	result, ok := f.model.onConfirm().(actionResultMsg)
	require.True(t, ok)
	assert.Equal(t, "Deleted 2 killed sessions", result.notice)
	require.Len(t, f.controller.deleted, 2)
	assert.Equal(t, "a", f.controller.deleted[0].ID)
	assert.Equal(t, "b", f.controller.deleted[1].ID)
}

func TestModelActionFailureIsShown(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})

	f.model.Update(actionResultMsg{action: "kill", err: errors.New("permission denied")})

	require.Error(t, f.model.errorManager.Error())
	assert.Contains(t, f.model.View(), "kill failed: permission denied")
}

func TestModelTrafficOverSSH(t *testing.T) {
	f := newModelFixture(t, ModelOptions{Remote: true}, testSession("a"))
	f.push(viewRow("a", domain.StatusReady, time.Minute))

	f.press("l")

	assert.ErrorIs(t, f.model.errorManager.Error(), ErrNeedsLocalTerminal)
	assert.Empty(t, f.controller.Calls())
}

func TestModelHelpScreen(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})

	f.press("?")
	require.Equal(t, stateHelp, f.model.state)
	assert.Contains(t, f.model.View(), "delete killed sessions")

	f.press("esc")
	assert.Equal(t, stateList, f.model.state)
}

func TestModelQuit(t *testing.T) {
	f := newModelFixture(t, ModelOptions{})

	cmd := f.press("q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
