package tmux

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
	"github.com/ElleNajt/agent-shell-manager/internal/ports"
	portsmocks "github.com/ElleNajt/agent-shell-manager/internal/ports/mocks"
)

func agentRegistry(t *testing.T, ids ...string) *portsmocks.MockSessionRegistry {
	registry := portsmocks.NewMockSessionRegistry(t)
	registry.EXPECT().ListIDs(mock.Anything).Return(ids, nil).Maybe()
	return registry
}

func TestWorkspaceProvider_ListWorkspacesExcludesAgents(t *testing.T) {
	client := newFakeClient("claude-api", "dotfiles", "work")

	workspaces, err := NewWorkspaceProvider(client, agentRegistry(t, "claude-api")).ListWorkspaces(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"dotfiles", "work"}, workspaces)
}

func TestWorkspaceProvider_ContainsDir(t *testing.T) {
	client := newFakeClient("work")
	client.panes = []ports.TmuxPane{
		{SessionName: "work", CurrentPath: "/home/me/src"},
		{SessionName: "other", CurrentPath: "/"},
	}
	provider := NewWorkspaceProvider(client, agentRegistry(t))
	ctx := context.Background()

	contains, err := provider.ContainsDir(ctx, "work", "/home/me/src/api")
	require.NoError(t, err)
	assert.True(t, contains)

	contains, err = provider.ContainsDir(ctx, "work", "/home/me/srcs")
	require.NoError(t, err)
	assert.False(t, contains)
}

func TestWorkspaceProvider_SwitchTo(t *testing.T) {
	client := newFakeClient("work")

	require.NoError(t, NewWorkspaceProvider(client, agentRegistry(t)).SwitchTo(context.Background(), "work"))

	assert.Equal(t, []switchCall{{session: "work"}}, client.switched)
}

func TestSurfaceLocator(t *testing.T) {
	client := newFakeClient("a", "b", "work")
	client.clients = []ports.TmuxClientInfo{
		{TTY: "/dev/pts/1", SessionName: "work"},
		{TTY: "/dev/pts/2", SessionName: "b"},
	}
	locator := NewSurfaceLocator(client, agentRegistry(t, "a", "b"))
	ctx := context.Background()

	_, ok, err := locator.VisibleSurface(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	tty, ok, err := locator.VisibleSurface(ctx, "b")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/dev/pts/2", tty)

	tty, ok, err = locator.AgentSurface(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/dev/pts/2", tty, "workspace clients are not agent surfaces")

	_, ok, err = locator.AgentSurface(ctx, "b")
	require.NoError(t, err)
	assert.False(t, ok, "the excluded session does not count")

	require.NoError(t, locator.Present(ctx, "/dev/pts/2", "a"))
	assert.Equal(t, []switchCall{{session: "a", tty: "/dev/pts/2"}}, client.switched)
}

func modalSession(current string) *domain.Session {
	return &domain.Session{
		AvailableModes: []domain.Mode{{ID: "default"}, {ID: "accept"}, {ID: "plan"}},
		ID:             "a",
		ModeID:         current,
	}
}

func TestModeController_CycleMode(t *testing.T) {
	client := newFakeClient("a")
	publisher := portsmocks.NewMockSessionRepository(t)
	publisher.EXPECT().UpdateMode(mock.Anything, "a", "default", []domain.Mode(nil)).Return(nil)

	err := NewModeController(client, publisher, "").CycleMode(context.Background(), modalSession("plan"))

	require.NoError(t, err)
	assert.Equal(t, []sentKeys{{session: "a", keys: []string{"BTab"}}}, client.sent)
}

func TestModeController_CycleModeWithoutKnownModes(t *testing.T) {
	client := newFakeClient("a")

	err := NewModeController(client, portsmocks.NewMockSessionRepository(t), "S-Tab").CycleMode(context.Background(), &domain.Session{ID: "a"})

	require.NoError(t, err)
	assert.Equal(t, []sentKeys{{session: "a", keys: []string{"S-Tab"}}}, client.sent)
}

func TestModeController_SetMode(t *testing.T) {
	tests := []struct {
		name    string
		current string
		target  string
		presses int
	}{
		{name: "forward", current: "default", target: "plan", presses: 2},
		{name: "wraps around", current: "plan", target: "accept", presses: 2},
		{name: "unknown current starts at first", current: "", target: "accept", presses: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newFakeClient("a")
			publisher := portsmocks.NewMockSessionRepository(t)
			publisher.EXPECT().UpdateMode(mock.Anything, "a", tt.target, []domain.Mode(nil)).Return(nil)

			err := NewModeController(client, publisher, "").SetMode(context.Background(), modalSession(tt.current), tt.target)

			require.NoError(t, err)
			require.Len(t, client.sent, 1)
			assert.Len(t, client.sent[0].keys, tt.presses)
		})
	}
}

func TestModeController_SetModeNoop(t *testing.T) {
	client := newFakeClient("a")

	err := NewModeController(client, portsmocks.NewMockSessionRepository(t), "").SetMode(context.Background(), modalSession("plan"), "plan")

	require.NoError(t, err)
	assert.Empty(t, client.sent)
}

func TestModeController_SetModeUnknown(t *testing.T) {
	client := newFakeClient("a")

	err := NewModeController(client, portsmocks.NewMockSessionRepository(t), "").SetMode(context.Background(), modalSession("plan"), "yolo")

	require.ErrorIs(t, err, domain.ErrUnknownMode)
}
