package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
	portsmocks "github.com/ElleNajt/agent-shell-manager/internal/ports/mocks"
)

func TestNavigator_ResolveWorkspace_FirstMatchWins(t *testing.T) {
	workspaces := portsmocks.NewMockWorkspaceProvider(t)
	workspaces.EXPECT().ListWorkspaces(mock.Anything).Return([]string{"w1", "w2", "w3"}, nil)
	workspaces.EXPECT().ContainsDir(mock.Anything, "w1", "/work/a").Return(false, nil)
	workspaces.EXPECT().ContainsDir(mock.Anything, "w2", "/work/a").Return(true, nil)

	nav := NewNavigator(NewActivityHistory(), workspaces, nil)
	ws, err := nav.ResolveWorkspace(context.Background(), liveSession("a"))

	require.NoError(t, err)
	assert.Equal(t, "w2", ws)
}

func TestNavigator_ResolveWorkspace_SkipsFailingWorkspace(t *testing.T) {
	workspaces := portsmocks.NewMockWorkspaceProvider(t)
	workspaces.EXPECT().ListWorkspaces(mock.Anything).Return([]string{"w1", "w2"}, nil)
	workspaces.EXPECT().ContainsDir(mock.Anything, "w1", "/work/a").Return(false, errors.New("gone"))
	workspaces.EXPECT().ContainsDir(mock.Anything, "w2", "/work/a").Return(true, nil)

	nav := NewNavigator(NewActivityHistory(), workspaces, nil)
	ws, err := nav.ResolveWorkspace(context.Background(), liveSession("a"))

	require.NoError(t, err)
	assert.Equal(t, "w2", ws)
}

func TestNavigator_ResolveWorkspace_NoProvider(t *testing.T) {
	nav := NewNavigator(NewActivityHistory(), nil, nil)
	ws, err := nav.ResolveWorkspace(context.Background(), liveSession("a"))

	require.NoError(t, err)
	assert.Empty(t, ws)
}

func TestNavigator_ResolveSurface(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*portsmocks.MockSurfaceLocator)
		expected domain.NavigationPlan
	}{
		{
			name: "reuses surface already showing the session",
			setup: func(m *portsmocks.MockSurfaceLocator) {
				m.EXPECT().VisibleSurface(mock.Anything, "a").Return("/dev/pts/1", true, nil)
			},
			expected: domain.NavigationPlan{ReuseSurfaceID: "/dev/pts/1"},
		},
		{
			name: "falls back to a surface showing another agent",
			setup: func(m *portsmocks.MockSurfaceLocator) {
				m.EXPECT().VisibleSurface(mock.Anything, "a").Return("", false, nil)
				m.EXPECT().AgentSurface(mock.Anything, "a").Return("/dev/pts/2", true, nil)
			},
			expected: domain.NavigationPlan{ReuseSurfaceID: "/dev/pts/2"},
		},
		{
			name: "must create when nothing can be reused",
			setup: func(m *portsmocks.MockSurfaceLocator) {
				m.EXPECT().VisibleSurface(mock.Anything, "a").Return("", false, nil)
				m.EXPECT().AgentSurface(mock.Anything, "a").Return("", false, nil)
			},
			expected: domain.NavigationPlan{MustCreateSurface: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			surfaces := portsmocks.NewMockSurfaceLocator(t)
			tt.setup(surfaces)

			nav := NewNavigator(NewActivityHistory(), nil, surfaces)
			plan, err := nav.ResolveSurface(context.Background(), liveSession("a"))

			require.NoError(t, err)
			assert.Equal(t, tt.expected, plan)
		})
	}
}

func TestNavigator_ResolveSurface_NoLocator(t *testing.T) {
	nav := NewNavigator(NewActivityHistory(), nil, nil)
	plan, err := nav.ResolveSurface(context.Background(), liveSession("a"))

	require.NoError(t, err)
	assert.True(t, plan.MustCreateSurface)
	assert.Empty(t, plan.ReuseSurfaceID)
}

func TestNavigator_Navigate_SwitchesBeforeResolvingSurface(t *testing.T) {
	workspaces := portsmocks.NewMockWorkspaceProvider(t)
	surfaces := portsmocks.NewMockSurfaceLocator(t)

	var order []string
	workspaces.EXPECT().ListWorkspaces(mock.Anything).Return([]string{"w1"}, nil)
	workspaces.EXPECT().ContainsDir(mock.Anything, "w1", "/work/a").Return(true, nil)
	workspaces.EXPECT().SwitchTo(mock.Anything, "w1").
		Run(func(ctx context.Context, workspace string) { order = append(order, "switch") }).
		Return(nil)
	surfaces.EXPECT().VisibleSurface(mock.Anything, "a").
		Run(func(ctx context.Context, sessionID string) { order = append(order, "visible") }).
		Return("/dev/pts/1", true, nil)

	history := NewActivityHistory()
	nav := NewNavigator(history, workspaces, surfaces)
	plan, err := nav.Navigate(context.Background(), liveSession("a"), true)

	require.NoError(t, err)
	assert.Equal(t, []string{"switch", "visible"}, order)
	assert.Equal(t, "w1", plan.TargetWorkspace)
	assert.Equal(t, "/dev/pts/1", plan.ReuseSurfaceID)

	rec, ok := history.Record("a")
	require.True(t, ok)
	assert.False(t, rec.FirstVisited.IsZero())
}

func TestNavigator_Navigate_WithoutWorkspaceSwitch(t *testing.T) {
	workspaces := portsmocks.NewMockWorkspaceProvider(t)
	surfaces := portsmocks.NewMockSurfaceLocator(t)
	surfaces.EXPECT().VisibleSurface(mock.Anything, "a").Return("", false, nil)
	surfaces.EXPECT().AgentSurface(mock.Anything, "a").Return("", false, nil)

	nav := NewNavigator(NewActivityHistory(), workspaces, surfaces)
	plan, err := nav.Navigate(context.Background(), liveSession("a"), false)

	require.NoError(t, err)
	assert.Empty(t, plan.TargetWorkspace)
	assert.True(t, plan.MustCreateSurface)
}

func TestNavigator_Navigate_SwitchFailure(t *testing.T) {
	workspaces := portsmocks.NewMockWorkspaceProvider(t)
	workspaces.EXPECT().ListWorkspaces(mock.Anything).Return([]string{"w1"}, nil)
	workspaces.EXPECT().ContainsDir(mock.Anything, "w1", "/work/a").Return(true, nil)
	workspaces.EXPECT().SwitchTo(mock.Anything, "w1").Return(errors.New("no client"))

	history := NewActivityHistory()
	nav := NewNavigator(history, workspaces, portsmocks.NewMockSurfaceLocator(t))
	_, err := nav.Navigate(context.Background(), liveSession("a"), true)

	require.Error(t, err)
	_, visited := history.Record("a")
	assert.False(t, visited)
}

func TestNavigator_Present(t *testing.T) {
	surfaces := portsmocks.NewMockSurfaceLocator(t)
	surfaces.EXPECT().Present(mock.Anything, "/dev/pts/1", "a").Return(nil)

	nav := NewNavigator(NewActivityHistory(), nil, surfaces)

	needsAttach, err := nav.Present(context.Background(), domain.NavigationPlan{ReuseSurfaceID: "/dev/pts/1"}, liveSession("a"))
	require.NoError(t, err)
	assert.False(t, needsAttach)

	needsAttach, err = nav.Present(context.Background(), domain.NavigationPlan{MustCreateSurface: true}, liveSession("a"))
	require.NoError(t, err)
	assert.True(t, needsAttach)
}
