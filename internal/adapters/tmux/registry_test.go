package tmux

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
	"github.com/ElleNajt/agent-shell-manager/internal/ports"
	portsmocks "github.com/ElleNajt/agent-shell-manager/internal/ports/mocks"
)

func TestRegistry_ListIDs(t *testing.T) {
	repo := portsmocks.NewMockSessionRepository(t)
	repo.EXPECT().List(context.Background()).Return([]domain.Session{{ID: "a"}, {ID: "b"}}, nil)

	ids, err := NewRegistry(repo, newFakeClient(), portsmocks.NewMockProcessInspector(t)).ListIDs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestRegistry_Resolve(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		stored         domain.Session
		panes          []ports.TmuxPane
		setup          func(*portsmocks.MockProcessInspector)
		expectedExec   *domain.Process
		expectedStatus domain.Status
	}{
		{
			name:   "live pane without control client",
			stored: domain.Session{ID: "a"},
			panes:  []ports.TmuxPane{{SessionName: "other", PID: 1}, {SessionName: "a", PID: 10}},
			setup: func(m *portsmocks.MockProcessInspector) {
				m.EXPECT().Inspect(10).Return(domain.ProcessRun)
			},
			expectedExec:   &domain.Process{PID: 10, Status: domain.ProcessRun},
			expectedStatus: domain.StatusInitializing,
		},
		{
			name:           "dead pane is not probed",
			stored:         domain.Session{ID: "a"},
			panes:          []ports.TmuxPane{{SessionName: "a", PID: 10, Dead: true}},
			setup:          func(m *portsmocks.MockProcessInspector) {},
			expectedExec:   &domain.Process{PID: 10, Status: domain.ProcessExit},
			expectedStatus: domain.StatusKilled,
		},
		{
			name:           "missing tmux session",
			stored:         domain.Session{ID: "a"},
			setup:          func(m *portsmocks.MockProcessInspector) {},
			expectedExec:   nil,
			expectedStatus: domain.StatusKilled,
		},
		{
			name:   "dead control client",
			stored: domain.Session{ID: "a", SessionID: "proto", ControlProcess: &domain.Process{PID: 20}},
			panes:  []ports.TmuxPane{{SessionName: "a", PID: 10}},
			setup: func(m *portsmocks.MockProcessInspector) {
				m.EXPECT().Inspect(10).Return(domain.ProcessRun)
				m.EXPECT().Inspect(20).Return(domain.ProcessExit)
			},
			expectedExec:   &domain.Process{PID: 10, Status: domain.ProcessRun},
			expectedStatus: domain.StatusKilled,
		},
		{
			name:   "live control client",
			stored: domain.Session{ID: "a", SessionID: "proto", ControlProcess: &domain.Process{PID: 20}},
			panes:  []ports.TmuxPane{{SessionName: "a", PID: 10}},
			setup: func(m *portsmocks.MockProcessInspector) {
				m.EXPECT().Inspect(10).Return(domain.ProcessRun)
				m.EXPECT().Inspect(20).Return(domain.ProcessRun)
			},
			expectedExec:   &domain.Process{PID: 10, Status: domain.ProcessRun},
			expectedStatus: domain.StatusReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := portsmocks.NewMockSessionRepository(t)
			inspector := portsmocks.NewMockProcessInspector(t)
			client := newFakeClient("a")
			client.panes = tt.panes
			stored := tt.stored
			repo.EXPECT().Get(ctx, "a").Return(&stored, nil)
			tt.setup(inspector)

			session, ok, err := NewRegistry(repo, client, inspector).Resolve(ctx, "a")

			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.expectedExec, session.ExecProcess)
			assert.Equal(t, tt.expectedStatus, domain.Classify(session))
		})
	}
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	repo := portsmocks.NewMockSessionRepository(t)
	repo.EXPECT().Get(context.Background(), "gone").Return(nil, domain.ErrSessionNotFound)

	session, ok, err := NewRegistry(repo, newFakeClient(), portsmocks.NewMockProcessInspector(t)).Resolve(context.Background(), "gone")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, session)
}

func TestRegistry_ResolveStorageError(t *testing.T) {
	repo := portsmocks.NewMockSessionRepository(t)
	repo.EXPECT().Get(context.Background(), "a").Return(nil, errors.New("disk I/O error"))

	_, ok, err := NewRegistry(repo, newFakeClient(), portsmocks.NewMockProcessInspector(t)).Resolve(context.Background(), "a")

	require.Error(t, err)
	assert.False(t, ok)
}

func TestRegistry_ResolveReusesPaneListingFromListIDs(t *testing.T) {
	ctx := context.Background()
	repo := portsmocks.NewMockSessionRepository(t)
	inspector := portsmocks.NewMockProcessInspector(t)
	client := newFakeClient("a", "b", "c")
	client.panes = []ports.TmuxPane{{SessionName: "a", PID: 10}, {SessionName: "b", PID: 11}, {SessionName: "c", PID: 12}}

	repo.EXPECT().List(ctx).Return([]domain.Session{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil)
	for _, id := range []string{"a", "b", "c"} {
		repo.EXPECT().Get(ctx, id).Return(&domain.Session{ID: id}, nil)
	}
	inspector.EXPECT().Inspect(10).Return(domain.ProcessRun)
	inspector.EXPECT().Inspect(11).Return(domain.ProcessRun)
	inspector.EXPECT().Inspect(12).Return(domain.ProcessRun)

	registry := NewRegistry(repo, client, inspector)
	ids, err := registry.ListIDs(ctx)
	require.NoError(t, err)
	for _, id := range ids {
		session, ok, err := registry.Resolve(ctx, id)
		require.NoError(t, err)
		require.True(t, ok)
		require.NotNil(t, session.ExecProcess)
	}

	assert.Equal(t, 1, client.paneLists)
}

func TestRegistry_ResolveRelistsStalePanes(t *testing.T) {
	ctx := context.Background()
	repo := portsmocks.NewMockSessionRepository(t)
	client := newFakeClient("a")
	repo.EXPECT().List(ctx).Return([]domain.Session{{ID: "a"}}, nil)
	repo.EXPECT().Get(ctx, "a").Return(&domain.Session{ID: "a"}, nil)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	registry := NewRegistry(repo, client, portsmocks.NewMockProcessInspector(t))
	registry.now = func() time.Time { return now }

	_, err := registry.ListIDs(ctx)
	require.NoError(t, err)
	now = now.Add(paneSnapshotTTL)

	_, ok, err := registry.Resolve(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, client.paneLists)
}
