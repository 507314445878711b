package server

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noDashboards() (tea.Model, func(ctx context.Context) error) {
	return nil, func(context.Context) error { return nil }
}

func TestNewServerCreatesHostKeyDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ssh")

	srv, err := NewServer(Options{
		AuthorizedKeysPath: filepath.Join(dir, "authorized_keys"),
		Host:               "127.0.0.1",
		HostKeyDir:         dir,
		Port:               0,
	}, noDashboards)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:0", srv.Address())
	assert.DirExists(t, dir)
	assert.FileExists(t, filepath.Join(dir, "id_ed25519"))
}

func TestStartStopsWhenContextIsDone(t *testing.T) {
	dir := t.TempDir()
	srv, err := NewServer(Options{
		AuthorizedKeysPath: filepath.Join(dir, "authorized_keys"),
		Host:               "127.0.0.1",
		HostKeyDir:         dir,
		Port:               0,
	}, noDashboards)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
