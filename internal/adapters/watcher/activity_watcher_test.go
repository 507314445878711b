package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestActivityWatcher_EmitsSessionIDOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	w, err := NewActivityWatcher(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "claude-api.log"), []byte("x"), 0644))

	select {
	case id := <-w.Events():
		assert.Equal(t, "claude-api", id)
	case <-time.After(5 * time.Second):
		require.FailNow(t, "no activity event")
	}

	cancel()
	require.NoError(t, <-done)

	_, open := <-w.Events()
	for open {
		_, open = <-w.Events()
	}
}

func TestReadMarkers(t *testing.T) {
	dir := t.TempDir()
	stamp := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

	marker := filepath.Join(dir, "codex-web.log")
	require.NoError(t, os.WriteFile(marker, nil, 0644))
	require.NoError(t, os.Chtimes(marker, stamp, stamp))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.log"), 0755))

	markers, err := ReadMarkers(dir)
	require.NoError(t, err)
	require.Len(t, markers, 1)
	assert.True(t, stamp.Equal(markers["codex-web"]))
}

func TestReadMarkers_MissingDir(t *testing.T) {
	_, err := ReadMarkers(filepath.Join(t.TempDir(), "absent"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSessionIDFromMarker(t *testing.T) {
	tests := []struct {
		path string
		id   string
		ok   bool
	}{
		{path: "/a/claude-api.log", id: "claude-api", ok: true},
		{path: "claude-api-2.log", id: "claude-api-2", ok: true},
		{path: "/a/.log", ok: false},
		{path: "/a/.hidden.log", ok: false},
		{path: "/a/readme.md", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			id, ok := sessionIDFromMarker(tt.path)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.id, id)
			}
		})
	}
}
