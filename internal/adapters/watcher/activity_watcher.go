package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ElleNajt/agent-shell-manager/internal/logging"
)

const markerExt = ".log"

// ActivityWatcher turns writes to activity marker files into output events.
// Each event carries the session identifier, the marker's base name.
type ActivityWatcher struct {
	events  chan string
	watcher *fsnotify.Watcher
}

// NewActivityWatcher watches dir, creating it when missing
func NewActivityWatcher(dir string) (*ActivityWatcher, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create activity directory: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &ActivityWatcher{
		events:  make(chan string, 64),
		watcher: w,
	}, nil
}

// Events returns the output-observed events. The channel is closed when Run returns.
func (w *ActivityWatcher) Events() <-chan string {
	return w.events
}

// Run forwards events until ctx is done, then closes the watcher
func (w *ActivityWatcher) Run(ctx context.Context) error {
	defer close(w.events)
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			id, ok := sessionIDFromMarker(event.Name)
			if !ok {
				continue
			}
			select {
			case w.events <- id:
			case <-ctx.Done():
				return nil
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logging.Logger.Warn("Activity watcher error", "error", err)
		}
	}
}

// ReadMarkers returns the modification time of every marker in dir, which is
// the last output observed for that session before this process started
func ReadMarkers(dir string) (map[string]time.Time, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	result := make(map[string]time.Time, len(entries))
	for _, entry := range entries {
		id, ok := sessionIDFromMarker(entry.Name())
		if !ok || entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		result[id] = info.ModTime()
	}
	return result, nil
}

func sessionIDFromMarker(path string) (string, bool) {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, markerExt) || strings.HasPrefix(base, ".") {
		return "", false
	}
	id := strings.TrimSuffix(base, markerExt)
	return id, id != ""
}
