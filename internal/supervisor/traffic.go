package supervisor

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
	"github.com/ElleNajt/agent-shell-manager/internal/logging"
)

// flagRecheckInterval bounds how stale the traffic logging toggle may be
const flagRecheckInterval = 2 * time.Second

// FlagReader reads application flags
type FlagReader interface {
	GetFlag(ctx context.Context, name string) (bool, error)
}

type trafficEntry struct {
	Data      string    `json:"data"`
	Direction string    `json:"dir"`
	Time      time.Time `json:"ts"`
}

// trafficRecorder appends session traffic as JSON lines to a rotating log
// while the traffic logging flag is on
type trafficRecorder struct {
	mu      sync.Mutex
	checked time.Time
	enabled bool
	flags   FlagReader
	logger  *lumberjack.Logger
	now     func() time.Time
}

func newTrafficRecorder(path string, maxSizeMB, backups int, flags FlagReader) *trafficRecorder {
	return &trafficRecorder{
		flags: flags,
		logger: &lumberjack.Logger{
			Filename:   path,
			MaxBackups: backups,
			MaxSize:    maxSizeMB,
		},
		now: time.Now,
	}
}

func (r *trafficRecorder) record(direction string, p []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if !r.enabledLocked(now) {
		return
	}

	line, err := json.Marshal(trafficEntry{Data: string(p), Direction: direction, Time: now.UTC()})
	if err != nil {
		return
	}
	if _, err := r.logger.Write(append(line, '\n')); err != nil {
		logging.Logger.Warn("Failed to write traffic log", "error", err)
	}
}

func (r *trafficRecorder) enabledLocked(now time.Time) bool {
	if r.flags == nil {
		return false
	}
	if !r.checked.IsZero() && now.Sub(r.checked) < flagRecheckInterval {
		return r.enabled
	}

	enabled, err := r.flags.GetFlag(context.Background(), domain.FlagTrafficLogging)
	if err != nil {
		logging.Logger.Debug("Failed to read traffic logging flag", "error", err)
	}
	r.checked = now
	r.enabled = enabled
	return enabled
}

func (r *trafficRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.logger.Close()
}
