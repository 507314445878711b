package ui

import (
	"context"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
)

type fakeController struct {
	mu sync.Mutex

	calls    []string
	created  []domain.SessionConfig
	deleted  []*domain.Session
	err      error
	killed   []*domain.Session
	sessions map[string]*domain.Session
}

func newFakeController(sessions ...*domain.Session) *fakeController {
	c := &fakeController{sessions: make(map[string]*domain.Session)}
	for _, s := range sessions {
		c.sessions[s.ID] = s
	}
	return c
}

func (c *fakeController) record(call string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call)
}

func (c *fakeController) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

func (c *fakeController) AttachCommand(_ context.Context, id string) (*exec.Cmd, error) {
	c.record("attach " + id)
	return exec.Command("true"), c.err
}

func (c *fakeController) Create(_ context.Context, cfg *domain.SessionConfig, _ string) (string, error) {
	c.record("create")
	c.created = append(c.created, *cfg)
	return cfg.Kind + "-new", c.err
}

func (c *fakeController) CycleMode(_ context.Context, id string) error {
	c.record("cycle-mode " + id)
	return c.err
}

func (c *fakeController) DeleteSessions(_ context.Context, batch []*domain.Session) (int, error) {
	c.record("delete")
	c.deleted = batch
	return len(batch), c.err
}

func (c *fakeController) Interrupt(_ context.Context, id string) error {
	c.record("interrupt " + id)
	return c.err
}

func (c *fakeController) Kill(_ context.Context, id string) error {
	c.record("kill " + id)
	return c.err
}

func (c *fakeController) KilledSessions(context.Context) ([]*domain.Session, error) {
	if len(c.killed) == 0 {
		return nil, domain.ErrNoKilledSessions
	}
	return c.killed, nil
}

func (c *fakeController) Lookup(_ context.Context, id string) (*domain.Session, error) {
	s, ok := c.sessions[id]
	if !ok {
		return nil, domain.ErrSessionGone
	}
	return s, nil
}

func (c *fakeController) Restart(_ context.Context, id string) (string, error) {
	c.record("restart " + id)
	return id, c.err
}

func (c *fakeController) SetMode(_ context.Context, id, modeID string) error {
	c.record("set-mode " + id + " " + modeID)
	return c.err
}

func (c *fakeController) ToggleLogging(context.Context) (bool, error) {
	c.record("toggle-logging")
	return true, c.err
}

func (c *fakeController) TrafficView(_ context.Context, id string) (*exec.Cmd, error) {
	c.record("traffic " + id)
	return exec.Command("true"), c.err
}

type fakeNavigator struct {
	needsSurface bool
	navigated    []string
}

func (n *fakeNavigator) Navigate(_ context.Context, session *domain.Session, _ bool) (domain.NavigationPlan, error) {
	n.navigated = append(n.navigated, session.ID)
	if n.needsSurface {
		return domain.NavigationPlan{MustCreateSurface: true}, nil
	}
	return domain.NavigationPlan{ReuseSurfaceID: "/dev/pts/1"}, nil
}

func (n *fakeNavigator) Present(_ context.Context, plan domain.NavigationPlan, _ *domain.Session) (bool, error) {
	return plan.MustCreateSurface, nil
}

type countingRefresher struct {
	triggers atomic.Int32
}

func (r *countingRefresher) Trigger() {
	r.triggers.Add(1)
}

func (r *countingRefresher) TriggerAfter(time.Duration) {
	r.triggers.Add(1)
}
