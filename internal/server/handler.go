package server

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/google/uuid"

	"github.com/ElleNajt/agent-shell-manager/internal/logging"
)

// DashboardFactory builds the dashboard of one connection. run drives the
// dashboard's refresh loop and must return once ctx is done.
type DashboardFactory func() (model tea.Model, run func(ctx context.Context) error)

// connectionModel logs the end of a connection
type connectionModel struct {
	tea.Model
	connectionID string
	startTime    time.Time
}

func (c *connectionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		logging.Logger.Info("SSH session ended",
			"connection_id", c.connectionID,
			"duration", time.Since(c.startTime).String())
	}

	updated, cmd := c.Model.Update(msg)
	c.Model = updated
	return c, cmd
}

// teaHandler creates the dashboard for a connection. Its refresh loop lives
// exactly as long as the connection.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	connectionID := uuid.NewString()

	logging.Logger.Info("New SSH session",
		"connection_id", connectionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model, run := s.dashboards()

	ctx := sess.Context()
	go func() {
		if err := run(ctx); err != nil {
			logging.Logger.Error("Dashboard refresh loop failed", "error", err, "connection_id", connectionID)
		}
		logging.Logger.Debug("Dashboard refresh loop stopped", "connection_id", connectionID)
	}()

	return &connectionModel{
			Model:        model,
			connectionID: connectionID,
			startTime:    time.Now(),
		}, []tea.ProgramOption{
			tea.WithAltScreen(),
		}
}
