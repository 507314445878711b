package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
)

// RowStream hands refresh results from a refresh loop to a program. Only the
// latest undelivered result is kept, so a slow program never blocks the loop.
type RowStream struct {
	ch        chan RowsMsg
	done      chan struct{}
	closeOnce sync.Once
}

// NewRowStream creates an open stream
func NewRowStream() *RowStream {
	return &RowStream{
		ch:   make(chan RowsMsg, 1),
		done: make(chan struct{}),
	}
}

// Sink is a services.RowSink. It must be called from a single goroutine.
func (s *RowStream) Sink(rows []domain.ViewRow, err error) {
	msg := RowsMsg{Err: err, Rows: rows}
	for {
		if s.closed() {
			return
		}
		select {
		case s.ch <- msg:
			return
		default:
		}
		// Drop the stale result
		select {
		case <-s.ch:
		default:
		}
	}
}

// Next returns the command delivering the next result; it yields nil once the
// stream is closed
func (s *RowStream) Next() tea.Cmd {
	return func() tea.Msg {
		if s.closed() {
			return nil
		}
		select {
		case msg := <-s.ch:
			return msg
		case <-s.done:
			return nil
		}
	}
}

// Close releases any pending Next
func (s *RowStream) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *RowStream) closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}
