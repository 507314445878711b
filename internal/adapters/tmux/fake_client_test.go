package tmux

import (
	"os/exec"
	"sort"
	"sync"

	"github.com/ElleNajt/agent-shell-manager/internal/ports"
)

type createCall struct {
	command    []string
	env        []string
	name       string
	workingDir string
}

type sentKeys struct {
	keys    []string
	session string
}

type switchCall struct {
	session string
	tty     string
}

// fakeClient is an in-memory tmux server
type fakeClient struct {
	mu        sync.Mutex
	clients   []ports.TmuxClientInfo
	createErr error
	created   []createCall
	inTmux    bool
	killed    []string
	paneLists int
	panes     []ports.TmuxPane
	sent      []sentKeys
	sessions  map[string]bool
	switched  []switchCall
}

func newFakeClient(sessions ...string) *fakeClient {
	f := &fakeClient{sessions: make(map[string]bool)}
	for _, s := range sessions {
		f.sessions[s] = true
	}
	return f
}

func (f *fakeClient) AttachCommand(sessionName string) *exec.Cmd {
	return exec.Command("tmux", "attach-session", "-t", sessionName)
}

func (f *fakeClient) CreateSession(name, workingDir string, env []string, command ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if f.sessions[name] {
		return ErrSessionExists
	}
	f.sessions[name] = true
	f.created = append(f.created, createCall{command: command, env: env, name: name, workingDir: workingDir})
	return nil
}

func (f *fakeClient) InTmux() bool { return f.inTmux }

func (f *fakeClient) KillSession(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.sessions[name] {
		return ErrSessionNotFound
	}
	delete(f.sessions, name)
	f.killed = append(f.killed, name)
	return nil
}

func (f *fakeClient) ListClients() ([]ports.TmuxClientInfo, error) {
	return f.clients, nil
}

func (f *fakeClient) ListPanes() ([]ports.TmuxPane, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paneLists++
	return f.panes, nil
}

func (f *fakeClient) ListSessions() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.sessions))
	for name := range f.sessions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeClient) SendKeys(sessionName string, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.sessions[sessionName] {
		return ErrSessionNotFound
	}
	f.sent = append(f.sent, sentKeys{keys: keys, session: sessionName})
	return nil
}

func (f *fakeClient) SessionExists(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sessions[name]
}

func (f *fakeClient) SwitchClient(tty, sessionName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.switched = append(f.switched, switchCall{session: sessionName, tty: tty})
	return nil
}
