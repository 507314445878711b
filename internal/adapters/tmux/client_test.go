package tmux

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ElleNajt/agent-shell-manager/internal/ports"
)

func TestParsePanes(t *testing.T) {
	out := "claude-api\t101\t0\t/home/me/api\n" +
		"work\t202\t1\t/home/me/dir with spaces\n" +
		"\n" +
		"broken line\n" +
		"bad\tpid\t0\t/x\n" +
		"short\t303\t0\n"

	panes := parsePanes(out)

	assert.Equal(t, []ports.TmuxPane{
		{SessionName: "claude-api", PID: 101, Dead: false, CurrentPath: "/home/me/api"},
		{SessionName: "work", PID: 202, Dead: true, CurrentPath: "/home/me/dir with spaces"},
		{SessionName: "short", PID: 303},
	}, panes)
}

func TestParseClients(t *testing.T) {
	out := "/dev/pts/1\tclaude-api\n/dev/pts/2\twork\nnonsense\n"

	clients := parseClients(out)

	assert.Equal(t, []ports.TmuxClientInfo{
		{TTY: "/dev/pts/1", SessionName: "claude-api"},
		{TTY: "/dev/pts/2", SessionName: "work"},
	}, clients)
}

func TestParseEmptyOutput(t *testing.T) {
	assert.Empty(t, parsePanes(""))
	assert.Empty(t, parseClients(""))
}
