package cmd

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubConfirm(t *testing.T, answer bool) *[]string {
	t.Helper()
	var titles []string
	original := confirmPrompt
	confirmPrompt = func(title, description, affirmative string) (bool, error) {
		titles = append(titles, title)
		return answer, nil
	}
	t.Cleanup(func() { confirmPrompt = original })
	return &titles
}

func TestSessionsKillCmd_DeclinedLeavesSessionAlone(t *testing.T) {
	titles := stubConfirm(t, false)

	// A nil container panics if the kill goes ahead.
	err := (&SessionsKillCmd{ID: "claude-api"}).Run(&CLI{})

	require.NoError(t, err)
	assert.Equal(t, []string{"Kill session 'claude-api'?"}, *titles)
}

func TestSessionsRestartCmd_DeclinedLeavesSessionAlone(t *testing.T) {
	titles := stubConfirm(t, false)

	err := (&SessionsRestartCmd{ID: "claude-api"}).Run(&CLI{})

	require.NoError(t, err)
	assert.Equal(t, []string{"Restart session 'claude-api'?"}, *titles)
}

func TestSessionsCmd_ForceFlags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		force func(*SessionsCmd) bool
	}{
		{"kill", []string{"kill", "-f", "a"}, func(c *SessionsCmd) bool { return c.Kill.Force }},
		{"restart", []string{"restart", "--force", "a"}, func(c *SessionsCmd) bool { return c.Restart.Force }},
		{"delete-killed", []string{"delete-killed", "-f"}, func(c *SessionsCmd) bool { return c.DeleteKilled.Force }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cmd SessionsCmd
			parser, err := kong.New(&cmd)
			require.NoError(t, err)

			_, err = parser.Parse(tt.args)
			require.NoError(t, err)
			assert.True(t, tt.force(&cmd))
		})
	}
}
