package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
)

func TestParseSortColumn(t *testing.T) {
	tests := []struct {
		name string
		want domain.SortColumn
	}{
		{"recency", domain.SortByRecency},
		{"name", domain.SortByName},
		{"status", domain.SortByStatus},
		{"mode", domain.SortByMode},
		{"bogus", domain.SortByRecency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSortColumn(tt.name))
		})
	}
}

func TestPrintRowsJSON(t *testing.T) {
	rows := []domain.ViewRow{{
		Activity:      "5m ago",
		DisplayName:   "Claude Code Agent @ api",
		Mode:          "Plan",
		SessionID:     "claude-api",
		SessionStatus: domain.SessionActive,
		Status:        domain.StatusWaiting,
	}}

	var buf bytes.Buffer
	require.NoError(t, printRowsJSON(&buf, rows))

	var entries []listEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "claude-api", entries[0].ID)
	assert.Equal(t, "waiting", entries[0].Status)
	assert.Equal(t, "active", entries[0].SessionStatus)
}

func TestPrintRowsJSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRowsJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestPrintRowsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRowsTable(&buf, []domain.ViewRow{{
		Activity:    "-",
		DisplayName: "Codex Agent @ web",
		SessionID:   "codex-web",
		Status:      domain.StatusKilled,
	}}))

	out := buf.String()
	assert.Contains(t, out, "codex-web")
	assert.Contains(t, out, "killed")
	assert.Contains(t, out, "ACTIVITY")
	assert.Contains(t, out, "Codex Agent @ web")
	assert.NotContains(t, out, "┌─┐", "border runes are not boxed individually")
}

func TestPrintRowsTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printRowsTable(&buf, nil))
	assert.Equal(t, "No sessions\n", buf.String())
}

func TestParseKeyValues(t *testing.T) {
	assert.Equal(t, []string{"up", "k"}, parseKeyValues(" up, k ,"))
	assert.Empty(t, parseKeyValues(" , "))
}
