package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func alive() *Process { return &Process{PID: 100, Status: ProcessRun} }

func dead() *Process { return &Process{PID: 100, Status: ProcessExit} }

func TestProcessStatus_IsAlive(t *testing.T) {
	for _, s := range []ProcessStatus{ProcessRun, ProcessOpen, ProcessListen, ProcessConnect, ProcessStop} {
		assert.True(t, s.IsAlive(), s)
	}
	for _, s := range []ProcessStatus{ProcessExit, ProcessSignal, ProcessClosed, ProcessFailed, ""} {
		assert.False(t, s.IsAlive(), s)
	}

	var p *Process
	assert.False(t, p.Alive())
}

func TestClassify(t *testing.T) {
	pending := []ToolCall{{ID: "1"}, {ID: "2", PendingPermission: true}}
	running := []ToolCall{{ID: "1"}}

	tests := []struct {
		name     string
		session  *Session
		expected Status
	}{
		{"nil session", nil, StatusKilled},
		{"no exec process", &Session{SessionID: "s", Initialized: true}, StatusKilled},
		{"dead exec process", &Session{ExecProcess: dead(), SessionID: "s", Initialized: true}, StatusKilled},
		{"signalled exec process", &Session{ExecProcess: &Process{Status: ProcessSignal}}, StatusKilled},
		{"dead control process", &Session{ExecProcess: alive(), ControlProcess: dead(), SessionID: "s"}, StatusKilled},
		{"control client without status", &Session{ExecProcess: alive(), ControlProcess: &Process{}, SessionID: "s"}, StatusKilled},
		{"pending permission", &Session{ExecProcess: alive(), ControlProcess: alive(), ToolCalls: pending}, StatusWaiting},
		{"tool calls running", &Session{ExecProcess: alive(), ControlProcess: alive(), ToolCalls: running, SessionID: "s"}, StatusWorking},
		{"busy flag", &Session{ExecProcess: alive(), ControlProcess: alive(), Busy: true, SessionID: "s"}, StatusWorking},
		{"session negotiated", &Session{ExecProcess: alive(), ControlProcess: alive(), SessionID: "s", Initialized: true}, StatusReady},
		{"ready without control client", &Session{ExecProcess: alive(), SessionID: "s"}, StatusReady},
		{"stopped processes are alive", &Session{ExecProcess: &Process{Status: ProcessStop}, SessionID: "s"}, StatusReady},
		{"not initialized", &Session{ExecProcess: alive(), ControlProcess: alive()}, StatusInitializing},
		{"initialized without session id", &Session{ExecProcess: alive(), ControlProcess: alive(), Initialized: true}, StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.session))
		})
	}
}

func TestClassify_DeadOuterProcessAlwaysKilled(t *testing.T) {
	outers := []*Process{nil, dead(), {Status: ProcessClosed}, {Status: ProcessFailed}}
	for _, outer := range outers {
		for _, busy := range []bool{false, true} {
			for _, initialized := range []bool{false, true} {
				s := &Session{
					Busy:           busy,
					ControlProcess: alive(),
					ExecProcess:    outer,
					Initialized:    initialized,
					SessionID:      "negotiated",
					ToolCalls:      []ToolCall{{ID: "1", PendingPermission: true}},
				}
				assert.Equal(t, StatusKilled, Classify(s))
			}
		}
	}
}

func TestClassify_PendingPermissionIsNeverWorking(t *testing.T) {
	s := &Session{
		Busy:           true,
		ControlProcess: alive(),
		ExecProcess:    alive(),
		SessionID:      "s",
		ToolCalls:      []ToolCall{{ID: "a"}, {ID: "b"}, {ID: "c", PendingPermission: true}},
	}
	assert.Equal(t, StatusWaiting, Classify(s))
}

func TestSessionStatusOf(t *testing.T) {
	ready := &Session{ExecProcess: alive(), SessionID: "s"}
	assert.Equal(t, SessionActive, SessionStatusOf(ready, Classify(ready)))

	starting := &Session{ExecProcess: alive()}
	assert.Equal(t, SessionNone, SessionStatusOf(starting, Classify(starting)))

	killed := &Session{ExecProcess: dead(), SessionID: "s"}
	assert.Equal(t, SessionNone, SessionStatusOf(killed, Classify(killed)))
}
