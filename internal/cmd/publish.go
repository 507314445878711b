package cmd

import (
	"context"
	"fmt"

	"github.com/ElleNajt/agent-shell-manager/internal/logging"
	"github.com/ElleNajt/agent-shell-manager/internal/services"
)

// PublishCmd records what an agent reports about its session. Agents call
// these from their hooks; the session defaults to $ASM_SESSION_ID, which
// every session pane exports.
type PublishCmd struct {
	Busy         PublishBusyCmd         `cmd:"busy" help:"Publish whether a turn is in progress"`
	Control      PublishControlCmd      `cmd:"control" help:"Publish the pid of the protocol client"`
	Initialized  PublishInitializedCmd  `cmd:"initialized" help:"Publish that the protocol handshake completed"`
	Mode         PublishModeCmd         `cmd:"mode" help:"Publish the current and available modes"`
	Session      PublishSessionCmd      `cmd:"session" help:"Publish the negotiated protocol session id"`
	ToolCall     PublishToolCallCmd     `cmd:"tool-call" help:"Publish a started tool call"`
	ToolCallDone PublishToolCallDoneCmd `cmd:"tool-call-done" help:"Publish a finished tool call"`
	TurnEnded    PublishTurnEndedCmd    `cmd:"turn-ended" help:"Publish the end of a turn"`
}

// PublishTarget names the session a publish command updates
type PublishTarget struct {
	Session string `help:"Session identifier" env:"ASM_SESSION_ID" required:""`
}

func parseFlag(value string) bool {
	return value == "true"
}

// PublishBusyCmd publishes the busy flag
type PublishBusyCmd struct {
	PublishTarget `embed:""`

	Value string `arg:"" enum:"true,false" help:"true while a turn is in progress"`
}

// Run executes the busy command
func (p *PublishBusyCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Publishing busy", "session", p.Session, "value", p.Value)
	return cli.Container.Publisher.Busy(context.Background(), p.Session, parseFlag(p.Value))
}

// PublishControlCmd publishes the control process pid
type PublishControlCmd struct {
	PublishTarget `embed:""`

	PID int `arg:"" help:"Process id of the protocol client"`
}

// Run executes the control command
func (p *PublishControlCmd) Run(cli *CLI) error {
	if p.PID <= 0 {
		return fmt.Errorf("invalid pid %d", p.PID)
	}
	return cli.Container.Publisher.ControlStarted(context.Background(), p.Session, p.PID)
}

// PublishInitializedCmd publishes the initialized flag
type PublishInitializedCmd struct {
	PublishTarget `embed:""`

	Value string `arg:"" optional:"" enum:"true,false" default:"true" help:"Whether the handshake completed"`
}

// Run executes the initialized command
func (p *PublishInitializedCmd) Run(cli *CLI) error {
	return cli.Container.Publisher.Initialized(context.Background(), p.Session, parseFlag(p.Value))
}

// PublishModeCmd publishes the mode state
type PublishModeCmd struct {
	PublishTarget `embed:""`

	Available string `help:"Available modes as id:Name pairs, comma-separated" short:"a"`
	ModeID    string `arg:"" help:"Current mode id"`
}

// Run executes the mode command
func (p *PublishModeCmd) Run(cli *CLI) error {
	modes, err := services.ParseModes(p.Available)
	if err != nil {
		return err
	}
	return cli.Container.Publisher.Mode(context.Background(), p.Session, p.ModeID, modes)
}

// PublishSessionCmd publishes the protocol session id
type PublishSessionCmd struct {
	PublishTarget `embed:""`

	SessionID string `arg:"" help:"Protocol session id negotiated with the agent"`
}

// Run executes the session command
func (p *PublishSessionCmd) Run(cli *CLI) error {
	return cli.Container.Publisher.SessionNegotiated(context.Background(), p.Session, p.SessionID)
}

// PublishToolCallCmd publishes a started tool call
type PublishToolCallCmd struct {
	PublishTarget `embed:""`

	CallID     string `arg:"" help:"Tool call id"`
	Permission bool   `help:"The call waits for a permission decision"`
	Title      string `help:"Tool call title" short:"t"`
}

// Run executes the tool-call command
func (p *PublishToolCallCmd) Run(cli *CLI) error {
	return cli.Container.Publisher.ToolCallStarted(context.Background(), p.Session, p.CallID, p.Title, p.Permission)
}

// PublishToolCallDoneCmd publishes a finished tool call
type PublishToolCallDoneCmd struct {
	PublishTarget `embed:""`

	CallID string `arg:"" help:"Tool call id"`
}

// Run executes the tool-call-done command
func (p *PublishToolCallDoneCmd) Run(cli *CLI) error {
	return cli.Container.Publisher.ToolCallFinished(context.Background(), p.Session, p.CallID)
}

// PublishTurnEndedCmd clears the in-flight state of a finished turn
type PublishTurnEndedCmd struct {
	PublishTarget `embed:""`
}

// Run executes the turn-ended command
func (p *PublishTurnEndedCmd) Run(cli *CLI) error {
	return cli.Container.Publisher.TurnEnded(context.Background(), p.Session)
}
