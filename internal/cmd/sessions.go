package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
	"github.com/ElleNajt/agent-shell-manager/internal/logging"
)

// SessionsCmd manages sessions
type SessionsCmd struct {
	DeleteKilled SessionsDeleteKilledCmd `cmd:"delete-killed" help:"Delete every killed session"`
	Interrupt    SessionsInterruptCmd    `cmd:"interrupt" help:"Interrupt the agent's current turn"`
	Kill         SessionsKillCmd         `cmd:"kill" help:"Kill a session, keeping its record"`
	List         ListCmd                 `cmd:"list" help:"List all sessions" default:"1"`
	Mode         SessionsModeCmd         `cmd:"mode" help:"Set or cycle a session's mode"`
	New          SessionsNewCmd          `cmd:"new" help:"Create a session"`
	Open         SessionsOpenCmd         `cmd:"open" help:"Show a session, reusing a visible surface when possible"`
	Restart      SessionsRestartCmd      `cmd:"restart" help:"Kill a session and start it again with the same configuration"`
	Traffic      SessionsTrafficCmd      `cmd:"traffic" help:"View a session's protocol traffic log"`
}

// SessionsNewCmd creates a session
type SessionsNewCmd struct {
	Agent string `help:"Agent name from settings (defaults to default_agent)" short:"a"`
	Dir   string `help:"Working directory (defaults to the current directory)" type:"path"`
}

// Run executes the new command
func (s *SessionsNewCmd) Run(cli *CLI) error {
	dir := s.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	agent := cli.Container.Agents.Default()
	if s.Agent != "" {
		var ok bool
		agent, ok = cli.Container.Agents.ByName(s.Agent)
		if !ok {
			return fmt.Errorf("unknown agent %q", s.Agent)
		}
	}

	cfg := agent.SessionConfig(dir)
	logging.Logger.Info("Executing sessions new command", "agent", agent.Name, "dir", dir)
	id, err := cli.Container.NewControlService(nil).Create(context.Background(), &cfg, dir)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	fmt.Println(id)
	return nil
}

// SessionsKillCmd kills a session
type SessionsKillCmd struct {
	Force bool   `help:"Kill without confirmation" short:"f"`
	ID    string `arg:"" help:"Session identifier"`
}

// Run executes the kill command
func (s *SessionsKillCmd) Run(cli *CLI) error {
	if !s.Force {
		confirmed, err := confirmPrompt(fmt.Sprintf("Kill session '%s'?", s.ID), "The session record is kept.", "Kill")
		if err != nil {
			return err
		}
		if !confirmed {
			logging.Logger.Info("User cancelled session kill", "id", s.ID)
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := cli.Container.NewControlService(nil).Kill(context.Background(), s.ID); err != nil {
		return fmt.Errorf("failed to kill session: %w", err)
	}
	fmt.Printf("Session '%s' killed\n", s.ID)
	return nil
}

// SessionsRestartCmd restarts a session
type SessionsRestartCmd struct {
	Force bool   `help:"Restart without confirmation" short:"f"`
	ID    string `arg:"" help:"Session identifier"`
}

// Run executes the restart command
func (s *SessionsRestartCmd) Run(cli *CLI) error {
	if !s.Force {
		confirmed, err := confirmPrompt(fmt.Sprintf("Restart session '%s'?", s.ID), "The running agent is stopped and started again.", "Restart")
		if err != nil {
			return err
		}
		if !confirmed {
			logging.Logger.Info("User cancelled session restart", "id", s.ID)
			fmt.Println("Cancelled")
			return nil
		}
	}

	id, err := cli.Container.NewControlService(nil).Restart(context.Background(), s.ID)
	if err != nil {
		return fmt.Errorf("failed to restart session: %w", err)
	}
	fmt.Printf("Session '%s' restarted as '%s'\n", s.ID, id)
	return nil
}

// SessionsDeleteKilledCmd deletes killed sessions
type SessionsDeleteKilledCmd struct {
	Force bool `help:"Delete without confirmation" short:"f"`
}

// Run executes the delete-killed command
func (s *SessionsDeleteKilledCmd) Run(cli *CLI) error {
	ctx := context.Background()
	control := cli.Container.NewControlService(nil)

	batch, err := control.KilledSessions(ctx)
	if errors.Is(err, domain.ErrNoKilledSessions) {
		fmt.Println("No killed sessions")
		return nil
	}
	if err != nil {
		return err
	}

	if !s.Force {
		confirmed, err := confirmDeleteKilled(batch)
		if err != nil {
			return err
		}
		if !confirmed {
			logging.Logger.Info("User cancelled killed session deletion")
			fmt.Println("Cancelled")
			return nil
		}
	}

	deleted, err := control.DeleteSessions(ctx, batch)
	if err != nil {
		return fmt.Errorf("failed to delete killed sessions: %w", err)
	}
	fmt.Printf("Deleted %d killed sessions\n", deleted)
	return nil
}

func confirmDeleteKilled(batch []*domain.Session) (bool, error) {
	names := make([]string, len(batch))
	for i, session := range batch {
		names[i] = "  - " + session.DisplayName + " (" + session.ID + ")"
	}

	return confirmPrompt(fmt.Sprintf("Delete %d killed sessions?", len(batch)), strings.Join(names, "\n"), "Delete")
}

// confirmPrompt is swapped out in tests
var confirmPrompt = confirmAction

// confirmAction asks a yes/no question; aborting the prompt counts as no
func confirmAction(title, description, affirmative string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative(affirmative).
		Negative("Cancel").
		Value(&confirmed).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}

// SessionsModeCmd sets or cycles a session's mode
type SessionsModeCmd struct {
	ID   string `arg:"" help:"Session identifier"`
	Mode string `arg:"" optional:"" help:"Mode id; cycles to the next mode when omitted"`
}

// Run executes the mode command
func (s *SessionsModeCmd) Run(cli *CLI) error {
	ctx := context.Background()
	control := cli.Container.NewControlService(nil)

	if s.Mode == "" {
		if err := control.CycleMode(ctx, s.ID); err != nil {
			return fmt.Errorf("failed to cycle mode: %w", err)
		}
		fmt.Printf("Mode of '%s' cycled\n", s.ID)
		return nil
	}

	if err := control.SetMode(ctx, s.ID, s.Mode); err != nil {
		return fmt.Errorf("failed to set mode: %w", err)
	}
	fmt.Printf("Mode of '%s' set to '%s'\n", s.ID, s.Mode)
	return nil
}

// SessionsInterruptCmd interrupts a session
type SessionsInterruptCmd struct {
	ID string `arg:"" help:"Session identifier"`
}

// Run executes the interrupt command
func (s *SessionsInterruptCmd) Run(cli *CLI) error {
	if err := cli.Container.NewControlService(nil).Interrupt(context.Background(), s.ID); err != nil {
		return fmt.Errorf("failed to interrupt session: %w", err)
	}
	return nil
}

// SessionsTrafficCmd opens the traffic log viewer
type SessionsTrafficCmd struct {
	ID string `arg:"" help:"Session identifier"`
}

// Run executes the traffic command
func (s *SessionsTrafficCmd) Run(cli *CLI) error {
	viewer, err := cli.Container.NewControlService(nil).TrafficView(context.Background(), s.ID)
	if err != nil {
		return err
	}
	return runAttached(viewer)
}

// SessionsOpenCmd shows a session
type SessionsOpenCmd struct {
	ID                string `arg:"" help:"Session identifier"`
	NoSwitchWorkspace bool   `help:"Do not switch to the workspace containing the session"`
}

// Run executes the open command
func (s *SessionsOpenCmd) Run(cli *CLI) error {
	ctx := context.Background()
	control := cli.Container.NewControlService(nil)

	session, err := control.Lookup(ctx, s.ID)
	if err != nil {
		return err
	}

	settings := cli.LoadedSettings()
	switchWorkspace := !s.NoSwitchWorkspace && (settings.SwitchWorkspace == nil || *settings.SwitchWorkspace)
	plan, err := cli.Container.Navigator.Navigate(ctx, session, switchWorkspace)
	if err != nil {
		return err
	}
	needsSurface, err := cli.Container.Navigator.Present(ctx, plan, session)
	if err != nil {
		return err
	}
	if !needsSurface {
		return nil
	}

	attach, err := control.AttachCommand(ctx, s.ID)
	if err != nil {
		return err
	}
	return runAttached(attach)
}

// runAttached runs c on this terminal
func runAttached(c *exec.Cmd) error {
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
