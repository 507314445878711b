package config

import (
	"strings"

	"github.com/ElleNajt/agent-shell-manager/internal/domain"
)

// AgentSettings is one known way of creating a session
type AgentSettings struct {
	Args               StringArray `json:"args,omitempty"`
	Command            string      `json:"command"`
	DefaultMode        string      `json:"default_mode,omitempty"`
	Env                StringArray `json:"env,omitempty"`
	Kind               string      `json:"kind,omitempty"`
	Name               string      `json:"name"`
	PublishesHandshake *bool       `json:"publishes_handshake,omitempty"`
}

// BuiltinAgents are available even with an empty settings.json
var BuiltinAgents = []AgentSettings{
	{Name: "Claude Code", Kind: "claude", Command: "claude"},
	{Name: "Gemini CLI", Kind: "gemini", Command: "gemini"},
	{Name: "Codex", Kind: "codex", Command: "codex"},
	{Name: "Goose", Kind: "goose", Command: "goose", Args: StringArray{"session"}},
	{Name: "OpenCode", Kind: "opencode", Command: "opencode"},
}

// SessionConfig converts the agent into a creation configuration
func (a AgentSettings) SessionConfig(workingDir string) domain.SessionConfig {
	kind := a.Kind
	if kind == "" {
		kind = domain.SanitizeIdentifier(a.Name)
	}
	return domain.SessionConfig{
		Args:               append([]string(nil), a.Args...),
		Command:            a.Command,
		ConfigName:         a.Name,
		DefaultMode:        a.DefaultMode,
		Env:                append([]string(nil), a.Env...),
		Kind:               kind,
		PublishesHandshake: a.PublishesHandshake != nil && *a.PublishesHandshake,
		WorkingDir:         workingDir,
	}
}

// AgentCatalog resolves creation configurations
type AgentCatalog struct {
	agents       []AgentSettings
	defaultAgent string
}

// NewAgentCatalog merges configured agents over the builtins.
// A configured agent replaces a builtin with the same name.
func NewAgentCatalog(settings *Settings) *AgentCatalog {
	var configured []AgentSettings
	var defaultAgent string
	if settings != nil {
		configured = settings.Agents
		defaultAgent = settings.DefaultAgent
	}

	overridden := make(map[string]bool, len(configured))
	for _, a := range configured {
		overridden[a.Name] = true
	}

	agents := append([]AgentSettings(nil), configured...)
	for _, a := range BuiltinAgents {
		if !overridden[a.Name] {
			agents = append(agents, a)
		}
	}

	return &AgentCatalog{agents: agents, defaultAgent: defaultAgent}
}

// All returns the agents in preference order
func (c *AgentCatalog) All() []AgentSettings {
	return c.agents
}

// Default returns default_agent when it names a known agent, else the first one
func (c *AgentCatalog) Default() AgentSettings {
	if a, ok := c.ByName(c.defaultAgent); ok {
		return a
	}
	return c.agents[0]
}

// ByName finds an agent by exact name
func (c *AgentCatalog) ByName(name string) (AgentSettings, bool) {
	if name == "" {
		return AgentSettings{}, false
	}
	for _, a := range c.agents {
		if a.Name == name {
			return a, true
		}
	}
	return AgentSettings{}, false
}

// MatchDisplayName recovers the agent a session was created with from its
// display name. The name must be followed by the display name separator; the
// longest match wins.
func (c *AgentCatalog) MatchDisplayName(displayName string) (AgentSettings, bool) {
	var best AgentSettings
	found := false
	for _, a := range c.agents {
		if !strings.HasPrefix(displayName, a.Name+domain.DisplayNameSeparator) {
			continue
		}
		if !found || len(a.Name) > len(best.Name) {
			best = a
			found = true
		}
	}
	return best, found
}
