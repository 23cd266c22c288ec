package toolchain

import (
	"errors"

	"github.com/blang/semver/v4"
)

// ErrToolNotFound is returned when every probing strategy for a tool is
// exhausted without a qualifying candidate. Callers match it with errors.Is;
// it is recoverable, not process-fatal.
var ErrToolNotFound = errors.New("tool not found")

// Strategy identifies which probing strategy produced a selection.
type Strategy string

const (
	StrategyUnknown    Strategy = ""
	StrategyProbe      Strategy = "probe"
	StrategyPlugin     Strategy = "plugin"
	StrategyStandalone Strategy = "standalone"
	StrategyLauncher   Strategy = "launcher"
)

// Candidate is one executable attempted during discovery: a bare command
// name resolved through the launch search path, or an absolute path. OS
// restricts the candidate to a single GOOS; empty matches every platform.
// Candidate order is significant, the first qualifying one wins.
type Candidate struct {
	Path string
	OS   string
}

// Selection is a successful resolution: the command to invoke (after home
// and username expansion, or a synthetic launcher invocation), the version
// it reported, and the strategy that found it.
type Selection struct {
	Command  string
	Version  semver.Version
	Strategy Strategy
}

// Status captures the resolved state of one required tool for display.
type Status struct {
	Tool      string   `json:"tool"`
	Command   string   `json:"command,omitempty"`
	Version   string   `json:"version,omitempty"`
	Minimum   string   `json:"minimum,omitempty"`
	Strategy  Strategy `json:"strategy,omitempty"`
	Satisfied bool     `json:"satisfied"`
	Error     string   `json:"error,omitempty"`
}

// Minimums carries the configured minimum version per tool.
type Minimums struct {
	Python        string
	DockerCompose string
	Git           string
}

const (
	ToolPython        = "python"
	ToolDockerCompose = "docker-compose"
	ToolGit           = "git"
)

// KnownTools returns the required tool names in display order.
func KnownTools() []string {
	return []string{ToolDockerCompose, ToolGit, ToolPython}
}
