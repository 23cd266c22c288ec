package cli

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"testing"
)

// runCommand executes the root command with the given arguments, capturing
// combined output. Each call builds a fresh command tree so flag globals
// reset to their defaults.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

// scriptedRunner fakes tool probes for commands that detect the toolchain.
type scriptedRunner struct {
	responses map[string]string
}

func (r *scriptedRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	output, ok := r.responses[key]
	if !ok {
		return nil, &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	return []byte(output), nil
}

// healthyToolchain scripts qualifying responses for all three tools.
func healthyToolchain() *scriptedRunner {
	return &scriptedRunner{responses: map[string]string{
		"python3 --version":      "Python 3.12.4\n",
		"docker compose version": "Docker Compose version v2.36.2\n",
		"git --version":          "git version 2.39.2\n",
	}}
}

// withRunner swaps the detection runner for the duration of a test.
func withRunner(t *testing.T, runner *scriptedRunner) {
	t.Helper()
	previous := detectRunner
	detectRunner = runner
	t.Cleanup(func() { detectRunner = previous })
}

// isolateDirs points the config and data stores at per-test directories.
func isolateDirs(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dataDir := t.TempDir()
	t.Setenv("WORKSHOPS_DIR", dataDir)
	return dataDir
}
