package toolchain

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestFindDockerComposePrefersPlugin(t *testing.T) {
	runner := &fakeRunner{responses: map[string]fakeResult{
		"docker compose version":    {output: "Docker Compose version v2.36.2\n"},
		"docker-compose --version":  {output: "docker-compose version 1.29.2\n"},
		"/usr/bin/docker --version": {output: "should never be asked"},
	}}

	sel, err := findDockerCompose(context.Background(), runner, "2.20.0", "linux")
	if err != nil {
		t.Fatalf("findDockerCompose: %v", err)
	}
	if sel.Command != "docker" {
		t.Fatalf("expected docker plugin command, got %s", sel.Command)
	}
	if sel.Strategy != StrategyPlugin {
		t.Fatalf("expected plugin strategy, got %s", sel.Strategy)
	}
	if sel.Version.String() != "2.36.2" {
		t.Fatalf("expected version 2.36.2, got %s", sel.Version)
	}
	for _, call := range runner.calls {
		if strings.HasPrefix(call, "docker-compose ") {
			t.Fatalf("standalone probed despite plugin success: %v", runner.calls)
		}
	}
}

func TestFindDockerComposeStandaloneFallback(t *testing.T) {
	runner := &fakeRunner{responses: map[string]fakeResult{
		"docker-compose --version": {output: "docker-compose version 1.29.2\n"},
	}}

	sel, err := findDockerCompose(context.Background(), runner, "1.25.0", "linux")
	if err != nil {
		t.Fatalf("findDockerCompose: %v", err)
	}
	if sel.Strategy != StrategyStandalone {
		t.Fatalf("expected standalone strategy, got %s", sel.Strategy)
	}
	if sel.Command != "docker-compose" {
		t.Fatalf("expected docker-compose, got %s", sel.Command)
	}

	// Every plugin candidate must have been tried first.
	if !strings.HasPrefix(runner.calls[0], "docker compose") {
		t.Fatalf("plugin strategy should run first, calls %v", runner.calls)
	}
}

func TestFindDockerComposeNotFound(t *testing.T) {
	runner := &fakeRunner{}
	_, err := findDockerCompose(context.Background(), runner, "2.20.0", "linux")
	if !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
}

func TestFindDockerComposeMalformedMinimum(t *testing.T) {
	runner := &fakeRunner{}
	_, err := findDockerCompose(context.Background(), runner, "not-a-version", "linux")
	if err == nil {
		t.Fatal("expected an error for a malformed minimum")
	}
	if errors.Is(err, ErrToolNotFound) {
		t.Fatal("malformed minimum must not report as tool-not-found")
	}
	if !strings.Contains(err.Error(), "parse minimum version") {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.calls) != 0 {
		t.Fatalf("no candidates may be probed with a malformed minimum, got %v", runner.calls)
	}
}

func TestFindPythonBelowMinimumContinues(t *testing.T) {
	runner := &fakeRunner{responses: map[string]fakeResult{
		"python3 --version":          {output: "Python 3.8.1\n"},
		"python --version":           {output: "Python 3.12.4\n"},
		"/usr/bin/python3 --version": {output: "Python 3.13.0\n"},
	}}

	sel, err := findPython(context.Background(), runner, "3.9.0", "linux")
	if err != nil {
		t.Fatalf("findPython: %v", err)
	}
	if sel.Command != "python" {
		t.Fatalf("expected python (first at or above minimum), got %s", sel.Command)
	}
}

func TestFindPythonLauncherFallback(t *testing.T) {
	t.Setenv("USERNAME", "tester")
	runner := &fakeRunner{responses: map[string]fakeResult{
		"py -0": {output: "Installed Pythons found by py Launcher for Windows\n -3.12-64 *\n -3.11-64\n"},
	}}

	sel, err := findPython(context.Background(), runner, "3.9.0", "windows")
	if err != nil {
		t.Fatalf("findPython: %v", err)
	}
	if sel.Command != "py -3.12-64" {
		t.Fatalf("expected synthetic launcher invocation, got %q", sel.Command)
	}
	if sel.Strategy != StrategyLauncher {
		t.Fatalf("expected launcher strategy, got %s", sel.Strategy)
	}
}

func TestFindPythonLauncherOnlyOnWindows(t *testing.T) {
	runner := &fakeRunner{responses: map[string]fakeResult{
		"py -0": {output: " -3.12-64 *\n"},
	}}

	_, err := findPython(context.Background(), runner, "3.9.0", "linux")
	if !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
	for _, call := range runner.calls {
		if call == "py -0" {
			t.Fatal("launcher fallback must not run outside windows")
		}
	}
}

func TestFindGit(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		version string
	}{
		{"plain", "git version 2.39.2\n", "2.39.2"},
		{"apple", "git version 2.39.2 (Apple Git-143)\n", "2.39.2"},
		{"windows build", "git version 2.47.1.windows.1\n", "2.47.1"},
	}

	for _, tt := range tests {
		runner := &fakeRunner{responses: map[string]fakeResult{
			"git --version": {output: tt.output},
		}}
		sel, err := findGit(context.Background(), runner, "2.25.0", "linux")
		if err != nil {
			t.Fatalf("%s: findGit: %v", tt.name, err)
		}
		if sel.Version.String() != tt.version {
			t.Errorf("%s: version = %s, want %s", tt.name, sel.Version, tt.version)
		}
	}
}

func TestDetect(t *testing.T) {
	runner := &fakeRunner{responses: map[string]fakeResult{
		"python3 --version": {output: "Python 3.12.4\n"},
		"git --version":     {output: "git version 2.39.2\n"},
	}}

	statuses := Detect(context.Background(), runner, Minimums{
		Python:        "3.9.0",
		DockerCompose: "2.20.0",
		Git:           "2.25.0",
	})

	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}
	for i := 1; i < len(statuses); i++ {
		if statuses[i-1].Tool > statuses[i].Tool {
			t.Fatalf("statuses not sorted: %v before %v", statuses[i-1].Tool, statuses[i].Tool)
		}
	}

	byTool := map[string]Status{}
	for _, st := range statuses {
		byTool[st.Tool] = st
	}

	if st := byTool[ToolPython]; !st.Satisfied || st.Version != "3.12.4" {
		t.Errorf("python status = %+v", st)
	}
	if st := byTool[ToolGit]; !st.Satisfied || st.Command != "git" {
		t.Errorf("git status = %+v", st)
	}
	if st := byTool[ToolDockerCompose]; st.Satisfied || st.Error == "" {
		t.Errorf("docker-compose should be unsatisfied with an error, got %+v", st)
	}
}

func TestEnsureDeadline(t *testing.T) {
	ctx, cancel := ensureDeadline(context.Background())
	defer cancel()
	if _, ok := ctx.Deadline(); !ok {
		t.Fatal("expected a default deadline")
	}

	parent, parentCancel := context.WithTimeout(context.Background(), defaultProbeTimeout*2)
	defer parentCancel()
	got, cancel2 := ensureDeadline(parent)
	defer cancel2()
	if got != parent {
		t.Fatal("existing deadline must be kept")
	}
}
