package toolchain

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/blang/semver/v4"
	"github.com/rs/zerolog"
)

// defaultProbeTimeout bounds a resolution flow when the caller's context
// carries no deadline, so a hung candidate cannot block discovery forever.
const defaultProbeTimeout = 5 * time.Second

// FindPython probes for a usable Python interpreter at or above the given
// minimum version. On Windows, when no direct candidate qualifies, it falls
// back to the py launcher and returns a synthetic "py -3.x" invocation.
func FindPython(ctx context.Context, runner Runner, minimum string) (Selection, error) {
	return findPython(ctx, runner, minimum, runtime.GOOS)
}

func findPython(ctx context.Context, runner Runner, minimum, goos string) (Selection, error) {
	ctx, cancel := ensureDeadline(ctx)
	defer cancel()
	if runner == nil {
		runner = execRunner{}
	}

	min, err := ParseRequirement(minimum)
	if err != nil {
		return Selection{}, err
	}

	spec := ProbeSpec{
		Candidates:  pythonCandidates.compile(goos),
		VersionArgs: []string{"--version"},
		Parse:       parseLastToken,
		Minimum:     min,
		GOOS:        goos,
	}
	if sel, ok := Probe(ctx, runner, spec); ok {
		return sel, nil
	}

	// The py launcher can enumerate interpreters the direct candidates
	// miss. Windows only; no other platform has an equivalent.
	if goos == "windows" {
		if sel, ok := pyLauncherFallback(ctx, runner); ok {
			return sel, nil
		}
	}

	return Selection{}, fmt.Errorf("%s: %w", ToolPython, ErrToolNotFound)
}

// pyLauncherFallback queries `py -0` for installed interpreters and selects
// the first 3.x line, yielding a launcher invocation rather than a path.
func pyLauncherFallback(ctx context.Context, runner Runner) (Selection, bool) {
	output, err := runner.Run(ctx, "py", "-0")
	if err != nil {
		return Selection{}, false
	}
	for _, line := range strings.Split(string(output), "\n") {
		if !strings.Contains(line, "-3") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		sel := Selection{
			Command:  "py -" + strings.TrimLeft(fields[0], "-"),
			Strategy: StrategyLauncher,
		}
		if version, ok := parseFirstNumeric(fields[0]); ok {
			sel.Version = version
		}
		return sel, true
	}
	return Selection{}, false
}

// FindDockerCompose resolves a compose tool at or above the given minimum.
// The docker compose plugin is preferred; the standalone docker-compose
// binary is consulted only when no docker candidate qualifies.
func FindDockerCompose(ctx context.Context, runner Runner, minimum string) (Selection, error) {
	return findDockerCompose(ctx, runner, minimum, runtime.GOOS)
}

func findDockerCompose(ctx context.Context, runner Runner, minimum, goos string) (Selection, error) {
	ctx, cancel := ensureDeadline(ctx)
	defer cancel()
	if runner == nil {
		runner = execRunner{}
	}

	min, err := ParseRequirement(minimum)
	if err != nil {
		return Selection{}, err
	}

	plugin := ProbeSpec{
		Candidates:  dockerCandidates.compile(goos),
		VersionArgs: []string{"compose", "version"},
		Parse:       parseAfterLastV,
		Minimum:     min,
		GOOS:        goos,
	}
	if sel, ok := Probe(ctx, runner, plugin); ok {
		sel.Strategy = StrategyPlugin
		return sel, nil
	}

	standalone := ProbeSpec{
		Candidates:  composeStandaloneCandidates.compile(goos),
		VersionArgs: []string{"--version"},
		Parse:       parseLastToken,
		Minimum:     min,
		GOOS:        goos,
	}
	if sel, ok := Probe(ctx, runner, standalone); ok {
		sel.Strategy = StrategyStandalone
		return sel, nil
	}

	return Selection{}, fmt.Errorf("%s: %w", ToolDockerCompose, ErrToolNotFound)
}

// FindGit resolves a git client at or above the given minimum version.
func FindGit(ctx context.Context, runner Runner, minimum string) (Selection, error) {
	return findGit(ctx, runner, minimum, runtime.GOOS)
}

func findGit(ctx context.Context, runner Runner, minimum, goos string) (Selection, error) {
	ctx, cancel := ensureDeadline(ctx)
	defer cancel()
	if runner == nil {
		runner = execRunner{}
	}

	min, err := ParseRequirement(minimum)
	if err != nil {
		return Selection{}, err
	}

	spec := ProbeSpec{
		Candidates:  gitCandidates.compile(goos),
		VersionArgs: []string{"--version"},
		Parse:       parseFirstNumeric,
		Minimum:     min,
		GOOS:        goos,
	}
	if sel, ok := Probe(ctx, runner, spec); ok {
		return sel, nil
	}

	return Selection{}, fmt.Errorf("%s: %w", ToolGit, ErrToolNotFound)
}

// Detect resolves every required tool and returns one display status per
// tool, sorted by name. A missing tool is reported on its row, never as a
// resolution-level failure.
func Detect(ctx context.Context, runner Runner, minimums Minimums) []Status {
	logger := zerolog.Ctx(ctx)

	type flow struct {
		tool    string
		minimum string
		find    func(context.Context, Runner, string) (Selection, error)
	}
	flows := []flow{
		{ToolPython, minimums.Python, FindPython},
		{ToolDockerCompose, minimums.DockerCompose, FindDockerCompose},
		{ToolGit, minimums.Git, FindGit},
	}

	statuses := make([]Status, 0, len(flows))
	for _, f := range flows {
		status := Status{Tool: f.tool, Minimum: f.minimum}
		sel, err := f.find(ctx, runner, f.minimum)
		switch {
		case err == nil:
			status.Command = sel.Command
			status.Strategy = sel.Strategy
			status.Satisfied = true
			if !sel.Version.EQ(semver.Version{}) {
				status.Version = sel.Version.String()
			}
		case errors.Is(err, ErrToolNotFound):
			status.Error = "no qualifying executable found"
		default:
			status.Error = err.Error()
		}
		logger.Debug().
			Str("tool", status.Tool).
			Bool("satisfied", status.Satisfied).
			Str("command", status.Command).
			Msg("tool detection finished")
		statuses = append(statuses, status)
	}

	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Tool < statuses[j].Tool })
	return statuses
}

func ensureDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		return context.WithTimeout(context.Background(), defaultProbeTimeout)
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, defaultProbeTimeout)
}
