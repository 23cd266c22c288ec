package toolchain

import (
	"context"
	"os"
	"runtime"
	"strings"

	"github.com/blang/semver/v4"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
)

// ProbeSpec parameterizes one probing pass over an ordered candidate list.
type ProbeSpec struct {
	Candidates  []Candidate
	VersionArgs []string
	Parse       ParseFunc
	Minimum     semver.Version
	// GOOS overrides the host platform for candidate filtering and path
	// expansion. Empty means runtime.GOOS.
	GOOS string
}

// Probe iterates candidates strictly in order and returns the first whose
// reported version meets the minimum. A candidate that fails to launch,
// exits non-zero, or reports an unparseable or below-minimum version is
// skipped silently; the next one is tried. Exhausting the list yields
// (zero, false), never an error.
func Probe(ctx context.Context, runner Runner, spec ProbeSpec) (Selection, bool) {
	goos := spec.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	logger := zerolog.Ctx(ctx)

	for _, candidate := range spec.Candidates {
		if candidate.OS != "" && candidate.OS != goos {
			continue
		}

		command := expandCandidate(candidate.Path, goos)
		logger.Debug().Str("candidate", command).Msg("probing candidate")

		output, err := runner.Run(ctx, command, spec.VersionArgs...)
		if err != nil {
			logger.Debug().Str("candidate", command).Err(err).Msg("candidate did not qualify")
			continue
		}

		version, ok := spec.Parse(string(output))
		if !ok {
			logger.Debug().Str("candidate", command).Msg("no version in output")
			continue
		}

		if version.GE(spec.Minimum) {
			logger.Debug().Str("candidate", command).Stringer("version", version).Msg("candidate qualified")
			return Selection{Command: command, Version: version, Strategy: StrategyProbe}, true
		}
		logger.Debug().
			Str("candidate", command).
			Stringer("version", version).
			Stringer("minimum", spec.Minimum).
			Msg("version below minimum")
	}

	return Selection{}, false
}

// expandCandidate resolves a leading ~ on unix-like platforms and the
// %USERNAME% placeholder on Windows, matching how the candidate tables are
// written.
func expandCandidate(path, goos string) string {
	if goos == "windows" {
		return strings.ReplaceAll(path, "%USERNAME%", os.Getenv("USERNAME"))
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}
