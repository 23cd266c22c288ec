package toolchain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/blang/semver/v4"
)

// ParseFunc extracts a semantic version from raw version-query output.
// Returning false means the output carries no parseable version token; the
// candidate is then treated the same as a missing one.
type ParseFunc func(output string) (semver.Version, bool)

// parseLastToken takes the token after the last space, e.g.
// "Python 3.12.4" or "docker-compose version 1.29.2".
func parseLastToken(output string) (semver.Version, bool) {
	idx := strings.LastIndexByte(output, ' ')
	if idx < 0 {
		return semver.Version{}, false
	}
	version, err := semver.Parse(strings.TrimSpace(output[idx+1:]))
	if err != nil {
		return semver.Version{}, false
	}
	return version, true
}

// parseAfterLastV takes everything after the last literal 'v', e.g.
// "Docker Compose version v2.36.2".
func parseAfterLastV(output string) (semver.Version, bool) {
	idx := strings.LastIndexByte(output, 'v')
	if idx < 0 {
		return semver.Version{}, false
	}
	version, err := semver.Parse(strings.TrimSpace(output[idx+1:]))
	if err != nil {
		return semver.Version{}, false
	}
	return version, true
}

var numericVersionRegex = regexp.MustCompile(`[0-9]+(?:\.[0-9]+){0,2}`)

// parseFirstNumeric finds the first dotted numeric run anywhere in the
// output. Git needs this: "git version 2.39.2 (Apple Git-143)" and
// "git version 2.47.1.windows.1" both defeat the trailing-token strategies.
func parseFirstNumeric(output string) (semver.Version, bool) {
	match := numericVersionRegex.FindString(output)
	if match == "" {
		return semver.Version{}, false
	}
	version, err := semver.ParseTolerant(match)
	if err != nil {
		return semver.Version{}, false
	}
	return version, true
}

// ParseRequirement parses a configured minimum version. A failure here is a
// configuration error and is surfaced immediately, never folded into the
// not-found condition.
func ParseRequirement(raw string) (semver.Version, error) {
	version, err := semver.Parse(strings.TrimSpace(raw))
	if err != nil {
		return semver.Version{}, fmt.Errorf("parse minimum version %q: %w", raw, err)
	}
	return version, nil
}
