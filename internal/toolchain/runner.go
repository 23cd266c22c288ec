package toolchain

import (
	"context"
	"os/exec"
)

// Runner executes a candidate with the version-query arguments and returns
// its stdout. Launch failures and non-zero exits both surface as errors;
// the prober treats either as a non-qualifying candidate.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

var _ Runner = execRunner{}
