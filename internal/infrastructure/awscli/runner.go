package awscli

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/mkarlsen/edgedeploy/internal/domain"
	"github.com/mkarlsen/edgedeploy/internal/ports"
)

const defaultBinary = "aws"

// stderr beyond this is noise for the diagnostic summary.
const stderrSummaryLimit = 400

// Runner executes aws CLI invocations as child processes. One process per
// call, no retry, no internal timeout: the process runs to completion unless
// the caller's context is canceled.
type Runner struct {
	binary  string
	region  string
	profile string
}

// NewRunner builds a runner. binary defaults to "aws".
func NewRunner(binary, region, profile string) *Runner {
	if binary == "" {
		binary = defaultBinary
	}
	return &Runner{binary: binary, region: region, profile: profile}
}

// Run implements ports.CommandRunner.
func (r *Runner) Run(ctx context.Context, args ...string) (domain.ExecutionResult, error) {
	argv := Invocation(r.region, r.profile, args...)

	c := exec.CommandContext(ctx, r.binary, argv...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	err := c.Run()
	duration := time.Since(start).Milliseconds()

	result := domain.ExecutionResult{
		Ran:        err == nil,
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		DurationMS: duration,
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		result.ExitCode = exitErr.ExitCode()
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			result.Signal = ws.Signal().String()
		}
		return result, &domain.CommandError{
			ExitCode: result.ExitCode,
			Signal:   result.Signal,
			Stderr:   summarize(result.Stderr),
		}
	}
	if err != nil {
		// launch failure, e.g. binary not on PATH
		result.ExitCode = -1
		return result, &domain.CommandError{ExitCode: -1, Stderr: err.Error()}
	}
	result.ExitCode = 0
	return result, nil
}

func summarize(stderr string) string {
	s := strings.TrimSpace(stderr)
	if len(s) > stderrSummaryLimit {
		s = s[:stderrSummaryLimit]
	}
	return s
}

var _ ports.CommandRunner = (*Runner)(nil)
