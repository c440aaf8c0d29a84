package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup (stack output or distribution) that produced no result.
var ErrNotFound = errors.New("not found")

// ErrAmbiguousMatch marks a lookup that matched more than one candidate.
var ErrAmbiguousMatch = errors.New("ambiguous match")

// Operation-level failures surfaced to the command dispatcher.
var (
	ErrSyncFailed         = errors.New("Failed syncing to the S3 bucket")
	ErrDomainNotFound     = errors.New("Could not extract Web App Domain")
	ErrInvalidationFailed = errors.New("Failed invalidating CloudFront cache")
)

// DistributionNotFoundError reports that no live distribution carries the domain.
type DistributionNotFoundError struct {
	Domain string
}

func (e *DistributionNotFoundError) Error() string {
	return fmt.Sprintf("Could not find distribution with domain %s", e.Domain)
}

func (e *DistributionNotFoundError) Unwrap() error {
	return ErrNotFound
}

// CommandError reports a CLI invocation that launched but did not succeed.
type CommandError struct {
	ExitCode int
	Signal   string
	Stderr   string
}

func (e *CommandError) Error() string {
	if e.Signal != "" {
		return fmt.Sprintf("command killed by signal %s: %s", e.Signal, e.Stderr)
	}
	return fmt.Sprintf("command exited with code %d: %s", e.ExitCode, e.Stderr)
}
