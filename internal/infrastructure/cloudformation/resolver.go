// Package cloudformation resolves stack outputs through the aws CLI.
package cloudformation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mkarlsen/edgedeploy/internal/domain"
	"github.com/mkarlsen/edgedeploy/internal/ports"
)

// Resolver queries one described stack per call and scans its outputs.
// The lookup is read-only and fetched fresh every time.
type Resolver struct {
	Runner     ports.CommandRunner
	NamePrefix string
	Logger     ports.Logger
}

type describeStacksResponse struct {
	Stacks []struct {
		StackName string               `json:"StackName"`
		Outputs   []domain.StackOutput `json:"Outputs"`
	} `json:"Stacks"`
}

// ResolveOutput implements ports.StackOutputResolver. The stack name is
// derived from the configured prefix and the stage; the first output entry
// whose key equals outputKey wins.
func (r *Resolver) ResolveOutput(ctx context.Context, stage, outputKey string) (string, error) {
	stackName := domain.StackNameFor(r.NamePrefix, stage)

	res, err := r.Runner.Run(ctx,
		"cloudformation", "describe-stacks",
		"--stack-name", stackName,
		"--output", "json",
	)
	if err != nil {
		return "", fmt.Errorf("describe stack %s: %w", stackName, err)
	}

	var parsed describeStacksResponse
	if err := json.Unmarshal([]byte(res.Stdout), &parsed); err != nil {
		return "", fmt.Errorf("describe stack %s: parse response: %w", stackName, err)
	}
	if len(parsed.Stacks) == 0 {
		return "", fmt.Errorf("stack %s: %w", stackName, domain.ErrNotFound)
	}

	for _, out := range parsed.Stacks[0].Outputs {
		if out.Key != outputKey {
			continue
		}
		if out.Value == "" {
			break
		}
		if r.Logger != nil {
			r.Logger.Debug("resolved stack output", map[string]interface{}{
				"stack": stackName,
				"key":   outputKey,
				"value": out.Value,
			})
		}
		return out.Value, nil
	}

	return "", fmt.Errorf("stack %s has no output %s: %w", stackName, outputKey, domain.ErrNotFound)
}

var _ ports.StackOutputResolver = (*Resolver)(nil)
