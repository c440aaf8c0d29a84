package domain

import (
	"fmt"
	"strings"
	"time"
)

// StackNameFor derives the fully-qualified CloudFormation stack name
// from a prefix and a stage.
func StackNameFor(prefix, stage string) string {
	return fmt.Sprintf("%s-%s", prefix, stage)
}

// StackName derives the stack name for a stage using the configured prefix.
func (c *Config) StackName(stage string) string {
	return StackNameFor(c.Stack.NamePrefix, stage)
}

// ResolveStage returns the explicit stage when given, else the configured default.
func (c *Config) ResolveStage(override string) (string, error) {
	stage := override
	if stage == "" {
		stage = c.Deploy.DefaultStage
	}
	if stage == "" {
		return "", fmt.Errorf("no stage given and no default_stage configured")
	}
	return stage, nil
}

// SyncTarget returns the s3:// URI the app directory is mirrored into.
func (c *Config) SyncTarget() string {
	return "s3://" + c.Deploy.Bucket
}

// InvalidationPaths returns the configured path patterns, defaulting to everything.
func (c *Config) InvalidationPaths() []string {
	if len(c.Invalidation.Paths) == 0 {
		return []string{"/*"}
	}
	return c.Invalidation.Paths
}

// WaitTimeout returns the invalidation wait deadline as a duration.
func (c *Config) WaitTimeout() time.Duration {
	if c.Invalidation.WaitTimeoutSeconds <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(c.Invalidation.WaitTimeoutSeconds) * time.Second
}

// PollInterval returns how often invalidation status is re-checked while waiting.
func (c *Config) PollInterval() time.Duration {
	if c.Invalidation.PollIntervalSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.Invalidation.PollIntervalSeconds) * time.Second
}

// Validate reports configuration problems that make operations impossible.
func (c *Config) Validate() []string {
	var issues []string
	if strings.TrimSpace(c.Deploy.Bucket) == "" {
		issues = append(issues, "deploy.bucket is empty")
	}
	if strings.Contains(c.Deploy.Bucket, "/") {
		issues = append(issues, "deploy.bucket must be a bucket name, not a path")
	}
	if strings.TrimSpace(c.Stack.NamePrefix) == "" {
		issues = append(issues, "stack.name_prefix is empty")
	}
	if strings.TrimSpace(c.Stack.OutputKey) == "" {
		issues = append(issues, "stack.output_key is empty")
	}
	return issues
}
