// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application core depends only on these contracts; the infrastructure
// layer supplies the concrete adapters (aws CLI subprocess, YAML config file,
// SQLite history store). Tests substitute hand-written stubs.
package ports

import (
	"context"

	"github.com/mkarlsen/edgedeploy/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.edgedeploy/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// CommandRunner executes one aws CLI invocation per call, synchronously.
// The runner injects region/profile flags but never inspects command
// semantics; it is domain-agnostic plumbing.
type CommandRunner interface {
	Run(ctx context.Context, args ...string) (domain.ExecutionResult, error)
}

// StackOutputResolver extracts a single named output from the deployed
// CloudFormation stack for a stage.
type StackOutputResolver interface {
	ResolveOutput(ctx context.Context, stage, outputKey string) (string, error)
}

// DistributionLocator finds the live CloudFront distribution whose domain
// name exactly matches the query.
type DistributionLocator interface {
	FindByDomain(ctx context.Context, domainName string) (domain.Distribution, error)
}

// DeployHistory persists finished operations for later inspection.
type DeployHistory interface {
	Save(record domain.DeployRecord) error
	Records(limit int, search string) ([]domain.DeployRecord, error)
	Clear() error
	ExportJSON(dest string) error
	Path() string
}

// ConfirmationPrompter asks the user before destructive operations
// (the sync mirror deletes remote objects absent locally).
type ConfirmationPrompter interface {
	Confirm(prompt string) (bool, error)
	Enabled() bool
}

// Logger provides structured logging abstraction for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
