// Package deploy orchestrates the three deployment operations: bucket sync,
// domain discovery, and edge cache invalidation.
package deploy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mkarlsen/edgedeploy/internal/domain"
	"github.com/mkarlsen/edgedeploy/internal/ports"
)

// Service sequences the deploy operations. Each entry point loads fresh
// configuration, runs single-threaded to completion, and never retries.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Runner         ports.CommandRunner
	Resolver       ports.StackOutputResolver
	Locator        ports.DistributionLocator
	History        ports.DeployHistory
	Prompter       ports.ConfirmationPrompter
	Logger         ports.Logger
}

// SyncOptions modifies a single Sync call.
type SyncOptions struct {
	AssumeYes bool
}

// InvalidateOptions modifies a single InvalidateCache call. The purge itself
// always completes out-of-band; Wait polls until it reports Completed.
type InvalidateOptions struct {
	Wait        bool
	WaitTimeout time.Duration
}

// ErrSyncCanceled is returned when the user declines the confirmation prompt.
var ErrSyncCanceled = errors.New("sync canceled")

// Sync mirrors the local app directory into the configured bucket, deleting
// remote objects absent locally.
func (s *Service) Sync(ctx context.Context, opts SyncOptions) error {
	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return err
	}
	if cfg.Deploy.Bucket == "" {
		return fmt.Errorf("deploy.bucket not configured")
	}

	if cfg.Deploy.ConfirmBeforeSync && !opts.AssumeYes && s.Prompter != nil && s.Prompter.Enabled() {
		ok, err := s.Prompter.Confirm(fmt.Sprintf("Mirror %s into %s, deleting remote objects absent locally?", cfg.Deploy.AppDir, cfg.SyncTarget()))
		if err != nil {
			return err
		}
		if !ok {
			return ErrSyncCanceled
		}
	}

	res, runErr := s.Runner.Run(ctx, "s3", "sync", cfg.Deploy.AppDir, cfg.SyncTarget(), "--delete")
	s.record(domain.OperationSync, "", cfg.Deploy.Bucket, res, runErr)
	if runErr != nil {
		s.Logger.Error("Failed syncing to the S3 bucket", runErr, map[string]interface{}{
			"exit_code": res.ExitCode,
			"signal":    res.Signal,
		})
		return domain.ErrSyncFailed
	}

	s.Logger.Info("Successfully synced to the S3 bucket", nil)
	return nil
}

// DomainInfo resolves the web app's public domain from the stack outputs for
// a stage.
func (s *Service) DomainInfo(ctx context.Context, stage string) (string, error) {
	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return "", err
	}
	stage, err = cfg.ResolveStage(stage)
	if err != nil {
		return "", err
	}

	webAppDomain, resolveErr := s.Resolver.ResolveOutput(ctx, stage, cfg.Stack.OutputKey)
	if resolveErr != nil {
		s.Logger.Error("Web App Domain: Not Found", resolveErr, map[string]interface{}{"stage": stage})
		s.record(domain.OperationDomainInfo, stage, "", domain.ExecutionResult{}, resolveErr)
		return "", domain.ErrDomainNotFound
	}

	s.Logger.Info("Web App Domain: "+webAppDomain, nil)
	s.record(domain.OperationDomainInfo, stage, webAppDomain, domain.ExecutionResult{}, nil)
	return webAppDomain, nil
}

// InvalidateCache purges the edge cache of the distribution serving the
// stage's domain. It chains DomainInfo and the distribution lookup before
// issuing the invalidation; any earlier failure short-circuits the rest.
func (s *Service) InvalidateCache(ctx context.Context, stage string, opts InvalidateOptions) error {
	webAppDomain, err := s.DomainInfo(ctx, stage)
	if err != nil {
		return err
	}

	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return err
	}
	resolvedStage, err := cfg.ResolveStage(stage)
	if err != nil {
		return err
	}

	dist, findErr := s.Locator.FindByDomain(ctx, webAppDomain)
	if findErr != nil {
		s.Logger.Error("Distribution: Not Found", findErr, map[string]interface{}{"domain": webAppDomain})
		s.record(domain.OperationInvalidate, resolvedStage, webAppDomain, domain.ExecutionResult{}, findErr)
		if errors.Is(findErr, domain.ErrAmbiguousMatch) {
			return findErr
		}
		return &domain.DistributionNotFoundError{Domain: webAppDomain}
	}

	args := []string{"cloudfront", "create-invalidation", "--distribution-id", dist.ID, "--paths"}
	args = append(args, cfg.InvalidationPaths()...)
	res, runErr := s.Runner.Run(ctx, args...)
	s.record(domain.OperationInvalidate, resolvedStage, dist.ID, res, runErr)
	if runErr != nil {
		s.Logger.Error("Failed invalidating CloudFront cache", runErr, map[string]interface{}{
			"exit_code":    res.ExitCode,
			"signal":       res.Signal,
			"distribution": dist.ID,
		})
		return domain.ErrInvalidationFailed
	}

	s.Logger.Info("Successfully invalidated CloudFront cache", map[string]interface{}{"distribution": dist.ID})

	if !opts.Wait {
		return nil
	}
	timeout := opts.WaitTimeout
	if timeout <= 0 {
		timeout = cfg.WaitTimeout()
	}
	return s.waitForInvalidation(ctx, dist.ID, res.Stdout, cfg.PollInterval(), timeout)
}

// Deploy chains Sync and InvalidateCache for one stage.
func (s *Service) Deploy(ctx context.Context, stage string, syncOpts SyncOptions, invOpts InvalidateOptions) error {
	if err := s.Sync(ctx, syncOpts); err != nil {
		return err
	}
	return s.InvalidateCache(ctx, stage, invOpts)
}

type createInvalidationResponse struct {
	Invalidation domain.Invalidation `json:"Invalidation"`
}

func (s *Service) waitForInvalidation(ctx context.Context, distributionID, createStdout string, interval, timeout time.Duration) error {
	var created createInvalidationResponse
	if err := json.Unmarshal([]byte(createStdout), &created); err != nil || created.Invalidation.ID == "" {
		return fmt.Errorf("cannot wait: invalidation id missing from create response")
	}
	if created.Invalidation.Status == domain.InvalidationCompleted {
		return nil
	}

	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		res, err := s.Runner.Run(ctx,
			"cloudfront", "get-invalidation",
			"--distribution-id", distributionID,
			"--id", created.Invalidation.ID,
			"--output", "json",
		)
		if err != nil {
			return fmt.Errorf("poll invalidation %s: %w", created.Invalidation.ID, err)
		}
		var current createInvalidationResponse
		if err := json.Unmarshal([]byte(res.Stdout), &current); err != nil {
			return fmt.Errorf("poll invalidation %s: parse response: %w", created.Invalidation.ID, err)
		}
		if current.Invalidation.Status == domain.InvalidationCompleted {
			s.Logger.Info("Invalidation completed", map[string]interface{}{"id": created.Invalidation.ID})
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("invalidation %s not completed after %s", created.Invalidation.ID, timeout)
		}
	}
}

func (s *Service) loadConfig(ctx context.Context) (domain.Config, error) {
	if s.ConfigProvider == nil || s.Runner == nil || s.Logger == nil {
		return domain.Config{}, errors.New("deploy.Service dependencies not satisfied")
	}
	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		return domain.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (s *Service) record(operation, stage, target string, res domain.ExecutionResult, opErr error) {
	if s.History == nil {
		return
	}
	rec := domain.DeployRecord{
		Timestamp:  time.Now(),
		Operation:  operation,
		Stage:      stage,
		Target:     target,
		Success:    opErr == nil,
		ExitCode:   res.ExitCode,
		DurationMS: res.DurationMS,
	}
	if opErr != nil {
		rec.Detail = opErr.Error()
	}
	if err := s.History.Save(rec); err != nil {
		s.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error()})
	}
}
