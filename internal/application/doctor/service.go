package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/mkarlsen/edgedeploy/internal/domain"
	"github.com/mkarlsen/edgedeploy/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Runner         ports.CommandRunner
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded (format %s)", cfg.ConfigFormatVersion)))

	if issues := cfg.Validate(); len(issues) > 0 {
		checks = append(checks, warn("Config values", strings.Join(issues, "; ")))
	} else {
		stage, _ := cfg.ResolveStage("")
		checks = append(checks, ok("Config values", fmt.Sprintf("bucket %s, stack %s", cfg.Deploy.Bucket, cfg.StackName(stage))))
	}

	if s.Runner == nil {
		checks = append(checks, warn("AWS CLI", "command runner not initialized"))
		return domain.HealthReport{Checks: checks}, nil
	}

	res, err := s.Runner.Run(ctx, "--version")
	if err != nil {
		checks = append(checks, fail("AWS CLI", fmt.Sprintf("not runnable: %v", err)))
		return domain.HealthReport{Checks: checks}, nil
	}
	checks = append(checks, ok("AWS CLI", strings.TrimSpace(firstLine(res.Stdout+res.Stderr))))

	if _, err := s.Runner.Run(ctx, "sts", "get-caller-identity", "--output", "json"); err != nil {
		checks = append(checks, warn("Credentials", fmt.Sprintf("sts get-caller-identity failed: %v", err)))
	} else {
		checks = append(checks, ok("Credentials", "caller identity resolved"))
	}

	return domain.HealthReport{Checks: checks}, nil
}

// aws --version historically printed to stderr, newer releases use stdout.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
