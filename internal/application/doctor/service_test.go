package doctor

import (
	"context"
	"testing"

	"github.com/mkarlsen/edgedeploy/internal/domain"
)

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

type stubRunner struct {
	results map[string]error
	stdout  string
}

func (s *stubRunner) Run(_ context.Context, args ...string) (domain.ExecutionResult, error) {
	if err, ok := s.results[args[0]]; ok && err != nil {
		return domain.ExecutionResult{ExitCode: 255}, err
	}
	return domain.ExecutionResult{Ran: true, Stdout: s.stdout}, nil
}

func validConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Deploy:              domain.DeploySettings{Bucket: "my-bucket"},
		Stack:               domain.StackSettings{NamePrefix: "myapp", OutputKey: domain.DefaultOutputKey},
	}
}

func TestRunAllChecksHealthy(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: validConfig()},
		Runner:         &stubRunner{stdout: "aws-cli/2.17.0\n"},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, check := range report.Checks {
		if check.Status != domain.HealthOK {
			t.Errorf("check %s = %s (%s), want ok", check.Name, check.Status, check.Details)
		}
	}
}

func TestRunFlagsMissingBucket(t *testing.T) {
	cfg := validConfig()
	cfg.Deploy.Bucket = ""
	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: cfg},
		Runner:         &stubRunner{},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !hasStatus(report, "Config values", domain.HealthWarn) {
		t.Errorf("expected config values warning, got %+v", report.Checks)
	}
}

func TestRunFlagsUnrunnableCLI(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: validConfig()},
		Runner: &stubRunner{results: map[string]error{
			"--version": &domain.CommandError{ExitCode: -1, Stderr: "not found"},
		}},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !hasStatus(report, "AWS CLI", domain.HealthError) {
		t.Errorf("expected AWS CLI failure, got %+v", report.Checks)
	}
}

func TestRunFlagsBadCredentials(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfigProvider{cfg: validConfig()},
		Runner: &stubRunner{results: map[string]error{
			"sts": &domain.CommandError{ExitCode: 255, Stderr: "ExpiredToken"},
		}},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !hasStatus(report, "Credentials", domain.HealthWarn) {
		t.Errorf("expected credentials warning, got %+v", report.Checks)
	}
}

func hasStatus(report domain.HealthReport, name string, status domain.HealthStatus) bool {
	for _, check := range report.Checks {
		if check.Name == name && check.Status == status {
			return true
		}
	}
	return false
}
