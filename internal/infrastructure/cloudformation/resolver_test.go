package cloudformation

import (
	"context"
	"errors"
	"testing"

	"github.com/mkarlsen/edgedeploy/internal/domain"
)

type stubRunner struct {
	stdout string
	err    error
	args   []string
}

func (s *stubRunner) Run(_ context.Context, args ...string) (domain.ExecutionResult, error) {
	s.args = args
	if s.err != nil {
		return domain.ExecutionResult{ExitCode: 255}, s.err
	}
	return domain.ExecutionResult{Ran: true, Stdout: s.stdout}, nil
}

func describeResponse(outputs string) string {
	return `{"Stacks":[{"StackName":"myapp-prod","Outputs":[` + outputs + `]}]}`
}

func TestResolveOutputFirstMatchWins(t *testing.T) {
	runner := &stubRunner{stdout: describeResponse(
		`{"OutputKey":"A","OutputValue":"1"},
		 {"OutputKey":"B","OutputValue":"2"},
		 {"OutputKey":"B","OutputValue":"3"}`,
	)}
	r := &Resolver{Runner: runner, NamePrefix: "myapp"}

	got, err := r.ResolveOutput(context.Background(), "prod", "B")
	if err != nil {
		t.Fatalf("ResolveOutput() error = %v", err)
	}
	if got != "2" {
		t.Fatalf("ResolveOutput() = %q, want first match 2", got)
	}
}

func TestResolveOutputDerivesStackNameFromStage(t *testing.T) {
	runner := &stubRunner{stdout: describeResponse(`{"OutputKey":"K","OutputValue":"v"}`)}
	r := &Resolver{Runner: runner, NamePrefix: "myapp"}

	if _, err := r.ResolveOutput(context.Background(), "prod", "K"); err != nil {
		t.Fatalf("ResolveOutput() error = %v", err)
	}

	var stackName string
	for i, a := range runner.args {
		if a == "--stack-name" && i+1 < len(runner.args) {
			stackName = runner.args[i+1]
		}
	}
	if stackName != "myapp-prod" {
		t.Fatalf("stack name = %q, want myapp-prod", stackName)
	}
}

func TestResolveOutputMissingKeyIsNotFound(t *testing.T) {
	runner := &stubRunner{stdout: describeResponse(`{"OutputKey":"Other","OutputValue":"x"}`)}
	r := &Resolver{Runner: runner, NamePrefix: "myapp"}

	_, err := r.ResolveOutput(context.Background(), "prod", "Wanted")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestResolveOutputEmptyValueIsNotFound(t *testing.T) {
	runner := &stubRunner{stdout: describeResponse(`{"OutputKey":"K","OutputValue":""}`)}
	r := &Resolver{Runner: runner, NamePrefix: "myapp"}

	_, err := r.ResolveOutput(context.Background(), "prod", "K")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestResolveOutputNoStacksIsNotFound(t *testing.T) {
	runner := &stubRunner{stdout: `{"Stacks":[]}`}
	r := &Resolver{Runner: runner, NamePrefix: "myapp"}

	_, err := r.ResolveOutput(context.Background(), "prod", "K")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestResolveOutputCommandFailurePropagates(t *testing.T) {
	cmdErr := &domain.CommandError{ExitCode: 255, Stderr: "stack does not exist"}
	runner := &stubRunner{err: cmdErr}
	r := &Resolver{Runner: runner, NamePrefix: "myapp"}

	_, err := r.ResolveOutput(context.Background(), "prod", "K")
	var got *domain.CommandError
	if !errors.As(err, &got) {
		t.Fatalf("error = %v, want wrapped CommandError", err)
	}
}
