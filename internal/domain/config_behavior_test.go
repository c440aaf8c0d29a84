package domain

import "testing"

func TestStackNameDerivation(t *testing.T) {
	cfg := Config{Stack: StackSettings{NamePrefix: "myapp"}}
	if got := cfg.StackName("prod"); got != "myapp-prod" {
		t.Fatalf("StackName() = %q, want myapp-prod", got)
	}
	if got := StackNameFor("myapp", "prod"); got != "myapp-prod" {
		t.Fatalf("StackNameFor() = %q, want myapp-prod", got)
	}
}

func TestResolveStagePrefersOverride(t *testing.T) {
	cfg := Config{Deploy: DeploySettings{DefaultStage: "dev"}}

	if got, err := cfg.ResolveStage("prod"); err != nil || got != "prod" {
		t.Fatalf("ResolveStage(prod) = %q, %v", got, err)
	}
	if got, err := cfg.ResolveStage(""); err != nil || got != "dev" {
		t.Fatalf("ResolveStage(\"\") = %q, %v", got, err)
	}

	empty := Config{}
	if _, err := empty.ResolveStage(""); err == nil {
		t.Fatal("expected error when no stage is available")
	}
}

func TestSyncTarget(t *testing.T) {
	cfg := Config{Deploy: DeploySettings{Bucket: "my-bucket"}}
	if got := cfg.SyncTarget(); got != "s3://my-bucket" {
		t.Fatalf("SyncTarget() = %q", got)
	}
}

func TestInvalidationPathsDefaultToEverything(t *testing.T) {
	cfg := Config{}
	paths := cfg.InvalidationPaths()
	if len(paths) != 1 || paths[0] != "/*" {
		t.Fatalf("InvalidationPaths() = %v, want [/*]", paths)
	}

	cfg.Invalidation.Paths = []string{"/index.html", "/assets/*"}
	paths = cfg.InvalidationPaths()
	if len(paths) != 2 || paths[0] != "/index.html" {
		t.Fatalf("InvalidationPaths() = %v", paths)
	}
}

func TestValidateFlagsMissingSettings(t *testing.T) {
	cfg := Config{}
	issues := cfg.Validate()
	if len(issues) == 0 {
		t.Fatal("expected issues for empty config")
	}

	cfg = Config{
		Deploy: DeploySettings{Bucket: "my-bucket"},
		Stack:  StackSettings{NamePrefix: "myapp", OutputKey: DefaultOutputKey},
	}
	if issues := cfg.Validate(); len(issues) != 0 {
		t.Fatalf("Validate() = %v, want none", issues)
	}
}

func TestValidateRejectsBucketPath(t *testing.T) {
	cfg := Config{
		Deploy: DeploySettings{Bucket: "my-bucket/prefix"},
		Stack:  StackSettings{NamePrefix: "myapp", OutputKey: DefaultOutputKey},
	}
	if issues := cfg.Validate(); len(issues) == 0 {
		t.Fatal("expected issue for bucket containing a path")
	}
}
