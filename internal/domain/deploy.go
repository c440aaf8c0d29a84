package domain

import "time"

// DefaultOutputKey is the stack output holding the distribution's public domain.
const DefaultOutputKey = "WebAppCloudFrontDistributionOutput"

// ExecutionResult captures the outcome of one aws CLI invocation.
type ExecutionResult struct {
	Ran        bool
	Stdout     string
	Stderr     string
	ExitCode   int
	Signal     string
	DurationMS int64
}

// StackOutput is one key/value entry from a described stack. The json tags
// follow the describe-stacks response shape.
type StackOutput struct {
	Key   string `json:"OutputKey"`
	Value string `json:"OutputValue"`
}

// Distribution is one entry from the CloudFront listing.
type Distribution struct {
	ID         string `json:"Id"`
	DomainName string `json:"DomainName"`
}

// Invalidation identifies a submitted cache purge. The purge itself completes
// out-of-band; Status reflects the last observed state.
type Invalidation struct {
	ID     string `json:"Id"`
	Status string `json:"Status"`
}

// InvalidationCompleted is the terminal status reported by get-invalidation.
const InvalidationCompleted = "Completed"

// Operation names recorded in deploy history.
const (
	OperationSync       = "sync"
	OperationDomainInfo = "domain-info"
	OperationInvalidate = "invalidate-cache"
)

// DeployRecord captures one finished operation for the history store.
type DeployRecord struct {
	Timestamp  time.Time `json:"timestamp"`
	Operation  string    `json:"operation"`
	Stage      string    `json:"stage"`
	Target     string    `json:"target"`
	Success    bool      `json:"success"`
	ExitCode   int       `json:"exit_code"`
	DurationMS int64     `json:"duration_ms"`
	Detail     string    `json:"detail,omitempty"`
}
