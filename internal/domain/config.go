package domain

// Config mirrors ~/.edgedeploy/config.yaml.
type Config struct {
	ConfigFormatVersion string               `yaml:"config_format_version"`
	AWS                 AWSSettings          `yaml:"aws"`
	Deploy              DeploySettings       `yaml:"deploy"`
	Stack               StackSettings        `yaml:"stack"`
	Invalidation        InvalidationSettings `yaml:"invalidation"`
}

// AWSSettings holds the optional flags injected into every aws CLI call.
type AWSSettings struct {
	Region  string `yaml:"region"`
	Profile string `yaml:"profile"`
}

// DeploySettings controls the sync operation.
type DeploySettings struct {
	Bucket            string `yaml:"bucket"`
	AppDir            string `yaml:"app_dir"`
	DefaultStage      string `yaml:"default_stage"`
	ConfirmBeforeSync bool   `yaml:"confirm_before_sync"`
}

// StackSettings describes how the CloudFormation stack is addressed.
type StackSettings struct {
	NamePrefix string `yaml:"name_prefix"`
	OutputKey  string `yaml:"output_key"`
}

// InvalidationSettings controls cache invalidation behavior.
type InvalidationSettings struct {
	Paths               []string `yaml:"paths"`
	WaitTimeoutSeconds  int      `yaml:"wait_timeout"`
	PollIntervalSeconds int      `yaml:"poll_interval"`
}
