package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mkarlsen/edgedeploy/internal/domain"
	"github.com/mkarlsen/edgedeploy/internal/ports"
)

// FileLoader loads YAML configuration from ~/.edgedeploy/config.yaml
// (overridable via EDGEDEPLOY_CONFIG or an explicit path).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			if err := writeDefault(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return hydrateDefaults(cfg), nil
}

// Path returns the config file location currently in effect.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

// Save writes the configuration back to the file.
func (l *FileLoader) Save(cfg domain.Config) error {
	path := l.resolvePath()
	if err := ensureConfigDir(path); err != nil {
		return err
	}
	return writeDefault(path, cfg)
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return expandPath(l.overridePath)
	}
	if custom := os.Getenv("EDGEDEPLOY_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(userHomeDir(), ".edgedeploy", "config.yaml")
}

func ensureConfigDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o600)
}

func defaultConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Deploy: domain.DeploySettings{
			AppDir:            "app/",
			DefaultStage:      "dev",
			ConfirmBeforeSync: true,
		},
		Stack: domain.StackSettings{
			NamePrefix: "myapp",
			OutputKey:  domain.DefaultOutputKey,
		},
		Invalidation: domain.InvalidationSettings{
			Paths:               []string{"/*"},
			WaitTimeoutSeconds:  600,
			PollIntervalSeconds: 15,
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.Deploy.AppDir == "" {
		cfg.Deploy.AppDir = "app/"
	}
	if cfg.Stack.OutputKey == "" {
		cfg.Stack.OutputKey = domain.DefaultOutputKey
	}
	if cfg.Stack.NamePrefix == "" {
		cfg.Stack.NamePrefix = "myapp"
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(userHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

func userHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
