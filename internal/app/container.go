package app

import (
	"context"

	"github.com/mkarlsen/edgedeploy/internal/application/deploy"
	"github.com/mkarlsen/edgedeploy/internal/application/doctor"
	"github.com/mkarlsen/edgedeploy/internal/infrastructure/awscli"
	"github.com/mkarlsen/edgedeploy/internal/infrastructure/cloudformation"
	"github.com/mkarlsen/edgedeploy/internal/infrastructure/cloudfront"
	"github.com/mkarlsen/edgedeploy/internal/infrastructure/config"
	"github.com/mkarlsen/edgedeploy/internal/infrastructure/history"
	"github.com/mkarlsen/edgedeploy/internal/pkg/logger"
	"github.com/mkarlsen/edgedeploy/internal/ports"
)

// Options controls container construction.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	DeployService *deploy.Service
	DoctorService *doctor.Service
	ConfigLoader  *config.FileLoader
	HistoryStore  ports.DeployHistory
	Logger        ports.Logger
}

// BuildContainer constructs the dependency graph. Configuration is loaded
// once here to parameterize the aws CLI runner; the services still reload it
// per operation so every run sees fresh settings.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(opts.Verbose)
	runner := awscli.NewRunner("", cfg.AWS.Region, cfg.AWS.Profile)
	historyStore := history.NewSQLiteStore()

	deployService := &deploy.Service{
		ConfigProvider: cfgLoader,
		Runner:         runner,
		Resolver: &cloudformation.Resolver{
			Runner:     runner,
			NamePrefix: cfg.Stack.NamePrefix,
			Logger:     log,
		},
		Locator: &cloudfront.Locator{
			Runner: runner,
			Logger: log,
		},
		History: historyStore,
		Logger:  log,
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		Runner:         runner,
	}

	return &Container{
		DeployService: deployService,
		DoctorService: doctorService,
		ConfigLoader:  cfgLoader,
		HistoryStore:  historyStore,
		Logger:        log,
	}, nil
}
