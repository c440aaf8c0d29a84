package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/edgedeploy/internal/app"
	"github.com/mkarlsen/edgedeploy/internal/infrastructure/cli/commands"
)

// Options holds CLI-level defaults. The persistent --verbose and --config
// flags override them at parse time.
type Options struct {
	Verbose    bool
	ConfigPath string
}

// NewRootCmd wires the cobra root command. The dependency container is built
// in PersistentPreRunE so the persistent flags are already parsed.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	var (
		verbose    = opts.Verbose
		configPath = opts.ConfigPath
	)
	container := &app.Container{}

	root := &cobra.Command{
		Use:   "edgedeploy",
		Short: "edgedeploy - static web app deploy helper",
		Long:  "edgedeploy mirrors a static web app to S3, discovers its CloudFront domain from CloudFormation stack outputs, and invalidates the edge cache.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			built, err := app.BuildContainer(cmd.Context(), app.Options{
				Verbose:    verbose,
				ConfigPath: configPath,
			})
			if err != nil {
				return err
			}
			built.DeployService.Prompter = NewPrompter(nil, nil)
			*container = *built
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", opts.Verbose, "Enable debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", opts.ConfigPath, "Config file path (default ~/.edgedeploy/config.yaml)")

	root.AddCommand(commands.NewSyncCommand(container))
	root.AddCommand(commands.NewDomainInfoCommand(container))
	root.AddCommand(commands.NewInvalidateCacheCommand(container))
	root.AddCommand(commands.NewDeployCommand(container))
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewHistoryCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root, nil
}
