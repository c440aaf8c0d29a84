package commands

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/edgedeploy/internal/app"
	"github.com/mkarlsen/edgedeploy/internal/application/deploy"
)

// NewDeployCommand creates the deploy command, chaining sync and
// invalidate-cache for one stage.
func NewDeployCommand(container *app.Container) *cobra.Command {
	var assumeYes bool
	var wait bool
	var waitTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "deploy [stage]",
		Short: "Sync the bucket, then invalidate the edge cache",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.DeployService == nil {
				return errors.New(ErrDeployServiceUnavailable)
			}
			stage := ""
			if len(args) > 0 {
				stage = args[0]
			}
			return container.DeployService.Deploy(cmd.Context(), stage,
				deploy.SyncOptions{AssumeYes: assumeYes},
				deploy.InvalidateOptions{Wait: wait, WaitTimeout: waitTimeout},
			)
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&wait, "wait", false, "Poll until the invalidation reports Completed")
	cmd.Flags().DurationVar(&waitTimeout, "wait-timeout", 0, "Max time to wait for completion (default from config)")
	return cmd
}
