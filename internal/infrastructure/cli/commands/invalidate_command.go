package commands

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/edgedeploy/internal/app"
	"github.com/mkarlsen/edgedeploy/internal/application/deploy"
)

// NewInvalidateCacheCommand creates the invalidate-cache command.
func NewInvalidateCacheCommand(container *app.Container) *cobra.Command {
	var wait bool
	var waitTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "invalidate-cache [stage]",
		Short: "Invalidate the CloudFront cache for a stage",
		Long:  "Resolves the stage's web app domain from stack outputs, locates the matching distribution, and creates an invalidation for the configured paths.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.DeployService == nil {
				return errors.New(ErrDeployServiceUnavailable)
			}
			stage := ""
			if len(args) > 0 {
				stage = args[0]
			}
			return container.DeployService.InvalidateCache(cmd.Context(), stage, deploy.InvalidateOptions{
				Wait:        wait,
				WaitTimeout: waitTimeout,
			})
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "Poll until the invalidation reports Completed")
	cmd.Flags().DurationVar(&waitTimeout, "wait-timeout", 0, "Max time to wait for completion (default from config)")
	return cmd
}
