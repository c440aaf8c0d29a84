package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/edgedeploy/internal/app"
	"github.com/mkarlsen/edgedeploy/internal/application/deploy"
)

// NewSyncCommand creates the sync command.
func NewSyncCommand(container *app.Container) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Mirror the local app directory into the S3 bucket",
		Long:  "Recursively mirrors the configured app directory into the configured S3 bucket, deleting remote objects absent locally.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.DeployService == nil {
				return errors.New(ErrDeployServiceUnavailable)
			}
			return container.DeployService.Sync(cmd.Context(), deploy.SyncOptions{AssumeYes: assumeYes})
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
