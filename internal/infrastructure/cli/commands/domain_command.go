package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarlsen/edgedeploy/internal/app"
)

// NewDomainInfoCommand creates the domain-info command.
func NewDomainInfoCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "domain-info [stage]",
		Short: "Show the web app's CloudFront domain for a stage",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.DeployService == nil {
				return errors.New(ErrDeployServiceUnavailable)
			}
			stage := ""
			if len(args) > 0 {
				stage = args[0]
			}
			webAppDomain, err := container.DeployService.DomainInfo(cmd.Context(), stage)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), webAppDomain)
			return nil
		},
	}
}
