package cli

import (
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check whether the planning backend is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := setup(cmd)
			if err != nil {
				return err
			}

			status, err := deps.Client.Health(cmd.Context())
			if err != nil {
				// Degraded, not fatal: report and exit clean.
				deps.Console.ShowBackendStatus(status, false)
				return nil
			}
			deps.Console.ShowBackendStatus(status, true)
			return nil
		},
	}
}
