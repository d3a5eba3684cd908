package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cicd-demo/backend/verify"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Run the smoke checks and exit non-zero on the first failure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return verify.Run(cmd.OutOrStdout(), verify.DefaultChecks())
		},
	}
}
