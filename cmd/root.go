package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the backend CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "backend",
		Short:        "CI/CD demo backend",
		Long:         "A small JSON backend exposing health endpoints, plus the smoke checks run by the pipeline.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
