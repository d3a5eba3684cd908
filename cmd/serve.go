package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cicd-demo/backend/config"
	"github.com/cicd-demo/backend/logging"
	"github.com/cicd-demo/backend/server"
)

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			if host, _ := cmd.Flags().GetString("host"); cmd.Flags().Changed("host") {
				cfg.Host = host
			}
			if port, _ := cmd.Flags().GetString("port"); port != "" {
				cfg.Port = port
			}
			if level, _ := cmd.Flags().GetString("log-level"); level != "" {
				cfg.LogLevel = level
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := logging.NewLogger(cfg.LogLevel)
			if !cfg.EnvFileLoaded {
				logger.Debug("No .env file found, using system environment variables")
			}

			return server.ListenAndServe(cfg, logger)
		},
	}

	serveCmd.Flags().String("host", "", "bind address (Env: HOST)")
	serveCmd.Flags().String("port", "", "listen port (Env: PORT, default 3000)")
	serveCmd.Flags().String("log-level", "", "logging level: trace, debug, info, warn, error (Env: LOG_LEVEL)")

	return serveCmd
}
