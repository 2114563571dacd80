package main

import (
	"fmt"

	"alignr/internal/app"
	"alignr/internal/config"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  "Start the HTTP API server using configuration from the environment (and .env when present).",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if port != "" {
				cfg.App.HTTPPort = port
			}
			return app.Run(cfg)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "HTTP port (overrides HTTP_PORT)")
	return cmd
}
