package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dkellis099/Model-Screener/internal/pkg/config"
	"github.com/dkellis099/Model-Screener/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return server.Run(cfg)
	},
}
