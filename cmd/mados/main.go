package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mados/pkg/config"
	"mados/pkg/logger"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "mados",
	Short: "Mados local marketplace backend",
	Long: `Mados connects neighbourhood sellers, buyers and public services.

Run "mados serve" to start the HTTP API. The other commands work on the
seed dataset directly and are handy for checking data and the image
analyzer from a terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		cfg = loaded

		if err := logger.Init(cfg.Environment); err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, nearbyCmd, analyzeImageCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
