package main

import (
	"fmt"
	"os"

	"github.com/Varun6712/smart-calories/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "smartcalories",
	Short: "SmartCalories backend",
	Long:  "SmartCalories serves the profile, food catalog, consumption log and meal estimation API.",
	// bare invocation starts the server
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd, seedCmd, goalCmd)
}

// bootstrap loads configuration and builds the process logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if cfg.EnvFileErr != nil {
		logger.Warn("no .env file loaded", zap.Error(cfg.EnvFileErr))
	}
	return cfg, logger, nil
}
