// coachctl is the operator CLI for the shift coach: it classifies biometric
// snapshots offline, fills the daily score cache, and checks Langfuse.
package main

import (
	"fmt"
	"os"

	"github.com/blaisecz/shift-coach/internal/config"
	"github.com/blaisecz/shift-coach/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	logLevel   string
	jsonOutput bool

	zlog *zap.Logger
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "coachctl",
	Short: "Operate the shift coach",
	Long: `coachctl runs coaching logic outside the API server.

Available commands:
  evaluate       - Classify biometric snapshots from a YAML or JSON file
  precompute     - Compute and cache today's scores for every user
  ping-langfuse  - Check Langfuse credentials and connectivity`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if logLevel == "" {
			logLevel = cfg.LogLevel
		}
		l, err := logger.New(logLevel, "console", "coachctl")
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		zlog = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if zlog != nil {
			_ = zlog.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (defaults to LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")

	rootCmd.AddCommand(evaluateCmd, precomputeCmd, pingLangfuseCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
