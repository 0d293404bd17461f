package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blaisecz/shift-coach/internal/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var precomputeTimeout time.Duration

var precomputeCmd = &cobra.Command{
	Use:   "precompute",
	Short: "Compute and cache today's scores for every user",
	Long: `Loads each user's snapshot, runs the daily scoring and coaching state,
and stores the result in the score cache so the first API read is warm.
Per-user failures are logged and counted; the command only fails when the
user list cannot be loaded.`,
	RunE: runPrecompute,
}

func init() {
	precomputeCmd.Flags().DurationVar(&precomputeTimeout, "timeout", 5*time.Minute, "overall deadline for the run")
}

func runPrecompute(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), precomputeTimeout)
	defer cancel()

	a, err := app.New(ctx, cfg, zlog)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(context.Background()); err != nil {
			zlog.Warn("closing resources", zap.Error(err))
		}
	}()

	report, err := a.Services.Precompute.Run(ctx, time.Now())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return json.NewEncoder(out).Encode(report)
	}
	fmt.Fprintf(out, "users=%d computed=%d failed=%d took=%s\n",
		report.Users, report.Computed, report.Failed, report.Took.Round(time.Millisecond))
	return nil
}
