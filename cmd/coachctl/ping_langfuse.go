package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blaisecz/shift-coach/internal/langfuse"
	"github.com/spf13/cobra"
)

var sendTestTrace bool

var pingLangfuseCmd = &cobra.Command{
	Use:   "ping-langfuse",
	Short: "Check Langfuse credentials and connectivity",
	RunE:  runPingLangfuse,
}

func init() {
	pingLangfuseCmd.Flags().BoolVar(&sendTestTrace, "trace", false, "also send a test trace and score")
}

func runPingLangfuse(cmd *cobra.Command, _ []string) error {
	client := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
		Logger:      zlog,
	})
	return pingLangfuse(cmd.Context(), cmd, client)
}

func pingLangfuse(ctx context.Context, cmd *cobra.Command, client langfuse.Client) error {
	out := cmd.OutOrStdout()
	if !client.IsEnabled() {
		return errors.New("langfuse is not configured: set LANGFUSE_BASE_URL, LANGFUSE_PUBLIC_KEY and LANGFUSE_SECRET_KEY")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	fmt.Fprintln(out, "langfuse reachable")

	if !sendTestTrace {
		return nil
	}

	traceID, err := client.CreateTrace(ctx, langfuse.TraceInput{
		Name:     "coachctl-ping",
		Input:    map[string]any{"check": "connectivity"},
		Output:   map[string]any{"ok": true},
		Tags:     []string{"shift-coach", "ping"},
		Metadata: map[string]any{"source": "coachctl"},
	})
	if err != nil {
		return fmt.Errorf("create trace: %w", err)
	}
	if err := client.CreateScore(ctx, langfuse.ScoreInput{TraceID: traceID, Name: "ping", Value: 1}); err != nil {
		return fmt.Errorf("create score: %w", err)
	}
	if err := client.Flush(ctx); err != nil {
		return fmt.Errorf("deliver trace: %w", err)
	}
	fmt.Fprintf(out, "test trace sent: %s\n", traceID)
	return nil
}
