package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/blaisecz/shift-coach/internal/domain"
	"github.com/blaisecz/shift-coach/internal/engine"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate FILE",
	Short: "Classify biometric snapshots from a YAML or JSON file",
	Long: `Reads a list of named snapshots and prints the coaching state and
fallback message for each. JSON input is accepted since it is valid YAML.

Example file:
  snapshots:
    - name: after-second-night
      shift: night
      sleep_hours_last_24h: 4.5
      recovery_score: 38`,
	Args: cobra.ExactArgs(1),
	RunE: runEvaluate,
}

type evaluationCase struct {
	Name                     string `yaml:"name"`
	domain.BiometricSnapshot `yaml:",inline"`
}

type evaluationFile struct {
	Snapshots []evaluationCase `yaml:"snapshots"`
}

type evaluationResult struct {
	Name     string               `json:"name"`
	State    domain.CoachingState `json:"state"`
	Fallback string               `json:"fallback_message"`
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	results, err := evaluate(raw)
	if err != nil {
		return err
	}
	return printResults(cmd.OutOrStdout(), results)
}

func evaluate(raw []byte) ([]evaluationResult, error) {
	var file evaluationFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse snapshots: %w", err)
	}
	if len(file.Snapshots) == 0 {
		return nil, fmt.Errorf("no snapshots in file")
	}

	results := make([]evaluationResult, 0, len(file.Snapshots))
	for i, c := range file.Snapshots {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}
		state, err := engine.ClassifyCoachingState(c.BiometricSnapshot)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", name, err)
		}
		results = append(results, evaluationResult{
			Name:     name,
			State:    state,
			Fallback: engine.FallbackTip(state.Status),
		})
	}
	return results, nil
}

func printResults(w io.Writer, results []evaluationResult) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTATUS\tLABEL")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, r.State.Status, r.State.Label)
	}
	return tw.Flush()
}
